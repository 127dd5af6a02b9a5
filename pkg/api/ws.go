/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package api

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	httpx "github.com/mfreeman451/streamdash/pkg/http"
	"github.com/mfreeman451/streamdash/pkg/store"
	"golang.org/x/time/rate"
)

const errHubClosed = "websocket hub is closed"

const (
	sendBufferSize = 32
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Hub fans store changes out to websocket clients.
type Hub struct {
	store    store.Service
	upgrader websocket.Upgrader
	limit    rate.Limit
	burst    int

	mu          sync.Mutex
	clients     map[*wsClient]struct{}
	unsubscribe func()
	closeOnce   sync.Once
	closed      bool
}

type wsClient struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan WSMessage
	limiter *rate.Limiter
	ctx     context.Context
	cancel  context.CancelFunc
	once    sync.Once
}

// NewHub subscribes to s and pushes at most limit frames per second, with
// the given burst, to each client.
func NewHub(s store.Service, limit rate.Limit, burst int) *Hub {
	h := &Hub{
		store: s,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		limit:   limit,
		burst:   burst,
		clients: make(map[*wsClient]struct{}),
	}
	h.unsubscribe = s.Subscribe(h.onChange)

	return h
}

// ServeWS upgrades the request and sends a full snapshot, followed by one
// frame per store change. Once the hub is closed new connections are refused.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	if h.isClosed() {
		httpx.WriteError(w, http.StatusServiceUnavailable, errHubClosed)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())

	c := &wsClient{
		hub:     h,
		conn:    conn,
		send:    make(chan WSMessage, sendBufferSize),
		limiter: rate.NewLimiter(h.limit, h.burst),
		ctx:     ctx,
		cancel:  cancel,
	}

	// The snapshot is queued under h.mu so no change can slip in between it
	// and registration.
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		c.close()

		return
	}

	c.send <- WSMessage{Type: snapshotMessage, Data: h.store.Snapshot()}
	h.clients[c] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()

	log.Printf("ws client connected from %s, %d connected", r.RemoteAddr, count)

	go c.writeLoop()
	go c.readLoop()
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients)
}

// Close unsubscribes from the store and disconnects every client.
func (h *Hub) Close() {
	h.closeOnce.Do(func() {
		h.unsubscribe()

		h.mu.Lock()
		h.closed = true
		clients := make([]*wsClient, 0, len(h.clients))

		for c := range h.clients {
			clients = append(clients, c)
		}

		h.clients = make(map[*wsClient]struct{})
		h.mu.Unlock()

		for _, c := range clients {
			c.close()
		}
	})
}

func (h *Hub) isClosed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.closed
}

// onChange runs on the mutating goroutine and must not block.
func (h *Hub) onChange(change store.Change) {
	h.mu.Lock()
	if len(h.clients) == 0 {
		h.mu.Unlock()
		return
	}

	clients := make([]*wsClient, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	msg := WSMessage{Type: string(change), Data: h.payload(change)}

	for _, c := range clients {
		select {
		case c.send <- msg:
		default:
			log.Printf("ws client %s is too slow, dropping", c.conn.RemoteAddr())
			h.remove(c)
		}
	}
}

func (h *Hub) payload(change store.Change) interface{} {
	switch change {
	case store.ChangeMetrics:
		return h.store.CurrentMetrics()
	case store.ChangeHistory:
		return h.store.MetricsHistory()
	case store.ChangeNodes:
		return h.store.Nodes()
	case store.ChangeTopics:
		return h.store.Topics()
	case store.ChangeAlerts:
		return h.store.Alerts()
	case store.ChangeUI:
		return h.store.UI()
	default:
		return nil
	}
}

func (h *Hub) remove(c *wsClient) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()

	if ok {
		c.close()
	}
}

func (c *wsClient) close() {
	c.once.Do(func() {
		c.cancel()

		if err := c.conn.Close(); err != nil {
			log.Printf("ws close: %v", err)
		}
	})
}

func (c *wsClient) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	defer c.hub.remove(c)

	for {
		select {
		case <-c.ctx.Done():
			return
		case msg := <-c.send:
			if err := c.limiter.Wait(c.ctx); err != nil {
				return
			}

			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))

			if err := c.conn.WriteJSON(msg); err != nil {
				log.Printf("ws write failed: %v", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))

			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readLoop only watches for the peer going away; clients send nothing.
func (c *wsClient) readLoop() {
	defer c.hub.remove(c)

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
