package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mfreeman451/streamdash/pkg/mockdata"
	"github.com/mfreeman451/streamdash/pkg/models"
	"github.com/mfreeman451/streamdash/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rawMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws"

	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) rawMessage {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var msg rawMessage
	require.NoError(t, conn.ReadJSON(&msg))

	return msg
}

func TestHub_SnapshotThenChanges(t *testing.T) {
	s := store.New()
	s.UpdateNodes([]models.ClusterNode{{ID: "node-1"}})

	api := NewAPIServer(s, mockdata.New(), Config{})
	srv := httptest.NewServer(api.Handler())

	defer srv.Close()
	defer api.hub.Close()

	conn := dial(t, srv)

	first := readMessage(t, conn)
	require.Equal(t, snapshotMessage, first.Type)

	var snap store.Snapshot
	require.NoError(t, json.Unmarshal(first.Data, &snap))
	require.Len(t, snap.Nodes, 1)
	assert.Equal(t, "node-1", snap.Nodes[0].ID)

	require.Eventually(t, func() bool { return api.hub.Clients() == 1 }, time.Second, 5*time.Millisecond)

	s.ToggleSidebar()

	msg := readMessage(t, conn)
	require.Equal(t, string(store.ChangeUI), msg.Type)

	var ui models.UIState
	require.NoError(t, json.Unmarshal(msg.Data, &ui))
	assert.False(t, ui.SidebarOpen)

	s.AddAlert(models.Alert{ID: "alert-9"})

	msg = readMessage(t, conn)
	require.Equal(t, string(store.ChangeAlerts), msg.Type)

	var alerts []models.Alert
	require.NoError(t, json.Unmarshal(msg.Data, &alerts))
	require.Len(t, alerts, 1)
	assert.Equal(t, "alert-9", alerts[0].ID)
}

func TestHub_DropsSlowClient(t *testing.T) {
	s := store.New()

	// one frame of burst and effectively no refill
	api := NewAPIServer(s, mockdata.New(), Config{PushRate: 0.001, PushBurst: 1})
	srv := httptest.NewServer(api.Handler())

	defer srv.Close()
	defer api.hub.Close()

	conn := dial(t, srv)
	assert.Equal(t, snapshotMessage, readMessage(t, conn).Type)

	require.Eventually(t, func() bool { return api.hub.Clients() == 1 }, time.Second, 5*time.Millisecond)

	for i := 0; i < sendBufferSize+5; i++ {
		s.ToggleSidebar()
	}

	assert.Eventually(t, func() bool { return api.hub.Clients() == 0 }, 2*time.Second, 5*time.Millisecond)
}

func TestHub_CloseDisconnectsClients(t *testing.T) {
	s := store.New()
	api := NewAPIServer(s, mockdata.New(), Config{})
	srv := httptest.NewServer(api.Handler())

	defer srv.Close()

	conn := dial(t, srv)
	readMessage(t, conn)

	require.Eventually(t, func() bool { return api.hub.Clients() == 1 }, time.Second, 5*time.Millisecond)

	api.hub.Close()
	assert.Equal(t, 0, api.hub.Clients())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	_, _, err := conn.ReadMessage()
	require.Error(t, err)

	// unsubscribed: further changes reach nobody and do not panic
	s.ToggleRealTime()
}

func TestHub_RefusesConnectionsAfterClose(t *testing.T) {
	s := store.New()
	api := NewAPIServer(s, mockdata.New(), Config{})
	srv := httptest.NewServer(api.Handler())

	defer srv.Close()

	api.hub.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws"

	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if conn != nil {
		_ = conn.Close()
	}

	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)

	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, 0, api.hub.Clients())
}
