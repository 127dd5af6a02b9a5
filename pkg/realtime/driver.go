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

// Package realtime simulates the live metrics feed. While enabled, a single
// tick loop writes a fresh reading into the store every tick and appends a
// complete sample to the history every HistoryEvery ticks.
package realtime

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/mfreeman451/streamdash/pkg/models"
	"github.com/mfreeman451/streamdash/pkg/store"
)

const (
	DefaultTickInterval = 2 * time.Second
	// DefaultHistoryEvery appends to history every 30s at the default tick.
	DefaultHistoryEvery = 15
)

// Config tunes the driver.
type Config struct {
	TickInterval time.Duration
	HistoryEvery int
}

// Option configures a Driver.
type Option func(*Driver)

// WithTicker replaces the ticker factory.
func WithTicker(fn TickerFunc) Option {
	return func(d *Driver) {
		d.newTicker = fn
	}
}

// WithClock overrides the clock used to stamp history samples lacking a timestamp.
func WithClock(now func() time.Time) Option {
	return func(d *Driver) {
		d.now = now
	}
}

// loopHandle owns one running tick loop.
type loopHandle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Driver is the enable/disable gated real-time feed.
type Driver struct {
	store        store.Service
	source       MetricsSource
	interval     time.Duration
	historyEvery int
	newTicker    TickerFunc
	now          func() time.Time

	mu   sync.Mutex
	loop *loopHandle

	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewDriver creates a disabled driver.
func NewDriver(s store.Service, source MetricsSource, cfg Config, opts ...Option) *Driver {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}

	if cfg.HistoryEvery <= 0 {
		cfg.HistoryEvery = DefaultHistoryEvery
	}

	d := &Driver{
		store:        s,
		source:       source,
		interval:     cfg.TickInterval,
		historyEvery: cfg.HistoryEvery,
		newTicker:    NewTicker,
		now:          time.Now,
		stopCh:       make(chan struct{}),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Enabled reports whether a tick loop is running.
func (d *Driver) Enabled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.loop != nil
}

// Enable starts a fresh tick loop. It is a no-op when already enabled.
func (d *Driver) Enable() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.loop != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	h := &loopHandle{cancel: cancel, done: make(chan struct{})}
	d.loop = h

	ticker := d.newTicker(d.interval)

	log.Printf("Real-time feed enabled, tick every %v, history every %d ticks", d.interval, d.historyEvery)

	go d.run(ctx, ticker, h.done)
}

// Disable cancels the tick loop and waits for it to exit. No reading is
// written to the store once Disable returns.
func (d *Driver) Disable() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.loop == nil {
		return
	}

	d.loop.cancel()
	<-d.loop.done
	d.loop = nil

	log.Printf("Real-time feed disabled")
}

func (d *Driver) run(ctx context.Context, ticker Ticker, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()

	ticks := 0

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			// cancellation wins over a tick that raced with it
			if ctx.Err() != nil {
				return
			}

			ticks++
			d.tick(ticks)
		}
	}
}

func (d *Driver) tick(n int) {
	patch := d.source.RealtimeMetrics()
	d.store.UpdateMetrics(patch)

	if n%d.historyEvery != 0 {
		return
	}

	d.store.AddMetricsToHistory(HistorySample(patch, d.now()))
}

// Start keeps the driver in step with the store's real-time flag until ctx
// is canceled or Stop is called. The tick loop is always released on return.
func (d *Driver) Start(ctx context.Context) error {
	wake := make(chan struct{}, 1)

	unsubscribe := d.store.Subscribe(func(c store.Change) {
		if c != store.ChangeUI {
			return
		}

		select {
		case wake <- struct{}{}:
		default:
		}
	})

	defer unsubscribe()
	defer d.Disable()

	d.reconcile()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-d.stopCh:
			return nil
		case <-wake:
			d.reconcile()
		}
	}
}

// Stop ends Start and releases the tick loop.
func (d *Driver) Stop(_ context.Context) error {
	d.stopOnce.Do(func() {
		close(d.stopCh)
	})

	d.Disable()

	return nil
}

func (d *Driver) reconcile() {
	if d.store.UI().RealTimeEnabled {
		d.Enable()
		return
	}

	d.Disable()
}

// HistorySample builds the history entry for a live reading.
func HistorySample(patch models.MetricsPatch, now time.Time) models.MetricsSample {
	sample := patch.Complete(now)
	sample.PartitionLag = map[string]float64{}

	return sample
}
