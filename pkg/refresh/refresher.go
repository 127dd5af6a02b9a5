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

// Package refresh periodically reloads the cluster node and topic snapshots
// into the store and runs alert rules against them.
package refresh

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/mfreeman451/streamdash/pkg/mockdata"
	"github.com/mfreeman451/streamdash/pkg/realtime"
	"github.com/mfreeman451/streamdash/pkg/store"
)

const (
	DefaultNodesInterval  = 30 * time.Second
	DefaultTopicsInterval = 60 * time.Second
)

type Config struct {
	NodesInterval  time.Duration
	TopicsInterval time.Duration
	SeedAlerts     bool
}

// Refresher keeps store.Nodes and store.Topics current.
type Refresher struct {
	store     store.Service
	source    mockdata.Source
	evaluator Evaluator
	config    Config
	newTicker realtime.TickerFunc

	seedOnce sync.Once
	stopOnce sync.Once
	stopCh   chan struct{}
}

type Option func(*Refresher)

// WithEvaluator runs alert rules after every refresh.
func WithEvaluator(e Evaluator) Option {
	return func(r *Refresher) {
		r.evaluator = e
	}
}

// WithTicker overrides how refresh tickers are created.
func WithTicker(fn realtime.TickerFunc) Option {
	return func(r *Refresher) {
		r.newTicker = fn
	}
}

func New(s store.Service, source mockdata.Source, cfg Config, opts ...Option) *Refresher {
	if cfg.NodesInterval <= 0 {
		cfg.NodesInterval = DefaultNodesInterval
	}

	if cfg.TopicsInterval <= 0 {
		cfg.TopicsInterval = DefaultTopicsInterval
	}

	r := &Refresher{
		store:     s,
		source:    source,
		config:    cfg,
		newTicker: realtime.NewTicker,
		stopCh:    make(chan struct{}),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// RefreshNodes replaces the node list and evaluates node rules.
func (r *Refresher) RefreshNodes(ctx context.Context) {
	nodes := r.source.ClusterNodes()
	r.store.UpdateNodes(nodes)

	if r.evaluator != nil {
		if raised := r.evaluator.EvaluateNodes(ctx, nodes); len(raised) > 0 {
			log.Printf("Node refresh raised %d alerts", len(raised))
		}
	}
}

// RefreshTopics replaces the topic list and evaluates consumer lag rules.
func (r *Refresher) RefreshTopics(ctx context.Context) {
	topics := r.source.Topics()
	r.store.UpdateTopics(topics)

	if r.evaluator != nil {
		if raised := r.evaluator.EvaluateTopics(ctx, topics); len(raised) > 0 {
			log.Printf("Topic refresh raised %d alerts", len(raised))
		}
	}
}

// SeedAlerts loads the initial alert list once, and only into an empty store.
// Alerts are added one at a time so the last generated ends up first.
func (r *Refresher) SeedAlerts() {
	r.seedOnce.Do(func() {
		if len(r.store.Alerts()) > 0 {
			return
		}

		alerts := r.source.Alerts()
		for i := range alerts {
			r.store.AddAlert(alerts[i])
		}

		log.Printf("Seeded %d alerts", len(alerts))
	})
}

// Start refreshes immediately and then on each interval until ctx is
// canceled or Stop is called.
func (r *Refresher) Start(ctx context.Context) error {
	log.Printf("Starting refresher, nodes every %v, topics every %v",
		r.config.NodesInterval, r.config.TopicsInterval)

	r.RefreshNodes(ctx)
	r.RefreshTopics(ctx)

	if r.config.SeedAlerts {
		r.SeedAlerts()
	}

	nodesTicker := r.newTicker(r.config.NodesInterval)
	defer nodesTicker.Stop()

	topicsTicker := r.newTicker(r.config.TopicsInterval)
	defer topicsTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-r.stopCh:
			return nil
		case <-nodesTicker.C():
			r.RefreshNodes(ctx)
		case <-topicsTicker.C():
			r.RefreshTopics(ctx)
		}
	}
}

func (r *Refresher) Stop(_ context.Context) error {
	r.stopOnce.Do(func() {
		close(r.stopCh)
	})

	return nil
}
