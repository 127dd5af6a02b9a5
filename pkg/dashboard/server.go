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

// Package dashboard assembles the store, the live metrics driver, the data
// refresher, alerting and the HTTP API into one service.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/mfreeman451/streamdash/pkg/alerts"
	"github.com/mfreeman451/streamdash/pkg/api"
	"github.com/mfreeman451/streamdash/pkg/config"
	"github.com/mfreeman451/streamdash/pkg/lifecycle"
	"github.com/mfreeman451/streamdash/pkg/metrics"
	"github.com/mfreeman451/streamdash/pkg/mockdata"
	"github.com/mfreeman451/streamdash/pkg/realtime"
	"github.com/mfreeman451/streamdash/pkg/refresh"
	"github.com/mfreeman451/streamdash/pkg/store"
)

var errNilConfig = errors.New("dashboard config is required")

// Server runs every dashboard component until stopped.
type Server struct {
	config    *config.DashboardConfig
	store     store.Service
	driver    lifecycle.Service
	refresher lifecycle.Service
	api       api.Service
}

// NewServer builds the dashboard from a validated configuration.
func NewServer(cfg *config.DashboardConfig) (*Server, error) {
	if cfg == nil {
		return nil, errNilConfig
	}

	s := store.NewWithHistory(metrics.NewRingBuffer(cfg.HistorySize))

	if cfg.RealTime.StartPaused {
		s.ToggleRealTime()
	}

	source := mockdata.New()

	driver := realtime.NewDriver(s, source, realtime.Config{
		TickInterval: time.Duration(cfg.RealTime.TickInterval),
		HistoryEvery: cfg.RealTime.HistoryEvery,
	})

	evaluator := alerts.NewEvaluator(s, alerts.EvaluatorConfig{
		LagThreshold:  cfg.Alerts.LagThreshold,
		DiskThreshold: cfg.Alerts.DiskThreshold,
		Cooldown:      time.Duration(cfg.Alerts.Cooldown),
		MaxRetained:   cfg.Alerts.MaxRetained,
	}, buildAlerters(cfg.Alerts.Webhooks)...)

	refresher := refresh.New(s, source, refresh.Config{
		NodesInterval:  time.Duration(cfg.Refresh.NodesInterval),
		TopicsInterval: time.Duration(cfg.Refresh.TopicsInterval),
		SeedAlerts:     cfg.Refresh.SeedAlerts == nil || *cfg.Refresh.SeedAlerts,
	}, refresh.WithEvaluator(evaluator))

	apiServer := api.NewAPIServer(s, source, api.Config{
		PushRate:  cfg.API.PushRate,
		PushBurst: cfg.API.PushBurst,
	})

	return newServer(cfg, s, driver, refresher, apiServer), nil
}

func newServer(
	cfg *config.DashboardConfig, s store.Service, driver, refresher lifecycle.Service, apiServer api.Service) *Server {
	return &Server{
		config:    cfg,
		store:     s,
		driver:    driver,
		refresher: refresher,
		api:       apiServer,
	}
}

func buildAlerters(hooks []config.WebhookConfig) []alerts.AlertService {
	alerters := make([]alerts.AlertService, 0, len(hooks))

	for i := range hooks {
		hook := &hooks[i]
		if !hook.Enabled {
			continue
		}

		if hook.Discord {
			alerters = append(alerters, alerts.NewDiscordWebhook(hook.URL, time.Duration(hook.Cooldown)))
			continue
		}

		headers := make([]alerts.Header, 0, len(hook.Headers))
		for _, h := range hook.Headers {
			headers = append(headers, alerts.Header{Key: h.Key, Value: h.Value})
		}

		alerters = append(alerters, alerts.NewWebhookAlerter(alerts.WebhookConfig{
			Enabled:  true,
			URL:      hook.URL,
			Headers:  headers,
			Template: hook.Template,
			Cooldown: time.Duration(hook.Cooldown),
		}))
	}

	return alerters
}

// Store exposes the state container.
func (s *Server) Store() store.Service {
	return s.store
}

// Start runs the driver, the refresher and the HTTP API until ctx is done or
// one of them fails.
func (s *Server) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errChan := make(chan error, 3)

	run := func(name string, fn func() error) {
		go func() {
			if err := fn(); err != nil {
				errChan <- fmt.Errorf("%s: %w", name, err)
			}
		}()
	}

	run("realtime driver", func() error { return s.driver.Start(ctx) })
	run("refresher", func() error { return s.refresher.Start(ctx) })
	run("api", func() error { return s.api.Start(s.config.ListenAddr) })

	log.Printf("Dashboard running, API on %s", s.config.ListenAddr)

	select {
	case <-ctx.Done():
		return nil
	case err := <-errChan:
		return err
	}
}

// Stop shuts the components down in reverse dependency order.
func (s *Server) Stop(ctx context.Context) error {
	var errs []error

	if err := s.refresher.Stop(ctx); err != nil {
		errs = append(errs, fmt.Errorf("refresher: %w", err))
	}

	if err := s.driver.Stop(ctx); err != nil {
		errs = append(errs, fmt.Errorf("realtime driver: %w", err))
	}

	if err := s.api.Stop(ctx); err != nil {
		errs = append(errs, fmt.Errorf("api: %w", err))
	}

	return errors.Join(errs...)
}
