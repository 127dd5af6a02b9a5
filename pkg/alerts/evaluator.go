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

package alerts

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mfreeman451/streamdash/pkg/models"
	"github.com/mfreeman451/streamdash/pkg/store"
)

const (
	TitleNodeOffline = "Node Offline"
	TitleDiskLow     = "Disk Space Low"
	TitleConsumerLag = "High Consumer Lag"
)

// EvaluatorConfig holds rule thresholds. MaxRetained caps the store's alert
// list after each raise; zero leaves it unbounded.
type EvaluatorConfig struct {
	LagThreshold  float64
	DiskThreshold float64
	Cooldown      time.Duration
	MaxRetained   int
}

// Evaluator derives alerts from refreshed cluster data, adds them to the
// store and forwards them to external alerters.
type Evaluator struct {
	store    store.Service
	alerters []AlertService
	config   EvaluatorConfig
	now      func() time.Time
	newID    func() string

	mu         sync.Mutex
	lastRaised map[string]time.Time
}

func NewEvaluator(s store.Service, cfg EvaluatorConfig, alerters ...AlertService) *Evaluator {
	return &Evaluator{
		store:      s,
		alerters:   alerters,
		config:     cfg,
		now:        time.Now,
		newID:      uuid.NewString,
		lastRaised: make(map[string]time.Time),
	}
}

// EvaluateNodes raises offline and disk alerts for the given nodes.
func (e *Evaluator) EvaluateNodes(ctx context.Context, nodes []models.ClusterNode) []models.Alert {
	var raised []models.Alert

	for i := range nodes {
		n := &nodes[i]

		if n.Status == models.NodeCritical {
			if a, ok := e.Raise(ctx, models.Alert{
				Title:    TitleNodeOffline,
				Message:  fmt.Sprintf("Cluster node %s became unresponsive", n.Hostname),
				Severity: models.SeverityCritical,
				Source:   n.ID,
			}, map[string]any{"hostname": n.Hostname, "region": n.Region}); ok {
				raised = append(raised, a)
			}
		}

		if n.Disk > e.config.DiskThreshold {
			if a, ok := e.Raise(ctx, models.Alert{
				Title:    TitleDiskLow,
				Message:  fmt.Sprintf("Disk usage above %.0f%% on %s", e.config.DiskThreshold, n.Hostname),
				Severity: models.SeverityWarning,
				Source:   n.ID,
			}, map[string]any{"disk_pct": fmt.Sprintf("%.1f", n.Disk)}); ok {
				raised = append(raised, a)
			}
		}
	}

	return raised
}

// EvaluateTopics raises lag alerts for consumer groups over the threshold.
func (e *Evaluator) EvaluateTopics(ctx context.Context, topics []models.Topic) []models.Alert {
	var raised []models.Alert

	for i := range topics {
		t := &topics[i]

		for _, g := range t.ConsumerGroups {
			if g.Lag <= e.config.LagThreshold {
				continue
			}

			if a, ok := e.Raise(ctx, models.Alert{
				Title:    TitleConsumerLag,
				Message:  fmt.Sprintf("Consumer group %s on %s is %.0f messages behind", g.ID, t.Name, g.Lag),
				Severity: models.SeverityWarning,
				Source:   t.Name + "/" + g.ID,
			}, map[string]any{"coordinator": g.Coordinator}); ok {
				raised = append(raised, a)
			}
		}
	}

	return raised
}

// Raise stamps the alert, adds it to the store and forwards it. An alert with
// the same title and source raised within the cooldown is dropped and Raise
// reports false.
func (e *Evaluator) Raise(ctx context.Context, alert models.Alert, details map[string]any) (models.Alert, bool) {
	now := e.now()

	if !e.admit(alert.Title+"|"+alert.Source, now) {
		return models.Alert{}, false
	}

	if alert.ID == "" {
		alert.ID = e.newID()
	}

	if alert.Timestamp.IsZero() {
		alert.Timestamp = now
	}

	e.store.AddAlert(alert)

	if e.config.MaxRetained > 0 {
		if dropped := e.store.TrimAlerts(e.config.MaxRetained); dropped > 0 {
			log.Printf("Dropped %d oldest alerts, keeping %d", dropped, e.config.MaxRetained)
		}
	}

	log.Printf("Alert raised: %s (%s) from %s", alert.Title, alert.Severity, alert.Source)

	e.forward(ctx, &alert, details)

	return alert, true
}

func (e *Evaluator) admit(key string, now time.Time) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if last, ok := e.lastRaised[key]; ok && now.Sub(last) < e.config.Cooldown {
		return false
	}

	e.lastRaised[key] = now

	return true
}

func (e *Evaluator) forward(ctx context.Context, alert *models.Alert, details map[string]any) {
	for _, alerter := range e.alerters {
		if !alerter.IsEnabled() {
			continue
		}

		err := alerter.Alert(ctx, FromAlert(alert, details))

		switch {
		case err == nil:
		case errors.Is(err, ErrWebhookCooldown):
		default:
			log.Printf("Failed to forward alert %s: %v", alert.ID, err)
		}
	}
}
