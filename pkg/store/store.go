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

// Package store holds the dashboard's single source of truth: current and
// historical metrics, cluster snapshots, alerts and UI toggles.
package store

import (
	"log"
	"sync"

	"github.com/mfreeman451/streamdash/pkg/metrics"
	"github.com/mfreeman451/streamdash/pkg/models"
)

type subscription struct {
	id int
	fn Subscriber
}

// DashboardStore is the concrete Service. Every mutation is serialized and
// subscribers are notified after the lock is released.
type DashboardStore struct {
	mu      sync.RWMutex
	current models.MetricsPatch
	history metrics.HistoryStore
	nodes   []models.ClusterNode
	topics  []models.Topic
	alerts  []models.Alert
	ui      models.UIState

	subMu  sync.Mutex
	subs   []subscription
	nextID int
}

// New creates a store with a history of models.DefaultHistorySize samples.
func New() *DashboardStore {
	return NewWithHistory(metrics.NewBuffer())
}

// NewWithHistory creates a store backed by the given history window.
func NewWithHistory(history metrics.HistoryStore) *DashboardStore {
	return &DashboardStore{
		history: history,
		ui:      models.DefaultUIState(),
	}
}

// UpdateMetrics merges patch into the current metrics, last write wins per field.
func (s *DashboardStore) UpdateMetrics(patch models.MetricsPatch) {
	s.mu.Lock()
	s.current = s.current.Merge(patch)
	s.mu.Unlock()

	s.notify(ChangeMetrics)
}

// AddMetricsToHistory appends sample to the bounded history. The caller
// supplies samples in chronological order.
func (s *DashboardStore) AddMetricsToHistory(sample models.MetricsSample) {
	s.mu.Lock()
	s.history.Add(sample)
	s.mu.Unlock()

	s.notify(ChangeHistory)
}

func (s *DashboardStore) CurrentMetrics() models.MetricsPatch {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current.Clone()
}

func (s *DashboardStore) MetricsHistory() []models.MetricsSample {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.history.Samples()
}

// UpdateNodes replaces the node list wholesale.
func (s *DashboardStore) UpdateNodes(nodes []models.ClusterNode) {
	s.mu.Lock()
	s.nodes = append([]models.ClusterNode(nil), nodes...)
	s.mu.Unlock()

	s.notify(ChangeNodes)
}

// UpdateTopics replaces the topic list wholesale.
func (s *DashboardStore) UpdateTopics(topics []models.Topic) {
	s.mu.Lock()
	s.topics = cloneTopics(topics)
	s.mu.Unlock()

	s.notify(ChangeTopics)
}

func (s *DashboardStore) Nodes() []models.ClusterNode {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.ClusterNode(nil), s.nodes...)
}

func (s *DashboardStore) Topics() []models.Topic {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneTopics(s.topics)
}

// AddAlert puts alert at the front of the list.
func (s *DashboardStore) AddAlert(alert models.Alert) {
	s.mu.Lock()
	alerts := make([]models.Alert, 0, len(s.alerts)+1)
	alerts = append(alerts, alert)
	s.alerts = append(alerts, s.alerts...)
	s.mu.Unlock()

	s.notify(ChangeAlerts)
}

// TrimAlerts drops the oldest alerts so at most keep remain and returns how
// many were removed. Subscribers are only notified when something was dropped.
func (s *DashboardStore) TrimAlerts(keep int) int {
	if keep < 0 {
		keep = 0
	}

	s.mu.Lock()

	dropped := len(s.alerts) - keep
	if dropped <= 0 {
		s.mu.Unlock()
		return 0
	}

	s.alerts = append([]models.Alert(nil), s.alerts[:keep]...)
	s.mu.Unlock()

	s.notify(ChangeAlerts)

	return dropped
}

// AcknowledgeAlert marks the alert with the given id as acknowledged and
// reports whether one was found. An unknown id leaves the list untouched.
func (s *DashboardStore) AcknowledgeAlert(id string) bool {
	s.mu.Lock()

	found := false

	for i := range s.alerts {
		if s.alerts[i].ID == id {
			s.alerts[i].Acknowledged = true
			found = true
		}
	}

	s.mu.Unlock()

	if !found {
		log.Printf("Acknowledge ignored, alert %s not found", id)
		return false
	}

	s.notify(ChangeAlerts)

	return true
}

func (s *DashboardStore) Alerts() []models.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Alert(nil), s.alerts...)
}

func (s *DashboardStore) ToggleRealTime() {
	s.mu.Lock()
	s.ui.RealTimeEnabled = !s.ui.RealTimeEnabled
	s.mu.Unlock()

	s.notify(ChangeUI)
}

func (s *DashboardStore) ToggleSidebar() {
	s.mu.Lock()
	s.ui.SidebarOpen = !s.ui.SidebarOpen
	s.mu.Unlock()

	s.notify(ChangeUI)
}

func (s *DashboardStore) SetTimeRange(r models.TimeRange) {
	s.mu.Lock()
	s.ui.TimeRange = r
	s.mu.Unlock()

	s.notify(ChangeUI)
}

func (s *DashboardStore) SetTheme(t models.Theme) {
	s.mu.Lock()
	s.ui.Theme = t
	s.mu.Unlock()

	s.notify(ChangeUI)
}

func (s *DashboardStore) UI() models.UIState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.ui
}

// Snapshot copies the whole state under a single read lock.
func (s *DashboardStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		CurrentMetrics: s.current.Clone(),
		MetricsHistory: s.history.Samples(),
		Nodes:          append([]models.ClusterNode(nil), s.nodes...),
		Topics:         cloneTopics(s.topics),
		Alerts:         append([]models.Alert(nil), s.alerts...),
		UI:             s.ui,
	}
}

// Subscribe registers fn for change notifications. The returned function
// removes the subscription and is safe to call more than once.
func (s *DashboardStore) Subscribe(fn Subscriber) func() {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()

		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *DashboardStore) notify(change Change) {
	s.subMu.Lock()
	subs := append([]subscription(nil), s.subs...)
	s.subMu.Unlock()

	for _, sub := range subs {
		sub.fn(change)
	}
}

func cloneTopics(topics []models.Topic) []models.Topic {
	if topics == nil {
		return nil
	}

	out := make([]models.Topic, len(topics))
	for i, t := range topics {
		out[i] = t.Clone()
	}

	return out
}
