// Package store pkg/store/interfaces.go

//go:generate mockgen -destination=mock_store.go -package=store github.com/mfreeman451/streamdash/pkg/store Service

package store

import (
	"github.com/mfreeman451/streamdash/pkg/models"
)

// Service is the dashboard state container read and mutated by every view.
type Service interface {
	// Metrics

	UpdateMetrics(patch models.MetricsPatch)
	AddMetricsToHistory(sample models.MetricsSample)
	CurrentMetrics() models.MetricsPatch
	MetricsHistory() []models.MetricsSample

	// Cluster state

	UpdateNodes(nodes []models.ClusterNode)
	UpdateTopics(topics []models.Topic)
	Nodes() []models.ClusterNode
	Topics() []models.Topic

	// Alerts

	AddAlert(alert models.Alert)
	TrimAlerts(keep int) (dropped int)
	AcknowledgeAlert(id string) bool
	Alerts() []models.Alert

	// UI toggles

	ToggleRealTime()
	ToggleSidebar()
	SetTimeRange(r models.TimeRange)
	SetTheme(t models.Theme)
	UI() models.UIState

	Snapshot() Snapshot
	Subscribe(fn Subscriber) (unsubscribe func())
}
