package store

import (
	"github.com/mfreeman451/streamdash/pkg/models"
)

// Change names the slice of state a mutation touched.
type Change string

const (
	ChangeMetrics Change = "metrics"
	ChangeHistory Change = "history"
	ChangeNodes   Change = "nodes"
	ChangeTopics  Change = "topics"
	ChangeAlerts  Change = "alerts"
	ChangeUI      Change = "ui"
)

// Subscriber is called synchronously after every mutation.
type Subscriber func(Change)

// Snapshot is a point-in-time copy of the whole store.
type Snapshot struct {
	CurrentMetrics models.MetricsPatch    `json:"current_metrics"`
	MetricsHistory []models.MetricsSample `json:"metrics_history"`
	Nodes          []models.ClusterNode   `json:"nodes"`
	Topics         []models.Topic         `json:"topics"`
	Alerts         []models.Alert         `json:"alerts"`
	UI             models.UIState         `json:"ui"`
}
