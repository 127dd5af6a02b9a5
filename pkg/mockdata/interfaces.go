// Package mockdata pkg/mockdata/interfaces.go

//go:generate mockgen -destination=mock_source.go -package=mockdata github.com/mfreeman451/streamdash/pkg/mockdata Source

package mockdata

import (
	"github.com/mfreeman451/streamdash/pkg/models"
)

// Source supplies dashboard data. Consumers treat it as opaque and do not
// validate what it returns.
type Source interface {
	ClusterNodes() []models.ClusterNode
	Topics() []models.Topic
	Alerts() []models.Alert
	MetricsTimeSeries(hours int) []models.MetricsSample
	RealtimeMetrics() models.MetricsPatch
	SecurityEvents() []models.SecurityEvent
	Users() []models.User
	APIKeys() []models.APIKey
}
