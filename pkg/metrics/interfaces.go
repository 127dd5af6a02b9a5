package metrics

import (
	"github.com/mfreeman451/streamdash/pkg/models"
)

// HistoryStore is a bounded, chronologically ordered window of metrics samples.
type HistoryStore interface {
	Add(sample models.MetricsSample)
	Samples() []models.MetricsSample
	Last() *models.MetricsSample
	Len() int
	Cap() int
	Reset()
}
