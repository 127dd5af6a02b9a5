package realtime

import (
	"time"

	"github.com/mfreeman451/streamdash/pkg/models"
)

// MetricsSource produces one live metrics reading per call.
type MetricsSource interface {
	RealtimeMetrics() models.MetricsPatch
}

// Ticker delivers ticks on C until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFunc creates a Ticker firing every d.
type TickerFunc func(d time.Duration) Ticker

type timeTicker struct {
	*time.Ticker
}

func (t timeTicker) C() <-chan time.Time {
	return t.Ticker.C
}

// NewTicker wraps time.NewTicker.
func NewTicker(d time.Duration) Ticker {
	return timeTicker{time.NewTicker(d)}
}
