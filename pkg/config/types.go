package config

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration accepts either a Go duration string ("2s") or a number of
// nanoseconds in both JSON and YAML.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	return d.set(v)
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var v interface{}
	if err := node.Decode(&v); err != nil {
		return err
	}

	if i, ok := v.(int); ok {
		v = float64(i)
	}

	return d.set(v)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) set(v interface{}) error {
	switch value := v.(type) {
	case float64:
		// parse numeric as nanoseconds
		*d = Duration(time.Duration(value))
		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: %w", errInvalidDuration, err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

// RealTimeConfig tunes the simulated live feed.
type RealTimeConfig struct {
	TickInterval Duration `json:"tick_interval" yaml:"tick_interval"`
	HistoryEvery int      `json:"history_every" yaml:"history_every"` // ticks between history samples
	StartPaused  bool     `json:"start_paused" yaml:"start_paused"`
}

// RefreshConfig sets how often synthetic cluster data is regenerated.
type RefreshConfig struct {
	NodesInterval  Duration `json:"nodes_interval" yaml:"nodes_interval"`
	TopicsInterval Duration `json:"topics_interval" yaml:"topics_interval"`
	SeedAlerts     *bool    `json:"seed_alerts,omitempty" yaml:"seed_alerts,omitempty"`
}

// AlertsConfig drives rule evaluation over refreshed data.
type AlertsConfig struct {
	LagThreshold  float64         `json:"lag_threshold" yaml:"lag_threshold"`
	DiskThreshold float64         `json:"disk_threshold" yaml:"disk_threshold"`
	Cooldown      Duration        `json:"cooldown" yaml:"cooldown"`
	MaxRetained   int             `json:"max_retained" yaml:"max_retained"` // oldest alerts beyond this are dropped
	Webhooks      []WebhookConfig `json:"webhooks,omitempty" yaml:"webhooks,omitempty"`
}

// WebhookConfig represents a webhook notification configuration.
type WebhookConfig struct {
	Enabled  bool     `json:"enabled" yaml:"enabled"`
	Discord  bool     `json:"discord,omitempty" yaml:"discord,omitempty"`
	URL      string   `json:"url" yaml:"url"`
	Cooldown Duration `json:"cooldown" yaml:"cooldown"`
	Template string   `json:"template,omitempty" yaml:"template,omitempty"`
	Headers  []Header `json:"headers,omitempty" yaml:"headers,omitempty"` // Optional custom headers
}

// Header represents a custom HTTP header.
type Header struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// APIConfig tunes the HTTP surface.
type APIConfig struct {
	// PushRate caps WebSocket frames per second per connection.
	PushRate  float64 `json:"push_rate" yaml:"push_rate"`
	PushBurst int     `json:"push_burst" yaml:"push_burst"`
}

// DashboardConfig represents the configuration for the dashboard service.
type DashboardConfig struct {
	ListenAddr  string         `json:"listen_addr" yaml:"listen_addr"`
	GrpcAddr    string         `json:"grpc_addr,omitempty" yaml:"grpc_addr,omitempty"` // health endpoint, disabled when empty
	HistorySize int            `json:"history_size" yaml:"history_size"`
	RealTime    RealTimeConfig `json:"realtime" yaml:"realtime"`
	Refresh     RefreshConfig  `json:"refresh" yaml:"refresh"`
	Alerts      AlertsConfig   `json:"alerts" yaml:"alerts"`
	API         APIConfig      `json:"api" yaml:"api"`
}
