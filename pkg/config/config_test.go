package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mfreeman451/streamdash/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadAndValidate_JSON(t *testing.T) {
	path := writeFile(t, "dashboard.json", `{
		"listen_addr": ":9000",
		"realtime": {"tick_interval": "1s", "history_every": 30},
		"refresh": {"nodes_interval": 5000000000, "seed_alerts": false},
		"alerts": {
			"lag_threshold": 250,
			"webhooks": [{"enabled": true, "url": "http://example.invalid/hook", "cooldown": "1m"}]
		}
	}`)

	var cfg DashboardConfig
	require.NoError(t, LoadAndValidate(path, &cfg))

	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, Duration(time.Second), cfg.RealTime.TickInterval)
	assert.Equal(t, 30, cfg.RealTime.HistoryEvery)
	assert.Equal(t, Duration(5*time.Second), cfg.Refresh.NodesInterval)
	assert.Equal(t, Duration(defaultTopicsInterval), cfg.Refresh.TopicsInterval)
	require.NotNil(t, cfg.Refresh.SeedAlerts)
	assert.False(t, *cfg.Refresh.SeedAlerts)
	assert.InDelta(t, 250.0, cfg.Alerts.LagThreshold, 0)
	require.Len(t, cfg.Alerts.Webhooks, 1)
	assert.Equal(t, Duration(time.Minute), cfg.Alerts.Webhooks[0].Cooldown)
	assert.Equal(t, models.DefaultHistorySize, cfg.HistorySize)
}

func TestLoadAndValidate_YAML(t *testing.T) {
	path := writeFile(t, "dashboard.yaml", `
listen_addr: ":9100"
grpc_addr: ":50060"
realtime:
  tick_interval: 500ms
  start_paused: true
refresh:
  topics_interval: 2m
api:
  push_rate: 4
`)

	var cfg DashboardConfig
	require.NoError(t, LoadAndValidate(path, &cfg))

	assert.Equal(t, ":9100", cfg.ListenAddr)
	assert.Equal(t, ":50060", cfg.GrpcAddr)
	assert.Equal(t, Duration(500*time.Millisecond), cfg.RealTime.TickInterval)
	assert.True(t, cfg.RealTime.StartPaused)
	assert.Equal(t, Duration(2*time.Minute), cfg.Refresh.TopicsInterval)
	assert.InDelta(t, 4.0, cfg.API.PushRate, 0)
	assert.Equal(t, defaultPushBurst, cfg.API.PushBurst)
}

func TestLoadAndValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		errText string
	}{
		{
			name:    "bad duration",
			file:    "bad.json",
			content: `{"realtime": {"tick_interval": "soon"}}`,
			errText: "invalid duration",
		},
		{
			name:    "bad duration type",
			file:    "bad.json",
			content: `{"realtime": {"tick_interval": true}}`,
			errText: "invalid duration",
		},
		{
			name:    "webhook without url",
			file:    "hook.json",
			content: `{"alerts": {"webhooks": [{"enabled": true}]}}`,
			errText: "without a url",
		},
		{
			name:    "negative history",
			file:    "history.yml",
			content: "history_size: -1\n",
			errText: "history_size",
		},
		{
			name:    "history above cap",
			file:    "history.yml",
			content: "history_size: 500\n",
			errText: "history_size",
		},
		{
			name:    "history one above cap",
			file:    "history.json",
			content: `{"history_size": 101}`,
			errText: "history_size",
		},
		{
			name:    "negative alert retention",
			file:    "alerts.json",
			content: `{"alerts": {"max_retained": -5}}`,
			errText: "max_retained",
		},
		{
			name:    "malformed json",
			file:    "broken.json",
			content: `{`,
			errText: "failed to unmarshal JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg DashboardConfig

			err := LoadAndValidate(writeFile(t, tt.file, tt.content), &cfg)
			assert.ErrorContains(t, err, tt.errText)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	var cfg DashboardConfig

	err := LoadFile(filepath.Join(t.TempDir(), "missing.json"), &cfg)
	assert.ErrorContains(t, err, "failed to read file")
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, defaultListenAddr, cfg.ListenAddr)
	assert.Equal(t, Duration(defaultTickInterval), cfg.RealTime.TickInterval)
	assert.Equal(t, defaultHistoryEvery, cfg.RealTime.HistoryEvery)
	assert.Equal(t, Duration(defaultNodesInterval), cfg.Refresh.NodesInterval)
	assert.True(t, *cfg.Refresh.SeedAlerts)
	assert.Equal(t, models.DefaultHistorySize, cfg.HistorySize)
	assert.Equal(t, defaultMaxAlerts, cfg.Alerts.MaxRetained)
}

func TestValidate_HistoryBounds(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		want    int
		wantErr bool
	}{
		{name: "zero takes default", size: 0, want: models.DefaultHistorySize},
		{name: "smaller is kept", size: 30, want: 30},
		{name: "cap is allowed", size: models.DefaultHistorySize, want: models.DefaultHistorySize},
		{name: "above cap", size: models.DefaultHistorySize + 1, wantErr: true},
		{name: "negative", size: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &DashboardConfig{HistorySize: tt.size}

			err := cfg.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, errInvalidConfig)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.HistorySize)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	envFile := writeFile(t, ".env", "STREAMDASH_GRPC_ADDR=:50099\nSTREAMDASH_START_PAUSED=true\n")

	t.Setenv(EnvListenAddr, ":7000")
	t.Setenv(EnvTickInterval, "3s")
	t.Setenv(EnvGrpcAddr, "")
	t.Setenv(EnvStartPaused, "")

	// clear the variables the env file is expected to set once the test ends
	t.Cleanup(func() {
		_ = os.Unsetenv(EnvGrpcAddr)
		_ = os.Unsetenv(EnvStartPaused)
	})

	require.NoError(t, os.Unsetenv(EnvGrpcAddr))
	require.NoError(t, os.Unsetenv(EnvStartPaused))

	cfg := Default()
	require.NoError(t, ApplyEnv(cfg, envFile))

	assert.Equal(t, ":7000", cfg.ListenAddr)
	assert.Equal(t, ":50099", cfg.GrpcAddr)
	assert.Equal(t, Duration(3*time.Second), cfg.RealTime.TickInterval)
	assert.True(t, cfg.RealTime.StartPaused)
}

func TestApplyEnv_Errors(t *testing.T) {
	t.Run("missing env file", func(t *testing.T) {
		err := ApplyEnv(Default(), filepath.Join(t.TempDir(), "nope.env"))
		assert.ErrorContains(t, err, "failed to load env file")
	})

	t.Run("bad tick interval", func(t *testing.T) {
		t.Setenv(EnvTickInterval, "fast")

		err := ApplyEnv(Default(), "")
		assert.ErrorIs(t, err, errInvalidDuration)
	})
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))
}
