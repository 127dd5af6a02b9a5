package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/mfreeman451/streamdash/pkg/models"
)

const (
	defaultListenAddr     = ":8090"
	defaultMaxAlerts      = 200
	defaultTickInterval   = 2 * time.Second
	defaultHistoryEvery   = 15
	defaultNodesInterval  = 30 * time.Second
	defaultTopicsInterval = 60 * time.Second
	defaultLagThreshold   = 900
	defaultDiskThreshold  = 85
	defaultAlertCooldown  = 5 * time.Minute
	defaultPushRate       = 10
	defaultPushBurst      = 20
)

// Environment variables that override file settings.
const (
	EnvListenAddr   = "STREAMDASH_LISTEN_ADDR"
	EnvGrpcAddr     = "STREAMDASH_GRPC_ADDR"
	EnvTickInterval = "STREAMDASH_TICK_INTERVAL"
	EnvStartPaused  = "STREAMDASH_START_PAUSED"
)

// Default returns a configuration with every default applied.
func Default() *DashboardConfig {
	cfg := &DashboardConfig{}

	// an empty config only takes defaults and never fails validation
	_ = cfg.Validate()

	return cfg
}

// Validate fills defaults and rejects values the service cannot run with.
func (c *DashboardConfig) Validate() error {
	if c.ListenAddr == "" {
		c.ListenAddr = defaultListenAddr
	}

	if c.HistorySize < 0 || c.HistorySize > models.DefaultHistorySize {
		return fmt.Errorf("%w: history_size must be between 0 and %d", errInvalidConfig, models.DefaultHistorySize)
	}

	if c.HistorySize == 0 {
		c.HistorySize = models.DefaultHistorySize
	}

	if c.RealTime.TickInterval < 0 || c.Refresh.NodesInterval < 0 || c.Refresh.TopicsInterval < 0 {
		return fmt.Errorf("%w: intervals must not be negative", errInvalidConfig)
	}

	setDefaultDuration(&c.RealTime.TickInterval, defaultTickInterval)
	setDefaultDuration(&c.Refresh.NodesInterval, defaultNodesInterval)
	setDefaultDuration(&c.Refresh.TopicsInterval, defaultTopicsInterval)
	setDefaultDuration(&c.Alerts.Cooldown, defaultAlertCooldown)

	if c.RealTime.HistoryEvery <= 0 {
		c.RealTime.HistoryEvery = defaultHistoryEvery
	}

	if c.Refresh.SeedAlerts == nil {
		seed := true
		c.Refresh.SeedAlerts = &seed
	}

	if c.Alerts.LagThreshold <= 0 {
		c.Alerts.LagThreshold = defaultLagThreshold
	}

	if c.Alerts.DiskThreshold <= 0 {
		c.Alerts.DiskThreshold = defaultDiskThreshold
	}

	if c.Alerts.MaxRetained < 0 {
		return fmt.Errorf("%w: alerts.max_retained must not be negative", errInvalidConfig)
	}

	if c.Alerts.MaxRetained == 0 {
		c.Alerts.MaxRetained = defaultMaxAlerts
	}

	for i, wh := range c.Alerts.Webhooks {
		if wh.Enabled && wh.URL == "" {
			return fmt.Errorf("%w: webhook %d is enabled without a url", errInvalidConfig, i)
		}
	}

	if c.API.PushRate <= 0 {
		c.API.PushRate = defaultPushRate
	}

	if c.API.PushBurst <= 0 {
		c.API.PushBurst = defaultPushBurst
	}

	return nil
}

func setDefaultDuration(d *Duration, def time.Duration) {
	if *d == 0 {
		*d = Duration(def)
	}
}

// ApplyEnv loads envFile (if non-empty) into the process environment and
// then overrides cfg from STREAMDASH_* variables. Variables already set in
// the environment win over the file.
func ApplyEnv(cfg *DashboardConfig, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed to load env file '%s': %w", envFile, err)
		}
	}

	if v := os.Getenv(EnvListenAddr); v != "" {
		cfg.ListenAddr = v
	}

	if v := os.Getenv(EnvGrpcAddr); v != "" {
		cfg.GrpcAddr = v
	}

	if v := os.Getenv(EnvTickInterval); v != "" {
		dur, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", errInvalidDuration, EnvTickInterval, err)
		}

		cfg.RealTime.TickInterval = Duration(dur)
	}

	if v := os.Getenv(EnvStartPaused); v != "" {
		paused, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", errInvalidConfig, EnvStartPaused, err)
		}

		cfg.RealTime.StartPaused = paused
	}

	return cfg.Validate()
}
