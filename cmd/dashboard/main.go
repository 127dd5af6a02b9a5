// cmd/dashboard/main.go
package main

import (
	"context"
	"flag"
	"log"

	"github.com/mfreeman451/streamdash/pkg/config"
	"github.com/mfreeman451/streamdash/pkg/dashboard"
	"github.com/mfreeman451/streamdash/pkg/lifecycle"
)

const serviceName = "streamdash"

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "", "Path to dashboard config file (.json, .yaml)")
	envFile := flag.String("env", "", "Optional .env file with STREAMDASH_* overrides")
	flag.Parse()

	cfg := config.Default()

	if *configPath != "" {
		cfg = &config.DashboardConfig{}

		if err := config.LoadAndValidate(*configPath, cfg); err != nil {
			return err
		}
	}

	if err := config.ApplyEnv(cfg, *envFile); err != nil {
		return err
	}

	server, err := dashboard.NewServer(cfg)
	if err != nil {
		return err
	}

	opts := &lifecycle.ServerOptions{
		ServiceName: serviceName,
		Service:     server,
		GrpcAddr:    cfg.GrpcAddr,
	}

	return lifecycle.RunServer(context.Background(), opts)
}
