package lifecycle

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mfreeman451/streamdash/pkg/grpc"
)

const (
	MaxRecvSize     = 4 * 1024 * 1024 // 4MB
	MaxSendSize     = 4 * 1024 * 1024 // 4MB
	ShutdownTimeout = 10 * time.Second
)

// ServerOptions holds configuration for running a service.
type ServerOptions struct {
	ServiceName string
	Service     Service
	// GrpcAddr enables the gRPC health endpoint when set.
	GrpcAddr string
	// Signals overrides the shutdown signals, SIGINT and SIGTERM by default.
	Signals []os.Signal
}

// RunServer starts the service and blocks until a signal arrives, the
// context is canceled or the service fails, then shuts everything down.
func RunServer(ctx context.Context, opts *ServerOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log.Printf("*** Starting service %s", opts.ServiceName)

	errChan := make(chan error, 2)

	var grpcServer *grpc.Server

	if opts.GrpcAddr != "" {
		grpcServer = grpc.NewServer(opts.GrpcAddr,
			grpc.WithMaxRecvSize(MaxRecvSize),
			grpc.WithMaxSendSize(MaxSendSize),
		)

		if err := grpcServer.Listen(); err != nil {
			return fmt.Errorf("failed to setup gRPC server: %w", err)
		}

		grpcServer.SetServing(opts.ServiceName, true)

		go func() {
			if err := grpcServer.Serve(); err != nil {
				errChan <- err
			}
		}()
	}

	go func() {
		if err := opts.Service.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	return handleShutdown(ctx, cancel, opts, grpcServer, errChan)
}

func handleShutdown(
	ctx context.Context, cancel context.CancelFunc, opts *ServerOptions, grpcServer *grpc.Server, errChan chan error) error {
	signals := opts.Signals
	if len(signals) == 0 {
		signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, signals...)

	defer signal.Stop(sigChan)

	select {
	case sig := <-sigChan:
		log.Printf("Received signal %v, initiating shutdown", sig)
	case err := <-errChan:
		log.Printf("Received error: %v, initiating shutdown", err)

		cancel()

		if grpcServer != nil {
			grpcServer.Stop(context.Background())
		}

		return fmt.Errorf("service error: %w", err)
	case <-ctx.Done():
		log.Printf("Context canceled, initiating shutdown")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer shutdownCancel()

	cancel()

	if grpcServer != nil {
		grpcServer.Stop(shutdownCtx)
	}

	if err := opts.Service.Stop(shutdownCtx); err != nil {
		log.Printf("Error during service shutdown: %v", err)
		return fmt.Errorf("shutdown error: %w", err)
	}

	log.Printf("*** Service %s stopped", opts.ServiceName)

	return nil
}
