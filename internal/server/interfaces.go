package server

import "context"

// Server defines the lifecycle contract for the transport server.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT, then shuts down
	// gracefully.
	RunServer()

	// Run serves until ctx is canceled or the listener fails.
	Run(ctx context.Context) error

	// Shutdown stops accepting connections and waits for in-flight
	// requests, bounded by ctx.
	Shutdown(ctx context.Context) error
}
