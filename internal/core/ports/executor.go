// Package ports defines the core interfaces for the application.
package ports

import "context"

// Executor defines the interface for running the user's command.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run starts command through the platform shell with the parent's
	// standard streams and waits for it to exit.
	//
	// A command that runs and exits non-zero is reported through the exit
	// code with a nil error. An error is returned only when the command
	// could not be started.
	Run(ctx context.Context, command []string) (int, error)
}
