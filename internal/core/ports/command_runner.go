// Package ports defines the core interfaces for the application.
package ports

import "context"

// CommandRunner defines the interface for running external processes.
//
//go:generate mockgen -source=command_runner.go -destination=mocks/mock_command_runner.go -package=mocks
type CommandRunner interface {
	// Output runs name with args and returns what the process wrote to stdout.
	//
	// A non-zero exit status is reported as an error; stderr is discarded.
	Output(ctx context.Context, name string, args []string) ([]byte, error)
}
