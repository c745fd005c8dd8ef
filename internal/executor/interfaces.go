// Package executor runs "!" passthrough commands through the platform shell.
//
// The passthrough executes arbitrary text typed by the local user, with that
// user's privileges and environment. It is a convenience for a trusted user
// at their own terminal, not an API to expose to other input sources. The
// risk classifier only refuses a handful of obviously destructive patterns
// typed by accident.
package executor

import (
	"context"
	"time"
)

// CommandExecutor defines the interface for executing shell commands.
// This interface enables dependency injection and easier testing.
type CommandExecutor interface {
	// Execute runs a shell command and returns the result
	Execute(ctx context.Context, command string) (*ExecutionResult, error)

	// SetTimeout sets the command execution timeout
	SetTimeout(timeout time.Duration)

	// AllowDangerous lifts the refusal of dangerous commands
	AllowDangerous(allow bool)
}

// Ensure concrete types implement the interfaces
var _ CommandExecutor = (*Executor)(nil)
