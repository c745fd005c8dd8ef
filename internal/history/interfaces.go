// Package history persists the lines typed in interactive sessions so they
// can be recalled with the arrow keys across runs.
package history

// HistoryManager defines the interface for managing input history.
// This interface enables dependency injection and easier testing.
type HistoryManager interface {
	// Load reads the history from disk
	Load() error

	// Save writes the history to disk
	Save() error

	// Add records a submitted line
	Add(line string)

	// Lines returns the recorded lines, oldest first
	Lines() []string
}

// Ensure concrete type implements the interface
var _ HistoryManager = (*History)(nil)
