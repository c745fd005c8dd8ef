package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/quocvuong92/learn-cli/internal/constants"
)

// Entry is one submitted line.
type Entry struct {
	Line string    `json:"line"`
	Time time.Time `json:"time"`
}

type fileFormat struct {
	Entries []Entry `json:"entries"`
}

// History keeps the most recent input lines, bounded by limit.
type History struct {
	mu      sync.Mutex
	path    string
	limit   int
	entries []Entry
}

// New creates a history backed by path. An empty path keeps history in
// memory only.
func New(path string) *History {
	return &History{path: path, limit: constants.DefaultHistoryLimit}
}

// Path returns the backing file, if any.
func (h *History) Path() string {
	return h.path
}

// Load reads the history file. A missing file leaves the history empty.
func (h *History) Load() error {
	if h.path == "" {
		return nil
	}
	data, err := os.ReadFile(h.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read history %s: %w", h.path, err)
	}

	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse history %s: %w", h.path, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = f.Entries
	h.trim()
	return nil
}

// Save writes the history file, creating its directory if needed.
func (h *History) Save() error {
	if h.path == "" {
		return nil
	}
	h.mu.Lock()
	data, err := json.MarshalIndent(fileFormat{Entries: h.entries}, "", "  ")
	h.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}

	if dir := filepath.Dir(h.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create history directory: %w", err)
		}
	}
	if err := os.WriteFile(h.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write history %s: %w", h.path, err)
	}
	return nil
}

// Add records line. Blank lines and repeats of the previous line are skipped.
func (h *History) Add(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if n := len(h.entries); n > 0 && h.entries[n-1].Line == line {
		return
	}
	h.entries = append(h.entries, Entry{Line: line, Time: time.Now()})
	h.trim()
}

// Lines returns the recorded lines, oldest first.
func (h *History) Lines() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	lines := make([]string, len(h.entries))
	for i, e := range h.entries {
		lines[i] = e.Line
	}
	return lines
}

func (h *History) trim() {
	if h.limit > 0 && len(h.entries) > h.limit {
		h.entries = append([]Entry(nil), h.entries[len(h.entries)-h.limit:]...)
	}
}
