// Package aliases persists user-defined command aliases as a flat JSON
// object mapping alias to full shell command.
//
// The file is read and written whole on every call. There is no locking:
// learn is a single-user, single-process tool.
package aliases

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrEmptyAlias is returned when an alias name is blank.
var ErrEmptyAlias = errors.New("alias name must not be empty")

// Store reads and writes the alias file at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store backed by path. Nothing is touched on disk
// until Load or Save is called.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the current mapping. A missing file is created containing
// an empty object.
func (s *Store) Load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		if err := s.Save(map[string]string{}); err != nil {
			return nil, err
		}
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read alias file %s: %w", s.path, err)
	}

	aliases := map[string]string{}
	if err := json.Unmarshal(data, &aliases); err != nil {
		return nil, fmt.Errorf("failed to parse alias file %s: %w", s.path, err)
	}
	// A file containing "null" decodes to a nil map.
	if aliases == nil {
		aliases = map[string]string{}
	}
	return aliases, nil
}

// Save overwrites the file with aliases, pretty-printed.
func (s *Store) Save(aliases map[string]string) error {
	if aliases == nil {
		aliases = map[string]string{}
	}
	data, err := json.MarshalIndent(aliases, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode aliases: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create alias directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write alias file %s: %w", s.path, err)
	}
	return nil
}

// Set stores command under alias, replacing any previous value.
func (s *Store) Set(alias, command string) error {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		return ErrEmptyAlias
	}
	aliases, err := s.Load()
	if err != nil {
		return err
	}
	aliases[alias] = command
	return s.Save(aliases)
}

// Lookup returns the command stored for alias.
func (s *Store) Lookup(alias string) (string, bool, error) {
	aliases, err := s.Load()
	if err != nil {
		return "", false, err
	}
	cmd, ok := aliases[alias]
	return cmd, ok, nil
}

// Names returns the alias names in sorted order.
func Names(aliases map[string]string) []string {
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Expand replaces a leading alias in command with its stored value.
// "gs -s" with {"gs": "git status"} becomes "git status -s".
func Expand(command string, aliases map[string]string) string {
	trimmed := strings.TrimLeft(command, " \t")
	first, rest, _ := strings.Cut(trimmed, " ")
	full, ok := aliases[first]
	if !ok {
		return command
	}
	if rest == "" {
		return full
	}
	return full + " " + rest
}
