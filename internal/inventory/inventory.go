// Package inventory lists the commands reachable through the search path
// and answers whether a name resolves to an installed executable.
package inventory

import (
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// Inventory is the sorted set of entry names found on the search path when
// it was built. It is never refreshed; build a new one to pick up changes.
type Inventory struct {
	names []string
}

// New scans pathList and returns the resulting inventory.
func New(pathList string) *Inventory {
	return &Inventory{names: Scan(pathList)}
}

// FromNames builds an inventory from an explicit list of names.
func FromNames(names []string) *Inventory {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return &Inventory{names: sortedKeys(set)}
}

// Scan splits pathList on the platform list separator, lists every entry
// of each directory and returns the sorted union of the names. Empty,
// missing and non-directory entries are skipped. Executability is not
// checked here; see IsInstalled.
func Scan(pathList string) []string {
	set := make(map[string]struct{})
	for _, dir := range filepath.SplitList(pathList) {
		if dir == "" {
			continue
		}
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			set[e.Name()] = struct{}{}
		}
	}
	return sortedKeys(set)
}

func sortedKeys(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Names returns the sorted names. Callers must not modify the slice.
func (inv *Inventory) Names() []string {
	return inv.names
}

// Len returns the number of names.
func (inv *Inventory) Len() int {
	return len(inv.names)
}

// Contains reports whether name is in the inventory.
func (inv *Inventory) Contains(name string) bool {
	i := sort.SearchStrings(inv.names, name)
	return i < len(inv.names) && inv.names[i] == name
}

// Complete returns the names starting with prefix, in order.
func (inv *Inventory) Complete(prefix string) []string {
	start := sort.SearchStrings(inv.names, prefix)
	end := start
	for end < len(inv.names) && strings.HasPrefix(inv.names[end], prefix) {
		end++
	}
	return inv.names[start:end]
}

// IsInstalled reports whether name resolves to an executable through the
// platform's lookup rules (PATHEXT on Windows, the execute bit elsewhere).
// Each call consults the search path afresh.
func IsInstalled(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	_, err := exec.LookPath(name)
	return err == nil
}
