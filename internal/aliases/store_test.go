package aliases

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "command_config.json"))
}

func TestLoad_CreatesMissingFile(t *testing.T) {
	store := newTestStore(t)

	aliases, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(aliases) != 0 {
		t.Errorf("Load() = %v, want empty mapping", aliases)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("alias file was not created: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("file content = %q, want {}", string(data))
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	original := map[string]string{
		"gs": "git status",
		"ll": "ls -la",
		"k":  "kubectl --context prod",
	}

	if err := store.Save(original); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := store.Save(loaded); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	again, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !reflect.DeepEqual(again, original) {
		t.Errorf("round trip = %v, want %v", again, original)
	}
}

func TestSave_PrettyPrinted(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save(map[string]string{"gs": "git status"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, _ := os.ReadFile(store.Path())
	want := "{\n    \"gs\": \"git status\"\n}"
	if string(data) != want {
		t.Errorf("file content = %q, want %q", string(data), want)
	}
}

func TestSet_Customize(t *testing.T) {
	store := newTestStore(t)

	if err := store.Set("gs", "git status"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var got map[string]string
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("alias file is not JSON: %v", err)
	}
	if !reflect.DeepEqual(got, map[string]string{"gs": "git status"}) {
		t.Errorf("alias file = %v", got)
	}
}

func TestSet_OverwritesExisting(t *testing.T) {
	store := newTestStore(t)
	_ = store.Set("gs", "git status")
	_ = store.Set("gd", "git diff")
	if err := store.Set("gs", "git status -sb"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	cmd, ok, err := store.Lookup("gs")
	if err != nil || !ok {
		t.Fatalf("Lookup() = %q, %v, %v", cmd, ok, err)
	}
	if cmd != "git status -sb" {
		t.Errorf("Lookup(gs) = %q, want overwritten value", cmd)
	}
	if _, ok, _ := store.Lookup("gd"); !ok {
		t.Error("other aliases should survive an overwrite")
	}
}

func TestSet_EmptyAlias(t *testing.T) {
	store := newTestStore(t)
	if err := store.Set("  ", "ls"); err != ErrEmptyAlias {
		t.Errorf("Set() error = %v, want %v", err, ErrEmptyAlias)
	}
}

func TestLoad_Malformed(t *testing.T) {
	store := newTestStore(t)
	if err := os.WriteFile(store.Path(), []byte(`{"gs": `), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Load(); err == nil {
		t.Error("Load() should fail on malformed JSON")
	}
}

func TestLoad_NullDocument(t *testing.T) {
	store := newTestStore(t)
	if err := os.WriteFile(store.Path(), []byte("null"), 0644); err != nil {
		t.Fatal(err)
	}
	aliases, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if aliases == nil {
		t.Error("Load() should never return a nil map")
	}
}

func TestSave_Unwritable(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced here")
	}
	dir := t.TempDir()
	if err := os.Chmod(dir, 0500); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(dir, 0755) })

	store := NewStore(filepath.Join(dir, "command_config.json"))
	if _, err := store.Load(); err == nil {
		t.Error("Load() should surface the write error for an unwritable path")
	}
}

func TestNames_Sorted(t *testing.T) {
	got := Names(map[string]string{"z": "1", "a": "2", "m": "3"})
	if !reflect.DeepEqual(got, []string{"a", "m", "z"}) {
		t.Errorf("Names() = %v", got)
	}
}

func TestExpand(t *testing.T) {
	aliases := map[string]string{"gs": "git status", "ll": "ls -la"}

	tests := []struct {
		in   string
		want string
	}{
		{"gs", "git status"},
		{"gs -s", "git status -s"},
		{"  ll /tmp", "ls -la /tmp"},
		{"echo gs", "echo gs"},
		{"gsx", "gsx"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Expand(tt.in, aliases); got != tt.want {
				t.Errorf("Expand(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
