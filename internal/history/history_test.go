package history

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/quocvuong92/learn-cli/internal/constants"
)

func TestAdd_SkipsBlankAndRepeats(t *testing.T) {
	h := New("")
	for _, line := range []string{"ls", "ls", "  ", "!echo hi", "ls", "ls "} {
		h.Add(line)
	}

	want := []string{"ls", "!echo hi", "ls"}
	if got := h.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %v, want %v", got, want)
	}
}

func TestAdd_Limit(t *testing.T) {
	h := New("")
	total := constants.DefaultHistoryLimit + 25
	for i := 0; i < total; i++ {
		h.Add(fmt.Sprintf("cmd%d", i))
	}

	lines := h.Lines()
	if len(lines) != constants.DefaultHistoryLimit {
		t.Fatalf("len(Lines()) = %d, want %d", len(lines), constants.DefaultHistoryLimit)
	}
	if lines[0] != "cmd25" || lines[len(lines)-1] != fmt.Sprintf("cmd%d", total-1) {
		t.Errorf("oldest/newest = %q/%q", lines[0], lines[len(lines)-1])
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.json")

	h := New(path)
	h.Add("learn ls")
	h.Add("!pwd")
	if err := h.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded := New(path)
	if err := loaded.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := loaded.Lines(); !reflect.DeepEqual(got, []string{"learn ls", "!pwd"}) {
		t.Errorf("Lines() = %v", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	h := New(filepath.Join(t.TempDir(), "absent.json"))
	if err := h.Load(); err != nil {
		t.Errorf("Load() error = %v, want nil for a missing file", err)
	}
	if len(h.Lines()) != 0 {
		t.Error("history should be empty")
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := New(path).Load(); err == nil {
		t.Error("Load() should fail on malformed history")
	}
}

func TestInMemory_SaveIsNoop(t *testing.T) {
	h := New("")
	h.Add("ls")
	if err := h.Save(); err != nil {
		t.Errorf("Save() error = %v", err)
	}
}
