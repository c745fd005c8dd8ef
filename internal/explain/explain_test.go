package explain

import (
	"reflect"
	"testing"
)

func TestExplain_Known(t *testing.T) {
	tests := map[string]string{
		"ls": "The 'ls' command lists directory contents.",
		"cd": "The 'cd' command changes the current directory.",
		"rm": "The 'rm' command removes files or directories.",
	}
	for cmd, want := range tests {
		if got := Explain(cmd); got != want {
			t.Errorf("Explain(%q) = %q, want %q", cmd, got, want)
		}
	}
}

func TestExplain_Unknown(t *testing.T) {
	for _, cmd := range []string{"", "git", "LS", "ls ", "rmdir"} {
		if got := Explain(cmd); got != NoExplanation {
			t.Errorf("Explain(%q) = %q, want sentinel", cmd, got)
		}
	}
}

func TestTopics(t *testing.T) {
	if got := Topics(); !reflect.DeepEqual(got, []string{"cd", "ls", "rm"}) {
		t.Errorf("Topics() = %v", got)
	}
}
