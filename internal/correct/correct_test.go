package correct

import (
	"math"
	"testing"
)

var commands = []string{"cat", "git", "gzip", "ls", "make", "python", "python3", "vim"}

func TestAutoCorrect(t *testing.T) {
	tests := []struct {
		name  string
		word  string
		cands []string
		want  string
	}{
		{"transposed letters", "gti", commands, "git"},
		{"missing letter", "pyhon", commands, "python"},
		{"swapped pair", "pyhton", commands, "python"},
		{"extra letter", "maake", commands, "make"},
		{"no close match", "kubectl", commands, "kubectl"},
		{"empty candidates", "gti", nil, "gti"},
		{"empty word", "", commands, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AutoCorrect(tt.word, tt.cands); got != tt.want {
				t.Errorf("AutoCorrect(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestAutoCorrect_ExactMatchIsIdempotent(t *testing.T) {
	for _, c := range commands {
		if got := AutoCorrect(c, commands); got != c {
			t.Errorf("AutoCorrect(%q) = %q, want unchanged", c, got)
		}
	}
}

func TestAutoCorrect_TieKeepsEarliestCandidate(t *testing.T) {
	// "ab" scores 0.8 against both "abc" and "abd".
	if got := AutoCorrect("ab", []string{"abc", "abd"}); got != "abc" {
		t.Errorf("AutoCorrect() = %q, want first of the tied candidates", got)
	}
	if got := AutoCorrect("ab", []string{"abd", "abc"}); got != "abd" {
		t.Errorf("AutoCorrect() = %q, want first of the tied candidates", got)
	}
}

func TestCloseMatches_Scores(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"git", "git", 1.0},
		{"gti", "git", 2.0 * 2 / 6},
		{"abcd", "bcde", 0.75},
		{"abc", "xyz", 0},
		{"", "", 1.0},
	}
	for _, tt := range tests {
		got := CloseMatches(tt.a, []string{tt.b}, 1, 0)
		if len(got) != 1 || math.Abs(got[0].Score-tt.want) > 1e-9 {
			t.Errorf("CloseMatches(%q, [%q]) = %+v, want score %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCloseMatches_OrderAndLimit(t *testing.T) {
	got := CloseMatches("python", commands, 0, DefaultCutoff)
	if len(got) != 2 {
		t.Fatalf("CloseMatches() = %v, want python and python3", got)
	}
	if got[0].Candidate != "python" || got[0].Score != 1.0 {
		t.Errorf("best match = %+v, want exact python first", got[0])
	}
	if got[1].Candidate != "python3" {
		t.Errorf("second match = %+v", got[1])
	}

	if limited := CloseMatches("python", commands, 1, DefaultCutoff); len(limited) != 1 {
		t.Errorf("n=1 returned %d matches", len(limited))
	}
}

func TestCloseMatches_Cutoff(t *testing.T) {
	if got := CloseMatches("gti", commands, 0, 0.99); len(got) != 0 {
		t.Errorf("CloseMatches() = %v, want none above 0.99", got)
	}
}

func TestCloseMatches_Unicode(t *testing.T) {
	got := CloseMatches("café", []string{"cafe", "caff"}, 1, DefaultCutoff)
	if len(got) != 1 || got[0].Candidate != "cafe" {
		t.Errorf("CloseMatches() = %v", got)
	}
}
