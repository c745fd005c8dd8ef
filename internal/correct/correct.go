// Package correct suggests the closest known command for a mistyped name
// using the SequenceMatcher similarity ratio (2*M/T over runes).
package correct

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/quocvuong92/learn-cli/internal/constants"
)

// DefaultCutoff is the minimum ratio a candidate must reach.
const DefaultCutoff = constants.SimilarityCutoff

// Match is a candidate together with its similarity to the input.
type Match struct {
	Candidate string
	Score     float64
}

// AutoCorrect returns the candidate most similar to word when its ratio is
// at least DefaultCutoff, and word unchanged otherwise. Equal scores keep
// the earliest candidate, so a sorted candidate list breaks ties
// lexicographically.
func AutoCorrect(word string, candidates []string) string {
	for _, c := range candidates {
		if c == word {
			return word
		}
	}
	matches := CloseMatches(word, candidates, 1, DefaultCutoff)
	if len(matches) == 0 {
		return word
	}
	return matches[0].Candidate
}

// CloseMatches returns up to n candidates whose ratio against word is at
// least cutoff, best first. n <= 0 returns every qualifying candidate.
// Equal scores keep candidate order, unlike Python's get_close_matches,
// which returns the lexicographically largest of tied candidates first.
func CloseMatches(word string, candidates []string, n int, cutoff float64) []Match {
	if len(candidates) == 0 {
		return nil
	}

	m := difflib.NewMatcher(nil, split(word))
	var matches []Match
	for _, c := range candidates {
		m.SetSeq1(split(c))
		// Cheap upper bounds first, as difflib.get_close_matches does.
		if m.RealQuickRatio() < cutoff || m.QuickRatio() < cutoff {
			continue
		}
		if score := m.Ratio(); score >= cutoff {
			matches = append(matches, Match{Candidate: c, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if n > 0 && len(matches) > n {
		matches = matches[:n]
	}
	return matches
}

// split turns s into one element per rune.
func split(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "")
}
