package reconcile

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DefaultCutoff is the minimum similarity ratio for an approximate match.
const DefaultCutoff = 0.6

// Similarity returns the SequenceMatcher ratio between a and b, in [0, 1].
func Similarity(a, b string) float64 {
	return difflib.NewMatcher(chars(a), chars(b)).Ratio()
}

// CloseMatch returns the candidate most similar to word whose ratio is at
// least cutoff. Equal ratios prefer the lexicographically greater candidate.
func CloseMatch(word string, candidates []string, cutoff float64) (string, float64, bool) {
	w := chars(word)
	best, bestScore, found := "", 0.0, false

	for _, c := range candidates {
		m := difflib.NewMatcher(chars(c), w)
		if m.RealQuickRatio() < cutoff || m.QuickRatio() < cutoff {
			continue
		}
		score := m.Ratio()
		if score < cutoff {
			continue
		}
		if !found || score > bestScore || (score == bestScore && c > best) {
			best, bestScore, found = c, score, true
		}
	}
	return best, bestScore, found
}

func chars(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "")
}
