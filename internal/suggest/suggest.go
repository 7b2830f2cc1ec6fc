// Package suggest finds the closest known name to a misspelled one.
package suggest

import (
	"strings"

	"formvalue/internal/naming"
)

// MinScore is the similarity a candidate needs to be suggested.
const MinScore = 0.6

// Closest returns the candidate most similar to name after normalization.
// It returns false when no candidate reaches MinScore or name is itself a candidate.
func Closest(name string, candidates []string) (string, bool) {
	best, bestScore := "", 0.0

	for _, c := range candidates {
		if c == name {
			return "", false
		}

		score := Score(name, c)
		if score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < MinScore {
		return "", false
	}

	return best, true
}

// Hint formats a " (did you mean X?)" suffix, or returns "" when nothing is close.
func Hint(name string, candidates []string) string {
	if c, ok := Closest(name, candidates); ok {
		return " (did you mean " + c + "?)"
	}

	return ""
}

// Score computes a similarity between 0 and 1 of two identifiers after normalizing them.
func Score(a, b string) float64 {
	return normalized(Normalize(a), Normalize(b))
}

// Normalize lower-cases an identifier and drops its word separators,
// so "first_name", "firstName" and "first-name" compare equal.
func Normalize(s string) string {
	return strings.ToLower(strings.Join(naming.Tokenize(s), ""))
}

func normalized(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}

	maxLen := max(len(b), len(a))

	return 1.0 - float64(Levenshtein(a, b))/float64(maxLen)
}

// Levenshtein computes the edit distance between two strings.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	// two rows instead of the full matrix
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}
