package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"hello", "hello", 0},
		{"", "abc", 3},
		{"a", "ab", 1},
		{"ab", "a", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"createdat", "updatedat", 3},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a), "symmetry")
		})
	}
}

func TestScore(t *testing.T) {
	assert.InDelta(t, 1.0, Score("published_at", "publishedAt"), 0.001)
	assert.InDelta(t, 1.0, Score("first-name", "FirstName"), 0.001)
	assert.InDelta(t, 0.0, Score("abc", "xyz"), 0.001)
	assert.Less(t, Score("email", "password"), MinScore)
}

func TestClosest(t *testing.T) {
	candidates := []string{"post", "user", "comment"}

	got, ok := Closest("usr", candidates)
	assert.True(t, ok)
	assert.Equal(t, "user", got)

	got, ok = Closest("coment", candidates)
	assert.True(t, ok)
	assert.Equal(t, "comment", got)

	_, ok = Closest("invoice", candidates)
	assert.False(t, ok)

	_, ok = Closest("post", candidates)
	assert.False(t, ok, "exact names need no suggestion")

	_, ok = Closest("anything", nil)
	assert.False(t, ok)
}

func TestHint(t *testing.T) {
	assert.Equal(t, " (did you mean resolve?)", Hint("reslove", []string{"resolve", "check", "overrides"}))
	assert.Empty(t, Hint("zzz", []string{"resolve", "check"}))
}
