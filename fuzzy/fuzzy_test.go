package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_Identity(t *testing.T) {
	tests := []string{"abcd", "a", "student A", "ÅBÉ"}

	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			assert.InDelta(t, 1.0, Score(s, s), 1e-5)
		})
	}
}

func TestScore_Empty(t *testing.T) {
	assert.Equal(t, float32(0), Score("", ""))
	assert.Equal(t, float32(0), Score("", "abc"))
	assert.Equal(t, float32(0), Score("abc", ""))
}

func TestScore_Disjoint(t *testing.T) {
	assert.Equal(t, float32(0), Score("abc", "ef"))
	assert.Equal(t, float32(0), Score("abcd", "efg"))
}

func TestScore_Symmetry(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"Partial", "abc", "bcef"},
		{"Disjoint", "abc", "xyz"},
		{"Empty", "", "abc"},
		{"Case", "AbC", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Score(tt.a, tt.b), Score(tt.b, tt.a))
		})
	}
}

func TestScore_CaseFolding(t *testing.T) {
	assert.InDelta(t, 1.0, Score("Student A", "sTUDENT a"), 1e-5)
}

func TestScore_Range(t *testing.T) {
	tests := [][2]string{
		{"abcd", "a"}, {"abcd", "ce"}, {"abcd", "cb"}, {"abcd", "dcba"},
	}

	for _, tt := range tests {
		got := Score(tt[0], tt[1])
		assert.GreaterOrEqual(t, got, float32(0))
		assert.LessOrEqual(t, got, float32(1))
	}
}

// Single-character matches weigh the same regardless of which position
// they hit, and repeated matching characters raise the score.
func TestScore_Unigram(t *testing.T) {
	target := "aaaa"

	assert.Less(t, Score("abc", target), Score("aba", target))
	assert.Equal(t, Score("abac", target), Score("baca", target))
}

// Matching characters in the right relative order contribute shared
// bigrams on top of the unigram hits.
func TestScore_Bigram(t *testing.T) {
	target := "abcd"

	assert.Less(t, Score("baaa", target), Score("aaab", target))
	assert.Equal(t, Score("bc", target), Score("cd", target))
}

// Longer in-order runs keep beating out-of-order ones.
func TestScore_OrderSensitivity(t *testing.T) {
	target := "abcd"

	assert.Less(t, Score("ecba", target), Score("eabc", target))
	assert.Less(t, Score("cb", target), Score("bc", target))
}

// Unmatched extra characters dilute the normalized vector and lower
// the score relative to a shorter exact partial match.
func TestScore_ExtraCharacterPenalty(t *testing.T) {
	target := "abcd"

	assert.Greater(t, Score("a", target), Score("ce", target))
	assert.Less(t, Score("a", target), Score("cb", target))
}
