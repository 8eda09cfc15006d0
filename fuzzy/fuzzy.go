// Package fuzzy provides a naive fuzzy text matcher for correcting
// mis-spelled student names while typing.
//
// Score computes case-insensitive cosine similarity between two strings
// using byte unigram and bigram features. It is a total pure function:
// no shared state, no failure modes, result always in [0, 1].
package fuzzy

import (
	"math"
	"strings"
)

// Score computes the cosine similarity of a and b in [0.0, 1.0].
//
// Both inputs are lower-cased before feature extraction. An empty string
// has an empty feature vector, so it scores exactly 0.0 against anything,
// including another empty string.
func Score(a, b string) float32 {
	fa := features(strings.ToLower(a))
	fb := features(strings.ToLower(b))

	// Accumulate in float64 so the result does not depend on map
	// iteration order at float32 precision.
	var sum float64
	for gram, wa := range fa {
		if wb, ok := fb[gram]; ok {
			sum += wa * wb
		}
	}
	return float32(sum)
}

// features builds the L2-normalized unigram+bigram count vector of s.
// The map is keyed by the raw byte window. An empty input yields an empty
// map; the caller never divides by the zero norm.
func features(s string) map[string]float64 {
	fs := make(map[string]float64, 2*len(s))
	for k := 1; k <= 2; k++ {
		if k > len(s) {
			break
		}
		for i := 0; i+k <= len(s); i++ {
			fs[s[i:i+k]]++
		}
	}
	if len(fs) == 0 {
		return fs
	}

	var norm2 float64
	for _, v := range fs {
		norm2 += v * v
	}
	inv := 1 / math.Sqrt(norm2)
	for gram, v := range fs {
		fs[gram] = v * inv
	}
	return fs
}
