// Package similarity scores and ranks vectors under selectable metrics.
package similarity

import (
	"math"
	"strings"
)

// Metric selects the similarity formula used by Score.
type Metric string

const (
	// Cosine is the dot product of pre-normalized vectors, clamped to >= 0.
	// Callers must normalize vectors upstream (the word-position vectorizer
	// does); inputs are not re-normalized at comparison time.
	Cosine Metric = "cosine"
	// Euclidean is a bounded inverse distance: max(0, 1 - L2(a,b)/2).
	Euclidean Metric = "euclidean"
	// Manhattan is max(0, 1 - L1(a,b)/length).
	Manhattan Metric = "manhattan"
	// Dot is the raw dot product, clamped to >= 0.
	Dot Metric = "dot"
)

// Metrics lists every valid metric in display order.
var Metrics = []Metric{Cosine, Euclidean, Manhattan, Dot}

// ParseMetric maps a string to a Metric. Unrecognized values default to
// Cosine rather than erroring, matching the boundary contract.
func ParseMetric(s string) Metric {
	switch m := Metric(strings.ToLower(strings.TrimSpace(s))); m {
	case Cosine, Euclidean, Manhattan, Dot:
		return m
	default:
		return Cosine
	}
}

// Score computes the similarity of a and b under m. Scores are never
// negative. Vectors of unequal length are a caller bug; the score degrades
// gracefully by treating missing indices as zero rather than failing.
func Score(a, b []float64, m Metric) float64 {
	switch m {
	case Euclidean:
		return math.Max(0, 1-l2Distance(a, b)/2)
	case Manhattan:
		n := longer(a, b)
		if n == 0 {
			return 0
		}
		return math.Max(0, 1-l1Distance(a, b)/float64(n))
	default: // Cosine and Dot share the clamped dot product formula.
		return math.Max(0, dotProduct(a, b))
	}
}

// dotProduct treats indices past the shorter vector as zero, so only the
// shared prefix contributes.
func dotProduct(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
	}
	return dot
}

func l2Distance(a, b []float64) float64 {
	var sum float64
	for i := 0; i < longer(a, b); i++ {
		d := at(a, i) - at(b, i)
		sum += d * d
	}
	return math.Sqrt(sum)
}

func l1Distance(a, b []float64) float64 {
	var sum float64
	for i := 0; i < longer(a, b); i++ {
		sum += math.Abs(at(a, i) - at(b, i))
	}
	return sum
}

func at(v []float64, i int) float64 {
	if i < len(v) {
		return v[i]
	}
	return 0
}

func longer(a, b []float64) int {
	if len(a) > len(b) {
		return len(a)
	}
	return len(b)
}
