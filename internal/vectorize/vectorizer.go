// Package vectorize turns input text into deterministic pseudo-embedding vectors.
//
// There is no model behind these vectors: they are repeatable hash-to-float
// mappings whose only job is to give identical text an identical vector and
// distinct text a visually distinct one. Two strategies exist side by side
// (per-dimension char hashing and word-position accumulation); they produce
// different vectors for the same text and are never merged.
package vectorize

// Vectorizer maps text to a fixed-length vector. Implementations are pure
// functions of their inputs: the same text and dimension count produce the
// same vector on any call, in any process, with no dependence on prior calls.
// Empty or all-whitespace text yields nil, not an error.
type Vectorizer interface {
	Vectorize(text string, dims int) []float64
	Name() string
}

// Strategy names accepted by New.
const (
	StrategyCharHash     = "charhash"
	StrategyWordPosition = "wordpos"
)

// New returns the vectorizer registered under name. Unknown names fall back
// to the word-position strategy.
func New(name string) Vectorizer {
	switch name {
	case StrategyCharHash:
		return CharHash{}
	default:
		return WordPosition{}
	}
}
