package vectorize

import (
	"strconv"
	"strings"
)

// CharHash vectorizes by hashing the text once per output dimension.
// Every component lies in [-1, 1].
type CharHash struct{}

// Name returns the strategy identifier.
func (CharHash) Name() string { return StrategyCharHash }

// Vectorize derives component i from a 32-bit polynomial rolling hash over
// text + decimal(i). The hash wraps exactly as int32 overflow at every step;
// this wraparound is load-bearing for cross-run reproducibility, so it must
// not be widened to 64-bit arithmetic. The final hash is reduced with a
// non-negative modulus before mapping into [-1, 1].
func (CharHash) Vectorize(text string, dims int) []float64 {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	out := make([]float64, dims)
	for i := range out {
		seed := text + strconv.Itoa(i)
		var h int32
		for _, r := range seed {
			h = h*31 + int32(r)
		}
		m := h % 2000
		if m < 0 {
			m += 2000
		}
		out[i] = float64(m)/1000.0 - 1
	}
	return out
}
