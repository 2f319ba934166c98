package vectorize

import (
	"math"
	"strings"

	"github.com/hyperjump/vekta/pkg/utils"
)

// WordPosition vectorizes by scattering per-character contributions across
// the vector based on word and character positions, then normalizing to unit
// length. This is the strategy the similarity explorer uses: normalized
// output makes the dot product behave as cosine similarity downstream.
type WordPosition struct{}

// Name returns the strategy identifier.
func (WordPosition) Name() string { return StrategyWordPosition }

// Vectorize accumulates sin(code*0.1)*cos(w*0.2) into index
// (code + w*7 + c*3) mod dims for each character. Contributions sum when
// characters land on the same index. The result is L2-normalized; a raw
// all-zero vector is returned unnormalized.
func (WordPosition) Vectorize(text string, dims int) []float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	vec := make([]float64, dims)
	for w, word := range words {
		c := 0
		for _, r := range word {
			idx := (int(r) + w*7 + c*3) % dims
			vec[idx] += math.Sin(float64(r)*0.1) * math.Cos(float64(w)*0.2)
			c++
		}
	}
	utils.NormalizeL2(vec)
	return vec
}
