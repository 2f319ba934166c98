// Package project reduces vectors to 3D positions for spatial display.
package project

import "github.com/hyperjump/vekta/internal/models"

// Default partition bounds and spread factor, tuned for 128-dimension
// vectors split roughly into thirds.
const (
	DefaultBoundA = 43
	DefaultBoundB = 86
	DefaultScale  = 8.0
)

// Projector maps a vector to a 3D position by summing three contiguous
// slices of it: [0,BoundA) -> X, [BoundA,BoundB) -> Y, [BoundB,len) -> Z.
// The bounds are configuration, not derived from the vector.
type Projector struct {
	BoundA int
	BoundB int
	Scale  float64
}

// Default returns a projector with the standard bounds and scale.
func Default() Projector {
	return Projector{BoundA: DefaultBoundA, BoundB: DefaultBoundB, Scale: DefaultScale}
}

// Project sums each slice and multiplies by Scale. Bounds clamp against the
// actual vector length, so vectors shorter than BoundB simply contribute the
// elements they have.
func (p Projector) Project(vec []float64) models.Position {
	a := clamp(p.BoundA, len(vec))
	b := clamp(p.BoundB, len(vec))
	if b < a {
		b = a
	}
	return models.Position{
		X: sum(vec[:a]) * p.Scale,
		Y: sum(vec[a:b]) * p.Scale,
		Z: sum(vec[b:]) * p.Scale,
	}
}

func clamp(bound, n int) int {
	if bound < 0 {
		return 0
	}
	if bound > n {
		return n
	}
	return bound
}

func sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}
