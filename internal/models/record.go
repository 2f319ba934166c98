// Package models defines the record and result types shared across Vekta packages.
package models

// Position is a 3D placement for a record, derived from its vector.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// TextVector is one stored record: a source text, its pseudo-embedding
// vector, and the 3D position derived from it. All fields are fixed at
// creation; editing is modeled as remove+add.
type TextVector struct {
	ID       string    `json:"id"`
	Text     string    `json:"text"`
	Vector   []float64 `json:"vector"`
	Position Position  `json:"position"`
	// Color is a display tag assigned cyclically from the palette by
	// insertion order. Cosmetic only.
	Color string `json:"color"`
}
