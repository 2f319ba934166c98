// Package store holds the in-memory, session-scoped collection of
// vectorized text records.
package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/hyperjump/vekta/internal/models"
	"github.com/hyperjump/vekta/internal/project"
	"github.com/hyperjump/vekta/internal/vectorize"
)

// Palette is the fixed display palette. Colors are assigned cyclically by
// insertion order; nothing beyond visual distinctness depends on them.
var Palette = []string{
	"#4c9aff", "#f97316", "#22c55e", "#e11d48",
	"#a855f7", "#eab308", "#14b8a6", "#94a3b8",
}

// Store is an insertion-ordered collection of TextVector records. All
// records in one store share the same vector dimensionality, fixed at
// construction. Mutation happens only through Add, Remove, Reset, and
// LoadSamples; records themselves are never updated in place.
type Store struct {
	dims       int
	vectorizer vectorize.Vectorizer
	projector  project.Projector

	mu      sync.RWMutex
	records []*models.TextVector
	byID    map[string]*models.TextVector
}

// New creates an empty store. dims below 1 is clamped to 1.
func New(dims int, v vectorize.Vectorizer, p project.Projector) *Store {
	if dims < 1 {
		dims = 1
	}
	return &Store{
		dims:       dims,
		vectorizer: v,
		projector:  p,
		byID:       make(map[string]*models.TextVector),
	}
}

// Dims returns the vector dimensionality shared by all records.
func (s *Store) Dims() int { return s.dims }

// Strategy returns the name of the vectorizer in use.
func (s *Store) Strategy() string { return s.vectorizer.Name() }

// Add vectorizes text, projects it, and appends a new record with a fresh
// id and the next palette color. Empty or all-whitespace text is silently
// absorbed: Add returns nil and the store is unchanged.
func (s *Store) Add(text string) *models.TextVector {
	vec := s.vectorizer.Vectorize(text, s.dims)
	if vec == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := &models.TextVector{
		ID:       uuid.NewString(),
		Text:     text,
		Vector:   vec,
		Position: s.projector.Project(vec),
		Color:    Palette[len(s.records)%len(Palette)],
	}
	s.records = append(s.records, rec)
	s.byID[rec.ID] = rec
	return rec
}

// Get returns the record with the given id, or nil.
func (s *Store) Get(id string) *models.TextVector {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byID[id]
}

// Remove deletes the record with the given id and reports whether it was
// present. Removing an absent id is a no-op.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	kept := s.records[:0]
	for _, rec := range s.records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	s.records = kept
	return true
}

// Records returns the records in insertion order. The slice is a copy; the
// records it points to are shared but immutable.
func (s *Store) Records() []*models.TextVector {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.TextVector, len(s.records))
	copy(out, s.records)
	return out
}

// Size returns the number of records.
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Reset removes all records.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	s.byID = make(map[string]*models.TextVector)
}

// LoadSamples replaces the store contents wholesale with records for each
// sample. Ids derive from the sample position, so loading the same set
// twice yields identical ids. Blank samples are skipped but keep their
// positional id reserved. Colors cycle from the palette start.
func (s *Store) LoadSamples(samples []string) []*models.TextVector {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	s.byID = make(map[string]*models.TextVector)
	for i, text := range samples {
		vec := s.vectorizer.Vectorize(text, s.dims)
		if vec == nil {
			continue
		}
		rec := &models.TextVector{
			ID:       fmt.Sprintf("sample-%d", i),
			Text:     text,
			Vector:   vec,
			Position: s.projector.Project(vec),
			Color:    Palette[len(s.records)%len(Palette)],
		}
		s.records = append(s.records, rec)
		s.byID[rec.ID] = rec
	}
	out := make([]*models.TextVector, len(s.records))
	copy(out, s.records)
	return out
}
