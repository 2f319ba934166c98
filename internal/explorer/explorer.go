// Package explorer ties the store, similarity engine, and keyword index
// into one session facade, and owns the state the store deliberately does
// not: the selected reference record and the active metric.
package explorer

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/vekta/internal/keyword"
	"github.com/hyperjump/vekta/internal/models"
	"github.com/hyperjump/vekta/internal/progress"
	"github.com/hyperjump/vekta/internal/similarity"
	"github.com/hyperjump/vekta/internal/store"
)

// Explorer is a single-session view over the store. Rankings are never
// cached: they are recomputed on each call so selection, metric, and store
// changes are always reflected.
type Explorer struct {
	store   *store.Store
	keyword *keyword.Index
	logger  *zap.Logger

	mu       sync.Mutex
	metric   similarity.Metric
	selected string
	reveal   *progress.Ticker
}

// New creates an explorer over the given store. The keyword index is
// optional; without it Search returns nothing.
func New(st *store.Store, kw *keyword.Index, metric similarity.Metric, logger *zap.Logger) *Explorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Explorer{
		store:   st,
		keyword: kw,
		logger:  logger,
		metric:  metric,
	}
}

// Store exposes the underlying store for read access.
func (e *Explorer) Store() *store.Store { return e.store }

// Add appends a record for text and mirrors it into the keyword index.
// Blank text is silently absorbed and returns nil.
func (e *Explorer) Add(text string) *models.TextVector {
	rec := e.store.Add(text)
	if rec == nil {
		return nil
	}
	if e.keyword != nil {
		if err := e.keyword.Add(rec.ID, rec.Text); err != nil {
			e.logger.Warn("keyword index add failed", zap.String("id", rec.ID), zap.Error(err))
		}
	}
	e.logger.Debug("record added", zap.String("id", rec.ID), zap.Int("size", e.store.Size()))
	return rec
}

// Remove deletes a record. Removing the currently selected record clears
// the selection, so the next Rankings call returns nothing. Absent ids are
// a no-op.
func (e *Explorer) Remove(id string) {
	if !e.store.Remove(id) {
		return
	}
	if e.keyword != nil {
		if err := e.keyword.Delete(id); err != nil {
			e.logger.Warn("keyword index delete failed", zap.String("id", id), zap.Error(err))
		}
	}
	e.mu.Lock()
	if e.selected == id {
		e.selected = ""
	}
	e.mu.Unlock()
}

// Reset clears the store, the keyword index, the selection, and stops any
// in-flight reveal ticker so no stale callback observes the cleared store.
func (e *Explorer) Reset() {
	e.mu.Lock()
	if e.reveal != nil {
		e.reveal.Stop()
		e.reveal = nil
	}
	e.selected = ""
	e.mu.Unlock()

	e.store.Reset()
	if e.keyword != nil {
		if err := e.keyword.Reset(); err != nil {
			e.logger.Warn("keyword index reset failed", zap.Error(err))
		}
	}
	e.logger.Debug("store reset")
}

// LoadSamples replaces the store contents with the given corpus. The
// selection is cleared since its record no longer exists.
func (e *Explorer) LoadSamples(samples []string) []*models.TextVector {
	e.mu.Lock()
	e.selected = ""
	e.mu.Unlock()

	recs := e.store.LoadSamples(samples)
	if e.keyword != nil {
		if err := e.keyword.Reset(); err != nil {
			e.logger.Warn("keyword index reset failed", zap.Error(err))
		}
		for _, rec := range recs {
			if err := e.keyword.Add(rec.ID, rec.Text); err != nil {
				e.logger.Warn("keyword index add failed", zap.String("id", rec.ID), zap.Error(err))
			}
		}
	}
	e.logger.Info("samples loaded", zap.Int("count", len(recs)))
	return recs
}

// Select marks the record with the given id as the reference. Unknown ids
// are a no-op.
func (e *Explorer) Select(id string) {
	if e.store.Get(id) == nil {
		return
	}
	e.mu.Lock()
	e.selected = id
	e.mu.Unlock()
}

// ClearSelection drops the current reference selection.
func (e *Explorer) ClearSelection() {
	e.mu.Lock()
	e.selected = ""
	e.mu.Unlock()
}

// Selection returns the currently selected record, or nil.
func (e *Explorer) Selection() *models.TextVector {
	e.mu.Lock()
	id := e.selected
	e.mu.Unlock()
	if id == "" {
		return nil
	}
	return e.store.Get(id)
}

// SetMetric changes the active similarity metric.
func (e *Explorer) SetMetric(m similarity.Metric) {
	e.mu.Lock()
	e.metric = m
	e.mu.Unlock()
}

// Metric returns the active similarity metric.
func (e *Explorer) Metric() similarity.Metric {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.metric
}

// Rankings scores every stored record against the current selection under
// the active metric, sorted by descending score. Returns nil when nothing
// is selected.
func (e *Explorer) Rankings() []*models.SimilarityResult {
	subject := e.Selection()
	if subject == nil {
		return nil
	}
	return similarity.Rank(subject, e.store.Records(), e.Metric())
}

// Search finds records whose text matches the query, in relevance order.
func (e *Explorer) Search(ctx context.Context, query string, limit int) ([]*models.TextVector, error) {
	if e.keyword == nil {
		return nil, nil
	}
	hits, err := e.keyword.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	recs := make([]*models.TextVector, 0, len(hits))
	for _, hit := range hits {
		if rec := e.store.Get(hit.ID); rec != nil {
			recs = append(recs, rec)
		}
	}
	return recs, nil
}

// StartReveal starts a cosmetic progress ticker, superseding any previous
// one. The ticker only gates display; the underlying computation has
// already run.
func (e *Explorer) StartReveal(interval time.Duration, step int, onTick func(pct int), done func()) {
	e.mu.Lock()
	if e.reveal != nil {
		e.reveal.Stop()
	}
	t := progress.NewTicker(interval, step)
	e.reveal = t
	e.mu.Unlock()
	t.Start(onTick, done)
}
