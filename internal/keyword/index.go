// Package keyword provides word-match lookup over stored record texts,
// backed by an in-memory Bleve index. It exists so the explorer can drive
// selection by text in large stores; nothing is ever written to disk.
package keyword

import (
	"context"
	"fmt"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
)

// Result is a single keyword hit: a record id and Bleve's relevance score.
type Result struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// Index is an in-memory text index over record texts. The index lives and
// dies with the session, like the store it mirrors.
type Index struct {
	mu    sync.Mutex
	index bleve.Index
}

// NewIndex creates an empty in-memory index.
func NewIndex() (*Index, error) {
	idx, err := newMemIndex()
	if err != nil {
		return nil, err
	}
	return &Index{index: idx}, nil
}

func newMemIndex() (bleve.Index, error) {
	im := bleve.NewIndexMapping()
	doc := bleve.NewDocumentMapping()
	tf := bleve.NewTextFieldMapping()
	// Standard analyzer (lowercase + tokenize, no stemming) so queries match
	// the exact words users typed into the store.
	tf.Analyzer = standard.Name
	doc.AddFieldMappingsAt("text", tf)
	im.DefaultMapping = doc
	idx, err := bleve.NewMemOnly(im)
	if err != nil {
		return nil, fmt.Errorf("create in-memory index: %w", err)
	}
	return idx, nil
}

// Add indexes a record's text under its id.
func (x *Index) Add(id, text string) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.index.Index(id, map[string]interface{}{"text": text})
}

// Delete removes a record from the index. Absent ids are a no-op.
func (x *Index) Delete(id string) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.index.Delete(id)
}

// Search runs a match query and returns up to limit record ids by relevance.
func (x *Index) Search(ctx context.Context, query string, limit int) ([]*Result, error) {
	if limit <= 0 {
		return nil, nil
	}
	x.mu.Lock()
	idx := x.index
	x.mu.Unlock()

	q := bleve.NewMatchQuery(query)
	q.SetField("text")
	req := bleve.NewSearchRequestOptions(q, limit, 0, false)
	res, err := idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("keyword search: %w", err)
	}
	results := make([]*Result, 0, len(res.Hits))
	for _, hit := range res.Hits {
		results = append(results, &Result{ID: hit.ID, Score: hit.Score})
	}
	return results, nil
}

// Reset drops every indexed record by swapping in a fresh in-memory index.
func (x *Index) Reset() error {
	fresh, err := newMemIndex()
	if err != nil {
		return err
	}
	x.mu.Lock()
	old := x.index
	x.index = fresh
	x.mu.Unlock()
	return old.Close()
}

// Close releases the underlying index.
func (x *Index) Close() error {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.index.Close()
}
