package explorer

import (
	"context"
	"testing"
	"time"

	"github.com/hyperjump/vekta/internal/keyword"
	"github.com/hyperjump/vekta/internal/project"
	"github.com/hyperjump/vekta/internal/similarity"
	"github.com/hyperjump/vekta/internal/store"
	"github.com/hyperjump/vekta/internal/vectorize"
)

func newTestExplorer(t *testing.T) *Explorer {
	t.Helper()
	kw, err := keyword.NewIndex()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { kw.Close() })
	st := store.New(128, vectorize.WordPosition{}, project.Default())
	return New(st, kw, similarity.Cosine, nil)
}

func TestExplorer_RankingsRequireSelection(t *testing.T) {
	e := newTestExplorer(t)
	e.Add("The cat sits on the mat")
	e.Add("A feline rests on the carpet")
	if e.Rankings() != nil {
		t.Error("rankings without selection should be nil")
	}
}

func TestExplorer_SelectAndRank(t *testing.T) {
	e := newTestExplorer(t)
	a := e.Add("The cat sits on the mat")
	e.Add("A feline rests on the carpet")
	e.Add("Rain is expected later this evening")

	e.Select(a.ID)
	results := e.Rankings()
	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}
	for _, r := range results {
		if r.Other == a.ID {
			t.Error("subject present in its own ranking")
		}
		if r.Score < 0 || r.Score > 1 {
			t.Errorf("cosine score %f outside [0,1]", r.Score)
		}
	}
}

func TestExplorer_SelectUnknownIDIsNoop(t *testing.T) {
	e := newTestExplorer(t)
	a := e.Add("something")
	e.Select(a.ID)
	e.Select("no-such-id")
	if sel := e.Selection(); sel == nil || sel.ID != a.ID {
		t.Error("selection should be unchanged by unknown id")
	}
}

func TestExplorer_RemoveSelectedClearsRankings(t *testing.T) {
	e := newTestExplorer(t)
	a := e.Add("The cat sits on the mat")
	e.Add("A feline rests on the carpet")
	e.Select(a.ID)
	if len(e.Rankings()) == 0 {
		t.Fatal("expected rankings before removal")
	}
	e.Remove(a.ID)
	if e.Selection() != nil {
		t.Error("selection should be cleared when the selected record is removed")
	}
	if e.Rankings() != nil {
		t.Error("rankings should be empty after removing the selected record")
	}
}

func TestExplorer_RemoveOtherKeepsSelection(t *testing.T) {
	e := newTestExplorer(t)
	a := e.Add("keep me selected")
	b := e.Add("remove me")
	e.Select(a.ID)
	e.Remove(b.ID)
	if sel := e.Selection(); sel == nil || sel.ID != a.ID {
		t.Error("removing another record should keep the selection")
	}
}

func TestExplorer_ResetClearsEverything(t *testing.T) {
	e := newTestExplorer(t)
	a := e.Add("The cat sits on the mat")
	e.Select(a.ID)
	e.StartReveal(time.Millisecond, 10, func(int) {}, nil)
	e.Reset()
	if e.Store().Size() != 0 {
		t.Error("store not cleared")
	}
	if e.Selection() != nil {
		t.Error("selection not cleared")
	}
	recs, err := e.Search(context.Background(), "cat", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 0 {
		t.Error("keyword index not cleared")
	}
}

func TestExplorer_LoadSamplesClearsSelection(t *testing.T) {
	e := newTestExplorer(t)
	a := e.Add("old record")
	e.Select(a.ID)
	recs := e.LoadSamples(store.SampleCorpus)
	if len(recs) != len(store.SampleCorpus) {
		t.Fatalf("loaded %d records", len(recs))
	}
	if e.Selection() != nil {
		t.Error("selection should be cleared by a corpus load")
	}
}

func TestExplorer_MetricChange(t *testing.T) {
	e := newTestExplorer(t)
	a := e.Add("The cat sits on the mat")
	e.Add("A feline rests on the carpet")
	e.Select(a.ID)

	e.SetMetric(similarity.Manhattan)
	if e.Metric() != similarity.Manhattan {
		t.Error("metric not updated")
	}
	for _, r := range e.Rankings() {
		if r.Score < 0 {
			t.Errorf("manhattan score %f < 0", r.Score)
		}
	}
}

func TestExplorer_Search(t *testing.T) {
	e := newTestExplorer(t)
	cat := e.Add("The cat sits on the mat")
	e.Add("Dogs love playing fetch in the park")

	recs, err := e.Search(context.Background(), "cat", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].ID != cat.ID {
		t.Errorf("unexpected search results: %+v", recs)
	}
}
