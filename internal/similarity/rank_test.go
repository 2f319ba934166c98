package similarity

import (
	"testing"

	"github.com/hyperjump/vekta/internal/models"
)

func rec(id string, vec ...float64) *models.TextVector {
	return &models.TextVector{ID: id, Text: id, Vector: vec}
}

func TestRank_DescendingOrder(t *testing.T) {
	subject := rec("s", 1, 0)
	candidates := []*models.TextVector{
		rec("far", 0, 1),
		rec("near", 0.9, 0.1),
		rec("exact", 1, 0),
	}
	results := Rank(subject, candidates, Cosine)
	if len(results) != 3 {
		t.Fatalf("got %d results", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("results not sorted at %d: %f > %f", i, results[i].Score, results[i-1].Score)
		}
	}
	if results[0].Other != "exact" {
		t.Errorf("top result = %s", results[0].Other)
	}
}

func TestRank_ExcludesSubject(t *testing.T) {
	subject := rec("s", 1, 0)
	candidates := []*models.TextVector{subject, rec("x", 0, 1)}
	for _, r := range Rank(subject, candidates, Cosine) {
		if r.Other == subject.ID {
			t.Error("ranking includes the subject itself")
		}
	}
}

func TestRank_StableOnTies(t *testing.T) {
	subject := rec("s", 1, 0)
	// Both candidates score identically; input order must be preserved.
	candidates := []*models.TextVector{
		rec("first", 0, 1),
		rec("second", 0, 1),
	}
	results := Rank(subject, candidates, Cosine)
	if results[0].Other != "first" || results[1].Other != "second" {
		t.Errorf("tie order not preserved: %s, %s", results[0].Other, results[1].Other)
	}
}

func TestRank_NilSubject(t *testing.T) {
	if Rank(nil, []*models.TextVector{rec("x", 1)}, Cosine) != nil {
		t.Error("nil subject should yield nil ranking")
	}
}

func TestRank_CarriesTextsAndLabels(t *testing.T) {
	subject := rec("s", 1, 0)
	results := Rank(subject, []*models.TextVector{rec("x", 1, 0)}, Cosine)
	if len(results) != 1 {
		t.Fatal("expected one result")
	}
	r := results[0]
	if r.SubjectText != "s" || r.OtherText != "x" {
		t.Errorf("texts not denormalized: %q %q", r.SubjectText, r.OtherText)
	}
	if r.Label != "High" {
		t.Errorf("label = %q", r.Label)
	}
}
