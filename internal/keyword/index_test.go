package keyword

import (
	"context"
	"testing"
)

func TestIndex_AddSearch(t *testing.T) {
	x, err := NewIndex()
	if err != nil {
		t.Fatal(err)
	}
	defer x.Close()
	ctx := context.Background()

	_ = x.Add("a", "The cat sits on the mat")
	_ = x.Add("b", "Dogs love playing fetch in the park")

	results, err := x.Search(ctx, "cat", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].ID != "a" {
		t.Errorf("unexpected results: %+v", results)
	}
}

func TestIndex_Delete(t *testing.T) {
	x, _ := NewIndex()
	defer x.Close()
	ctx := context.Background()

	_ = x.Add("a", "rain is expected this evening")
	if err := x.Delete("a"); err != nil {
		t.Fatal(err)
	}
	results, err := x.Search(ctx, "rain", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("deleted record still found: %+v", results)
	}
}

func TestIndex_Reset(t *testing.T) {
	x, _ := NewIndex()
	defer x.Close()
	ctx := context.Background()

	_ = x.Add("a", "sunny and warm weather")
	if err := x.Reset(); err != nil {
		t.Fatal(err)
	}
	results, err := x.Search(ctx, "weather", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("reset index still has hits: %+v", results)
	}
	// Index stays usable after reset.
	_ = x.Add("b", "weather again")
	results, _ = x.Search(ctx, "weather", 10)
	if len(results) != 1 {
		t.Errorf("index unusable after reset: %+v", results)
	}
}

func TestIndex_SearchZeroLimit(t *testing.T) {
	x, _ := NewIndex()
	defer x.Close()
	results, err := x.Search(context.Background(), "anything", 0)
	if err != nil || results != nil {
		t.Errorf("zero limit should return nothing, got %+v err %v", results, err)
	}
}
