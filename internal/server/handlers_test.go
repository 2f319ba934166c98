package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/hyperjump/vekta/internal/config"
	"github.com/hyperjump/vekta/internal/explorer"
	"github.com/hyperjump/vekta/internal/keyword"
	"github.com/hyperjump/vekta/internal/models"
	"github.com/hyperjump/vekta/internal/project"
	"github.com/hyperjump/vekta/internal/similarity"
	"github.com/hyperjump/vekta/internal/store"
	"github.com/hyperjump/vekta/internal/vectorize"
)

func newTestServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	kw, err := keyword.NewIndex()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { kw.Close() })
	cfg := config.Default()
	st := store.New(cfg.Embedding.Dimensions, vectorize.WordPosition{}, project.Default())
	exp := explorer.New(st, kw, similarity.Cosine, zap.NewNop())
	srv := NewServer(exp, cfg, zap.NewNop())
	return srv, srv.Router()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestHandleAddRecord(t *testing.T) {
	_, h := newTestServer(t)
	rr := doJSON(t, h, http.MethodPost, "/api/v1/records", models.AddRequest{Text: "The cat sits on the mat"})
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d", rr.Code)
	}
	var rec models.RecordView
	if err := json.NewDecoder(rr.Body).Decode(&rec); err != nil {
		t.Fatal(err)
	}
	if rec.ID == "" || rec.Dims != 128 {
		t.Errorf("record = %+v", rec)
	}
	if rec.Vector != nil {
		t.Error("list shape should not include the vector")
	}
}

func TestHandleAddRecord_BlankTextAbsorbed(t *testing.T) {
	_, h := newTestServer(t)
	rr := doJSON(t, h, http.MethodPost, "/api/v1/records", models.AddRequest{Text: "   "})
	if rr.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rr.Code)
	}
}

func TestHandleGetRecord_IncludesVector(t *testing.T) {
	srv, h := newTestServer(t)
	rec := srv.explorer.Add("hello world")
	rr := doJSON(t, h, http.MethodGet, "/api/v1/records/"+rec.ID, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var got models.RecordView
	_ = json.NewDecoder(rr.Body).Decode(&got)
	if len(got.Vector) != 128 {
		t.Errorf("vector len = %d", len(got.Vector))
	}
}

func TestHandleGetRecord_NotFound(t *testing.T) {
	_, h := newTestServer(t)
	rr := doJSON(t, h, http.MethodGet, "/api/v1/records/nope", nil)
	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d", rr.Code)
	}
}

func TestHandleDeleteRecord_AbsentIsNoop(t *testing.T) {
	_, h := newTestServer(t)
	rr := doJSON(t, h, http.MethodDelete, "/api/v1/records/nope", nil)
	if rr.Code != http.StatusOK {
		t.Errorf("status = %d", rr.Code)
	}
}

func TestHandleSamplesAndRankingsFlow(t *testing.T) {
	_, h := newTestServer(t)

	rr := doJSON(t, h, http.MethodPost, "/api/v1/samples", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("samples status = %d", rr.Code)
	}
	var recs []*models.RecordView
	_ = json.NewDecoder(rr.Body).Decode(&recs)
	if len(recs) != 8 {
		t.Fatalf("loaded %d samples", len(recs))
	}

	// Rankings are empty before a selection exists.
	rr = doJSON(t, h, http.MethodGet, "/api/v1/rankings", nil)
	var rank models.RankingsResponse
	_ = json.NewDecoder(rr.Body).Decode(&rank)
	if len(rank.Results) != 0 {
		t.Errorf("rankings without selection: %d results", len(rank.Results))
	}

	rr = doJSON(t, h, http.MethodPost, "/api/v1/selection", models.SelectRequest{ID: "sample-0"})
	if rr.Code != http.StatusOK {
		t.Fatalf("select status = %d", rr.Code)
	}

	rr = doJSON(t, h, http.MethodGet, "/api/v1/rankings", nil)
	_ = json.NewDecoder(rr.Body).Decode(&rank)
	if rank.Selection != "sample-0" || rank.Metric != "cosine" {
		t.Errorf("rankings meta = %+v", rank)
	}
	if len(rank.Results) != 7 {
		t.Errorf("got %d results, want 7", len(rank.Results))
	}
	for _, res := range rank.Results {
		if res.Other == "sample-0" {
			t.Error("subject present in rankings")
		}
		if res.Label == "" {
			t.Error("result missing label")
		}
	}

	// Removing the selected record clears the ranking.
	doJSON(t, h, http.MethodDelete, "/api/v1/records/sample-0", nil)
	rr = doJSON(t, h, http.MethodGet, "/api/v1/rankings", nil)
	rank = models.RankingsResponse{}
	_ = json.NewDecoder(rr.Body).Decode(&rank)
	if len(rank.Results) != 0 || rank.Selection != "" {
		t.Errorf("rankings after removing selection: %+v", rank)
	}
}

func TestHandleSetMetric_UnknownDefaultsToCosine(t *testing.T) {
	_, h := newTestServer(t)
	rr := doJSON(t, h, http.MethodPut, "/api/v1/metric", models.MetricRequest{Metric: "chebyshev"})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp map[string]string
	_ = json.NewDecoder(rr.Body).Decode(&resp)
	if resp["metric"] != "cosine" {
		t.Errorf("metric = %s", resp["metric"])
	}
}

func TestHandleSearchRecords(t *testing.T) {
	srv, h := newTestServer(t)
	srv.explorer.Add("The cat sits on the mat")
	srv.explorer.Add("Dogs love playing fetch in the park")

	rr := doJSON(t, h, http.MethodGet, "/api/v1/records/search?q=cat", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var recs []*models.RecordView
	_ = json.NewDecoder(rr.Body).Decode(&recs)
	if len(recs) != 1 || recs[0].Text != "The cat sits on the mat" {
		t.Errorf("results = %+v", recs)
	}
}

func TestHandleSearchRecords_MissingQuery(t *testing.T) {
	_, h := newTestServer(t)
	rr := doJSON(t, h, http.MethodGet, "/api/v1/records/search", nil)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rr.Code)
	}
}

func TestHandleReset(t *testing.T) {
	srv, h := newTestServer(t)
	srv.explorer.Add("something")
	rr := doJSON(t, h, http.MethodPost, "/api/v1/reset", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if srv.explorer.Store().Size() != 0 {
		t.Error("store not cleared")
	}
}

func TestHandleStatus(t *testing.T) {
	srv, h := newTestServer(t)
	srv.explorer.Add("one record")
	rr := doJSON(t, h, http.MethodGet, "/api/v1/status", nil)
	var status models.StatusResponse
	_ = json.NewDecoder(rr.Body).Decode(&status)
	if status.Records != 1 || status.Dims != 128 || status.Strategy != "wordpos" {
		t.Errorf("status = %+v", status)
	}
}

func TestHandleHealth(t *testing.T) {
	_, h := newTestServer(t)
	rr := doJSON(t, h, http.MethodGet, "/health", nil)
	if rr.Code != http.StatusOK {
		t.Errorf("status = %d", rr.Code)
	}
}
