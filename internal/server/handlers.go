package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hyperjump/vekta/internal/ingest"
	"github.com/hyperjump/vekta/internal/models"
	"github.com/hyperjump/vekta/internal/similarity"
	"github.com/hyperjump/vekta/internal/store"
	"github.com/hyperjump/vekta/pkg/utils"
)

// view converts a record to its API shape. withVector controls whether the
// full component list is included.
func view(rec *models.TextVector, withVector bool) *models.RecordView {
	v := &models.RecordView{
		ID:       rec.ID,
		Text:     rec.Text,
		Color:    rec.Color,
		Position: rec.Position,
		Dims:     len(rec.Vector),
		Norm:     utils.L2Norm(rec.Vector),
	}
	if withVector {
		v.Vector = rec.Vector
	}
	return v
}

func views(recs []*models.TextVector) []*models.RecordView {
	out := make([]*models.RecordView, len(recs))
	for i, rec := range recs {
		out[i] = view(rec, false)
	}
	return out
}

func (s *Server) handleAddRecord(w http.ResponseWriter, r *http.Request) {
	var req models.AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	rec := s.explorer.Add(req.Text)
	if rec == nil {
		// Blank text is silently absorbed, not an error.
		w.WriteHeader(http.StatusNoContent)
		return
	}
	s.logger.Debug("add record", zap.String("id", rec.ID))
	s.respondJSON(w, http.StatusCreated, view(rec, false))
}

func (s *Server) handleListRecords(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, views(s.explorer.Store().Records()))
}

func (s *Server) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	rec := s.explorer.Store().Get(chi.URLParam(r, "id"))
	if rec == nil {
		s.respondError(w, http.StatusNotFound, "record not found")
		return
	}
	s.respondJSON(w, http.StatusOK, view(rec, true))
}

func (s *Server) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.logger.Debug("delete record", zap.String("id", id))
	// Absent ids are a no-op; the response is the same either way.
	s.explorer.Remove(id)
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.explorer.Reset()
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

func (s *Server) handleLoadSamples(w http.ResponseWriter, r *http.Request) {
	recs := s.explorer.LoadSamples(store.SampleCorpus)
	s.respondJSON(w, http.StatusOK, views(recs))
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req models.SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.explorer.Select(req.ID)
	if sel := s.explorer.Selection(); sel != nil {
		s.respondJSON(w, http.StatusOK, view(sel, false))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearSelection(w http.ResponseWriter, r *http.Request) {
	s.explorer.ClearSelection()
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func (s *Server) handleSetMetric(w http.ResponseWriter, r *http.Request) {
	var req models.MetricRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	m := similarity.ParseMetric(req.Metric)
	s.explorer.SetMetric(m)
	s.respondJSON(w, http.StatusOK, map[string]string{"metric": string(m)})
}

func (s *Server) handleRankings(w http.ResponseWriter, r *http.Request) {
	resp := &models.RankingsResponse{
		Metric:  string(s.explorer.Metric()),
		Results: s.explorer.Rankings(),
	}
	if resp.Results == nil {
		resp.Results = []*models.SimilarityResult{}
	}
	if sel := s.explorer.Selection(); sel != nil {
		resp.Selection = sel.ID
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSearchRecords(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		s.respondError(w, http.StatusBadRequest, "q is required")
		return
	}
	limit := s.config.Similarity.DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > s.config.Similarity.MaxLimit {
		limit = s.config.Similarity.MaxLimit
	}
	recs, err := s.explorer.Search(r.Context(), query, limit)
	if err != nil {
		s.logger.Error("record search failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, views(recs))
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	var req models.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Path == "" {
		s.respondError(w, http.StatusBadRequest, "path is required")
		return
	}
	text, err := ingest.Extract(req.Path)
	if err != nil {
		s.logger.Error("import extract failed", zap.String("path", req.Path), zap.Error(err))
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var added []*models.TextVector
	for _, sentence := range ingest.Sentences(text) {
		if rec := s.explorer.Add(sentence); rec != nil {
			added = append(added, rec)
		}
	}
	s.logger.Info("imported records", zap.String("path", req.Path), zap.Int("count", len(added)))
	s.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"imported": len(added),
		"records":  views(added),
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	st := s.explorer.Store()
	resp := &models.StatusResponse{
		Records:  st.Size(),
		Dims:     st.Dims(),
		Strategy: st.Strategy(),
		Metric:   string(s.explorer.Metric()),
	}
	if sel := s.explorer.Selection(); sel != nil {
		resp.Selection = sel.ID
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
