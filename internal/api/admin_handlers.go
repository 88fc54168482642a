package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/beamx-labs/validator-engine/internal/models"
)

// Admin handlers (API key auth)

func (s *Server) handleListResults(w http.ResponseWriter, r *http.Request) {
	filters := models.ResultFilters{
		Level:  models.ScoreLevel(r.URL.Query().Get("level")),
		Email:  r.URL.Query().Get("email"),
		Limit:  50, // default
		Offset: 0,
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			filters.Limit = limit
		}
	}

	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil && offset >= 0 {
			filters.Offset = offset
		}
	}

	results, err := s.repo.ListResults(r.Context(), filters)
	if err != nil {
		slog.Error("failed to list results", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to list results")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"results": results,
		"total":   len(results),
	})
}

func (s *Server) handleDeleteResult(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "result id is required")
		return
	}

	result, err := s.repo.GetResult(r.Context(), id)
	if err != nil {
		slog.Error("failed to get result", "error", err, "id", id)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to delete result")
		return
	}
	if result == nil {
		respondError(w, http.StatusNotFound, "not_found", "result not found")
		return
	}

	if err := s.repo.DeleteResult(r.Context(), id); err != nil {
		slog.Error("failed to delete result", "error", err, "id", id)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to delete result")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "result deleted",
	})
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	// Default to the last 30 days
	since := time.Now().UTC().AddDate(0, 0, -30)
	if sinceStr := r.URL.Query().Get("since"); sinceStr != "" {
		parsed, err := time.Parse(time.RFC3339, sinceStr)
		if err != nil {
			respondError(w, http.StatusBadRequest, "validation_error", "since must be RFC3339")
			return
		}
		since = parsed
	}

	counts, err := s.tracker.Summary(r.Context(), since)
	if err != nil {
		slog.Error("failed to summarize analytics", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to summarize analytics")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"since":  since.Format(time.RFC3339),
		"events": counts,
	})
}
