package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/beamx-labs/validator-engine/internal/analytics"
	"github.com/beamx-labs/validator-engine/internal/models"
	"github.com/beamx-labs/validator-engine/internal/recommend"
	"github.com/beamx-labs/validator-engine/internal/report"
	"github.com/beamx-labs/validator-engine/internal/scoring"
)

// Result handlers (unguessable result id = auth)

// loadResult fetches a result by path id, writing the error response itself
// when nothing can be returned.
func (s *Server) loadResult(w http.ResponseWriter, r *http.Request) *models.AssessmentResult {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "result id is required")
		return nil
	}

	result, err := s.repo.GetResult(r.Context(), id)
	if err != nil {
		slog.Error("failed to get result", "error", err, "id", id)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to get result")
		return nil
	}
	if result == nil {
		respondError(w, http.StatusNotFound, "not_found", "result not found")
		return nil
	}
	return result
}

func (s *Server) handleGetResult(w http.ResponseWriter, r *http.Request) {
	result := s.loadResult(w, r)
	if result == nil {
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleRecommendation(w http.ResponseWriter, r *http.Request) {
	result := s.loadResult(w, r)
	if result == nil {
		return
	}

	switch {
	case result.RecommendationState == models.RecommendationAvailable:
		respondJSON(w, http.StatusOK, result.AIRecommendation)
		return
	case result.RecommendationState == models.RecommendationRequesting:
		respondError(w, http.StatusConflict, "recommendation_in_progress", "a recommendation request is already running")
		return
	case !result.RecommendationState.CanRequest():
		respondError(w, http.StatusConflict, "invalid_state", "recommendation cannot be requested in the current state")
		return
	}

	if err := s.repo.UpdateRecommendation(r.Context(), result.ID, models.RecommendationRequesting, nil, ""); err != nil {
		slog.Error("failed to mark recommendation requesting", "error", err, "id", result.ID)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to request recommendation")
		return
	}

	s.tracker.Track(r.Context(), analytics.EventRecommendationRequested, map[string]string{
		"level": string(result.ScoreResult.Level),
	})

	rec, err := s.recommender.Generate(r.Context(), result.Responses, result.UserProfile,
		result.ScoreResult.Level, result.ScoreResult.TotalPositive)
	if err != nil {
		slog.Error("recommendation generation failed", "error", err, "id", result.ID)

		if updateErr := s.repo.UpdateRecommendation(r.Context(), result.ID,
			models.RecommendationUnavailable, nil, err.Error()); updateErr != nil {
			slog.Error("failed to mark recommendation unavailable", "error", updateErr, "id", result.ID)
		}

		if errors.Is(err, recommend.ErrNotConfigured) {
			respondError(w, http.StatusServiceUnavailable, "not_configured", "recommendation service is not configured")
			return
		}
		respondError(w, http.StatusBadGateway, "service_unavailable", "recommendation service is unavailable, try again later")
		return
	}

	if err := s.repo.UpdateRecommendation(r.Context(), result.ID, models.RecommendationAvailable, rec, ""); err != nil {
		slog.Error("failed to store recommendation", "error", err, "id", result.ID)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to store recommendation")
		return
	}

	respondJSON(w, http.StatusOK, rec)
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	result := s.loadResult(w, r)
	if result == nil {
		return
	}

	s.tracker.Track(r.Context(), analytics.EventResultShared, map[string]string{
		"level": string(result.ScoreResult.Level),
	})

	respondJSON(w, http.StatusOK, models.ShareResponse{
		Text: scoring.ShareText(result.ScoreResult),
	})
}

func (s *Server) handleReportPDF(w http.ResponseWriter, r *http.Request) {
	result := s.loadResult(w, r)
	if result == nil {
		return
	}

	var buf bytes.Buffer
	if err := report.WritePDF(&buf, result); err != nil {
		slog.Error("failed to render report", "error", err, "id", result.ID)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to render report")
		return
	}

	s.tracker.Track(r.Context(), analytics.EventReportRequested, map[string]string{
		"format": "pdf",
	})

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="validation-report.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("failed to write report", "error", err, "id", result.ID)
	}
}

func (s *Server) handleEmail(w http.ResponseWriter, r *http.Request) {
	result := s.loadResult(w, r)
	if result == nil {
		return
	}

	var req models.EmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.Email == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "email is required")
		return
	}

	name := req.Name
	if name == "" {
		name = result.UserProfile.Name
	}

	switch req.Type {
	case "capture":
		subject, body, err := s.renderer.WelcomeEmail(name, result)
		if err != nil {
			slog.Error("failed to render email", "error", err, "id", result.ID)
			respondError(w, http.StatusInternalServerError, "internal_error", "failed to render email")
			return
		}
		if err := s.mailer.Send(r.Context(), req.Email, subject, body, nil, ""); err != nil {
			slog.Error("failed to send email", "error", err, "id", result.ID)
			respondError(w, http.StatusInternalServerError, "email_error", "failed to send email")
			return
		}
		s.tracker.Track(r.Context(), analytics.EventEmailCaptured, nil)

	case "report":
		subject, body, err := s.renderer.ReportEmail(name, result)
		if err != nil {
			slog.Error("failed to render email", "error", err, "id", result.ID)
			respondError(w, http.StatusInternalServerError, "internal_error", "failed to render email")
			return
		}

		var pdf bytes.Buffer
		if err := report.WritePDF(&pdf, result); err != nil {
			slog.Error("failed to render report attachment", "error", err, "id", result.ID)
			respondError(w, http.StatusInternalServerError, "internal_error", "failed to render report")
			return
		}

		if err := s.mailer.Send(r.Context(), req.Email, subject, body, pdf.Bytes(), "validation-report.pdf"); err != nil {
			slog.Error("failed to send email", "error", err, "id", result.ID)
			respondError(w, http.StatusInternalServerError, "email_error", "failed to send email")
			return
		}
		s.tracker.Track(r.Context(), analytics.EventReportRequested, map[string]string{
			"format": "email",
		})

	default:
		respondError(w, http.StatusBadRequest, "validation_error", `type must be "capture" or "report"`)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "email sent",
	})
}

// Analytics ingestion

func (s *Server) handleTrackEvent(w http.ResponseWriter, r *http.Request) {
	var req models.TrackEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.Event == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "event is required")
		return
	}

	s.tracker.Track(r.Context(), req.Event, req.Properties)

	respondJSON(w, http.StatusAccepted, map[string]string{
		"message": "accepted",
	})
}
