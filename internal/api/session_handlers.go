package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/beamx-labs/validator-engine/internal/analytics"
	"github.com/beamx-labs/validator-engine/internal/models"
	"github.com/beamx-labs/validator-engine/internal/scoring"
	"github.com/beamx-labs/validator-engine/internal/session"
)

// Session handlers (session token = auth)

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req models.StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	state := session.New(req.Profile)
	token, err := s.sessions.Create(r.Context(), state)
	if err != nil {
		slog.Error("failed to create session", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to create session")
		return
	}

	s.tracker.Track(r.Context(), analytics.EventAssessmentStarted, profileProperties(req.Profile))

	respondJSON(w, http.StatusCreated, models.StartSessionResponse{
		Token:         token,
		QuestionCount: s.catalog.Len(),
		Question:      state.CurrentQuestion(s.catalog),
		CreatedAt:     time.Now().UTC(),
	})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	state, err := s.sessions.Load(r.Context(), token)
	if err != nil {
		s.respondSessionError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, s.progress(token, state))
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	state, err := s.sessions.Load(r.Context(), token)
	if err != nil {
		s.respondSessionError(w, err)
		return
	}

	var req models.AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	answered := state.CurrentQuestion(s.catalog)

	next, err := state.Answer(s.catalog, req.Answer, req.FollowUpAnswer)
	if err != nil {
		if session.IsValidationError(err) {
			respondError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
			return
		}
		slog.Error("failed to record answer", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to record answer")
		return
	}

	if err := s.sessions.Save(r.Context(), token, next); err != nil {
		slog.Error("failed to save session", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to save session")
		return
	}

	if answered != nil {
		s.tracker.Track(r.Context(), analytics.EventQuestionAnswered, map[string]string{
			"question": strconv.Itoa(answered.ID),
		})
	}

	respondJSON(w, http.StatusOK, s.progress(token, next))
}

func (s *Server) handleBack(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	state, err := s.sessions.Load(r.Context(), token)
	if err != nil {
		s.respondSessionError(w, err)
		return
	}

	prev := state.Back()
	if err := s.sessions.Save(r.Context(), token, prev); err != nil {
		slog.Error("failed to save session", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to save session")
		return
	}

	respondJSON(w, http.StatusOK, s.progress(token, prev))
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	state, err := s.sessions.Load(r.Context(), token)
	if err != nil {
		s.respondSessionError(w, err)
		return
	}

	responses, err := state.Submit(s.catalog)
	if err != nil {
		if session.IsValidationError(err) {
			respondError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
			return
		}
		slog.Error("failed to submit session", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to submit session")
		return
	}

	score := scoring.Score(s.catalog, responses)
	dimensions := scoring.Dimensions(s.catalog, responses)

	result := &models.AssessmentResult{
		ID:                  uuid.NewString(),
		UserProfile:         state.Profile,
		Responses:           responses,
		ScoreResult:         score,
		DimensionScores:     dimensions,
		RecommendationState: models.RecommendationNotRequested,
		CreatedAt:           time.Now().UTC(),
	}

	if err := s.repo.CreateResult(r.Context(), result); err != nil {
		slog.Error("failed to store result", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to store result")
		return
	}

	// The draft has served its purpose; failing to delete it only delays
	// expiry via TTL.
	if err := s.sessions.Delete(r.Context(), token); err != nil {
		slog.Warn("failed to delete submitted session", "error", err)
	}

	s.tracker.Track(r.Context(), analytics.EventAssessmentCompleted, map[string]string{
		"level": string(score.Level),
		"score": strconv.Itoa(score.Score),
	})

	respondJSON(w, http.StatusCreated, result)
}

// progress builds the standard session progress payload
func (s *Server) progress(token string, state session.State) models.SessionProgressResponse {
	return models.SessionProgressResponse{
		Token:         token,
		CurrentIndex:  state.CurrentIndex,
		QuestionCount: s.catalog.Len(),
		Completed:     state.Completed(s.catalog),
		Question:      state.CurrentQuestion(s.catalog),
	}
}

func (s *Server) respondSessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, session.ErrSessionNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "session not found or expired")
		return
	}
	slog.Error("failed to load session", "error", err)
	respondError(w, http.StatusInternalServerError, "internal_error", "failed to load session")
}

// profileProperties flattens the non-empty profile fields for analytics
func profileProperties(profile models.UserProfile) map[string]string {
	props := map[string]string{}
	if profile.Industry != "" {
		props["industry"] = profile.Industry
	}
	if profile.Location != "" {
		props["location"] = profile.Location
	}
	if profile.Stage != "" {
		props["stage"] = profile.Stage
	}
	if len(props) == 0 {
		return nil
	}
	return props
}
