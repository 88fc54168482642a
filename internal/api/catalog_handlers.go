package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Catalog handlers

func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	questions := s.catalog.Questions()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"questions": questions,
		"total":     len(questions),
	})
}

func (s *Server) handleGetQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "validation_error", "question id must be an integer")
		return
	}

	question := s.catalog.Question(id)
	if question == nil {
		respondError(w, http.StatusNotFound, "not_found", "question not found")
		return
	}

	respondJSON(w, http.StatusOK, question)
}
