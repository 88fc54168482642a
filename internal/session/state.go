// Package session holds draft assessment state: the caller's position in
// the catalog, answers so far, and the user profile. Transitions are pure
// value-to-value functions; persistence lives in Store.
package session

import (
	"errors"
	"fmt"

	"github.com/beamx-labs/validator-engine/internal/catalog"
	"github.com/beamx-labs/validator-engine/internal/models"
)

// ErrSessionNotFound is returned when a draft session token is unknown or expired
var ErrSessionNotFound = errors.New("session not found")

// ValidationError reports a malformed answer at input time. It is recovered
// by re-prompting and never reaches the scoring engine.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Reason
}

// IsValidationError reports whether err is an answer validation failure
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// State is the draft assessment: current question index, frozen answers for
// previous questions, and the profile captured at the start.
type State struct {
	CurrentIndex int                         `json:"currentIndex"`
	Responses    []models.AssessmentResponse `json:"responses"`
	Profile      models.UserProfile          `json:"profile"`
}

// New returns the initial state for a profile
func New(profile models.UserProfile) State {
	return State{Profile: profile}
}

// Completed reports whether every catalog question has been answered
func (s State) Completed(cat *catalog.Catalog) bool {
	return s.CurrentIndex >= cat.Len()
}

// CurrentQuestion returns the question awaiting an answer, or nil when done
func (s State) CurrentQuestion(cat *catalog.Catalog) *models.Question {
	return cat.At(s.CurrentIndex)
}

// Answer validates the answer for the current question and returns the
// advanced state. The receiver is not modified.
func (s State) Answer(cat *catalog.Catalog, answer, followUp string) (State, error) {
	q := s.CurrentQuestion(cat)
	if q == nil {
		return s, &ValidationError{Reason: "assessment is already complete"}
	}

	if answer == "" {
		return s, &ValidationError{Reason: "an answer is required"}
	}

	if q.Type.IsOptionBased() && cat.Option(q.ID, answer) == nil {
		return s, &ValidationError{Reason: fmt.Sprintf("%q is not a valid option for question %d", answer, q.ID)}
	}

	if q.NeedsFollowUp(answer) && followUp == "" {
		return s, &ValidationError{Reason: "this answer requires a follow-up"}
	}
	if !q.NeedsFollowUp(answer) {
		followUp = ""
	}

	next := State{
		CurrentIndex: s.CurrentIndex + 1,
		Responses:    make([]models.AssessmentResponse, len(s.Responses), len(s.Responses)+1),
		Profile:      s.Profile,
	}
	copy(next.Responses, s.Responses)
	next.Responses = append(next.Responses, models.AssessmentResponse{
		QuestionID:     q.ID,
		Answer:         answer,
		FollowUpAnswer: followUp,
	})

	return next, nil
}

// Back discards the previous answer and steps back one question. Stepping
// back from the first question is a no-op.
func (s State) Back() State {
	if s.CurrentIndex == 0 {
		return s
	}

	prev := State{
		CurrentIndex: s.CurrentIndex - 1,
		Responses:    make([]models.AssessmentResponse, len(s.Responses)-1),
		Profile:      s.Profile,
	}
	copy(prev.Responses, s.Responses[:len(s.Responses)-1])
	return prev
}

// Submit freezes the responses into an immutable slice for scoring. It is a
// ValidationError to submit before every question is answered.
func (s State) Submit(cat *catalog.Catalog) ([]models.AssessmentResponse, error) {
	if !s.Completed(cat) {
		return nil, &ValidationError{
			Reason: fmt.Sprintf("assessment incomplete: %d of %d questions answered", s.CurrentIndex, cat.Len()),
		}
	}

	frozen := make([]models.AssessmentResponse, len(s.Responses))
	copy(frozen, s.Responses)
	return frozen, nil
}
