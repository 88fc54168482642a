package analytics

import (
	"context"
	"log/slog"
	"time"

	"github.com/beamx-labs/validator-engine/internal/models"
	"github.com/beamx-labs/validator-engine/internal/storage"
)

// Well-known funnel event names.
const (
	EventAssessmentStarted       = "assessment_started"
	EventQuestionAnswered        = "question_answered"
	EventAssessmentCompleted     = "assessment_completed"
	EventEmailCaptured           = "email_captured"
	EventReportRequested         = "report_requested"
	EventRecommendationRequested = "recommendation_requested"
	EventResultShared            = "result_shared"
)

// Tracker records funnel events. Recording is best-effort: a failed
// insert is logged and never surfaces to the caller.
type Tracker struct {
	repo storage.Repository
}

// NewTracker creates a tracker backed by the given repository.
func NewTracker(repo storage.Repository) *Tracker {
	return &Tracker{repo: repo}
}

// Track records a single event with optional properties.
func (t *Tracker) Track(ctx context.Context, event string, properties map[string]string) {
	if t == nil || t.repo == nil || event == "" {
		return
	}

	e := &models.AnalyticsEvent{
		Event:      event,
		Properties: properties,
		CreatedAt:  time.Now().UTC(),
	}

	if err := t.repo.InsertEvent(ctx, e); err != nil {
		slog.Warn("Failed to record analytics event",
			"event", event,
			"error", err)
	}
}

// Summary returns per-event counts since the given time.
func (t *Tracker) Summary(ctx context.Context, since time.Time) (map[string]int64, error) {
	return t.repo.CountEventsByName(ctx, since)
}
