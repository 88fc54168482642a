package storage

import (
	"context"
	"time"

	"github.com/beamx-labs/validator-engine/internal/models"
)

// Repository defines the interface for assessment persistence
type Repository interface {
	// Assessment results
	CreateResult(ctx context.Context, result *models.AssessmentResult) error
	GetResult(ctx context.Context, id string) (*models.AssessmentResult, error)
	ListResults(ctx context.Context, filters models.ResultFilters) ([]*models.AssessmentResult, error)
	DeleteResult(ctx context.Context, id string) error
	DeleteResultsBefore(ctx context.Context, cutoff time.Time) (int64, error)
	UpdateRecommendation(ctx context.Context, id string, state models.RecommendationState, rec *models.AIRecommendation, reason string) error

	// Analytics
	InsertEvent(ctx context.Context, event *models.AnalyticsEvent) error
	CountEventsByName(ctx context.Context, since time.Time) (map[string]int64, error)

	// API Clients
	GetClientByApiKey(ctx context.Context, apiKey string) (*models.ApiClient, error)
	UpdateClientLastUsed(ctx context.Context, apiKey string) error

	// Health
	Ping(ctx context.Context) error
	Close() error
}
