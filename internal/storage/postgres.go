package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/beamx-labs/validator-engine/internal/models"
)

// PostgresRepository implements Repository using PostgreSQL
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// PostgresConfig holds PostgreSQL connection configuration
type PostgresConfig struct {
	DSN          string
	MaxOpenConns int32
	MaxIdleConns int32
	MaxLifetime  time.Duration
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(ctx context.Context, cfg PostgresConfig) (*PostgresRepository, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		poolConfig.MaxConns = cfg.MaxOpenConns
	} else {
		poolConfig.MaxConns = 25 // default
	}

	if cfg.MaxIdleConns > 0 {
		poolConfig.MinConns = cfg.MaxIdleConns
	} else {
		poolConfig.MinConns = 5 // default
	}

	if cfg.MaxLifetime > 0 {
		poolConfig.MaxConnLifetime = cfg.MaxLifetime
	} else {
		poolConfig.MaxConnLifetime = 30 * time.Minute
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{pool: pool}, nil
}

// Ping checks database connectivity
func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Close closes the database connection pool
func (r *PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}

const resultColumns = `id, name, email, industry, location, stage, responses, level, score, total_positive,
	score_title, score_summary, action_items, timeframe, dimension_scores,
	recommendation, recommendation_state, recommendation_error, created_at`

// CreateResult stores a completed assessment result
func (r *PostgresRepository) CreateResult(ctx context.Context, result *models.AssessmentResult) error {
	responsesJSON, err := json.Marshal(result.Responses)
	if err != nil {
		return fmt.Errorf("failed to marshal responses: %w", err)
	}

	actionItemsJSON, err := json.Marshal(result.ScoreResult.ActionItems)
	if err != nil {
		return fmt.Errorf("failed to marshal action items: %w", err)
	}

	dimensionsJSON, err := json.Marshal(result.DimensionScores)
	if err != nil {
		return fmt.Errorf("failed to marshal dimension scores: %w", err)
	}

	recommendationJSON, err := marshalRecommendation(result.AIRecommendation)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO assessments (id, name, email, industry, location, stage, responses, level, score, total_positive,
			score_title, score_summary, action_items, timeframe, dimension_scores,
			recommendation, recommendation_state, recommendation_error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	_, err = r.pool.Exec(ctx, query,
		result.ID,
		nullString(result.UserProfile.Name),
		nullString(result.UserProfile.Email),
		nullString(result.UserProfile.Industry),
		nullString(result.UserProfile.Location),
		nullString(result.UserProfile.Stage),
		responsesJSON,
		string(result.ScoreResult.Level),
		result.ScoreResult.Score,
		result.ScoreResult.TotalPositive,
		result.ScoreResult.Title,
		result.ScoreResult.Summary,
		actionItemsJSON,
		result.ScoreResult.Timeframe,
		dimensionsJSON,
		recommendationJSON,
		string(result.RecommendationState),
		nullString(result.RecommendationError),
		result.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create assessment result: %w", err)
	}

	return nil
}

// GetResult retrieves an assessment result by ID
func (r *PostgresRepository) GetResult(ctx context.Context, id string) (*models.AssessmentResult, error) {
	query := `SELECT ` + resultColumns + ` FROM assessments WHERE id = $1`

	result, err := scanResult(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to get assessment result: %w", err)
	}

	return result, nil
}

// ListResults returns results matching filters, newest first
func (r *PostgresRepository) ListResults(ctx context.Context, filters models.ResultFilters) ([]*models.AssessmentResult, error) {
	query := `SELECT ` + resultColumns + ` FROM assessments WHERE 1=1`
	args := make([]interface{}, 0)
	argNum := 1

	if filters.Level != "" {
		query += fmt.Sprintf(" AND level = $%d", argNum)
		args = append(args, string(filters.Level))
		argNum++
	}

	if filters.Email != "" {
		query += fmt.Sprintf(" AND email = $%d", argNum)
		args = append(args, filters.Email)
		argNum++
	}

	query += " ORDER BY created_at DESC"

	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argNum)
		args = append(args, filters.Limit)
		argNum++
	}

	if filters.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argNum)
		args = append(args, filters.Offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessment results: %w", err)
	}
	defer rows.Close()

	var results []*models.AssessmentResult

	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assessment result: %w", err)
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assessment results: %w", err)
	}

	return results, nil
}

// DeleteResult deletes a result by ID
func (r *PostgresRepository) DeleteResult(ctx context.Context, id string) error {
	query := `DELETE FROM assessments WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete assessment result: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("assessment result not found: %s", id)
	}

	return nil
}

// DeleteResultsBefore removes results created before the cutoff and returns
// how many were deleted
func (r *PostgresRepository) DeleteResultsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM assessments WHERE created_at < $1`

	result, err := r.pool.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old assessment results: %w", err)
	}

	return result.RowsAffected(), nil
}

// UpdateRecommendation advances the recommendation state machine for a result
func (r *PostgresRepository) UpdateRecommendation(ctx context.Context, id string, state models.RecommendationState, rec *models.AIRecommendation, reason string) error {
	recommendationJSON, err := marshalRecommendation(rec)
	if err != nil {
		return err
	}

	query := `
		UPDATE assessments
		SET recommendation = $2, recommendation_state = $3, recommendation_error = $4
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, id, recommendationJSON, string(state), nullString(reason))
	if err != nil {
		return fmt.Errorf("failed to update recommendation: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("assessment result not found: %s", id)
	}

	return nil
}

// InsertEvent records one analytics event
func (r *PostgresRepository) InsertEvent(ctx context.Context, event *models.AnalyticsEvent) error {
	propertiesJSON, err := json.Marshal(event.Properties)
	if err != nil {
		return fmt.Errorf("failed to marshal event properties: %w", err)
	}

	query := `INSERT INTO analytics_events (event, properties, created_at) VALUES ($1, $2, $3)`

	if _, err := r.pool.Exec(ctx, query, event.Event, propertiesJSON, event.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert analytics event: %w", err)
	}

	return nil
}

// CountEventsByName aggregates event counts since the given time
func (r *PostgresRepository) CountEventsByName(ctx context.Context, since time.Time) (map[string]int64, error) {
	query := `
		SELECT event, COUNT(*)
		FROM analytics_events
		WHERE created_at >= $1
		GROUP BY event
		ORDER BY event
	`

	rows, err := r.pool.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count analytics events: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var event string
		var count int64
		if err := rows.Scan(&event, &count); err != nil {
			return nil, fmt.Errorf("failed to scan event count: %w", err)
		}
		counts[event] = count
	}

	return counts, rows.Err()
}

// GetClientByApiKey retrieves an API client by its key
func (r *PostgresRepository) GetClientByApiKey(ctx context.Context, apiKey string) (*models.ApiClient, error) {
	query := `
		SELECT id, name, api_key, is_active, created_at, last_used_at, permissions, metadata
		FROM api_clients
		WHERE api_key = $1
	`

	var client models.ApiClient
	var lastUsedAt sql.NullTime
	var permissionsJSON, metadataJSON []byte

	err := r.pool.QueryRow(ctx, query, apiKey).Scan(
		&client.ID,
		&client.Name,
		&client.ApiKey,
		&client.IsActive,
		&client.CreatedAt,
		&lastUsedAt,
		&permissionsJSON,
		&metadataJSON,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to get api client: %w", err)
	}

	if lastUsedAt.Valid {
		client.LastUsedAt = &lastUsedAt.Time
	}

	if permissionsJSON != nil {
		if err := json.Unmarshal(permissionsJSON, &client.Permissions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal permissions: %w", err)
		}
	}

	if metadataJSON != nil {
		if err := json.Unmarshal(metadataJSON, &client.Metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
	}

	return &client, nil
}

// UpdateClientLastUsed updates the last_used_at timestamp for a client
func (r *PostgresRepository) UpdateClientLastUsed(ctx context.Context, apiKey string) error {
	query := `UPDATE api_clients SET last_used_at = NOW() WHERE api_key = $1`

	if _, err := r.pool.Exec(ctx, query, apiKey); err != nil {
		return fmt.Errorf("failed to update client last_used_at: %w", err)
	}

	return nil
}

// --- Scan helpers ---

// scanResult reads one assessment row. Works for both QueryRow and Query
// iteration since pgx.Row and pgx.Rows share Scan.
func scanResult(row pgx.Row) (*models.AssessmentResult, error) {
	var result models.AssessmentResult
	var name, email, industry, location, stage, recommendationError sql.NullString
	var levelStr, stateStr string
	var responsesJSON, actionItemsJSON, dimensionsJSON, recommendationJSON []byte

	err := row.Scan(
		&result.ID,
		&name,
		&email,
		&industry,
		&location,
		&stage,
		&responsesJSON,
		&levelStr,
		&result.ScoreResult.Score,
		&result.ScoreResult.TotalPositive,
		&result.ScoreResult.Title,
		&result.ScoreResult.Summary,
		&actionItemsJSON,
		&result.ScoreResult.Timeframe,
		&dimensionsJSON,
		&recommendationJSON,
		&stateStr,
		&recommendationError,
		&result.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	result.UserProfile = models.UserProfile{
		Name:     name.String,
		Email:    email.String,
		Industry: industry.String,
		Location: location.String,
		Stage:    stage.String,
	}
	result.ScoreResult.Level = models.ScoreLevel(levelStr)
	result.RecommendationState = models.RecommendationState(stateStr)
	result.RecommendationError = recommendationError.String

	if err := json.Unmarshal(responsesJSON, &result.Responses); err != nil {
		return nil, fmt.Errorf("failed to unmarshal responses: %w", err)
	}

	if err := json.Unmarshal(actionItemsJSON, &result.ScoreResult.ActionItems); err != nil {
		return nil, fmt.Errorf("failed to unmarshal action items: %w", err)
	}

	if err := json.Unmarshal(dimensionsJSON, &result.DimensionScores); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dimension scores: %w", err)
	}

	if recommendationJSON != nil {
		var rec models.AIRecommendation
		if err := json.Unmarshal(recommendationJSON, &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal recommendation: %w", err)
		}
		result.AIRecommendation = &rec
	}

	return &result, nil
}

// marshalRecommendation keeps a nil recommendation as SQL NULL
func marshalRecommendation(rec *models.AIRecommendation) ([]byte, error) {
	if rec == nil {
		return nil, nil
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recommendation: %w", err)
	}
	return data, nil
}

// Helper functions for nullable values

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
