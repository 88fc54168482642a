package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/beamx-labs/validator-engine/internal/models"
)

const keyPrefix = "assessment:draft:"

// Store keeps draft assessment state in Redis, keyed by session token.
// Drafts expire via TTL; an expired draft simply reads as not found.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore connects to Redis and verifies connectivity
func NewStore(address, password string, db int, ttl time.Duration) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &Store{client: client, ttl: ttl}, nil
}

// Create stores a fresh draft and returns its token
func (s *Store) Create(ctx context.Context, state State) (string, error) {
	token, err := models.GenerateSessionToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	if err := s.Save(ctx, token, state); err != nil {
		return "", err
	}
	return token, nil
}

// Save writes the draft state, refreshing its TTL
func (s *Store) Save(ctx context.Context, token string, state State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal session state: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+token, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Load reads the draft state for a token
func (s *Store) Load(ctx context.Context, token string) (State, error) {
	data, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return State{}, ErrSessionNotFound
		}
		return State{}, fmt.Errorf("failed to load session: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return State{}, fmt.Errorf("failed to unmarshal session state: %w", err)
	}
	return state, nil
}

// Delete removes a draft once it has been submitted or abandoned
func (s *Store) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Ping verifies Redis connectivity
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}
