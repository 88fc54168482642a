package recommend

import (
	"context"
	"log/slog"

	"github.com/beamx-labs/validator-engine/internal/models"
)

// Service drives one recommendation request end to end: prompt, external
// call, lenient parse. The only error it can return is a service failure;
// a garbled reply still produces a usable recommendation.
type Service struct {
	client Client
}

// NewService wraps a Client
func NewService(client Client) *Service {
	return &Service{client: client}
}

// Generate builds the prompt for a scored assessment, submits it, and
// parses the reply. No retries; the caller decides whether to re-invoke.
func (s *Service) Generate(ctx context.Context, responses []models.AssessmentResponse, profile models.UserProfile, level models.ScoreLevel, totalPositive int) (*models.AIRecommendation, error) {
	prompt := BuildPrompt(responses, profile, level, totalPositive)

	slog.Info("requesting recommendation", "prompt_len", len(prompt), "level", level)

	raw, err := s.client.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return Parse(raw), nil
}
