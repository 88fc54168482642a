package recommend

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/beamx-labs/validator-engine/internal/models"
)

// Parse extracts an AIRecommendation from raw model output. The model is
// asked for bare JSON but tends to wrap it in prose, so the first
// brace-balanced region is taken and parsed; a repair pass handles almost-
// valid JSON. When nothing parses, a deterministic fallback is returned
// whose PersonalizedPlan carries the raw text verbatim. Never fails.
func Parse(raw string) *models.AIRecommendation {
	candidate := extractJSONObject(raw)
	if candidate != "" {
		var rec models.AIRecommendation
		if err := json.Unmarshal([]byte(candidate), &rec); err == nil {
			return &rec
		}

		repaired, err := jsonrepair.JSONRepair(candidate)
		if err == nil {
			if err := json.Unmarshal([]byte(repaired), &rec); err == nil {
				return &rec
			}
		}
		slog.Warn("could not parse recommendation JSON, using fallback", "candidate_len", len(candidate))
	}

	return fallback(raw)
}

// extractJSONObject returns the first brace-balanced substring of text, or
// "" when no opening brace closes. Braces inside JSON strings are skipped.
func extractJSONObject(text string) string {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}

	return ""
}

// fallback is the fixed-placeholder recommendation used when the reply
// carries no parseable JSON
func fallback(raw string) *models.AIRecommendation {
	return &models.AIRecommendation{
		Strengths:        []string{"AI analysis completed - see detailed report"},
		Gaps:             []string{"Review your responses carefully"},
		PersonalizedPlan: raw,
		WeeklyRoadmap: []models.RoadmapWeek{
			{Week: 1, Tasks: []string{"Review AI recommendations", "Take action on identified gaps"}},
		},
		Resources: []models.Resource{
			{Title: "BeamX Consulting", Description: "Get personalized 1-on-1 guidance"},
		},
		RiskAssessment: "Continue building on your strengths while addressing gaps",
	}
}
