package recommend

import (
	"fmt"
	"strings"

	"github.com/beamx-labs/validator-engine/internal/models"
)

// BuildPrompt formats the scored assessment into the analysis prompt. The
// output is deterministic for a given input: responses in order, only the
// profile fields that are present, and the exact JSON shape requested back.
func BuildPrompt(responses []models.AssessmentResponse, profile models.UserProfile, level models.ScoreLevel, totalPositive int) string {
	var lines []string
	for i, r := range responses {
		line := fmt.Sprintf("Q%d: %s", i+1, r.Answer)
		if r.FollowUpAnswer != "" {
			line += fmt.Sprintf(" (Follow-up: %s)", r.FollowUpAnswer)
		}
		lines = append(lines, line)
	}

	var profileLines []string
	if profile.Name != "" {
		profileLines = append(profileLines, "Name: "+profile.Name)
	}
	if profile.Industry != "" {
		profileLines = append(profileLines, "Industry: "+profile.Industry)
	}
	if profile.Location != "" {
		profileLines = append(profileLines, "Location: "+profile.Location)
	}
	if profile.Stage != "" {
		profileLines = append(profileLines, "Stage: "+profile.Stage)
	}

	return fmt.Sprintf(`You are a business validation expert analyzing a startup idea assessment. The entrepreneur scored %d/10 (%s light status).

USER PROFILE:
%s

ASSESSMENT RESPONSES:
%s

Provide a comprehensive analysis in JSON format with the following structure:
{
  "strengths": ["3-5 key strengths based on their responses"],
  "gaps": ["3-5 critical gaps they need to address"],
  "personalizedPlan": "A personalized 2-3 paragraph strategic plan tailored to their specific situation",
  "weeklyRoadmap": [
    {
      "week": 1,
      "tasks": ["Specific actionable task 1", "Specific actionable task 2"]
    }
  ],
  "resources": [
    {
      "title": "Resource name",
      "description": "Why this resource will help them"
    }
  ],
  "riskAssessment": "A frank assessment of the biggest risks and how to mitigate them"
}

Include 2-4 weeklyRoadmap entries depending on score level and 3-5 resources.
Be specific, actionable, and honest. If they're not ready, say so clearly. If they are ready, give them confidence and clear next steps. Use local context if location indicates a specific region.`,
		totalPositive, level,
		strings.Join(profileLines, "\n"),
		strings.Join(lines, "\n"))
}
