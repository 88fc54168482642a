package recommend

import (
	"strings"
	"testing"

	"github.com/beamx-labs/validator-engine/internal/models"
)

func TestBuildPrompt(t *testing.T) {
	responses := []models.AssessmentResponse{
		{QuestionID: 1, Answer: "all-three"},
		{QuestionID: 4, Answer: "over-1000", FollowUpAnswer: "Inventory and ads"},
	}
	profile := models.UserProfile{
		Name:     "Ada",
		Industry: "Retail",
		Location: "Lagos",
	}

	prompt := BuildPrompt(responses, profile, models.LevelYellow, 6)

	for _, want := range []string{
		"scored 6/10",
		"yellow light status",
		"Q1: all-three",
		"Q2: over-1000 (Follow-up: Inventory and ads)",
		"Name: Ada",
		"Industry: Retail",
		"Location: Lagos",
		`"strengths"`,
		`"weeklyRoadmap"`,
		`"riskAssessment"`,
		"3-5 resources",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	// Absent profile fields are omitted entirely
	if strings.Contains(prompt, "Stage:") {
		t.Error("prompt should omit unset profile fields")
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	responses := []models.AssessmentResponse{{QuestionID: 1, Answer: "all-three"}}
	profile := models.UserProfile{Name: "Ada"}

	a := BuildPrompt(responses, profile, models.LevelGreen, 9)
	b := BuildPrompt(responses, profile, models.LevelGreen, 9)
	if a != b {
		t.Error("BuildPrompt must be deterministic")
	}
}

func TestBuildPromptEmptyProfile(t *testing.T) {
	prompt := BuildPrompt(nil, models.UserProfile{}, models.LevelRed, 0)
	if !strings.Contains(prompt, "scored 0/10") {
		t.Error("prompt must handle an empty assessment")
	}
}
