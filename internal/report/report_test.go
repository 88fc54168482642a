package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/beamx-labs/validator-engine/internal/models"
)

func sampleResult() *models.AssessmentResult {
	return &models.AssessmentResult{
		ID:          "abc-123",
		UserProfile: models.UserProfile{Name: "Ada", Email: "ada@example.com"},
		ScoreResult: models.ScoreResult{
			Level:         models.LevelYellow,
			Score:         60,
			TotalPositive: 6,
			Title:         "Almost Ready - Fix These Gaps First",
			Summary:       "You have a solid foundation.",
			ActionItems:   []string{"Talk to customers", "Check finances"},
			Timeframe:     "Fix gaps, then launch in 2 weeks",
		},
		DimensionScores: []models.DimensionScore{
			{Name: "Foundation", Score: 2, MaxScore: 3},
			{Name: "Market", Score: 1, MaxScore: 2},
		},
		CreatedAt: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, sampleResult()); err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}

	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("output is not a PDF")
	}
	if buf.Len() < 1000 {
		t.Errorf("PDF suspiciously small: %d bytes", buf.Len())
	}
}

func TestWritePDFWithRecommendation(t *testing.T) {
	result := sampleResult()
	result.AIRecommendation = &models.AIRecommendation{
		Strengths:        []string{"clear offer"},
		Gaps:             []string{"no budget"},
		PersonalizedPlan: "Start small.",
		WeeklyRoadmap:    []models.RoadmapWeek{{Week: 1, Tasks: []string{"register business"}}},
		Resources:        []models.Resource{{Title: "SMEDAN", Description: "registration portal", Link: "https://smedan.gov.ng"}},
		RiskAssessment:   "Moderate.",
	}
	result.RecommendationState = models.RecommendationAvailable

	var buf bytes.Buffer
	if err := WritePDF(&buf, result); err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("output is not a PDF")
	}
}

func TestWelcomeEmail(t *testing.T) {
	r := NewEmailRenderer("http://app.test")
	result := sampleResult()

	subject, body, err := r.WelcomeEmail("Ada", result)
	if err != nil {
		t.Fatalf("WelcomeEmail failed: %v", err)
	}

	if subject != "Your Business Validation Results: Almost Ready - Fix These Gaps First" {
		t.Errorf("unexpected subject: %q", subject)
	}
	for _, want := range []string{
		"Hi Ada,",
		"60%",
		"Talk to customers",
		"Fix gaps, then launch in 2 weeks",
		"http://app.test/results/abc-123",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestWelcomeEmailFallbackName(t *testing.T) {
	r := NewEmailRenderer("http://app.test")

	_, body, err := r.WelcomeEmail("", sampleResult())
	if err != nil {
		t.Fatalf("WelcomeEmail failed: %v", err)
	}
	if !strings.Contains(body, "Hi there,") {
		t.Error("expected fallback greeting for empty name")
	}
}

func TestReportEmail(t *testing.T) {
	r := NewEmailRenderer("http://app.test")

	subject, body, err := r.ReportEmail("Ada", sampleResult())
	if err != nil {
		t.Fatalf("ReportEmail failed: %v", err)
	}

	if subject != "Your Detailed Business Validation Report" {
		t.Errorf("unexpected subject: %q", subject)
	}
	if !strings.Contains(body, "http://app.test/results/abc-123") {
		t.Error("body missing result link")
	}
}
