package models

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// ScoreLevel is the qualitative readiness tier
type ScoreLevel string

const (
	LevelGreen  ScoreLevel = "green"
	LevelYellow ScoreLevel = "yellow"
	LevelRed    ScoreLevel = "red"
)

// AssessmentResponse is one answered question, collected in catalog order
type AssessmentResponse struct {
	QuestionID     int    `json:"questionId"`
	Answer         string `json:"answer"`
	FollowUpAnswer string `json:"followUpAnswer,omitempty"`
}

// UserProfile is collected once at the start of an assessment. Every field
// is optional; absent fields must never break scoring or recommendations.
type UserProfile struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Industry string `json:"industry,omitempty"`
	Location string `json:"location,omitempty"`
	Stage    string `json:"stage,omitempty"`
}

// ScoreResult is the deterministic output of the scoring engine. It is
// always recomputable from the responses and never a source of truth.
type ScoreResult struct {
	Level         ScoreLevel `json:"level"`
	Score         int        `json:"score"`
	TotalPositive int        `json:"totalPositive"`
	Title         string     `json:"title"`
	Summary       string     `json:"summary"`
	ActionItems   []string   `json:"actionItems"`
	Timeframe     string     `json:"timeframe"`
}

// DimensionScore is one readiness sub-category with its partial score
type DimensionScore struct {
	Name     string `json:"name"`
	Score    int    `json:"score"`
	MaxScore int    `json:"maxScore"`
}

// AssessmentResult is the unit of persistence, email payload and PDF input
type AssessmentResult struct {
	ID                  string               `json:"id"`
	UserProfile         UserProfile          `json:"userProfile"`
	Responses           []AssessmentResponse `json:"responses"`
	ScoreResult         ScoreResult          `json:"scoreResult"`
	DimensionScores     []DimensionScore     `json:"dimensionScores"`
	AIRecommendation    *AIRecommendation    `json:"aiRecommendation,omitempty"`
	RecommendationState RecommendationState  `json:"recommendationState"`
	RecommendationError string               `json:"recommendationError,omitempty"`
	CreatedAt           time.Time            `json:"createdAt"`
}

// ResultFilters defines filters for listing stored results
type ResultFilters struct {
	Level  ScoreLevel
	Email  string
	Limit  int
	Offset int
}

// AnalyticsEvent is a single tracked funnel event
type AnalyticsEvent struct {
	ID         int64             `json:"id,omitempty"`
	Event      string            `json:"event"`
	Properties map[string]string `json:"properties,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// GenerateSessionToken creates a cryptographically random 48-char hex token
func GenerateSessionToken() (string, error) {
	bytes := make([]byte, 24)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// --- API request/response shapes ---

// StartSessionRequest begins a new assessment session
type StartSessionRequest struct {
	Profile UserProfile `json:"profile"`
}

// StartSessionResponse is returned after starting a session
type StartSessionResponse struct {
	Token         string    `json:"token"`
	QuestionCount int       `json:"questionCount"`
	Question      *Question `json:"question"`
	CreatedAt     time.Time `json:"createdAt"`
}

// AnswerRequest answers the current question of a session
type AnswerRequest struct {
	Answer         string `json:"answer"`
	FollowUpAnswer string `json:"followUpAnswer,omitempty"`
}

// SessionProgressResponse describes where a session currently stands
type SessionProgressResponse struct {
	Token         string    `json:"token"`
	CurrentIndex  int       `json:"currentIndex"`
	QuestionCount int       `json:"questionCount"`
	Completed     bool      `json:"completed"`
	Question      *Question `json:"question,omitempty"`
}

// EmailRequest asks for a result to be emailed
type EmailRequest struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Type  string `json:"type"` // "capture" | "report"
}

// ShareResponse carries pre-built social share text for a result
type ShareResponse struct {
	Text string `json:"text"`
}

// TrackEventRequest ingests a client-side analytics event
type TrackEventRequest struct {
	Event      string            `json:"event"`
	Properties map[string]string `json:"properties,omitempty"`
}
