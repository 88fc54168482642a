package models

// RecommendationState tracks AI recommendation availability for a result.
// Transitions: not_requested -> requesting -> available | unavailable.
// Unavailable is terminal until a fresh request is made by the caller;
// there are no automatic retries.
type RecommendationState string

const (
	RecommendationNotRequested RecommendationState = "not_requested"
	RecommendationRequesting   RecommendationState = "requesting"
	RecommendationAvailable    RecommendationState = "available"
	RecommendationUnavailable  RecommendationState = "unavailable"
)

// CanRequest reports whether a new recommendation request may be started
func (s RecommendationState) CanRequest() bool {
	return s == RecommendationNotRequested || s == RecommendationUnavailable
}

// RoadmapWeek is one week of the AI-generated launch roadmap
type RoadmapWeek struct {
	Week  int      `json:"week"`
	Tasks []string `json:"tasks"`
}

// Resource is one recommended reading/tool entry
type Resource struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}

// AIRecommendation is the structured narrative layered on top of the
// deterministic score. Produced by parsing external model output; a valid
// fallback must always be producible.
type AIRecommendation struct {
	Strengths        []string      `json:"strengths"`
	Gaps             []string      `json:"gaps"`
	PersonalizedPlan string        `json:"personalizedPlan"`
	WeeklyRoadmap    []RoadmapWeek `json:"weeklyRoadmap"`
	Resources        []Resource    `json:"resources"`
	RiskAssessment   string        `json:"riskAssessment"`
}
