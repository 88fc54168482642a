// Package scoring implements the deterministic readiness scoring engine.
// All functions are pure: safe to call repeatedly and concurrently, no
// hidden state, never an error for any finite response list.
package scoring

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/beamx-labs/validator-engine/internal/catalog"
	"github.com/beamx-labs/validator-engine/internal/models"
)

// Score maps an ordered response list to a readiness score.
//
// One point per question: an option-based answer scores iff the matched
// option is positive; a text answer scores iff it is non-empty and longer
// than the question's minimum length. Duplicate question ids keep the last
// answer (re-answer after back navigation), unknown ids contribute nothing.
func Score(cat *catalog.Catalog, responses []models.AssessmentResponse) models.ScoreResult {
	positive := countPositive(cat, responses)
	total := cat.Len()

	score := 0
	if total > 0 {
		score = int(math.Round(float64(positive) / float64(total) * 100))
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	level := levelFor(positive)
	details := levelDetails(level, positive)

	return models.ScoreResult{
		Level:         level,
		Score:         score,
		TotalPositive: positive,
		Title:         details.title,
		Summary:       details.summary,
		ActionItems:   details.actionItems,
		Timeframe:     details.timeframe,
	}
}

// countPositive applies the positivity rule after overwrite-by-id dedup
func countPositive(cat *catalog.Catalog, responses []models.AssessmentResponse) int {
	positive := 0
	for _, r := range latestByQuestion(cat, responses) {
		if isPositive(cat, r) {
			positive++
		}
	}
	return positive
}

// latestByQuestion collapses duplicates so the last answer per question id
// wins, and drops responses whose id has no catalog entry.
func latestByQuestion(cat *catalog.Catalog, responses []models.AssessmentResponse) []models.AssessmentResponse {
	latest := make(map[int]models.AssessmentResponse, cat.Len())
	for _, r := range responses {
		if cat.Question(r.QuestionID) == nil {
			slog.Warn("response references unknown question, treated as non-positive",
				"question_id", r.QuestionID)
			continue
		}
		latest[r.QuestionID] = r
	}

	// Catalog order, so downstream output is stable regardless of input order
	out := make([]models.AssessmentResponse, 0, len(latest))
	for _, q := range cat.Questions() {
		if r, ok := latest[q.ID]; ok {
			out = append(out, r)
		}
	}
	return out
}

// isPositive is the single positivity rule shared by scoring and
// dimension classification. The response's question id is assumed valid.
func isPositive(cat *catalog.Catalog, r models.AssessmentResponse) bool {
	q := cat.Question(r.QuestionID)
	if q == nil {
		return false
	}

	if q.Type.IsOptionBased() {
		opt := cat.Option(q.ID, r.Answer)
		return opt != nil && opt.IsPositive
	}

	if q.Type == models.QuestionText {
		return len(r.Answer) > 0 && len(r.Answer) > q.MinLength
	}

	return false
}

// levelFor applies the fixed positive-count thresholds
func levelFor(positive int) models.ScoreLevel {
	switch {
	case positive >= 8:
		return models.LevelGreen
	case positive >= 5:
		return models.LevelYellow
	default:
		return models.LevelRed
	}
}

type scoreDetails struct {
	title       string
	summary     string
	actionItems []string
	timeframe   string
}

// levelDetails is a pure lookup of the canned plan for a level
func levelDetails(level models.ScoreLevel, positive int) scoreDetails {
	switch level {
	case models.LevelGreen:
		return scoreDetails{
			title:   "GREEN LIGHT - Start This Week",
			summary: fmt.Sprintf("Congratulations! You scored %d/10. You have the essential foundations in place to launch your business.", positive),
			actionItems: []string{
				"Launch your MVP this week",
				"Set up your payment system",
				"Make your first sale",
				"Start collecting customer feedback",
				"Iterate based on real data",
			},
			timeframe: "Launch within 7 days",
		}
	case models.LevelYellow:
		return scoreDetails{
			title:   "YELLOW LIGHT - 1-2 Weeks Prep",
			summary: fmt.Sprintf("You scored %d/10. You're close! Just need to address a few gaps before launching.", positive),
			actionItems: []string{
				"Talk to 10 potential customers",
				"Set up payment system (PayPal, Stripe, Paystack, etc)",
				"Identify what you actually need vs. nice-to-have",
				"Create one-sentence value proposition",
				"Schedule launch date within 14 days",
			},
			timeframe: "Fix gaps, then launch in 2 weeks",
		}
	default:
		return scoreDetails{
			title:   "RED LIGHT - Foundation Work Needed",
			summary: fmt.Sprintf("You scored %d/10. STOP. You're not ready yet. Let's build your foundation first.", positive),
			actionItems: []string{
				"Week 1: Interview 10 people about the problem you solve",
				"Week 1: List 10 skills people ask you for help with",
				"Week 1: Research someone doing what you want to do",
				"Week 2: Clarify your value proposition",
				"Week 2: Identify the simplest version of your idea",
				"Week 2: Set up basic payment capability",
				"Week 3: Make your first test offer",
				"Week 3: Validate people will actually pay",
				"Week 3: Retake this assessment",
			},
			timeframe: "3 weeks of foundation work",
		}
	}
}

// ShareText builds the social share blurb for a computed score
func ShareText(score models.ScoreResult) string {
	return fmt.Sprintf("I just validated my business idea with BeamX! Score: %d%% - %s. Ready to launch! 🚀",
		score.Score, score.Title)
}
