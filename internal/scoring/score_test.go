package scoring

import (
	"strings"
	"testing"

	"github.com/beamx-labs/validator-engine/internal/catalog"
	"github.com/beamx-labs/validator-engine/internal/models"
)

// allPositiveResponses answers every catalog question with a positive option
// (or a long enough text answer for text questions).
func allPositiveResponses(t *testing.T, cat *catalog.Catalog) []models.AssessmentResponse {
	t.Helper()

	var responses []models.AssessmentResponse
	for _, q := range cat.Questions() {
		if q.Type == models.QuestionText {
			responses = append(responses, models.AssessmentResponse{
				QuestionID: q.ID,
				Answer:     strings.Repeat("x", q.MinLength+10),
			})
			continue
		}

		found := false
		for _, opt := range q.Options {
			if opt.IsPositive {
				responses = append(responses, models.AssessmentResponse{
					QuestionID: q.ID,
					Answer:     opt.Value,
				})
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("question %d has no positive option", q.ID)
		}
	}
	return responses
}

func TestScoreAllPositive(t *testing.T) {
	cat := catalog.Default()
	result := Score(cat, allPositiveResponses(t, cat))

	if result.TotalPositive != 10 {
		t.Errorf("expected totalPositive 10, got %d", result.TotalPositive)
	}
	if result.Score != 100 {
		t.Errorf("expected score 100, got %d", result.Score)
	}
	if result.Level != models.LevelGreen {
		t.Errorf("expected level green, got %s", result.Level)
	}
	if result.Timeframe != "Launch within 7 days" {
		t.Errorf("unexpected timeframe: %s", result.Timeframe)
	}
}

func TestScoreEmptyResponses(t *testing.T) {
	cat := catalog.Default()
	result := Score(cat, nil)

	if result.TotalPositive != 0 {
		t.Errorf("expected totalPositive 0, got %d", result.TotalPositive)
	}
	if result.Score != 0 {
		t.Errorf("expected score 0, got %d", result.Score)
	}
	if result.Level != models.LevelRed {
		t.Errorf("expected level red, got %s", result.Level)
	}
	if result.Timeframe != "3 weeks of foundation work" {
		t.Errorf("unexpected timeframe: %s", result.Timeframe)
	}
}

func TestScoreUnknownQuestionID(t *testing.T) {
	cat := catalog.Default()
	responses := []models.AssessmentResponse{
		{QuestionID: 1, Answer: "all-three"},
		{QuestionID: 999, Answer: "anything"},
	}

	result := Score(cat, responses)
	if result.TotalPositive != 1 {
		t.Errorf("unknown question id must contribute 0, got totalPositive %d", result.TotalPositive)
	}
}

func TestScoreDuplicateQuestionLastWins(t *testing.T) {
	cat := catalog.Default()
	responses := []models.AssessmentResponse{
		{QuestionID: 1, Answer: "all-three"},       // positive
		{QuestionID: 1, Answer: "missing-product"}, // re-answered, negative
	}

	result := Score(cat, responses)
	if result.TotalPositive != 0 {
		t.Errorf("last answer should win, got totalPositive %d", result.TotalPositive)
	}

	// And the other direction
	responses = []models.AssessmentResponse{
		{QuestionID: 1, Answer: "missing-product"},
		{QuestionID: 1, Answer: "all-three"},
	}
	result = Score(cat, responses)
	if result.TotalPositive != 1 {
		t.Errorf("last answer should win, got totalPositive %d", result.TotalPositive)
	}
}

func TestScoreTextValidation(t *testing.T) {
	cat := catalog.Default()

	// Question 2 requires more than 20 characters
	short := Score(cat, []models.AssessmentResponse{{QuestionID: 2, Answer: "short"}})
	if short.TotalPositive != 0 {
		t.Errorf("5-char answer must not score, got %d", short.TotalPositive)
	}

	long := Score(cat, []models.AssessmentResponse{
		{QuestionID: 2, Answer: "I help busy parents cook faster meals"},
	})
	if long.TotalPositive != 1 {
		t.Errorf("long answer must score 1, got %d", long.TotalPositive)
	}
}

func TestScoreInvalidOptionValue(t *testing.T) {
	cat := catalog.Default()
	result := Score(cat, []models.AssessmentResponse{
		{QuestionID: 1, Answer: "no-such-option"},
	})
	if result.TotalPositive != 0 {
		t.Errorf("unmatched option must contribute 0, got %d", result.TotalPositive)
	}
}

func TestScoreLevelThresholds(t *testing.T) {
	tests := []struct {
		positive int
		level    models.ScoreLevel
	}{
		{0, models.LevelRed},
		{4, models.LevelRed},
		{5, models.LevelYellow},
		{7, models.LevelYellow},
		{8, models.LevelGreen},
		{10, models.LevelGreen},
	}

	cat := catalog.Default()
	all := allPositiveResponses(t, cat)

	for _, tt := range tests {
		result := Score(cat, all[:tt.positive])
		if result.TotalPositive != tt.positive {
			t.Errorf("positive=%d: got totalPositive %d", tt.positive, result.TotalPositive)
		}
		if result.Level != tt.level {
			t.Errorf("positive=%d: expected level %s, got %s", tt.positive, tt.level, result.Level)
		}
		if result.Score < 0 || result.Score > 100 {
			t.Errorf("positive=%d: score %d out of range", tt.positive, result.Score)
		}
	}
}

func TestScoreMonotonicity(t *testing.T) {
	cat := catalog.Default()
	all := allPositiveResponses(t, cat)

	prev := -1
	for n := 0; n <= len(all); n++ {
		result := Score(cat, all[:n])
		if result.Score < prev {
			t.Errorf("adding a positive answer decreased score: %d -> %d at n=%d", prev, result.Score, n)
		}
		prev = result.Score
	}
}

func TestScoreIdempotent(t *testing.T) {
	cat := catalog.Default()
	responses := allPositiveResponses(t, cat)[:6]

	first := Score(cat, responses)
	second := Score(cat, responses)

	if first.Score != second.Score || first.Level != second.Level || first.TotalPositive != second.TotalPositive {
		t.Errorf("scoring is not idempotent: %+v vs %+v", first, second)
	}
}

func TestShareText(t *testing.T) {
	cat := catalog.Default()
	result := Score(cat, allPositiveResponses(t, cat))

	text := ShareText(result)
	if !strings.Contains(text, "100%") {
		t.Errorf("share text missing score: %s", text)
	}
	if !strings.Contains(text, result.Title) {
		t.Errorf("share text missing title: %s", text)
	}
}
