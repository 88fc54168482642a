package scoring

import (
	"testing"

	"github.com/beamx-labs/validator-engine/internal/catalog"
	"github.com/beamx-labs/validator-engine/internal/models"
)

func TestDimensionsShape(t *testing.T) {
	cat := catalog.Default()

	for _, responses := range [][]models.AssessmentResponse{
		nil,
		{{QuestionID: 1, Answer: "all-three"}},
		allPositiveResponses(t, cat),
	} {
		dims := Dimensions(cat, responses)
		if len(dims) != 5 {
			t.Fatalf("expected exactly 5 dimensions, got %d", len(dims))
		}

		sumMax := 0
		for _, d := range dims {
			sumMax += d.MaxScore
			if d.Score < 0 || d.Score > d.MaxScore {
				t.Errorf("dimension %s score %d out of range [0,%d]", d.Name, d.Score, d.MaxScore)
			}
		}
		if sumMax != 10 {
			t.Errorf("expected sum(maxScore) == 10, got %d", sumMax)
		}
	}
}

func TestDimensionsOrderAndNames(t *testing.T) {
	cat := catalog.Default()
	dims := Dimensions(cat, nil)

	want := []struct {
		name string
		max  int
	}{
		{"Foundation", 3},
		{"Market", 2},
		{"Execution", 2},
		{"Financial", 2},
		{"Personal", 1},
	}

	for i, w := range want {
		if dims[i].Name != w.name {
			t.Errorf("dimension %d: expected %s, got %s", i, w.name, dims[i].Name)
		}
		if dims[i].MaxScore != w.max {
			t.Errorf("dimension %s: expected max %d, got %d", w.name, w.max, dims[i].MaxScore)
		}
	}
}

func TestDimensionsByID(t *testing.T) {
	cat := catalog.Default()

	// Question 10 is the only Personal question; answering it positively
	// must score Personal regardless of where it sits in the input slice.
	dims := Dimensions(cat, []models.AssessmentResponse{
		{QuestionID: 10, Answer: "yes", FollowUpAnswer: "Publish the landing page"},
	})

	for _, d := range dims {
		switch d.Name {
		case "Personal":
			if d.Score != 1 {
				t.Errorf("expected Personal score 1, got %d", d.Score)
			}
		default:
			if d.Score != 0 {
				t.Errorf("expected %s score 0, got %d", d.Name, d.Score)
			}
		}
	}
}

func TestDimensionsAllPositive(t *testing.T) {
	cat := catalog.Default()
	dims := Dimensions(cat, allPositiveResponses(t, cat))

	for _, d := range dims {
		if d.Score != d.MaxScore {
			t.Errorf("dimension %s: expected full score %d, got %d", d.Name, d.MaxScore, d.Score)
		}
	}
}
