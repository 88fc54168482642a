package scoring

import (
	"github.com/beamx-labs/validator-engine/internal/catalog"
	"github.com/beamx-labs/validator-engine/internal/models"
)

// dimension groups questions into one readiness sub-category
type dimension struct {
	name        string
	questionIDs []int
}

// dimensionTable maps question ids to the five readiness dimensions.
// Resolution is by id, not by response position, so back navigation and
// re-answering cannot shift a response into the wrong dimension.
// Max scores sum to the catalog size of 10.
var dimensionTable = []dimension{
	{name: "Foundation", questionIDs: []int{1, 2, 3}},
	{name: "Market", questionIDs: []int{4, 5}},
	{name: "Execution", questionIDs: []int{6, 7}},
	{name: "Financial", questionIDs: []int{8, 9}},
	{name: "Personal", questionIDs: []int{10}},
}

// Dimensions classifies responses into the five dimension scores. The
// output always has exactly five entries in fixed order; positivity follows
// the same rule as Score.
func Dimensions(cat *catalog.Catalog, responses []models.AssessmentResponse) []models.DimensionScore {
	positiveByID := make(map[int]bool)
	for _, r := range latestByQuestion(cat, responses) {
		if isPositive(cat, r) {
			positiveByID[r.QuestionID] = true
		}
	}

	out := make([]models.DimensionScore, 0, len(dimensionTable))
	for _, d := range dimensionTable {
		ds := models.DimensionScore{
			Name:     d.name,
			MaxScore: len(d.questionIDs),
		}
		for _, id := range d.questionIDs {
			if positiveByID[id] {
				ds.Score++
			}
		}
		out = append(out, ds)
	}
	return out
}
