package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/beamx-labs/validator-engine/internal/models"
)

// Level accent colors used on the score page.
var levelColors = map[models.ScoreLevel][3]int{
	models.LevelGreen:  {22, 163, 74},
	models.LevelYellow: {202, 138, 4},
	models.LevelRed:    {220, 38, 38},
}

// WritePDF renders a full readiness report for the given result.
func WritePDF(w io.Writer, result *models.AssessmentResult) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Business Readiness Report", false)
	pdf.SetAutoPageBreak(true, 20)

	writeCover(pdf, result)
	writeScore(pdf, result)
	writeDimensions(pdf, result)
	writeActionItems(pdf, result)
	if result.AIRecommendation != nil {
		writeRecommendation(pdf, result.AIRecommendation)
	}

	return pdf.Output(w)
}

func writeCover(pdf *fpdf.Fpdf, result *models.AssessmentResult) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 26)
	pdf.SetTextColor(17, 24, 39)
	pdf.Ln(40)
	pdf.CellFormat(0, 12, "Business Readiness Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(107, 114, 128)
	if name := result.UserProfile.Name; name != "" {
		pdf.CellFormat(0, 8, "Prepared for "+name, "", 1, "C", false, 0, "")
	}
	pdf.CellFormat(0, 8, result.CreatedAt.Format("January 2, 2006"), "", 1, "C", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 6, "BeamX Consulting", "", 1, "C", false, 0, "")
}

func writeScore(pdf *fpdf.Fpdf, result *models.AssessmentResult) {
	score := result.ScoreResult
	rgb, ok := levelColors[score.Level]
	if !ok {
		rgb = levelColors[models.LevelRed]
	}

	pdf.AddPage()
	sectionHeading(pdf, "Your Readiness Score")

	pdf.SetFont("Helvetica", "B", 48)
	pdf.SetTextColor(rgb[0], rgb[1], rgb[2])
	pdf.CellFormat(0, 22, fmt.Sprintf("%d%%", score.Score), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(17, 24, 39)
	pdf.CellFormat(0, 10, score.Title, "", 1, "C", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(55, 65, 81)
	pdf.MultiCell(0, 6, score.Summary, "", "L", false)

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Suggested timeframe: "+score.Timeframe, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(0, 6, fmt.Sprintf("%d of 10 readiness signals confirmed", score.TotalPositive), "", 1, "L", false, 0, "")
}

func writeDimensions(pdf *fpdf.Fpdf, result *models.AssessmentResult) {
	if len(result.DimensionScores) == 0 {
		return
	}

	pdf.Ln(8)
	sectionHeading(pdf, "Readiness by Dimension")

	pdf.SetFont("Helvetica", "", 11)
	for _, dim := range result.DimensionScores {
		pdf.SetTextColor(17, 24, 39)
		pdf.CellFormat(60, 8, dim.Name, "", 0, "L", false, 0, "")

		// Proportional bar next to the label.
		barWidth := 90.0
		filled := 0.0
		if dim.MaxScore > 0 {
			filled = barWidth * float64(dim.Score) / float64(dim.MaxScore)
		}
		x, y := pdf.GetXY()
		pdf.SetFillColor(229, 231, 235)
		pdf.Rect(x, y+2, barWidth, 4, "F")
		pdf.SetFillColor(37, 99, 235)
		if filled > 0 {
			pdf.Rect(x, y+2, filled, 4, "F")
		}
		pdf.SetXY(x+barWidth+4, y)

		pdf.SetTextColor(107, 114, 128)
		pdf.CellFormat(0, 8, fmt.Sprintf("%d/%d", dim.Score, dim.MaxScore), "", 1, "L", false, 0, "")
	}
}

func writeActionItems(pdf *fpdf.Fpdf, result *models.AssessmentResult) {
	if len(result.ScoreResult.ActionItems) == 0 {
		return
	}

	pdf.Ln(8)
	sectionHeading(pdf, "Your Next Steps")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(55, 65, 81)
	for i, item := range result.ScoreResult.ActionItems {
		pdf.MultiCell(0, 6, fmt.Sprintf("%d. %s", i+1, item), "", "L", false)
		pdf.Ln(1)
	}
}

func writeRecommendation(pdf *fpdf.Fpdf, rec *models.AIRecommendation) {
	pdf.AddPage()
	sectionHeading(pdf, "Personalized Recommendations")

	writeList(pdf, "Strengths", rec.Strengths)
	writeList(pdf, "Gaps to Address", rec.Gaps)

	if rec.PersonalizedPlan != "" {
		subHeading(pdf, "Your Plan")
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(55, 65, 81)
		pdf.MultiCell(0, 6, rec.PersonalizedPlan, "", "L", false)
		pdf.Ln(2)
	}

	if len(rec.WeeklyRoadmap) > 0 {
		subHeading(pdf, "Weekly Roadmap")
		for _, week := range rec.WeeklyRoadmap {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.SetTextColor(17, 24, 39)
			pdf.CellFormat(0, 7, fmt.Sprintf("Week %d", week.Week), "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 11)
			pdf.SetTextColor(55, 65, 81)
			for _, task := range week.Tasks {
				pdf.MultiCell(0, 6, "- "+task, "", "L", false)
			}
			pdf.Ln(1)
		}
	}

	if len(rec.Resources) > 0 {
		subHeading(pdf, "Recommended Resources")
		for _, res := range rec.Resources {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.SetTextColor(17, 24, 39)
			pdf.CellFormat(0, 7, res.Title, "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetTextColor(55, 65, 81)
			line := res.Description
			if res.Link != "" {
				line = strings.TrimSpace(line + " (" + res.Link + ")")
			}
			if line != "" {
				pdf.MultiCell(0, 5, line, "", "L", false)
			}
			pdf.Ln(1)
		}
	}

	if rec.RiskAssessment != "" {
		subHeading(pdf, "Risk Assessment")
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(55, 65, 81)
		pdf.MultiCell(0, 6, rec.RiskAssessment, "", "L", false)
	}
}

func writeList(pdf *fpdf.Fpdf, title string, items []string) {
	if len(items) == 0 {
		return
	}
	subHeading(pdf, title)
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(55, 65, 81)
	for _, item := range items {
		pdf.MultiCell(0, 6, "- "+item, "", "L", false)
	}
	pdf.Ln(2)
}

func sectionHeading(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(17, 24, 39)
	pdf.CellFormat(0, 10, text, "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func subHeading(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(17, 24, 39)
	pdf.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
}
