package recommend

import (
	"testing"
)

const validJSON = `{"strengths":["a"],"gaps":["b"],"personalizedPlan":"p","weeklyRoadmap":[{"week":1,"tasks":["t"]}],"resources":[{"title":"r","description":"d"}],"riskAssessment":"x"}`

func TestParseValidJSON(t *testing.T) {
	rec := Parse(validJSON)

	if len(rec.Strengths) != 1 || rec.Strengths[0] != "a" {
		t.Errorf("unexpected strengths: %v", rec.Strengths)
	}
	if len(rec.Gaps) != 1 || rec.Gaps[0] != "b" {
		t.Errorf("unexpected gaps: %v", rec.Gaps)
	}
	if rec.PersonalizedPlan != "p" {
		t.Errorf("unexpected plan: %q", rec.PersonalizedPlan)
	}
	if len(rec.WeeklyRoadmap) != 1 || rec.WeeklyRoadmap[0].Week != 1 || rec.WeeklyRoadmap[0].Tasks[0] != "t" {
		t.Errorf("unexpected roadmap: %v", rec.WeeklyRoadmap)
	}
	if len(rec.Resources) != 1 || rec.Resources[0].Title != "r" {
		t.Errorf("unexpected resources: %v", rec.Resources)
	}
	if rec.RiskAssessment != "x" {
		t.Errorf("unexpected risk assessment: %q", rec.RiskAssessment)
	}
}

func TestParseJSONWrappedInProse(t *testing.T) {
	raw := "Here is my analysis of your idea:\n\n" + validJSON + "\n\nGood luck with the launch!"

	rec := Parse(raw)
	if rec.PersonalizedPlan != "p" {
		t.Errorf("expected embedded JSON to be extracted, got plan %q", rec.PersonalizedPlan)
	}
	if rec.RiskAssessment != "x" {
		t.Errorf("expected embedded JSON to be extracted, got risk %q", rec.RiskAssessment)
	}
}

func TestParseNotJSONFallsBack(t *testing.T) {
	raw := "not json at all"

	rec := Parse(raw)
	if rec == nil {
		t.Fatal("Parse must never return nil")
	}
	if rec.PersonalizedPlan != raw {
		t.Errorf("fallback plan must carry raw text verbatim, got %q", rec.PersonalizedPlan)
	}
	if len(rec.Strengths) == 0 || len(rec.Gaps) == 0 || len(rec.WeeklyRoadmap) == 0 || len(rec.Resources) == 0 {
		t.Error("fallback recommendation must be structurally complete")
	}
}

func TestParseUnbalancedBracesFallsBack(t *testing.T) {
	raw := `the reply starts JSON but never finishes: {"strengths": ["a"`

	rec := Parse(raw)
	if rec.PersonalizedPlan != raw {
		t.Errorf("expected fallback with raw text, got %q", rec.PersonalizedPlan)
	}
}

func TestParseRepairsAlmostValidJSON(t *testing.T) {
	// Trailing comma — invalid for encoding/json, repairable
	raw := `{"strengths":["a",],"gaps":["b"],"personalizedPlan":"p","weeklyRoadmap":[],"resources":[],"riskAssessment":"x"}`

	rec := Parse(raw)
	if rec.PersonalizedPlan != "p" {
		t.Errorf("expected repaired JSON to parse, got plan %q", rec.PersonalizedPlan)
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{`prefix {"a":{"b":2}} suffix`, `{"a":{"b":2}}`},
		{`{"s":"bra}ce in string"} tail`, `{"s":"bra}ce in string"}`},
		{`no braces here`, ``},
		{`{"never": "closed"`, ``},
	}

	for _, tt := range tests {
		if got := extractJSONObject(tt.in); got != tt.want {
			t.Errorf("extractJSONObject(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
