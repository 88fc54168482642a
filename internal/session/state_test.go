package session

import (
	"testing"

	"github.com/beamx-labs/validator-engine/internal/catalog"
	"github.com/beamx-labs/validator-engine/internal/models"
)

func TestAnswerAdvances(t *testing.T) {
	cat := catalog.Default()
	state := New(models.UserProfile{Name: "Ada"})

	next, err := state.Answer(cat, "all-three", "")
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}

	if next.CurrentIndex != 1 {
		t.Errorf("expected index 1, got %d", next.CurrentIndex)
	}
	if len(next.Responses) != 1 {
		t.Fatalf("expected 1 response, got %d", len(next.Responses))
	}
	if next.Responses[0].QuestionID != 1 || next.Responses[0].Answer != "all-three" {
		t.Errorf("unexpected response: %+v", next.Responses[0])
	}

	// The original state is untouched
	if state.CurrentIndex != 0 || len(state.Responses) != 0 {
		t.Error("Answer mutated its receiver")
	}
}

func TestAnswerValidation(t *testing.T) {
	cat := catalog.Default()
	state := New(models.UserProfile{})

	if _, err := state.Answer(cat, "", ""); !IsValidationError(err) {
		t.Errorf("expected validation error for empty answer, got %v", err)
	}

	if _, err := state.Answer(cat, "not-an-option", ""); !IsValidationError(err) {
		t.Errorf("expected validation error for unknown option, got %v", err)
	}
}

func TestAnswerFollowUpRequired(t *testing.T) {
	cat := catalog.Default()
	state := New(models.UserProfile{})

	// Walk to question 4 (Startup Investment) which has follow-up triggers
	var err error
	state, err = state.Answer(cat, "all-three", "")
	if err != nil {
		t.Fatal(err)
	}
	state, err = state.Answer(cat, "I help founders validate ideas quickly", "")
	if err != nil {
		t.Fatal(err)
	}
	state, err = state.Answer(cat, "yes-confirmed", "")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := state.Answer(cat, "over-1000", ""); !IsValidationError(err) {
		t.Errorf("expected validation error for missing follow-up, got %v", err)
	}

	next, err := state.Answer(cat, "over-1000", "Inventory and a website")
	if err != nil {
		t.Fatalf("Answer with follow-up failed: %v", err)
	}
	if next.Responses[3].FollowUpAnswer != "Inventory and a website" {
		t.Errorf("follow-up answer not recorded: %+v", next.Responses[3])
	}

	// A follow-up for a non-triggering answer is dropped
	alt, err := state.Answer(cat, "under-100", "should be ignored")
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if alt.Responses[3].FollowUpAnswer != "" {
		t.Errorf("follow-up should be dropped for non-triggering answer: %+v", alt.Responses[3])
	}
}

func TestBack(t *testing.T) {
	cat := catalog.Default()
	state := New(models.UserProfile{})

	state, _ = state.Answer(cat, "all-three", "")
	state, _ = state.Answer(cat, "I help founders validate ideas quickly", "")

	back := state.Back()
	if back.CurrentIndex != 1 {
		t.Errorf("expected index 1 after Back, got %d", back.CurrentIndex)
	}
	if len(back.Responses) != 1 {
		t.Errorf("expected 1 response after Back, got %d", len(back.Responses))
	}

	// Back at the start is a no-op
	initial := New(models.UserProfile{}).Back()
	if initial.CurrentIndex != 0 || len(initial.Responses) != 0 {
		t.Error("Back at index 0 should be a no-op")
	}
}

func TestSubmit(t *testing.T) {
	cat := catalog.Default()
	state := New(models.UserProfile{})

	if _, err := state.Submit(cat); !IsValidationError(err) {
		t.Errorf("expected validation error for incomplete submit, got %v", err)
	}

	answers := []struct{ answer, followUp string }{
		{"all-three", ""},
		{"I help founders validate ideas quickly", ""},
		{"yes-confirmed", ""},
		{"under-100", ""},
		{"yes-regularly", ""},
		{"yes-ready", ""},
		{"both", ""},
		{"freedom", ""},
		{"start-imperfect", ""},
		{"yes", "Publish the landing page"},
	}

	var err error
	for _, a := range answers {
		state, err = state.Answer(cat, a.answer, a.followUp)
		if err != nil {
			t.Fatalf("Answer(%q) failed: %v", a.answer, err)
		}
	}

	if !state.Completed(cat) {
		t.Fatal("expected session to be completed")
	}

	frozen, err := state.Submit(cat)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if len(frozen) != 10 {
		t.Errorf("expected 10 frozen responses, got %d", len(frozen))
	}

	// Answering past the end is rejected
	if _, err := state.Answer(cat, "anything", ""); !IsValidationError(err) {
		t.Errorf("expected validation error answering a completed session, got %v", err)
	}
}
