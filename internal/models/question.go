package models

// QuestionType discriminates how a question is answered and scored
type QuestionType string

const (
	QuestionRadio  QuestionType = "radio"
	QuestionText   QuestionType = "text"
	QuestionSelect QuestionType = "select"
)

// IsOptionBased returns true if the question is answered by picking an option
func (t QuestionType) IsOptionBased() bool {
	return t == QuestionRadio || t == QuestionSelect
}

// QuestionOption is one selectable answer for a radio/select question.
// IsPositive is the signal the scoring engine consumes.
type QuestionOption struct {
	Value      string `yaml:"value" json:"value"`
	Label      string `yaml:"label" json:"label"`
	IsPositive bool   `yaml:"is_positive" json:"isPositive"`
	FollowUp   string `yaml:"follow_up" json:"followUp,omitempty"`
}

// Question is one entry of the assessment catalog. Definitions are immutable
// at runtime; order in the catalog is significant.
//
// Validation and follow-up conditions are plain data rather than predicates:
// MinLength applies to text questions (answer must be strictly longer), and
// FollowUpTriggers lists the option values that require a follow-up answer.
type Question struct {
	ID               int              `yaml:"id" json:"id"`
	Title            string           `yaml:"title" json:"title"`
	Subtitle         string           `yaml:"subtitle" json:"subtitle,omitempty"`
	Type             QuestionType     `yaml:"type" json:"type"`
	Options          []QuestionOption `yaml:"options" json:"options,omitempty"`
	Placeholder      string           `yaml:"placeholder" json:"placeholder,omitempty"`
	MinLength        int              `yaml:"min_length" json:"minLength,omitempty"`
	FollowUpTriggers []string         `yaml:"follow_up_triggers" json:"followUpTriggers,omitempty"`
	FollowUpPrompt   string           `yaml:"follow_up_prompt" json:"followUpPrompt,omitempty"`
}

// Option returns the option with the given value, or nil
func (q *Question) Option(value string) *QuestionOption {
	for i := range q.Options {
		if q.Options[i].Value == value {
			return &q.Options[i]
		}
	}
	return nil
}

// NeedsFollowUp reports whether the given answer requires a follow-up
func (q *Question) NeedsFollowUp(answer string) bool {
	for _, v := range q.FollowUpTriggers {
		if v == answer {
			return true
		}
	}
	return false
}
