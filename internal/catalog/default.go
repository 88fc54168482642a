package catalog

import "github.com/beamx-labs/validator-engine/internal/models"

// defaultQuestions is the built-in assessment catalog. Order and ids are
// stable: the dimension mapping in the scoring package depends on them.
func defaultQuestions() []models.Question {
	return []models.Question{
		{
			ID:       1,
			Title:    "The Foundation",
			Subtitle: "Do you have all three of these?",
			Type:     models.QuestionRadio,
			Options: []models.QuestionOption{
				{Value: "all-three", Label: "I have a product/service to sell, people willing to pay, and means to receive payment.", IsPositive: true},
				{Value: "missing-product", Label: "I don't have a clear product or service", IsPositive: false},
				{Value: "missing-customers", Label: "I don't have people willing to pay for my product or service", IsPositive: false},
				{Value: "missing-payment", Label: "I have not set up bank accounts/payment gateways to receive money", IsPositive: false},
				{Value: "missing-multiple", Label: "I am missing multiple elements", IsPositive: false},
			},
		},
		{
			ID:          2,
			Title:       "Value Creation",
			Subtitle:    `Complete this sentence: "I help _____ [who] achieve _____ [what result] by _____ [how]"`,
			Type:        models.QuestionText,
			Placeholder: "e.g., I help small business owners increase sales by implementing proven digital marketing strategies",
			MinLength:   20,
		},
		{
			ID:       3,
			Title:    "Market Validation",
			Subtitle: "Have you talked to at least 10 potential customers who said they'd pay for this?",
			Type:     models.QuestionRadio,
			Options: []models.QuestionOption{
				{Value: "yes-confirmed", Label: "Yes, and they confirmed they'd buy", IsPositive: true},
				{Value: "talked-no-payment", Label: "I talked to people but didn't ask about payment", IsPositive: false},
				{Value: "no-validation", Label: "No, haven't validated yet", IsPositive: false},
			},
		},
		{
			ID:       4,
			Title:    "Startup Investment",
			Subtitle: "How much money do you think you need to start?",
			Type:     models.QuestionRadio,
			Options: []models.QuestionOption{
				{Value: "under-100", Label: "Less than $100", IsPositive: true},
				{Value: "100-500", Label: "$100-$500", IsPositive: true},
				{Value: "500-1000", Label: "$500-$1,000", IsPositive: false, FollowUp: "List what you think you need (we'll help you validate this)"},
				{Value: "over-1000", Label: "More than $1,000", IsPositive: false, FollowUp: "List what you think you need (we'll help you validate this)"},
			},
			FollowUpTriggers: []string{"500-1000", "over-1000"},
			FollowUpPrompt:   "What do you think you need to spend money on?",
		},
		{
			ID:       5,
			Title:    "Skills Check",
			Subtitle: `Can you answer YES to: "People already ask me for help with this"?`,
			Type:     models.QuestionRadio,
			Options: []models.QuestionOption{
				{Value: "yes-regularly", Label: "Yes, regularly", IsPositive: true},
				{Value: "sometimes", Label: "Sometimes", IsPositive: true},
				{Value: "no", Label: "No", IsPositive: false, FollowUp: "What skill DO people ask you about?"},
			},
			FollowUpTriggers: []string{"no"},
			FollowUpPrompt:   "What skill do people actually ask you about?",
		},
		{
			ID:       6,
			Title:    "The Speed Test",
			Subtitle: "Can you make your first sale within 7 days with what you have right now?",
			Type:     models.QuestionRadio,
			Options: []models.QuestionOption{
				{Value: "yes-ready", Label: "Yes, I'm ready", IsPositive: true},
				{Value: "almost", Label: "Almost - just need a few things", IsPositive: true, FollowUp: "What do you need?"},
				{Value: "months", Label: "No, I need months to prepare", IsPositive: false, FollowUp: "What's the simplest version you could launch?"},
			},
			FollowUpTriggers: []string{"almost", "months"},
			FollowUpPrompt:   "Tell us more",
		},
		{
			ID:       7,
			Title:    "Passion-Market Fit",
			Subtitle: "Does your idea connect something you love with something people will pay for?",
			Type:     models.QuestionRadio,
			Options: []models.QuestionOption{
				{Value: "both", Label: "Yes - It's my passion AND people want it", IsPositive: true},
				{Value: "passion-only", Label: "It's my passion, but not sure about demand", IsPositive: false},
				{Value: "demand-only", Label: "People want it, but I'm not passionate", IsPositive: false},
				{Value: "neither", Label: "Neither - just seems like a good idea", IsPositive: false},
			},
		},
		{
			ID:       8,
			Title:    "Freedom vs. Money",
			Subtitle: "What matters more to you?",
			Type:     models.QuestionRadio,
			Options: []models.QuestionOption{
				{Value: "freedom", Label: "Freedom (control my time/location) even if income is modest", IsPositive: true},
				{Value: "money", Label: "Money (maximize income) even if less freedom", IsPositive: true},
				{Value: "balance", Label: "Equal balance", IsPositive: true},
			},
		},
		{
			ID:       9,
			Title:    "Learning Style",
			Subtitle: "How will you learn what you don't know?",
			Type:     models.QuestionRadio,
			Options: []models.QuestionOption{
				{Value: "start-imperfect", Label: "Start imperfectly and figure it out along the way", IsPositive: true},
				{Value: "hire-complement", Label: "Will hire people who will complement my skill", IsPositive: true},
				{Value: "courses-first", Label: "Need to take courses and read books first", IsPositive: false},
				{Value: "perfect-first", Label: "Must have everything perfect before starting", IsPositive: false},
			},
		},
		{
			ID:       10,
			Title:    "The Commitment Test",
			Subtitle: "Will you take one action in the next 24 hours to move this forward?",
			Type:     models.QuestionRadio,
			Options: []models.QuestionOption{
				{Value: "yes", Label: "Yes (I'll specify what)", IsPositive: true, FollowUp: "What specific action will you take?"},
				{Value: "maybe", Label: "Maybe", IsPositive: false},
				{Value: "no", Label: "No", IsPositive: false, FollowUp: "What's really stopping you?"},
			},
			FollowUpTriggers: []string{"yes", "no"},
			FollowUpPrompt:   "Tell us more",
		},
	}
}
