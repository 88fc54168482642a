package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/beamx-labs/validator-engine/internal/models"
)

type optionKey struct {
	questionID int
	value      string
}

// Catalog is the ordered, immutable set of assessment questions with lookup
// tables by id and by (questionID, optionValue). Built once at startup and
// safe for concurrent reads.
type Catalog struct {
	questions []models.Question
	byID      map[int]*models.Question
	options   map[optionKey]*models.QuestionOption
}

// New builds a catalog from an ordered question list
func New(questions []models.Question) (*Catalog, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	c := &Catalog{
		questions: questions,
		byID:      make(map[int]*models.Question, len(questions)),
		options:   make(map[optionKey]*models.QuestionOption),
	}

	for i := range c.questions {
		q := &c.questions[i]
		if q.ID <= 0 {
			return nil, fmt.Errorf("question %q has invalid id %d", q.Title, q.ID)
		}
		if _, dup := c.byID[q.ID]; dup {
			return nil, fmt.Errorf("duplicate question id %d", q.ID)
		}
		if q.Type.IsOptionBased() && len(q.Options) == 0 {
			return nil, fmt.Errorf("question %d is %s but has no options", q.ID, q.Type)
		}
		c.byID[q.ID] = q

		for j := range q.Options {
			opt := &q.Options[j]
			key := optionKey{questionID: q.ID, value: opt.Value}
			if _, dup := c.options[key]; dup {
				return nil, fmt.Errorf("question %d has duplicate option value %q", q.ID, opt.Value)
			}
			c.options[key] = opt
		}
	}

	return c, nil
}

// Default returns the built-in ten-question catalog
func Default() *Catalog {
	c, err := New(defaultQuestions())
	if err != nil {
		// The built-in catalog is static data; failing to build it is a bug.
		panic(fmt.Sprintf("invalid built-in catalog: %v", err))
	}
	return c
}

// Questions returns the questions in catalog order
func (c *Catalog) Questions() []models.Question {
	return c.questions
}

// Len returns the number of questions
func (c *Catalog) Len() int {
	return len(c.questions)
}

// Question returns the question with the given id, or nil
func (c *Catalog) Question(id int) *models.Question {
	return c.byID[id]
}

// At returns the question at the given position, or nil
func (c *Catalog) At(index int) *models.Question {
	if index < 0 || index >= len(c.questions) {
		return nil
	}
	return &c.questions[index]
}

// Option resolves an option by question id and option value, or nil
func (c *Catalog) Option(questionID int, value string) *models.QuestionOption {
	return c.options[optionKey{questionID: questionID, value: value}]
}

// questionsFile is the on-disk YAML shape for catalog overrides
type questionsFile struct {
	Questions []models.Question `yaml:"questions"`
}

// LoadFromDir loads question definitions from all YAML files in a directory
// and returns a catalog ordered by question id. Files may hold a single
// question or a list under a top-level "questions" key.
func LoadFromDir(dir string) (*Catalog, error) {
	slog.Info("loading question catalog from directory", "dir", dir)

	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			continue
		}
		files = append(files, matches...)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no catalog files found in %s", dir)
	}

	var questions []models.Question
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			slog.Warn("failed to read catalog file", "file", file, "error", err)
			continue
		}

		var qf questionsFile
		if err := yaml.Unmarshal(data, &qf); err == nil && len(qf.Questions) > 0 {
			questions = append(questions, qf.Questions...)
			continue
		}

		var q models.Question
		if err := yaml.Unmarshal(data, &q); err != nil || q.ID == 0 {
			slog.Warn("failed to parse catalog file", "file", file, "error", err)
			continue
		}
		questions = append(questions, q)
	}

	sort.Slice(questions, func(i, j int) bool {
		return questions[i].ID < questions[j].ID
	})

	c, err := New(questions)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog in %s: %w", dir, err)
	}

	slog.Info("question catalog loaded", "questions", c.Len())
	return c, nil
}

// LoadOrDefault loads the catalog from dir when set, falling back to the
// built-in catalog when dir is empty or unreadable.
func LoadOrDefault(dir string) *Catalog {
	if dir == "" {
		return Default()
	}
	c, err := LoadFromDir(dir)
	if err != nil {
		slog.Warn("falling back to built-in catalog", "dir", dir, "error", err)
		return Default()
	}
	return c
}
