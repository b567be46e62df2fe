package question

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"excel-mock-interviewer/internal/model"
)

// Bank is the immutable, ordered question curriculum shared by all sessions.
// Questions are ordered by ID; the order is fixed for the life of the process.
type Bank struct {
	questions []model.Question
	byID      map[int]model.Question
}

// New validates and indexes a question list. IDs must be positive and unique,
// prompts non-empty, and difficulties one of the known levels. Questions are
// sorted by ID.
func New(questions []model.Question) (*Bank, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("question bank is empty")
	}

	sorted := append([]model.Question(nil), questions...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	byID := make(map[int]model.Question, len(sorted))
	for _, q := range sorted {
		if q.ID <= 0 {
			return nil, fmt.Errorf("question id %d: must be positive", q.ID)
		}
		if _, dup := byID[q.ID]; dup {
			return nil, fmt.Errorf("question id %d: duplicate", q.ID)
		}
		if q.Prompt == "" {
			return nil, fmt.Errorf("question id %d: empty prompt", q.ID)
		}
		if !model.ValidDifficulty(q.Difficulty) {
			return nil, fmt.Errorf("question id %d: unknown difficulty %q", q.ID, q.Difficulty)
		}
		byID[q.ID] = q
	}

	return &Bank{questions: sorted, byID: byID}, nil
}

type bankFile struct {
	Questions []model.Question `yaml:"questions"`
}

// LoadFile reads a question bank from a YAML file.
func LoadFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	var f bankFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}
	return New(f.Questions)
}

// MarshalYAML renders the bank in the LoadFile format.
func (b *Bank) MarshalYAML() ([]byte, error) {
	return yaml.Marshal(bankFile{Questions: b.questions})
}

// Len returns the number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// At returns the question at the zero-based cursor position.
func (b *Bank) At(i int) (model.Question, bool) {
	if i < 0 || i >= len(b.questions) {
		return model.Question{}, false
	}
	return b.questions[i], true
}

// ByID looks up a question by its ID.
func (b *Bank) ByID(id int) (model.Question, bool) {
	q, ok := b.byID[id]
	return q, ok
}

// Questions returns a copy of the ordered question list.
func (b *Bank) Questions() []model.Question {
	return append([]model.Question(nil), b.questions...)
}

// Categories returns the distinct categories in bank order, for the welcome
// message and the bank listing endpoint.
func (b *Bank) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, q := range b.questions {
		if !seen[q.Category] {
			seen[q.Category] = true
			out = append(out, q.Category)
		}
	}
	return out
}
