package model

// Difficulty buckets questions for reporting; it does not affect sequencing.
type Difficulty string

const (
	DifficultyBasic        Difficulty = "Basic"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Question is one entry of the interview question bank. The bank is loaded
// once at startup and never mutated; ID defines the canonical interview order.
type Question struct {
	ID         int        `json:"id" yaml:"id" bson:"id"`
	Prompt     string     `json:"prompt" yaml:"prompt" bson:"prompt"`
	Category   string     `json:"category" yaml:"category" bson:"category"`
	Difficulty Difficulty `json:"difficulty" yaml:"difficulty" bson:"difficulty"`
}

// ValidDifficulty reports whether d is one of the known difficulty levels.
func ValidDifficulty(d Difficulty) bool {
	switch d {
	case DifficultyBasic, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}
