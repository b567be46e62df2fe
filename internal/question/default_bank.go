package question

import "excel-mock-interviewer/internal/model"

// defaultQuestions is the built-in Excel assessment curriculum, used when no
// bank file is configured.
var defaultQuestions = []model.Question{
	{
		ID:         1,
		Prompt:     "How would you use a VLOOKUP in Excel? Please provide a practical example with sample data.",
		Category:   "Lookup Functions",
		Difficulty: model.DifficultyIntermediate,
	},
	{
		ID:         2,
		Prompt:     "Explain the difference between Absolute and Relative cell references. When would you use each?",
		Category:   "Cell References",
		Difficulty: model.DifficultyBasic,
	},
	{
		ID:         3,
		Prompt:     "What is a Pivot Table and when would you use it? Walk me through creating one.",
		Category:   "Data Analysis",
		Difficulty: model.DifficultyIntermediate,
	},
	{
		ID:         4,
		Prompt:     "How do you handle duplicate values in Excel? What are the different methods available?",
		Category:   "Data Management",
		Difficulty: model.DifficultyBasic,
	},
	{
		ID:         5,
		Prompt:     "Write a formula to calculate the average of cells A1 through A10, excluding blank cells and zeros.",
		Category:   "Formulas",
		Difficulty: model.DifficultyIntermediate,
	},
	{
		ID:         6,
		Prompt:     "How would you create a dynamic chart that updates automatically when new data is added?",
		Category:   "Charts & Visualization",
		Difficulty: model.DifficultyAdvanced,
	},
	{
		ID:         7,
		Prompt:     "Explain the difference between COUNT, COUNTA, COUNTIF, and COUNTIFS functions with examples.",
		Category:   "Statistical Functions",
		Difficulty: model.DifficultyIntermediate,
	},
}

// Default returns the built-in bank. The question set is validated at init
// time, so a panic here means the hard-coded list itself is broken.
func Default() *Bank {
	b, err := New(defaultQuestions)
	if err != nil {
		panic("default question bank invalid: " + err.Error())
	}
	return b
}
