package question

import (
	"os"
	"path/filepath"
	"testing"

	"excel-mock-interviewer/internal/model"
)

func TestDefaultBank(t *testing.T) {
	bank := Default()
	if bank.Len() != 7 {
		t.Fatalf("expected 7 questions, got %d", bank.Len())
	}

	first, ok := bank.At(0)
	if !ok || first.ID != 1 {
		t.Fatalf("expected question 1 first, got %+v", first)
	}
	if _, ok := bank.At(7); ok {
		t.Fatalf("expected At past the end to report missing")
	}
	if _, ok := bank.ByID(5); !ok {
		t.Fatalf("expected question 5 present")
	}
}

func TestNewRejectsInvalidBanks(t *testing.T) {
	cases := []struct {
		name      string
		questions []model.Question
	}{
		{"empty", nil},
		{"duplicate id", []model.Question{
			{ID: 1, Prompt: "a", Category: "c", Difficulty: model.DifficultyBasic},
			{ID: 1, Prompt: "b", Category: "c", Difficulty: model.DifficultyBasic},
		}},
		{"non-positive id", []model.Question{
			{ID: 0, Prompt: "a", Category: "c", Difficulty: model.DifficultyBasic},
		}},
		{"empty prompt", []model.Question{
			{ID: 1, Prompt: "", Category: "c", Difficulty: model.DifficultyBasic},
		}},
		{"unknown difficulty", []model.Question{
			{ID: 1, Prompt: "a", Category: "c", Difficulty: "Expert"},
		}},
	}

	for _, tc := range cases {
		if _, err := New(tc.questions); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestNewSortsByID(t *testing.T) {
	bank, err := New([]model.Question{
		{ID: 3, Prompt: "third", Category: "c", Difficulty: model.DifficultyBasic},
		{ID: 1, Prompt: "first", Category: "c", Difficulty: model.DifficultyBasic},
		{ID: 2, Prompt: "second", Category: "c", Difficulty: model.DifficultyBasic},
	})
	if err != nil {
		t.Fatalf("new bank: %v", err)
	}
	for i, want := range []int{1, 2, 3} {
		q, _ := bank.At(i)
		if q.ID != want {
			t.Fatalf("position %d: expected id %d, got %d", i, want, q.ID)
		}
	}
}

func TestLoadFileRoundTrip(t *testing.T) {
	data, err := Default().MarshalYAML()
	if err != nil {
		t.Fatalf("marshal bank: %v", err)
	}

	path := filepath.Join(t.TempDir(), "bank.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write bank file: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load bank file: %v", err)
	}
	if loaded.Len() != Default().Len() {
		t.Fatalf("expected %d questions, got %d", Default().Len(), loaded.Len())
	}
	q, _ := loaded.ByID(6)
	if q.Difficulty != model.DifficultyAdvanced {
		t.Fatalf("expected question 6 to stay Advanced, got %q", q.Difficulty)
	}
}

func TestCategoriesPreserveBankOrder(t *testing.T) {
	cats := Default().Categories()
	if len(cats) != 7 {
		t.Fatalf("expected 7 distinct categories, got %d", len(cats))
	}
	if cats[0] != "Lookup Functions" {
		t.Fatalf("expected Lookup Functions first, got %q", cats[0])
	}
}
