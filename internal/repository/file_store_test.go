package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"excel-mock-interviewer/internal/interview"
	"excel-mock-interviewer/internal/model"
)

func sampleSession(id string) *model.Session {
	s := &model.Session{
		ID:            id,
		CandidateName: "Jane Doe",
		Status:        model.SessionInProgress,
		Cursor:        2,
		Answers:       make(map[string]model.Answer),
		StartedAt:     time.Now().UTC().Truncate(time.Second),
	}
	s.SetAnswer(model.Answer{QuestionID: 1, RawInput: "a1", Transcript: "a1", SubmittedAt: s.StartedAt})
	s.SetAnswer(model.Answer{QuestionID: 2, RawInput: "a2", Transcript: "a2", SubmittedAt: s.StartedAt})
	return s
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileSessionStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	saved := sampleSession("abc-123")
	if err := store.Save(ctx, saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Load(ctx, "abc-123")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Status != saved.Status || loaded.Cursor != saved.Cursor {
		t.Fatalf("snapshot mismatch: %+v vs %+v", loaded, saved)
	}
	if len(loaded.Answers) != 2 {
		t.Fatalf("expected 2 answers, got %d", len(loaded.Answers))
	}
	a, ok := loaded.AnswerFor(2)
	if !ok || a.Transcript != "a2" {
		t.Fatalf("answer 2 not reconstructed: %+v", a)
	}
}

func TestFileStoreOverwriteLastWriteWins(t *testing.T) {
	ctx := context.Background()
	store, _ := NewFileSessionStore(t.TempDir())

	s := sampleSession("abc-123")
	if err := store.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}
	s.Cursor = 5
	s.Status = model.SessionAwaitingEvaluation
	if err := store.Save(ctx, s); err != nil {
		t.Fatalf("resave: %v", err)
	}

	loaded, _ := store.Load(ctx, "abc-123")
	if loaded.Cursor != 5 || loaded.Status != model.SessionAwaitingEvaluation {
		t.Fatalf("expected latest snapshot, got %+v", loaded)
	}
}

func TestFileStoreUnknownIDIsNotFound(t *testing.T) {
	store, _ := NewFileSessionStore(t.TempDir())
	if _, err := store.Load(context.Background(), "missing"); !errors.Is(err, interview.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	// Path-escaping ids must not reach the filesystem.
	if _, err := store.Load(context.Background(), "../etc/passwd"); !errors.Is(err, interview.ErrNotFound) {
		t.Fatalf("expected not found for hostile id, got %v", err)
	}
}

func TestFileStoreCount(t *testing.T) {
	ctx := context.Background()
	store, _ := NewFileSessionStore(t.TempDir())

	for _, id := range []string{"a", "b", "c"} {
		if err := store.Save(ctx, sampleSession(id)); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}
	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 sessions, got %d", n)
	}
}
