// Package interview implements the session state machine: a fixed question
// sequence walked forward exactly once, followed by a single batched
// evaluation. Functions here mutate in-memory snapshots only; persistence and
// collaborator calls belong to the service layer.
package interview

import (
	"fmt"
	"strings"
	"time"

	"excel-mock-interviewer/internal/model"
	"excel-mock-interviewer/internal/question"
)

// Begin constructs a new session in the in_progress state with the cursor on
// the first question.
func Begin(id, candidateName string, now time.Time) (*model.Session, error) {
	if strings.TrimSpace(candidateName) == "" {
		return nil, fmt.Errorf("%w: candidate name is required", ErrInvalidArgument)
	}
	return &model.Session{
		ID:            id,
		CandidateName: strings.TrimSpace(candidateName),
		Status:        model.SessionInProgress,
		Cursor:        0,
		Answers:       make(map[string]model.Answer),
		StartedAt:     now,
	}, nil
}

// CurrentQuestion returns the question under the cursor.
func CurrentQuestion(s *model.Session, bank *question.Bank) (model.Question, error) {
	if s.Status != model.SessionInProgress {
		return model.Question{}, fmt.Errorf("%w: session is %s", ErrInvalidState, s.Status)
	}
	q, ok := bank.At(s.Cursor)
	if !ok {
		return model.Question{}, fmt.Errorf("%w: cursor %d of %d", ErrOutOfRange, s.Cursor, bank.Len())
	}
	return q, nil
}

// SubmitAnswer records the answer for the question currently under the cursor
// and advances it. The question id must match the cursor position exactly:
// answering out of order or twice fails and leaves the session untouched.
// When the last question is answered the session moves to awaiting_evaluation.
func SubmitAnswer(s *model.Session, bank *question.Bank, questionID int, rawInput, transcript string, now time.Time) error {
	if s.Status != model.SessionInProgress {
		return fmt.Errorf("%w: cannot answer, session is %s", ErrInvalidState, s.Status)
	}
	if _, known := bank.ByID(questionID); !known {
		return fmt.Errorf("%w: unknown question id %d", ErrInvalidArgument, questionID)
	}
	current, ok := bank.At(s.Cursor)
	if !ok {
		return fmt.Errorf("%w: cursor %d of %d", ErrOutOfRange, s.Cursor, bank.Len())
	}
	if questionID != current.ID {
		if _, answered := s.AnswerFor(questionID); answered {
			return fmt.Errorf("%w: question %d already answered", ErrInvalidState, questionID)
		}
		return fmt.Errorf("%w: expected answer for question %d, got %d", ErrInvalidState, current.ID, questionID)
	}
	if strings.TrimSpace(transcript) == "" {
		return fmt.Errorf("%w: empty answer", ErrInvalidArgument)
	}

	s.SetAnswer(model.Answer{
		QuestionID:  questionID,
		RawInput:    rawInput,
		Transcript:  transcript,
		SubmittedAt: now,
	})
	s.Cursor++
	if s.Cursor == bank.Len() {
		s.Status = model.SessionAwaitingEvaluation
	}
	return nil
}

// Finished reports whether all questions have been answered.
func Finished(s *model.Session, bank *question.Bank) bool {
	return s.Cursor >= bank.Len()
}

// QAPairs assembles the (question, transcript) pairs recorded so far, in bank
// order. For a session awaiting evaluation this is the full ordered input to
// the evaluator.
func QAPairs(s *model.Session, bank *question.Bank) []model.QAPair {
	pairs := make([]model.QAPair, 0, len(s.Answers))
	for _, q := range bank.Questions() {
		a, ok := s.AnswerFor(q.ID)
		if !ok {
			continue
		}
		pairs = append(pairs, model.QAPair{Question: q, Transcript: a.Transcript})
	}
	return pairs
}

// ValidateBreakdown checks the shape of an evaluator result against the pairs
// that were sent: every question must appear exactly once in the breakdown. A
// mismatch means the evaluator integration is broken, not that it is down.
func ValidateBreakdown(pairs []model.QAPair, result *model.EvaluationResult) error {
	if result == nil {
		return fmt.Errorf("%w: nil evaluation result", ErrContractViolation)
	}
	if len(result.Breakdown) != len(pairs) {
		return fmt.Errorf("%w: %d breakdown entries for %d questions",
			ErrContractViolation, len(result.Breakdown), len(pairs))
	}
	seen := make(map[int]bool, len(result.Breakdown))
	for _, b := range result.Breakdown {
		if seen[b.QuestionID] {
			return fmt.Errorf("%w: duplicate breakdown entry for question %d", ErrContractViolation, b.QuestionID)
		}
		seen[b.QuestionID] = true
	}
	for _, p := range pairs {
		if !seen[p.Question.ID] {
			return fmt.Errorf("%w: no breakdown entry for question %d", ErrContractViolation, p.Question.ID)
		}
	}
	return nil
}

// AttachEvaluation stores the result and moves the session to its completed
// terminal state. Valid only while awaiting evaluation; a completed session
// keeps its original result.
func AttachEvaluation(s *model.Session, result *model.EvaluationResult, now time.Time) error {
	if s.Status != model.SessionAwaitingEvaluation {
		return fmt.Errorf("%w: cannot attach evaluation, session is %s", ErrInvalidState, s.Status)
	}
	s.Evaluation = result
	s.Status = model.SessionCompleted
	s.FinishedAt = &now
	return nil
}

// MarkFailed moves the session to the failed terminal state after an
// unrecoverable collaborator error.
func MarkFailed(s *model.Session, now time.Time) {
	s.Status = model.SessionFailed
	s.FinishedAt = &now
}
