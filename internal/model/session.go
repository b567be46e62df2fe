package model

import (
	"strconv"
	"time"
)

type SessionStatus string

// A session is born in_progress: starting an interview and asking the first
// question are one operation, so there is no separate created state to park in.
const (
	SessionInProgress         SessionStatus = "in_progress"
	SessionAwaitingEvaluation SessionStatus = "awaiting_evaluation"
	SessionCompleted          SessionStatus = "completed"
	SessionFailed             SessionStatus = "failed"
)

// Terminal reports whether s is a terminal lifecycle state.
func (s SessionStatus) Terminal() bool {
	return s == SessionCompleted || s == SessionFailed
}

// Session is the aggregate root for one candidate's interview: the question
// cursor, the recorded answers, and the evaluation once produced. It is the
// unit of persistence; every mutating operation overwrites the full snapshot.
//
// Answers is keyed by the decimal question ID (Mongo document keys must be
// strings); use AnswerFor/SetAnswer instead of indexing directly.
type Session struct {
	ID            string            `json:"id" bson:"_id"`
	CandidateName string            `json:"candidateName" bson:"candidateName"`
	Status        SessionStatus     `json:"status" bson:"status"`
	Cursor        int               `json:"cursor" bson:"cursor"`
	Answers       map[string]Answer `json:"answers" bson:"answers"`
	Evaluation    *EvaluationResult `json:"evaluation,omitempty" bson:"evaluation,omitempty"`
	StartedAt     time.Time         `json:"startedAt" bson:"startedAt"`
	FinishedAt    *time.Time        `json:"finishedAt,omitempty" bson:"finishedAt,omitempty"`
}

// AnswerFor returns the recorded answer for a question, if any.
func (s *Session) AnswerFor(questionID int) (Answer, bool) {
	a, ok := s.Answers[strconv.Itoa(questionID)]
	return a, ok
}

// SetAnswer records an answer under its question key.
func (s *Session) SetAnswer(a Answer) {
	if s.Answers == nil {
		s.Answers = make(map[string]Answer)
	}
	s.Answers[strconv.Itoa(a.QuestionID)] = a
}

// Clone returns a deep copy of the session. Stores that hold sessions in
// process memory hand out clones so callers can mutate freely before saving.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	cp := *s
	if s.Answers != nil {
		cp.Answers = make(map[string]Answer, len(s.Answers))
		for k, v := range s.Answers {
			cp.Answers[k] = v
		}
	}
	if s.Evaluation != nil {
		ev := *s.Evaluation
		ev.Strengths = append([]string(nil), s.Evaluation.Strengths...)
		ev.Weaknesses = append([]string(nil), s.Evaluation.Weaknesses...)
		ev.Breakdown = append([]QuestionBreakdown(nil), s.Evaluation.Breakdown...)
		cp.Evaluation = &ev
	}
	if s.FinishedAt != nil {
		t := *s.FinishedAt
		cp.FinishedAt = &t
	}
	return &cp
}
