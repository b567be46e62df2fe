package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"excel-mock-interviewer/internal/interview"
	"excel-mock-interviewer/internal/model"
	"excel-mock-interviewer/internal/question"
	"excel-mock-interviewer/internal/repository"
)

// InterviewService is the façade driving interview sessions. It resolves
// session ids against the store, runs the state machine on the loaded
// snapshot, and persists the result. The state machine itself never touches
// persistence.
type InterviewService struct {
	store     repository.SessionStore
	bank      *question.Bank
	evaluator EvaluationClient
	speech    SpeechClient // nil in text-only deployments
}

func NewInterviewService(store repository.SessionStore, bank *question.Bank, evaluator EvaluationClient, speech SpeechClient) *InterviewService {
	return &InterviewService{
		store:     store,
		bank:      bank,
		evaluator: evaluator,
		speech:    speech,
	}
}

// AnswerInput carries one submitted answer: plain text, or recorded audio to
// be transcribed. Exactly one of the two should be set.
type AnswerInput struct {
	Text  string
	Audio []byte
}

type StartResult struct {
	Session        *model.Session `json:"session"`
	WelcomeMessage string         `json:"welcomeMessage"`
	FirstQuestion  model.Question `json:"firstQuestion"`
	TotalQuestions int            `json:"totalQuestions"`
}

type SubmitResult struct {
	QuestionID   int             `json:"questionId"`
	NextQuestion *model.Question `json:"nextQuestion,omitempty"`
	Finished     bool            `json:"finished"`
	Progress     string          `json:"progress"`
}

type StatusResult struct {
	Status           model.SessionStatus `json:"status"`
	Cursor           int                 `json:"cursor"`
	TotalQuestions   int                 `json:"totalQuestions"`
	AnswersSubmitted int                 `json:"answersSubmitted"`
	Finished         bool                `json:"finished"`
}

// Start creates and persists a new session for the candidate.
func (s *InterviewService) Start(ctx context.Context, candidateName string) (*StartResult, error) {
	session, err := interview.Begin(uuid.NewString(), candidateName, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}

	first, _ := s.bank.At(0)
	return &StartResult{
		Session:        session,
		WelcomeMessage: welcomeMessage(session.CandidateName, s.bank),
		FirstQuestion:  first,
		TotalQuestions: s.bank.Len(),
	}, nil
}

// CurrentQuestion returns the question under the session's cursor.
func (s *InterviewService) CurrentQuestion(ctx context.Context, sessionID string) (model.Question, int, int, error) {
	session, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return model.Question{}, 0, 0, err
	}
	q, err := interview.CurrentQuestion(session, s.bank)
	if err != nil {
		return model.Question{}, 0, 0, err
	}
	return q, session.Cursor, s.bank.Len(), nil
}

// QuestionAudio synthesizes the current question prompt for voice playback.
func (s *InterviewService) QuestionAudio(ctx context.Context, sessionID string) ([]byte, error) {
	if s.speech == nil {
		return nil, fmt.Errorf("%w: this deployment is text-only", interview.ErrInvalidArgument)
	}
	session, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	q, err := interview.CurrentQuestion(session, s.bank)
	if err != nil {
		return nil, err
	}
	return s.speech.Synthesize(ctx, q.Prompt)
}

// SubmitAnswer records one answer and advances the interview. Audio input is
// transcribed first; if transcription fails nothing is recorded, so the call
// is atomic from the caller's point of view.
func (s *InterviewService) SubmitAnswer(ctx context.Context, sessionID string, questionID int, input AnswerInput) (*SubmitResult, error) {
	session, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	rawInput := input.Text
	transcript := input.Text
	if len(input.Audio) > 0 {
		if s.speech == nil {
			return nil, fmt.Errorf("%w: audio answers are not supported by this deployment", interview.ErrInvalidArgument)
		}
		transcript, err = s.speech.Transcribe(ctx, input.Audio)
		if err != nil {
			return nil, err
		}
		rawInput = fmt.Sprintf("audio(%d bytes)", len(input.Audio))
	}

	if err := interview.SubmitAnswer(session, s.bank, questionID, rawInput, transcript, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}

	result := &SubmitResult{
		QuestionID: questionID,
		Finished:   interview.Finished(session, s.bank),
		Progress:   fmt.Sprintf("Question %d of %d", session.Cursor, s.bank.Len()),
	}
	if !result.Finished {
		next, _ := s.bank.At(session.Cursor)
		result.NextQuestion = &next
	}
	return result, nil
}

// RequestEvaluation runs the single batched evaluation for a finished
// interview. It is idempotent: once a result is stored, repeat calls return
// it without another evaluator call. A failed evaluator call leaves the
// session awaiting evaluation, so the caller can retry.
func (s *InterviewService) RequestEvaluation(ctx context.Context, sessionID string) (*model.EvaluationResult, error) {
	session, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Evaluation != nil {
		return session.Evaluation, nil
	}
	if session.Status != model.SessionAwaitingEvaluation {
		return nil, fmt.Errorf("%w: evaluation requires all %d questions answered, session is %s",
			interview.ErrInvalidState, s.bank.Len(), session.Status)
	}

	pairs := interview.QAPairs(session, s.bank)
	result, err := s.evaluator.Evaluate(ctx, session.CandidateName, pairs)
	if err != nil {
		if errors.Is(err, interview.ErrContractViolation) {
			// Integration bug, not transient unavailability: park the
			// session in its failed terminal state and log it apart from
			// ordinary upstream noise.
			log.Printf("CONTRACT VIOLATION from evaluator for session %s: %v", sessionID, err)
			interview.MarkFailed(session, time.Now().UTC())
			if saveErr := s.store.Save(ctx, session); saveErr != nil {
				log.Printf("failed to persist failed session %s: %v", sessionID, saveErr)
			}
		}
		return nil, err
	}
	if err := interview.ValidateBreakdown(pairs, result); err != nil {
		log.Printf("CONTRACT VIOLATION from evaluator for session %s: %v", sessionID, err)
		interview.MarkFailed(session, time.Now().UTC())
		if saveErr := s.store.Save(ctx, session); saveErr != nil {
			log.Printf("failed to persist failed session %s: %v", sessionID, saveErr)
		}
		return nil, err
	}

	if err := interview.AttachEvaluation(session, result, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return result, nil
}

// Evaluation returns the stored report for a completed session.
func (s *InterviewService) Evaluation(ctx context.Context, sessionID string) (*model.EvaluationResult, error) {
	session, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Evaluation == nil {
		return nil, fmt.Errorf("%w: no evaluation stored, session is %s", interview.ErrInvalidState, session.Status)
	}
	return session.Evaluation, nil
}

// Status reports the session's lifecycle position. It fails only on an
// unknown id.
func (s *InterviewService) Status(ctx context.Context, sessionID string) (*StatusResult, error) {
	session, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &StatusResult{
		Status:           session.Status,
		Cursor:           session.Cursor,
		TotalQuestions:   s.bank.Len(),
		AnswersSubmitted: len(session.Answers),
		Finished:         interview.Finished(session, s.bank),
	}, nil
}

// Transcript returns the recorded (question, answer) pairs in bank order.
// A partially answered session yields a partial transcript.
func (s *InterviewService) Transcript(ctx context.Context, sessionID string) ([]model.QAPair, error) {
	session, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return interview.QAPairs(session, s.bank), nil
}

// ActiveSessions counts stored sessions, for the health endpoint.
func (s *InterviewService) ActiveSessions(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}

func welcomeMessage(candidateName string, bank *question.Bank) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Welcome to the Excel Skills Assessment, %s!\n\n", candidateName)
	fmt.Fprintf(&sb, "This interview consists of %d questions covering:\n", bank.Len())
	for _, c := range bank.Categories() {
		fmt.Fprintf(&sb, "- %s\n", c)
	}
	sb.WriteString("\nPlease answer each question to the best of your ability. Good luck!")
	return sb.String()
}
