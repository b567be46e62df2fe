package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"excel-mock-interviewer/internal/model"
)

// StubEvaluator is a deterministic EvaluationClient used when no API key is
// configured and in tests. Scores are a pure function of the answer text, so
// repeated runs over the same transcript produce the same report.
type StubEvaluator struct{}

func NewStubEvaluator() *StubEvaluator {
	return &StubEvaluator{}
}

func (e *StubEvaluator) Evaluate(ctx context.Context, candidateName string, pairs []model.QAPair) (*model.EvaluationResult, error) {
	breakdown := make([]model.QuestionBreakdown, 0, len(pairs))
	var sum float64
	for _, p := range pairs {
		score := stubScore(p.Transcript)
		entry := model.QuestionBreakdown{
			QuestionID:           p.Question.ID,
			TechnicalAccuracy:    score,
			PracticalApplication: score,
			Clarity:              score,
			Completeness:         score,
			Overall:              float64(score),
			Feedback:             fmt.Sprintf("Stub evaluation for question %d.", p.Question.ID),
		}
		sum += entry.Overall
		breakdown = append(breakdown, entry)
	}

	overall := 0.0
	if len(breakdown) > 0 {
		overall = sum / float64(len(breakdown))
	}

	return &model.EvaluationResult{
		OverallScore:   overall,
		Summary:        fmt.Sprintf("Stub assessment for %s across %d questions.", candidateName, len(pairs)),
		Strengths:      []string{"Completed the full interview"},
		Weaknesses:     []string{"Evaluated without a live model"},
		Recommendation: recommendationFor(overall),
		Breakdown:      breakdown,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

// stubScore buckets answers by length: longer answers score higher, capped at 5.
func stubScore(transcript string) int {
	words := len(strings.Fields(transcript))
	switch {
	case words >= 40:
		return 5
	case words >= 20:
		return 4
	case words >= 10:
		return 3
	case words >= 3:
		return 2
	}
	return 1
}
