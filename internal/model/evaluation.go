package model

import "time"

// Recommendation values mirror the hiring verdicts the evaluator is asked for.
const (
	RecommendationHire             = "Hire"
	RecommendationNeedsImprovement = "Needs Improvement"
	RecommendationNotReady         = "Not Ready"
)

// QuestionBreakdown scores one answer on four 0-5 axes. Overall is derived
// from the axes, not reported by the evaluator.
type QuestionBreakdown struct {
	QuestionID           int     `json:"questionId" bson:"questionId"`
	TechnicalAccuracy    int     `json:"technicalAccuracy" bson:"technicalAccuracy"`
	PracticalApplication int     `json:"practicalApplication" bson:"practicalApplication"`
	Clarity              int     `json:"clarity" bson:"clarity"`
	Completeness         int     `json:"completeness" bson:"completeness"`
	Overall              float64 `json:"overall" bson:"overall"`
	Feedback             string  `json:"feedback" bson:"feedback"`
}

// EvaluationResult is the final interview report. It is produced by a single
// batched evaluator call, immutable once stored, and returned as-is on repeat
// evaluation requests.
type EvaluationResult struct {
	OverallScore   float64             `json:"overallScore" bson:"overallScore"`
	Summary        string              `json:"summary" bson:"summary"`
	Strengths      []string            `json:"strengths" bson:"strengths"`
	Weaknesses     []string            `json:"weaknesses" bson:"weaknesses"`
	Recommendation string              `json:"recommendation" bson:"recommendation"`
	Breakdown      []QuestionBreakdown `json:"breakdown" bson:"breakdown"`
	CreatedAt      time.Time           `json:"createdAt" bson:"createdAt"`
}
