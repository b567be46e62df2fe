package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"excel-mock-interviewer/internal/config"
	"excel-mock-interviewer/internal/interview"
	"excel-mock-interviewer/internal/model"
)

// EvaluationClient scores a full interview transcript in one batched call.
// One call per interview, not per question, keeps cost and latency bounded
// and gives the candidate a single consistent report.
type EvaluationClient interface {
	Evaluate(ctx context.Context, candidateName string, pairs []model.QAPair) (*model.EvaluationResult, error)
}

// EvaluatorService scores transcripts via the OpenAI chat completions API.
type EvaluatorService struct {
	config *config.OpenAIConfig
	client *http.Client
}

func NewEvaluatorService(cfg *config.OpenAIConfig) *EvaluatorService {
	return &EvaluatorService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// evaluationPayload is the JSON shape the model is instructed to return.
type evaluationPayload struct {
	Summary        string   `json:"summary"`
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
	Recommendation string   `json:"recommendation"`
	Breakdown      []struct {
		QuestionID           int    `json:"question_id"`
		TechnicalAccuracy    int    `json:"technical_accuracy"`
		PracticalApplication int    `json:"practical_application"`
		Clarity              int    `json:"clarity"`
		Completeness         int    `json:"completeness"`
		Feedback             string `json:"feedback"`
	} `json:"breakdown"`
}

func (s *EvaluatorService) Evaluate(ctx context.Context, candidateName string, pairs []model.QAPair) (*model.EvaluationResult, error) {
	prompt := buildEvaluationPrompt(candidateName, pairs)

	content, err := s.callChatCompletion(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var payload evaluationPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("%w: evaluator returned invalid JSON: %v", interview.ErrContractViolation, err)
	}

	return assembleResult(payload), nil
}

// assembleResult converts the model payload into the stored report. Axis
// scores are clamped to the 0-5 scale; the per-question overall and the
// aggregate are derived here so the aggregation stays deterministic no matter
// what the model claims.
func assembleResult(payload evaluationPayload) *model.EvaluationResult {
	breakdown := make([]model.QuestionBreakdown, 0, len(payload.Breakdown))
	var sum float64
	for _, b := range payload.Breakdown {
		entry := model.QuestionBreakdown{
			QuestionID:           b.QuestionID,
			TechnicalAccuracy:    clampScore(b.TechnicalAccuracy),
			PracticalApplication: clampScore(b.PracticalApplication),
			Clarity:              clampScore(b.Clarity),
			Completeness:         clampScore(b.Completeness),
			Feedback:             b.Feedback,
		}
		entry.Overall = float64(entry.TechnicalAccuracy+entry.PracticalApplication+entry.Clarity+entry.Completeness) / 4.0
		sum += entry.Overall
		breakdown = append(breakdown, entry)
	}

	overall := 0.0
	if len(breakdown) > 0 {
		overall = sum / float64(len(breakdown))
	}

	recommendation := payload.Recommendation
	switch recommendation {
	case model.RecommendationHire, model.RecommendationNeedsImprovement, model.RecommendationNotReady:
	default:
		recommendation = recommendationFor(overall)
	}

	return &model.EvaluationResult{
		OverallScore:   overall,
		Summary:        payload.Summary,
		Strengths:      payload.Strengths,
		Weaknesses:     payload.Weaknesses,
		Recommendation: recommendation,
		Breakdown:      breakdown,
		CreatedAt:      time.Now().UTC(),
	}
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 5 {
		return 5
	}
	return v
}

func recommendationFor(overall float64) string {
	switch {
	case overall >= 4:
		return model.RecommendationHire
	case overall >= 2.5:
		return model.RecommendationNeedsImprovement
	default:
		return model.RecommendationNotReady
	}
}

// callChatCompletion makes a request to the OpenAI chat completions API and
// returns the assistant message content.
func (s *EvaluatorService) callChatCompletion(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model": s.config.ChatModel,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"temperature":     0.3,
		"response_format": map[string]string{"type": "json_object"},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: %v", interview.ErrUpstream, err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("%w: %v", interview.ErrUpstream, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", interview.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", interview.ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: evaluator status %d: %s", interview.ErrUpstream, resp.StatusCode, string(body))
	}

	var completion struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("%w: %v", interview.ErrUpstream, err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", interview.ErrUpstream)
	}
	return completion.Choices[0].Message.Content, nil
}

func buildEvaluationPrompt(candidateName string, pairs []model.QAPair) string {
	var sb strings.Builder
	for i, p := range pairs {
		fmt.Fprintf(&sb, "Question %d (id %d, %s, %s): %s\nAnswer: %s\n\n",
			i+1, p.Question.ID, p.Question.Category, p.Question.Difficulty,
			p.Question.Prompt, p.Transcript)
	}

	return fmt.Sprintf(`You are an expert Excel interviewer assessing %s.
Below is the full interview transcript. Score EVERY question on four axes
from 0 to 5: technical accuracy, practical application, clarity, completeness.
Return ONLY valid JSON matching this schema:
{
  "summary": "overall performance summary",
  "strengths": ["strength1", "strength2", "strength3"],
  "weaknesses": ["weakness1", "weakness2"],
  "recommendation": "Hire" or "Needs Improvement" or "Not Ready",
  "breakdown": [
    {
      "question_id": <int>,
      "technical_accuracy": <0-5>,
      "practical_application": <0-5>,
      "clarity": <0-5>,
      "completeness": <0-5>,
      "feedback": "specific constructive feedback"
    }
  ]
}

The breakdown must contain exactly one entry per question, using the given
question ids.

Transcript:
%s`, candidateName, sb.String())
}
