package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"excel-mock-interviewer/internal/config"
	"excel-mock-interviewer/internal/interview"
)

// SpeechClient converts between candidate audio and text. Both operations are
// stateless; a text-only deployment runs without one.
type SpeechClient interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// SpeechService talks to the OpenAI audio endpoints.
type SpeechService struct {
	config *config.OpenAIConfig
	client *http.Client
}

func NewSpeechService(cfg *config.OpenAIConfig) *SpeechService {
	return &SpeechService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

func (s *SpeechService) Transcribe(ctx context.Context, audio []byte) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", "answer.webm")
	if err != nil {
		return "", fmt.Errorf("%w: %v", interview.ErrUpstream, err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("%w: %v", interview.ErrUpstream, err)
	}
	if err := writer.WriteField("model", s.config.TranscribeModel); err != nil {
		return "", fmt.Errorf("%w: %v", interview.ErrUpstream, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", interview.ErrUpstream, err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.config.BaseURL+"/audio/transcriptions", &buf)
	if err != nil {
		return "", fmt.Errorf("%w: %v", interview.ErrUpstream, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
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
		return "", fmt.Errorf("%w: transcription status %d: %s", interview.ErrUpstream, resp.StatusCode, string(body))
	}

	var result struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("%w: %v", interview.ErrUpstream, err)
	}
	return result.Text, nil
}

func (s *SpeechService) Synthesize(ctx context.Context, text string) ([]byte, error) {
	reqBody := map[string]string{
		"model": s.config.SpeechModel,
		"voice": s.config.Voice,
		"input": text,
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", interview.ErrUpstream, err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.config.BaseURL+"/audio/speech", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", interview.ErrUpstream, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", interview.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", interview.ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: speech status %d: %s", interview.ErrUpstream, resp.StatusCode, string(body))
	}
	return body, nil
}
