package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"excel-mock-interviewer/internal/config"
	"excel-mock-interviewer/internal/interview"
)

func speechFor(url string) *SpeechService {
	return NewSpeechService(&config.OpenAIConfig{
		APIKey:          "test-key",
		BaseURL:         url,
		TranscribeModel: "whisper-1",
		SpeechModel:     "tts-1",
		Voice:           "alloy",
		TimeoutMS:       5000,
	})
}

func TestTranscribeSendsMultipartAndParsesText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/audio/transcriptions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		if got := r.FormValue("model"); got != "whisper-1" {
			t.Errorf("expected whisper-1, got %q", got)
		}
		if _, _, err := r.FormFile("file"); err != nil {
			t.Errorf("missing audio file part: %v", err)
		}
		w.Write([]byte(`{"text":"I would use a VLOOKUP"}`))
	}))
	defer srv.Close()

	text, err := speechFor(srv.URL).Transcribe(context.Background(), []byte{1, 2, 3})
	if err != nil {
		t.Fatalf("transcribe: %v", err)
	}
	if text != "I would use a VLOOKUP" {
		t.Fatalf("unexpected transcript %q", text)
	}
}

func TestSynthesizeReturnsAudioBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/audio/speech" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte("mp3-bytes"))
	}))
	defer srv.Close()

	audio, err := speechFor(srv.URL).Synthesize(context.Background(), "question one")
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	if string(audio) != "mp3-bytes" {
		t.Fatalf("unexpected audio payload %q", audio)
	}
}

func TestSpeechFailuresAreUpstreamErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if _, err := speechFor(srv.URL).Transcribe(context.Background(), []byte{1}); !errors.Is(err, interview.ErrUpstream) {
		t.Fatalf("transcribe: expected upstream error, got %v", err)
	}
	if _, err := speechFor(srv.URL).Synthesize(context.Background(), "x"); !errors.Is(err, interview.ErrUpstream) {
		t.Fatalf("synthesize: expected upstream error, got %v", err)
	}
}
