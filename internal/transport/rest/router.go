package rest

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"excel-mock-interviewer/internal/question"
	"excel-mock-interviewer/internal/service"
	"excel-mock-interviewer/internal/transport/rest/handler"
)

// Container holds all dependencies for the router
type Container struct {
	InterviewService *service.InterviewService
	Bank             *question.Bank
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	interviewHandler := handler.NewInterviewHandler(c.InterviewService)
	questionHandler := handler.NewQuestionHandler(c.Bank)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// Service banner
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message":"Excel Mock Interviewer API","version":"1.0.0"}`))
	}).Methods("GET")

	// Health check with active session count
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		sessions, err := c.InterviewService.ActiveSessions(ctx)
		if err != nil {
			log.Printf("health: session count failed: %v", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"degraded"}`))
			return
		}
		writeHealth(w, sessions)
	}).Methods("GET")

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/questions", questionHandler.List).Methods("GET", "OPTIONS")

	v1.HandleFunc("/interviews", interviewHandler.Start).Methods("POST", "OPTIONS")
	v1.HandleFunc("/interviews/{id}/question", interviewHandler.CurrentQuestion).Methods("GET", "OPTIONS")
	v1.HandleFunc("/interviews/{id}/question/audio", interviewHandler.QuestionAudio).Methods("GET", "OPTIONS")
	v1.HandleFunc("/interviews/{id}/answers", interviewHandler.SubmitAnswer).Methods("POST", "OPTIONS")
	v1.HandleFunc("/interviews/{id}/evaluation", interviewHandler.RequestEvaluation).Methods("POST", "OPTIONS")
	v1.HandleFunc("/interviews/{id}/evaluation", interviewHandler.GetEvaluation).Methods("GET", "OPTIONS")
	v1.HandleFunc("/interviews/{id}/status", interviewHandler.Status).Methods("GET", "OPTIONS")
	v1.HandleFunc("/interviews/{id}/transcript", interviewHandler.Transcript).Methods("GET", "OPTIONS")

	return r
}

func writeHealth(w http.ResponseWriter, sessions int64) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"healthy","sessions":%d}`, sessions)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
