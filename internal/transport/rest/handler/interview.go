package handler

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"excel-mock-interviewer/internal/model"
	"excel-mock-interviewer/internal/service"
)

// InterviewHandler handles the interview session endpoints.
type InterviewHandler struct {
	interviews *service.InterviewService
}

func NewInterviewHandler(interviews *service.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviews: interviews}
}

// StartRequest is the request body for starting an interview.
type StartRequest struct {
	CandidateName string `json:"candidateName"`
}

type startResponse struct {
	SessionID      string         `json:"sessionId"`
	WelcomeMessage string         `json:"welcomeMessage"`
	FirstQuestion  model.Question `json:"firstQuestion"`
	TotalQuestions int            `json:"totalQuestions"`
}

// Start handles POST /v1/interviews
func (h *InterviewHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_argument", "invalid request body")
		return
	}

	result, err := h.interviews.Start(r.Context(), req.CandidateName)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, startResponse{
		SessionID:      result.Session.ID,
		WelcomeMessage: result.WelcomeMessage,
		FirstQuestion:  result.FirstQuestion,
		TotalQuestions: result.TotalQuestions,
	})
}

// CurrentQuestion handles GET /v1/interviews/{id}/question
func (h *InterviewHandler) CurrentQuestion(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	q, cursor, total, err := h.interviews.CurrentQuestion(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"question":       q,
		"cursor":         cursor,
		"totalQuestions": total,
	})
}

// QuestionAudio handles GET /v1/interviews/{id}/question/audio
func (h *InterviewHandler) QuestionAudio(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	audio, err := h.interviews.QuestionAudio(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	w.Write(audio)
}

// SubmitAnswerRequest carries one answer: text, or base64-encoded audio.
type SubmitAnswerRequest struct {
	QuestionID int    `json:"questionId"`
	Text       string `json:"text,omitempty"`
	Audio      string `json:"audio,omitempty"`
}

// SubmitAnswer handles POST /v1/interviews/{id}/answers
func (h *InterviewHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_argument", "invalid request body")
		return
	}

	input := service.AnswerInput{Text: req.Text}
	if req.Audio != "" {
		audio, err := base64.StdEncoding.DecodeString(req.Audio)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_argument", "audio must be base64-encoded")
			return
		}
		input.Audio = audio
	}

	result, err := h.interviews.SubmitAnswer(r.Context(), id, req.QuestionID, input)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// RequestEvaluation handles POST /v1/interviews/{id}/evaluation
func (h *InterviewHandler) RequestEvaluation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.interviews.RequestEvaluation(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GetEvaluation handles GET /v1/interviews/{id}/evaluation
func (h *InterviewHandler) GetEvaluation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.interviews.Evaluation(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Status handles GET /v1/interviews/{id}/status
func (h *InterviewHandler) Status(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.interviews.Status(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Transcript handles GET /v1/interviews/{id}/transcript
func (h *InterviewHandler) Transcript(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	pairs, err := h.interviews.Transcript(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"transcript": pairs})
}
