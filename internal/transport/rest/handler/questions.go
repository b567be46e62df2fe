package handler

import (
	"net/http"

	"excel-mock-interviewer/internal/question"
)

// QuestionHandler exposes the static question bank for reference.
type QuestionHandler struct {
	bank *question.Bank
}

func NewQuestionHandler(bank *question.Bank) *QuestionHandler {
	return &QuestionHandler{bank: bank}
}

// List handles GET /v1/questions
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": h.bank.Questions(),
		"total":     h.bank.Len(),
	})
}
