package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"excel-mock-interviewer/internal/interview"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message, "code": code})
}

// writeDomainError maps the interview error taxonomy to HTTP statuses. The
// error kind is preserved in the body's code field; only the wording is
// presentation-layer.
func writeDomainError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, interview.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, interview.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, interview.ErrInvalidState), errors.Is(err, interview.ErrOutOfRange):
		status = http.StatusConflict
	case errors.Is(err, interview.ErrContractViolation), errors.Is(err, interview.ErrUpstream):
		status = http.StatusBadGateway
	}
	writeError(w, status, interview.Code(err), err.Error())
}
