package interview

import "errors"

// Error taxonomy for the session state machine and its collaborators.
// Callers classify with errors.Is; wrapped messages carry the detail.
var (
	// ErrInvalidArgument marks malformed caller input (empty candidate name,
	// unknown question id). Never retried.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound marks an unknown session id.
	ErrNotFound = errors.New("session not found")

	// ErrInvalidState marks an operation that is not legal in the session's
	// current lifecycle state: duplicate or out-of-order answers, evaluation
	// requested before the interview finished.
	ErrInvalidState = errors.New("invalid session state")

	// ErrOutOfRange marks a current-question read past the end of the bank;
	// the caller should request evaluation instead.
	ErrOutOfRange = errors.New("question cursor out of range")

	// ErrUpstream marks a collaborator failure (speech, evaluation, store).
	// No partial mutation is committed, so the same call is safe to retry.
	ErrUpstream = errors.New("upstream service failure")

	// ErrContractViolation marks structurally invalid collaborator output,
	// such as an evaluation breakdown that does not cover every question.
	// Unlike ErrUpstream it indicates an integration bug, not transient
	// unavailability, and is not retryable.
	ErrContractViolation = errors.New("upstream contract violation")
)

// Code returns the wire code for a taxonomy error, or "internal" for
// anything outside it.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, ErrContractViolation):
		return "contract_violation"
	case errors.Is(err, ErrUpstream):
		return "upstream_error"
	}
	return "internal"
}
