package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/abhisek/mindweave/internal/llm"
	"github.com/abhisek/mindweave/internal/mindgraph"
	"github.com/abhisek/mindweave/internal/progress"
	"github.com/abhisek/mindweave/internal/questions"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto HTTP statuses:
//
//	unknown node/question          -> 404
//	locked node, grading collision -> 409
//	LLM provider failures          -> 502
//	everything else                -> 400
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	var notFound *mindgraph.NotFoundError
	var questionNotFound *progress.QuestionNotFoundError
	if errors.As(err, &notFound) || errors.As(err, &questionNotFound) {
		return http.StatusNotFound
	}

	var locked *progress.LockedNodeError
	var inflight *questions.GradingInFlightError
	if errors.As(err, &locked) || errors.As(err, &inflight) {
		return http.StatusConflict
	}

	var unavailable *llm.ErrProviderUnavailable
	var rateLimited *llm.ErrRateLimit
	var invalidResp *llm.ErrInvalidResponse
	var truncated *llm.ErrMaxTokensExceeded
	if errors.As(err, &unavailable) || errors.As(err, &rateLimited) ||
		errors.As(err, &invalidResp) || errors.As(err, &truncated) {
		return http.StatusBadGateway
	}

	return http.StatusBadRequest
}
