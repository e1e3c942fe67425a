package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/live-scoreboard/internal/domain/matches"
	"github.com/preston-bernstein/live-scoreboard/internal/http/middleware"
	"github.com/preston-bernstein/live-scoreboard/internal/logging"
)

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Error     string `json:"error"`
	Field     string `json:"field,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	writeErrorField(w, r, status, message, "", logger)
}

func writeErrorField(w http.ResponseWriter, r *http.Request, status int, message, field string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(middleware.HeaderRequestID)
	}
	writeJSON(w, status, errorResponse{Error: message, Field: field, RequestID: reqID}, logger)
}

// writeDomainError maps scoreboard error kinds onto HTTP statuses.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logging.Error(logger, "unexpected scoreboard error", err)
		writeError(w, r, status, "internal error", logger)
		return
	}

	var field string
	if e, ok := matches.AsError(err); ok {
		field = e.Field
	}
	writeErrorField(w, r, status, err.Error(), field, logger)
}

func statusFor(err error) int {
	switch kind := matches.KindOf(err); {
	case errors.Is(kind, matches.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(kind, matches.ErrOutOfRange):
		return http.StatusUnprocessableEntity
	case errors.Is(kind, matches.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
