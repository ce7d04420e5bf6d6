package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/football-players-service/internal/domain/players"
	"github.com/preston-bernstein/football-players-service/internal/http/middleware"
	"github.com/preston-bernstein/football-players-service/internal/logging"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(middleware.HeaderRequestID)
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// statusFor maps a collection error onto its response status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, players.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, players.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, players.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, players.ErrIDsExhausted):
		return http.StatusInsufficientStorage
	default:
		return http.StatusInternalServerError
	}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logging.Error(logger, "player operation failed", err)
		msg = "internal error"
	}
	writeError(w, r, status, msg, logger)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
