package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/taskbot/internal/core/model"
	"github.com/bornholm/taskbot/internal/core/port"
	"github.com/bornholm/taskbot/internal/core/service"
	"github.com/pkg/errors"
)

func sendJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.ErrorContext(r.Context(), "could not encode response", slogx.Error(err))
	}
}

func sendError(w http.ResponseWriter, r *http.Request, status int, message string) {
	sendJSON(w, r, status, ErrorResponse{Error: message})
}

// handleServiceError maps every repository error kind to a distinct
// human-readable message.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, port.ErrNotFound):
		sendError(w, r, http.StatusNotFound, "Task not found.")
	case errors.Is(err, model.ErrInvalidDateFormat):
		sendError(w, r, http.StatusBadRequest, "Invalid due date. Use the YYYY-MM-DD format.")
	case errors.Is(err, service.ErrUnauthorized):
		sendError(w, r, http.StatusForbidden, "You are not allowed to receive this task.")
	case errors.Is(err, service.ErrReceiptRequired):
		sendError(w, r, http.StatusConflict, "You must receive this task before submitting.")
	case errors.Is(err, service.ErrAlreadySubmitted):
		sendError(w, r, http.StatusConflict, "You already submitted this task.")
	case errors.Is(err, service.ErrNothingToUpdate):
		sendError(w, r, http.StatusBadRequest, "No updates provided.")
	default:
		slog.ErrorContext(r.Context(), "could not execute operation", slogx.Error(err))
		sendError(w, r, http.StatusInternalServerError, "Something went wrong.")
	}
}
