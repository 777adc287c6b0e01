package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dtroode/taskflow/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// handleError translates domain errors into status codes with a
// machine-readable JSON body. Anything unrecognized becomes an opaque
// 500; internals never reach the client.
func handleError(w http.ResponseWriter, err error) {
	var validationErr *model.ValidationError

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: validationErr.Message})
	case errors.Is(err, model.ErrEmailTaken):
		writeJSON(w, http.StatusConflict, errorResponse{Error: model.ErrEmailTaken.Error()})
	case errors.Is(err, model.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: model.ErrInvalidCredentials.Error()})
	case errors.Is(err, model.ErrMissingToken):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: model.ErrMissingToken.Error()})
	case errors.Is(err, model.ErrInvalidToken):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: model.ErrInvalidToken.Error()})
	case errors.Is(err, model.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: model.ErrUnauthorized.Error()})
	case errors.Is(err, model.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "task not found"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
