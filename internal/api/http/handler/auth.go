package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dtroode/taskflow/internal/logger"
	"github.com/dtroode/taskflow/internal/model"
)

// AuthService defines registration, login and token validation
// operations.
type AuthService interface {
	Register(ctx context.Context, email, password string) (model.User, error)
	Login(ctx context.Context, email, password string) (model.Session, error)
	Validate(ctx context.Context, authHeader string) (model.Identity, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type validateResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Register creates a new user from an email and password.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, model.NewValidationError("email and password required"))
		return
	}

	user, err := h.authService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Debug("Auth handler: registration failed",
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, registerResponse{
		ID:    user.ID.String(),
		Email: user.Email,
	})
}

// Login verifies credentials and returns a bearer token.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, model.ErrInvalidCredentials)
		return
	}

	session, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Debug("Auth handler: login failed",
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken: session.AccessToken,
		TokenType:   session.TokenType,
	})
}

// Validate resolves the Authorization header into the identity it
// carries. This endpoint is the only contract the task service
// depends on.
func (h *Auth) Validate(w http.ResponseWriter, r *http.Request) {
	identity, err := h.authService.Validate(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		h.logger.Debug("Auth handler: validation failed",
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, validateResponse{
		UserID: identity.UserID.String(),
		Email:  identity.Email,
	})
}
