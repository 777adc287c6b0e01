package middleware

import (
	"net/http"

	"github.com/dtroode/taskflow/internal/logger"
	"github.com/dtroode/taskflow/internal/model"
)

// Authenticate guards protected endpoints. It resolves the request's
// Authorization header through the validator and injects the resulting
// identity into the request context. Every validation failure,
// including the auth service being unreachable, yields the same 401.
type Authenticate struct {
	validator      model.Validator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(validator model.Validator, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		validator:      validator,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Handle wraps next with the authentication check.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := m.validator.Validate(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			m.logger.Info("Authenticate middleware: request rejected",
				"method", r.Method,
				"path", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"unauthorized"}` + "\n"))
			return
		}

		ctx := m.contextManager.SetIdentityToContext(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
