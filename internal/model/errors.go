package model

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist
	// or is not visible to the requesting owner.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken is returned on a registration attempt with an
	// already registered email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned for both unknown email and wrong
	// password. Callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned for a malformed, expired, or
	// badly signed token.
	ErrInvalidToken = errors.New("invalid token")
	// ErrMissingToken is returned when the Authorization header is
	// absent or has no Bearer prefix.
	ErrMissingToken = errors.New("missing bearer token")
	// ErrUnauthorized covers missing credentials and every remote
	// validation failure, including the auth service being unreachable.
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError reports malformed client input with a message key
// safe to return to the client.
type ValidationError struct {
	Message string
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}
