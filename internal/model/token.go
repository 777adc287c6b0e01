package model

import "github.com/google/uuid"

// TokenManager issues and validates bearer tokens.
type TokenManager interface {
	Issue(userID uuid.UUID, email string) (string, error)
	Parse(token string) (Identity, error)
}

// Identity is the authenticated subject extracted from a valid token.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// Session is the result of a successful login.
type Session struct {
	AccessToken string
	TokenType   string
}
