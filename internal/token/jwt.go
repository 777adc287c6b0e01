package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/taskflow/internal/model"
)

// SigningAlgorithm is the only token signing algorithm the codec
// supports. Configuration requesting anything else fails at startup.
const SigningAlgorithm = "HS256"

// DefaultTTL is the token validity window used when none is configured.
const DefaultTTL = 24 * time.Hour

// Claims represents JWT claims carrying the authenticated identity.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// JWT implements model.TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
	ttl       time.Duration
}

// NewJWT creates a token manager signing with the provided secret.
// A non-positive ttl falls back to DefaultTTL.
func NewJWT(secretKey string, ttl time.Duration) model.TokenManager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &JWT{secretKey: secretKey, ttl: ttl}
}

// Issue creates a signed token for the given user, valid from now for
// the configured window.
func (j *JWT) Issue(userID uuid.UUID, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		Email: email,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Parse checks signature, signing method and expiry, and extracts the
// identity. Every failure maps to model.ErrInvalidToken.
func (j *JWT) Parse(tokenString string) (model.Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return model.Identity{}, errors.Join(model.ErrInvalidToken, err)
	}
	if !token.Valid {
		return model.Identity{}, model.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return model.Identity{}, errors.Join(model.ErrInvalidToken, fmt.Errorf("failed to parse subject: %w", err))
	}

	return model.Identity{UserID: userID, Email: claims.Email}, nil
}
