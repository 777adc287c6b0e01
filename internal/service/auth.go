package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/taskflow/internal/logger"
	"github.com/dtroode/taskflow/internal/model"
)

// TokenTypeBearer is the token type label returned on login.
const TokenTypeBearer = "bearer"

const bearerPrefix = "Bearer "

type Auth struct {
	userStore    model.UserStore
	tokenManager model.TokenManager
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Register creates a new user from an email and password. The email is
// normalized before uniqueness is checked, so addresses differing only
// in case collide.
func (a *Auth) Register(ctx context.Context, email, password string) (model.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return model.User{}, model.NewValidationError("email and password required")
	}

	a.logger.Debug("Auth service: registering user",
		"email", email)

	_, err := a.userStore.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: email already registered",
			"email", email)
		return model.User{}, model.ErrEmailTaken
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	// The unique index on email is the real guard; the lookup above
	// only exists for a cleaner error on the common path.
	savedUser, err := a.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			return model.User{}, err
		}
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"email", email,
		"user_id", savedUser.ID)

	return savedUser, nil
}

// Login verifies credentials and issues a signed token. Unknown email
// and wrong password both return model.ErrInvalidCredentials so the
// response never reveals whether an account exists.
func (a *Auth) Login(ctx context.Context, email, password string) (model.Session, error) {
	email = normalizeEmail(email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.Session{}, model.ErrInvalidCredentials
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return model.Session{}, model.ErrInvalidCredentials
	}

	accessToken, err := a.tokenManager.Issue(user.ID, user.Email)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"email", email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"email", email,
		"user_id", user.ID)

	return model.Session{
		AccessToken: accessToken,
		TokenType:   TokenTypeBearer,
	}, nil
}

// Validate resolves an Authorization header into the identity embedded
// in its bearer token.
func (a *Auth) Validate(ctx context.Context, authHeader string) (model.Identity, error) {
	tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
	if !ok || strings.TrimSpace(tokenString) == "" {
		return model.Identity{}, model.ErrMissingToken
	}

	identity, err := a.tokenManager.Parse(strings.TrimSpace(tokenString))
	if err != nil {
		return model.Identity{}, fmt.Errorf("failed to parse token: %w", err)
	}

	return identity, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
