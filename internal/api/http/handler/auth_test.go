package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/taskflow/internal/mocks"
	"github.com/dtroode/taskflow/internal/model"
	"github.com/dtroode/taskflow/internal/testutil"
)

func TestAuth_Register_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	svc := mocks.NewAuthService(t)
	svc.On("Register", mock.Anything, "a@b.c", "pw").Return(model.User{ID: userID, Email: "a@b.c"}, nil)

	h := NewAuth(svc, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"email":"a@b.c","password":"pw"}`))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, userID.String(), body["id"])
	assert.Equal(t, "a@b.c", body["email"])
}

func TestAuth_Register_InvalidBody(t *testing.T) {
	t.Parallel()

	h := NewAuth(mocks.NewAuthService(t), testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader("{"))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"email and password required"}`, rec.Body.String())
}

func TestAuth_Register_MissingFields(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	svc.On("Register", mock.Anything, "", "").Return(model.User{}, model.NewValidationError("email and password required"))

	h := NewAuth(svc, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"email and password required"}`, rec.Body.String())
}

func TestAuth_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	svc.On("Register", mock.Anything, "a@b.c", "pw").Return(model.User{}, model.ErrEmailTaken)

	h := NewAuth(svc, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"email":"a@b.c","password":"pw"}`))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"email already registered"}`, rec.Body.String())
}

func TestAuth_Login_Success(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	svc.On("Login", mock.Anything, "a@b.c", "pw").Return(model.Session{AccessToken: "signed-token", TokenType: "bearer"}, nil)

	h := NewAuth(svc, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.c","password":"pw"}`))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"access_token":"signed-token","token_type":"bearer"}`, rec.Body.String())
}

func TestAuth_Login_InvalidCredentials(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	svc.On("Login", mock.Anything, "a@b.c", "wrong").Return(model.Session{}, model.ErrInvalidCredentials)

	h := NewAuth(svc, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.c","password":"wrong"}`))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"invalid credentials"}`, rec.Body.String())
}

func TestAuth_Validate_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	svc := mocks.NewAuthService(t)
	svc.On("Validate", mock.Anything, "Bearer token").Return(model.Identity{UserID: userID, Email: "a@b.c"}, nil)

	h := NewAuth(svc, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/auth/validate", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	h.Validate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, userID.String(), body["user_id"])
	assert.Equal(t, "a@b.c", body["email"])
}

func TestAuth_Validate_MissingHeader(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	svc.On("Validate", mock.Anything, "").Return(model.Identity{}, model.ErrMissingToken)

	h := NewAuth(svc, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/auth/validate", nil)
	rec := httptest.NewRecorder()

	h.Validate(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"missing bearer token"}`, rec.Body.String())
}

func TestAuth_Validate_InvalidToken(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	svc.On("Validate", mock.Anything, "Bearer bad").Return(model.Identity{}, model.ErrInvalidToken)

	h := NewAuth(svc, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/auth/validate", nil)
	req.Header.Set("Authorization", "Bearer bad")
	rec := httptest.NewRecorder()

	h.Validate(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"invalid token"}`, rec.Body.String())
}
