package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/dtroode/taskflow/internal/api/http/context"
	"github.com/dtroode/taskflow/internal/mocks"
	"github.com/dtroode/taskflow/internal/model"
	"github.com/dtroode/taskflow/internal/testutil"
)

func authedRequest(method, target, body string, identity model.Identity) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := httpctx.NewManager().SetIdentityToContext(req.Context(), identity)
	return req.WithContext(ctx)
}

func TestTask_Create_Success(t *testing.T) {
	t.Parallel()

	identity := model.Identity{UserID: uuid.New(), Email: "a@b.c"}

	svc := mocks.NewTaskService(t)
	svc.On("Create", mock.Anything, identity.UserID, "buy milk").
		Return(model.Task{ID: 1, OwnerID: identity.UserID, Title: "buy milk", Status: model.TaskStatusTodo}, nil)

	h := NewTask(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.Create(rec, authedRequest(http.MethodPost, "/tasks", `{"title":"buy milk"}`, identity))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"title":"buy milk","status":"todo"}`, rec.Body.String())
}

func TestTask_Create_EmptyTitle(t *testing.T) {
	t.Parallel()

	identity := model.Identity{UserID: uuid.New(), Email: "a@b.c"}

	svc := mocks.NewTaskService(t)
	svc.On("Create", mock.Anything, identity.UserID, "").
		Return(model.Task{}, model.NewValidationError("title required"))

	h := NewTask(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.Create(rec, authedRequest(http.MethodPost, "/tasks", `{}`, identity))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"title required"}`, rec.Body.String())
}

func TestTask_Create_NoIdentity(t *testing.T) {
	t.Parallel()

	h := NewTask(mocks.NewTaskService(t), httpctx.NewManager(), testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(`{"title":"x"}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTask_List_NewestFirst(t *testing.T) {
	t.Parallel()

	identity := model.Identity{UserID: uuid.New(), Email: "a@b.c"}

	svc := mocks.NewTaskService(t)
	svc.On("List", mock.Anything, identity.UserID).Return([]model.Task{
		{ID: 2, OwnerID: identity.UserID, Title: "second", Status: model.TaskStatusTodo},
		{ID: 1, OwnerID: identity.UserID, Title: "first", Status: model.TaskStatusDone},
	}, nil)

	h := NewTask(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.List(rec, authedRequest(http.MethodGet, "/tasks", "", identity))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":2,"title":"second","status":"todo"},{"id":1,"title":"first","status":"done"}]`, rec.Body.String())
}

func TestTask_List_Empty(t *testing.T) {
	t.Parallel()

	identity := model.Identity{UserID: uuid.New(), Email: "a@b.c"}

	svc := mocks.NewTaskService(t)
	svc.On("List", mock.Anything, identity.UserID).Return([]model.Task{}, nil)

	h := NewTask(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.List(rec, authedRequest(http.MethodGet, "/tasks", "", identity))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestTask_UpdateStatus_Success(t *testing.T) {
	t.Parallel()

	identity := model.Identity{UserID: uuid.New(), Email: "a@b.c"}

	svc := mocks.NewTaskService(t)
	svc.On("UpdateStatus", mock.Anything, identity.UserID, int64(1), model.TaskStatusDone).
		Return(model.Task{ID: 1, OwnerID: identity.UserID, Title: "buy milk", Status: model.TaskStatusDone}, nil)

	h := NewTask(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

	req := authedRequest(http.MethodPatch, "/tasks/1/status", `{"status":"done"}`, identity)
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()

	h.UpdateStatus(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"status":"done"}`, rec.Body.String())
}

func TestTask_UpdateStatus_InvalidStatus(t *testing.T) {
	t.Parallel()

	identity := model.Identity{UserID: uuid.New(), Email: "a@b.c"}

	svc := mocks.NewTaskService(t)
	svc.On("UpdateStatus", mock.Anything, identity.UserID, int64(1), model.TaskStatus("archived")).
		Return(model.Task{}, model.NewValidationError("invalid status"))

	h := NewTask(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

	req := authedRequest(http.MethodPatch, "/tasks/1/status", `{"status":"archived"}`, identity)
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()

	h.UpdateStatus(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid status"}`, rec.Body.String())
}

func TestTask_UpdateStatus_NotFound(t *testing.T) {
	t.Parallel()

	identity := model.Identity{UserID: uuid.New(), Email: "a@b.c"}

	svc := mocks.NewTaskService(t)
	svc.On("UpdateStatus", mock.Anything, identity.UserID, int64(7), model.TaskStatusDone).
		Return(model.Task{}, model.ErrNotFound)

	h := NewTask(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

	req := authedRequest(http.MethodPatch, "/tasks/7/status", `{"status":"done"}`, identity)
	req.SetPathValue("id", "7")
	rec := httptest.NewRecorder()

	h.UpdateStatus(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"task not found"}`, rec.Body.String())
}

func TestTask_UpdateStatus_NonNumericID(t *testing.T) {
	t.Parallel()

	identity := model.Identity{UserID: uuid.New(), Email: "a@b.c"}

	h := NewTask(mocks.NewTaskService(t), httpctx.NewManager(), testutil.MakeNoopLogger())

	req := authedRequest(http.MethodPatch, "/tasks/abc/status", `{"status":"done"}`, identity)
	req.SetPathValue("id", "abc")
	rec := httptest.NewRecorder()

	h.UpdateStatus(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
