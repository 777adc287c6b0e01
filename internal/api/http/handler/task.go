package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/dtroode/taskflow/internal/logger"
	"github.com/dtroode/taskflow/internal/model"
)

// TaskService defines task operations scoped to an owner.
type TaskService interface {
	Create(ctx context.Context, ownerID uuid.UUID, title string) (model.Task, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]model.Task, error)
	UpdateStatus(ctx context.Context, ownerID uuid.UUID, taskID int64, status model.TaskStatus) (model.Task, error)
}

// Task handles HTTP endpoints for task management. Every endpoint
// expects the authentication middleware to have placed a validated
// identity on the request context.
type Task struct {
	taskService    TaskService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewTask creates a new Task handler.
func NewTask(taskService TaskService, contextManager model.ContextManager, logger *logger.Logger) *Task {
	return &Task{
		taskService:    taskService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type createTaskRequest struct {
	Title string `json:"title"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type taskResponse struct {
	ID     int64            `json:"id"`
	Title  string           `json:"title"`
	Status model.TaskStatus `json:"status"`
}

type taskStatusResponse struct {
	ID     int64            `json:"id"`
	Status model.TaskStatus `json:"status"`
}

// Create inserts a new task owned by the authenticated identity.
func (h *Task) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, model.NewValidationError("title required"))
		return
	}

	task, err := h.taskService.Create(r.Context(), identity.UserID, req.Title)
	if err != nil {
		h.logger.Debug("Task handler: create failed",
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, taskResponse{
		ID:     task.ID,
		Title:  task.Title,
		Status: task.Status,
	})
}

// List returns the authenticated identity's tasks newest-first.
func (h *Task) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	tasks, err := h.taskService.List(r.Context(), identity.UserID)
	if err != nil {
		h.logger.Debug("Task handler: list failed",
			"error", err.Error())
		handleError(w, err)
		return
	}

	response := make([]taskResponse, 0, len(tasks))
	for _, task := range tasks {
		response = append(response, taskResponse{
			ID:     task.ID,
			Title:  task.Title,
			Status: task.Status,
		})
	}

	writeJSON(w, http.StatusOK, response)
}

// UpdateStatus moves a task owned by the authenticated identity to a
// new status.
func (h *Task) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	taskID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		handleError(w, model.ErrNotFound)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, model.NewValidationError("invalid status"))
		return
	}

	task, err := h.taskService.UpdateStatus(r.Context(), identity.UserID, taskID, model.TaskStatus(req.Status))
	if err != nil {
		h.logger.Debug("Task handler: status update failed",
			"task_id", taskID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, taskStatusResponse{
		ID:     task.ID,
		Status: task.Status,
	})
}

func (h *Task) identity(w http.ResponseWriter, r *http.Request) (model.Identity, bool) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		handleError(w, model.ErrUnauthorized)
		return model.Identity{}, false
	}
	return identity, true
}
