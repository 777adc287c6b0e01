package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/taskflow/internal/logger"
	"github.com/dtroode/taskflow/internal/model"
)

type Task struct {
	taskStore model.TaskStore
	logger    *logger.Logger
}

func NewTask(taskStore model.TaskStore, logger *logger.Logger) *Task {
	return &Task{
		taskStore: taskStore,
		logger:    logger,
	}
}

// Create inserts a new task owned by ownerID with the default todo
// status.
func (s *Task) Create(ctx context.Context, ownerID uuid.UUID, title string) (model.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Task{}, model.NewValidationError("title required")
	}

	task := model.Task{
		OwnerID:   ownerID,
		Title:     title,
		Status:    model.TaskStatusTodo,
		CreatedAt: time.Now(),
	}

	savedTask, err := s.taskStore.Create(ctx, task)
	if err != nil {
		s.logger.Error("Task service: failed to create task",
			"owner_id", ownerID,
			"error", err.Error())
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("Task service: task created",
		"owner_id", ownerID,
		"task_id", savedTask.ID)

	return savedTask, nil
}

// List returns the owner's tasks newest-first.
func (s *Task) List(ctx context.Context, ownerID uuid.UUID) ([]model.Task, error) {
	tasks, err := s.taskStore.GetByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("Task service: failed to list tasks",
			"owner_id", ownerID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to get tasks by owner: %w", err)
	}

	return tasks, nil
}

// UpdateStatus moves a task to a new status. The status is checked
// before any storage access; a task owned by someone else surfaces as
// model.ErrNotFound.
func (s *Task) UpdateStatus(ctx context.Context, ownerID uuid.UUID, taskID int64, status model.TaskStatus) (model.Task, error) {
	if !status.Valid() {
		return model.Task{}, model.NewValidationError("invalid status")
	}

	task, err := s.taskStore.UpdateStatus(ctx, taskID, ownerID, status)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Task{}, model.ErrNotFound
		}
		s.logger.Error("Task service: failed to update task status",
			"owner_id", ownerID,
			"task_id", taskID,
			"error", err.Error())
		return model.Task{}, fmt.Errorf("failed to update task status: %w", err)
	}

	s.logger.Info("Task service: task status updated",
		"owner_id", ownerID,
		"task_id", taskID,
		"status", status)

	return task, nil
}
