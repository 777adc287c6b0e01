package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TaskStore defines persistence operations for tasks.
type TaskStore interface {
	Create(ctx context.Context, task Task) (Task, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]Task, error)
	UpdateStatus(ctx context.Context, id int64, ownerID uuid.UUID, status TaskStatus) (Task, error)
}

// Task represents a stored task entity scoped to its owner.
type Task struct {
	ID        int64
	OwnerID   uuid.UUID
	Title     string
	Status    TaskStatus
	CreatedAt time.Time
}

// TaskStatus enumerates task lifecycle states.
type TaskStatus string

const (
	// TaskStatusTodo is the initial state of every task.
	TaskStatusTodo TaskStatus = "todo"
	// TaskStatusInProgress marks a task being worked on.
	TaskStatusInProgress TaskStatus = "in_progress"
	// TaskStatusDone marks a completed task.
	TaskStatusDone TaskStatus = "done"
)

// Valid reports whether the status is one of the known values.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}
