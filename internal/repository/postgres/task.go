package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/taskflow/internal/model"
)

var _ model.TaskStore = (*TaskRepository)(nil)

type TaskRepository struct {
	db DB
}

func NewTaskRepository(db DB) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

func (r *TaskRepository) Create(ctx context.Context, task model.Task) (model.Task, error) {
	query := `INSERT INTO tasks (owner_id, title, status, created_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, owner_id, title, status, created_at`

	var savedTask model.Task
	err := r.db.QueryRow(ctx, query,
		task.OwnerID, task.Title, task.Status, task.CreatedAt,
	).Scan(
		&savedTask.ID, &savedTask.OwnerID, &savedTask.Title, &savedTask.Status, &savedTask.CreatedAt,
	)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return savedTask, nil
}

// GetByOwner returns the owner's tasks newest-first. The descending id
// order is part of the API contract.
func (r *TaskRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Task, error) {
	query := `SELECT id, owner_id, title, status, created_at
			  FROM tasks WHERE owner_id = $1
			  ORDER BY id DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks by owner: %w", err)
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		var task model.Task
		if err := rows.Scan(&task.ID, &task.OwnerID, &task.Title, &task.Status, &task.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}

	return tasks, nil
}

// UpdateStatus updates a task filtered by both id and owner. A task
// owned by someone else is indistinguishable from a missing one.
func (r *TaskRepository) UpdateStatus(ctx context.Context, id int64, ownerID uuid.UUID, status model.TaskStatus) (model.Task, error) {
	query := `UPDATE tasks SET status = $1
			  WHERE id = $2 AND owner_id = $3
			  RETURNING id, owner_id, title, status, created_at`

	var task model.Task
	err := r.db.QueryRow(ctx, query, status, id, ownerID).Scan(
		&task.ID, &task.OwnerID, &task.Title, &task.Status, &task.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Task{}, model.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to update task status: %w", err)
	}

	return task, nil
}
