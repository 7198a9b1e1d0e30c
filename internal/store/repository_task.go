// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Egor Kovalyov

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ekovalyov/taskward/internal/logger"
	"github.com/ekovalyov/taskward/models"
)

// taskRepository is the PostgreSQL-backed implementation of [TaskRepository].
// It executes all task CRUD operations against the "tasks" table using the
// embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (user_id, task_id, etc.).
type taskRepository struct {
	*DB
	logger *logger.Logger
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateTask persists a new task record and returns the fully populated
// [models.Task] with server-assigned fields (CreatedAt, UpdatedAt).
func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createTask, task.TaskID, task.UserID, task.Title, task.Description)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*taskRepository.CreateTask").
			Str("user_id", task.UserID).
			Msg("error: statement failed")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := scanTaskRow(row, &task); err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error: scanning error")
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return task, nil
}

// GetTaskByID retrieves a single task by its identifier, regardless of
// owner. Ownership checks are the service layer's concern so that a missing
// record and a foreign record can be reported identically.
//
// Returns [ErrTaskNotFound] when no row matches.
func (r *taskRepository) GetTaskByID(ctx context.Context, taskID string) (models.Task, error) {
	log := logger.FromContext(ctx)

	var task models.Task
	row := r.DB.QueryRowContext(ctx, getTaskByID, taskID)

	if err := row.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).
			Str("func", "*taskRepository.GetTaskByID").
			Str("task_id", taskID).
			Msg("error: query failed")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := scanTaskRow(row, &task); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).Str("func", "*taskRepository.GetTaskByID").Msg("error: scanning error")
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return task, nil
}

// GetUserTasks retrieves every task owned by the given user, oldest first.
// An empty result set is not an error; an empty slice is returned.
func (r *taskRepository) GetUserTasks(ctx context.Context, userID string) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTasksQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "*taskRepository.GetUserTasks").
			Str("user_id", userID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*taskRepository.GetUserTasks").
			Str("user_id", userID).
			Msg("failed to execute query for getting user tasks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0, 16)

	for rows.Next() {
		var task models.Task

		scanErr := rows.Scan(
			&task.TaskID,
			&task.UserID,
			&task.Title,
			&task.Description,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*taskRepository.GetUserTasks").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tasks, nil
}

// UpdateTask applies a partial update to a single task. The dynamically
// built UPDATE touches only the fields present in update and pins the WHERE
// clause to both task id and owner.
//
// Returns [ErrTaskNotFound] when no row matches the id/owner pair.
func (r *taskRepository) UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTaskQuery(update)
	if err != nil {
		log.Err(err).
			Str("func", "*taskRepository.UpdateTask").
			Str("task_id", update.TaskID).
			Msg("failed to create query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var task models.Task
	row := r.DB.QueryRowContext(ctx, query, args...)

	if err = row.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).
			Str("func", "*taskRepository.UpdateTask").
			Str("task_id", update.TaskID).
			Msg("error: statement failed")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = scanTaskRow(row, &task); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error: scanning error")
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return task, nil
}

// DeleteTask removes a task matching both id and owner.
//
// Returns [ErrTaskNotFound] when no row matches, so deleting a foreign or
// nonexistent task is indistinguishable to the caller.
func (r *taskRepository) DeleteTask(ctx context.Context, taskID, userID string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteTask, taskID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*taskRepository.DeleteTask").
			Str("task_id", taskID).
			Msg("error: statement failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// scanTaskRow scans one tasks-table row into dst.
func scanTaskRow(row *sql.Row, dst *models.Task) error {
	return row.Scan(
		&dst.TaskID,
		&dst.UserID,
		&dst.Title,
		&dst.Description,
		&dst.CreatedAt,
		&dst.UpdatedAt,
	)
}
