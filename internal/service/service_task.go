// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Egor Kovalyov

package service

import (
	"context"
	"fmt"

	"github.com/ekovalyov/taskward/internal/logger"
	"github.com/ekovalyov/taskward/internal/store"
	"github.com/ekovalyov/taskward/internal/utils"
	"github.com/ekovalyov/taskward/models"
)

// taskService is the concrete implementation of TaskService. Every operation
// is scoped to the owning user: a task that exists but belongs to someone
// else is reported exactly like a task that does not exist.
type taskService struct {
	taskRepository store.TaskRepository
	uuid           *utils.UUIDGenerator
	logger         *logger.Logger
}

// NewTaskService constructs a TaskService backed by the given TaskRepository.
func NewTaskService(taskRepository store.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		uuid:           utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// CreateTask persists a new task for the given user.
//
// Returns ErrInvalidDataProvided if title or description is empty.
func (t *taskService) CreateTask(ctx context.Context, userID, title, description string) (models.Task, error) {
	log := logger.FromContext(ctx)

	if userID == "" || title == "" || description == "" {
		log.Error().Str("func", "*taskService.CreateTask").Msg("invalid task data provided")
		return models.Task{}, ErrInvalidDataProvided
	}

	task := models.Task{
		TaskID:      t.uuid.Generate(),
		UserID:      userID,
		Title:       title,
		Description: description,
	}

	createdTask, err := t.taskRepository.CreateTask(ctx, task)
	if err != nil {
		log.Err(err).Str("func", "*taskService.CreateTask").Str("user_id", userID).Msg("task creation ended with error")
		return models.Task{}, fmt.Errorf("task creation ended with error: %w", err)
	}

	return createdTask, nil
}

// GetTask retrieves a single task owned by userID.
//
// A task owned by another user yields store.ErrTaskNotFound, identical to a
// task that does not exist at all.
func (t *taskService) GetTask(ctx context.Context, taskID, userID string) (models.Task, error) {
	log := logger.FromContext(ctx)

	if taskID == "" || userID == "" {
		log.Error().Str("func", "*taskService.GetTask").Msg("invalid task data provided")
		return models.Task{}, ErrInvalidDataProvided
	}

	task, err := t.taskRepository.GetTaskByID(ctx, taskID)
	if err != nil {
		log.Err(err).Str("func", "*taskService.GetTask").Str("task_id", taskID).Msg("task search ended with error")
		return models.Task{}, fmt.Errorf("task search ended with error: %w", err)
	}

	if task.UserID != userID {
		return models.Task{}, store.ErrTaskNotFound
	}

	return task, nil
}

// ListTasks returns every task owned by userID, oldest first.
func (t *taskService) ListTasks(ctx context.Context, userID string) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		log.Error().Str("func", "*taskService.ListTasks").Msg("invalid task data provided")
		return nil, ErrInvalidDataProvided
	}

	tasks, err := t.taskRepository.GetUserTasks(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*taskService.ListTasks").Str("user_id", userID).Msg("task listing ended with error")
		return nil, fmt.Errorf("task listing ended with error: %w", err)
	}

	return tasks, nil
}

// UpdateTask applies a partial update to a task owned by update.UserID.
// Fields left nil in update are kept as stored. Ownership is enforced by the
// repository's WHERE clause, so a foreign task yields store.ErrTaskNotFound.
func (t *taskService) UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error) {
	log := logger.FromContext(ctx)

	if update.TaskID == "" || update.UserID == "" {
		log.Error().Str("func", "*taskService.UpdateTask").Msg("invalid task data provided")
		return models.Task{}, ErrInvalidDataProvided
	}

	task, err := t.taskRepository.UpdateTask(ctx, update)
	if err != nil {
		log.Err(err).Str("func", "*taskService.UpdateTask").Str("task_id", update.TaskID).Msg("task update ended with error")
		return models.Task{}, fmt.Errorf("task update ended with error: %w", err)
	}

	return task, nil
}

// DeleteTask removes a task owned by userID. A foreign or nonexistent task
// yields store.ErrTaskNotFound.
func (t *taskService) DeleteTask(ctx context.Context, taskID, userID string) error {
	log := logger.FromContext(ctx)

	if taskID == "" || userID == "" {
		log.Error().Str("func", "*taskService.DeleteTask").Msg("invalid task data provided")
		return ErrInvalidDataProvided
	}

	if err := t.taskRepository.DeleteTask(ctx, taskID, userID); err != nil {
		log.Err(err).Str("func", "*taskService.DeleteTask").Str("task_id", taskID).Msg("task deletion ended with error")
		return fmt.Errorf("task deletion ended with error: %w", err)
	}

	return nil
}
