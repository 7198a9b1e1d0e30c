package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/ekovalyov/taskward/models"
)

// UserRepository is the persistence contract of the credential store.
//
// All operations are atomic per-record; no cross-record transactions are
// required. Concurrent signups racing on the same email are resolved by the
// database uniqueness constraint, surfaced as [ErrEmailAlreadyExists].
type UserRepository interface {
	// CreateUser persists a new user and returns the stored record.
	// Returns ErrEmailAlreadyExists if the email is already taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks up a user by the exact email value given.
	// Returns ErrUserNotFound when no record matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// SaveUser persists mutations of an existing user record: the password
	// hash and both OTP fields. Returns ErrUserNotFound when the record
	// does not exist.
	SaveUser(ctx context.Context, user models.User) error
}

// TaskRepository is the persistence contract for task records.
type TaskRepository interface {
	// CreateTask persists a new task and returns the stored record.
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)

	// GetTaskByID retrieves a single task regardless of owner.
	// Returns ErrTaskNotFound when no record matches.
	GetTaskByID(ctx context.Context, taskID string) (models.Task, error)

	// GetUserTasks retrieves every task owned by the given user.
	GetUserTasks(ctx context.Context, userID string) ([]models.Task, error)

	// UpdateTask applies a partial update and returns the updated record.
	// Only non-nil fields of the update are written. Returns
	// ErrTaskNotFound when no record matches the id/owner pair.
	UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error)

	// DeleteTask removes a task by id and owner. Returns ErrTaskNotFound
	// when no record matches.
	DeleteTask(ctx context.Context, taskID, userID string) error
}
