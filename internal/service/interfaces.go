package service

import (
	"context"

	"github.com/ekovalyov/taskward/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService covers the account lifecycle: registration, login, the
// password-reset flow, and JWT token issuance and validation.
type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)

	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, otp, newPassword string) error

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TaskService covers task CRUD scoped to the owning user.
type TaskService interface {
	CreateTask(ctx context.Context, userID, title, description string) (models.Task, error)
	GetTask(ctx context.Context, taskID, userID string) (models.Task, error)
	ListTasks(ctx context.Context, userID string) ([]models.Task, error)
	UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error)
	DeleteTask(ctx context.Context, taskID, userID string) error
}
