package service

import (
	"github.com/ekovalyov/taskward/internal/config"
	"github.com/ekovalyov/taskward/internal/logger"
	"github.com/ekovalyov/taskward/internal/mailer"
	"github.com/ekovalyov/taskward/internal/store"
)

type Services struct {
	AuthService AuthService
	TaskService TaskService
}

func NewServices(storages *store.Storages, mail mailer.Mailer, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, mail, cfg.App, logger),
		TaskService: NewTaskService(storages.TaskRepository, logger),
	}
}
