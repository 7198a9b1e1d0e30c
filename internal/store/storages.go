package store

import (
	"context"
	"fmt"

	"github.com/ekovalyov/taskward/internal/config"
	"github.com/ekovalyov/taskward/internal/logger"
	"github.com/ekovalyov/taskward/migrations"
)

// Storages aggregates every repository backed by the shared database
// connection. It is created once at startup and injected into the service
// layer.
type Storages struct {
	UserRepository UserRepository
	TaskRepository TaskRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations, and
// constructs all repositories over the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		TaskRepository: NewTaskRepository(db, log),
		db:             db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
