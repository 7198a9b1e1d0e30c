package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/ekovalyov/taskward/models"
)

const (
	createUser = `INSERT INTO users (user_id, name, email, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, name, email, password_hash, otp_hash, otp_expires_at, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, otp_hash, otp_expires_at, created_at
    FROM users
    WHERE email = $1;`

	saveUser = `UPDATE users
    SET password_hash = $2, otp_hash = $3, otp_expires_at = $4
    WHERE user_id = $1;`

	createTask = `INSERT INTO tasks (task_id, user_id, title, description)
    VALUES ($1, $2, $3, $4)
    RETURNING task_id, user_id, title, description, created_at, updated_at;`

	getTaskByID = `SELECT task_id, user_id, title, description, created_at, updated_at
    FROM tasks
    WHERE task_id = $1;`

	deleteTask = `DELETE FROM tasks
    WHERE task_id = $1 AND user_id = $2;`
)

// psql is the statement builder configured for PostgreSQL ($N placeholders).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListTasksQuery builds the SELECT returning every task of one user,
// oldest first.
func buildListTasksQuery(userID string) (string, []any, error) {
	query, args, err := psql.
		Select("task_id", "user_id", "title", "description", "created_at", "updated_at").
		From("tasks").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return "", nil, err
	}

	return query, args, nil
}

// buildUpdateTaskQuery builds a partial UPDATE for a single task. Only
// non-nil fields of update become part of the SET clause; updated_at is
// always refreshed. The WHERE clause pins both the task id and the owner so
// a foreign task can never be touched.
func buildUpdateTaskQuery(update models.TaskUpdate) (string, []any, error) {
	builder := psql.
		Update("tasks").
		Set("updated_at", sq.Expr("NOW()"))

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}

	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}

	query, args, err := builder.
		Where(sq.Eq{"task_id": update.TaskID, "user_id": update.UserID}).
		Suffix("RETURNING task_id, user_id, title, description, created_at, updated_at").
		ToSql()
	if err != nil {
		return "", nil, err
	}

	return query, args, nil
}
