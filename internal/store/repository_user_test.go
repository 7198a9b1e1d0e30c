package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ekovalyov/taskward/internal/logger"
	"github.com/ekovalyov/taskward/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows(user models.User, createdAt time.Time) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"user_id", "name", "email", "password_hash", "otp_hash", "otp_expires_at", "created_at"}).
		AddRow(user.UserID, user.Name, user.Email, user.PasswordHash, nil, nil, createdAt)
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		UserID:       "user-1",
		Name:         "John",
		Email:        "john@example.com",
		PasswordHash: "$2a$10$hash",
	}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.UserID, user.Name, user.Email, user.PasswordHash).
		WillReturnRows(userRows(user, time.Now()))

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != "user-1" {
		t.Errorf("expected UserID=user-1, got %s", created.UserID)
	}
	if created.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, created.Email)
	}
	if created.OTPHash != nil || created.OTPExpiresAt != nil {
		t.Error("expected OTP fields to be absent on a fresh user")
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{UserID: "user-1", Email: "john@example.com"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{UserID: "user-1", Email: "john@example.com"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, user)
	if err == nil || !strings.Contains(err.Error(), "db network error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{UserID: "user-1", Email: "john@example.com"}

	rows := sqlmock.
		NewRows([]string{"user_id"}). // intentionally wrong shape → scan error
		AddRow("user-1")

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(rows)

	_, err := repo.CreateUser(ctx, user)
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	otpHash := "$2a$10$otp"
	otpExpiresAt := now.Add(10 * time.Minute)

	rows := sqlmock.
		NewRows([]string{"user_id", "name", "email", "password_hash", "otp_hash", "otp_expires_at", "created_at"}).
		AddRow("user-1", "John", "john@example.com", "$2a$10$hash", otpHash, otpExpiresAt, now)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("john@example.com").
		WillReturnRows(rows)

	found, err := repo.FindUserByEmail(ctx, "john@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != "user-1" {
		t.Errorf("expected UserID=user-1, got %s", found.UserID)
	}
	if found.OTPHash == nil || *found.OTPHash != otpHash {
		t.Errorf("expected otp hash %q, got %v", otpHash, found.OTPHash)
	}
	if found.OTPExpiresAt == nil {
		t.Error("expected otp expiry to be present")
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("missing@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(ctx, "missing@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSaveUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	otpHash := "$2a$10$otp"
	otpExpiresAt := time.Now().Add(10 * time.Minute)
	user := models.User{
		UserID:       "user-1",
		PasswordHash: "$2a$10$hash",
		OTPHash:      &otpHash,
		OTPExpiresAt: &otpExpiresAt,
	}

	mock.ExpectExec("UPDATE users").
		WithArgs(user.UserID, user.PasswordHash, user.OTPHash, user.OTPExpiresAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SaveUser(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSaveUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{UserID: "missing", PasswordHash: "$2a$10$hash"}

	mock.ExpectExec("UPDATE users").
		WithArgs(user.UserID, user.PasswordHash, user.OTPHash, user.OTPExpiresAt).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SaveUser(ctx, user)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSaveUser_StatementError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{UserID: "user-1", PasswordHash: "$2a$10$hash"}

	mock.ExpectExec("UPDATE users").
		WillReturnError(errors.New("db network error"))

	err := repo.SaveUser(ctx, user)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}
