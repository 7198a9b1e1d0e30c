package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/ekovalyov/taskward/internal/config"
	"github.com/ekovalyov/taskward/internal/logger"
	"github.com/ekovalyov/taskward/internal/mock"
	"github.com/ekovalyov/taskward/internal/store"
	"github.com/ekovalyov/taskward/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository, *mock.MockMailer) {
	t.Helper()
	mockRepo := mock.NewMockUserRepository(ctrl)
	mockMailer := mock.NewMockMailer(ctrl)

	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "taskward",
		TokenDuration: time.Hour,
		OTPDuration:   10 * time.Minute,
	}

	svc := NewAuthService(mockRepo, mockMailer, cfg, logger.Nop()).(*authService)

	return svc, mockRepo, mockMailer
}

func mustBcrypt(t *testing.T, value string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(value), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ── Signup ───────────────────────────────────────────────────────────────────

func TestAuthService_Signup_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.NotEmpty(t, u.UserID)
			assert.Equal(t, "John", u.Name)
			assert.Equal(t, "John@Example.com", u.Email, "email must be stored as provided")
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret")))
			return u, nil
		},
	)

	user, err := svc.Signup(ctx, "John", "John@Example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "John", user.Name)
}

func TestAuthService_Signup_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"empty name", "", "john@example.com", "secret"},
		{"empty email", "John", "", "secret"},
		{"empty password", "John", "john@example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Signup(ctx, tt.userName, tt.email, tt.password)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_Signup_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Signup(ctx, "John", "john@example.com", "secret")
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{
		UserID:       "user-1",
		Name:         "John",
		Email:        "john@example.com",
		PasswordHash: mustBcrypt(t, "secret"),
	}

	mockRepo.EXPECT().FindUserByEmail(ctx, "john@example.com").Return(stored, nil)

	user, err := svc.Login(ctx, "john@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.UserID)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordIndistinguishable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByEmail(ctx, "missing@example.com").Return(models.User{}, store.ErrUserNotFound)
	_, errUnknown := svc.Login(ctx, "missing@example.com", "secret")

	stored := models.User{UserID: "user-1", PasswordHash: mustBcrypt(t, "secret")}
	mockRepo.EXPECT().FindUserByEmail(ctx, "john@example.com").Return(stored, nil)
	_, errWrongPassword := svc.Login(ctx, "john@example.com", "not-the-password")

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPassword.Error())
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByEmail(ctx, "john@example.com").Return(models.User{}, errors.New("db down"))

	_, err := svc.Login(ctx, "john@example.com", "secret")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ── ForgotPassword ───────────────────────────────────────────────────────────

func TestAuthService_ForgotPassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockMailer := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{
		UserID:       "user-1",
		Email:        "john@example.com",
		PasswordHash: mustBcrypt(t, "secret"),
	}

	var savedUser models.User
	var sentOTP string

	gomock.InOrder(
		// Lookup must lowercase the submitted email.
		mockRepo.EXPECT().FindUserByEmail(ctx, "john@example.com").Return(stored, nil),
		mockRepo.EXPECT().SaveUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) error {
				savedUser = u
				return nil
			},
		),
		mockMailer.EXPECT().SendOTP(ctx, "john@example.com", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, otp string) error {
				sentOTP = otp
				return nil
			},
		),
	)

	err := svc.ForgotPassword(ctx, "John@Example.COM")
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^\d{4}$`), sentOTP)

	require.NotNil(t, savedUser.OTPHash)
	require.NotNil(t, savedUser.OTPExpiresAt)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*savedUser.OTPHash), []byte(sentOTP)),
		"stored hash must match the emailed code")
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), *savedUser.OTPExpiresAt, 5*time.Second)
}

func TestAuthService_ForgotPassword_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByEmail(ctx, "missing@example.com").Return(models.User{}, store.ErrUserNotFound)

	err := svc.ForgotPassword(ctx, "missing@example.com")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestAuthService_ForgotPassword_MailDeliveryFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockMailer := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{UserID: "user-1", Email: "john@example.com"}

	mockRepo.EXPECT().FindUserByEmail(ctx, "john@example.com").Return(stored, nil)
	mockRepo.EXPECT().SaveUser(ctx, gomock.Any()).Return(nil)
	mockMailer.EXPECT().SendOTP(ctx, "john@example.com", gomock.Any()).Return(errors.New("provider down"))

	err := svc.ForgotPassword(ctx, "john@example.com")
	assert.ErrorIs(t, err, ErrMailDeliveryFailed)
}

// ── ResetPassword ────────────────────────────────────────────────────────────

func TestAuthService_ResetPassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	otpHash := mustBcrypt(t, "1234")
	expiresAt := time.Now().Add(5 * time.Minute)
	stored := models.User{
		UserID:       "user-1",
		Email:        "john@example.com",
		PasswordHash: mustBcrypt(t, "old-password"),
		OTPHash:      &otpHash,
		OTPExpiresAt: &expiresAt,
	}

	var savedUser models.User

	gomock.InOrder(
		mockRepo.EXPECT().FindUserByEmail(ctx, "john@example.com").Return(stored, nil),
		mockRepo.EXPECT().SaveUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) error {
				savedUser = u
				return nil
			},
		),
	)

	err := svc.ResetPassword(ctx, "John@Example.com", "1234", "new-password")
	require.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(savedUser.PasswordHash), []byte("new-password")))
	assert.Nil(t, savedUser.OTPHash, "code must be consumed")
	assert.Nil(t, savedUser.OTPExpiresAt, "code expiry must be cleared")
}

func TestAuthService_ResetPassword_NoPendingCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{UserID: "user-1", Email: "john@example.com"}

	mockRepo.EXPECT().FindUserByEmail(ctx, "john@example.com").Return(stored, nil)

	err := svc.ResetPassword(ctx, "john@example.com", "1234", "new-password")
	assert.ErrorIs(t, err, ErrInvalidOrExpiredOTP)
}

func TestAuthService_ResetPassword_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByEmail(ctx, "missing@example.com").Return(models.User{}, store.ErrUserNotFound)

	err := svc.ResetPassword(ctx, "missing@example.com", "1234", "new-password")
	assert.ErrorIs(t, err, ErrInvalidOrExpiredOTP)
}

func TestAuthService_ResetPassword_ExpiredCodeIsCleared(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	otpHash := mustBcrypt(t, "1234")
	expiresAt := time.Now().Add(-time.Minute)
	stored := models.User{
		UserID:       "user-1",
		Email:        "john@example.com",
		OTPHash:      &otpHash,
		OTPExpiresAt: &expiresAt,
	}

	var savedUser models.User

	gomock.InOrder(
		mockRepo.EXPECT().FindUserByEmail(ctx, "john@example.com").Return(stored, nil),
		mockRepo.EXPECT().SaveUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) error {
				savedUser = u
				return nil
			},
		),
	)

	err := svc.ResetPassword(ctx, "john@example.com", "1234", "new-password")
	assert.ErrorIs(t, err, ErrOTPExpired)
	assert.Nil(t, savedUser.OTPHash, "expired code must be cleared on first use")
}

func TestAuthService_ResetPassword_WrongCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	otpHash := mustBcrypt(t, "1234")
	expiresAt := time.Now().Add(5 * time.Minute)
	stored := models.User{
		UserID:       "user-1",
		Email:        "john@example.com",
		OTPHash:      &otpHash,
		OTPExpiresAt: &expiresAt,
	}

	mockRepo.EXPECT().FindUserByEmail(ctx, "john@example.com").Return(stored, nil)

	err := svc.ResetPassword(ctx, "john@example.com", "9999", "new-password")
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_CreateAndParseToken_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: "user-1"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", parsed.UserID)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.ParseToken(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
