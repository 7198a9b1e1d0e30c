// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Egor Kovalyov

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ekovalyov/taskward/internal/config"
	"github.com/ekovalyov/taskward/internal/logger"
	"github.com/ekovalyov/taskward/internal/mailer"
	"github.com/ekovalyov/taskward/internal/store"
	"github.com/ekovalyov/taskward/internal/utils"
	"github.com/ekovalyov/taskward/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, the OTP-based
// password-reset flow, and JWT token lifecycle. Passwords and reset codes
// are stored as bcrypt hashes; tokens are HMAC-SHA256 signed JWTs.
type authService struct {
	// userRepository is the data-access layer used to create, look up, and
	// mutate user accounts.
	userRepository store.UserRepository

	// mailer delivers the password-reset code to the account's email address.
	mailer mailer.Mailer

	// uuid produces identifiers for newly registered accounts.
	uuid *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// otpDuration controls how long an emailed reset code stays usable.
	otpDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and mailer, populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, mail mailer.Mailer, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		mailer:         mail,
		uuid:           utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		otpDuration:    cfg.OTPDuration,
		logger:         logger,
	}
}

// Signup creates a new user account.
//
// It validates that name, email and password are all non-empty, hashes the
// password with bcrypt, and delegates persistence to the UserRepository. The
// email is stored exactly as provided; no case normalisation happens here.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if any field is empty.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is already taken.
func (a *authService) Signup(ctx context.Context, name, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if name == "" || email == "" || password == "" {
		log.Error().Str("func", "*authService.Signup").Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	user := models.User{
		UserID:       a.uuid.Generate(),
		Name:         name,
		Email:        email,
		PasswordHash: string(passwordHash),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user by email and password.
//
// An unknown email and a wrong password both produce ErrInvalidCredentials,
// so a caller cannot probe which accounts exist. The email is matched exactly
// as stored, mirroring Signup.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("func", "*authService.Login").Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("func", "*authService.Login").Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Error().
			Str("func", "*authService.Login").
			Str("user_id", foundUser.UserID).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// ForgotPassword starts the password-reset flow for the given email.
//
// The lookup lowercases the email first. A fresh 4-digit code is generated,
// stored bcrypt-hashed together with its expiry, and emailed to the account
// address. Any previously issued code is overwritten.
//
// Returns:
//   - ErrInvalidDataProvided if email is empty.
//   - store.ErrUserNotFound (wrapped) if no account matches.
//   - ErrMailDeliveryFailed if the provider rejects the message.
func (a *authService) ForgotPassword(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if email == "" {
		log.Error().Str("func", "*authService.ForgotPassword").Msg("invalid user data provided")
		return ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		log.Err(err).Str("func", "*authService.ForgotPassword").Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		log.Err(err).Str("func", "*authService.ForgotPassword").Msg("one-time code generation failed")
		return fmt.Errorf("one-time code generation failed: %w", err)
	}

	otpHash, err := bcrypt.GenerateFromPassword([]byte(otp), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.ForgotPassword").Msg("one-time code hashing failed")
		return fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	hash := string(otpHash)
	expiresAt := time.Now().Add(a.otpDuration)
	user.OTPHash = &hash
	user.OTPExpiresAt = &expiresAt

	if err = a.userRepository.SaveUser(ctx, user); err != nil {
		log.Err(err).Str("func", "*authService.ForgotPassword").Str("user_id", user.UserID).Msg("saving one-time code failed")
		return fmt.Errorf("saving one-time code failed: %w", err)
	}

	if err = a.mailer.SendOTP(ctx, user.Email, otp); err != nil {
		log.Err(err).Str("func", "*authService.ForgotPassword").Str("user_id", user.UserID).Msg("sending one-time code failed")
		return fmt.Errorf("%w: %w", ErrMailDeliveryFailed, err)
	}

	return nil
}

// ResetPassword completes the password-reset flow.
//
// The lookup lowercases the email, mirroring ForgotPassword. The stored code
// is checked in three steps with distinct failures:
//   - ErrInvalidOrExpiredOTP when the account has no pending code (or the
//     account does not exist).
//   - ErrOTPExpired when the code exists but its lifetime has passed; the
//     stale code is cleared from the account before returning.
//   - ErrInvalidOTP when the submitted code does not match the stored hash.
//
// On success the password hash is replaced and the code is consumed: both
// OTP columns are cleared in the same write. Previously issued tokens are
// not revoked.
func (a *authService) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	log := logger.FromContext(ctx)

	if email == "" || otp == "" || newPassword == "" {
		log.Error().Str("func", "*authService.ResetPassword").Msg("invalid user data provided")
		return ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrInvalidOrExpiredOTP
		}

		log.Err(err).Str("func", "*authService.ResetPassword").Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	if user.OTPHash == nil || user.OTPExpiresAt == nil {
		return ErrInvalidOrExpiredOTP
	}

	if time.Now().After(*user.OTPExpiresAt) {
		// Lazy invalidation: the expired code is cleared on first use.
		user.OTPHash = nil
		user.OTPExpiresAt = nil
		if saveErr := a.userRepository.SaveUser(ctx, user); saveErr != nil {
			log.Err(saveErr).Str("func", "*authService.ResetPassword").Str("user_id", user.UserID).Msg("clearing expired one-time code failed")
		}

		return ErrOTPExpired
	}

	if err = bcrypt.CompareHashAndPassword([]byte(*user.OTPHash), []byte(otp)); err != nil {
		log.Error().Str("func", "*authService.ResetPassword").Str("user_id", user.UserID).Msg("wrong one-time code")
		return ErrInvalidOTP
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.ResetPassword").Msg("password hashing failed")
		return fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	user.PasswordHash = string(passwordHash)
	user.OTPHash = nil
	user.OTPExpiresAt = nil

	if err = a.userRepository.SaveUser(ctx, user); err != nil {
		log.Err(err).Str("func", "*authService.ResetPassword").Str("user_id", user.UserID).Msg("saving new password failed")
		return fmt.Errorf("saving new password failed: %w", err)
	}

	return nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed, bad signature)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
