package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so that login failures are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidOrExpiredOTP is returned when the account has no pending
	// reset code at all.
	ErrInvalidOrExpiredOTP = errors.New("invalid or expired OTP")
	ErrOTPExpired          = errors.New("OTP has expired")
	ErrInvalidOTP          = errors.New("invalid OTP")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrMailDeliveryFailed = errors.New("mail delivery failed")

	ErrHashingPassword = errors.New("error hashing password")
)
