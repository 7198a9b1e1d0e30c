package config

import "errors"

// Sentinel errors returned by config validation. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNoTokenSignKey is returned when no JWT signing key was provided
	// by any configuration source.
	ErrNoTokenSignKey = errors.New("token sign key is required")

	// ErrNoDatabaseDSN is returned when no database connection string was
	// provided by any configuration source.
	ErrNoDatabaseDSN = errors.New("database DSN is required")

	// ErrNoMailerFrom is returned when a mail provider base URL is
	// configured without an outbound sender address.
	ErrNoMailerFrom = errors.New("mailer sender address is required when mailer base URL is set")
)
