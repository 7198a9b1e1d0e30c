package models

import "time"

// User represents an account entity used for authentication and task ownership.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user, assigned at creation.
	UserID string `json:"id"`

	// Name is the display name of the user, set at signup.
	Name string `json:"name"`

	// Email is the unique login key of the account. Stored as given at
	// signup; uniqueness is enforced by the database.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the current password.
	// This value MUST be a hash, never plaintext. It is never exposed
	// via JSON.
	PasswordHash string `json:"-"`

	// OTPHash is the bcrypt hash of the currently outstanding one-time
	// reset code, or nil when no reset is pending. Set together with
	// OTPExpiresAt, cleared together with it.
	OTPHash *string `json:"-"`

	// OTPExpiresAt is the absolute timestamp after which OTPHash is
	// invalid, or nil when no reset is pending. A past value means the
	// code must be treated as invalid even while still stored.
	OTPExpiresAt *time.Time `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
