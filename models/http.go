package models

// SignupRequest is the JSON body of POST /api/auth/signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest is the JSON body of POST /api/auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// VerifyOTPRequest is the JSON body of POST /api/auth/verify-otp.
type VerifyOTPRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

// CreateTaskRequest is the JSON body of POST /api/tasks.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateTaskRequest is the JSON body of PUT /api/tasks/{id}.
// Absent fields are left unchanged.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// MessageResponse is the uniform JSON envelope for responses that carry
// nothing but a human-readable message. Error responses of every status
// code use this shape as well, so a caller cannot tell failure reasons
// apart beyond the status code and message text.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse is the public projection of a user account. The password
// hash and OTP fields are never part of it.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse is the JSON body returned by a successful login.
type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// TokenIdentity is the identity carried by a verified bearer token.
// Only the user id is embedded in the token, so only the id is echoed.
type TokenIdentity struct {
	ID string `json:"id"`
}

// IdentityResponse is the JSON body returned by GET /api/auth/protected.
// It echoes the identity resolved from the bearer token.
type IdentityResponse struct {
	Message string        `json:"message"`
	User    TokenIdentity `json:"user"`
}
