// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Egor Kovalyov

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ekovalyov/taskward/internal/logger"
	"github.com/ekovalyov/taskward/internal/service"
	"github.com/ekovalyov/taskward/internal/store"
	"github.com/ekovalyov/taskward/internal/utils"
	"github.com/ekovalyov/taskward/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	_, err := h.services.AuthService.Signup(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSONMessage(w, "All fields are required", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			utils.WriteJSONMessage(w, "User already exists", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSONMessage(w, "Server error", http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSONMessage(w, "User registered successfully", http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSONMessage(w, "Email and password are required", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("no user was found/wrong password")
			utils.WriteJSONMessage(w, "Invalid email or password", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSONMessage(w, "Server error", http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("user_id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSONMessage(w, "Server error", http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, models.LoginResponse{
		Message: "Login successful",
		Token:   token.SignedString,
		User: models.UserResponse{
			ID:    foundUser.UserID,
			Name:  foundUser.Name,
			Email: foundUser.Email,
		},
	}, http.StatusOK)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ForgotPassword(ctx, req.Email); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSONMessage(w, "Email is required", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Msg("no user was found")
			utils.WriteJSONMessage(w, "User not found", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during password reset request")
			utils.WriteJSONMessage(w, "Server error", http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSONMessage(w, "OTP sent to email", http.StatusOK)
}

func (h *Handler) verifyOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ResetPassword(ctx, req.Email, req.OTP, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSONMessage(w, "All fields are required", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidOrExpiredOTP):
			log.Err(err).Msg("no pending one-time code")
			utils.WriteJSONMessage(w, "Invalid or expired OTP", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrOTPExpired):
			log.Err(err).Msg("one-time code expired")
			utils.WriteJSONMessage(w, "OTP has expired", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidOTP):
			log.Err(err).Msg("wrong one-time code")
			utils.WriteJSONMessage(w, "Invalid OTP", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during password reset")
			utils.WriteJSONMessage(w, "Server error", http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSONMessage(w, "Password reset successful", http.StatusOK)
}

// protected echoes the identity resolved from the bearer token. It exists so
// that clients can cheaply check whether a stored token is still accepted.
func (h *Handler) protected(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSONMessage(w, "Server error", http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, models.IdentityResponse{
		Message: "You have access to this protected route",
		User:    models.TokenIdentity{ID: userID},
	}, http.StatusOK)
}
