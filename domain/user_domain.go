package domain

import (
	"errors"
)

var (
	MessageSuccessRegister        = "user registered successfully"
	MessageSuccessLogin           = "login successful"
	MessageSuccessVerifyEmail     = "email verified successfully"
	MessageSuccessSendVerifyEmail = "verification email sent successfully"
	MessageSuccessGetMe           = "user profile retrieved successfully"

	MessageFailedRegister        = "failed to register user"
	MessageFailedLogin           = "failed to login"
	MessageFailedVerifyEmail     = "failed to verify email"
	MessageFailedSendVerifyEmail = "failed to send verification email"
	MessageFailedGetMe           = "failed to retrieve user profile"

	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrEmailNotVerified    = errors.New("email not verified")
	ErrHashPasswordFailed  = errors.New("failed to hash password")
	ErrInsufficientCredits = errors.New("insufficient analysis credits")
)

// Credits granted on registration and debited per AI call.
const (
	StartingAnalysisCredits = 25
	CostPhotoAnalysis       = 5
	CostRoomChecklist       = 2
)

type (
	RegisterRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Name     string `json:"name" validate:"required"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	SendVerifyEmailRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	MeResponse struct {
		ID              string `json:"id"`
		Email           string `json:"email"`
		Name            string `json:"name"`
		Role            string `json:"role"`
		IsVerified      bool   `json:"is_verified"`
		AnalysisCredits int    `json:"analysis_credits"`
	}
)
