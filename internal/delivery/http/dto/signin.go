package dto

import (
	"strings"
	"unicode/utf8"

	"movies/internal/domain/signin"
)

type ValidateCredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateSignInFormRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type ValidationResponse struct {
	EmailValid    bool `json:"email_valid"`
	PasswordValid bool `json:"password_valid"`
	Valid         bool `json:"valid"`
}

// SignInFormResponse renders the password obscured unless the user has
// toggled it visible.
type SignInFormResponse struct {
	Email           string             `json:"email"`
	Password        string             `json:"password"`
	PasswordVisible bool               `json:"password_visible"`
	Validation      ValidationResponse `json:"validation"`
}

const passwordMask = "•"

func NewValidationResponse(r signin.ValidationResult) ValidationResponse {
	return ValidationResponse{EmailValid: r.EmailValid, PasswordValid: r.PasswordValid, Valid: r.Valid()}
}

func NewSignInFormResponse(f signin.Form) SignInFormResponse {
	pw := f.Password
	if !f.PasswordVisible {
		pw = strings.Repeat(passwordMask, utf8.RuneCountInString(f.Password))
	}
	return SignInFormResponse{
		Email:           f.Email,
		Password:        pw,
		PasswordVisible: f.PasswordVisible,
		Validation:      NewValidationResponse(f.Validate()),
	}
}
