package dto

import (
	ierr "github.com/anishchandragiri369/studio-sub000/internal/errors"
)

type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *SignUpRequest) Validate() error {
	if len(r.Password) < 8 {
		return ierr.NewError("password too short").
			WithHint("Password must be at least 8 characters").
			Mark(ierr.ErrValidation)
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}
