package auth

import (
	"context"

	"github.com/anishchandragiri369/studio-sub000/internal/config"
	"github.com/anishchandragiri369/studio-sub000/internal/types"
)

type AuthRequest struct {
	Email    string
	Password string
}

type AuthResponse struct {
	ProviderToken string
	AuthToken     string
	UserID        string
}

// Claims are the validated identity claims extracted from an access token
type Claims struct {
	UserID string
	Email  string
}

// Provider abstracts the hosted auth backend
type Provider interface {
	GetProvider() types.AuthProvider
	SignUp(ctx context.Context, req AuthRequest) (*AuthResponse, error)
	Login(ctx context.Context, req AuthRequest) (*AuthResponse, error)
	ValidateToken(ctx context.Context, token string) (*Claims, error)
}

func NewProvider(cfg *config.Configuration) Provider {
	return NewSupabaseAuth(cfg)
}
