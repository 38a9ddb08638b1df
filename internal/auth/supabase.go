package auth

import (
	"context"

	"github.com/anishchandragiri369/studio-sub000/internal/config"
	ierr "github.com/anishchandragiri369/studio-sub000/internal/errors"
	"github.com/anishchandragiri369/studio-sub000/internal/logger"
	"github.com/anishchandragiri369/studio-sub000/internal/types"
	"github.com/golang-jwt/jwt/v4"
	supabase "github.com/nedpals/supabase-go"
)

type supabaseAuth struct {
	authConfig config.AuthConfig
	client     *supabase.Client
}

func NewSupabaseAuth(cfg *config.Configuration) Provider {
	client := supabase.CreateClient(cfg.Auth.Supabase.BaseURL, cfg.Auth.Supabase.ServiceKey)
	if client == nil {
		logger.L.Fatalf("failed to create Supabase client")
	}

	return &supabaseAuth{
		authConfig: cfg.Auth,
		client:     client,
	}
}

func (s *supabaseAuth) GetProvider() types.AuthProvider {
	return types.AuthProviderSupabase
}

func (s *supabaseAuth) SignUp(ctx context.Context, req AuthRequest) (*AuthResponse, error) {
	_, err := s.client.Auth.SignUp(ctx, supabase.UserCredentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to sign up").
			Mark(ierr.ErrInvalidOperation)
	}

	return s.Login(ctx, req)
}

func (s *supabaseAuth) Login(ctx context.Context, req AuthRequest) (*AuthResponse, error) {
	user, err := s.client.Auth.SignIn(ctx, supabase.UserCredentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid email or password").
			Mark(ierr.ErrPermissionDenied)
	}

	return &AuthResponse{
		ProviderToken: user.AccessToken,
		AuthToken:     user.AccessToken,
		UserID:        user.User.ID,
	}, nil
}

// ValidateToken verifies the Supabase access token locally against the
// project JWT secret when one is configured, otherwise it falls back to
// asking Supabase for the user behind the token.
func (s *supabaseAuth) ValidateToken(ctx context.Context, token string) (*Claims, error) {
	if s.authConfig.Secret == "" {
		user, err := s.client.Auth.User(ctx, token)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("Invalid or expired token").
				Mark(ierr.ErrPermissionDenied)
		}
		return &Claims{UserID: user.ID, Email: user.Email}, nil
	}

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ierr.NewError("unexpected signing method").
				WithReportableDetails(map[string]any{
					"alg": token.Header["alg"],
				}).
				Mark(ierr.ErrPermissionDenied)
		}
		return []byte(s.authConfig.Secret), nil
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid or expired token").
			Mark(ierr.ErrPermissionDenied)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, ierr.NewError("invalid token claims").
			WithHint("Invalid or expired token").
			Mark(ierr.ErrPermissionDenied)
	}

	userID, ok := claims["sub"].(string)
	if !ok {
		return nil, ierr.NewError("token missing user ID").
			WithHint("Invalid or expired token").
			Mark(ierr.ErrPermissionDenied)
	}

	email, _ := claims["email"].(string)
	return &Claims{UserID: userID, Email: email}, nil
}
