package auth

import (
	"context"

	"github.com/hirestream/hirestream/internal/config"
	"github.com/hirestream/hirestream/internal/domain/auth"
	"github.com/hirestream/hirestream/internal/types"
)

type AuthRequest struct {
	UserID   string
	TenantID string
	Email    string
	Password string
}

type AuthResponse struct {
	ProviderToken string
	AuthToken     string
	ID            string
}

type Provider interface {
	GetProvider() types.AuthProvider
	SignUp(ctx context.Context, req AuthRequest) (*AuthResponse, error)
	Login(ctx context.Context, req AuthRequest, userAuthInfo *auth.Auth) (*AuthResponse, error)
	ValidateToken(ctx context.Context, token string) (*auth.Claims, error)
}

func NewProvider(cfg *config.Configuration) Provider {
	switch cfg.Auth.Provider {
	default:
		return NewHirestreamAuth(cfg)
	}
}
