package service

import (
	"context"

	"github.com/hirestream/hirestream/internal/api/dto"
	authProvider "github.com/hirestream/hirestream/internal/auth"
	"github.com/hirestream/hirestream/internal/domain/auth"
	"github.com/hirestream/hirestream/internal/domain/user"
	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/types"
)

type AuthService interface {
	SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	ServiceParams
	authProvider authProvider.Provider
}

func NewAuthService(params ServiceParams) AuthService {
	return &authService{
		ServiceParams: params,
		authProvider:  authProvider.NewProvider(params.Config),
	}
}

// SignUp creates a new staff user with a fresh tenant and returns an auth token
func (s *authService) SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existingUser, _ := s.UserRepo.GetByEmail(ctx, req.Email)
	if existingUser != nil {
		return nil, ierr.NewError("user already exists").
			WithHint("An account with this email already exists").
			WithReportableDetails(map[string]interface{}{
				"email": req.Email,
			}).
			Mark(ierr.ErrAlreadyExists)
	}

	tenantID := types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TENANT)

	authResponse, err := s.authProvider.SignUp(ctx, authProvider.AuthRequest{
		Email:    req.Email,
		Password: req.Password,
		TenantID: tenantID,
	})
	if err != nil {
		return nil, err
	}

	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		u := user.NewUser(req.Email, tenantID)
		u.ID = authResponse.ID
		if err := s.UserRepo.Create(ctx, u); err != nil {
			return err
		}

		a := auth.NewAuth(authResponse.ID, s.authProvider.GetProvider(), authResponse.ProviderToken)
		if err := s.AuthRepo.CreateAuth(ctx, a); err != nil {
			return ierr.WithError(err).
				WithHint("Failed to create authentication record").
				Mark(ierr.ErrDatabase)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token:    authResponse.AuthToken,
		UserID:   authResponse.ID,
		TenantID: tenantID,
	}, nil
}

// Login authenticates a staff user and returns an auth token
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.UserRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	a, err := s.AuthRepo.GetAuthByUserID(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	authResponse, err := s.authProvider.Login(ctx, authProvider.AuthRequest{
		UserID:   u.ID,
		TenantID: u.TenantID,
		Email:    u.Email,
		Password: req.Password,
	}, a)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token:    authResponse.AuthToken,
		UserID:   u.ID,
		TenantID: u.TenantID,
	}, nil
}
