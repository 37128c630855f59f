package service

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hirestream/hirestream/internal/api/dto"
	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/testutil"
)

type AuthServiceSuite struct {
	testutil.BaseServiceTestSuite
	service AuthService
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewAuthService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		DB:           s.GetDB(),
		ObjectStore:  s.GetObjectStore(),
		LLM:          s.GetLLM(),
		LinkToken:    s.GetLinkToken(),
		Cache:        s.GetCache(),
		PersonRepo:   s.GetStores().PersonRepo,
		CompanyRepo:  s.GetStores().CompanyRepo,
		DocumentRepo: s.GetStores().DocumentRepo,
		UserRepo:     s.GetStores().UserRepo,
		AuthRepo:     s.GetStores().AuthRepo,
	})
}

func (s *AuthServiceSuite) TestSignUp() {
	resp, err := s.service.SignUp(s.GetContext(), &dto.SignUpRequest{
		Email:    "staff@example.com",
		Password: "correct-horse",
	})
	s.NoError(err)
	s.NotEmpty(resp.Token)
	s.NotEmpty(resp.UserID)
	s.NotEmpty(resp.TenantID)

	u, err := s.GetStores().UserRepo.GetByEmail(s.GetContext(), "staff@example.com")
	s.NoError(err)
	s.Equal(resp.UserID, u.ID)
	s.Equal(resp.TenantID, u.TenantID)

	a, err := s.GetStores().AuthRepo.GetAuthByUserID(s.GetContext(), u.ID)
	s.NoError(err)
	// the stored secret is a bcrypt hash, never the password
	s.NotEmpty(a.Token)
	s.NotEqual("correct-horse", a.Token)
}

func (s *AuthServiceSuite) TestSignUpDuplicateEmail() {
	_, err := s.service.SignUp(s.GetContext(), &dto.SignUpRequest{
		Email:    "staff@example.com",
		Password: "correct-horse",
	})
	s.NoError(err)

	_, err = s.service.SignUp(s.GetContext(), &dto.SignUpRequest{
		Email:    "staff@example.com",
		Password: "another-pass",
	})
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))
}

func (s *AuthServiceSuite) TestSignUpValidation() {
	_, err := s.service.SignUp(s.GetContext(), &dto.SignUpRequest{
		Email:    "not-an-email",
		Password: "correct-horse",
	})
	s.Error(err)

	_, err = s.service.SignUp(s.GetContext(), &dto.SignUpRequest{
		Email:    "staff@example.com",
		Password: "short",
	})
	s.Error(err)
}

func (s *AuthServiceSuite) TestLogin() {
	signedUp, err := s.service.SignUp(s.GetContext(), &dto.SignUpRequest{
		Email:    "staff@example.com",
		Password: "correct-horse",
	})
	s.NoError(err)

	resp, err := s.service.Login(s.GetContext(), &dto.LoginRequest{
		Email:    "staff@example.com",
		Password: "correct-horse",
	})
	s.NoError(err)
	s.NotEmpty(resp.Token)
	s.Equal(signedUp.UserID, resp.UserID)
	s.Equal(signedUp.TenantID, resp.TenantID)
}

func (s *AuthServiceSuite) TestLoginWrongPassword() {
	_, err := s.service.SignUp(s.GetContext(), &dto.SignUpRequest{
		Email:    "staff@example.com",
		Password: "correct-horse",
	})
	s.NoError(err)

	_, err = s.service.Login(s.GetContext(), &dto.LoginRequest{
		Email:    "staff@example.com",
		Password: "wrong-password",
	})
	s.Error(err)
}

func (s *AuthServiceSuite) TestLoginUnknownUser() {
	_, err := s.service.Login(s.GetContext(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct-horse",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
