package service

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hirestream/hirestream/internal/api/dto"
	"github.com/hirestream/hirestream/internal/domain/company"
	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/testutil"
	"github.com/hirestream/hirestream/internal/types"
)

type CompanyServiceSuite struct {
	testutil.BaseServiceTestSuite
	service CompanyService
}

func TestCompanyService(t *testing.T) {
	suite.Run(t, new(CompanyServiceSuite))
}

func (s *CompanyServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewCompanyService(ServiceParams{
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

func (s *CompanyServiceSuite) TestCreateCompany() {
	resp, err := s.service.CreateCompany(s.GetContext(), dto.CreateCompanyRequest{
		Name:         "Initech",
		ContactEmail: "hr@initech.example",
		RequiredDocuments: company.RequiredDocuments{
			{ID: "req_1", Label: "Signed NDA", Type: types.RequiredDocumentTypeUpload},
			{ID: "req_2", Label: "Direct Deposit Form", Type: types.RequiredDocumentTypeDigital},
		},
	})
	s.NoError(err)
	s.Equal("Initech", resp.Name)
	s.Len(resp.RequiredDocuments, 2)
}

func (s *CompanyServiceSuite) TestCreateCompanyValidation() {
	_, err := s.service.CreateCompany(s.GetContext(), dto.CreateCompanyRequest{})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	_, err = s.service.CreateCompany(s.GetContext(), dto.CreateCompanyRequest{
		Name: "Initech",
		RequiredDocuments: company.RequiredDocuments{
			{ID: "", Label: "Signed NDA", Type: types.RequiredDocumentTypeUpload},
		},
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	_, err = s.service.CreateCompany(s.GetContext(), dto.CreateCompanyRequest{
		Name: "Initech",
		RequiredDocuments: company.RequiredDocuments{
			{ID: "req_1", Label: "Signed NDA", Type: types.RequiredDocumentType("email")},
		},
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *CompanyServiceSuite) TestGetCompanyCaches() {
	created, err := s.service.CreateCompany(s.GetContext(), dto.CreateCompanyRequest{Name: "Initech"})
	s.NoError(err)

	first, err := s.service.GetCompany(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal("Initech", first.Name)

	// a stale cached read survives the row disappearing underneath
	s.NoError(s.GetStores().CompanyRepo.Delete(s.GetContext(), created.ID))
	second, err := s.service.GetCompany(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal("Initech", second.Name)
}

func (s *CompanyServiceSuite) TestUpdateCompanyInvalidatesCache() {
	created, err := s.service.CreateCompany(s.GetContext(), dto.CreateCompanyRequest{Name: "Initech"})
	s.NoError(err)

	_, err = s.service.GetCompany(s.GetContext(), created.ID)
	s.NoError(err)

	name := "Initrode"
	updated, err := s.service.UpdateCompany(s.GetContext(), created.ID, dto.UpdateCompanyRequest{Name: &name})
	s.NoError(err)
	s.Equal("Initrode", updated.Name)

	fresh, err := s.service.GetCompany(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal("Initrode", fresh.Name)
}

func (s *CompanyServiceSuite) TestListCompanies() {
	_, err := s.service.CreateCompany(s.GetContext(), dto.CreateCompanyRequest{Name: "Initech"})
	s.NoError(err)
	_, err = s.service.CreateCompany(s.GetContext(), dto.CreateCompanyRequest{Name: "Initrode"})
	s.NoError(err)

	resp, err := s.service.ListCompanies(s.GetContext(), nil)
	s.NoError(err)
	s.Len(resp.Items, 2)
	s.Equal(2, resp.Pagination.Total)
}

func (s *CompanyServiceSuite) TestDeleteCompany() {
	created, err := s.service.CreateCompany(s.GetContext(), dto.CreateCompanyRequest{Name: "Initech"})
	s.NoError(err)

	s.NoError(s.service.DeleteCompany(s.GetContext(), created.ID))

	_, err = s.service.GetCompany(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *CompanyServiceSuite) TestUploadLogo() {
	created, err := s.service.CreateCompany(s.GetContext(), dto.CreateCompanyRequest{Name: "Initech"})
	s.NoError(err)

	resp, err := s.service.UploadLogo(s.GetContext(), created.ID, []byte("png bytes"), "image/png")
	s.NoError(err)
	s.NotEmpty(resp.LogoKey)
	s.NotEmpty(resp.LogoURL)
	s.Equal(1, s.GetObjectStore().Len())

	_, err = s.service.UploadLogo(s.GetContext(), created.ID, nil, "image/png")
	s.Error(err)
	s.True(ierr.IsValidation(err))
}
