package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/hirestream/hirestream/internal/api/dto"
	"github.com/hirestream/hirestream/internal/domain/company"
	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/testutil"
	"github.com/hirestream/hirestream/internal/types"
)

type PersonServiceSuite struct {
	testutil.BaseServiceTestSuite
	service    PersonService
	docService DocumentService
	lifecycle  LifecycleService
	company    *company.Company
}

func TestPersonService(t *testing.T) {
	suite.Run(t, new(PersonServiceSuite))
}

func (s *PersonServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := ServiceParams{
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
	}
	s.service = NewPersonService(params)
	s.docService = NewDocumentService(params)
	s.lifecycle = NewLifecycleService(params)
	s.company = s.createCompany()
}

func (s *PersonServiceSuite) createCompany() *company.Company {
	c := &company.Company{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_COMPANY),
		Name:      "Initech",
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().CompanyRepo.Create(s.GetContext(), c))
	return c
}

func (s *PersonServiceSuite) TestCreateApplicationEntersAsCandidate() {
	resp, err := s.service.CreateApplication(s.GetContext(), dto.CreateApplicationRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Position:  "Engineer",
		CompanyID: &s.company.ID,
	})
	s.NoError(err)
	s.Equal(types.PersonStatusCandidate, resp.PersonStatus)
	s.Equal("Grace Hopper", resp.FullName)
	s.False(resp.AppliedAt.IsZero())

	stored, err := s.GetStores().PersonRepo.Get(s.GetContext(), resp.ID)
	s.NoError(err)
	s.Equal(types.PersonStatusCandidate, stored.PersonStatus)
}

func (s *PersonServiceSuite) TestCreateApplicationValidation() {
	_, err := s.service.CreateApplication(s.GetContext(), dto.CreateApplicationRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "not-an-email",
	})
	s.Error(err)

	_, err = s.service.CreateApplication(s.GetContext(), dto.CreateApplicationRequest{
		Email: "grace@example.com",
	})
	s.Error(err)
}

func (s *PersonServiceSuite) TestCreateApplicationRequiresCompany() {
	_, err := s.service.CreateApplication(s.GetContext(), dto.CreateApplicationRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *PersonServiceSuite) TestCreateApplicationUnknownCompany() {
	companyID := "comp_missing"
	_, err := s.service.CreateApplication(s.GetContext(), dto.CreateApplicationRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		CompanyID: &companyID,
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *PersonServiceSuite) TestCreateApplicationWithCompany() {
	c := s.createCompany()
	resp, err := s.service.CreateApplication(s.GetContext(), dto.CreateApplicationRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		CompanyID: &c.ID,
	})
	s.NoError(err)
	s.NotNil(resp.CompanyID)
	s.Equal(c.ID, *resp.CompanyID)
}

// A public application runs in the guest context, so the person must land
// in the company's tenant for its staff to see the candidate.
func (s *PersonServiceSuite) TestCreateApplicationVisibleToCompanyTenant() {
	staffTenant := types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TENANT)
	staffCtx := types.SetTenantID(s.GetContext(), staffTenant)
	c := &company.Company{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_COMPANY),
		Name:      "Globex",
		BaseModel: types.GetDefaultBaseModel(staffCtx),
	}
	s.NoError(s.GetStores().CompanyRepo.Create(staffCtx, c))

	resp, err := s.service.CreateApplication(s.GetContext(), dto.CreateApplicationRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		CompanyID: &c.ID,
	})
	s.NoError(err)

	stored, err := s.GetStores().PersonRepo.Get(staffCtx, resp.ID)
	s.NoError(err)
	s.Equal(staffTenant, stored.TenantID)

	list, err := s.lifecycle.ListByStatus(staffCtx, types.PersonStatusCandidate, nil)
	s.NoError(err)
	s.Len(list.Items, 1)
	s.Equal(resp.ID, list.Items[0].ID)

	// the guest tenant never owns the application
	_, err = s.GetStores().PersonRepo.Get(s.GetContext(), resp.ID)
	s.True(ierr.IsNotFound(err))
}

func (s *PersonServiceSuite) TestImportEmployeeEntersAsEmployee() {
	hiredAt := time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC)
	resp, err := s.service.ImportEmployee(s.GetContext(), dto.ImportEmployeeRequest{
		CreateApplicationRequest: dto.CreateApplicationRequest{
			FirstName: "Alan",
			LastName:  "Turing",
			Email:     "alan@example.com",
		},
		HiredAt: &hiredAt,
	})
	s.NoError(err)
	s.Equal(types.PersonStatusEmployee, resp.PersonStatus)
	s.True(hiredAt.Equal(resp.AppliedAt))
}

func (s *PersonServiceSuite) TestGetPersonNotFound() {
	_, err := s.service.GetPerson(s.GetContext(), "pers_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *PersonServiceSuite) TestUpdatePersonPartial() {
	created, err := s.service.CreateApplication(s.GetContext(), dto.CreateApplicationRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Phone:     "555-0100",
		CompanyID: &s.company.ID,
	})
	s.NoError(err)

	position := "Rear Admiral"
	resp, err := s.service.UpdatePerson(s.GetContext(), created.ID, dto.UpdatePersonRequest{
		Position: &position,
	})
	s.NoError(err)
	s.Equal("Rear Admiral", resp.Position)
	// untouched fields survive
	s.Equal("grace@example.com", resp.Email)
	s.Equal("555-0100", resp.Phone)
	s.Equal(types.PersonStatusCandidate, resp.PersonStatus)
}

func (s *PersonServiceSuite) TestUpdatePersonEmptyEmailRejected() {
	created, err := s.service.CreateApplication(s.GetContext(), dto.CreateApplicationRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		CompanyID: &s.company.ID,
	})
	s.NoError(err)

	empty := ""
	_, err = s.service.UpdatePerson(s.GetContext(), created.ID, dto.UpdatePersonRequest{
		Email: &empty,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *PersonServiceSuite) TestDeletePersonRemovesDocumentsAndObjects() {
	created, err := s.service.CreateApplication(s.GetContext(), dto.CreateApplicationRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		CompanyID: &s.company.ID,
	})
	s.NoError(err)

	pdf := append([]byte("%PDF-1.4"), make([]byte, 64)...)
	_, err = s.docService.UploadDocument(s.GetContext(), dto.UploadDocumentRequest{
		PersonID: created.ID,
		Slot:     types.DocumentSlotResume,
		FileName: "resume.pdf",
	}, pdf)
	s.NoError(err)
	_, err = s.docService.UploadDocument(s.GetContext(), dto.UploadDocumentRequest{
		PersonID: created.ID,
		Slot:     types.DocumentSlotMisc,
		FileName: "notes.txt",
	}, []byte("plain text notes"))
	s.NoError(err)
	s.Equal(2, s.GetObjectStore().Len())

	s.NoError(s.service.DeletePerson(s.GetContext(), created.ID))

	_, err = s.service.GetPerson(s.GetContext(), created.ID)
	s.True(ierr.IsNotFound(err))

	docs, err := s.GetStores().DocumentRepo.List(s.GetContext(), types.NewNoLimitDocumentFilter(created.ID))
	s.NoError(err)
	s.Len(docs, 0)
	s.Equal(0, s.GetObjectStore().Len())
}

func (s *PersonServiceSuite) TestDeletePersonNotFound() {
	err := s.service.DeletePerson(s.GetContext(), "pers_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
