package service

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hirestream/hirestream/internal/api/dto"
	"github.com/hirestream/hirestream/internal/domain/company"
	"github.com/hirestream/hirestream/internal/domain/person"
	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/testutil"
	"github.com/hirestream/hirestream/internal/types"
)

type AdvisorServiceSuite struct {
	testutil.BaseServiceTestSuite
	service    AdvisorService
	docService DocumentService
	company    *company.Company
	person     *person.Person
}

func TestAdvisorService(t *testing.T) {
	suite.Run(t, new(AdvisorServiceSuite))
}

func (s *AdvisorServiceSuite) params() ServiceParams {
	return ServiceParams{
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
}

func (s *AdvisorServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := s.params()
	s.service = NewAdvisorService(params)
	s.docService = NewDocumentService(params)

	s.company = &company.Company{
		ID:   types.GenerateUUIDWithPrefix(types.UUID_PREFIX_COMPANY),
		Name: "Initech",
		RequiredDocuments: company.RequiredDocuments{
			{ID: "req_1", Label: "Signed NDA", Type: types.RequiredDocumentTypeUpload},
			{ID: "req_2", Label: "Background Check Consent", Type: types.RequiredDocumentTypeUpload},
		},
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().CompanyRepo.Create(s.GetContext(), s.company))

	s.person = &person.Person{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PERSON),
		FirstName:    "Grace",
		LastName:     "Hopper",
		Email:        "grace@example.com",
		PersonStatus: types.PersonStatusNewHire,
		CompanyID:    &s.company.ID,
		AppliedAt:    s.GetNow(),
		BaseModel:    types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().PersonRepo.Create(s.GetContext(), s.person))
}

func (s *AdvisorServiceSuite) TestSuggestMissingDocuments() {
	_, err := s.docService.UploadDocument(s.GetContext(), dto.UploadDocumentRequest{
		PersonID: s.person.ID,
		Slot:     types.DocumentSlotRequired,
		FileName: "nda-signed.txt",
	}, []byte("signed nda"))
	s.NoError(err)

	s.GetLLM().Response = `{"missing_documents": ["Background Check Consent"], "notes": "The NDA upload looks complete."}`

	resp, err := s.service.SuggestMissingDocuments(s.GetContext(), s.person.ID)
	s.NoError(err)
	s.Equal(s.person.ID, resp.PersonID)
	s.Equal([]string{"Background Check Consent"}, resp.MissingDocuments)
	s.Equal("The NDA upload looks complete.", resp.Notes)

	// the prompt carries both the checklist and the uploads
	s.Len(s.GetLLM().Prompts, 1)
	s.Contains(s.GetLLM().Prompts[0], "Signed NDA")
	s.Contains(s.GetLLM().Prompts[0], "Background Check Consent")
	s.Contains(s.GetLLM().Prompts[0], "nda-signed.txt (slot: required)")
}

func (s *AdvisorServiceSuite) TestSuggestMissingDocumentsNoCompany() {
	orphan := &person.Person{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PERSON),
		FirstName:    "Alan",
		LastName:     "Turing",
		Email:        "alan@example.com",
		PersonStatus: types.PersonStatusCandidate,
		AppliedAt:    s.GetNow(),
		BaseModel:    types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().PersonRepo.Create(s.GetContext(), orphan))

	s.GetLLM().Response = `{"missing_documents": [], "notes": "No requirements defined."}`

	resp, err := s.service.SuggestMissingDocuments(s.GetContext(), orphan.ID)
	s.NoError(err)
	s.Empty(resp.MissingDocuments)
	s.Contains(s.GetLLM().Prompts[0], "(none defined)")
}

func (s *AdvisorServiceSuite) TestSuggestMissingDocumentsCollaboratorDown() {
	s.GetLLM().Err = ierr.NewError("upstream timeout").Mark(ierr.ErrHTTPClient)

	_, err := s.service.SuggestMissingDocuments(s.GetContext(), s.person.ID)
	s.Error(err)
	s.True(ierr.Is(err, ierr.ErrHTTPClient))
}

func (s *AdvisorServiceSuite) TestSuggestMissingDocumentsMalformedResponse() {
	s.GetLLM().Response = "I think the NDA is missing"

	_, err := s.service.SuggestMissingDocuments(s.GetContext(), s.person.ID)
	s.Error(err)
	s.True(ierr.Is(err, ierr.ErrHTTPClient))
}

func (s *AdvisorServiceSuite) TestSuggestMissingDocumentsNotConfigured() {
	params := s.params()
	params.LLM = nil
	svc := NewAdvisorService(params)

	_, err := svc.SuggestMissingDocuments(s.GetContext(), s.person.ID)
	s.Error(err)
	s.True(ierr.Is(err, ierr.ErrHTTPClient))
}

func (s *AdvisorServiceSuite) TestSuggestMissingDocumentsPersonNotFound() {
	s.GetLLM().Response = `{"missing_documents": [], "notes": ""}`
	_, err := s.service.SuggestMissingDocuments(s.GetContext(), "pers_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
	s.Empty(s.GetLLM().Prompts)
}

func (s *AdvisorServiceSuite) TestExtractDocumentFields() {
	doc, err := s.docService.UploadDocument(s.GetContext(), dto.UploadDocumentRequest{
		PersonID: s.person.ID,
		Slot:     types.DocumentSlotDriversLicense,
		FileName: "license.txt",
	}, []byte("license text"))
	s.NoError(err)

	s.GetLLM().Response = `{"license_number": "D1234567", "expiry_date": "2027-04-15"}`

	resp, err := s.service.ExtractDocumentFields(s.GetContext(), doc.ID)
	s.NoError(err)
	s.Equal(doc.ID, resp.DocumentID)
	s.Equal("D1234567", resp.Fields["license_number"])
	s.Equal("2027-04-15", resp.Fields["expiry_date"])
}

func (s *AdvisorServiceSuite) TestExtractDocumentFieldsUnknownDocument() {
	s.GetLLM().Response = `{}`
	_, err := s.service.ExtractDocumentFields(s.GetContext(), "doc_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
