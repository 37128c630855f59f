package service

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hirestream/hirestream/internal/api/dto"
	"github.com/hirestream/hirestream/internal/domain/person"
	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/testutil"
	"github.com/hirestream/hirestream/internal/types"
)

type DocumentServiceSuite struct {
	testutil.BaseServiceTestSuite
	service DocumentService
	person  *person.Person
}

func TestDocumentService(t *testing.T) {
	suite.Run(t, new(DocumentServiceSuite))
}

func (s *DocumentServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewDocumentService(ServiceParams{
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

	s.person = &person.Person{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PERSON),
		FirstName:    "Grace",
		LastName:     "Hopper",
		Email:        "grace@example.com",
		PersonStatus: types.PersonStatusNewHire,
		AppliedAt:    s.GetNow(),
		BaseModel:    types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().PersonRepo.Create(s.GetContext(), s.person))
}

func (s *DocumentServiceSuite) upload(slot types.DocumentSlot, fileName string, data []byte) *dto.DocumentResponse {
	resp, err := s.service.UploadDocument(s.GetContext(), dto.UploadDocumentRequest{
		PersonID: s.person.ID,
		Slot:     slot,
		FileName: fileName,
	}, data)
	s.NoError(err)
	return resp
}

func (s *DocumentServiceSuite) listSlot(slot types.DocumentSlot) []*dto.DocumentResponse {
	resp, err := s.service.ListDocuments(s.GetContext(), &types.DocumentFilter{
		QueryFilter: *types.NewNoLimitQueryFilter(),
		PersonID:    s.person.ID,
		Slot:        &slot,
	})
	s.NoError(err)
	return resp.Items
}

func (s *DocumentServiceSuite) TestUploadStoresObjectAndRow() {
	resp := s.upload(types.DocumentSlotResume, "resume.txt", []byte("curriculum vitae"))

	s.Equal(s.person.ID, resp.PersonID)
	s.Equal(types.DocumentSlotResume, resp.Slot)
	s.Equal("resume.txt", resp.Title)
	s.Equal(int64(len("curriculum vitae")), resp.SizeBytes)
	s.NotEmpty(resp.StorageKey)
	s.Equal(1, s.GetObjectStore().Len())

	content, err := s.service.GetContentByKey(s.GetContext(), resp.StorageKey)
	s.NoError(err)
	s.Equal([]byte("curriculum vitae"), content.Data)
	s.Equal("resume.txt", content.FileName)
}

func (s *DocumentServiceSuite) TestUploadSniffsContentType() {
	// PDF magic bytes win over whatever the client claims
	pdf := append([]byte("%PDF-1.4\n"), make([]byte, 32)...)
	resp := s.upload(types.DocumentSlotResume, "resume.pdf", pdf)
	s.Equal("application/pdf", resp.ContentType)

	text := s.upload(types.DocumentSlotMisc, "notes.bin", []byte("just some text"))
	s.Contains(text.ContentType, "text/plain")
}

func (s *DocumentServiceSuite) TestUploadSingleSlotReplaces() {
	first := s.upload(types.DocumentSlotDriversLicense, "license-old.txt", []byte("old license"))
	second := s.upload(types.DocumentSlotDriversLicense, "license-new.txt", []byte("new license"))

	docs := s.listSlot(types.DocumentSlotDriversLicense)
	s.Len(docs, 1)
	s.Equal(second.ID, docs[0].ID)

	// the replaced row and its object are both gone
	_, err := s.service.GetContentByKey(s.GetContext(), first.StorageKey)
	s.True(ierr.IsNotFound(err))
	s.Equal(1, s.GetObjectStore().Len())

	content, err := s.service.GetContentByKey(s.GetContext(), second.StorageKey)
	s.NoError(err)
	s.Equal([]byte("new license"), content.Data)
}

func (s *DocumentServiceSuite) TestUploadMultiSlotsAccumulate() {
	s.upload(types.DocumentSlotRequired, "cert-a.txt", []byte("certificate a"))
	s.upload(types.DocumentSlotRequired, "cert-b.txt", []byte("certificate b"))
	s.upload(types.DocumentSlotMisc, "note.txt", []byte("misc note"))
	s.upload(types.DocumentSlotMisc, "note2.txt", []byte("misc note 2"))

	s.Len(s.listSlot(types.DocumentSlotRequired), 2)
	s.Len(s.listSlot(types.DocumentSlotMisc), 2)
	s.Equal(4, s.GetObjectStore().Len())
}

func (s *DocumentServiceSuite) TestUploadValidation() {
	_, err := s.service.UploadDocument(s.GetContext(), dto.UploadDocumentRequest{
		PersonID: s.person.ID,
		Slot:     types.DocumentSlotResume,
		FileName: "resume.txt",
	}, nil)
	s.Error(err)
	s.True(ierr.IsValidation(err))

	_, err = s.service.UploadDocument(s.GetContext(), dto.UploadDocumentRequest{
		PersonID: s.person.ID,
		Slot:     types.DocumentSlot("cover_letter"),
		FileName: "letter.txt",
	}, []byte("hello"))
	s.Error(err)
	s.True(ierr.IsValidation(err))

	_, err = s.service.UploadDocument(s.GetContext(), dto.UploadDocumentRequest{
		PersonID: s.person.ID,
		Slot:     types.DocumentSlotResume,
	}, []byte("hello"))
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *DocumentServiceSuite) TestUploadRejectsOversizedFile() {
	big := make([]byte, maxDocumentSizeBytes+1)
	_, err := s.service.UploadDocument(s.GetContext(), dto.UploadDocumentRequest{
		PersonID: s.person.ID,
		Slot:     types.DocumentSlotResume,
		FileName: "huge.bin",
	}, big)
	s.Error(err)
	s.True(ierr.IsValidation(err))
	s.Equal(0, s.GetObjectStore().Len())
}

func (s *DocumentServiceSuite) TestUploadUnknownPerson() {
	_, err := s.service.UploadDocument(s.GetContext(), dto.UploadDocumentRequest{
		PersonID: "pers_missing",
		Slot:     types.DocumentSlotResume,
		FileName: "resume.txt",
	}, []byte("hello"))
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *DocumentServiceSuite) TestGetContentForPersonScoping() {
	resp := s.upload(types.DocumentSlotResume, "resume.txt", []byte("curriculum vitae"))

	content, err := s.service.GetContentForPerson(s.GetContext(), s.person.ID, resp.StorageKey)
	s.NoError(err)
	s.Equal([]byte("curriculum vitae"), content.Data)

	// a valid key under the wrong person reads as not found
	other := &person.Person{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PERSON),
		FirstName:    "Alan",
		LastName:     "Turing",
		Email:        "alan@example.com",
		PersonStatus: types.PersonStatusNewHire,
		AppliedAt:    s.GetNow(),
		BaseModel:    types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().PersonRepo.Create(s.GetContext(), other))

	_, err = s.service.GetContentForPerson(s.GetContext(), other.ID, resp.StorageKey)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *DocumentServiceSuite) TestGetContentByKeyUnknown() {
	_, err := s.service.GetContentByKey(s.GetContext(), "nonexistent-key")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *DocumentServiceSuite) TestDeleteDocument() {
	resp := s.upload(types.DocumentSlotResume, "resume.txt", []byte("curriculum vitae"))

	s.NoError(s.service.DeleteDocument(s.GetContext(), resp.ID))
	s.Len(s.listSlot(types.DocumentSlotResume), 0)
	s.Equal(0, s.GetObjectStore().Len())

	err := s.service.DeleteDocument(s.GetContext(), resp.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *DocumentServiceSuite) TestListDocumentsRequiresFilter() {
	_, err := s.service.ListDocuments(s.GetContext(), nil)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}
