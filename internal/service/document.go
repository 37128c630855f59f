package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/h2non/filetype"

	"github.com/hirestream/hirestream/internal/api/dto"
	"github.com/hirestream/hirestream/internal/domain/document"
	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/objectstore"
	"github.com/hirestream/hirestream/internal/types"
)

// maxDocumentSizeBytes caps uploads at 25 MiB.
const maxDocumentSizeBytes = 25 << 20

type DocumentService interface {
	UploadDocument(ctx context.Context, req dto.UploadDocumentRequest, data []byte) (*dto.DocumentResponse, error)
	GetDocument(ctx context.Context, id string) (*dto.DocumentResponse, error)
	ListDocuments(ctx context.Context, filter *types.DocumentFilter) (*dto.ListDocumentsResponse, error)
	GetContentByKey(ctx context.Context, storageKey string) (*dto.DocumentContent, error)
	GetContentForPerson(ctx context.Context, personID, storageKey string) (*dto.DocumentContent, error)
	DeleteDocument(ctx context.Context, id string) error
}

type documentService struct {
	ServiceParams
}

func NewDocumentService(params ServiceParams) DocumentService {
	return &documentService{ServiceParams: params}
}

// UploadDocument stores the file and records the reference row. Single
// slots replace: uploading into an occupied single slot removes the
// previous document. Multi slots accumulate.
func (s *documentService) UploadDocument(ctx context.Context, req dto.UploadDocumentRequest, data []byte) (*dto.DocumentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ierr.NewError("file is empty").
			WithHint("Please upload a non-empty file").
			Mark(ierr.ErrValidation)
	}
	if len(data) > maxDocumentSizeBytes {
		return nil, ierr.NewError("file is too large").
			WithHint("Uploaded files must be 25MB or smaller").
			Mark(ierr.ErrValidation)
	}

	p, err := s.PersonRepo.Get(ctx, req.PersonID)
	if err != nil {
		return nil, err
	}

	if s.ObjectStore == nil {
		return nil, ierr.NewError("object store is not configured").
			WithHint("File storage is not enabled on this deployment").
			Mark(ierr.ErrSystem)
	}

	contentType := sniffContentType(data)

	storageKey := fmt.Sprintf("%s/%s/%s-%s", p.ID, req.Slot, types.GenerateShortID(), req.FileName)
	if err := s.ObjectStore.Upload(ctx, objectstore.NewDocumentObject(storageKey, data, contentType)); err != nil {
		return nil, err
	}

	var replaced []*document.Document
	if !req.Slot.IsMulti() {
		existing, err := s.DocumentRepo.List(ctx, &types.DocumentFilter{
			QueryFilter: *types.NewNoLimitQueryFilter(),
			PersonID:    p.ID,
			Slot:        &req.Slot,
		})
		if err != nil {
			return nil, err
		}
		replaced = existing
	}

	doc := &document.Document{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DOCUMENT),
		PersonID:      p.ID,
		Slot:          req.Slot,
		RequirementID: req.RequirementID,
		Title:         req.FileName,
		StorageKey:    storageKey,
		ContentType:   contentType,
		SizeBytes:     int64(len(data)),
		UploadedAt:    time.Now().UTC(),
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}

	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		for _, old := range replaced {
			if err := s.DocumentRepo.Delete(ctx, old.ID); err != nil {
				return err
			}
		}
		return s.DocumentRepo.Create(ctx, doc)
	})
	if err != nil {
		return nil, err
	}

	// Replaced objects are removed best effort after the rows commit.
	for _, old := range replaced {
		if err := s.ObjectStore.Delete(ctx, objectstore.ObjectKindDocument, old.StorageKey); err != nil {
			s.Logger.Warnw("failed to delete replaced document object, leaving orphan",
				"storage_key", old.StorageKey,
				"error", err)
		}
	}

	s.Logger.Infow("document uploaded",
		"person_id", p.ID,
		"slot", req.Slot,
		"document_id", doc.ID)

	return dto.NewDocumentResponse(doc), nil
}

func (s *documentService) GetDocument(ctx context.Context, id string) (*dto.DocumentResponse, error) {
	d, err := s.DocumentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewDocumentResponse(d), nil
}

func (s *documentService) ListDocuments(ctx context.Context, filter *types.DocumentFilter) (*dto.ListDocumentsResponse, error) {
	if filter == nil {
		return nil, ierr.NewError("filter is required").
			WithHint("Document listings must be scoped to a person").
			Mark(ierr.ErrValidation)
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	docs, err := s.DocumentRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.DocumentResponse, len(docs))
	for i, d := range docs {
		items[i] = dto.NewDocumentResponse(d)
	}
	return &dto.ListDocumentsResponse{Items: items}, nil
}

// GetContentByKey retrieves stored bytes by opaque storage key. The row
// must exist; a dangling key is a not-found even if an orphan object
// remains in the store.
func (s *documentService) GetContentByKey(ctx context.Context, storageKey string) (*dto.DocumentContent, error) {
	d, err := s.DocumentRepo.GetByStorageKey(ctx, storageKey)
	if err != nil {
		return nil, err
	}
	return s.fetchContent(ctx, d)
}

// GetContentForPerson is the scoped variant: the key must belong to the
// named person or the lookup reports not found.
func (s *documentService) GetContentForPerson(ctx context.Context, personID, storageKey string) (*dto.DocumentContent, error) {
	d, err := s.DocumentRepo.GetByStorageKey(ctx, storageKey)
	if err != nil {
		return nil, err
	}
	if d.PersonID != personID {
		return nil, ierr.NewError("document not found").
			WithHint("No document with this key exists for this person").
			Mark(ierr.ErrNotFound)
	}
	return s.fetchContent(ctx, d)
}

func (s *documentService) fetchContent(ctx context.Context, d *document.Document) (*dto.DocumentContent, error) {
	if s.ObjectStore == nil {
		return nil, ierr.NewError("object store is not configured").
			WithHint("File storage is not enabled on this deployment").
			Mark(ierr.ErrSystem)
	}

	data, err := s.ObjectStore.Get(ctx, objectstore.ObjectKindDocument, d.StorageKey)
	if err != nil {
		return nil, err
	}

	return &dto.DocumentContent{
		Data:        data,
		ContentType: d.ContentType,
		FileName:    d.Title,
	}, nil
}

func (s *documentService) DeleteDocument(ctx context.Context, id string) error {
	d, err := s.DocumentRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.DocumentRepo.Delete(ctx, d.ID); err != nil {
		return err
	}

	if s.ObjectStore != nil {
		if err := s.ObjectStore.Delete(ctx, objectstore.ObjectKindDocument, d.StorageKey); err != nil {
			s.Logger.Warnw("failed to delete stored document, leaving orphan",
				"storage_key", d.StorageKey,
				"error", err)
		}
	}
	return nil
}

// sniffContentType trusts the bytes, not the upload's declared type.
func sniffContentType(data []byte) string {
	if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
		return kind.MIME.Value
	}
	return http.DetectContentType(data)
}
