package testutil

import (
	"context"

	"github.com/hirestream/hirestream/internal/domain/document"
	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/types"
)

// InMemoryDocumentStore implements document.Repository
type InMemoryDocumentStore struct {
	*InMemoryStore[*document.Document]
}

// NewInMemoryDocumentStore creates a new in-memory document store
func NewInMemoryDocumentStore() *InMemoryDocumentStore {
	return &InMemoryDocumentStore{
		InMemoryStore: NewInMemoryStore[*document.Document](),
	}
}

func copyDocument(d *document.Document) *document.Document {
	if d == nil {
		return nil
	}
	cp := *d
	return &cp
}

func (s *InMemoryDocumentStore) Create(ctx context.Context, d *document.Document) error {
	if err := s.InMemoryStore.Create(ctx, d.ID, copyDocument(d)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create document").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (s *InMemoryDocumentStore) Get(ctx context.Context, id string) (*document.Document, error) {
	d, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || d.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewErrorf("document with ID %s was not found", id).
			WithHint("Document not found").
			Mark(ierr.ErrNotFound)
	}
	return copyDocument(d), nil
}

func (s *InMemoryDocumentStore) GetByStorageKey(ctx context.Context, storageKey string) (*document.Document, error) {
	filterFn := func(ctx context.Context, d *document.Document, _ interface{}) bool {
		return d.StorageKey == storageKey && d.TenantID == types.GetTenantID(ctx)
	}

	docs, err := s.InMemoryStore.List(ctx, nil, filterFn, nil)
	if err != nil || len(docs) == 0 {
		return nil, ierr.NewError("document not found").
			WithHint("No document with this storage key exists").
			Mark(ierr.ErrNotFound)
	}
	return copyDocument(docs[0]), nil
}

func documentFilterFn(ctx context.Context, d *document.Document, filter interface{}) bool {
	if d.TenantID != types.GetTenantID(ctx) {
		return false
	}
	f, ok := filter.(*types.DocumentFilter)
	if !ok || f == nil {
		return true
	}
	if f.PersonID != "" && d.PersonID != f.PersonID {
		return false
	}
	if f.Slot != nil && d.Slot != *f.Slot {
		return false
	}
	return true
}

func documentSortFn(a, b *document.Document) bool {
	return a.UploadedAt.After(b.UploadedAt)
}

func (s *InMemoryDocumentStore) List(ctx context.Context, filter *types.DocumentFilter) ([]*document.Document, error) {
	items, err := s.InMemoryStore.List(ctx, filter, documentFilterFn, documentSortFn)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list documents").
			Mark(ierr.ErrDatabase)
	}
	result := make([]*document.Document, len(items))
	for i, d := range items {
		result[i] = copyDocument(d)
	}
	return result, nil
}

func (s *InMemoryDocumentStore) Update(ctx context.Context, d *document.Document) error {
	if _, err := s.Get(ctx, d.ID); err != nil {
		return err
	}
	if err := s.InMemoryStore.Update(ctx, d.ID, copyDocument(d)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update document").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (s *InMemoryDocumentStore) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.InMemoryStore.Delete(ctx, id); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete document").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
