package testutil

import (
	"context"

	"github.com/hirestream/hirestream/internal/domain/company"
	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/types"
)

// InMemoryCompanyStore implements company.Repository
type InMemoryCompanyStore struct {
	*InMemoryStore[*company.Company]
}

// NewInMemoryCompanyStore creates a new in-memory company store
func NewInMemoryCompanyStore() *InMemoryCompanyStore {
	return &InMemoryCompanyStore{
		InMemoryStore: NewInMemoryStore[*company.Company](),
	}
}

func copyCompany(c *company.Company) *company.Company {
	if c == nil {
		return nil
	}
	cp := *c
	cp.RequiredDocuments = append(company.RequiredDocuments{}, c.RequiredDocuments...)
	return &cp
}

func (s *InMemoryCompanyStore) Create(ctx context.Context, c *company.Company) error {
	if err := s.InMemoryStore.Create(ctx, c.ID, copyCompany(c)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create company").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (s *InMemoryCompanyStore) Get(ctx context.Context, id string) (*company.Company, error) {
	c, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || c.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewErrorf("company with ID %s was not found", id).
			WithHint("Company not found").
			Mark(ierr.ErrNotFound)
	}
	return copyCompany(c), nil
}

func (s *InMemoryCompanyStore) GetPublic(ctx context.Context, id string) (*company.Company, error) {
	c, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewErrorf("company with ID %s was not found", id).
			WithHint("Company not found").
			Mark(ierr.ErrNotFound)
	}
	return copyCompany(c), nil
}

func companyFilterFn(ctx context.Context, c *company.Company, filter interface{}) bool {
	if c.TenantID != types.GetTenantID(ctx) {
		return false
	}
	f, ok := filter.(*types.CompanyFilter)
	if !ok || f == nil {
		return true
	}
	if f.Name != "" && c.Name != f.Name {
		return false
	}
	return true
}

func companySortFn(a, b *company.Company) bool {
	return a.CreatedAt.After(b.CreatedAt)
}

func (s *InMemoryCompanyStore) List(ctx context.Context, filter *types.CompanyFilter) ([]*company.Company, error) {
	items, err := s.InMemoryStore.List(ctx, filter, companyFilterFn, companySortFn)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list companies").
			Mark(ierr.ErrDatabase)
	}
	result := make([]*company.Company, len(items))
	for i, c := range items {
		result[i] = copyCompany(c)
	}
	return result, nil
}

func (s *InMemoryCompanyStore) Count(ctx context.Context, filter *types.CompanyFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, companyFilterFn)
}

func (s *InMemoryCompanyStore) Update(ctx context.Context, c *company.Company) error {
	if _, err := s.Get(ctx, c.ID); err != nil {
		return err
	}
	if err := s.InMemoryStore.Update(ctx, c.ID, copyCompany(c)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update company").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (s *InMemoryCompanyStore) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.InMemoryStore.Delete(ctx, id); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete company").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
