package testutil

import (
	"context"

	"github.com/samber/lo"

	"github.com/hirestream/hirestream/internal/domain/person"
	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/types"
)

// InMemoryPersonStore implements person.Repository
type InMemoryPersonStore struct {
	*InMemoryStore[*person.Person]
}

// NewInMemoryPersonStore creates a new in-memory person store
func NewInMemoryPersonStore() *InMemoryPersonStore {
	return &InMemoryPersonStore{
		InMemoryStore: NewInMemoryStore[*person.Person](),
	}
}

func copyPerson(p *person.Person) *person.Person {
	if p == nil {
		return nil
	}

	cp := *p
	cp.Metadata = lo.Assign(map[string]string{}, p.Metadata)
	if p.LicenseExpiresAt != nil {
		t := *p.LicenseExpiresAt
		cp.LicenseExpiresAt = &t
	}
	if p.CompanyID != nil {
		id := *p.CompanyID
		cp.CompanyID = &id
	}
	if p.InactiveAt != nil {
		t := *p.InactiveAt
		cp.InactiveAt = &t
	}
	if p.InactiveReason != nil {
		r := *p.InactiveReason
		cp.InactiveReason = &r
	}
	if p.InactiveNote != nil {
		n := *p.InactiveNote
		cp.InactiveNote = &n
	}
	return &cp
}

func (s *InMemoryPersonStore) Create(ctx context.Context, p *person.Person) error {
	if err := s.InMemoryStore.Create(ctx, p.ID, copyPerson(p)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create person").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (s *InMemoryPersonStore) Get(ctx context.Context, id string) (*person.Person, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewErrorf("person with ID %s was not found", id).
			WithHint("Person not found").
			Mark(ierr.ErrNotFound)
	}
	if p.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewErrorf("person with ID %s was not found", id).
			WithHint("Person not found").
			Mark(ierr.ErrNotFound)
	}
	return copyPerson(p), nil
}

func personFilterFn(ctx context.Context, p *person.Person, filter interface{}) bool {
	if p.TenantID != types.GetTenantID(ctx) {
		return false
	}

	f, ok := filter.(*types.PersonFilter)
	if !ok || f == nil {
		return true
	}

	if len(f.Statuses) > 0 && !lo.Contains(f.Statuses, p.PersonStatus) {
		return false
	}
	if f.CompanyID != "" && (p.CompanyID == nil || *p.CompanyID != f.CompanyID) {
		return false
	}
	if len(f.PersonIDs) > 0 && !lo.Contains(f.PersonIDs, p.ID) {
		return false
	}
	return true
}

// personSortFn orders by applied date descending with ID as tiebreaker,
// matching the storage ordering.
func personSortFn(a, b *person.Person) bool {
	if !a.AppliedAt.Equal(b.AppliedAt) {
		return a.AppliedAt.After(b.AppliedAt)
	}
	return a.ID > b.ID
}

func (s *InMemoryPersonStore) List(ctx context.Context, filter *types.PersonFilter) ([]*person.Person, error) {
	items, err := s.InMemoryStore.List(ctx, filter, personFilterFn, personSortFn)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list persons").
			Mark(ierr.ErrDatabase)
	}

	result := make([]*person.Person, len(items))
	for i, p := range items {
		result[i] = copyPerson(p)
	}
	return result, nil
}

func (s *InMemoryPersonStore) ListAll(ctx context.Context, filter *types.PersonFilter) ([]*person.Person, error) {
	unlimited := *filter
	unlimited.QueryFilter = *types.NewNoLimitQueryFilter()
	return s.List(ctx, &unlimited)
}

func (s *InMemoryPersonStore) Count(ctx context.Context, filter *types.PersonFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, personFilterFn)
}

func (s *InMemoryPersonStore) Update(ctx context.Context, p *person.Person) error {
	if _, err := s.Get(ctx, p.ID); err != nil {
		return err
	}
	if err := s.InMemoryStore.Update(ctx, p.ID, copyPerson(p)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update person").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (s *InMemoryPersonStore) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.InMemoryStore.Delete(ctx, id); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete person").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
