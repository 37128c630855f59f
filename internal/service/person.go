package service

import (
	"context"

	"github.com/sourcegraph/conc/pool"

	"github.com/hirestream/hirestream/internal/api/dto"
	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/objectstore"
	"github.com/hirestream/hirestream/internal/types"
)

type PersonService interface {
	CreateApplication(ctx context.Context, req dto.CreateApplicationRequest) (*dto.PersonResponse, error)
	ImportEmployee(ctx context.Context, req dto.ImportEmployeeRequest) (*dto.PersonResponse, error)
	GetPerson(ctx context.Context, id string) (*dto.PersonResponse, error)
	UpdatePerson(ctx context.Context, id string, req dto.UpdatePersonRequest) (*dto.PersonResponse, error)
	DeletePerson(ctx context.Context, id string) error
}

type personService struct {
	ServiceParams
}

func NewPersonService(params ServiceParams) PersonService {
	return &personService{ServiceParams: params}
}

// CreateApplication records a public application. The person enters the
// lifecycle as a candidate. The caller has no tenant of its own, so the
// company is resolved without tenant scoping and the person is stamped
// with the company's tenant so its staff can review the application.
func (s *personService) CreateApplication(ctx context.Context, req dto.CreateApplicationRequest) (*dto.PersonResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.CompanyID == nil || *req.CompanyID == "" {
		return nil, ierr.NewError("company_id is required").
			WithHint("Applications must be submitted to a company").
			Mark(ierr.ErrValidation)
	}

	c, err := s.CompanyRepo.GetPublic(ctx, *req.CompanyID)
	if err != nil {
		return nil, err
	}
	ctx = types.SetTenantID(ctx, c.TenantID)

	p := req.ToPerson(ctx)
	if err := s.PersonRepo.Create(ctx, p); err != nil {
		s.Logger.Errorw("failed to create application", "error", err)
		return nil, err
	}

	s.Logger.Infow("application received",
		"person_id", p.ID,
		"position", p.Position)

	return dto.NewPersonResponse(p), nil
}

// ImportEmployee creates a person directly as an employee, bypassing the
// hiring funnel. Used for staff who predate the platform.
func (s *personService) ImportEmployee(ctx context.Context, req dto.ImportEmployeeRequest) (*dto.PersonResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.CompanyID != nil {
		if _, err := s.CompanyRepo.Get(ctx, *req.CompanyID); err != nil {
			return nil, err
		}
	}

	p := req.ToPerson(ctx)
	if err := s.PersonRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	return dto.NewPersonResponse(p), nil
}

func (s *personService) GetPerson(ctx context.Context, id string) (*dto.PersonResponse, error) {
	p, err := s.PersonRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewPersonResponse(p), nil
}

func (s *personService) UpdatePerson(ctx context.Context, id string, req dto.UpdatePersonRequest) (*dto.PersonResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.PersonRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CompanyID != nil && *req.CompanyID != "" {
		if _, err := s.CompanyRepo.Get(ctx, *req.CompanyID); err != nil {
			return nil, err
		}
	}

	req.Apply(p)
	if err := s.PersonRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	return dto.NewPersonResponse(p), nil
}

// DeletePerson soft deletes the person and their document rows, then
// clears the stored objects best effort. A failed object delete only logs;
// the row deletions are the source of truth.
func (s *personService) DeletePerson(ctx context.Context, id string) error {
	p, err := s.PersonRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	docs, err := s.DocumentRepo.List(ctx, types.NewNoLimitDocumentFilter(p.ID))
	if err != nil {
		return err
	}

	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		for _, d := range docs {
			if err := s.DocumentRepo.Delete(ctx, d.ID); err != nil {
				return err
			}
		}
		return s.PersonRepo.Delete(ctx, p.ID)
	})
	if err != nil {
		return err
	}

	if s.ObjectStore != nil && len(docs) > 0 {
		wp := pool.New().WithMaxGoroutines(4)
		for _, d := range docs {
			d := d
			wp.Go(func() {
				if err := s.ObjectStore.Delete(ctx, objectstore.ObjectKindDocument, d.StorageKey); err != nil {
					s.Logger.Warnw("failed to delete stored document, leaving orphan",
						"person_id", p.ID,
						"storage_key", d.StorageKey,
						"error", err)
				}
			})
		}
		wp.Wait()
	}

	s.Logger.Infow("person deleted", "person_id", p.ID)
	return nil
}
