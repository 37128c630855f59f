package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hirestream/hirestream/internal/api/dto"
	"github.com/hirestream/hirestream/internal/cache"
	"github.com/hirestream/hirestream/internal/domain/company"
	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/objectstore"
	"github.com/hirestream/hirestream/internal/types"
)

const companyCacheExpiry = 5 * time.Minute

type CompanyService interface {
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*dto.CompanyResponse, error)
	GetCompany(ctx context.Context, id string) (*dto.CompanyResponse, error)
	ListCompanies(ctx context.Context, filter *types.CompanyFilter) (*dto.ListCompaniesResponse, error)
	UpdateCompany(ctx context.Context, id string, req dto.UpdateCompanyRequest) (*dto.CompanyResponse, error)
	DeleteCompany(ctx context.Context, id string) error
	UploadLogo(ctx context.Context, id string, data []byte, contentType string) (*dto.CompanyResponse, error)
}

type companyService struct {
	ServiceParams
}

func NewCompanyService(params ServiceParams) CompanyService {
	return &companyService{ServiceParams: params}
}

func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c := req.ToCompany(ctx)
	if err := s.CompanyRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	return s.toResponse(ctx, c), nil
}

func (s *companyService) GetCompany(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	key := cache.CompanyKey(types.GetTenantID(ctx), id)
	if cached, found := s.Cache.Get(ctx, key); found {
		if c, ok := cached.(*company.Company); ok {
			return s.toResponse(ctx, c), nil
		}
	}

	c, err := s.CompanyRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.Cache.Set(ctx, key, c, companyCacheExpiry)
	return s.toResponse(ctx, c), nil
}

func (s *companyService) ListCompanies(ctx context.Context, filter *types.CompanyFilter) (*dto.ListCompaniesResponse, error) {
	if filter == nil {
		filter = types.NewCompanyFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	companies, err := s.CompanyRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.CompanyRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CompanyResponse, len(companies))
	for i, c := range companies {
		items[i] = s.toResponse(ctx, c)
	}

	return &dto.ListCompaniesResponse{
		Items: items,
		Pagination: types.PaginationResponse{
			Total:  count,
			Limit:  filter.GetLimit(),
			Offset: filter.GetOffset(),
		},
	}, nil
}

func (s *companyService) UpdateCompany(ctx context.Context, id string, req dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.CompanyRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(c)
	if err := s.CompanyRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	s.Cache.Delete(ctx, cache.CompanyKey(types.GetTenantID(ctx), id))
	return s.toResponse(ctx, c), nil
}

func (s *companyService) DeleteCompany(ctx context.Context, id string) error {
	if err := s.CompanyRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.Cache.Delete(ctx, cache.CompanyKey(types.GetTenantID(ctx), id))
	return nil
}

// UploadLogo stores the logo bytes and records the key on the company.
func (s *companyService) UploadLogo(ctx context.Context, id string, data []byte, contentType string) (*dto.CompanyResponse, error) {
	if len(data) == 0 {
		return nil, ierr.NewError("logo file is empty").
			WithHint("Please upload a non-empty image file").
			Mark(ierr.ErrValidation)
	}

	c, err := s.CompanyRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.ObjectStore == nil {
		return nil, ierr.NewError("object store is not configured").
			WithHint("File storage is not enabled on this deployment").
			Mark(ierr.ErrSystem)
	}

	key := fmt.Sprintf("%s/logo-%s", c.ID, types.GenerateShortID())
	if err := s.ObjectStore.Upload(ctx, objectstore.NewLogoObject(key, data, contentType)); err != nil {
		return nil, err
	}

	c.LogoKey = key
	if err := s.CompanyRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	s.Cache.Delete(ctx, cache.CompanyKey(types.GetTenantID(ctx), id))
	return s.toResponse(ctx, c), nil
}

// toResponse attaches a presigned logo URL when a logo exists. URL
// generation is best effort; a failure only logs.
func (s *companyService) toResponse(ctx context.Context, c *company.Company) *dto.CompanyResponse {
	resp := dto.NewCompanyResponse(c)
	if c.LogoKey != "" && s.ObjectStore != nil {
		url, err := s.ObjectStore.GetPresignedURL(ctx, objectstore.ObjectKindLogo, c.LogoKey)
		if err != nil {
			s.Logger.Warnw("failed to presign logo url", "company_id", c.ID, "error", err)
		} else {
			resp.LogoURL = url
		}
	}
	return resp
}
