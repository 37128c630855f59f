package service

import (
	"context"

	"github.com/hirestream/hirestream/internal/api/dto"
	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/types"
)

// OnboardingService issues onboarding links and resolves a verified link
// into the phase the onboarding UI should render.
type OnboardingService interface {
	IssueLink(ctx context.Context, req dto.IssueLinkRequest) (*dto.IssueLinkResponse, error)
	GetPhase(ctx context.Context, token string) (*dto.OnboardingPhaseResponse, error)
}

type onboardingService struct {
	ServiceParams
}

func NewOnboardingService(params ServiceParams) OnboardingService {
	return &onboardingService{ServiceParams: params}
}

// IssueLink signs a link token for the person. Inactive people never get
// links; there is nothing left to onboard.
func (s *onboardingService) IssueLink(ctx context.Context, req dto.IssueLinkRequest) (*dto.IssueLinkResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.PersonRepo.Get(ctx, req.PersonID)
	if err != nil {
		return nil, err
	}

	if p.PersonStatus == types.PersonStatusInactive {
		return nil, ierr.NewError("cannot issue onboarding link for inactive person").
			WithHint("Inactive people cannot be onboarded").
			Mark(ierr.ErrValidation)
	}

	token, err := s.LinkToken.Issue(p.ID, p.TenantID)
	if err != nil {
		return nil, err
	}

	return &dto.IssueLinkResponse{PersonID: p.ID, Token: token}, nil
}

// GetPhase verifies the link and re-checks the person's current state: a
// signed, unexpired link whose person has since gone inactive or been
// removed is rejected as invalid, not honored from stale claims.
func (s *onboardingService) GetPhase(ctx context.Context, token string) (*dto.OnboardingPhaseResponse, error) {
	claims, err := s.LinkToken.Verify(token)
	if err != nil {
		return nil, err
	}

	// Public route: tenant scope comes from the token, not a session.
	ctx = types.SetTenantID(ctx, claims.TenantID)

	p, err := s.PersonRepo.Get(ctx, claims.PersonID)
	if err != nil {
		if ierr.IsNotFound(err) {
			return nil, ierr.NewError("onboarding link no longer valid").
				WithHint("This onboarding link is not valid").
				Mark(ierr.ErrTokenInvalid)
		}
		return nil, err
	}

	if p.PersonStatus == types.PersonStatusInactive {
		return nil, ierr.NewError("onboarding link no longer valid").
			WithHint("This onboarding link is not valid").
			Mark(ierr.ErrTokenInvalid)
	}

	resp := &dto.OnboardingPhaseResponse{
		PersonID: p.ID,
		FullName: p.FullName(),
		Status:   p.PersonStatus,
	}

	if p.CompanyID != nil {
		c, err := s.CompanyRepo.Get(ctx, *p.CompanyID)
		if err == nil {
			resp.CompanyName = c.Name
			resp.RequiredDocuments = c.RequiredDocuments
		} else {
			s.Logger.Warnw("failed to load company for onboarding phase",
				"person_id", p.ID,
				"company_id", *p.CompanyID,
				"error", err)
		}
	}

	docs, err := s.DocumentRepo.List(ctx, types.NewNoLimitDocumentFilter(p.ID))
	if err != nil {
		return nil, err
	}
	resp.Documents = make([]*dto.DocumentResponse, len(docs))
	for i, d := range docs {
		resp.Documents[i] = dto.NewDocumentResponse(d)
	}

	return resp, nil
}
