package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hirestream/hirestream/internal/api/dto"
	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/types"
)

// LifecycleService is the single owner of person status. Every status read
// and write in the system goes through here; nothing else mutates
// person_status.
type LifecycleService interface {
	SetStatus(ctx context.Context, personID string, req dto.SetStatusRequest) (*dto.PersonResponse, error)
	ListByStatus(ctx context.Context, status types.PersonStatus, filter *types.PersonFilter) (*dto.ListPersonsResponse, error)
	CountByStatus(ctx context.Context, status types.PersonStatus) int
	HasAnyWithStatus(ctx context.Context, status types.PersonStatus) bool
	GetDashboardSummary(ctx context.Context) *dto.DashboardSummaryResponse
	CheckExpiringCredentials(ctx context.Context, withinDays int) (*dto.ListExpiringCredentialsResponse, error)
}

type lifecycleService struct {
	ServiceParams
	// clock is swappable in tests
	clock func() time.Time
}

func NewLifecycleService(params ServiceParams) LifecycleService {
	return &lifecycleService{ServiceParams: params, clock: time.Now}
}

// SetStatus applies a lifecycle transition after checking it against the
// transition table. Moving to inactive additionally requires the effective
// date, reason and description from the request.
func (s *lifecycleService) SetStatus(ctx context.Context, personID string, req dto.SetStatusRequest) (*dto.PersonResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.PersonRepo.Get(ctx, personID)
	if err != nil {
		return nil, err
	}

	if !p.PersonStatus.CanTransitionTo(req.Status) {
		return nil, ierr.NewError(fmt.Sprintf("invalid status transition from %s to %s", p.PersonStatus, req.Status)).
			WithHint("This status change is not allowed").
			WithReportableDetails(map[string]interface{}{
				"from":    p.PersonStatus,
				"to":      req.Status,
				"allowed": p.PersonStatus.NextStatuses(),
			}).
			Mark(ierr.ErrInvalidTransition)
	}

	p.PersonStatus = req.Status
	if req.Status == types.PersonStatusInactive {
		effective := req.InactiveDetails.EffectiveDate.UTC()
		reason := req.InactiveDetails.Reason
		note := req.InactiveDetails.Description
		p.InactiveAt = &effective
		p.InactiveReason = &reason
		p.InactiveNote = &note
	}

	if err := s.PersonRepo.Update(ctx, p); err != nil {
		s.Logger.Errorw("failed to update person status",
			"person_id", personID,
			"status", req.Status,
			"error", err)
		return nil, err
	}

	s.Logger.Infow("person status changed",
		"person_id", personID,
		"status", req.Status)

	return dto.NewPersonResponse(p), nil
}

// ListByStatus returns one status partition, newest applications first.
// All partitions share the same filter semantics and ordering. Storage
// errors propagate to the caller; only the count and dashboard reads
// degrade to zero values.
func (s *lifecycleService) ListByStatus(ctx context.Context, status types.PersonStatus, filter *types.PersonFilter) (*dto.ListPersonsResponse, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if filter == nil {
		filter = types.NewPersonFilter()
	}
	filter.Statuses = []types.PersonStatus{status}

	persons, err := s.PersonRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.PersonRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PersonResponse, len(persons))
	for i, p := range persons {
		items[i] = dto.NewPersonResponse(p)
	}

	return &dto.ListPersonsResponse{
		Items: items,
		Pagination: types.PaginationResponse{
			Total:  count,
			Limit:  filter.GetLimit(),
			Offset: filter.GetOffset(),
		},
	}, nil
}

// CountByStatus is fail open: a failed count logs and reports zero so the
// dashboard navigation renders regardless of storage health.
func (s *lifecycleService) CountByStatus(ctx context.Context, status types.PersonStatus) int {
	filter := types.NewPersonFilter()
	filter.Statuses = []types.PersonStatus{status}

	count, err := s.PersonRepo.Count(ctx, filter)
	if err != nil {
		s.Logger.Warnw("failed to count persons by status, reporting zero",
			"status", status,
			"error", err)
		return 0
	}
	return count
}

// HasAnyWithStatus is fail open in the same way as CountByStatus.
func (s *lifecycleService) HasAnyWithStatus(ctx context.Context, status types.PersonStatus) bool {
	return s.CountByStatus(ctx, status) > 0
}

// GetDashboardSummary returns the per-status counts in lifecycle order.
func (s *lifecycleService) GetDashboardSummary(ctx context.Context) *dto.DashboardSummaryResponse {
	statuses := types.PersonStatuses()
	counts := make([]dto.StatusCountResponse, 0, len(statuses))
	for _, status := range statuses {
		counts = append(counts, dto.StatusCountResponse{
			Status: status,
			Count:  s.CountByStatus(ctx, status),
		})
	}
	return &dto.DashboardSummaryResponse{Counts: counts}
}

// CheckExpiringCredentials scans new hires and employees for driver's
// licenses expiring inside the window. People without a recorded expiry
// never match.
func (s *lifecycleService) CheckExpiringCredentials(ctx context.Context, withinDays int) (*dto.ListExpiringCredentialsResponse, error) {
	if withinDays < 0 {
		return nil, ierr.NewError("within_days must be non-negative").
			WithHint("Please provide a non-negative day window").
			Mark(ierr.ErrValidation)
	}

	filter := types.NewNoLimitPersonFilter()
	filter.Statuses = []types.PersonStatus{types.PersonStatusNewHire, types.PersonStatusEmployee}

	persons, err := s.PersonRepo.ListAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	items := make([]*dto.ExpiringCredentialResponse, 0)
	for _, p := range persons {
		if !p.LicenseExpiresWithin(now, withinDays) {
			continue
		}
		items = append(items, &dto.ExpiringCredentialResponse{
			PersonID:         p.ID,
			FullName:         p.FullName(),
			Status:           p.PersonStatus,
			LicenseExpiresAt: *p.LicenseExpiresAt,
		})
	}

	// Soonest expiry first.
	sort.Slice(items, func(i, j int) bool {
		return items[i].LicenseExpiresAt.Before(items[j].LicenseExpiresAt)
	})

	return &dto.ListExpiringCredentialsResponse{
		Items:      items,
		WithinDays: withinDays,
	}, nil
}
