package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/hirestream/hirestream/internal/api/dto"
	"github.com/hirestream/hirestream/internal/domain/person"
	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/testutil"
	"github.com/hirestream/hirestream/internal/types"
)

type LifecycleServiceSuite struct {
	testutil.BaseServiceTestSuite
	service LifecycleService
	now     time.Time
}

func TestLifecycleService(t *testing.T) {
	suite.Run(t, new(LifecycleServiceSuite))
}

func (s *LifecycleServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.service = &lifecycleService{
		ServiceParams: s.params(),
		clock:         func() time.Time { return s.now },
	}
}

func (s *LifecycleServiceSuite) params() ServiceParams {
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

func (s *LifecycleServiceSuite) createPerson(status types.PersonStatus, appliedAt time.Time) *person.Person {
	p := &person.Person{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PERSON),
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		PersonStatus: status,
		AppliedAt:    appliedAt,
		BaseModel:    types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().PersonRepo.Create(s.GetContext(), p))
	return p
}

func (s *LifecycleServiceSuite) TestSetStatusAllowedTransitions() {
	cases := []struct {
		from types.PersonStatus
		to   types.PersonStatus
	}{
		{types.PersonStatusCandidate, types.PersonStatusInterview},
		{types.PersonStatusCandidate, types.PersonStatusNewHire},
		{types.PersonStatusInterview, types.PersonStatusNewHire},
		{types.PersonStatusNewHire, types.PersonStatusEmployee},
		{types.PersonStatusEmployee, types.PersonStatusInactive},
	}

	for _, tc := range cases {
		p := s.createPerson(tc.from, s.now)

		req := dto.SetStatusRequest{Status: tc.to}
		if tc.to == types.PersonStatusInactive {
			req.InactiveDetails = &dto.InactiveDetails{
				EffectiveDate: s.now,
				Reason:        types.InactiveReasonTermination,
				Description:   "position eliminated",
			}
		}

		resp, err := s.service.SetStatus(s.GetContext(), p.ID, req)
		s.NoError(err, "transition %s -> %s should be allowed", tc.from, tc.to)
		s.Equal(tc.to, resp.PersonStatus)

		stored, err := s.GetStores().PersonRepo.Get(s.GetContext(), p.ID)
		s.NoError(err)
		s.Equal(tc.to, stored.PersonStatus)
	}
}

func (s *LifecycleServiceSuite) TestSetStatusRejectedTransitions() {
	cases := []struct {
		from types.PersonStatus
		to   types.PersonStatus
	}{
		{types.PersonStatusCandidate, types.PersonStatusEmployee},
		{types.PersonStatusCandidate, types.PersonStatusInactive},
		{types.PersonStatusInterview, types.PersonStatusCandidate},
		{types.PersonStatusInterview, types.PersonStatusEmployee},
		{types.PersonStatusNewHire, types.PersonStatusCandidate},
		{types.PersonStatusNewHire, types.PersonStatusInterview},
		{types.PersonStatusNewHire, types.PersonStatusInactive},
		{types.PersonStatusEmployee, types.PersonStatusCandidate},
		{types.PersonStatusEmployee, types.PersonStatusNewHire},
		{types.PersonStatusInactive, types.PersonStatusCandidate},
		{types.PersonStatusInactive, types.PersonStatusInterview},
		{types.PersonStatusInactive, types.PersonStatusNewHire},
		{types.PersonStatusInactive, types.PersonStatusEmployee},
	}

	for _, tc := range cases {
		p := s.createPerson(tc.from, s.now)

		req := dto.SetStatusRequest{Status: tc.to}
		if tc.to == types.PersonStatusInactive {
			req.InactiveDetails = &dto.InactiveDetails{
				EffectiveDate: s.now,
				Reason:        types.InactiveReasonOther,
				Description:   "n/a",
			}
		}

		_, err := s.service.SetStatus(s.GetContext(), p.ID, req)
		s.Error(err, "transition %s -> %s should be rejected", tc.from, tc.to)
		s.True(ierr.IsInvalidTransition(err), "transition %s -> %s should be an invalid transition error", tc.from, tc.to)

		// rejected transitions leave the record untouched
		stored, err := s.GetStores().PersonRepo.Get(s.GetContext(), p.ID)
		s.NoError(err)
		s.Equal(tc.from, stored.PersonStatus)
	}
}

func (s *LifecycleServiceSuite) TestSetStatusNoSelfTransition() {
	for _, status := range types.PersonStatuses() {
		p := s.createPerson(status, s.now)
		req := dto.SetStatusRequest{Status: status}
		if status == types.PersonStatusInactive {
			req.InactiveDetails = &dto.InactiveDetails{
				EffectiveDate: s.now,
				Reason:        types.InactiveReasonOther,
				Description:   "n/a",
			}
		}
		_, err := s.service.SetStatus(s.GetContext(), p.ID, req)
		s.Error(err)
		s.True(ierr.IsInvalidTransition(err))
	}
}

func (s *LifecycleServiceSuite) TestSetStatusPersonNotFound() {
	_, err := s.service.SetStatus(s.GetContext(), "pers_missing", dto.SetStatusRequest{
		Status: types.PersonStatusInterview,
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *LifecycleServiceSuite) TestSetStatusUnknownStatus() {
	p := s.createPerson(types.PersonStatusCandidate, s.now)
	_, err := s.service.SetStatus(s.GetContext(), p.ID, dto.SetStatusRequest{
		Status: types.PersonStatus("fired"),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *LifecycleServiceSuite) TestSetStatusInactiveRequiresDetails() {
	cases := []struct {
		name    string
		details *dto.InactiveDetails
	}{
		{"missing details", nil},
		{"missing effective date", &dto.InactiveDetails{
			Reason:      types.InactiveReasonRenunciation,
			Description: "moved abroad",
		}},
		{"missing description", &dto.InactiveDetails{
			EffectiveDate: s.now,
			Reason:        types.InactiveReasonRenunciation,
		}},
		{"invalid reason", &dto.InactiveDetails{
			EffectiveDate: s.now,
			Reason:        types.InactiveReason("fired"),
			Description:   "moved abroad",
		}},
	}

	for _, tc := range cases {
		p := s.createPerson(types.PersonStatusEmployee, s.now)
		_, err := s.service.SetStatus(s.GetContext(), p.ID, dto.SetStatusRequest{
			Status:          types.PersonStatusInactive,
			InactiveDetails: tc.details,
		})
		s.Error(err, tc.name)
		s.True(ierr.IsValidation(err), tc.name)

		stored, err := s.GetStores().PersonRepo.Get(s.GetContext(), p.ID)
		s.NoError(err)
		s.Equal(types.PersonStatusEmployee, stored.PersonStatus, tc.name)
	}
}

func (s *LifecycleServiceSuite) TestSetStatusInactiveRecordsDetails() {
	p := s.createPerson(types.PersonStatusEmployee, s.now)
	effective := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	resp, err := s.service.SetStatus(s.GetContext(), p.ID, dto.SetStatusRequest{
		Status: types.PersonStatusInactive,
		InactiveDetails: &dto.InactiveDetails{
			EffectiveDate: effective,
			Reason:        types.InactiveReasonRenunciation,
			Description:   "accepted another offer",
		},
	})
	s.NoError(err)
	s.Equal(types.PersonStatusInactive, resp.PersonStatus)
	s.NotNil(resp.InactiveAt)
	s.True(effective.Equal(*resp.InactiveAt))
	s.NotNil(resp.InactiveReason)
	s.Equal(types.InactiveReasonRenunciation, *resp.InactiveReason)
	s.NotNil(resp.InactiveNote)
	s.Equal("accepted another offer", *resp.InactiveNote)
}

func (s *LifecycleServiceSuite) TestListByStatusPartitionsAndOrders() {
	// three candidates with distinct application dates, one employee
	oldest := s.createPerson(types.PersonStatusCandidate, s.now.AddDate(0, 0, -10))
	middle := s.createPerson(types.PersonStatusCandidate, s.now.AddDate(0, 0, -5))
	newest := s.createPerson(types.PersonStatusCandidate, s.now)
	s.createPerson(types.PersonStatusEmployee, s.now)

	resp, err := s.service.ListByStatus(s.GetContext(), types.PersonStatusCandidate, nil)
	s.NoError(err)
	s.Len(resp.Items, 3)
	s.Equal(3, resp.Pagination.Total)

	// newest application first
	s.Equal(newest.ID, resp.Items[0].ID)
	s.Equal(middle.ID, resp.Items[1].ID)
	s.Equal(oldest.ID, resp.Items[2].ID)

	resp, err = s.service.ListByStatus(s.GetContext(), types.PersonStatusEmployee, nil)
	s.NoError(err)
	s.Len(resp.Items, 1)

	resp, err = s.service.ListByStatus(s.GetContext(), types.PersonStatusInactive, nil)
	s.NoError(err)
	s.Len(resp.Items, 0)
}

func (s *LifecycleServiceSuite) TestListByStatusRejectsUnknownStatus() {
	_, err := s.service.ListByStatus(s.GetContext(), types.PersonStatus("archived"), nil)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *LifecycleServiceSuite) TestListByStatusScopedToTenant() {
	s.createPerson(types.PersonStatusCandidate, s.now)

	otherTenant := context.WithValue(s.GetContext(), types.CtxTenantID, "tenant_other")
	resp, err := s.service.ListByStatus(otherTenant, types.PersonStatusCandidate, nil)
	s.NoError(err)
	s.Len(resp.Items, 0)
}

func (s *LifecycleServiceSuite) TestCountByStatus() {
	s.createPerson(types.PersonStatusCandidate, s.now)
	s.createPerson(types.PersonStatusCandidate, s.now)
	s.createPerson(types.PersonStatusEmployee, s.now)

	s.Equal(2, s.service.CountByStatus(s.GetContext(), types.PersonStatusCandidate))
	s.Equal(1, s.service.CountByStatus(s.GetContext(), types.PersonStatusEmployee))
	s.Equal(0, s.service.CountByStatus(s.GetContext(), types.PersonStatusInactive))

	s.True(s.service.HasAnyWithStatus(s.GetContext(), types.PersonStatusCandidate))
	s.False(s.service.HasAnyWithStatus(s.GetContext(), types.PersonStatusInactive))
}

// failingCountPersonRepo fails every count to exercise the fail-open path.
type failingCountPersonRepo struct {
	person.Repository
}

func (r *failingCountPersonRepo) Count(ctx context.Context, filter *types.PersonFilter) (int, error) {
	return 0, ierr.NewError("count failed").Mark(ierr.ErrDatabase)
}

func (s *LifecycleServiceSuite) TestCountByStatusFailsOpen() {
	s.createPerson(types.PersonStatusCandidate, s.now)

	params := s.params()
	params.PersonRepo = &failingCountPersonRepo{Repository: params.PersonRepo}
	svc := NewLifecycleService(params)

	s.Equal(0, svc.CountByStatus(s.GetContext(), types.PersonStatusCandidate))
	s.False(svc.HasAnyWithStatus(s.GetContext(), types.PersonStatusCandidate))

	summary := svc.GetDashboardSummary(s.GetContext())
	s.Len(summary.Counts, 5)
	for _, c := range summary.Counts {
		s.Equal(0, c.Count)
	}
}

func (s *LifecycleServiceSuite) TestGetDashboardSummary() {
	s.createPerson(types.PersonStatusCandidate, s.now)
	s.createPerson(types.PersonStatusCandidate, s.now)
	s.createPerson(types.PersonStatusNewHire, s.now)

	summary := s.service.GetDashboardSummary(s.GetContext())
	s.Len(summary.Counts, 5)

	counts := make(map[types.PersonStatus]int)
	for _, c := range summary.Counts {
		counts[c.Status] = c.Count
	}
	s.Equal(2, counts[types.PersonStatusCandidate])
	s.Equal(0, counts[types.PersonStatusInterview])
	s.Equal(1, counts[types.PersonStatusNewHire])
	s.Equal(0, counts[types.PersonStatusEmployee])
	s.Equal(0, counts[types.PersonStatusInactive])
}

func (s *LifecycleServiceSuite) createPersonWithLicense(status types.PersonStatus, expiresAt *time.Time) *person.Person {
	p := s.createPerson(status, s.now)
	p.LicenseExpiresAt = expiresAt
	s.NoError(s.GetStores().PersonRepo.Update(s.GetContext(), p))
	return p
}

func (s *LifecycleServiceSuite) TestCheckExpiringCredentials() {
	in10 := s.now.AddDate(0, 0, 10)
	in40 := s.now.AddDate(0, 0, 40)
	past := s.now.AddDate(0, 0, -3)

	soon := s.createPersonWithLicense(types.PersonStatusEmployee, &in10)
	expired := s.createPersonWithLicense(types.PersonStatusNewHire, &past)
	s.createPersonWithLicense(types.PersonStatusEmployee, &in40)
	s.createPersonWithLicense(types.PersonStatusEmployee, nil)
	// candidates are outside the scan even with an imminent expiry
	s.createPersonWithLicense(types.PersonStatusCandidate, &in10)

	resp, err := s.service.CheckExpiringCredentials(s.GetContext(), 30)
	s.NoError(err)
	s.Equal(30, resp.WithinDays)
	s.Len(resp.Items, 2)

	// soonest expiry first, so the already-expired license leads
	s.Equal(expired.ID, resp.Items[0].PersonID)
	s.Equal(soon.ID, resp.Items[1].PersonID)
}

func (s *LifecycleServiceSuite) TestCheckExpiringCredentialsBoundary() {
	exactly := s.now.AddDate(0, 0, 30)
	justAfter := s.now.AddDate(0, 0, 30).Add(time.Second)

	onBoundary := s.createPersonWithLicense(types.PersonStatusEmployee, &exactly)
	s.createPersonWithLicense(types.PersonStatusEmployee, &justAfter)

	resp, err := s.service.CheckExpiringCredentials(s.GetContext(), 30)
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal(onBoundary.ID, resp.Items[0].PersonID)
}

func (s *LifecycleServiceSuite) TestCheckExpiringCredentialsZeroWindow() {
	past := s.now.AddDate(0, 0, -1)
	future := s.now.AddDate(0, 0, 1)

	expired := s.createPersonWithLicense(types.PersonStatusEmployee, &past)
	s.createPersonWithLicense(types.PersonStatusEmployee, &future)

	resp, err := s.service.CheckExpiringCredentials(s.GetContext(), 0)
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal(expired.ID, resp.Items[0].PersonID)
}

func (s *LifecycleServiceSuite) TestCheckExpiringCredentialsNegativeWindow() {
	_, err := s.service.CheckExpiringCredentials(s.GetContext(), -1)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}
