package dto

import (
	"time"

	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/types"
)

// InactiveDetails carries the mandatory metadata for a move to inactive.
type InactiveDetails struct {
	EffectiveDate time.Time            `json:"effective_date" binding:"required"`
	Reason        types.InactiveReason `json:"reason" binding:"required"`
	Description   string               `json:"description" binding:"required"`
}

func (d *InactiveDetails) Validate() error {
	if d.EffectiveDate.IsZero() {
		return ierr.NewError("effective_date is required").
			WithHint("An effective date is required when deactivating a person").
			Mark(ierr.ErrValidation)
	}
	if err := d.Reason.Validate(); err != nil {
		return err
	}
	if d.Description == "" {
		return ierr.NewError("description is required").
			WithHint("A description is required when deactivating a person").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// SetStatusRequest requests a lifecycle status change for a person.
type SetStatusRequest struct {
	Status          types.PersonStatus `json:"status" binding:"required"`
	InactiveDetails *InactiveDetails   `json:"inactive_details,omitempty"`
}

func (r *SetStatusRequest) Validate() error {
	if err := r.Status.Validate(); err != nil {
		return err
	}
	if r.Status == types.PersonStatusInactive {
		if r.InactiveDetails == nil {
			return ierr.NewError("inactive_details is required").
				WithHint("Deactivating a person requires an effective date, a reason and a description").
				Mark(ierr.ErrValidation)
		}
		return r.InactiveDetails.Validate()
	}
	return nil
}

// StatusCountResponse is one status partition's size.
type StatusCountResponse struct {
	Status types.PersonStatus `json:"status"`
	Count  int                `json:"count"`
}

// DashboardSummaryResponse aggregates the per-status counts the dashboard
// navigation shows. Counts are best effort; a failed count renders as zero.
type DashboardSummaryResponse struct {
	Counts []StatusCountResponse `json:"counts"`
}

// ExpiringCredentialResponse is one person whose driver's license expires
// inside the requested window.
type ExpiringCredentialResponse struct {
	PersonID         string             `json:"person_id"`
	FullName         string             `json:"full_name"`
	Status           types.PersonStatus `json:"status"`
	LicenseExpiresAt time.Time          `json:"license_expires_at"`
}

// ListExpiringCredentialsResponse lists people with expiring credentials.
type ListExpiringCredentialsResponse struct {
	Items      []*ExpiringCredentialResponse `json:"items"`
	WithinDays int                           `json:"within_days"`
}
