package dto

import (
	"github.com/hirestream/hirestream/internal/domain/company"
	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/types"
)

// IssueLinkRequest asks for a signed onboarding link for a person.
type IssueLinkRequest struct {
	PersonID string `json:"person_id" binding:"required"`
}

func (r *IssueLinkRequest) Validate() error {
	if r.PersonID == "" {
		return ierr.NewError("person_id cannot be empty").
			WithHint("An onboarding link must name the person it is for").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// IssueLinkResponse returns the signed token to embed in the link.
type IssueLinkResponse struct {
	PersonID string `json:"person_id"`
	Token    string `json:"token"`
}

// OnboardingPhaseResponse tells the onboarding UI which phase to render
// for the person behind a verified link: the current status plus the
// company's document requirements and what has been uploaded so far.
type OnboardingPhaseResponse struct {
	PersonID          string                    `json:"person_id"`
	FullName          string                    `json:"full_name"`
	Status            types.PersonStatus        `json:"status"`
	CompanyName       string                    `json:"company_name,omitempty"`
	RequiredDocuments company.RequiredDocuments `json:"required_documents,omitempty"`
	Documents         []*DocumentResponse       `json:"documents"`
}
