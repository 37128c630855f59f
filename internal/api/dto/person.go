package dto

import (
	"context"
	"time"

	"github.com/hirestream/hirestream/internal/domain/person"
	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/types"
	"github.com/hirestream/hirestream/internal/validator"
)

// CreateApplicationRequest is the public application form payload. A
// submitted application always enters the lifecycle as a candidate.
type CreateApplicationRequest struct {
	FirstName         string         `json:"first_name" binding:"required" validate:"required"`
	MiddleName        string         `json:"middle_name"`
	LastName          string         `json:"last_name" binding:"required" validate:"required"`
	Email             string         `json:"email" binding:"required,email" validate:"required,email"`
	Phone             string         `json:"phone"`
	Position          string         `json:"position"`
	CompanyID         *string        `json:"company_id,omitempty"`
	AddressLine1      string         `json:"address_line1"`
	AddressLine2      string         `json:"address_line2"`
	AddressCity       string         `json:"address_city"`
	AddressState      string         `json:"address_state"`
	AddressPostalCode string         `json:"address_postal_code"`
	AddressCountry    string         `json:"address_country"`
	EmploymentHistory string         `json:"employment_history"`
	Education         string         `json:"education"`
	References        string         `json:"references"`
	LicenseExpiresAt  *time.Time     `json:"license_expires_at,omitempty"`
	Metadata          types.Metadata `json:"metadata,omitempty"`
}

func (r *CreateApplicationRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// ToPerson converts the request to a domain person entering as a candidate.
func (r *CreateApplicationRequest) ToPerson(ctx context.Context) *person.Person {
	return &person.Person{
		ID:                types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PERSON),
		FirstName:         r.FirstName,
		MiddleName:        r.MiddleName,
		LastName:          r.LastName,
		PersonStatus:      types.PersonStatusCandidate,
		CompanyID:         r.CompanyID,
		Email:             r.Email,
		Phone:             r.Phone,
		Position:          r.Position,
		AddressLine1:      r.AddressLine1,
		AddressLine2:      r.AddressLine2,
		AddressCity:       r.AddressCity,
		AddressState:      r.AddressState,
		AddressPostalCode: r.AddressPostalCode,
		AddressCountry:    r.AddressCountry,
		EmploymentHistory: r.EmploymentHistory,
		Education:         r.Education,
		References:        r.References,
		LicenseExpiresAt:  r.LicenseExpiresAt,
		Metadata:          r.Metadata,
		AppliedAt:         time.Now().UTC(),
		BaseModel:         types.GetDefaultBaseModel(ctx),
	}
}

// ImportEmployeeRequest creates a person who skips the funnel entirely and
// enters as an employee, e.g. staff hired before the platform existed.
type ImportEmployeeRequest struct {
	CreateApplicationRequest
	HiredAt *time.Time `json:"hired_at,omitempty"`
}

func (r *ImportEmployeeRequest) Validate() error {
	return r.CreateApplicationRequest.Validate()
}

func (r *ImportEmployeeRequest) ToPerson(ctx context.Context) *person.Person {
	p := r.CreateApplicationRequest.ToPerson(ctx)
	p.PersonStatus = types.PersonStatusEmployee
	if r.HiredAt != nil {
		p.AppliedAt = r.HiredAt.UTC()
	}
	return p
}

// UpdatePersonRequest updates the application payload of a person. Status
// is deliberately absent; status changes go through the status endpoint.
type UpdatePersonRequest struct {
	FirstName         *string        `json:"first_name,omitempty"`
	MiddleName        *string        `json:"middle_name,omitempty"`
	LastName          *string        `json:"last_name,omitempty"`
	Email             *string        `json:"email,omitempty" validate:"omitempty,email"`
	Phone             *string        `json:"phone,omitempty"`
	Position          *string        `json:"position,omitempty"`
	CompanyID         *string        `json:"company_id,omitempty"`
	AddressLine1      *string        `json:"address_line1,omitempty"`
	AddressLine2      *string        `json:"address_line2,omitempty"`
	AddressCity       *string        `json:"address_city,omitempty"`
	AddressState      *string        `json:"address_state,omitempty"`
	AddressPostalCode *string        `json:"address_postal_code,omitempty"`
	AddressCountry    *string        `json:"address_country,omitempty"`
	EmploymentHistory *string        `json:"employment_history,omitempty"`
	Education         *string        `json:"education,omitempty"`
	References        *string        `json:"references,omitempty"`
	LicenseExpiresAt  *time.Time     `json:"license_expires_at,omitempty"`
	Metadata          types.Metadata `json:"metadata,omitempty"`
}

func (r *UpdatePersonRequest) Validate() error {
	if r.Email != nil && *r.Email == "" {
		return ierr.NewError("email cannot be empty").
			WithHint("Email cannot be set to an empty value").
			Mark(ierr.ErrValidation)
	}
	return validator.ValidateRequest(r)
}

// Apply copies the non-nil fields onto the person.
func (r *UpdatePersonRequest) Apply(p *person.Person) {
	if r.FirstName != nil {
		p.FirstName = *r.FirstName
	}
	if r.MiddleName != nil {
		p.MiddleName = *r.MiddleName
	}
	if r.LastName != nil {
		p.LastName = *r.LastName
	}
	if r.Email != nil {
		p.Email = *r.Email
	}
	if r.Phone != nil {
		p.Phone = *r.Phone
	}
	if r.Position != nil {
		p.Position = *r.Position
	}
	if r.CompanyID != nil {
		p.CompanyID = r.CompanyID
	}
	if r.AddressLine1 != nil {
		p.AddressLine1 = *r.AddressLine1
	}
	if r.AddressLine2 != nil {
		p.AddressLine2 = *r.AddressLine2
	}
	if r.AddressCity != nil {
		p.AddressCity = *r.AddressCity
	}
	if r.AddressState != nil {
		p.AddressState = *r.AddressState
	}
	if r.AddressPostalCode != nil {
		p.AddressPostalCode = *r.AddressPostalCode
	}
	if r.AddressCountry != nil {
		p.AddressCountry = *r.AddressCountry
	}
	if r.EmploymentHistory != nil {
		p.EmploymentHistory = *r.EmploymentHistory
	}
	if r.Education != nil {
		p.Education = *r.Education
	}
	if r.References != nil {
		p.References = *r.References
	}
	if r.LicenseExpiresAt != nil {
		p.LicenseExpiresAt = r.LicenseExpiresAt
	}
	if r.Metadata != nil {
		p.Metadata = r.Metadata
	}
}

// PersonResponse represents a person in responses
type PersonResponse struct {
	person.Person
	FullName string `json:"full_name"`
}

func NewPersonResponse(p *person.Person) *PersonResponse {
	if p == nil {
		return nil
	}
	return &PersonResponse{
		Person:   *p,
		FullName: p.FullName(),
	}
}

// ListPersonsResponse represents the response for listing persons
type ListPersonsResponse struct {
	Items      []*PersonResponse        `json:"items"`
	Pagination types.PaginationResponse `json:"pagination"`
}
