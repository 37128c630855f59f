package dto

import (
	"context"

	"github.com/hirestream/hirestream/internal/domain/company"
	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/types"
	"github.com/hirestream/hirestream/internal/validator"
)

// CreateCompanyRequest represents the request to create a new company
type CreateCompanyRequest struct {
	Name              string                    `json:"name" binding:"required" validate:"required"`
	ContactEmail      string                    `json:"contact_email" validate:"omitempty,email"`
	ContactPhone      string                    `json:"contact_phone"`
	Website           string                    `json:"website"`
	RequiredDocuments company.RequiredDocuments `json:"required_documents,omitempty"`
	FormVariant       string                    `json:"form_variant"`
}

func (r *CreateCompanyRequest) Validate() error {
	if r.Name == "" {
		return ierr.NewError("name cannot be empty").
			WithHint("Company name cannot be empty").
			Mark(ierr.ErrValidation)
	}
	for _, d := range r.RequiredDocuments {
		if err := d.Validate(); err != nil {
			return err
		}
	}
	return validator.ValidateRequest(r)
}

// ToCompany converts the request to a domain company
func (r *CreateCompanyRequest) ToCompany(ctx context.Context) *company.Company {
	return &company.Company{
		ID:                types.GenerateUUIDWithPrefix(types.UUID_PREFIX_COMPANY),
		Name:              r.Name,
		ContactEmail:      r.ContactEmail,
		ContactPhone:      r.ContactPhone,
		Website:           r.Website,
		RequiredDocuments: r.RequiredDocuments,
		FormVariant:       r.FormVariant,
		BaseModel:         types.GetDefaultBaseModel(ctx),
	}
}

// UpdateCompanyRequest updates a company's profile and requirements
type UpdateCompanyRequest struct {
	Name              *string                   `json:"name,omitempty"`
	ContactEmail      *string                   `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone      *string                   `json:"contact_phone,omitempty"`
	Website           *string                   `json:"website,omitempty"`
	RequiredDocuments company.RequiredDocuments `json:"required_documents,omitempty"`
	FormVariant       *string                   `json:"form_variant,omitempty"`
}

func (r *UpdateCompanyRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return ierr.NewError("name cannot be empty").
			WithHint("Company name cannot be set to an empty value").
			Mark(ierr.ErrValidation)
	}
	for _, d := range r.RequiredDocuments {
		if err := d.Validate(); err != nil {
			return err
		}
	}
	return validator.ValidateRequest(r)
}

// Apply copies the non-nil fields onto the company.
func (r *UpdateCompanyRequest) Apply(c *company.Company) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.ContactEmail != nil {
		c.ContactEmail = *r.ContactEmail
	}
	if r.ContactPhone != nil {
		c.ContactPhone = *r.ContactPhone
	}
	if r.Website != nil {
		c.Website = *r.Website
	}
	if r.RequiredDocuments != nil {
		c.RequiredDocuments = r.RequiredDocuments
	}
	if r.FormVariant != nil {
		c.FormVariant = *r.FormVariant
	}
}

// CompanyResponse represents a company in responses
type CompanyResponse struct {
	company.Company
	LogoURL string `json:"logo_url,omitempty"`
}

func NewCompanyResponse(c *company.Company) *CompanyResponse {
	if c == nil {
		return nil
	}
	return &CompanyResponse{Company: *c}
}

// ListCompaniesResponse represents the response for listing companies
type ListCompaniesResponse struct {
	Items      []*CompanyResponse       `json:"items"`
	Pagination types.PaginationResponse `json:"pagination"`
}
