package company

import (
	"database/sql/driver"
	"encoding/json"

	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/types"
)

// Company represents a client company whose candidates and employees are
// managed through the platform.
type Company struct {
	// ID is the unique identifier for the company
	ID string `db:"id" json:"id"`

	// Name is the legal or display name of the company
	Name string `db:"name" json:"name"`

	// LogoKey is the object-store key of the company logo, if uploaded
	LogoKey string `db:"logo_key" json:"logo_key"`

	// Contact info
	ContactEmail string `db:"contact_email" json:"contact_email"`
	ContactPhone string `db:"contact_phone" json:"contact_phone"`
	Website      string `db:"website" json:"website"`

	// RequiredDocuments defines the documents the company expects from
	// every new hire. Stored as JSONB.
	RequiredDocuments RequiredDocuments `db:"required_documents" json:"required_documents"`

	// FormVariant selects a custom application-form variant, if any
	FormVariant string `db:"form_variant" json:"form_variant"`

	types.BaseModel
}

// RequiredDocument defines one document the company requires from new
// hires, either uploaded as a file or filled digitally during onboarding.
type RequiredDocument struct {
	ID    string                     `json:"id"`
	Label string                     `json:"label"`
	Type  types.RequiredDocumentType `json:"type"`
}

func (d RequiredDocument) Validate() error {
	if d.ID == "" || d.Label == "" {
		return ierr.NewError("required document needs an id and a label").
			WithHint("Each required document must have an id and a label").
			Mark(ierr.ErrValidation)
	}
	return d.Type.Validate()
}

// RequiredDocuments is a JSONB-backed list of required document definitions.
type RequiredDocuments []RequiredDocument

// Value implements driver.Valuer for JSONB storage
func (r RequiredDocuments) Value() (driver.Value, error) {
	if r == nil {
		return "[]", nil
	}
	return json.Marshal(r)
}

// Scan implements sql.Scanner for JSONB storage
func (r *RequiredDocuments) Scan(src interface{}) error {
	if src == nil {
		*r = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return ierr.NewError("unsupported type for required documents").
			Mark(ierr.ErrDatabase)
	}
	return json.Unmarshal(data, r)
}

// Labels returns the labels of all required documents, used to build the
// checklist handed to the document completeness advisor.
func (r RequiredDocuments) Labels() []string {
	labels := make([]string, 0, len(r))
	for _, d := range r {
		labels = append(labels, d.Label)
	}
	return labels
}
