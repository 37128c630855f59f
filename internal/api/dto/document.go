package dto

import (
	"github.com/hirestream/hirestream/internal/domain/document"
	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/types"
)

// UploadDocumentRequest carries the metadata side of a multipart upload;
// the handler passes the file bytes to the service alongside it.
type UploadDocumentRequest struct {
	PersonID      string             `json:"person_id"`
	Slot          types.DocumentSlot `json:"slot"`
	RequirementID string             `json:"requirement_id,omitempty"`
	FileName      string             `json:"file_name"`
}

func (r *UploadDocumentRequest) Validate() error {
	if r.PersonID == "" {
		return ierr.NewError("person_id cannot be empty").
			WithHint("A document upload must name the person it belongs to").
			Mark(ierr.ErrValidation)
	}
	if err := r.Slot.Validate(); err != nil {
		return err
	}
	if r.FileName == "" {
		return ierr.NewError("file_name cannot be empty").
			WithHint("The uploaded file must have a name").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// DocumentResponse represents a document reference in responses
type DocumentResponse struct {
	document.Document
}

func NewDocumentResponse(d *document.Document) *DocumentResponse {
	if d == nil {
		return nil
	}
	return &DocumentResponse{Document: *d}
}

// ListDocumentsResponse represents the response for listing documents
type ListDocumentsResponse struct {
	Items []*DocumentResponse `json:"items"`
}

// DocumentContent is a retrieved file: the stored bytes plus the metadata
// needed to serve them.
type DocumentContent struct {
	Data        []byte
	ContentType string
	FileName    string
}
