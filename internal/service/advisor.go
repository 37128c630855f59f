package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hirestream/hirestream/internal/api/dto"
	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/objectstore"
	"github.com/hirestream/hirestream/internal/types"
)

// AdvisorService is the document completeness advisor. It is strictly
// advisory: its output never gates a lifecycle transition, and when the
// collaborator is down callers get an explicit error rather than a guess.
type AdvisorService interface {
	SuggestMissingDocuments(ctx context.Context, personID string) (*dto.AdvisorSuggestionResponse, error)
	ExtractDocumentFields(ctx context.Context, documentID string) (*dto.ExtractedFieldsResponse, error)
}

type advisorService struct {
	ServiceParams
}

func NewAdvisorService(params ServiceParams) AdvisorService {
	return &advisorService{ServiceParams: params}
}

type suggestionPayload struct {
	MissingDocuments []string `json:"missing_documents"`
	Notes            string   `json:"notes"`
}

// SuggestMissingDocuments compares what the person's company requires
// against what has been uploaded and asks the collaborator which
// requirements look unmet.
func (s *advisorService) SuggestMissingDocuments(ctx context.Context, personID string) (*dto.AdvisorSuggestionResponse, error) {
	if s.LLM == nil {
		return nil, s.unavailable()
	}

	p, err := s.PersonRepo.Get(ctx, personID)
	if err != nil {
		return nil, err
	}

	var required []string
	if p.CompanyID != nil {
		c, err := s.CompanyRepo.Get(ctx, *p.CompanyID)
		if err != nil {
			return nil, err
		}
		required = c.RequiredDocuments.Labels()
	}

	docs, err := s.DocumentRepo.List(ctx, types.NewNoLimitDocumentFilter(p.ID))
	if err != nil {
		return nil, err
	}

	uploaded := make([]string, 0, len(docs))
	for _, d := range docs {
		uploaded = append(uploaded, fmt.Sprintf("%s (slot: %s)", d.Title, d.Slot))
	}

	prompt := buildSuggestionPrompt(required, uploaded)
	raw, err := s.LLM.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var payload suggestionPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, ierr.WithError(err).
			WithHint("The document analysis collaborator returned an unreadable response").
			Mark(ierr.ErrHTTPClient)
	}

	return &dto.AdvisorSuggestionResponse{
		PersonID:         p.ID,
		MissingDocuments: payload.MissingDocuments,
		Notes:            payload.Notes,
	}, nil
}

// ExtractDocumentFields feeds a stored document to the collaborator and
// returns any fields it can read, e.g. a license number and expiry date.
func (s *advisorService) ExtractDocumentFields(ctx context.Context, documentID string) (*dto.ExtractedFieldsResponse, error) {
	if s.LLM == nil {
		return nil, s.unavailable()
	}

	d, err := s.DocumentRepo.Get(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if s.ObjectStore == nil {
		return nil, ierr.NewError("object store is not configured").
			WithHint("File storage is not enabled on this deployment").
			Mark(ierr.ErrSystem)
	}

	data, err := s.ObjectStore.Get(ctx, objectstore.ObjectKindDocument, d.StorageKey)
	if err != nil {
		return nil, err
	}

	prompt := `Extract every identifiable field from this document as a flat JSON object ` +
		`of string keys to string values. Use snake_case keys. Dates as YYYY-MM-DD. ` +
		`Return only the JSON object.`

	raw, err := s.LLM.GenerateJSONFromFile(ctx, prompt, data, d.ContentType)
	if err != nil {
		return nil, err
	}

	var fields map[string]string
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, ierr.WithError(err).
			WithHint("The document analysis collaborator returned an unreadable response").
			Mark(ierr.ErrHTTPClient)
	}

	return &dto.ExtractedFieldsResponse{
		DocumentID: d.ID,
		Fields:     fields,
	}, nil
}

func (s *advisorService) unavailable() error {
	return ierr.NewError("document analysis collaborator is not configured").
		WithHint("The document analysis collaborator is unavailable").
		Mark(ierr.ErrHTTPClient)
}

func buildSuggestionPrompt(required, uploaded []string) string {
	var b strings.Builder
	b.WriteString("You review onboarding document checklists.\n\n")
	b.WriteString("Required documents:\n")
	if len(required) == 0 {
		b.WriteString("- (none defined)\n")
	}
	for _, r := range required {
		b.WriteString("- " + r + "\n")
	}
	b.WriteString("\nUploaded documents:\n")
	if len(uploaded) == 0 {
		b.WriteString("- (none)\n")
	}
	for _, u := range uploaded {
		b.WriteString("- " + u + "\n")
	}
	b.WriteString("\nRespond with a JSON object: " +
		`{"missing_documents": ["<required documents with no plausible upload>"], "notes": "<one short sentence>"}`)
	return b.String()
}
