package dto

// AdvisorSuggestionResponse is the document completeness advisor's verdict
// for a person. Advisory only; nothing in the lifecycle depends on it.
type AdvisorSuggestionResponse struct {
	PersonID         string   `json:"person_id"`
	MissingDocuments []string `json:"missing_documents"`
	Notes            string   `json:"notes,omitempty"`
}

// ExtractedFieldsResponse holds the fields the advisor extracted from an
// uploaded document, keyed by field name.
type ExtractedFieldsResponse struct {
	DocumentID string            `json:"document_id"`
	Fields     map[string]string `json:"fields"`
}
