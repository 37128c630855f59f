package types

import (
	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/samber/lo"
)

// DocumentSlot identifies the named slot a document fills on a person
// record. A person holds at most one document per slot except for the
// required and misc slots which may hold many.
type DocumentSlot string

const (
	DocumentSlotResume         DocumentSlot = "resume"
	DocumentSlotDriversLicense DocumentSlot = "drivers_license"
	DocumentSlotIDCard         DocumentSlot = "id_card"
	DocumentSlotProofOfAddress DocumentSlot = "proof_of_address"
	DocumentSlotI9             DocumentSlot = "i9"
	DocumentSlotW4             DocumentSlot = "w4"
	DocumentSlotRequired       DocumentSlot = "required"
	DocumentSlotMisc           DocumentSlot = "misc"
)

func DocumentSlots() []DocumentSlot {
	return []DocumentSlot{
		DocumentSlotResume,
		DocumentSlotDriversLicense,
		DocumentSlotIDCard,
		DocumentSlotProofOfAddress,
		DocumentSlotI9,
		DocumentSlotW4,
		DocumentSlotRequired,
		DocumentSlotMisc,
	}
}

func (s DocumentSlot) String() string {
	return string(s)
}

// IsMulti reports whether the slot may hold more than one document.
func (s DocumentSlot) IsMulti() bool {
	return s == DocumentSlotRequired || s == DocumentSlotMisc
}

func (s DocumentSlot) Validate() error {
	if !lo.Contains(DocumentSlots(), s) {
		return ierr.NewError("invalid document slot").
			WithHint("Please provide a valid document slot").
			WithReportableDetails(map[string]any{
				"allowed": DocumentSlots(),
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// RequiredDocumentType distinguishes documents the candidate uploads from
// ones filled digitally in the onboarding flow.
type RequiredDocumentType string

const (
	RequiredDocumentTypeUpload  RequiredDocumentType = "upload"
	RequiredDocumentTypeDigital RequiredDocumentType = "digital"
)

func (t RequiredDocumentType) Validate() error {
	allowed := []RequiredDocumentType{
		RequiredDocumentTypeUpload,
		RequiredDocumentTypeDigital,
	}
	if !lo.Contains(allowed, t) {
		return ierr.NewError("invalid required document type").
			WithHint("Please provide a valid required document type").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
