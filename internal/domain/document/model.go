package document

import (
	"time"

	"github.com/hirestream/hirestream/internal/types"
)

// Document is a reference to an uploaded file stored in the object store.
// The row is the source of truth for the slot assignment; the bytes live
// behind StorageKey. Presence of a row implies the object exists, best
// effort only (uploads and deletes are not transactional across stores).
type Document struct {
	// ID is the unique identifier for the document
	ID string `db:"id" json:"id"`

	// PersonID is the owning person
	PersonID string `db:"person_id" json:"person_id"`

	// Slot is the named slot this document fills
	Slot types.DocumentSlot `db:"slot" json:"slot"`

	// RequirementID ties a required-slot document back to the company's
	// required-document definition it satisfies. Empty otherwise.
	RequirementID string `db:"requirement_id" json:"requirement_id"`

	// Title is the original file name as uploaded
	Title string `db:"title" json:"title"`

	// StorageKey is the opaque object-store key
	StorageKey string `db:"storage_key" json:"storage_key"`

	// ContentType is the sniffed MIME type of the stored bytes
	ContentType string `db:"content_type" json:"content_type"`

	// SizeBytes is the stored object size
	SizeBytes int64 `db:"size_bytes" json:"size_bytes"`

	// UploadedAt is when the upload completed
	UploadedAt time.Time `db:"uploaded_at" json:"uploaded_at"`

	types.BaseModel
}
