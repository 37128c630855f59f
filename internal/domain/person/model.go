package person

import (
	"time"

	"github.com/hirestream/hirestream/internal/types"
)

// Person represents an individual tracked through the onboarding and
// employment lifecycle. One evolving record covers candidates, interviews,
// new hires, employees and inactive people; PersonStatus tells them apart.
type Person struct {
	// ID is the unique identifier for the person
	ID string `db:"id" json:"id"`

	// FirstName is the person's first name
	FirstName string `db:"first_name" json:"first_name"`

	// MiddleName is the person's middle name, if any
	MiddleName string `db:"middle_name" json:"middle_name"`

	// LastName is the person's last name
	LastName string `db:"last_name" json:"last_name"`

	// PersonStatus is the onboarding lifecycle status. All reads and
	// writes go through the lifecycle service; nothing else mutates it.
	PersonStatus types.PersonStatus `db:"person_status" json:"person_status"`

	// CompanyID associates the person with a company. Nil for legacy or
	// demo records imported before companies existed.
	CompanyID *string `db:"company_id" json:"company_id"`

	// Application payload. Opaque to the lifecycle manager.
	Email             string         `db:"email" json:"email"`
	Phone             string         `db:"phone" json:"phone"`
	Position          string         `db:"position" json:"position"`
	AddressLine1      string         `db:"address_line1" json:"address_line1"`
	AddressLine2      string         `db:"address_line2" json:"address_line2"`
	AddressCity       string         `db:"address_city" json:"address_city"`
	AddressState      string         `db:"address_state" json:"address_state"`
	AddressPostalCode string         `db:"address_postal_code" json:"address_postal_code"`
	AddressCountry    string         `db:"address_country" json:"address_country"`
	EmploymentHistory string         `db:"employment_history" json:"employment_history"`
	Education         string         `db:"education" json:"education"`
	References        string         `db:"references" json:"references"`
	Metadata          types.Metadata `db:"metadata" json:"metadata"`

	// LicenseExpiresAt is the driver's-license expiry date, if captured.
	// Records without one are never considered expiring.
	LicenseExpiresAt *time.Time `db:"license_expires_at" json:"license_expires_at"`

	// AppliedAt is the application/creation date and the ordering key for
	// every status-partitioned listing.
	AppliedAt time.Time `db:"applied_at" json:"applied_at"`

	// Inactive metadata, set only when the person is moved to inactive.
	InactiveAt     *time.Time            `db:"inactive_at" json:"inactive_at,omitempty"`
	InactiveReason *types.InactiveReason `db:"inactive_reason" json:"inactive_reason,omitempty"`
	InactiveNote   *string               `db:"inactive_note" json:"inactive_note,omitempty"`

	types.BaseModel
}

// FullName returns the display name with the middle name elided when empty.
func (p *Person) FullName() string {
	name := p.FirstName
	if p.MiddleName != "" {
		name += " " + p.MiddleName
	}
	if p.LastName != "" {
		name += " " + p.LastName
	}
	return name
}

// LicenseExpiresWithin reports whether the license expiry falls inside the
// window [now, now+withinDays]. Already-expired licenses count as expiring.
func (p *Person) LicenseExpiresWithin(now time.Time, withinDays int) bool {
	if p.LicenseExpiresAt == nil {
		return false
	}
	deadline := now.AddDate(0, 0, withinDays)
	return !p.LicenseExpiresAt.After(deadline)
}
