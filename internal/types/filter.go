package types

import (
	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/samber/lo"
)

const (
	FilterDefaultLimit = 50
	FilterDefaultSort  = "applied_at"
	FilterDefaultOrder = "desc"

	OrderDesc = "desc"
	OrderAsc  = "asc"
)

// BaseFilter defines common filtering capabilities
type BaseFilter interface {
	GetLimit() int
	GetOffset() int
	GetStatus() Status
	GetOrder() string
	Validate() error
	IsUnlimited() bool
}

// QueryFilter represents a generic query filter with optional fields
type QueryFilter struct {
	Limit  *int    `json:"limit,omitempty" form:"limit" validate:"omitempty,min=1,max=1000"`
	Offset *int    `json:"offset,omitempty" form:"offset" validate:"omitempty,min=0"`
	Status *Status `json:"status,omitempty" form:"status"`
	Order  *string `json:"order,omitempty" form:"order" validate:"omitempty,oneof=asc desc"`
}

// NewDefaultQueryFilter defines default values for query filters
func NewDefaultQueryFilter() *QueryFilter {
	return &QueryFilter{
		Limit:  lo.ToPtr(FilterDefaultLimit),
		Offset: lo.ToPtr(0),
		Status: lo.ToPtr(StatusPublished),
		Order:  lo.ToPtr(FilterDefaultOrder),
	}
}

// NewNoLimitQueryFilter returns a filter with no pagination limits
func NewNoLimitQueryFilter() *QueryFilter {
	return &QueryFilter{
		Limit:  nil,
		Offset: lo.ToPtr(0),
		Status: lo.ToPtr(StatusPublished),
		Order:  lo.ToPtr(FilterDefaultOrder),
	}
}

// IsUnlimited returns true if this is an unlimited query
func (f QueryFilter) IsUnlimited() bool {
	return f.Limit == nil
}

func (f QueryFilter) GetLimit() int {
	if f.IsUnlimited() {
		return 0
	}
	return *f.Limit
}

func (f QueryFilter) GetOffset() int {
	if f.Offset == nil {
		return 0
	}
	return *f.Offset
}

func (f QueryFilter) GetStatus() Status {
	if f.Status == nil {
		return StatusPublished
	}
	return *f.Status
}

func (f QueryFilter) GetOrder() string {
	if f.Order == nil {
		return FilterDefaultOrder
	}
	return *f.Order
}

func (f QueryFilter) Validate() error {
	if f.Limit != nil && (*f.Limit < 1 || *f.Limit > 1000) {
		return ierr.NewError("limit must be between 1 and 1000").
			WithHint("Please provide a valid limit").
			Mark(ierr.ErrValidation)
	}
	if f.Offset != nil && *f.Offset < 0 {
		return ierr.NewError("offset must be non-negative").
			WithHint("Please provide a valid offset").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// PersonFilter narrows person listings. Statuses is the status partition
// filter used by every dashboard view; ordering is always applied_at
// descending so all views stay behaviorally identical.
type PersonFilter struct {
	QueryFilter
	Statuses  []PersonStatus `json:"statuses,omitempty" form:"status"`
	CompanyID string         `json:"company_id,omitempty" form:"company_id"`
	PersonIDs []string       `json:"person_ids,omitempty"`
}

func NewPersonFilter() *PersonFilter {
	return &PersonFilter{QueryFilter: *NewDefaultQueryFilter()}
}

func NewNoLimitPersonFilter() *PersonFilter {
	return &PersonFilter{QueryFilter: *NewNoLimitQueryFilter()}
}

func (f PersonFilter) Validate() error {
	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}
	for _, s := range f.Statuses {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// DocumentFilter narrows document listings for a person.
type DocumentFilter struct {
	QueryFilter
	PersonID string        `json:"person_id,omitempty" form:"person_id"`
	Slot     *DocumentSlot `json:"slot,omitempty" form:"slot"`
}

func NewNoLimitDocumentFilter(personID string) *DocumentFilter {
	return &DocumentFilter{
		QueryFilter: *NewNoLimitQueryFilter(),
		PersonID:    personID,
	}
}

func (f DocumentFilter) Validate() error {
	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}
	if f.Slot != nil {
		return f.Slot.Validate()
	}
	return nil
}

// CompanyFilter narrows company listings.
type CompanyFilter struct {
	QueryFilter
	Name string `json:"name,omitempty" form:"name"`
}

func NewCompanyFilter() *CompanyFilter {
	return &CompanyFilter{QueryFilter: *NewDefaultQueryFilter()}
}
