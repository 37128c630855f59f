package company

import (
	"context"

	"github.com/hirestream/hirestream/internal/types"
)

// Repository defines the interface for company data access
type Repository interface {
	Create(ctx context.Context, company *Company) error
	Get(ctx context.Context, id string) (*Company, error)
	// GetPublic resolves a company by ID without tenant scoping. Used on the
	// public application route, where the caller has no tenant of its own yet.
	GetPublic(ctx context.Context, id string) (*Company, error)
	List(ctx context.Context, filter *types.CompanyFilter) ([]*Company, error)
	Count(ctx context.Context, filter *types.CompanyFilter) (int, error)
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, id string) error
}
