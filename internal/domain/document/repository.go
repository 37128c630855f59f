package document

import (
	"context"

	"github.com/hirestream/hirestream/internal/types"
)

// Repository defines the interface for document reference data access
type Repository interface {
	Create(ctx context.Context, document *Document) error
	Get(ctx context.Context, id string) (*Document, error)
	GetByStorageKey(ctx context.Context, storageKey string) (*Document, error)
	List(ctx context.Context, filter *types.DocumentFilter) ([]*Document, error)
	Update(ctx context.Context, document *Document) error
	Delete(ctx context.Context, id string) error
}
