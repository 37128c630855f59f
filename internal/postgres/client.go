package postgres

import "context"

// IClient is the narrow database surface the service layer depends on.
// Repositories take the concrete *DB; services only need transaction
// scoping, which lets tests substitute an in-memory client.
type IClient interface {
	// WithTx wraps the given function in a transaction
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

var _ IClient = (*DB)(nil)

// NewClient exposes the DB through the IClient interface for DI.
func NewClient(db *DB) IClient {
	return db
}
