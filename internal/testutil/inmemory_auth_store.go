package testutil

import (
	"context"
	"sync"

	"github.com/hirestream/hirestream/internal/domain/auth"
	ierr "github.com/hirestream/hirestream/internal/errors"
)

// InMemoryAuthStore is an in-memory implementation of the auth repository
type InMemoryAuthStore struct {
	mu    sync.Mutex
	auths map[string]*auth.Auth
}

// NewInMemoryAuthStore creates a new instance of InMemoryAuthStore
func NewInMemoryAuthStore() *InMemoryAuthStore {
	return &InMemoryAuthStore{
		auths: make(map[string]*auth.Auth),
	}
}

func (r *InMemoryAuthStore) CreateAuth(ctx context.Context, a *auth.Auth) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.auths[a.UserID]; exists {
		return ierr.NewError("auth record already exists").
			Mark(ierr.ErrAlreadyExists)
	}
	r.auths[a.UserID] = a
	return nil
}

func (r *InMemoryAuthStore) GetAuthByUserID(ctx context.Context, userID string) (*auth.Auth, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, exists := r.auths[userID]
	if !exists {
		return nil, ierr.NewError("auth record not found").
			WithHint("No credentials exist for this user").
			Mark(ierr.ErrNotFound)
	}
	return a, nil
}

func (r *InMemoryAuthStore) UpdateAuth(ctx context.Context, a *auth.Auth) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.auths[a.UserID]; !exists {
		return ierr.NewError("auth record not found").
			Mark(ierr.ErrNotFound)
	}
	r.auths[a.UserID] = a
	return nil
}

func (r *InMemoryAuthStore) DeleteAuth(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.auths[userID]; !exists {
		return ierr.NewError("auth record not found").
			Mark(ierr.ErrNotFound)
	}
	delete(r.auths, userID)
	return nil
}
