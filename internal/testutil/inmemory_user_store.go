package testutil

import (
	"context"
	"sync"

	"github.com/hirestream/hirestream/internal/domain/user"
	ierr "github.com/hirestream/hirestream/internal/errors"
)

// InMemoryUserStore is an in-memory implementation of the user repository
type InMemoryUserStore struct {
	mu    sync.Mutex
	users map[string]*user.User
}

// NewInMemoryUserStore creates a new instance of InMemoryUserStore
func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{
		users: make(map[string]*user.User),
	}
}

func (r *InMemoryUserStore) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[u.Email]; exists {
		return ierr.NewError("user already exists").
			WithHint("An account with this email already exists").
			Mark(ierr.ErrAlreadyExists)
	}

	r.users[u.Email] = u
	return nil
}

func (r *InMemoryUserStore) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, exists := r.users[email]
	if !exists {
		return nil, ierr.NewError("user not found").
			WithHint("User not found").
			Mark(ierr.ErrNotFound)
	}
	return u, nil
}

func (r *InMemoryUserStore) GetByID(ctx context.Context, userID string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, ierr.NewError("user not found").
		WithHint("User not found").
		Mark(ierr.ErrNotFound)
}
