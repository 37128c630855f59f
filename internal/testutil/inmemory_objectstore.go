package testutil

import (
	"context"
	"fmt"
	"sync"

	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/objectstore"
)

var _ objectstore.Service = (*InMemoryObjectStore)(nil)

// InMemoryObjectStore is an in-memory implementation of the object store
type InMemoryObjectStore struct {
	mu      sync.RWMutex
	objects map[string]*objectstore.Object
}

// NewInMemoryObjectStore creates a new in-memory object store
func NewInMemoryObjectStore() *InMemoryObjectStore {
	return &InMemoryObjectStore{
		objects: make(map[string]*objectstore.Object),
	}
}

func objectKey(kind objectstore.ObjectKind, key string) string {
	return fmt.Sprintf("%s/%s", kind, key)
}

func (s *InMemoryObjectStore) Upload(ctx context.Context, object *objectstore.Object) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[objectKey(object.Kind, object.Key)] = object
	return nil
}

func (s *InMemoryObjectStore) Get(ctx context.Context, kind objectstore.ObjectKind, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, exists := s.objects[objectKey(kind, key)]
	if !exists {
		return nil, ierr.NewError("object not found").
			WithHintf("no object stored under key %s", key).
			Mark(ierr.ErrNotFound)
	}
	return o.Data, nil
}

func (s *InMemoryObjectStore) GetPresignedURL(ctx context.Context, kind objectstore.ObjectKind, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, exists := s.objects[objectKey(kind, key)]; !exists {
		return "", ierr.NewError("object not found").
			Mark(ierr.ErrNotFound)
	}
	return fmt.Sprintf("https://objects.local/%s/%s", kind, key), nil
}

func (s *InMemoryObjectStore) Exists(ctx context.Context, kind objectstore.ObjectKind, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.objects[objectKey(kind, key)]
	return exists, nil
}

func (s *InMemoryObjectStore) Delete(ctx context.Context, kind objectstore.ObjectKind, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, objectKey(kind, key))
	return nil
}

// Len reports the number of stored objects
func (s *InMemoryObjectStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
