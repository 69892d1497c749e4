package kvstore

import (
	"context"
	"sync"

	kvstoreport "github.com/roamplan/travel-planner-api/internal/ports/out/kvstore"
)

// Store is an in-memory implementation of kvstore.Store.
// It is safe for concurrent use.
type Store struct {
	mu sync.RWMutex
	m  map[string]string
}

func NewStore() *Store {
	return &Store{m: make(map[string]string)}
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

var _ kvstoreport.Store = (*Store)(nil)
