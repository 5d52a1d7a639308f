// Package memkv implements the durable tier in process memory. Nothing
// survives a restart; useful for tests and for cache instances that need
// not persist.
package memkv

import (
	"context"
	"sync"

	"github.com/GovThePPL/candid-sub001/durable"
)

type Store struct {
	mu sync.RWMutex
	m  map[string][]byte
}

var _ durable.Store = (*Store)(nil)

func New() *Store {
	return &Store{m: make(map[string][]byte)}
}

func (s *Store) GetItem(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	v, ok := s.m[key]
	s.mu.RUnlock()
	return v, ok, nil
}

func (s *Store) SetItem(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	s.m[key] = value
	s.mu.Unlock()
	return nil
}

func (s *Store) RemoveItem(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()
	return nil
}

func (s *Store) MultiRemove(_ context.Context, keys []string) error {
	s.mu.Lock()
	for _, k := range keys {
		delete(s.m, k)
	}
	s.mu.Unlock()
	return nil
}

func (s *Store) GetAllKeys(_ context.Context) ([]string, error) {
	s.mu.RLock()
	out := make([]string, 0, len(s.m))
	for k := range s.m {
		out = append(out, k)
	}
	s.mu.RUnlock()
	return out, nil
}

func (s *Store) Close(context.Context) error { return nil }
