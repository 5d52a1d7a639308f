// Package ristretto adapts dgraph-io/ristretto as a cost-bounded volatile
// tier. Ristretto cannot enumerate its own contents, so the adapter keeps a
// side index of resident keys, pruned through OnEvict. Set waits for the
// write buffer to drain so a Set followed by a Get on the same key observes
// the written value.
package ristretto

import (
	"errors"
	"sync"

	rc "github.com/dgraph-io/ristretto"

	"github.com/GovThePPL/candid-sub001/volatile"
)

type Store struct {
	c *rc.Cache

	mu   sync.Mutex
	keys map[string]struct{}
}

var _ volatile.Store = (*Store)(nil)

type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	Metrics     bool
}

// item carries the original string key alongside the value so OnEvict can
// prune the index (ristretto only hands back the hashed key).
type item struct {
	key string
	val []byte
}

func New(cfg Config) (*Store, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto: invalid config")
	}
	s := &Store{keys: make(map[string]struct{})}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
		OnEvict: func(it *rc.Item) {
			e, ok := it.Value.(item)
			if !ok {
				return
			}
			s.mu.Lock()
			delete(s.keys, e.key)
			s.mu.Unlock()
		},
	})
	if err != nil {
		return nil, err
	}
	s.c = c
	return s, nil
}

func (s *Store) Get(key string) ([]byte, bool) {
	v, ok := s.c.Get(key)
	if !ok {
		return nil, false
	}
	e, ok := v.(item)
	if !ok {
		s.c.Del(key)
		return nil, false
	}
	return e.val, true
}

func (s *Store) Set(key string, value []byte) {
	if s.c.Set(key, item{key: key, val: value}, int64(len(value))) {
		s.mu.Lock()
		s.keys[key] = struct{}{}
		s.mu.Unlock()
	}
	s.c.Wait()
}

func (s *Store) Delete(key string) {
	s.c.Del(key)
	s.mu.Lock()
	delete(s.keys, key)
	s.mu.Unlock()
}

// Keys is advisory under eviction pressure: a key may appear here whose
// entry was just evicted. Callers already treat a failed Get as a miss.
func (s *Store) Keys() []string {
	s.mu.Lock()
	out := make([]string, 0, len(s.keys))
	for k := range s.keys {
		out = append(out, k)
	}
	s.mu.Unlock()
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	n := len(s.keys)
	s.mu.Unlock()
	return n
}

func (s *Store) Reset() {
	s.c.Clear()
	s.mu.Lock()
	s.keys = make(map[string]struct{})
	s.mu.Unlock()
}

func (s *Store) Close() error {
	s.c.Wait()
	s.c.Close()
	return nil
}

// Metrics exposes ristretto's own counters when Config.Metrics is set.
func (s *Store) Metrics() *rc.Metrics { return s.c.Metrics }
