package volatile

import "sync"

// Map is the default volatile tier: a mutex-guarded map with lifetime tied
// to the owning process. One instance per cache.
type Map struct {
	mu sync.RWMutex
	m  map[string][]byte
}

var _ Store = (*Map)(nil)

func NewMap() *Map {
	return &Map{m: make(map[string][]byte)}
}

func (s *Map) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	v, ok := s.m[key]
	s.mu.RUnlock()
	return v, ok
}

func (s *Map) Set(key string, value []byte) {
	s.mu.Lock()
	s.m[key] = value
	s.mu.Unlock()
}

func (s *Map) Delete(key string) {
	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()
}

func (s *Map) Keys() []string {
	s.mu.RLock()
	out := make([]string, 0, len(s.m))
	for k := range s.m {
		out = append(out, k)
	}
	s.mu.RUnlock()
	return out
}

func (s *Map) Len() int {
	s.mu.RLock()
	n := len(s.m)
	s.mu.RUnlock()
	return n
}

func (s *Map) Reset() {
	s.mu.Lock()
	s.m = make(map[string][]byte)
	s.mu.Unlock()
}

func (s *Map) Close() error { return nil }
