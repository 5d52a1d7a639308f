// Package bigcache adapts allegro/bigcache as a volatile tier for workloads
// where the default map would grow without bound. Entries age out with the
// configured LifeWindow; the cache treats an aged-out entry as a volatile
// miss and falls back to the durable tier.
package bigcache

import (
	"time"

	bc "github.com/allegro/bigcache/v3"

	"github.com/GovThePPL/candid-sub001/volatile"
)

type Store struct {
	c *bc.BigCache
}

var _ volatile.Store = (*Store)(nil)

type Config struct {
	LifeWindow         time.Duration
	CleanWindow        time.Duration
	MaxEntriesInWindow int
	MaxEntrySize       int
	HardMaxCacheSizeMB int // ~ memory limit; 0 = unlimited
}

func New(cfg Config) (*Store, error) {
	conf := bc.DefaultConfig(cfg.LifeWindow)
	if cfg.CleanWindow > 0 {
		conf.CleanWindow = cfg.CleanWindow
	}
	if cfg.MaxEntriesInWindow > 0 {
		conf.MaxEntriesInWindow = cfg.MaxEntriesInWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	c, err := bc.NewBigCache(conf)
	if err != nil {
		return nil, err
	}
	return &Store{c: c}, nil
}

func (s *Store) Get(key string) ([]byte, bool) {
	b, err := s.c.Get(key)
	if err != nil {
		return nil, false
	}
	return b, true
}

func (s *Store) Set(key string, value []byte) {
	// Rejected writes (entry larger than a shard) degrade to a durable-only
	// entry, which the cache tolerates.
	_ = s.c.Set(key, value)
}

func (s *Store) Delete(key string) {
	_ = s.c.Delete(key)
}

func (s *Store) Keys() []string {
	var keys []string
	it := s.c.Iterator()
	for it.SetNext() {
		e, err := it.Value()
		if err != nil {
			continue
		}
		keys = append(keys, e.Key())
	}
	return keys
}

func (s *Store) Len() int { return s.c.Len() }

func (s *Store) Reset() { _ = s.c.Reset() }

func (s *Store) Close() error { return s.c.Close() }
