// Package redis implements the durable tier on a Redis client.
package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"github.com/GovThePPL/candid-sub001/durable"
)

var ErrNilClient = errors.New("redis durable store: nil client")

const defaultScanCount = 256

type Store struct {
	rdb         goredis.UniversalClient
	closeClient bool
	scanCount   int64
}

var _ durable.Store = (*Store)(nil)

type Config struct {
	Client      goredis.UniversalClient
	CloseClient bool // set true only if this store exclusively owns the client

	// ScanCount is the COUNT hint for GetAllKeys SCAN pages; 0 => 256.
	ScanCount int64
}

func New(cfg Config) (*Store, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	sc := cfg.ScanCount
	if sc <= 0 {
		sc = defaultScanCount
	}
	return &Store{rdb: cfg.Client, closeClient: cfg.CloseClient, scanCount: sc}, nil
}

func (s *Store) GetItem(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return nil, false, nil // miss
	}
	if err != nil {
		return nil, false, err // transport/server error
	}
	return b, true, nil
}

// SetItem writes without a TTL: staleness is evaluated lazily by the cache
// and entries are removed only on explicit request.
func (s *Store) SetItem(ctx context.Context, key string, value []byte) error {
	return s.rdb.Set(ctx, key, value, 0).Err()
}

func (s *Store) RemoveItem(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}

func (s *Store) MultiRemove(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.rdb.Del(ctx, keys...).Err()
}

func (s *Store) GetAllKeys(ctx context.Context) ([]string, error) {
	var keys []string
	iter := s.rdb.Scan(ctx, 0, "*", s.scanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

// Close releases the underlying redis client only when this store owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (s *Store) Close(context.Context) error {
	if s.closeClient {
		if err := s.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}
