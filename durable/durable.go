// Package durable defines the persistent key-value collaborator backing the
// cache's durable tier: the only state that survives process restarts.
//
// Every key the cache writes through this interface carries the cache
// namespace prefix (default "@cache:"), so GetAllKeys-based enumeration can
// safely skip foreign keys (auth tokens and the like) that share the same
// physical store. External code must not write under the cache namespace.
package durable

import "context"

// Store is an asynchronous key-value store. Implementations must be safe for
// concurrent use and byte-for-byte transparent: GetItem returns exactly the
// []byte previously passed to SetItem.
type Store interface {
	// GetItem returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// IO/remote errors are returned as (nil, false, err).
	GetItem(ctx context.Context, key string) ([]byte, bool, error)

	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key string, value []byte) error

	// RemoveItem deletes a key (absent key is not an error).
	RemoveItem(ctx context.Context, key string) error

	// MultiRemove deletes every listed key, best-effort.
	MultiRemove(ctx context.Context, keys []string) error

	// GetAllKeys enumerates every key in the store, cache-owned or not.
	// The caller filters by namespace.
	GetAllKeys(ctx context.Context) ([]string, error)

	// Close releases resources.
	Close(ctx context.Context) error
}
