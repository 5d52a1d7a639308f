package condcache

import (
	"context"
	"encoding/json"
	"time"

	c "github.com/GovThePPL/candid-sub001/codec"
	d "github.com/GovThePPL/candid-sub001/durable"
	v "github.com/GovThePPL/candid-sub001/volatile"
)

// Cache is the tiered read-through cache. Store operations (Get through
// Stats) manage entries directly; the two Fetch orchestrators wrap them into
// the full revalidation protocol.
type Cache interface {
	// Get returns the entry for key, or (nil, false) on a miss. Volatile
	// tier first; durable tier on a volatile miss, promoting the result.
	// Durable failures and corrupt payloads degrade to a miss - Get is
	// never the reason a read fails.
	Get(ctx context.Context, key string) (*Entry, bool)

	// Set records data under key with cachedAt = now, writing through both
	// tiers. A durable-tier write failure is best-effort and does not
	// propagate; the volatile tier stays authoritative for this process.
	Set(ctx context.Context, key string, data json.RawMessage, meta Meta) error

	// Invalidate flags the entry stale without discarding its payload, so
	// it remains available as a revalidation fallback. No-op on a miss.
	Invalidate(ctx context.Context, key string) error

	// InvalidateByPrefix applies Invalidate semantics to every key in
	// either tier whose logical key starts with prefix.
	InvalidateByPrefix(ctx context.Context, prefix string) error

	// Remove deletes the entry from both tiers; a subsequent Get is a
	// clean miss.
	Remove(ctx context.Context, key string) error

	// ClearAll empties the volatile tier and bulk-deletes every durable
	// key under the cache namespace, leaving foreign keys untouched.
	ClearAll(ctx context.Context) error

	// Stats reports entry counts per tier and a best-effort size estimate.
	Stats(ctx context.Context) Stats

	// FetchWithCache implements the conditional read-through protocol.
	FetchWithCache(ctx context.Context, key string, fetch FetchFunc, opts FetchOptions) (Result, error)

	// FetchWithMetadataCheck gates an expensive fetch behind a cheap
	// metadata probe.
	FetchWithMetadataCheck(ctx context.Context, key string, meta MetadataFunc, full FullFetchFunc, shouldRefresh RefreshPredicate) (Result, error)

	// Close releases both tiers.
	Close(ctx context.Context) error
}

// Stats is a diagnostic snapshot; EstimatedSizeBytes sums serialized entry
// sizes and is not byte-exact.
type Stats struct {
	MemoryEntries      int
	StorageEntries     int
	EstimatedSizeBytes int64
}

// Options configure a cache instance. Only Durable is required.
type Options struct {
	// Required. Persistent tier shared across process restarts.
	Durable d.Store

	Volatile  v.Store         // nil => volatile.NewMap()
	Codec     c.Codec[*Entry] // nil => codec.JSON[*Entry]{}
	Namespace string          // durable key prefix; "" => "@cache:"

	Logger Logger // nil => NopLogger
	Hooks  Hooks  // nil => NopHooks

	// Now overrides the clock, for tests. nil => time.Now.
	Now func() time.Time

	// DisableCoalescing turns off per-key de-duplication of concurrent
	// revalidations. With coalescing off, two callers hitting the same
	// stale key both go upstream and the later Set wins.
	DisableCoalescing bool
}

func New(opts Options) (Cache, error) {
	return newCache(opts)
}
