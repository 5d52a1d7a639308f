package condcache

// Hooks are lightweight callbacks for high-signal events. Implementations
// MUST be cheap and non-blocking; the cache calls them on hot paths. Wrap
// with hooks/async for anything slower than a counter bump.
type Hooks interface {
	// Durable-tier I/O failed. The operation degraded (read -> miss,
	// write -> volatile-only) instead of propagating.
	DurableReadError(key string, err error)
	DurableWriteError(key string, err error)

	// A stored envelope failed to decode and was dropped.
	// tier is "volatile" or "durable".
	EntryDecodeError(tier, key string)

	// A stale cached body was served instead of failing the read.
	// reason is one of "fetch_error", "upstream_status", "body_read_error",
	// "meta_probe_error".
	ServedStale(key, reason string)

	// A revalidation round-trip completed. notModified is true for 304.
	Revalidated(key string, notModified bool)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) DurableReadError(string, error)  {}
func (NopHooks) DurableWriteError(string, error) {}
func (NopHooks) EntryDecodeError(string, string) {}
func (NopHooks) ServedStale(string, string)      {}
func (NopHooks) Revalidated(string, bool)        {}
