// Package volatile defines the in-process cache tier.
//
// Implementations must be safe for concurrent use and byte-for-byte
// transparent: Get must return exactly the []byte previously passed to Set
// for the same key (no prepended metadata, no re-encoding). The tier is
// allowed to lose entries (process restart, eviction under pressure); the
// cache falls back to the durable tier on a miss.
package volatile

// Store is a synchronous byte store whose contents can be enumerated.
// Enumeration backs prefix invalidation and stats; Len backs stats only.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)

	// Keys returns a snapshot of the currently resident keys.
	Keys() []string

	// Len returns the number of resident entries.
	Len() int

	// Reset empties the tier.
	Reset()

	// Close releases resources.
	Close() error
}
