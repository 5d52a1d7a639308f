package condcache

import "encoding/json"

// Entry is the unit of storage: an opaque JSON payload plus the metadata the
// staleness policy and conditional revalidation need. The same envelope is
// serialized into both tiers.
type Entry struct {
	Data json.RawMessage `json:"data"`

	// CachedAt is the write time in milliseconds since epoch.
	CachedAt int64 `json:"cachedAt"`

	// Stale forces revalidation regardless of age. Flipped by Invalidate;
	// the payload stays serveable as a fallback.
	Stale bool `json:"stale,omitempty"`

	// Validators carried from the last successful response. Used to build
	// If-None-Match / If-Modified-Since on the next revalidation.
	ETag         string `json:"etag,omitempty"`
	LastModified string `json:"lastModified,omitempty"`
}

// Meta is the validator metadata recorded alongside a payload on Set.
type Meta struct {
	ETag         string
	LastModified string
}
