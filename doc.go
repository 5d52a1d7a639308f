// Package condcache implements the tiered read-through cache that sits
// between the app and its HTTP API: a volatile in-process tier over a durable
// key-value tier, with lazy staleness evaluation and conditional
// (ETag/Last-Modified) revalidation.
//
// Components:
//   - volatile.Store: synchronous in-process byte tier (locked map by
//     default; BigCache and Ristretto adapters available).
//   - durable.Store: persistent key-value collaborator (Redis, on-disk
//     files, or in-memory). All durable keys live under the cache namespace.
//   - codec.Codec: (de)serializes the Entry envelope (JSON by default;
//     msgpack and CBOR available).
//
// Read protocol (FetchWithCache):
//
//	fresh entry      -> served as-is, no network call
//	stale entry      -> conditional fetch (If-None-Match / If-Modified-Since)
//	304              -> cached body served, freshness window restarted
//	2xx              -> new body stored together with its validators
//	failure + cached -> stale body served (degraded, never a hard failure)
//	failure + cold   -> error surfaces to the caller
//
// The cache must never be the reason the app fails to render: durable-tier
// failures and corrupt payloads degrade to misses, and upstream failures
// degrade to stale data whenever any cached body exists.
package condcache
