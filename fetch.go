package condcache

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

// FetchFunc performs the upstream request. cond carries the validators from
// the cached entry; implementations should apply them so the upstream can
// answer 304. Timeout/cancellation semantics belong to the FetchFunc (and
// its ctx); the orchestrator simply awaits it.
type FetchFunc func(ctx context.Context, cond Conditional) (Response, error)

// FetchOptions tune a single FetchWithCache call.
type FetchOptions struct {
	// MaxAge bounds how old an entry may be and still be served without
	// revalidation. Use AlwaysStale (0) for live resources and NeverStale
	// for immutable ones.
	MaxAge time.Duration

	// ForceRefresh skips the fresh-hit short-circuit. Validators from the
	// existing entry are still sent, so the upstream may answer 304.
	ForceRefresh bool
}

// Result is the uniform orchestrator return. FromCache is true whenever the
// served bytes came out of the store rather than a fresh response body.
type Result struct {
	Data      json.RawMessage
	FromCache bool
}

// FetchWithCache is the conditional read-through orchestrator:
//
//  1. Fresh cached entry -> served immediately, no network.
//  2. Otherwise fetch with validators from the cached entry, if any.
//  3. 304 -> cached body served, freshness window restarted.
//  4. 2xx -> body stored with its validators, served as non-cached.
//  5. Any upstream failure -> stale cached body if one exists, else the
//     error (status failures as *StatusError, transport errors unchanged).
//
// Concurrent calls for the same stale key are coalesced into one upstream
// request unless Options.DisableCoalescing was set; every caller then shares
// the leader's Result.
func (cc *cache) FetchWithCache(ctx context.Context, key string, fetch FetchFunc, opts FetchOptions) (Result, error) {
	if !opts.ForceRefresh {
		if e, ok := cc.Get(ctx, key); ok && !IsStale(e, opts.MaxAge, cc.now()) {
			return Result{Data: e.Data, FromCache: true}, nil
		}
	}

	if !cc.coalesce {
		return cc.revalidate(ctx, key, fetch)
	}
	res, err, _ := cc.flight.Do(key, func() (any, error) {
		return cc.revalidate(ctx, key, fetch)
	})
	if err != nil {
		return Result{}, err
	}
	return res.(Result), nil
}

func (cc *cache) revalidate(ctx context.Context, key string, fetch FetchFunc) (Result, error) {
	entry, hasEntry := cc.Get(ctx, key)

	var cond Conditional
	if hasEntry {
		cond = Conditional{IfNoneMatch: entry.ETag, IfModifiedSince: entry.LastModified}
	}

	resp, err := fetch(ctx, cond)
	if err != nil {
		if hasEntry {
			cc.log.Debug("serving cached data after fetch error", Fields{"key": key, "err": err})
			cc.hooks.ServedStale(key, "fetch_error")
			return Result{Data: entry.Data, FromCache: true}, nil
		}
		// cold miss: surface the transport error unchanged so callers can
		// match on it
		return Result{}, err
	}
	defer closeUpstream(resp)

	status := resp.StatusCode()
	switch {
	case status == http.StatusNotModified:
		if !hasEntry {
			return Result{}, ErrNoCachedBody
		}
		// restart the freshness window; without this the entry would be
		// re-checked on the very next read
		if err := cc.Set(ctx, key, entry.Data, Meta{ETag: entry.ETag, LastModified: entry.LastModified}); err != nil {
			cc.log.Warn("freshness refresh failed", Fields{"key": key, "err": err})
		}
		cc.hooks.Revalidated(key, true)
		return Result{Data: entry.Data, FromCache: true}, nil

	case status >= 200 && status < 300:
		body, err := resp.Body()
		if err != nil {
			if hasEntry {
				cc.log.Debug("serving cached data after body read error", Fields{"key": key, "err": err})
				cc.hooks.ServedStale(key, "body_read_error")
				return Result{Data: entry.Data, FromCache: true}, nil
			}
			return Result{}, err
		}
		meta := Meta{ETag: resp.Header("ETag"), LastModified: resp.Header("Last-Modified")}
		if err := cc.Set(ctx, key, body, meta); err != nil {
			// the caller still gets the fresh body; only caching suffered
			cc.log.Warn("store after fetch failed", Fields{"key": key, "err": err})
		}
		cc.hooks.Revalidated(key, false)
		return Result{Data: body, FromCache: false}, nil

	default:
		if hasEntry {
			cc.log.Debug("serving cached data after upstream status", Fields{"key": key, "status": status})
			cc.hooks.ServedStale(key, "upstream_status")
			return Result{Data: entry.Data, FromCache: true}, nil
		}
		return Result{}, &StatusError{Status: status}
	}
}

// closeUpstream releases a response whose body was never consumed; without
// this, 304s and non-OK statuses would hold their connection open.
func closeUpstream(r Response) {
	if c, ok := r.(io.Closer); ok {
		_ = c.Close()
	}
}
