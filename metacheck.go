package condcache

import "context"

// MetadataFunc is the cheap probe (e.g. {count, lastUpdatedTime}) for a
// resource that also has an expensive full endpoint.
type MetadataFunc func(ctx context.Context) ([]byte, error)

// FullFetchFunc is the expensive full fetch, returning the parsed-JSON
// payload to store.
type FullFetchFunc func(ctx context.Context) ([]byte, error)

// RefreshPredicate decides from the probe result and the cached entry
// whether the full fetch is worth paying for.
type RefreshPredicate func(metadata []byte, entry *Entry) bool

// FetchWithMetadataCheck gates the full fetch behind the metadata probe.
// With no cached entry the probe is skipped entirely (there is nothing to
// validate against) and the full fetch runs. A probe failure is advisory,
// never load-bearing: the cached data is served instead of failing the read.
func (cc *cache) FetchWithMetadataCheck(ctx context.Context, key string, meta MetadataFunc, full FullFetchFunc, shouldRefresh RefreshPredicate) (Result, error) {
	entry, ok := cc.Get(ctx, key)
	if !ok {
		data, err := full(ctx)
		if err != nil {
			return Result{}, err
		}
		if err := cc.Set(ctx, key, data, Meta{}); err != nil {
			cc.log.Warn("store after full fetch failed", Fields{"key": key, "err": err})
		}
		return Result{Data: data, FromCache: false}, nil
	}

	md, err := meta(ctx)
	if err != nil {
		cc.log.Debug("metadata probe failed; serving cached data", Fields{"key": key, "err": err})
		cc.hooks.ServedStale(key, "meta_probe_error")
		return Result{Data: entry.Data, FromCache: true}, nil
	}

	if !shouldRefresh(md, entry) {
		return Result{Data: entry.Data, FromCache: true}, nil
	}

	data, err := full(ctx)
	if err != nil {
		cc.log.Debug("serving cached data after full fetch error", Fields{"key": key, "err": err})
		cc.hooks.ServedStale(key, "fetch_error")
		return Result{Data: entry.Data, FromCache: true}, nil
	}
	if err := cc.Set(ctx, key, data, Meta{}); err != nil {
		cc.log.Warn("store after full fetch failed", Fields{"key": key, "err": err})
	}
	return Result{Data: data, FromCache: false}, nil
}
