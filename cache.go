package condcache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	c "github.com/GovThePPL/candid-sub001/codec"
	d "github.com/GovThePPL/candid-sub001/durable"
	v "github.com/GovThePPL/candid-sub001/volatile"
)

const defaultNamespace = "@cache:"

type cache struct {
	ns    string
	mem   v.Store
	dur   d.Store
	codec c.Codec[*Entry]
	log   Logger
	hooks Hooks
	now   func() time.Time

	coalesce bool
	flight   singleflight.Group
}

func newCache(opts Options) (*cache, error) {
	if opts.Durable == nil {
		return nil, fmt.Errorf("condcache: durable store is required")
	}

	cc := &cache{
		ns:       coalesce(opts.Namespace, defaultNamespace),
		dur:      opts.Durable,
		coalesce: !opts.DisableCoalescing,
	}

	// defaults
	if opts.Volatile != nil {
		cc.mem = opts.Volatile
	} else {
		cc.mem = v.NewMap()
	}
	if opts.Codec != nil {
		cc.codec = opts.Codec
	} else {
		cc.codec = c.JSON[*Entry]{}
	}
	cc.log = coalesce[Logger](opts.Logger, NopLogger{})
	cc.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	if opts.Now != nil {
		cc.now = opts.Now
	} else {
		cc.now = time.Now
	}

	return cc, nil
}

func (cc *cache) Close(ctx context.Context) error {
	if cc.mem != nil {
		_ = cc.mem.Close()
	}
	if cc.dur != nil {
		return cc.dur.Close(ctx)
	}
	return nil
}

func (cc *cache) Get(ctx context.Context, key string) (*Entry, bool) {
	if raw, ok := cc.mem.Get(key); ok {
		e, err := cc.codec.Decode(raw)
		if err == nil {
			return e, true
		}
		cc.mem.Delete(key) // self-heal corrupt
		cc.hooks.EntryDecodeError("volatile", key)
	}

	raw, ok, err := cc.dur.GetItem(ctx, cc.durableKey(key))
	if err != nil {
		// degraded to a miss; the cache must never fail a render
		cc.log.Warn("durable read failed", Fields{"key": key, "err": err})
		cc.hooks.DurableReadError(key, err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	e, err := cc.codec.Decode(raw)
	if err != nil {
		_ = cc.dur.RemoveItem(ctx, cc.durableKey(key)) // self-heal
		cc.hooks.EntryDecodeError("durable", key)
		return nil, false
	}
	cc.mem.Set(key, raw) // promote for repeat reads
	return e, true
}

func (cc *cache) Set(ctx context.Context, key string, data json.RawMessage, meta Meta) error {
	return cc.writeEntry(ctx, key, &Entry{
		Data:         data,
		CachedAt:     cc.now().UnixMilli(),
		ETag:         meta.ETag,
		LastModified: meta.LastModified,
	})
}

func (cc *cache) Invalidate(ctx context.Context, key string) error {
	e, ok := cc.Get(ctx, key)
	if !ok || e.Stale {
		return nil
	}
	e.Stale = true
	return cc.writeEntry(ctx, key, e)
}

func (cc *cache) InvalidateByPrefix(ctx context.Context, prefix string) error {
	seen := make(map[string]struct{})
	for _, k := range cc.mem.Keys() {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		seen[k] = struct{}{}
		if err := cc.Invalidate(ctx, k); err != nil {
			return err
		}
	}

	durKeys, err := cc.dur.GetAllKeys(ctx)
	if err != nil {
		cc.log.Warn("durable enumeration failed", Fields{"prefix": prefix, "err": err})
		cc.hooks.DurableReadError(prefix, err)
		return nil
	}
	for _, dk := range durKeys {
		k, ours := cc.logicalKey(dk)
		if !ours || !strings.HasPrefix(k, prefix) {
			continue
		}
		if _, done := seen[k]; done {
			continue
		}
		if err := cc.Invalidate(ctx, k); err != nil {
			return err
		}
	}
	return nil
}

func (cc *cache) Remove(ctx context.Context, key string) error {
	cc.mem.Delete(key)
	if err := cc.dur.RemoveItem(ctx, cc.durableKey(key)); err != nil {
		cc.log.Warn("durable remove failed", Fields{"key": key, "err": err})
		cc.hooks.DurableWriteError(key, err)
	}
	return nil
}

func (cc *cache) ClearAll(ctx context.Context) error {
	cc.mem.Reset()

	durKeys, err := cc.dur.GetAllKeys(ctx)
	if err != nil {
		cc.log.Warn("durable enumeration failed", Fields{"err": err})
		cc.hooks.DurableReadError("", err)
		return nil
	}
	var mine []string
	for _, dk := range durKeys {
		// only cache-owned keys; the durable store is shared with other
		// subsystems (auth tokens and the like)
		if strings.HasPrefix(dk, cc.ns) {
			mine = append(mine, dk)
		}
	}
	if len(mine) == 0 {
		return nil
	}
	if err := cc.dur.MultiRemove(ctx, mine); err != nil {
		cc.log.Warn("durable bulk remove failed", Fields{"count": len(mine), "err": err})
		cc.hooks.DurableWriteError("", err)
	}
	return nil
}

func (cc *cache) Stats(ctx context.Context) Stats {
	s := Stats{MemoryEntries: cc.mem.Len()}

	durKeys, err := cc.dur.GetAllKeys(ctx)
	if err != nil {
		cc.log.Warn("durable enumeration failed", Fields{"err": err})
		for _, k := range cc.mem.Keys() {
			if raw, ok := cc.mem.Get(k); ok {
				s.EstimatedSizeBytes += int64(len(raw))
			}
		}
		return s
	}

	counted := make(map[string]struct{})
	for _, dk := range durKeys {
		k, ours := cc.logicalKey(dk)
		if !ours {
			continue
		}
		s.StorageEntries++
		counted[k] = struct{}{}
		if raw, ok, err := cc.dur.GetItem(ctx, dk); err == nil && ok {
			s.EstimatedSizeBytes += int64(len(raw))
		}
	}
	// volatile-only residents (durable write failed or was pruned)
	for _, k := range cc.mem.Keys() {
		if _, dup := counted[k]; dup {
			continue
		}
		if raw, ok := cc.mem.Get(k); ok {
			s.EstimatedSizeBytes += int64(len(raw))
		}
	}
	return s
}

// writeEntry serializes once and writes through both tiers. The durable
// write is best-effort: on failure the volatile copy stays authoritative for
// the current process lifetime.
func (cc *cache) writeEntry(ctx context.Context, key string, e *Entry) error {
	raw, err := cc.codec.Encode(e)
	if err != nil {
		return err
	}
	cc.mem.Set(key, raw)
	if err := cc.dur.SetItem(ctx, cc.durableKey(key), raw); err != nil {
		cc.log.Warn("durable write failed", Fields{"key": key, "err": err})
		cc.hooks.DurableWriteError(key, err)
	}
	return nil
}

func (cc *cache) durableKey(key string) string {
	return cc.ns + key
}

// logicalKey strips the namespace from a durable key; ours=false for foreign
// keys sharing the same physical store.
func (cc *cache) logicalKey(durableKey string) (key string, ours bool) {
	if !strings.HasPrefix(durableKey, cc.ns) {
		return "", false
	}
	return durableKey[len(cc.ns):], true
}
