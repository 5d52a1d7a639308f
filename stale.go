package condcache

import "time"

// IsStale reports whether entry must be revalidated before being trusted.
// Pure: no I/O, deterministic given now.
//
//	nil entry          -> stale (nothing to serve)
//	entry.Stale        -> stale, irrespective of age
//	age > maxAge       -> stale
//	otherwise          -> fresh
//
// maxAge of AlwaysStale (0) makes any aged entry stale; NeverStale makes age
// irrelevant.
func IsStale(entry *Entry, maxAge time.Duration, now time.Time) bool {
	if entry == nil {
		return true
	}
	if entry.Stale {
		return true
	}
	return now.Sub(time.UnixMilli(entry.CachedAt)) > maxAge
}
