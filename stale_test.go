package condcache

import (
	"testing"
	"time"
)

func TestIsStaleNilEntry(t *testing.T) {
	now := time.Now()
	for _, maxAge := range []time.Duration{AlwaysStale, time.Minute, NeverStale} {
		if !IsStale(nil, maxAge, now) {
			t.Fatalf("nil entry must be stale (maxAge=%v)", maxAge)
		}
	}
}

func TestIsStaleFlagOverridesAge(t *testing.T) {
	now := time.Now()
	e := &Entry{CachedAt: now.UnixMilli(), Stale: true} // age ~0
	for _, maxAge := range []time.Duration{AlwaysStale, time.Minute, NeverStale} {
		if !IsStale(e, maxAge, now) {
			t.Fatalf("flagged entry must be stale (maxAge=%v)", maxAge)
		}
	}
}

func TestIsStaleByAge(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	entryAged := func(age time.Duration) *Entry {
		return &Entry{CachedAt: now.Add(-age).UnixMilli()}
	}

	cases := []struct {
		name   string
		age    time.Duration
		maxAge time.Duration
		want   bool
	}{
		{"fresh_young", time.Second, time.Minute, false},
		{"fresh_at_boundary", time.Minute, time.Minute, false}, // stale only strictly past maxAge
		{"stale_past_boundary", time.Minute + time.Millisecond, time.Minute, true},
		{"always_stale_any_age", time.Millisecond, AlwaysStale, true},
		{"never_stale_huge_age", 100 * 365 * 24 * time.Hour, NeverStale, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsStale(entryAged(tc.age), tc.maxAge, now); got != tc.want {
				t.Fatalf("IsStale(age=%v, maxAge=%v) = %v, want %v", tc.age, tc.maxAge, got, tc.want)
			}
		})
	}
}
