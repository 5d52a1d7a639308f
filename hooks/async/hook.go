// Package asynchook moves Hooks dispatch off the cache hot path: events are
// queued to worker goroutines and dropped when the queue is full.
//
// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    ServedStaleEvery: 10, // sample logs: ~every 10th stale serve
//	})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	cache, _ := condcache.New(condcache.Options{
//	    Durable: store,
//	    Hooks:   hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	condcache "github.com/GovThePPL/candid-sub001"
)

type Hooks struct {
	inner condcache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ condcache.Hooks = (*Hooks)(nil)

func New(inner condcache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) DurableReadError(k string, err error) {
	h.try(func() { h.inner.DurableReadError(k, err) })
}
func (h *Hooks) DurableWriteError(k string, err error) {
	h.try(func() { h.inner.DurableWriteError(k, err) })
}
func (h *Hooks) EntryDecodeError(tier, k string) {
	h.try(func() { h.inner.EntryDecodeError(tier, k) })
}
func (h *Hooks) ServedStale(k, reason string) {
	h.try(func() { h.inner.ServedStale(k, reason) })
}
func (h *Hooks) Revalidated(k string, notModified bool) {
	h.try(func() { h.inner.Revalidated(k, notModified) })
}
