// Package sloghooks implements the cache Hooks on log/slog, with sampling
// for the chatty events and key redaction (logical keys embed user IDs).
package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	condcache "github.com/GovThePPL/candid-sub001"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	ServedStaleEvery uint64
	DecodeDropEvery  uint64

	// Optional key redactor. Defaults to a SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	staleCtr  atomic.Uint64
	decodeCtr atomic.Uint64
}

var _ condcache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) DurableReadError(key string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("condcache.durable_read_error",
		"key", h.redact(key),
		"err", err)
}

func (h *Hooks) DurableWriteError(key string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("condcache.durable_write_error",
		"key", h.redact(key),
		"err", err)
}

func (h *Hooks) EntryDecodeError(tier, key string) {
	if h.l == nil || !sample(h.opts.DecodeDropEvery, &h.decodeCtr) {
		return
	}
	h.l.Debug("condcache.entry_decode_drop",
		"tier", tier,
		"key", h.redact(key))
}

func (h *Hooks) ServedStale(key, reason string) {
	if h.l == nil || !sample(h.opts.ServedStaleEvery, &h.staleCtr) {
		return
	}
	h.l.Info("condcache.served_stale",
		"key", h.redact(key),
		"reason", reason)
}

func (h *Hooks) Revalidated(key string, notModified bool) {
	if h.l == nil {
		return
	}
	h.l.Debug("condcache.revalidated",
		"key", h.redact(key),
		"not_modified", notModified)
}
