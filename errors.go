package condcache

import (
	"errors"
	"fmt"
)

// ErrNoCachedBody is returned when the upstream answers 304 Not Modified but
// no cached body exists to serve. A conforming upstream cannot produce this
// (no validators were sent on a cold key), so seeing it usually means the
// durable tier lost the entry between the staleness check and the response.
var ErrNoCachedBody = errors.New("condcache: not modified but no cached body")

// StatusError reports a non-OK upstream response on a read with no cached
// fallback. Callers can pattern-match on Status to distinguish failure
// causes.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch failed: %d", e.Status)
}
