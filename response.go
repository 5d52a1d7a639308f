package condcache

import (
	"io"
	"net/http"
	"sync"
)

// Conditional carries the validator headers for a revalidation request.
// Zero-valued fields mean "omit the header".
type Conditional struct {
	IfNoneMatch     string
	IfModifiedSince string
}

// Apply sets the validator headers on an outgoing request.
func (c Conditional) Apply(h http.Header) {
	if c.IfNoneMatch != "" {
		h.Set("If-None-Match", c.IfNoneMatch)
	}
	if c.IfModifiedSince != "" {
		h.Set("If-Modified-Since", c.IfModifiedSince)
	}
}

// Response is the minimal upstream-response surface the orchestrator needs.
// Implement it over whatever HTTP client the call site uses, or wrap a
// stdlib response with WrapHTTP. A bare 304 only needs StatusCode.
//
// Implementations holding a live connection should also satisfy io.Closer:
// the orchestrator closes the response once it is done with it, whether or
// not Body was read.
type Response interface {
	StatusCode() int

	// Body returns the parsed-JSON response body. Called at most once by
	// the orchestrator, and only on 2xx.
	Body() ([]byte, error)

	// Header returns a response header value, "" if absent.
	Header(name string) string
}

// WrapHTTP adapts a *http.Response. The body is read and closed on the first
// Body call; Close releases it when Body is never called (304s, error
// statuses).
func WrapHTTP(resp *http.Response) Response {
	return &httpResponse{resp: resp}
}

// closeDrainLimit bounds how much of an unread body Close pulls so the
// transport can reuse the connection without inflating a large error page.
const closeDrainLimit = 4 << 10

type httpResponse struct {
	resp *http.Response

	once sync.Once
	body []byte
	err  error
}

func (r *httpResponse) StatusCode() int { return r.resp.StatusCode }

func (r *httpResponse) Header(name string) string { return r.resp.Header.Get(name) }

func (r *httpResponse) Body() ([]byte, error) {
	r.once.Do(func() {
		defer r.resp.Body.Close()
		r.body, r.err = io.ReadAll(r.resp.Body)
	})
	return r.body, r.err
}

func (r *httpResponse) Close() error {
	r.once.Do(func() {
		defer r.resp.Body.Close()
		_, _ = io.Copy(io.Discard, io.LimitReader(r.resp.Body, closeDrainLimit))
	})
	return nil
}
