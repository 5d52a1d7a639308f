package codec

import "github.com/klauspost/compress/s2"

// Compress wraps another codec with S2 compression of the encoded bytes.
// Worth it for large list payloads (chat logs, stats series) on
// quota-constrained durable storage; pointless for small envelopes, where
// the frame overhead dominates.
type Compress[V any] struct {
	Inner Codec[V]
}

func (c Compress[V]) Encode(v V) ([]byte, error) {
	b, err := c.Inner.Encode(v)
	if err != nil {
		return nil, err
	}
	return s2.Encode(nil, b), nil
}

func (c Compress[V]) Decode(b []byte) (V, error) {
	raw, err := s2.Decode(nil, b)
	if err != nil {
		var zero V
		return zero, err
	}
	return c.Inner.Decode(raw)
}
