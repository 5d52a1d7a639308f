package codec

import "encoding/json"

// JSON is the default envelope codec. Keeping the durable tier as plain JSON
// makes stored entries inspectable with ordinary tooling, which has paid for
// itself during storage debugging more than once.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
