package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data     []byte `json:"data" msgpack:"data"`
	CachedAt int64  `json:"cachedAt" msgpack:"cachedAt"`
	Stale    bool   `json:"stale,omitempty" msgpack:"stale"`
	ETag     string `json:"etag,omitempty" msgpack:"etag"`
}

func sample() envelope {
	return envelope{
		Data:     []byte(`{"count":3}`),
		CachedAt: 1_700_000_000_000,
		Stale:    true,
		ETag:     `"v7"`,
	}
}

func TestRoundTrip(t *testing.T) {
	cborCodec, err := NewCBOR[envelope](false)
	require.NoError(t, err)
	detCBOR, err := NewCBOR[envelope](true)
	require.NoError(t, err)

	codecs := map[string]Codec[envelope]{
		"json":      JSON[envelope]{},
		"msgpack":   Msgpack[envelope]{},
		"cbor":      cborCodec,
		"cbor-det":  detCBOR,
		"compress":  Compress[envelope]{Inner: JSON[envelope]{}},
		"limit":     Limit[envelope]{Inner: JSON[envelope]{}, MaxDecode: 1 << 20},
		"unlimited": Limit[envelope]{Inner: JSON[envelope]{}},
	}
	for name, c := range codecs {
		t.Run(name, func(t *testing.T) {
			b, err := c.Encode(sample())
			require.NoError(t, err)
			got, err := c.Decode(b)
			require.NoError(t, err)
			assert.Equal(t, sample(), got)
		})
	}
}

func TestDeterministicCBORIsStable(t *testing.T) {
	c, err := NewCBOR[envelope](true)
	require.NoError(t, err)

	a, err := c.Encode(sample())
	require.NoError(t, err)
	b, err := c.Encode(sample())
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a, b), "canonical encoding must be byte-stable")
}

func TestLimitRejectsOversizedPayload(t *testing.T) {
	c := Limit[envelope]{Inner: JSON[envelope]{}, MaxDecode: 8}

	b, err := c.Encode(sample())
	require.NoError(t, err)
	require.Greater(t, len(b), 8)

	_, err = c.Decode(b)
	assert.ErrorContains(t, err, "payload too large")
}

func TestCompressShrinksRepetitivePayload(t *testing.T) {
	e := envelope{Data: bytes.Repeat([]byte(`{"v":1},`), 512), CachedAt: 1}

	plain, err := JSON[envelope]{}.Encode(e)
	require.NoError(t, err)
	packed, err := Compress[envelope]{Inner: JSON[envelope]{}}.Encode(e)
	require.NoError(t, err)
	assert.Less(t, len(packed), len(plain))
}

func TestDecodeGarbageFails(t *testing.T) {
	_, err := JSON[envelope]{}.Decode([]byte("not json"))
	assert.Error(t, err)

	_, err = Compress[envelope]{Inner: JSON[envelope]{}}.Decode([]byte("not an s2 frame"))
	assert.Error(t, err)
}
