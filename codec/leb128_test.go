package codec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLEB128_KnownBytes(t *testing.T) {
	c := LEB128{}

	values := []uint64{0, 1, 127, 128, 16384}
	want := []byte{0x00, 0x01, 0x7F, 0x80, 0x01, 0x80, 0x80, 0x01}

	encoded, err := c.Encode(nil, values)
	require.NoError(t, err)
	require.Equal(t, want, encoded)

	decoded := make([]uint64, len(values))
	require.NoError(t, c.Decode(decoded, encoded))
	require.Equal(t, values, decoded)
}

func TestLEB128_Minimality(t *testing.T) {
	c := LEB128{}
	rng := rand.New(rand.NewSource(3))

	// A value with exactly k significant bits must take ceil(max(k,1)/7) bytes.
	for k := 0; k <= 64; k++ {
		v := valueWithBits(rng, k)

		wantLen := (max(k, 1) + 6) / 7
		encoded, err := c.Encode(nil, []uint64{v})
		require.NoError(t, err)
		require.Len(t, encoded, wantLen, "value %d (%d significant bits)", v, k)
	}
}

func TestLEB128_MinimalityFixedPoints(t *testing.T) {
	c := LEB128{}

	tests := []struct {
		value uint64
		bytes int
	}{
		{0, 1},
		{127, 1},
		{128, 2},
		{16383, 2},
		{16384, 3},
		{1 << 63, 10},
		{^uint64(0), 10},
	}
	for _, tt := range tests {
		encoded, err := c.Encode(nil, []uint64{tt.value})
		require.NoError(t, err)
		require.Len(t, encoded, tt.bytes, "value %d", tt.value)
	}
}

func TestLEB128_DecodeTruncated(t *testing.T) {
	c := LEB128{}

	// Fewer values than expected.
	require.ErrorIs(t, c.Decode(make([]uint64, 2), []byte{0x05}), ErrTruncated)

	// Buffer ends inside a continuation run.
	require.ErrorIs(t, c.Decode(make([]uint64, 1), []byte{0x80}), ErrTruncated)
	require.ErrorIs(t, c.Decode(make([]uint64, 1), []byte{0xFF, 0xFF}), ErrTruncated)
}

func TestLEB128_DecodeMalformed(t *testing.T) {
	c := LEB128{}

	// A continuation run whose 10th byte carries bits beyond bit 63.
	overlong := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x7F}
	require.ErrorIs(t, c.Decode(make([]uint64, 1), overlong), ErrMalformed)

	// An 11-byte continuation run is caught at the same point.
	dangling := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}
	require.ErrorIs(t, c.Decode(make([]uint64, 1), dangling), ErrMalformed)
}

func TestLEB128_DecodeMaxValue(t *testing.T) {
	c := LEB128{}

	// The canonical 10-byte encoding of MaxUint64 is valid.
	encoded, err := c.Encode(nil, []uint64{^uint64(0)})
	require.NoError(t, err)
	require.Len(t, encoded, 10)
	require.Equal(t, byte(0x01), encoded[9])

	decoded := make([]uint64, 1)
	require.NoError(t, c.Decode(decoded, encoded))
	require.Equal(t, ^uint64(0), decoded[0])
}
