package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNibblePack_KnownBytes(t *testing.T) {
	c := NibblePack{}

	tests := []struct {
		name   string
		values []uint64
		want   []byte
	}{
		{
			// na=1 in the low nibble, nb=2 in the high nibble, payloads LE.
			name:   "pair",
			values: []uint64{1, 0x1234},
			want:   []byte{0x21, 0x01, 0x34, 0x12},
		},
		{
			// Tag 0 is the reserved zero-value code: no payload bytes at all.
			name:   "zero pair",
			values: []uint64{0, 0},
			want:   []byte{0x00},
		},
		{
			name:   "zero and one",
			values: []uint64{0, 1},
			want:   []byte{0x10, 0x01},
		},
		{
			// Odd trailing value uses the low nibble only.
			name:   "single",
			values: []uint64{5},
			want:   []byte{0x01, 0x05},
		},
		{
			name:   "trailing zero",
			values: []uint64{1, 2, 0},
			want:   []byte{0x11, 0x01, 0x02, 0x00},
		},
		{
			name:   "full width pair",
			values: []uint64{^uint64(0), 1},
			want: []byte{
				0x18,
				0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
				0x01,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := c.Encode(nil, tt.values)
			require.NoError(t, err)
			require.Equal(t, tt.want, encoded)

			decoded := make([]uint64, len(tt.values))
			require.NoError(t, c.Decode(decoded, encoded))
			require.Equal(t, tt.values, decoded)
		})
	}
}

func TestNibblePack_OddLengths(t *testing.T) {
	c := NibblePack{}

	// Odd-length sequences must recover the exact count including the lone
	// trailing element.
	for _, n := range []int{1, 3, 5, 101} {
		values := make([]uint64, n)
		for i := range values {
			values[i] = uint64(i) * 259
		}
		roundTrip(t, c, values)
	}
}

func TestNibblePack_DecodeMalformed(t *testing.T) {
	c := NibblePack{}

	// Length codes 9-15 are outside the defined tag range.
	require.ErrorIs(t, c.Decode(make([]uint64, 1), []byte{0x09}), ErrMalformed)
	require.ErrorIs(t, c.Decode(make([]uint64, 2), []byte{0x9F, 0x01}), ErrMalformed)
	require.ErrorIs(t, c.Decode(make([]uint64, 2), []byte{0xF1, 0x01}), ErrMalformed)
}

func TestNibblePack_DecodeTruncated(t *testing.T) {
	c := NibblePack{}

	// Tag present but payload missing.
	require.ErrorIs(t, c.Decode(make([]uint64, 1), []byte{0x01}), ErrTruncated)
	require.ErrorIs(t, c.Decode(make([]uint64, 2), []byte{0x22, 0x01, 0x02, 0x03}), ErrTruncated)

	// No tag byte at all for the trailing element.
	require.ErrorIs(t, c.Decode(make([]uint64, 3), []byte{0x11, 0x01, 0x02}), ErrTruncated)
	require.ErrorIs(t, c.Decode(make([]uint64, 1), nil), ErrTruncated)
}
