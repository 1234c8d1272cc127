package codec

import (
	"encoding/binary"
	"math/bits"
)

// PrefixVarint encodes the byte length of each value in its first byte
// instead of spreading continuation bits across the stream.
//
// The count of trailing zero bits in the first byte determines the total
// length: an odd first byte is a complete 1-byte value, a first byte ending
// in exactly k zero bits introduces a (k+1)-byte value, and a first byte of
// 0x00 introduces a 9-byte value whose remaining 8 bytes are the raw
// little-endian integer. Values up to 56 significant bits are stored as
// (2x+1) shifted into the length marker; this lets the decoder find each
// value's length with a single table-free instruction rather than a byte-by-
// byte continuation scan.
type PrefixVarint struct{}

var (
	_ VarintCodec      = PrefixVarint{}
	_ UncheckedDecoder = PrefixVarint{}
)

// Name returns "PrefixVarint".
func (PrefixVarint) Name() string { return "PrefixVarint" }

// MaxEncodedLen returns the worst-case encoded size of n integers (9 bytes each).
func (PrefixVarint) MaxEncodedLen(n int) int { return n * 9 }

// loadLE64 reads up to 8 little-endian bytes starting at pos, zero-extending
// when fewer than 8 bytes remain. Callers must have validated that the bytes
// they actually consume are present.
func loadLE64(src []byte, pos int) uint64 {
	if pos+8 <= len(src) {
		return binary.LittleEndian.Uint64(src[pos:])
	}

	var v uint64
	for j := len(src) - 1; j >= pos; j-- {
		v = v<<8 | uint64(src[j])
	}

	return v
}

// Encode appends the prefix-length encoding of src to dst.
func (PrefixVarint) Encode(dst []byte, src []uint64) ([]byte, error) {
	for _, x := range src {
		sigBits := bits.Len64(x | 1)
		if sigBits > 56 {
			dst = append(dst, 0)
			dst = binary.LittleEndian.AppendUint64(dst, x)
			continue
		}

		nbytes := 1 + (sigBits-1)/7
		v := (2*x + 1) << (nbytes - 1)
		for n := 0; n < nbytes; n++ {
			dst = append(dst, byte(v))
			v >>= 8
		}
	}

	return dst, nil
}

func prefixLength(b byte) int {
	return 1 + bits.TrailingZeros32(uint32(b)|0x100)
}

func prefixGet(src []byte, pos, length int) uint64 {
	if length < 9 {
		unused := uint(64 - 8*length)
		return loadLE64(src, pos) << unused >> (unused + uint(length))
	}

	return loadLE64(src, pos+1)
}

// DecodeUnchecked reconstructs len(dst) integers from src with no input
// validation. Defined only for streams produced by Encode.
func (PrefixVarint) DecodeUnchecked(dst []uint64, src []byte) {
	pos := 0
	for i := range dst {
		b := src[pos]
		if b&1 != 0 {
			dst[i] = uint64(b >> 1)
			pos++
			continue
		}

		length := prefixLength(b)
		dst[i] = prefixGet(src, pos, length)
		pos += length
	}
}

// Decode reconstructs len(dst) integers from src, validating the stream.
//
// Returns ErrTruncated if src ends before a value's declared length.
// Every first byte declares a decodable length, so no input is malformed
// under this scheme, only short.
func (PrefixVarint) Decode(dst []uint64, src []byte) error {
	pos := 0
	for i := range dst {
		if pos >= len(src) {
			return ErrTruncated
		}

		b := src[pos]
		if b&1 != 0 {
			dst[i] = uint64(b >> 1)
			pos++
			continue
		}

		length := prefixLength(b)
		if pos+length > len(src) {
			return ErrTruncated
		}
		dst[i] = prefixGet(src, pos, length)
		pos += length
	}

	return nil
}
