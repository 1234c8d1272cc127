package codec

import "math/bits"

// NibblePack implements the nibble-paired packed varint scheme.
//
// Values are processed two at a time. Each pair is preceded by one tag byte
// holding two 4-bit length codes: the low nibble describes the first value,
// the high nibble the second. A code of 1-8 gives the count of little-endian
// payload bytes that follow; code 0 is the reserved encoding of the value 0
// and carries no payload bytes. The two payloads are written back-to-back
// immediately after the tag byte.
//
// An odd trailing value gets its own tag byte using the low nibble only; the
// high nibble is written as zero and ignored on decode.
//
// Length codes are always sourced from the encoded input stream. Reading a
// tag through a pointer aliased with the output sequence is a known hazard of
// this scheme when encode and decode buffers overlap, and is not valid here.
type NibblePack struct{}

var (
	_ VarintCodec      = NibblePack{}
	_ UncheckedDecoder = NibblePack{}
)

// Name returns "NibblePack".
func (NibblePack) Name() string { return "NibblePack" }

// MaxEncodedLen returns the worst-case encoded size of n integers:
// one tag byte per pair plus 8 payload bytes per value.
func (NibblePack) MaxEncodedLen(n int) int { return (n+1)/2 + 8*n }

// packedLen returns the payload length code for x: 0 for the value 0,
// otherwise the minimal byte count 1-8.
func packedLen(x uint64) int {
	if x == 0 {
		return 0
	}

	return (bits.Len64(x) + 7) / 8
}

func appendPacked(dst []byte, x uint64, n int) []byte {
	for j := 0; j < n; j++ {
		dst = append(dst, byte(x))
		x >>= 8
	}

	return dst
}

func unpack(src []byte, pos, n int) uint64 {
	var x uint64
	for j := n - 1; j >= 0; j-- {
		x = x<<8 | uint64(src[pos+j])
	}

	return x
}

// Encode appends the nibble-paired encoding of src to dst.
func (NibblePack) Encode(dst []byte, src []uint64) ([]byte, error) {
	i := 0
	for ; i+1 < len(src); i += 2 {
		a, b := src[i], src[i+1]
		na, nb := packedLen(a), packedLen(b)
		dst = append(dst, byte(na|nb<<4))
		dst = appendPacked(dst, a, na)
		dst = appendPacked(dst, b, nb)
	}

	// Odd trailing value: low nibble only.
	if i < len(src) {
		a := src[i]
		na := packedLen(a)
		dst = append(dst, byte(na))
		dst = appendPacked(dst, a, na)
	}

	return dst, nil
}

// DecodeUnchecked reconstructs len(dst) integers from src with no input
// validation. Defined only for streams produced by Encode.
func (NibblePack) DecodeUnchecked(dst []uint64, src []byte) {
	pos := 0
	i := 0
	for ; i+1 < len(dst); i += 2 {
		tag := src[pos]
		pos++

		na := int(tag & 0x0F)
		dst[i] = unpack(src, pos, na)
		pos += na

		nb := int(tag >> 4)
		dst[i+1] = unpack(src, pos, nb)
		pos += nb
	}

	if i < len(dst) {
		tag := src[pos]
		pos++
		na := int(tag & 0x0F)
		dst[i] = unpack(src, pos, na)
	}
}

// Decode reconstructs len(dst) integers from src, validating the stream.
//
// Returns ErrMalformed for a length code above 8 and ErrTruncated if src
// ends before the tagged payload bytes (or the trailing value) are present.
func (NibblePack) Decode(dst []uint64, src []byte) error {
	pos := 0
	i := 0
	for ; i+1 < len(dst); i += 2 {
		if pos >= len(src) {
			return ErrTruncated
		}
		tag := src[pos]
		pos++

		na, nb := int(tag&0x0F), int(tag>>4)
		if na > 8 || nb > 8 {
			return ErrMalformed
		}
		if pos+na+nb > len(src) {
			return ErrTruncated
		}

		dst[i] = unpack(src, pos, na)
		pos += na
		dst[i+1] = unpack(src, pos, nb)
		pos += nb
	}

	if i < len(dst) {
		if pos >= len(src) {
			return ErrTruncated
		}
		tag := src[pos]
		pos++

		na := int(tag & 0x0F)
		if na > 8 {
			return ErrMalformed
		}
		if pos+na > len(src) {
			return ErrTruncated
		}
		dst[i] = unpack(src, pos, na)
	}

	return nil
}
