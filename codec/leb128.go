package codec

import "encoding/binary"

// LEB128 implements the standard base-128 varint with continuation bits.
//
// Each encoded byte carries 7 payload bits; the high bit is set while more
// bytes follow for the current value. Values 0-127 take a single byte and a
// full 64-bit value takes 10 bytes, so MaxVarintLen64 bounds the per-value
// worst case. An integer with exactly k significant bits encodes to
// ceil(max(k,1)/7) bytes.
type LEB128 struct{}

var (
	_ VarintCodec      = LEB128{}
	_ UncheckedDecoder = LEB128{}
)

// Name returns "LEB128".
func (LEB128) Name() string { return "LEB128" }

// MaxEncodedLen returns the worst-case encoded size of n integers (10 bytes each).
func (LEB128) MaxEncodedLen(n int) int { return n * binary.MaxVarintLen64 }

// Encode appends the continuation-bit encoding of src to dst.
func (LEB128) Encode(dst []byte, src []uint64) ([]byte, error) {
	for _, x := range src {
		if x <= 0x7F {
			// Single-byte fast path covers the bulk of log-uniform data.
			dst = append(dst, byte(x))
			continue
		}
		dst = binary.AppendUvarint(dst, x)
	}

	return dst, nil
}

// DecodeUnchecked reconstructs len(dst) integers from src with no input
// validation. Defined only for streams produced by Encode.
func (LEB128) DecodeUnchecked(dst []uint64, src []byte) {
	pos := 0
	for i := range dst {
		b := src[pos]
		pos++
		if b < 0x80 {
			dst[i] = uint64(b)
			continue
		}

		value := uint64(b & 0x7F)
		shift := uint(7)
		for b >= 0x80 {
			b = src[pos]
			pos++
			value |= uint64(b&0x7F) << shift
			shift += 7
		}
		dst[i] = value
	}
}

// Decode reconstructs len(dst) integers from src, validating the stream.
//
// Returns ErrTruncated if src ends mid-value or before len(dst) values are
// recovered, and ErrMalformed if a continuation run carries bits beyond the
// 64-bit range (i.e. exceeds the 10-byte worst case).
func (LEB128) Decode(dst []uint64, src []byte) error {
	pos := 0
	for i := range dst {
		if pos >= len(src) {
			return ErrTruncated
		}
		b := src[pos]
		pos++
		if b < 0x80 {
			dst[i] = uint64(b)
			continue
		}

		value := uint64(b & 0x7F)
		shift := uint(7)
		for b >= 0x80 {
			if pos >= len(src) {
				return ErrTruncated
			}
			b = src[pos]
			pos++
			// The 10th byte holds only bit 63; anything above that, or a set
			// continuation bit, cannot come from a 64-bit encoder.
			if shift == 63 && b > 1 {
				return ErrMalformed
			}
			value |= uint64(b&0x7F) << shift
			shift += 7
		}
		dst[i] = value
	}

	return nil
}
