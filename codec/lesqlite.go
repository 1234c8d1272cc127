package codec

import (
	"encoding/binary"
	"math/bits"
)

// LESQLite implements a variant of the SQLite variable-length integer
// encoding. The first byte B0 determines the length:
//
//	0-184:   1 byte, value = B0
//	185-248: 2 bytes, value = 185 + B1 + 256*(B0-185)
//	249-255: 3-9 bytes, B0-249+2 little-endian bytes follow B0
//
// Unlike the continuation-bit scheme the length is known after the first
// byte, and the two-byte range is offset so the 1- and 2-byte forms are
// bijective with their value ranges.
type LESQLite struct{}

const (
	lsCut1 = 185
	lsCut2 = 249

	// Largest value representable in the offset 2-byte form.
	lsTwoByteMax = lsCut1 + 255 + 256*(lsCut2-1-lsCut1)
)

var (
	_ VarintCodec      = LESQLite{}
	_ UncheckedDecoder = LESQLite{}
)

// Name returns "leSQLite".
func (LESQLite) Name() string { return "leSQLite" }

// MaxEncodedLen returns the worst-case encoded size of n integers (9 bytes each).
func (LESQLite) MaxEncodedLen(n int) int { return n * 9 }

// Encode appends the leSQLite encoding of src to dst.
func (LESQLite) Encode(dst []byte, src []uint64) ([]byte, error) {
	for _, x := range src {
		switch {
		case x < lsCut1:
			dst = append(dst, byte(x))
		case x <= lsTwoByteMax:
			x -= lsCut1
			dst = append(dst, byte(lsCut1+(x>>8)), byte(x))
		default:
			nbytes := (bits.Len64(x) + 7) / 8
			dst = append(dst, byte(lsCut2+(nbytes-2)))
			for n := 0; n < nbytes; n++ {
				dst = append(dst, byte(x))
				x >>= 8
			}
		}
	}

	return dst, nil
}

// DecodeUnchecked reconstructs len(dst) integers from src with no input
// validation. Defined only for streams produced by Encode.
func (LESQLite) DecodeUnchecked(dst []uint64, src []byte) {
	pos := 0
	for i := range dst {
		b0 := uint64(src[pos])
		pos++
		switch {
		case b0 < lsCut1:
			dst[i] = b0
		case b0 < lsCut2:
			b1 := uint64(src[pos])
			pos++
			dst[i] = lsCut1 + b1 + (b0-lsCut1)<<8
		default:
			sh := int(b0) - lsCut2
			dst[i] = loadLE64(src, pos) & (uint64(1)<<(8*uint(sh))<<16 - 1)
			pos += 2 + sh
		}
	}
}

// Decode reconstructs len(dst) integers from src, validating the stream.
// Every first byte declares a decodable length, so short input is the only
// failure mode (ErrTruncated).
func (LESQLite) Decode(dst []uint64, src []byte) error {
	pos := 0
	for i := range dst {
		if pos >= len(src) {
			return ErrTruncated
		}
		b0 := uint64(src[pos])
		pos++
		switch {
		case b0 < lsCut1:
			dst[i] = b0
		case b0 < lsCut2:
			if pos >= len(src) {
				return ErrTruncated
			}
			b1 := uint64(src[pos])
			pos++
			dst[i] = lsCut1 + b1 + (b0-lsCut1)<<8
		default:
			sh := int(b0) - lsCut2
			if pos+2+sh > len(src) {
				return ErrTruncated
			}
			dst[i] = loadLE64(src, pos) & (uint64(1)<<(8*uint(sh))<<16 - 1)
			pos += 2 + sh
		}
	}

	return nil
}

// LESQLite2 implements a second variant of the SQLite variable-length
// integer encoding with an extra 3-byte tier. The first byte B0 determines
// the length:
//
//	[0; 178):   1 byte, value = B0
//	[178; 242): 2 bytes, B0 provides 6 high bits
//	[242; 250): 3 bytes, B0 provides 3 high bits
//	[250; 255]: 4-9 bytes, B0 - 250 + 3 little-endian bytes follow B0
//
// The 1-, 2- and 3-byte forms are bijective with their offset value ranges;
// the 4+ byte forms are not.
type LESQLite2 struct{}

const (
	ls2Cut1 = 178
	ls2Cut2 = 242
	ls2Cut3 = 250

	ls2Offset1 = uint64(ls2Cut1)
	ls2Limit1  = ls2Offset1 + 1<<14

	ls2Offset2 = ls2Limit1
	ls2Limit2  = ls2Offset2 + 1<<19
)

var (
	_ VarintCodec      = LESQLite2{}
	_ UncheckedDecoder = LESQLite2{}
)

// Name returns "leSQLite2".
func (LESQLite2) Name() string { return "leSQLite2" }

// MaxEncodedLen returns the worst-case encoded size of n integers (9 bytes each).
func (LESQLite2) MaxEncodedLen(n int) int { return n * 9 }

// Encode appends the leSQLite2 encoding of src to dst.
func (LESQLite2) Encode(dst []byte, src []uint64) ([]byte, error) {
	for _, x := range src {
		switch {
		case x < ls2Cut1:
			dst = append(dst, byte(x))
		case x < ls2Limit1:
			// 2 bytes encode 14 bits.
			x -= ls2Offset1
			dst = append(dst, byte(ls2Cut1+(x>>8)), byte(x))
		case x < ls2Limit2:
			// 3 bytes encode 19 bits.
			x -= ls2Offset2
			dst = append(dst, byte(ls2Cut2+(x>>16)), byte(x), byte(x>>8))
		default:
			// 4-9 bytes, no offset.
			nbytes := (bits.Len64(x) + 7) / 8
			dst = append(dst, byte(ls2Cut3+(nbytes-3)))
			for n := 0; n < nbytes; n++ {
				dst = append(dst, byte(x))
				x >>= 8
			}
		}
	}

	return dst, nil
}

// DecodeUnchecked reconstructs len(dst) integers from src with no input
// validation. Defined only for streams produced by Encode.
func (LESQLite2) DecodeUnchecked(dst []uint64, src []byte) {
	pos := 0
	for i := range dst {
		b0 := uint64(src[pos])
		pos++
		switch {
		case b0 < ls2Cut1:
			dst[i] = b0
		case b0 < ls2Cut2:
			b1 := uint64(src[pos])
			pos++
			dst[i] = ls2Offset1 + b1 + (b0-ls2Cut1)<<8
		case b0 < ls2Cut3:
			dst[i] = ls2Offset2 + uint64(binary.LittleEndian.Uint16(src[pos:])) + (b0-ls2Cut2)<<16
			pos += 2
		default:
			sh := int(b0) - ls2Cut3
			dst[i] = loadLE64(src, pos) & (uint64(1)<<(8*uint(sh))<<24 - 1)
			pos += 3 + sh
		}
	}
}

// Decode reconstructs len(dst) integers from src, validating the stream.
// Every first byte declares a decodable length, so short input is the only
// failure mode (ErrTruncated).
func (LESQLite2) Decode(dst []uint64, src []byte) error {
	pos := 0
	for i := range dst {
		if pos >= len(src) {
			return ErrTruncated
		}
		b0 := uint64(src[pos])
		pos++
		switch {
		case b0 < ls2Cut1:
			dst[i] = b0
		case b0 < ls2Cut2:
			if pos >= len(src) {
				return ErrTruncated
			}
			b1 := uint64(src[pos])
			pos++
			dst[i] = ls2Offset1 + b1 + (b0-ls2Cut1)<<8
		case b0 < ls2Cut3:
			if pos+2 > len(src) {
				return ErrTruncated
			}
			dst[i] = ls2Offset2 + uint64(binary.LittleEndian.Uint16(src[pos:])) + (b0-ls2Cut2)<<16
			pos += 2
		default:
			sh := int(b0) - ls2Cut3
			if pos+3+sh > len(src) {
				return ErrTruncated
			}
			dst[i] = loadLE64(src, pos) & (uint64(1)<<(8*uint(sh))<<24 - 1)
			pos += 3 + sh
		}
	}

	return nil
}
