// Package codec implements the variable-length integer compression schemes
// benchmarked by varbench.
//
// Every scheme packs a sequence of unsigned 64-bit integers into a dense byte
// stream and satisfies the same contract, expressed by the VarintCodec
// interface: encode is append-style, decode is framed by a caller-supplied
// element count (the streams carry no terminator or length field of their
// own).
//
// The core correctness contract is the round-trip law: for every codec c and
// every []uint64 values,
//
//	buf, _ := c.Encode(nil, values)
//	out := make([]uint64, len(values))
//	c.Decode(out, buf)   // out == values
//
// must hold for all values representable in 64 bits, including 0 and
// math.MaxUint64.
//
// # Schemes
//
//   - LEB128: continuation-bit base-128 varint, 1-10 bytes per value
//   - PrefixVarint: length encoded in the low zero bits of the first byte, 1-9 bytes
//   - LESQLite and LESQLite2: SQLite-style first-byte-ranged encodings, 1-9 bytes
//   - NibblePack: pairs of values share a tag byte of two 4-bit length codes
//   - BlockCodec: adapts a general-purpose compressor (Snappy, S2, LZ4, Zstd)
//     behind the same boundary as a baseline comparator
//
// # Checked and unchecked decoding
//
// Decode validates the input and returns ErrTruncated or ErrMalformed instead
// of reading past the buffer. Codecs that additionally implement
// UncheckedDecoder offer a fast path with no validation at all; it is defined
// only for streams produced by the matching encoder, and feeding it anything
// else may panic or yield garbage. The benchmark driver times the unchecked
// path to keep measurements free of bounds-checking overhead, while the
// checked path exists for callers that handle untrusted data.
//
// The process-wide registry (All, Lookup) is immutable after package
// initialization and safe for concurrent readers.
package codec
