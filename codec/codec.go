package codec

// VarintCodec is the contract every compression scheme satisfies.
//
// Implementations are stateless value types (or immutable structs) and safe
// for concurrent use. Encode never modifies src; Decode never modifies src.
type VarintCodec interface {
	// Name returns the codec's registry label, e.g. "LEB128".
	Name() string

	// MaxEncodedLen returns an upper bound on the encoded size of n integers.
	// Callers sizing a reusable scratch buffer should allocate at least this
	// many bytes before calling Encode.
	MaxEncodedLen(n int) int

	// Encode appends the encoded form of src to dst and returns the extended
	// slice. dst may be nil; passing a pre-sized dst[:0] avoids allocation on
	// the hot path.
	Encode(dst []byte, src []uint64) ([]byte, error)

	// Decode reconstructs exactly len(dst) integers from src into dst.
	// The stream carries no count field; the caller supplies the expected
	// element count as len(dst). Returns ErrTruncated if src ends before
	// len(dst) values are recovered, and ErrMalformed if src contains an
	// encoding no valid encoder output can contain.
	Decode(dst []uint64, src []byte) error
}

// UncheckedDecoder is the optional fast path: decoding with no input
// validation, preserving the performance characteristics of the original
// unchecked design.
//
// DecodeUnchecked is defined only for src produced by the matching encoder
// for exactly len(dst) values. On any other input it may panic on slice
// bounds or fill dst with garbage; callers handling untrusted data must use
// Decode instead.
type UncheckedDecoder interface {
	DecodeUnchecked(dst []uint64, src []byte)
}
