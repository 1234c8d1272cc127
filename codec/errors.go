package codec

import "errors"

var (
	// ErrTruncated indicates that the encoded stream ended before the
	// expected number of integers could be recovered.
	ErrTruncated = errors.New("codec: truncated input")

	// ErrMalformed indicates bytes that no valid encoder output can contain,
	// such as a continuation run exceeding 10 bytes for a 64-bit value or a
	// length tag outside its defined range.
	ErrMalformed = errors.New("codec: malformed input")

	// ErrUnknownCodec indicates a Lookup by a name not present in the registry.
	ErrUnknownCodec = errors.New("codec: unknown codec name")
)
