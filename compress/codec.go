package compress

import "fmt"

// Type identifies a general-purpose compression algorithm.
type Type byte

const (
	// TypeNone bypasses compression entirely.
	TypeNone Type = iota
	// TypeSnappy selects Google's Snappy block format.
	TypeSnappy
	// TypeS2 selects the S2 extension of Snappy (better ratio, similar speed).
	TypeS2
	// TypeLZ4 selects the LZ4 block format.
	TypeLZ4
	// TypeZstd selects Zstandard.
	TypeZstd
)

// String returns the human-readable algorithm name.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeSnappy:
		return "snappy"
	case TypeS2:
		return "s2"
	case TypeLZ4:
		return "lz4"
	case TypeZstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", byte(t))
	}
}

// Compressor compresses a block of bytes.
//
// Inputs in varbench are fixed-width serializations of integer sequences,
// typically 8MB for the default one-million-element input. Implementations
// may reuse internal buffers across calls but must never modify the input
// slice; the returned slice is owned by the caller.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
//
// The input must have been produced by the matching Compressor.
// Implementations validate the container format and return an error for
// corrupted or incompatible data; the returned slice is owned by the caller.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original bytes.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
//
// Implementations must be safe for sequential reuse: the benchmark driver
// calls Compress and Decompress on the same instance for every input
// distribution in a run.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec for the given algorithm.
//
// Parameters:
//   - compressionType: algorithm selector (None, Snappy, S2, LZ4 or Zstd)
//   - target: description of the usage site, included in error messages
//
// Returns:
//   - Codec: codec instance for the requested algorithm
//   - error: invalid compression type error
func CreateCodec(compressionType Type, target string) (Codec, error) {
	switch compressionType {
	case TypeNone:
		return NewNoOpCompressor(), nil
	case TypeSnappy:
		return NewSnappyCompressor(), nil
	case TypeS2:
		return NewS2Compressor(), nil
	case TypeLZ4:
		return NewLZ4Compressor(), nil
	case TypeZstd:
		return NewZstdCompressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[Type]Codec{
	TypeNone:   NewNoOpCompressor(),
	TypeSnappy: NewSnappyCompressor(),
	TypeS2:     NewS2Compressor(),
	TypeLZ4:    NewLZ4Compressor(),
	TypeZstd:   NewZstdCompressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType Type) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
