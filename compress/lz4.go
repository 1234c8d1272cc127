package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances for reuse.
// The lz4.Compressor maintains internal state that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// Leading marker byte of an LZ4 block. The raw block format has no way to
// represent incompressible input (CompressBlock reports it as zero output),
// so each block is prefixed with one byte telling the decompressor whether
// the remainder is an LZ4 block or the stored original.
const (
	lz4BlockStored     = 0
	lz4BlockCompressed = 1
)

type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 block compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data using the LZ4 block format.
//
// Uses a pooled lz4.Compressor for better performance. Incompressible input
// is stored as-is behind the marker byte rather than failing.
//
// Parameters:
//   - data: Input data to compress
//
// Returns:
//   - []byte: Marker byte followed by the compressed or stored data (nil if input is empty)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dstSize := lz4.CompressBlockBound(len(data))
	dst := make([]byte, 1+dstSize)
	dst[0] = lz4BlockCompressed

	// Get compressor from pool
	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[1:])
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// Incompressible input.
		dst[0] = lz4BlockStored
		return append(dst[:1], data...), nil
	}

	return dst[:1+n], nil
}

// Decompress decompresses an LZ4 block produced by Compress.
//
// The block format does not record the uncompressed size, so this method
// uses an adaptive buffer sizing strategy:
//  1. Start with a buffer 4x the compressed size (common expansion ratio)
//  2. On ErrInvalidSourceShortBuffer, double the buffer size (up to maxSize)
//  3. Return error if buffer exceeds reasonable limits (prevents memory exhaustion)
//
// Parameters:
//   - data: Compressed data to decompress
//
// Returns:
//   - []byte: Decompressed data (nil if input is empty)
//   - error: ErrInvalidSourceShortBuffer if buffer exceeded 256MB limit, or other decompression errors
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	marker, block := data[0], data[1:]
	switch marker {
	case lz4BlockStored:
		out := make([]byte, len(block))
		copy(out, block)
		return out, nil
	case lz4BlockCompressed:
	default:
		return nil, fmt.Errorf("invalid lz4 block marker: %d", marker)
	}

	bufSize := len(block) * 4
	// Large enough for the 2x-expansion scratch rule on the default
	// one-million-element input, small enough to bound corrupted-length damage.
	const maxSize = 256 * 1024 * 1024

	for bufSize <= maxSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(block, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2 // Double buffer size and retry
				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	// Buffer exceeded maxSize - likely corrupted data or unreasonable compression ratio
	return nil, lz4.ErrInvalidSourceShortBuffer
}
