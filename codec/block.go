package codec

import (
	"fmt"

	"github.com/arloliu/varbench/compress"
	"github.com/arloliu/varbench/endian"
	"github.com/arloliu/varbench/internal/pool"
)

// BlockCodec adapts a general-purpose byte compressor to the VarintCodec
// boundary so it can serve as a baseline comparator.
//
// Values are serialized as fixed-width little-endian 64-bit integers and the
// whole block is handed to the compressor; decode reverses both steps. The
// adapter satisfies the same round-trip contract as the varint schemes, but
// does not implement UncheckedDecoder: the underlying container formats
// validate their own framing, so an unvalidated fast path does not exist.
type BlockCodec struct {
	name   string
	codec  compress.Codec
	engine endian.EndianEngine
}

var _ VarintCodec = (*BlockCodec)(nil)

// NewBlockCodec wraps the given compression algorithm as a VarintCodec.
func NewBlockCodec(name string, compressionType compress.Type) (*BlockCodec, error) {
	c, err := compress.GetCodec(compressionType)
	if err != nil {
		return nil, fmt.Errorf("block codec %s: %w", name, err)
	}

	return &BlockCodec{
		name:   name,
		codec:  c,
		engine: endian.GetLittleEndianEngine(),
	}, nil
}

// Name returns the registry label, e.g. "Snappy".
func (c *BlockCodec) Name() string { return c.name }

// MaxEncodedLen returns a scratch sizing bound of 2x the raw byte size.
// This is empirically sufficient for the supported compressors on any input
// (their worst-case expansion is a small fraction over the raw size), not a
// hard guarantee of the underlying formats.
func (c *BlockCodec) MaxEncodedLen(n int) int { return 16 * n }

// Encode serializes src as fixed-width little-endian bytes, compresses the
// block, and appends the result to dst.
func (c *BlockCodec) Encode(dst []byte, src []uint64) ([]byte, error) {
	raw := pool.GetEncodeBuffer()
	defer pool.PutEncodeBuffer(raw)

	raw.Grow(8 * len(src))
	for _, x := range src {
		raw.B = c.engine.AppendUint64(raw.B, x)
	}

	compressed, err := c.codec.Compress(raw.B)
	if err != nil {
		return nil, fmt.Errorf("%s encode: %w", c.name, err)
	}

	return append(dst, compressed...), nil
}

// Decode decompresses src and deserializes exactly len(dst) fixed-width
// little-endian integers. A block whose decompressed size disagrees with the
// expected count is reported as ErrMalformed; compressor-level container
// errors are returned as-is.
func (c *BlockCodec) Decode(dst []uint64, src []byte) error {
	raw, err := c.codec.Decompress(src)
	if err != nil {
		return fmt.Errorf("%s decode: %w", c.name, err)
	}

	if len(raw) != 8*len(dst) {
		return ErrMalformed
	}

	for i := range dst {
		dst[i] = c.engine.Uint64(raw[i*8:])
	}

	return nil
}
