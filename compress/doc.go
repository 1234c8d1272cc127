// Package compress provides the general-purpose byte compressors that varbench
// uses as baseline comparators for its variable-length integer codecs.
//
// A varint scheme exploits the distribution of individual integer magnitudes;
// a general compressor instead exploits redundancy across the whole byte
// stream. Benchmarking both behind the same codec boundary shows where the
// crossover lies for a given input distribution.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
//   - None: pass-through, for overhead baselines
//   - Snappy: fastest general compressor, modest ratio
//   - S2: Snappy-compatible with better ratio on large blocks
//   - LZ4: fast decompression, moderate compression
//   - Zstd: best ratio, moderate speed
//
// Zstd has two implementations selected at build time: the pure-Go
// klauspost/compress encoder (default) and the cgo gozstd binding when cgo
// is available. Both produce interchangeable Zstandard frames.
//
// Use GetCodec for the shared built-in instances, or CreateCodec to
// construct a fresh one:
//
//	codec, err := compress.GetCodec(compress.TypeS2)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
package compress
