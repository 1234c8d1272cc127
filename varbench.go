// Package varbench compares variable-length integer compression schemes:
// codecs that pack sequences of unsigned 64-bit integers into dense byte
// streams, measured for encode/decode throughput and bytes per integer.
//
// # Core Features
//
//   - Interchangeable codecs behind one boundary: LEB128, PrefixVarint,
//     leSQLite, leSQLite2, NibblePack, plus general-purpose compressor
//     baselines (Snappy, S2, LZ4, Zstd)
//   - A fixed, immutable codec registry the benchmark driver iterates
//   - Checked decoding with defined errors, and an unchecked fast path
//     preserving the performance of the original unvalidated design
//   - Log-uniform synthetic data generation stressing every byte-length class
//   - A benchmark driver that round-trip-verifies every measurement
//
// # Basic Usage
//
// Encoding and decoding through the registry:
//
//	buf, err := varbench.Encode("LEB128", values)
//	if err != nil {
//	    return err
//	}
//	decoded, err := varbench.Decode("LEB128", buf, len(values))
//
// Running a measurement programmatically:
//
//	runner := bench.NewRunner(codec.All())
//	suite, err := runner.RunSuite(values, 0, 64)
//	if err != nil {
//	    return err
//	}
//	bench.NewReporter(os.Stdout).Print([]bench.Suite{suite})
//
// The varbench command wraps the same pieces behind a CLI; see cmd/varbench.
package varbench

import (
	"fmt"

	"github.com/arloliu/varbench/codec"
)

// Codecs returns all registered codecs in registry order.
func Codecs() []codec.VarintCodec {
	return codec.All()
}

// Encode encodes values with the named codec and returns a freshly
// allocated buffer. The name match is case-insensitive.
func Encode(name string, values []uint64) ([]byte, error) {
	c, ok := codec.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", codec.ErrUnknownCodec, name)
	}

	return c.Encode(make([]byte, 0, c.MaxEncodedLen(len(values))), values)
}

// Decode reconstructs count integers from data with the named codec.
// Decoding is checked: malformed or truncated data yields an error rather
// than an out-of-bounds read.
func Decode(name string, data []byte, count int) ([]uint64, error) {
	c, ok := codec.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", codec.ErrUnknownCodec, name)
	}

	values := make([]uint64, count)
	if err := c.Decode(values, data); err != nil {
		return nil, err
	}

	return values, nil
}
