// Package dataset produces the integer sequences that varbench feeds to its
// codecs: synthetic log-uniform random data and file-supplied test vectors.
package dataset

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultCount is the number of integers generated when no count is configured.
const DefaultCount = 1_000_000

// MaxBits is the largest supported significant-bit bound.
const MaxBits = 64

// Config holds the parameters for synthetic data generation.
type Config struct {
	Count   int  // Number of integers to generate
	MinBits uint // Minimum significant bits (inclusive lower bound of the log range)
	MaxBits uint // Maximum significant bits
}

// DefaultConfig returns the canonical full-range configuration:
// one million values spanning 0-64 significant bits.
func DefaultConfig() Config {
	return Config{Count: DefaultCount, MinBits: 0, MaxBits: MaxBits}
}

// Validate reports whether the configuration is usable.
func (c Config) Validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("dataset: count must be positive, got %d", c.Count)
	}
	if c.MaxBits > MaxBits {
		return fmt.Errorf("dataset: max bits %d exceeds %d", c.MaxBits, MaxBits)
	}
	if c.MinBits > c.MaxBits {
		return fmt.Errorf("dataset: min bits %d exceeds max bits %d", c.MinBits, c.MaxBits)
	}

	return nil
}

// maxUint64Float is the smallest float64 not representable as a uint64.
const maxUint64Float = float64(1 << 63 * 2)

// GenerateLogUniform produces cfg.Count integers whose logarithm is uniformly
// distributed between MinBits*ln2 and MaxBits*ln2.
//
// This gives equal probability mass per octave rather than per linear value
// range, so every byte-length class of a varint codec receives comparable
// test mass; a linear-uniform distribution would concentrate nearly all
// values in the widest encodings.
//
// The generator is explicitly passed so callers own seeding: the benchmark
// driver seeds once per run, which guarantees every codec within one
// distribution sees bit-identical input.
func GenerateLogUniform(rng *rand.Rand, cfg Config) ([]uint64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lo := float64(cfg.MinBits) * math.Ln2
	hi := float64(cfg.MaxBits) * math.Ln2

	values := make([]uint64, 0, cfg.Count)
	for len(values) < cfg.Count {
		f := math.Exp(lo + rng.Float64()*(hi-lo))
		if f >= maxUint64Float {
			// exp() can land a hair above 2^64 at the top of the range;
			// float-to-uint conversion is unspecified out of range.
			values = append(values, math.MaxUint64)
			continue
		}
		values = append(values, uint64(f))
	}

	return values, nil
}
