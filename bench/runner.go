package bench

import (
	"fmt"
	"time"

	"github.com/arloliu/varbench/codec"
	"github.com/arloliu/varbench/dataset"
	"github.com/arloliu/varbench/internal/pool"
)

// MismatchError reports a round-trip violation: a codec's decode output
// disagreed with the encoder input. It identifies the offending codec and
// distribution so the run can abort with a diagnostic instead of recording
// misleading numbers.
type MismatchError struct {
	Codec   string
	MinBits uint
	MaxBits uint
	Index   int
	Want    uint64
	Got     uint64
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("bench: codec %s bits %s: round-trip mismatch at index %d: want %d, got %d",
		e.Codec, formatBits(e.MinBits, e.MaxBits), e.Index, e.Want, e.Got)
}

// Runner measures codecs sequentially over in-memory inputs.
//
// It owns a reusable encode scratch buffer sized to at least 2x the raw byte
// size of the input; the buffer is single-owner for the duration of one
// codec's timed encode/decode pair. Runner is not safe for concurrent use:
// concurrent timed runs would invalidate the wall-clock measurements.
type Runner struct {
	codecs  []codec.VarintCodec
	scratch []byte
}

// NewRunner creates a Runner over the given codecs. Passing codec.All()
// measures the full registry.
func NewRunner(codecs []codec.VarintCodec) *Runner {
	return &Runner{codecs: codecs}
}

// RunSuite measures every codec against values and returns the collected
// suite. minBits and maxBits label the distribution in results and
// diagnostics; for file-supplied vectors pass 0 and 64.
//
// A round-trip mismatch aborts the suite immediately with a *MismatchError;
// partial results are discarded because a correctness failure invalidates
// comparisons.
func (r *Runner) RunSuite(values []uint64, minBits, maxBits uint) (Suite, error) {
	suite := Suite{
		MinBits:     minBits,
		MaxBits:     maxBits,
		Fingerprint: dataset.Fingerprint(values),
		Results:     make([]Result, 0, len(r.codecs)),
	}

	for _, c := range r.codecs {
		result, err := r.runCodec(c, values)
		if err != nil {
			if mismatch, ok := err.(*MismatchError); ok {
				mismatch.MinBits = minBits
				mismatch.MaxBits = maxBits
			}

			return Suite{}, err
		}
		suite.Results = append(suite.Results, result)
	}

	return suite, nil
}

// runCodec performs the measurement protocol for one codec:
// warm-up encode, timed encode, timed decode, round-trip verification.
func (r *Runner) runCodec(c codec.VarintCodec, values []uint64) (Result, error) {
	n := len(values)
	inputBytes := 8 * n

	// At least 2x the raw input size, and never below the codec's own bound.
	need := c.MaxEncodedLen(n)
	if need < 2*inputBytes {
		need = 2 * inputBytes
	}
	if cap(r.scratch) < need {
		r.scratch = make([]byte, 0, need)
	}

	// Warm-up run so cold caches and lazy initialization don't skew timing.
	if _, err := c.Encode(r.scratch[:0], values); err != nil {
		return Result{}, fmt.Errorf("bench: codec %s warm-up encode: %w", c.Name(), err)
	}

	start := time.Now()
	encoded, err := c.Encode(r.scratch[:0], values)
	encodeTime := time.Since(start)
	if err != nil {
		return Result{}, fmt.Errorf("bench: codec %s encode: %w", c.Name(), err)
	}

	decoded, cleanup := pool.GetUint64Slice(n)
	defer cleanup()

	// Benchmarks time the unchecked fast path when the codec has one,
	// preserving the performance characteristics of the unchecked design.
	var decodeTime time.Duration
	if unchecked, ok := c.(codec.UncheckedDecoder); ok {
		start = time.Now()
		unchecked.DecodeUnchecked(decoded, encoded)
		decodeTime = time.Since(start)
	} else {
		start = time.Now()
		err = c.Decode(decoded, encoded)
		decodeTime = time.Since(start)
		if err != nil {
			return Result{}, fmt.Errorf("bench: codec %s decode: %w", c.Name(), err)
		}
	}

	for i := range values {
		if decoded[i] != values[i] {
			return Result{}, &MismatchError{
				Codec: c.Name(),
				Index: i,
				Want:  values[i],
				Got:   decoded[i],
			}
		}
	}

	return Result{
		Codec:        c.Name(),
		Count:        n,
		InputBytes:   inputBytes,
		EncodedBytes: len(encoded),
		EncodeTime:   encodeTime,
		DecodeTime:   decodeTime,
	}, nil
}

func formatBits(minBits, maxBits uint) string {
	return fmt.Sprintf("%d-%d", minBits, maxBits)
}
