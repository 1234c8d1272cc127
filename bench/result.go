// Package bench drives the codec comparison: it times encode and decode for
// every registered codec over each input distribution, enforces the
// round-trip invariant, and renders the collected results as comparison
// tables.
package bench

import "time"

// Result captures one timed (codec, distribution) measurement.
// It is immutable after creation; throughput and density figures are derived
// on demand rather than stored.
type Result struct {
	// Codec is the registry name of the measured codec.
	Codec string
	// Count is the number of integers in the input sequence.
	Count int
	// InputBytes is the raw size of the input (8 bytes per integer).
	InputBytes int
	// EncodedBytes is the size of the codec's output.
	EncodedBytes int
	// EncodeTime is the wall-clock duration of the single timed encode call.
	EncodeTime time.Duration
	// DecodeTime is the wall-clock duration of the single timed decode call.
	DecodeTime time.Duration
}

// EncodeThroughputMBps returns encode throughput as input megabytes consumed
// per second.
func (r Result) EncodeThroughputMBps() float64 {
	secs := r.EncodeTime.Seconds()
	if secs <= 0 {
		return 0
	}

	return float64(r.InputBytes) / secs / 1e6
}

// DecodeThroughputMBps returns decode throughput as encoded megabytes
// consumed per second.
func (r Result) DecodeThroughputMBps() float64 {
	secs := r.DecodeTime.Seconds()
	if secs <= 0 {
		return 0
	}

	return float64(r.EncodedBytes) / secs / 1e6
}

// BytesPerInt returns the average encoded size per integer.
func (r Result) BytesPerInt() float64 {
	if r.Count == 0 {
		return 0
	}

	return float64(r.EncodedBytes) / float64(r.Count)
}

// CompressionRatio returns encoded size over raw input size
// (< 1.0 means the codec saved space).
func (r Result) CompressionRatio() float64 {
	if r.InputBytes == 0 {
		return 0
	}

	return float64(r.EncodedBytes) / float64(r.InputBytes)
}

// Suite collects the results of one input distribution across all codecs.
type Suite struct {
	// MinBits and MaxBits are the significant-bit bounds of the distribution,
	// or 0 and 64 for file-supplied vectors.
	MinBits uint
	MaxBits uint
	// Fingerprint is the xxHash64 of the input sequence all codecs saw.
	Fingerprint uint64
	// Results holds one entry per codec in run order.
	Results []Result
}

// Label returns the bucket label used as a report column header, e.g. "0-16".
func (s Suite) Label() string {
	return formatBits(s.MinBits, s.MaxBits)
}
