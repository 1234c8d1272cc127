package codec

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestProperty_RoundTripLaw validates the core correctness contract:
// for every codec c and every finite sequence s,
// decode(c, encode(c, s), len(s)) == s.
func TestProperty_RoundTripLaw(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	for _, c := range All() {
		c := c
		properties.Property(c.Name()+" round-trips arbitrary sequences", prop.ForAll(
			func(values []uint64) bool {
				encoded, err := c.Encode(nil, values)
				if err != nil {
					return false
				}
				if len(encoded) > c.MaxEncodedLen(len(values)) {
					return false
				}

				decoded := make([]uint64, len(values))
				if err := c.Decode(decoded, encoded); err != nil {
					return false
				}
				for i := range values {
					if decoded[i] != values[i] {
						return false
					}
				}

				return true
			},
			gen.SliceOf(gen.UInt64()),
		))
	}

	properties.TestingRun(t)
}

// TestProperty_UncheckedMatchesChecked validates that the unchecked fast path
// and the checked path agree on every well-formed stream.
func TestProperty_UncheckedMatchesChecked(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	for _, c := range All() {
		unchecked, ok := c.(UncheckedDecoder)
		if !ok {
			continue
		}

		c := c
		properties.Property(c.Name()+" unchecked decode matches checked decode", prop.ForAll(
			func(values []uint64) bool {
				encoded, err := c.Encode(nil, values)
				if err != nil {
					return false
				}

				checked := make([]uint64, len(values))
				if err := c.Decode(checked, encoded); err != nil {
					return false
				}

				fast := make([]uint64, len(values))
				unchecked.DecodeUnchecked(fast, encoded)

				for i := range checked {
					if checked[i] != fast[i] {
						return false
					}
				}

				return true
			},
			gen.SliceOf(gen.UInt64()),
		))
	}

	properties.TestingRun(t)
}
