package dataset

import (
	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/varbench/endian"
)

// Fingerprint computes the xxHash64 of the little-endian serialization of
// values. The benchmark driver logs it per distribution so a run can assert
// that every codec measured against bit-identical input.
func Fingerprint(values []uint64) uint64 {
	engine := endian.GetLittleEndianEngine()

	d := xxhash.New()

	var buf [8]byte
	for _, v := range values {
		engine.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}
