package compress

import (
	"fmt"
	"testing"
)

// generateBenchmarkData creates test data for benchmarks.
func generateBenchmarkData(size int, compressibility string) []byte {
	data := make([]byte, size)

	switch compressibility {
	case "highly_compressible":
		// All zeros - maximum compression
		// data already initialized to zeros
	case "compressible":
		// Repeated pattern - good compression
		pattern := []byte("1234567890 9876543210 1234567890 42")
		for i := range data {
			data[i] = pattern[i%len(pattern)]
		}
	default:
		// Default to incompressible
		for i := range data {
			data[i] = byte((i*31 + i*i*7 + i*i*i*3) % 256)
		}
	}

	return data
}

func BenchmarkCompress(b *testing.B) {
	benchSizes := []int{4096, 65536, 1024 * 1024}

	for _, ct := range []Type{TypeSnappy, TypeS2, TypeLZ4, TypeZstd} {
		codec, err := GetCodec(ct)
		if err != nil {
			b.Fatal(err)
		}

		for _, size := range benchSizes {
			data := generateBenchmarkData(size, "compressible")
			b.Run(fmt.Sprintf("%s/%d", ct, size), func(b *testing.B) {
				b.SetBytes(int64(size))
				b.ResetTimer()
				for b.Loop() {
					_, _ = codec.Compress(data)
				}
			})
		}
	}
}

func BenchmarkDecompress(b *testing.B) {
	const size = 1024 * 1024

	for _, ct := range []Type{TypeSnappy, TypeS2, TypeLZ4, TypeZstd} {
		codec, err := GetCodec(ct)
		if err != nil {
			b.Fatal(err)
		}

		data := generateBenchmarkData(size, "compressible")
		compressed, err := codec.Compress(data)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(ct.String(), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ResetTimer()
			for b.Loop() {
				_, _ = codec.Decompress(compressed)
			}
		})
	}
}
