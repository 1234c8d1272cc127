package compress

// ZstdCompressor provides Zstandard compression.
//
// Zstd is the compression-ratio end of the baseline spectrum: it is the
// slowest codec in the registry but sets the bar for achievable density on
// log-uniform integer data. Two implementations exist behind this type,
// selected at build time:
//   - zstd_pure.go: pure-Go klauspost/compress encoder (default, no cgo)
//   - zstd_cgo.go: valyala/gozstd binding to libzstd when cgo is enabled
//
// Both produce standard Zstandard frames and are mutually decodable.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
