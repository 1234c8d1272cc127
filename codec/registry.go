package codec

import (
	"slices"
	"strings"

	"github.com/arloliu/varbench/compress"
)

// registry is the fixed, process-wide codec table. It is populated once at
// package initialization and never mutated afterwards; the benchmark driver
// iterates it without compile-time knowledge of the individual schemes.
var registry = []VarintCodec{
	LEB128{},
	PrefixVarint{},
	LESQLite{},
	LESQLite2{},
	NibblePack{},
	mustBlockCodec("Snappy", compress.TypeSnappy),
	mustBlockCodec("S2", compress.TypeS2),
	mustBlockCodec("LZ4", compress.TypeLZ4),
	mustBlockCodec("Zstd", compress.TypeZstd),
}

func mustBlockCodec(name string, compressionType compress.Type) *BlockCodec {
	c, err := NewBlockCodec(name, compressionType)
	if err != nil {
		// Registry entries reference built-in compressors only; a failure
		// here is a programming error, not a runtime condition.
		panic(err)
	}

	return c
}

// All returns the registered codecs in their fixed registry order.
// The returned slice is a copy; callers may filter or reorder it freely.
func All() []VarintCodec {
	return slices.Clone(registry)
}

// Lookup returns the codec registered under name. The match is
// case-insensitive. The second return value reports whether a codec with
// that name exists.
func Lookup(name string) (VarintCodec, bool) {
	for _, c := range registry {
		if strings.EqualFold(c.Name(), name) {
			return c, true
		}
	}

	return nil, false
}
