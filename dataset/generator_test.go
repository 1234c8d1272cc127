package dataset

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default", DefaultConfig(), false},
		{"narrow range", Config{Count: 10, MinBits: 8, MaxBits: 16}, false},
		{"zero count", Config{Count: 0, MinBits: 0, MaxBits: 64}, true},
		{"negative count", Config{Count: -1, MinBits: 0, MaxBits: 64}, true},
		{"bits too large", Config{Count: 10, MinBits: 0, MaxBits: 65}, true},
		{"inverted bounds", Config{Count: 10, MinBits: 32, MaxBits: 16}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestGenerateLogUniform_CountAndSeedDeterminism(t *testing.T) {
	cfg := Config{Count: 10_000, MinBits: 0, MaxBits: 64}

	first, err := GenerateLogUniform(rand.New(rand.NewSource(42)), cfg)
	require.NoError(t, err)
	require.Len(t, first, cfg.Count)

	second, err := GenerateLogUniform(rand.New(rand.NewSource(42)), cfg)
	require.NoError(t, err)
	require.Equal(t, first, second)

	other, err := GenerateLogUniform(rand.New(rand.NewSource(43)), cfg)
	require.NoError(t, err)
	require.NotEqual(t, first, other)
}

func TestGenerateLogUniform_RespectsBitRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	values, err := GenerateLogUniform(rng, Config{Count: 50_000, MinBits: 8, MaxBits: 24})
	require.NoError(t, err)

	for _, v := range values {
		// exp(8*ln2) = 256 is the smallest value; the top of the range is
		// exclusive of exp(24*ln2) up to float rounding.
		require.GreaterOrEqual(t, bits.Len64(v), 8)
		require.LessOrEqual(t, bits.Len64(v), 25)
	}
}

func TestGenerateLogUniform_ByteClassCoverage(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	const count = 200_000
	values, err := GenerateLogUniform(rng, Config{Count: count, MinBits: 0, MaxBits: 64})
	require.NoError(t, err)

	// Bucket by the byte-length class a continuation-bit codec would use:
	// class k covers significant-bit counts 7(k-1)+1 .. 7k.
	var classes [11]int
	for _, v := range values {
		k := (max(bits.Len64(v), 1) + 6) / 7
		classes[k]++
	}

	// Classes 1-9 each cover 7 of the 64 octaves, so they should receive
	// roughly equal mass; class 10 covers only bit 64.
	expected := float64(count) * 7.0 / 64.0
	for k := 1; k <= 9; k++ {
		require.InEpsilon(t, expected, float64(classes[k]), 0.15,
			"byte-length class %d count %d", k, classes[k])
	}
	require.Greater(t, classes[10], 0)
	require.Less(t, classes[10], classes[9])
}

func TestGenerateLogUniform_InvalidConfig(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := GenerateLogUniform(rng, Config{Count: 0, MinBits: 0, MaxBits: 64})
	require.Error(t, err)
}
