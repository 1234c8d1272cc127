package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetUint64Slice(t *testing.T) {
	slice, cleanup := GetUint64Slice(100)
	require.Len(t, slice, 100)

	for i := range slice {
		slice[i] = uint64(i)
	}
	cleanup()

	// Reacquired slice has the requested length regardless of prior use.
	slice2, cleanup2 := GetUint64Slice(10)
	defer cleanup2()
	require.Len(t, slice2, 10)
}

func TestGetUint64Slice_GrowsBeyondPooled(t *testing.T) {
	small, cleanup := GetUint64Slice(4)
	require.Len(t, small, 4)
	cleanup()

	large, cleanup2 := GetUint64Slice(1 << 16)
	defer cleanup2()
	require.Len(t, large, 1<<16)
}
