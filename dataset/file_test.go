package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeVectorFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "vector.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestReadFile(t *testing.T) {
	path := writeVectorFile(t, "0\n1\n127\n128\n18446744073709551615\n")

	values, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []uint64{0, 1, 127, 128, ^uint64(0)}, values)
}

func TestReadFile_SkipsMalformedLines(t *testing.T) {
	content := "10\n\nnot-a-number\n-5\n3.14\n 42 \n18446744073709551616\n7\n"
	path := writeVectorFile(t, content)

	// Blank lines, negatives, floats and out-of-range values are skipped;
	// whitespace-padded valid lines are kept, and order is preserved.
	values, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []uint64{10, 42, 7}, values)
}

func TestReadFile_Empty(t *testing.T) {
	path := writeVectorFile(t, "")

	values, err := ReadFile(path)
	require.NoError(t, err)
	require.Empty(t, values)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	require.Error(t, err)
}
