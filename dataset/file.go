package dataset

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadFile reads a test vector from a line-oriented text file: one unsigned
// decimal 64-bit integer per line. Lines that do not parse as such
// (including blank lines) are skipped; the order of valid lines is
// preserved. I/O errors are returned and should be treated as fatal setup
// errors by the caller.
func ReadFile(path string) ([]uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open test vector: %w", err)
	}
	defer f.Close()

	var values []uint64

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		v, err := strconv.ParseUint(line, 10, 64)
		if err != nil {
			// Malformed lines are skipped, not fatal.
			continue
		}
		values = append(values, v)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}

	return values, nil
}
