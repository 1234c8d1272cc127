// Command varbench compares variable-length integer codecs: it measures
// encode/decode throughput and bytes-per-integer for every registered codec
// across log-uniform input distributions, or against a file-supplied test
// vector.
//
// Usage:
//
//	varbench [flags] [testvector.txt]
//
// With no positional argument, synthetic log-uniform data is generated for
// each configured bit-range bucket. With a test-vector file (one unsigned
// decimal integer per line), the file's values are measured as a single
// bucket instead.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/arloliu/varbench/bench"
	"github.com/arloliu/varbench/codec"
	"github.com/arloliu/varbench/dataset"
)

var (
	count      = flag.Int("count", dataset.DefaultCount, "Number of integers to generate per distribution")
	seed       = flag.Int64("seed", 1, "Random seed for synthetic data generation")
	bitsFlag   = flag.String("bits", "0-8,0-16,0-32,0-48,0-64", "Comma-separated bit-range buckets, each min-max")
	codecsFlag = flag.String("codecs", "", "Comma-separated codec names to measure (default: all)")
)

type bitRange struct {
	min, max uint
}

func parseBitRanges(s string) ([]bitRange, error) {
	var ranges []bitRange
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		lo, hi, ok := strings.Cut(part, "-")
		if !ok {
			return nil, fmt.Errorf("invalid bit range %q: expected min-max", part)
		}

		minBits, err := strconv.ParseUint(lo, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid bit range %q: %w", part, err)
		}
		maxBits, err := strconv.ParseUint(hi, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid bit range %q: %w", part, err)
		}
		if maxBits > dataset.MaxBits || minBits > maxBits {
			return nil, fmt.Errorf("invalid bit range %q: bounds must satisfy min <= max <= %d", part, dataset.MaxBits)
		}

		ranges = append(ranges, bitRange{min: uint(minBits), max: uint(maxBits)})
	}

	return ranges, nil
}

func selectCodecs(filter string) ([]codec.VarintCodec, error) {
	if filter == "" {
		return codec.All(), nil
	}

	var selected []codec.VarintCodec
	for _, name := range strings.Split(filter, ",") {
		name = strings.TrimSpace(name)
		c, ok := codec.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", codec.ErrUnknownCodec, name)
		}
		selected = append(selected, c)
	}

	return selected, nil
}

func run() error {
	flag.Parse()

	codecs, err := selectCodecs(*codecsFlag)
	if err != nil {
		return err
	}

	runner := bench.NewRunner(codecs)
	reporter := bench.NewReporter(os.Stdout)

	var suites []bench.Suite

	if flag.NArg() > 0 {
		path := flag.Arg(0)
		values, err := dataset.ReadFile(path)
		if err != nil {
			return err
		}
		if len(values) == 0 {
			return fmt.Errorf("no valid integers in %s", path)
		}
		fmt.Printf("Read %d integers from %s.\n", len(values), path)

		suite, err := runner.RunSuite(values, 0, dataset.MaxBits)
		if err != nil {
			return err
		}
		reporter.PrintSuiteInfo(suite)
		suites = append(suites, suite)
	} else {
		ranges, err := parseBitRanges(*bitsFlag)
		if err != nil {
			return err
		}

		// One process-lifetime generator, seeded before any measurement.
		rng := rand.New(rand.NewSource(*seed))
		fmt.Printf("Generating %d log-uniform integers per distribution (seed %d).\n", *count, *seed)

		for _, br := range ranges {
			values, err := dataset.GenerateLogUniform(rng, dataset.Config{
				Count:   *count,
				MinBits: br.min,
				MaxBits: br.max,
			})
			if err != nil {
				return err
			}

			suite, err := runner.RunSuite(values, br.min, br.max)
			if err != nil {
				return err
			}
			reporter.PrintSuiteInfo(suite)
			suites = append(suites, suite)
		}
	}

	fmt.Println()
	reporter.Print(suites)

	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "varbench:", err)
		os.Exit(1)
	}
}
