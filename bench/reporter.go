package bench

import (
	"fmt"
	"io"
	"strings"
)

// Reporter renders suites as fixed-width comparison tables: rows are codec
// names, columns are bit-range buckets. Column alignment is presentation
// only; the content contract is one row per codec and one column per suite.
type Reporter struct {
	w io.Writer
}

// NewReporter creates a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Print renders all comparison tables for the given suites:
// encode throughput, decode throughput, and encoded density.
func (r *Reporter) Print(suites []Suite) {
	if len(suites) == 0 {
		return
	}

	r.printTable(suites, "Encode throughput (MB/s)", Result.EncodeThroughputMBps, "%*.1f")
	r.printTable(suites, "Decode throughput (MB/s)", Result.DecodeThroughputMBps, "%*.1f")
	r.printTable(suites, "Encoded size (bytes/integer)", Result.BytesPerInt, "%*.3f")
}

const (
	nameColWidth  = 14
	valueColWidth = 12
)

// printTable renders one metric across all suites. Codec order is taken from
// the first suite; all suites in a run share it.
func (r *Reporter) printTable(suites []Suite, title string, metric func(Result) float64, cellFormat string) {
	fmt.Fprintf(r.w, "=== %s ===\n\n", title)

	// Header row: bit-range bucket labels.
	fmt.Fprintf(r.w, "%-*s", nameColWidth, "codec")
	for _, s := range suites {
		fmt.Fprintf(r.w, " | %*s", valueColWidth, "bits "+s.Label())
	}
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, strings.Repeat("-", nameColWidth+len(suites)*(valueColWidth+3)))

	for row, result := range suites[0].Results {
		fmt.Fprintf(r.w, "%-*s", nameColWidth, result.Codec)
		for _, s := range suites {
			fmt.Fprintf(r.w, " | "+cellFormat, valueColWidth, metric(s.Results[row]))
		}
		fmt.Fprintln(r.w)
	}
	fmt.Fprintln(r.w)
}

// PrintSuiteInfo writes the per-distribution run summary: element count and
// input fingerprint, confirming all codecs saw identical data.
func (r *Reporter) PrintSuiteInfo(s Suite) {
	count := 0
	if len(s.Results) > 0 {
		count = s.Results[0].Count
	}
	fmt.Fprintf(r.w, "bits %s: %d integers, input fingerprint %016x\n", s.Label(), count, s.Fingerprint)
}
