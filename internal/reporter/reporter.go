// Package reporter renders collected results as a plain-text report.
package reporter

import (
	"fmt"
	"io"

	"github.com/rrost/xtl/pkg/ut/result"
)

// Print renders every result to w, one line per result in completion
// order, replaying captured logs for non-success cases, followed by a
// summary block. Returns an error when no results were collected.
func Print(w io.Writer, results []result.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("no test cases were run")
	}

	for _, res := range results {
		if _, err := fmt.Fprintln(w, res.Render()); err != nil {
			return err
		}

		if !res.Kind().IsBad() {
			continue
		}

		for _, line := range res.LogLines() {
			if line == "" {
				continue
			}
			fmt.Fprintln(w, "    ", stripANSI(line))
		}
	}

	summary := NewSummary(results)
	fmt.Fprintln(w, separator())
	fmt.Fprintf(w, "TEST RESULT: %s. %s\n", summary.Status().ColorString(), summary.Summary())

	return nil
}
