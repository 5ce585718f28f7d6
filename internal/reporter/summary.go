package reporter

import (
	"fmt"
	"strings"

	"github.com/rrost/xtl/pkg/ut/result"
)

// TestSummary counts collected results by kind.
type TestSummary struct {
	total      int
	succeeded  int
	failed     int
	errored    int
	exceptions int
	warnings   int
}

func NewSummary(results []result.Result) TestSummary {
	var summary TestSummary

	for _, res := range results {
		summary.total++
		switch res.Kind() {
		case result.KindSuccess:
			summary.succeeded++
		case result.KindFail:
			summary.failed++
		case result.KindError:
			summary.errored++
		case result.KindException:
			summary.exceptions++
		case result.KindWarning:
			summary.warnings++
		default:
			panic("Invalid result kind")
		}
	}

	return summary
}

func (s TestSummary) Status() TestSummaryStatus {
	if s.errored > 0 || s.exceptions > 0 {
		return TestStatusError
	}
	if s.failed > 0 {
		return TestStatusFailed
	}
	return TestStatusOk
}

// Clean reports whether no failure of any kind was collected.
func (s TestSummary) Clean() bool {
	return !s.Status().IsBad()
}

func (s TestSummary) Summary() string {
	var out []string

	if s.failed > 0 {
		out = append(out, fmt.Sprintf("failed: %d", s.failed))
	}

	if s.errored > 0 {
		out = append(out, fmt.Sprintf("errored: %d", s.errored))
	}

	if s.exceptions > 0 {
		out = append(out, fmt.Sprintf("exceptions: %d", s.exceptions))
	}

	if s.warnings > 0 {
		out = append(out, fmt.Sprintf("warnings: %d", s.warnings))
	}

	out = append(out, fmt.Sprintf("passed: %d", s.succeeded))
	out = append(out, fmt.Sprintf("total: %d", s.total))

	return strings.Join(out, "; ")
}
