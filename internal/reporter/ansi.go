package reporter

import "regexp"

// ANSI escape code cleaner
var ansiCleaner = regexp.MustCompile(`(\x9B|\x1B\[)[0-?]*[ -\/]*[@-~]`)

// stripANSI removes terminal escape codes so replayed test case logs
// stay plain text in the report.
func stripANSI(line string) string {
	return ansiCleaner.ReplaceAllString(line, "")
}
