// Package result holds the immutable outcome records collected during a
// test run and their stable single-line rendering.
package result

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Location identifies the source position a result points at.
type Location struct {
	File string
	Line int
}

// Result is an immutable record of one test case's or one assertion's
// outcome. Construct it through the per-kind factories.
type Result struct {
	kind      Kind
	suite     string
	caseName  string
	function  string
	loc       Location
	message   string
	goroutine uint64
	logLines  []string
}

func newResult(kind Kind, suite, caseName, function string, loc Location, message string) Result {
	return Result{
		kind:      kind,
		suite:     suite,
		caseName:  caseName,
		function:  function,
		loc:       loc,
		message:   message,
		goroutine: goid(),
	}
}

// Success records a test case body that returned without failures.
func Success(suite, caseName string, loc Location) Result {
	return newResult(KindSuccess, suite, caseName, "", loc, "")
}

// Fail records a false assertion. The function is the name of the
// function enclosing the assertion call.
func Fail(suite, caseName, function string, loc Location, message string) Result {
	return newResult(KindFail, suite, caseName, function, loc, message)
}

// Error records a fatal internal-invariant violation.
func Error(suite, caseName string, loc Location, message string) Result {
	return newResult(KindError, suite, caseName, "", loc, message)
}

// Exception records an unexpected failure that escaped a test case or a
// suite run.
func Exception(suite, caseName string, loc Location, message string) Result {
	return newResult(KindException, suite, caseName, "", loc, message)
}

// Warning records an advisory outcome. Reserved, nothing emits it yet.
func Warning(suite, caseName string, loc Location, message string) Result {
	return newResult(KindWarning, suite, caseName, "", loc, message)
}

func (r Result) Kind() Kind { return r.kind }

func (r Result) Suite() string { return r.suite }

func (r Result) Case() string { return r.caseName }

func (r Result) Function() string { return r.function }

func (r Result) Location() Location { return r.loc }

func (r Result) Message() string { return r.message }

// Goroutine returns the id of the goroutine the result originated on.
func (r Result) Goroutine() uint64 { return r.goroutine }

// HasFunction is true only when a function name is present and would not
// just repeat the case name in the rendered line.
func (r Result) HasFunction() bool {
	return r.function != "" && r.function != r.caseName
}

// WithLog returns a copy of the result carrying the test case's captured
// log lines, for replay in the report.
func (r Result) WithLog(lines []string) Result {
	r.logLines = lines
	return r
}

func (r Result) LogLines() []string { return r.logLines }

// Render produces the single-line diagnostic form:
//
//	<KIND> <Suite>::<Case>[, <Function>()] at <File>, line <Line>[ - <Message>]
//
// The format is stable; Parse recovers the fields from it.
func (r Result) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s::%s", r.kind, r.suite, r.caseName)
	if r.HasFunction() {
		fmt.Fprintf(&b, ", %s()", r.function)
	}
	fmt.Fprintf(&b, " at %s, line %d", r.loc.File, r.loc.Line)
	if r.message != "" {
		fmt.Fprintf(&b, " - %s", r.message)
	}
	return b.String()
}

var renderedLine = regexp.MustCompile(
	`^([A-Z]+) ([A-Za-z0-9_]+)::([A-Za-z0-9_]+)(?:, ([A-Za-z0-9_.]+)\(\))? at (.+?), line (\d+)(?: - (.*))?$`)

// Parse recovers a result from its rendered line. The goroutine identity
// is not part of the format and is not restored.
func Parse(line string) (Result, error) {
	m := renderedLine.FindStringSubmatch(line)
	if m == nil {
		return Result{}, fmt.Errorf("not a rendered result line: '%s'", line)
	}

	kind, err := KindFromString(m[1])
	if err != nil {
		return Result{}, err
	}

	lineNo, err := strconv.Atoi(m[6])
	if err != nil {
		return Result{}, fmt.Errorf("invalid line number in result line: %v", err)
	}

	return Result{
		kind:     kind,
		suite:    m[2],
		caseName: m[3],
		function: m[4],
		loc:      Location{File: m[5], Line: lineNo},
		message:  m[7],
	}, nil
}
