package core

import "github.com/sirupsen/logrus"

// Case is the handle passed to a test case body while it runs.
type Case interface {
	Named

	// SuiteName returns the name of the enclosing suite.
	SuiteName() string

	// Location returns the source file and line where the case was
	// registered.
	Location() (file string, line int)

	// Logger returns the case-local logger. Its output is buffered with
	// the case and teed to the suite logger.
	Logger() *logrus.Logger

	// Require evaluates a condition the case cannot proceed without. On
	// failure it records a fail result and stops the case by calling
	// runtime.Goexit(), which then runs all deferred calls in the
	// current goroutine. The suite continues with the next case.
	Require(cond bool, expr string)

	// Check evaluates a condition, records a fail result when it is
	// false and lets the case continue.
	Check(cond bool, expr string)
}
