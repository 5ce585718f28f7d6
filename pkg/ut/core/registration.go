package core

import (
	"fmt"
	"regexp"
)

// CaseFunc is the body of a single test case.
type CaseFunc = func(Case) error

type Registrar interface {
	// Register a test case with the given name. The name is used to
	// identify the test case in the suite and must be unique within it.
	// Test names MUST be accepted by the regular expression
	// `^[a-zA-Z0-9_]+$`. Registering the same underlying function a
	// second time is a no-op, only the first registration is kept.
	AddCase(name string, fn CaseFunc)
}

// SuiteRegistrant is implemented by every test suite. The manager calls
// RegisterCases once, when the suite is added, to collect its cases.
type SuiteRegistrant interface {
	Named
	RegisterCases(r Registrar) error
}

var entityNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// ValidateEntityName checks that a suite or test case name is usable in
// reports and on the command line.
func ValidateEntityName(name, kind string) error {
	if !entityNamePattern.MatchString(name) {
		return fmt.Errorf("invalid %s name '%s': must match %s", kind, name, entityNamePattern.String())
	}
	return nil
}
