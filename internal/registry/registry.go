// Package registry collects the test case descriptors a suite registers.
package registry

import (
	"fmt"
	"reflect"
	"runtime"

	"github.com/rrost/xtl/pkg/ut/core"
)

// Descriptor identifies one registered test case.
type Descriptor struct {
	Name string
	Fn   core.CaseFunc
	File string
	Line int
	Seq  int
}

type caseCollector struct {
	cases []Descriptor
	seen  map[uintptr]bool
	err   error
}

// AddCase implements core.Registrar.
func (c *caseCollector) AddCase(name string, fn core.CaseFunc) {
	if c.err != nil {
		return
	}

	if fn == nil {
		c.err = fmt.Errorf("test case '%s' registered with a nil function", name)
		return
	}

	// Registration is keyed on the underlying function identity, so a
	// case registered twice yields exactly one descriptor.
	key := reflect.ValueOf(fn).Pointer()
	if c.seen[key] {
		return
	}
	c.seen[key] = true

	_, file, line, _ := runtime.Caller(1)
	c.cases = append(c.cases, Descriptor{
		Name: name,
		Fn:   fn,
		File: file,
		Line: line,
		Seq:  len(c.cases),
	})
}

// Collect runs the registrant's registration function and returns the
// ordered case descriptors. Collection happens once per suite, before
// any run, so no locking is needed here.
func Collect(r core.SuiteRegistrant) ([]Descriptor, error) {
	collector := caseCollector{
		cases: make([]Descriptor, 0),
		seen:  make(map[uintptr]bool),
	}

	if err := r.RegisterCases(&collector); err != nil {
		return nil, fmt.Errorf("failed to register test cases: %w", err)
	}

	if collector.err != nil {
		return nil, collector.err
	}

	// Check if names are valid and unique.
	names := make(map[string]bool)
	for _, testCase := range collector.cases {
		if names[testCase.Name] {
			return nil, fmt.Errorf("test case name '%s' is not unique", testCase.Name)
		}

		if err := core.ValidateEntityName(testCase.Name, "test case"); err != nil {
			return nil, err
		}

		names[testCase.Name] = true
	}

	return collector.cases, nil
}
