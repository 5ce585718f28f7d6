// Package suite orchestrates the execution of one test suite: setup,
// the case loop with failure isolation, teardown.
package suite

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/rrost/xtl/internal/registry"
	"github.com/rrost/xtl/internal/runner"
	"github.com/rrost/xtl/internal/uterror"
	"github.com/rrost/xtl/pkg/ut/core"
)

// Suite is one named, runnable collection of test cases. The case list
// is collected once, at construction, and immutable afterwards.
type Suite struct {
	name    string
	reg     core.SuiteRegistrant
	cases   []registry.Descriptor
	current *registry.Descriptor
	log     *logrus.Logger
}

// New validates the registrant's name, collects its test cases and wraps
// them in a runnable suite.
func New(reg core.SuiteRegistrant, log *logrus.Logger) (*Suite, error) {
	if err := core.ValidateEntityName(reg.Name(), "suite"); err != nil {
		return nil, err
	}

	cases, err := registry.Collect(reg)
	if err != nil {
		return nil, fmt.Errorf("failed to collect cases for suite '%s': %w", reg.Name(), err)
	}

	return &Suite{
		name:  reg.Name(),
		reg:   reg,
		cases: cases,
		log:   log,
	}, nil
}

// Returns the name of the suite
func (s *Suite) Name() string {
	return s.name
}

func (s *Suite) Logger() *logrus.Logger {
	return s.log
}

// CaseNames returns the names of the suite's test cases in registration
// order.
func (s *Suite) CaseNames() []string {
	names := make([]string, len(s.cases))
	for i, c := range s.cases {
		names[i] = c.Name
	}
	return names
}

// CurrentCaseName returns the name of the test case presently executing.
// It never returns a stale value: outside a running case it reports the
// invalid-state condition.
func (s *Suite) CurrentCaseName() (string, error) {
	if s.current == nil {
		return "", uterror.NewInvalidState(fmt.Sprintf(
			"suite '%s' has no test case running", s.name,
		))
	}
	return s.current.Name, nil
}

// Run executes setup, every test case in registration order and
// teardown. Assertion failures stay local to their case; a fatal error
// aborts the case loop and is returned, after teardown, to abort the
// rest of the run.
func (s *Suite) Run(rec runner.Recorder) (err error) {
	s.log.Infof("run: %s", s.name)

	if hooks, ok := s.reg.(core.SetupTeardown); ok {
		if setupErr := runner.CatchPanic(func() error { return hooks.Setup(s) }); setupErr != nil {
			return fmt.Errorf("setup failed in suite '%s': %w", s.name, setupErr)
		}

		// Teardown is owed as soon as setup has succeeded, no matter how
		// the case loop exits.
		defer func() {
			tdErr := runner.CatchPanic(func() error { return hooks.Teardown(s) })
			if tdErr != nil && err == nil {
				err = fmt.Errorf("teardown failed in suite '%s': %w", s.name, tdErr)
			}
		}()
	}

	defer func() { s.current = nil }()

	for i := range s.cases {
		desc := &s.cases[i]
		s.current = desc
		s.log.Infof(" - %s", desc.Name)

		c := runner.NewCaseRun(*desc, i, s.name, s.log, rec)
		if caseErr := runner.ExecuteCase(c); caseErr != nil {
			return caseErr
		}

		s.current = nil
	}

	return nil
}
