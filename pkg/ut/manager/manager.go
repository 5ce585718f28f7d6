// Package manager aggregates test suites, runs them in registration
// order and collects their results.
package manager

import (
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/rrost/xtl/internal/cli"
	"github.com/rrost/xtl/internal/devops"
	"github.com/rrost/xtl/internal/reporter"
	"github.com/rrost/xtl/internal/runner"
	"github.com/rrost/xtl/internal/suite"
	"github.com/rrost/xtl/internal/uterror"
	"github.com/rrost/xtl/pkg/ut/core"
	"github.com/rrost/xtl/pkg/ut/result"
)

// DefaultName is the name the framework historically used for the
// process-wide manager.
const DefaultName = "XtlUtManager"

type Manager struct {
	name        string
	suites      []*suite.Suite
	ctx         *kong.Context
	Log         *logrus.Logger
	sink        io.Writer
	azureDevops bool

	// mu guards the result list and the currently executing suite.
	// Results may arrive from any goroutine a test case spawned and
	// must never be lost.
	mu      sync.Mutex
	results []result.Result
	current *suite.Suite
}

// Create builds a manager wired to the process command line.
func Create(name string) *Manager {
	if name == "" {
		name = DefaultName
	}

	ctx, global := cli.ParseCommandLine(name)
	logger := logrus.New()
	logger.SetLevel(global.Verbosity)
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors: true,
	})

	logger.Infof("Creating manager '%s'", name)

	m := New(name, logger, os.Stderr)
	m.ctx = ctx
	m.azureDevops = global.AzureDevops
	return m
}

// New builds a manager without command line handling, with logging and
// report output directed by the caller.
func New(name string, logger *logrus.Logger, sink io.Writer) *Manager {
	return &Manager{
		name:    name,
		suites:  make([]*suite.Suite, 0),
		Log:     logger,
		sink:    sink,
		results: make([]result.Result, 0),
	}
}

// Returns the name of the manager
func (m *Manager) Name() string {
	return m.name
}

func (m *Manager) Logger() *logrus.Logger {
	return m.Log
}

// AddSuite collects the registrant's test cases and appends the suite,
// keeping registration order for the run.
func (m *Manager) AddSuite(reg core.SuiteRegistrant) error {
	if slices.ContainsFunc(m.suites, func(s *suite.Suite) bool {
		return s.Name() == reg.Name()
	}) {
		return fmt.Errorf("suite '%s' already exists", reg.Name())
	}

	s, err := suite.New(reg, m.Log)
	if err != nil {
		return err
	}

	m.Log.Debugf("Registering suite '%s' - %d test cases collected", s.Name(), len(s.CaseNames()))
	m.suites = append(m.suites, s)
	return nil
}

// Returns all registered suites in registration order
func (m *Manager) Suites() []core.SuiteInfo {
	infos := make([]core.SuiteInfo, len(m.suites))
	for i, s := range m.suites {
		infos[i] = s
	}
	return infos
}

// Record implements runner.Recorder. It appends a result under the lock
// and reports the invalid-state condition when no suite is running.
func (m *Manager) Record(res result.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return uterror.NewInvalidState("no test suite is running, results cannot be recorded")
	}

	m.results = append(m.results, res)
	return nil
}

// CurrentSuite returns the suite presently executing. It never returns a
// stale value: outside a run it reports the invalid-state condition.
func (m *Manager) CurrentSuite() (*suite.Suite, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return nil, uterror.NewInvalidState("no test suite is running")
	}
	return m.current, nil
}

func (m *Manager) setCurrent(s *suite.Suite) {
	m.mu.Lock()
	m.current = s
	m.mu.Unlock()
}

// Results returns a copy of the results collected so far, in completion
// order.
func (m *Manager) Results() []result.Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.results)
}

// RunAll executes every registered suite in registration order. A fatal
// error stops the loop immediately and is returned. Any other error
// escaping a suite is recorded as a manager-level exception result and
// also ends the loop, so the collected results can be reported.
func (m *Manager) RunAll() error {
	defer m.setCurrent(nil)

	for _, s := range m.suites {
		m.setCurrent(s)

		if m.azureDevops {
			devops.OpenGroup(s.Name())
		}

		err := s.Run(m)

		if m.azureDevops {
			devops.CloseGroup()
		}

		if err == nil {
			continue
		}

		if uterror.IsFatal(err) {
			m.Log.WithError(err).Errorf("Suite '%s' aborted the run", s.Name())
			return err
		}

		m.Log.WithError(err).Errorf("Unexpected error escaped suite '%s'", s.Name())
		m.recordEscaped(s, err)
		break
	}

	return nil
}

// recordEscaped attributes a non-fatal error that escaped a suite's run
// to the manager itself.
func (m *Manager) recordEscaped(s *suite.Suite, err error) {
	file, line, _ := runner.CallerLocation(2)
	res := result.Exception(
		m.name,
		s.Name(),
		result.Location{File: file, Line: line},
		err.Error(),
	)

	if recErr := m.Record(res); recErr != nil {
		m.Log.WithError(recErr).Error("Failed to record escaped error")
	}
}

// Report renders every collected result, one line per result in
// completion order, to the diagnostic sink.
func (m *Manager) Report() error {
	results := m.Results()

	err := reporter.Print(m.sink, results)
	if err != nil {
		return err
	}

	summary := reporter.NewSummary(results)
	if m.azureDevops && !summary.Clean() {
		devops.LogError("Manager '%s' run failed: %s", m.name, summary.Summary())
	}

	return nil
}

// Summary returns the per-kind counts of the collected results, so
// callers can base a process exit status on them if they want one that
// reflects failures.
func (m *Manager) Summary() reporter.TestSummary {
	return reporter.NewSummary(m.Results())
}

// Run dispatches the parsed command line. The returned process exit
// status is always zero, whatever the individual case outcomes;
// Summary() exposes the counts for callers that want a failing exit.
func (m *Manager) Run() int {
	if m.ctx == nil {
		m.Log.Fatalf("Manager '%s' not initialized", m.name)
	}

	m.Log.Infof("Running manager '%s' - %d suites collected.", m.name, len(m.suites))
	m.ctx.BindTo(m, (*core.ManagerContext)(nil))
	err := m.ctx.Run()
	m.ctx.FatalIfErrorf(err)
	return 0
}
