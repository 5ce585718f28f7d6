package manager

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrost/xtl/internal/uterror"
	"github.com/rrost/xtl/pkg/ut/core"
	"github.com/rrost/xtl/pkg/ut/result"
)

func testManager(sink io.Writer) *Manager {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New("TestManager", log, sink)
}

type passingSuite struct{}

func (s *passingSuite) Name() string { return "MySuite" }

func (s *passingSuite) RegisterCases(r core.Registrar) error {
	r.AddCase("test1", s.test1)
	r.AddCase("test2", s.test2)
	r.AddCase("test3", s.test3)
	return nil
}

func (s *passingSuite) test1(core.Case) error { return nil }
func (s *passingSuite) test2(core.Case) error { return nil }
func (s *passingSuite) test3(core.Case) error { return nil }

type mixedSuite struct{}

func (s *mixedSuite) Name() string { return "MySuite2" }

func (s *mixedSuite) RegisterCases(r core.Registrar) error {
	r.AddCase("test1", s.test1)
	r.AddCase("test2", s.test2)
	r.AddCase("test3", s.test3)
	return nil
}

func (s *mixedSuite) test1(core.Case) error { return fmt.Errorf("simulated failure") }
func (s *mixedSuite) test2(core.Case) error { return nil }
func (s *mixedSuite) test3(core.Case) error { return nil }

func TestRunAllCollectsResultsInOrder(t *testing.T) {
	var buf bytes.Buffer
	m := testManager(&buf)

	require.NoError(t, m.AddSuite(&passingSuite{}))
	require.NoError(t, m.AddSuite(&mixedSuite{}))

	require.NoError(t, m.RunAll())

	results := m.Results()
	require.Len(t, results, 6)

	expected := []struct {
		kind     result.Kind
		suite    string
		caseName string
	}{
		{result.KindSuccess, "MySuite", "test1"},
		{result.KindSuccess, "MySuite", "test2"},
		{result.KindSuccess, "MySuite", "test3"},
		{result.KindException, "MySuite2", "test1"},
		{result.KindSuccess, "MySuite2", "test2"},
		{result.KindSuccess, "MySuite2", "test3"},
	}

	for i, want := range expected {
		assert.Equal(t, want.kind, results[i].Kind(), "result %d", i)
		assert.Equal(t, want.suite, results[i].Suite(), "result %d", i)
		assert.Equal(t, want.caseName, results[i].Case(), "result %d", i)
	}
}

func TestReportRendersOneParseableLinePerResult(t *testing.T) {
	var buf bytes.Buffer
	m := testManager(&buf)

	require.NoError(t, m.AddSuite(&passingSuite{}))
	require.NoError(t, m.RunAll())
	require.NoError(t, m.Report())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 5)

	for i, caseName := range []string{"test1", "test2", "test3"} {
		parsed, err := result.Parse(lines[i])
		require.NoError(t, err, "line: %s", lines[i])
		assert.Equal(t, result.KindSuccess, parsed.Kind())
		assert.Equal(t, "MySuite", parsed.Suite())
		assert.Equal(t, caseName, parsed.Case())
	}

	assert.Contains(t, lines[len(lines)-1], "TEST RESULT:")
	assert.Contains(t, lines[len(lines)-1], "passed: 3; total: 3")
}

func TestReportFailsWithoutResults(t *testing.T) {
	var buf bytes.Buffer
	m := testManager(&buf)

	require.Error(t, m.Report())
}

type staleHandleSuite struct {
	stale core.Case
}

func (s *staleHandleSuite) Name() string { return "Stale" }

func (s *staleHandleSuite) RegisterCases(r core.Registrar) error {
	r.AddCase("leak", s.leak)
	r.AddCase("misuse", s.misuse)
	return nil
}

func (s *staleHandleSuite) leak(c core.Case) error {
	s.stale = c
	return nil
}

func (s *staleHandleSuite) misuse(core.Case) error {
	s.stale.Require(true, "true")
	return nil
}

type neverRunSuite struct {
	ran bool
}

func (s *neverRunSuite) Name() string { return "NeverRun" }

func (s *neverRunSuite) RegisterCases(r core.Registrar) error {
	r.AddCase("test1", s.test1)
	return nil
}

func (s *neverRunSuite) test1(core.Case) error {
	s.ran = true
	return nil
}

func TestFatalErrorStopsRemainingSuites(t *testing.T) {
	var buf bytes.Buffer
	m := testManager(&buf)

	later := &neverRunSuite{}
	require.NoError(t, m.AddSuite(&staleHandleSuite{}))
	require.NoError(t, m.AddSuite(later))

	err := m.RunAll()
	require.Error(t, err)
	assert.True(t, uterror.IsFatal(err))
	assert.False(t, later.ran)

	results := m.Results()
	require.Len(t, results, 2)
	assert.Equal(t, result.KindSuccess, results[0].Kind())
	assert.Equal(t, result.KindError, results[1].Kind())
	assert.Equal(t, "misuse", results[1].Case())

	// The run is over, nothing is current anymore.
	_, err = m.CurrentSuite()
	require.Error(t, err)
}

type setupFailSuite struct{}

func (s *setupFailSuite) Name() string { return "SetupFail" }

func (s *setupFailSuite) Setup(core.HookContext) error {
	return fmt.Errorf("no fixture available")
}

func (s *setupFailSuite) Teardown(core.HookContext) error { return nil }

func (s *setupFailSuite) RegisterCases(r core.Registrar) error {
	r.AddCase("test1", func(core.Case) error { return nil })
	return nil
}

func TestEscapedSuiteErrorIsRecordedAgainstTheManager(t *testing.T) {
	var buf bytes.Buffer
	m := testManager(&buf)

	require.NoError(t, m.AddSuite(&setupFailSuite{}))

	// Non-fatal escaping errors end the run loop but are not returned;
	// reporting still happens.
	require.NoError(t, m.RunAll())

	results := m.Results()
	require.Len(t, results, 1)
	assert.Equal(t, result.KindException, results[0].Kind())
	assert.Equal(t, "TestManager", results[0].Suite())
	assert.Equal(t, "SetupFail", results[0].Case())
	assert.Contains(t, results[0].Message(), "setup failed")
}

func TestRecordOutsideARunIsInvalidState(t *testing.T) {
	m := testManager(io.Discard)

	err := m.Record(result.Warning("MySuite", "test1", result.Location{File: "f.go", Line: 1}, "advisory"))
	require.Error(t, err)
	assert.True(t, uterror.IsFatal(err))
	assert.Empty(t, m.Results())
}

func TestAddSuiteRejectsDuplicatesAndBadNames(t *testing.T) {
	m := testManager(io.Discard)

	require.NoError(t, m.AddSuite(&passingSuite{}))
	require.Error(t, m.AddSuite(&passingSuite{}))

	require.Error(t, m.AddSuite(&badNameSuite{}))
}

type badNameSuite struct{}

func (s *badNameSuite) Name() string { return "My Suite" }

func (s *badNameSuite) RegisterCases(r core.Registrar) error {
	r.AddCase("test1", func(core.Case) error { return nil })
	return nil
}

type concurrentSuite struct{}

func (s *concurrentSuite) Name() string { return "Concurrent" }

func (s *concurrentSuite) RegisterCases(r core.Registrar) error {
	r.AddCase("fanout", s.fanout)
	return nil
}

func (s *concurrentSuite) fanout(c core.Case) error {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Check(false, "false")
		}()
	}
	wg.Wait()
	return nil
}

func TestConcurrentResultRecordingLosesNothing(t *testing.T) {
	m := testManager(io.Discard)

	require.NoError(t, m.AddSuite(&concurrentSuite{}))
	require.NoError(t, m.RunAll())

	summary := m.Summary()
	assert.False(t, summary.Clean())

	fails := 0
	for _, res := range m.Results() {
		if res.Kind() == result.KindFail {
			fails++
		}
	}
	assert.Equal(t, 32, fails)
	assert.Len(t, m.Results(), 33)
}

func TestSuitesExposesNamesAndCases(t *testing.T) {
	m := testManager(io.Discard)
	require.NoError(t, m.AddSuite(&passingSuite{}))

	suites := m.Suites()
	require.Len(t, suites, 1)
	assert.Equal(t, "MySuite", suites[0].Name())
	assert.Equal(t, []string{"test1", "test2", "test3"}, suites[0].CaseNames())
}
