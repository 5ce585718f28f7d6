package runner

import (
	"bytes"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rrost/xtl/internal/registry"
	"github.com/rrost/xtl/internal/uterror"
	"github.com/rrost/xtl/pkg/ut/result"
)

// Recorder receives results as test cases produce them.
type Recorder interface {
	Record(res result.Result) error
}

type caseStatus int

const (
	caseRunning caseStatus = iota
	// caseAborted means a required assertion failed and already recorded
	// its fail result; the case contributes nothing more.
	caseAborted
	caseClosed
)

// CaseRun is the live state of one executing test case. It implements
// core.Case for the case body.
type CaseRun struct {
	desc      registry.Descriptor
	index     int
	suiteName string
	suiteLog  *logrus.Logger
	recorder  Recorder
	status    caseStatus
	startTime time.Time
	endTime   time.Time
	log       *logrus.Logger
	logBuffer bytes.Buffer
}

// Implementer of logrus.Hook interface to tee log messages from the test
// case logger to the suite logger
type caseLogTee struct {
	suiteLogger *logrus.Logger
	testCaseId  string
}

func (tee caseLogTee) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (tee caseLogTee) Fire(entry *logrus.Entry) error {
	// Make a shallow copy so that we can modify the logger pointer
	newEntry := tee.suiteLogger.WithFields(entry.Data)
	newEntry.Caller = entry.Caller
	newEntry.Log(entry.Level, fmt.Sprintf("[%s] > %s", tee.testCaseId, entry.Message))
	return nil
}

func NewCaseRun(desc registry.Descriptor, index int, suiteName string, suiteLog *logrus.Logger, rec Recorder) *CaseRun {
	c := &CaseRun{
		desc:      desc,
		index:     index,
		suiteName: suiteName,
		suiteLog:  suiteLog,
		recorder:  rec,
		status:    caseRunning,
		startTime: time.Now(),
		log:       logrus.New(),
	}

	c.log.SetLevel(logrus.TraceLevel)
	c.log.SetOutput(&c.logBuffer)
	c.log.SetFormatter(&logrus.TextFormatter{
		ForceColors:      true,
		DisableTimestamp: false,
	})
	c.log.AddHook(caseLogTee{
		suiteLogger: suiteLog,
		testCaseId:  c.id(),
	})
	c.log.SetReportCaller(true)

	return c
}

func (c *CaseRun) id() string {
	return fmt.Sprintf("%04d:%s", c.index, c.desc.Name)
}

func (c *CaseRun) Name() string {
	return c.desc.Name
}

func (c *CaseRun) SuiteName() string {
	return c.suiteName
}

func (c *CaseRun) Location() (string, int) {
	return c.desc.File, c.desc.Line
}

func (c *CaseRun) Logger() *logrus.Logger {
	return c.log
}

func (c *CaseRun) RunTime() time.Duration {
	if c.status == caseRunning {
		return time.Since(c.startTime)
	}

	return c.endTime.Sub(c.startTime)
}

func (c *CaseRun) LogLines() []string {
	rawLines := bytes.Split(c.logBuffer.Bytes(), []byte("\n"))
	lines := make([]string, len(rawLines))
	for i, line := range rawLines {
		lines[i] = string(line)
	}

	return lines
}

// Require implements core.Case.
func (c *CaseRun) Require(cond bool, expr string) {
	if c.assert(cond, expr) {
		return
	}

	c.status = caseAborted
	c.suiteLog.Tracef(
		"Stopping execution of [%s] due to a failed required assertion",
		c.id(),
	)
	runtime.Goexit()
}

// Check implements core.Case.
func (c *CaseRun) Check(cond bool, expr string) {
	c.assert(cond, expr)
}

// assert records a fail result for a false condition and returns whether
// the condition held. Called outside the case's run it raises the fatal
// invalid-state condition, which aborts the whole run.
func (c *CaseRun) assert(cond bool, expr string) bool {
	if c.status != caseRunning {
		panic(uterror.NewInvalidState(fmt.Sprintf(
			"assertion on test case '%s' outside its run", c.desc.Name,
		)))
	}

	if cond {
		return true
	}

	file, line, function := CallerLocation(3)
	res := result.Fail(
		c.suiteName,
		c.desc.Name,
		function,
		result.Location{File: file, Line: line},
		"Assertion failed: "+expr,
	)

	if err := c.recorder.Record(res); err != nil {
		panic(uterror.NewInvalidState(err.Error()))
	}

	c.log.WithField("expr", expr).Error("Assertion failed")
	return false
}

// finish closes the case with its final result. The runErr is whatever
// escaped the case body, nil for a normal return.
func (c *CaseRun) finish(runErr error) error {
	c.endTime = time.Now()

	loc := result.Location{File: c.desc.File, Line: c.desc.Line}

	var res result.Result
	switch {
	case c.status == caseAborted:
		// The failed assertion already recorded the fail result.
		c.closeLog(result.KindFail)
		return nil
	case runErr == nil:
		res = result.Success(c.suiteName, c.desc.Name, loc)
	case uterror.IsFatal(runErr):
		res = result.Error(c.suiteName, c.desc.Name, loc, runErr.Error())
	default:
		res = result.Exception(c.suiteName, c.desc.Name, loc, runErr.Error())
	}

	if res.Kind().IsBad() {
		res = res.WithLog(c.LogLines())
	}

	c.closeLog(res.Kind())
	return c.recorder.Record(res)
}

// closeLog marks the case closed and emits the status line to the suite
// logger at the kind's level.
func (c *CaseRun) closeLog(kind result.Kind) {
	c.status = caseClosed
	c.log.Out = io.Discard

	c.suiteLog.
		WithField("testCase", c.desc.Name).
		WithField("status", kind.String()).
		Logf(kind.LogLevel(), "%s: %s (%s)", c.desc.Name, kind.String(), c.RunTime())
}
