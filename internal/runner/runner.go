// Package runner executes a single test case to completion and records
// its outcome.
package runner

import (
	"runtime"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/rrost/xtl/internal/uterror"
)

// ExecuteCase runs the case body and records exactly one outcome, except
// for the aborted path whose fail result the assertion already recorded.
// The returned error is non-nil only for fatal conditions, which abort
// the remainder of the run.
func ExecuteCase(c *CaseRun) error {
	var err error
	var wg sync.WaitGroup

	// Run the case body in a separate goroutine so that runtime.Goexit()
	// can be called to stop only this test case.
	wg.Add(1)
	go func() {
		defer wg.Done()
		err = CatchPanic(func() error { return c.desc.Fn(c) })
	}()

	// Wait for the goroutine to finish and close the case with whatever
	// error we receive, if any.
	wg.Wait()

	if recErr := c.finish(err); recErr != nil {
		return recErr
	}

	if err != nil && uterror.IsFatal(err) {
		return err
	}

	return nil
}

// CatchPanic runs f, converting a panic into an error. A panic carrying
// a fatal error is passed through unwrapped so it keeps aborting the
// run.
func CatchPanic(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && uterror.IsFatal(e) {
				err = e
				return
			}
			err = uterror.NewPanicError(r, debug.Stack())
		}
	}()

	return f()
}

// CallerLocation resolves the file, line and short function name of the
// caller at the given skip depth.
func CallerLocation(skip int) (file string, line int, function string) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown", 0, ""
	}

	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return file, line, ""
	}

	name := fn.Name()
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	// Method values carry a "-fm" suffix.
	name = strings.TrimSuffix(name, "-fm")

	return file, line, name
}
