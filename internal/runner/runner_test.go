package runner

import (
	"fmt"
	"testing"

	"github.com/rrost/xtl/internal/uterror"
)

func TestCatchPanic(t *testing.T) {
	t.Run("no panic", func(t *testing.T) {
		err := CatchPanic(func() error { return nil })
		if err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("error", func(t *testing.T) {
		err := CatchPanic(func() error { return fmt.Errorf("test error") })
		if err == nil {
			t.Errorf("expected an error, got nil")
		}

		if _, ok := err.(uterror.PanicError); ok {
			t.Errorf("expected non-panic error, got panic error")
		}

		if err.Error() != "test error" {
			t.Errorf("expected test error, got %v", err)
		}
	})

	t.Run("panic", func(t *testing.T) {
		err := CatchPanic(func() error {
			panic("test panic")
		})
		if err == nil {
			t.Errorf("expected an error, got nil")
		}

		pe, ok := err.(uterror.PanicError)
		if !ok {
			t.Errorf("expected panic error, got non-panic error")
		}

		if pe.Error() != "panic occurred: test panic" {
			t.Errorf("expected panic error, got %v", pe)
		}
	})

	t.Run("fatal panic passes through", func(t *testing.T) {
		err := CatchPanic(func() error {
			panic(uterror.NewInvalidState("nothing is running"))
		})
		if err == nil {
			t.Errorf("expected an error, got nil")
		}

		if !uterror.IsFatal(err) {
			t.Errorf("expected fatal error, got %v", err)
		}

		if _, ok := err.(uterror.PanicError); ok {
			t.Errorf("expected unwrapped fatal error, got panic error")
		}
	})
}

func TestCallerLocation(t *testing.T) {
	file, line, function := CallerLocation(1)

	if file == "unknown" || line == 0 {
		t.Errorf("expected a resolved location, got %s:%d", file, line)
	}

	if function != "TestCallerLocation" {
		t.Errorf("expected enclosing function name, got %q", function)
	}
}
