package uterror

import (
	"errors"
	"fmt"
)

// FatalError marks an internal-invariant violation, like querying the
// running test case when nothing is running. Unlike every other error, it
// aborts the remainder of the run instead of only the current test case.
type FatalError struct {
	Reason string
}

func NewInvalidState(reason string) *FatalError {
	return &FatalError{Reason: reason}
}

func (fe *FatalError) Error() string {
	return fmt.Sprintf("invalid state: %s", fe.Reason)
}

// IsFatal reports whether the error, anywhere in its chain, is a
// FatalError.
func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}
