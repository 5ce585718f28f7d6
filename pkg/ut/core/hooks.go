package core

// HookContext is what setup and teardown hooks get to work with.
type HookContext interface {
	Named
	LoggerProvider
}

// SetupTeardown is implemented by suites that need a one-time setup
// before their first test case and a one-time teardown after their last.
// Teardown runs whenever setup succeeded, regardless of how the case
// loop exits.
type SetupTeardown interface {
	// Setup before running the suite's test cases
	Setup(HookContext) error

	// Teardown after running the suite's test cases
	Teardown(HookContext) error
}

// BaseSuite is a partial implementation of the hook surface. It is meant
// to be used for composition when a suite does not need hooks. It does
// NOT provide a default implementation for the Name() and
// RegisterCases() methods.
type BaseSuite struct{}

func (BaseSuite) Setup(HookContext) error {
	return nil
}

func (BaseSuite) Teardown(HookContext) error {
	return nil
}
