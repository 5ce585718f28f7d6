package core

// SuiteInfo is the read-only view of a registered suite.
type SuiteInfo interface {
	Named

	// CaseNames returns the names of the suite's test cases in
	// registration order.
	CaseNames() []string
}

// ManagerContext is the surface the command line layer drives.
type ManagerContext interface {
	Named

	LoggerProvider

	// Returns all registered suites in registration order.
	Suites() []SuiteInfo

	// RunAll executes every registered suite in registration order.
	RunAll() error

	// Report renders all collected results to the diagnostic sink.
	Report() error
}
