// Package ut is the public surface of the unit-testing micro-framework:
// declare suites as types implementing SuiteRegistrant, add them to a
// manager, run them in registration order.
package ut

import (
	"github.com/rrost/xtl/pkg/ut/core"
	"github.com/rrost/xtl/pkg/ut/manager"
)

type Case = core.Case
type CaseFunc = core.CaseFunc

type Registrar = core.Registrar
type SuiteRegistrant = core.SuiteRegistrant

type SetupTeardown = core.SetupTeardown
type HookContext = core.HookContext
type BaseSuite = core.BaseSuite

type LoggerProvider = core.LoggerProvider

type Manager = manager.Manager

// Creates a new manager with the given name, wired to the process
// command line. An empty name selects manager.DefaultName.
func CreateManager(name string) *Manager {
	return manager.Create(name)
}
