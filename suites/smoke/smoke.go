// Package smoke implements the example suites shipped with the demo
// binary.
package smoke

import (
	"fmt"

	"github.com/rrost/xtl/pkg/ut"
)

// MySuite is the classic three-case suite with setup and teardown.
type MySuite struct{}

func (s *MySuite) Name() string {
	return "MySuite"
}

func (s *MySuite) Setup(ctx ut.HookContext) error {
	ctx.Logger().Info("setup")
	return nil
}

func (s *MySuite) Teardown(ctx ut.HookContext) error {
	ctx.Logger().Info("teardown")
	return nil
}

func (s *MySuite) RegisterCases(r ut.Registrar) error {
	r.AddCase("test1", s.test1)
	r.AddCase("test2", s.test2)
	r.AddCase("test3", s.test3)
	return nil
}

func (s *MySuite) test1(c ut.Case) error {
	c.Logger().Info("Running test1")
	c.Check(1+1 == 2, "1+1 == 2")
	return nil
}

func (s *MySuite) test2(c ut.Case) error {
	c.Logger().Info("Running test2")
	c.Require(len(c.SuiteName()) > 0, "len(c.SuiteName()) > 0")
	return nil
}

func (s *MySuite) test3(c ut.Case) error {
	c.Logger().Info("Running test3")
	return nil
}

// MySuite2 demonstrates failure isolation: its first case reports an
// error, the remaining cases still run.
type MySuite2 struct {
	ut.BaseSuite
}

func (s *MySuite2) Name() string {
	return "MySuite2"
}

func (s *MySuite2) RegisterCases(r ut.Registrar) error {
	r.AddCase("test1", s.test1)
	r.AddCase("test2", s.test2)
	r.AddCase("test3", s.test3)
	return nil
}

func (s *MySuite2) test1(c ut.Case) error {
	c.Logger().Info("About to fail")
	return fmt.Errorf("simulated failure in %s", c.Name())
}

func (s *MySuite2) test2(c ut.Case) error {
	c.Logger().Info("Still running after test1 failed")
	return nil
}

func (s *MySuite2) test3(c ut.Case) error {
	file, line := c.Location()
	c.Logger().Infof("Registered at %s:%d", file, line)
	return nil
}
