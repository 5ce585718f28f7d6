package cli

import (
	"fmt"

	"github.com/rrost/xtl/pkg/ut/core"
)

type RunCmd struct {
	Extra []string `arg:"" passthrough:"all" optional:"" help:"Reserved for future selection options, currently ignored."`
}

func (cmd *RunCmd) Run(m core.ManagerContext) error {
	log := m.Logger()

	if len(cmd.Extra) > 0 {
		log.Debugf("Ignoring extra arguments: %v", cmd.Extra)
	}

	if err := m.RunAll(); err != nil {
		// The run is already over; the report still covers everything
		// collected up to the abort.
		log.WithError(err).Error("Run aborted")
	}

	if err := m.Report(); err != nil {
		return fmt.Errorf("failed to print report: %v", err)
	}

	return nil
}
