package cli

import (
	"fmt"

	"github.com/rrost/xtl/pkg/ut/core"
)

type ListCmd struct{}

func (cmd *ListCmd) Run(m core.ManagerContext) error {
	log := m.Logger()
	log.Info("Listing suites")

	suites := m.Suites()
	for _, s := range suites {
		fmt.Println(s.Name())
		for _, name := range s.CaseNames() {
			fmt.Printf("  %s\n", name)
		}
	}

	log.Infof("Listed %d suites", len(suites))
	return nil
}
