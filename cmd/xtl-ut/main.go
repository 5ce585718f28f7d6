package main

import (
	"os"

	"github.com/rrost/xtl/pkg/ut"
	"github.com/rrost/xtl/suites/smoke"
)

func main() {
	mgr := ut.CreateManager("")

	if err := mgr.AddSuite(&smoke.MySuite{}); err != nil {
		mgr.Log.Fatalf("Failed to add suite: %v", err)
	}

	if err := mgr.AddSuite(&smoke.MySuite2{}); err != nil {
		mgr.Log.Fatalf("Failed to add suite: %v", err)
	}

	os.Exit(mgr.Run())
}
