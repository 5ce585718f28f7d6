// Package cli defines the command line surface of a test binary.
package cli

import (
	"github.com/alecthomas/kong"
	log "github.com/sirupsen/logrus"
)

type GlobalOpts struct {
	Verbosity   log.Level `short:"v" help:"Set log level" default:"info"`
	AzureDevops bool      `short:"a" help:"Enable Azure DevOps integration" env:"TF_BUILD"`
}

type cli struct {
	Global GlobalOpts `embed:""`
	Run    RunCmd     `cmd:"" default:"withargs" help:"Run all registered test suites"`
	List   ListCmd    `cmd:"" help:"List registered suites and their test cases"`
}

func ParseCommandLine(name string) (*kong.Context, GlobalOpts) {
	cli := cli{}
	ctx := kong.Parse(&cli, kong.Name(name))
	return ctx, cli.Global
}
