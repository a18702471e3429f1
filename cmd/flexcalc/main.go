// Package main is the entry point for the flexcalc CLI.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/yaklabco/flexar/internal/cli"
)

// Build-time variables set through -ldflags by the stave Build target.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	return cli.Execute(ctx, cli.NewRootCommand(info))
}
