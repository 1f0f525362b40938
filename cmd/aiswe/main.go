package main

import (
	"fmt"
	"os"

	app "github.com/aiswe-dev/aiswe/internal"
	"github.com/aiswe-dev/aiswe/internal/cli"
)

// Set by goreleaser ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)

	// Construction is deferred until cobra has parsed --config and
	// --verbose, so the flags can influence wiring.
	cli.Bootstrap = func(configPath string, verbose bool) error {
		if _, err := app.NewApp(app.Options{ConfigPath: configPath, Verbose: verbose}); err != nil {
			return fmt.Errorf("initializing aiswe: %w", err)
		}
		return nil
	}

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
