package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/tpavlinic/cdplaunch/internal/cli"
	"github.com/tpavlinic/cdplaunch/internal/config"
)

const quickStart = `cdplaunch - launch a browser debuggee under remote debugging control

Quick start:
  cdplaunch browsers                    List installed browsers
  cdplaunch launch -u http://localhost:3000
  cdplaunch launch -w /proj -f app      Open file:///proj/app/index.html

For help:
  cdplaunch --help                      All commands and flags
`

func main() {
	// Show quick start if no args provided
	if len(os.Args) == 1 {
		fmt.Print(quickStart)
		return
	}

	// Load configuration from files/environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.Default()
	}

	var c cli.CLI

	// Apply config defaults before parsing
	// These will be overridden by CLI flags if specified
	vars := kong.Vars{
		"config_format":   cfg.Format,
		"config_level":    cfg.Level,
		"config_address":  cfg.Defaults.Address,
		"config_web_root": cfg.Defaults.WebRoot,
	}

	ctx := kong.Parse(&c,
		kong.Name("cdplaunch"),
		kong.Description("cdplaunch: launch and manage a Chrome-family debuggee over the DevTools protocol"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		vars,
	)

	// Create globals with config fallbacks
	globals := cli.NewGlobalsWithConfig(&c, cfg)
	err = ctx.Run(globals)
	if err != nil {
		os.Exit(1)
	}
}
