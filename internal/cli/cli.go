// Package cli wires the kong command surface to the launcher internals.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/tpavlinic/cdplaunch/internal/config"
)

// CLI is the top-level kong command tree.
type CLI struct {
	Format  string `help:"Output format: auto, text or ndjson" enum:"auto,text,ndjson" default:"${config_format}"`
	Level   string `help:"Log level: debug, info, warn, error" default:"${config_level}"`
	Quiet   bool   `help:"Suppress advisory output"`
	Verbose bool   `help:"Enable verbose debug logging"`

	Launch    LaunchCmd    `cmd:"" help:"Launch a browser debuggee and manage its debug session"`
	Browsers  BrowsersCmd  `cmd:"" help:"List installed browser debuggees"`
	Overrides OverridesCmd `cmd:"" help:"Show the resolved source-map path override table"`
	UI        UICmd        `cmd:"" help:"Interactive session monitor"`
	Version   VersionCmd   `cmd:"" help:"Print version information"`
}

// Globals carries resolved global options and output streams into commands.
type Globals struct {
	Format  string
	Level   string
	Quiet   bool
	Verbose bool
	Stdout  io.Writer
	Stderr  io.Writer
	Config  *config.Config

	logger *zap.SugaredLogger
}

// NewGlobalsWithConfig resolves CLI flags against loaded config. The "auto"
// format becomes text on a TTY and ndjson otherwise.
func NewGlobalsWithConfig(c *CLI, cfg *config.Config) *Globals {
	g := &Globals{
		Format:  c.Format,
		Level:   c.Level,
		Quiet:   c.Quiet || cfg.Quiet,
		Verbose: c.Verbose || cfg.Verbose,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Config:  cfg,
	}
	if g.Format == "" || g.Format == "auto" {
		if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			g.Format = "text"
		} else {
			g.Format = "ndjson"
		}
	}
	g.logger = newDebugLogger(g)
	return g
}

// Debug logs through the verbose zap logger; a no-op unless --verbose.
func (g *Globals) Debug(format string, args ...interface{}) {
	if g.logger == nil {
		return
	}
	g.logger.Debugf(format, args...)
}

// Infof prints advisory text output unless quiet.
func (g *Globals) Infof(format string, args ...interface{}) {
	if g.Quiet || g.Format != "text" {
		return
	}
	fmt.Fprintf(g.Stdout, format+"\n", args...)
}
