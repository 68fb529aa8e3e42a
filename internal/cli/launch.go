package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/tpavlinic/cdplaunch/internal/browser"
	"github.com/tpavlinic/cdplaunch/internal/domain"
	"github.com/tpavlinic/cdplaunch/internal/output"
	"github.com/tpavlinic/cdplaunch/internal/pathmap"
	"github.com/tpavlinic/cdplaunch/internal/session"
	"github.com/tpavlinic/cdplaunch/internal/spawn"
	"github.com/tpavlinic/cdplaunch/internal/tmux"
)

// LaunchCmd launches a browser debuggee and holds the session until the
// debuggee exits or the command is interrupted.
type LaunchCmd struct {
	WorkDir      string            `short:"w" default:"." help:"Working directory file targets resolve against"`
	Executable   string            `short:"e" help:"Debuggee executable (default: discover an installed browser)"`
	File         string            `short:"f" help:"File target, relative to the working directory"`
	URL          string            `short:"u" help:"Launch URL (ignored when a file target is given)"`
	Port         int               `short:"p" help:"Remote-debugging port (default: random in [10000, 20000))"`
	Address      string            `help:"Remote debugging address" default:"${config_address}"`
	Timeout      time.Duration     `help:"Attach timeout" default:"10s"`
	NoDebug      bool              `help:"Launch without attaching a debug session"`
	DisableCache bool              `help:"Disable the debuggee's network cache after attach"`
	WebRoot      string            `help:"Root directory substituted for ${webRoot} in path overrides"`
	Override     map[string]string `help:"Extra path override entries (pattern=replacement)"`
	Arg          []string          `help:"Extra debuggee arguments (can be repeated)"`
	Tmux         bool              `help:"Mirror session events into a tmux pane"`
	Session      string            `help:"Custom tmux session name (default: cdplaunch-<executable>)"`
}

// Run executes the launch command
func (c *LaunchCmd) Run(globals *Globals) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	cfg, err := c.launchConfig(globals)
	if err != nil {
		return err
	}

	sink := c.buildSink(globals, cfg)

	launcher := spawn.SelectStrategy(
		spawn.HostCapabilities(),
		cfg.ExplicitExecutable,
		globals.Config.Defaults.Helper,
	)
	globals.Debug("launch strategy: %s", launcher.Name())

	mgr := session.NewManager(session.Options{
		Engine:       newDevtoolsEngine(),
		Spawner:      spawnerFor(launcher),
		Sink:         sink,
		Clock:        clock.New(),
		OverlayDelay: time.Duration(globals.Config.Defaults.DebounceMS) * time.Millisecond,
		OnTerminate: func(reason string) {
			globals.Debug("session terminated: %s", reason)
			cancel()
		},
	})

	if err := mgr.Launch(ctx, cfg); err != nil {
		return outputErrorCommon(globals, "LAUNCH_FAILED", err.Error())
	}
	globals.Infof("Session up on port %d. Press Ctrl-C to disconnect.", mgr.Port())

	<-ctx.Done()
	mgr.Disconnect(context.Background())
	return nil
}

// launchConfig resolves flags, config defaults and browser discovery into an
// immutable launch request.
func (c *LaunchCmd) launchConfig(globals *Globals) (domain.LaunchConfig, error) {
	defaults := globals.Config.Defaults

	workDir := c.WorkDir
	if workDir == "" || workDir == "." {
		wd, err := os.Getwd()
		if err != nil {
			return domain.LaunchConfig{}, err
		}
		workDir = wd
	}

	executable := c.Executable
	explicit := executable != ""
	if executable == "" {
		executable = defaults.Executable
		explicit = executable != ""
	}
	if executable == "" {
		found, err := browser.Default()
		if err != nil {
			return domain.LaunchConfig{}, outputErrorCommon(globals, "BROWSER_NOT_FOUND",
				err.Error(), "pass --executable or set defaults.executable in the config")
		}
		executable = found
	}

	port := c.Port
	if port == 0 {
		port = defaults.Port
	}
	webRoot := c.WebRoot
	if webRoot == "" {
		webRoot = defaults.WebRoot
	}

	diag := func(format string, args ...interface{}) {
		fmt.Fprintf(globals.Stderr, "Warning: "+format+"\n", args...)
	}
	overrides := pathmap.Resolve(webRoot, pathmap.DefaultOverrides(), false, diag)
	for pattern, replacement := range pathmap.Resolve(webRoot, defaults.PathOverrides, true, diag) {
		overrides[pattern] = replacement
	}
	for pattern, replacement := range pathmap.Resolve(webRoot, c.Override, true, diag) {
		overrides[pattern] = replacement
	}

	cfg := domain.LaunchConfig{
		WorkDir:             workDir,
		Executable:          executable,
		ExplicitExecutable:  explicit,
		File:                c.File,
		URL:                 c.URL,
		Port:                port,
		Address:             c.Address,
		Timeout:             c.Timeout,
		NoDebug:             c.NoDebug || defaults.NoDebug,
		DisableNetworkCache: c.DisableCache || defaults.DisableNetworkCache,
		ExtraArgs:           append(append([]string{}, defaults.ExtraArgs...), c.Arg...),
		WebRoot:             webRoot,
		PathOverrides:       overrides,
	}
	return cfg, cfg.Validate()
}

// buildSink assembles the event fan-out: ndjson or text on stdout, plus the
// optional tmux mirror.
func (c *LaunchCmd) buildSink(globals *Globals, cfg domain.LaunchConfig) session.EventSink {
	var sinks session.MultiSink

	if globals.Format == "ndjson" {
		sinks = append(sinks, output.NewNDJSONWriter(globals.Stdout))
	} else if !globals.Quiet {
		sinks = append(sinks, &textSink{w: globals.Stdout})
	}

	if c.Tmux && tmux.IsTmuxAvailable() {
		sessionName := c.Session
		if sessionName == "" {
			sessionName = tmux.GenerateSessionName(filepath.Base(cfg.Executable))
		}
		mgr, err := tmux.NewManager(&tmux.Config{SessionName: sessionName, Detached: true})
		if err == nil && mgr.GetOrCreateSession() == nil {
			mgr.ClearPaneWithBanner(fmt.Sprintf("Debug session: %s", cfg.Executable))
			if globals.Format == "ndjson" {
				fmt.Fprintf(globals.Stdout, `{"type":"tmux","session":%q,"attach":%q}`+"\n",
					sessionName, mgr.AttachCommand())
			} else {
				fmt.Fprintf(globals.Stdout, "Tmux session: %s\n", sessionName)
				fmt.Fprintf(globals.Stdout, "Attach with: %s\n", mgr.AttachCommand())
			}
			sinks = append(sinks, tmux.NewEventSink(mgr))
		}
	}

	if len(sinks) == 0 {
		return session.NopSink{}
	}
	return sinks
}

// spawnerFor adapts a launch strategy to the session.Spawner interface.
func spawnerFor(strategy spawn.Strategy) session.Spawner {
	return session.SpawnerFunc(func(ctx context.Context, cfg domain.LaunchConfig, port int) (session.ProcessHandle, error) {
		return strategy.Launch(ctx, spawn.LaunchSpec{
			Executable: cfg.Executable,
			Args:       spawn.BuildArgs(cfg, port),
			WorkDir:    cfg.WorkDir,
		})
	})
}
