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
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tpavlinic/cdplaunch/internal/domain"
	"github.com/tpavlinic/cdplaunch/internal/session"
	"github.com/tpavlinic/cdplaunch/internal/spawn"
	"github.com/tpavlinic/cdplaunch/internal/tui"
)

// UICmd launches a debuggee and monitors its session interactively
type UICmd struct {
	WorkDir    string        `short:"w" default:"." help:"Working directory file targets resolve against"`
	Executable string        `short:"e" help:"Debuggee executable (default: discover an installed browser)"`
	File       string        `short:"f" help:"File target, relative to the working directory"`
	URL        string        `short:"u" help:"Launch URL (ignored when a file target is given)"`
	Port       int           `short:"p" help:"Remote-debugging port (default: random in [10000, 20000))"`
	Address    string        `help:"Remote debugging address" default:"${config_address}"`
	Timeout    time.Duration `help:"Attach timeout" default:"10s"`
	WebRoot    string        `help:"Root directory substituted for ${webRoot} in path overrides"`
}

// chanSink feeds lifecycle events into the TUI. Events are dropped when the
// monitor falls behind; the stream is advisory.
type chanSink chan domain.Event

func (s chanSink) Event(e domain.Event) {
	select {
	case s <- e:
	default:
	}
}

// Run executes the ui command
func (c *UICmd) Run(globals *Globals) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	lc := &LaunchCmd{
		WorkDir:    c.WorkDir,
		Executable: c.Executable,
		File:       c.File,
		URL:        c.URL,
		Port:       c.Port,
		Address:    c.Address,
		Timeout:    c.Timeout,
		WebRoot:    c.WebRoot,
	}
	cfg, err := lc.launchConfig(globals)
	if err != nil {
		return err
	}

	events := make(chan domain.Event, 64)

	launcher := spawn.SelectStrategy(
		spawn.HostCapabilities(),
		cfg.ExplicitExecutable,
		globals.Config.Defaults.Helper,
	)
	mgr := session.NewManager(session.Options{
		Engine:       newDevtoolsEngine(),
		Spawner:      spawnerFor(launcher),
		Sink:         chanSink(events),
		Clock:        clock.New(),
		OverlayDelay: time.Duration(globals.Config.Defaults.DebounceMS) * time.Millisecond,
		OnTerminate:  func(string) { cancel() },
	})

	if err := mgr.Launch(ctx, cfg); err != nil {
		return outputErrorCommon(globals, "LAUNCH_FAILED", err.Error())
	}

	model := tui.New(filepath.Base(cfg.Executable), mgr.Port(), events)
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Handle context cancellation
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	_, runErr := p.Run()
	mgr.Disconnect(context.Background())
	if runErr != nil {
		return fmt.Errorf("monitor error: %w", runErr)
	}
	return nil
}
