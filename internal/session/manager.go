package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/tpavlinic/cdplaunch/internal/debounce"
	"github.com/tpavlinic/cdplaunch/internal/domain"
	"github.com/tpavlinic/cdplaunch/internal/spawn"
)

// State of the session lifecycle.
type State int

const (
	StateIdle State = iota
	StateLaunching
	StateAttached
	StateTerminating
	StateTerminated
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLaunching:
		return "launching"
	case StateAttached:
		return "attached"
	case StateTerminating:
		return "terminating"
	case StateTerminated:
		return "terminated"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Overlay message shown in the debuggee while paused.
const pausedOverlayMessage = "Paused in debugger"

// User-facing build failure text. The underlying error is wrapped so the
// detail still reaches logs.
const buildFailedMessage = "Compilation failed."

// ErrAlreadyLaunched is returned when Launch is called on a used manager.
var ErrAlreadyLaunched = errors.New("session already launched")

// Options wires the manager's collaborators.
type Options struct {
	Engine  ProtocolEngine
	Builder Builder // optional; nil skips the build step
	Spawner Spawner
	Sink    EventSink // optional; nil drops events

	// Clock and OverlayDelay drive the pause/resume debouncer.
	Clock        clock.Clock
	OverlayDelay time.Duration

	// OnTerminate is the fatal termination callback to the host, carrying a
	// human-readable reason. Called for spawn/build failures and external
	// debuggee exits, not for host-initiated disconnects.
	OnTerminate func(reason string)
}

// Manager owns the spawned debuggee handle for its entire life and guarantees
// detach-before-kill ordering exactly once.
type Manager struct {
	mu       sync.Mutex
	state    State
	cfg      domain.LaunchConfig
	port     int
	handle   ProcessHandle
	attached bool

	engine      ProtocolEngine
	builder     Builder
	spawner     Spawner
	sink        EventSink
	overlay     *debounce.Debouncer
	onTerminate func(reason string)
}

// NewManager creates an idle manager.
func NewManager(opts Options) *Manager {
	sink := opts.Sink
	if sink == nil {
		sink = NopSink{}
	}
	onTerminate := opts.OnTerminate
	if onTerminate == nil {
		onTerminate = func(string) {}
	}
	return &Manager{
		state:       StateIdle,
		engine:      opts.Engine,
		builder:     opts.Builder,
		spawner:     opts.Spawner,
		sink:        sink,
		overlay:     debounce.New(opts.Clock, opts.OverlayDelay),
		onTerminate: onTerminate,
	}
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Port returns the remote-debugging port chosen for this session.
func (m *Manager) Port() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.port
}

// Launch builds, spawns and (unless cfg.NoDebug) attaches. Build and spawn
// failures are fatal: the session terminates with a descriptive reason and
// the error is returned.
func (m *Manager) Launch(ctx context.Context, cfg domain.LaunchConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	if m.state != StateIdle {
		m.mu.Unlock()
		return ErrAlreadyLaunched
	}
	m.state = StateLaunching
	m.cfg = cfg
	m.port = spawn.PickPort(cfg.Port)
	port := m.port
	m.mu.Unlock()

	m.sink.Event(domain.NewLaunching(cfg.Executable, port))

	if m.builder != nil {
		if err := m.builder.Build(ctx, BuildRequest{WorkDir: cfg.WorkDir}); err != nil {
			return m.fail(fmt.Errorf("%s: %w", buildFailedMessage, err))
		}
	}

	handle, err := m.spawner.Spawn(ctx, cfg, port)
	if err != nil {
		return m.fail(fmt.Errorf("debuggee process error: %w", err))
	}

	m.mu.Lock()
	m.handle = handle
	m.mu.Unlock()
	m.sink.Event(domain.NewSpawned(handle.PID(), cfg.Executable, spawn.BuildArgs(cfg, port)))

	if cfg.NoDebug {
		m.setState(StateAttached)
		m.sink.Event(domain.NewDiagnostic("running without debugger (noDebug)"))
		return nil
	}

	opts := AttachOptions{
		Address:   cfg.Address,
		Port:      port,
		TargetURL: spawn.LaunchURL(cfg),
		Timeout:   cfg.Timeout,
	}
	if err := m.Attach(ctx, opts); err != nil {
		return m.fail(fmt.Errorf("attach to debuggee failed: %w", err))
	}
	return nil
}

// Attach connects the protocol engine to the remote debugging endpoint. On
// success the user-agent probe runs as a best-effort diagnostic and, when
// configured, the debuggee's network cache is disabled fire-and-forget.
func (m *Manager) Attach(ctx context.Context, opts AttachOptions) error {
	if err := m.engine.Attach(ctx, opts); err != nil {
		return err
	}
	m.mu.Lock()
	m.attached = true
	m.mu.Unlock()

	ua, err := m.engine.UserAgent(ctx)
	if err != nil {
		m.sink.Event(domain.NewDiagnostic(fmt.Sprintf("user agent probe failed: %v", err)))
	}

	m.mu.Lock()
	disableCache := m.cfg.DisableNetworkCache
	m.mu.Unlock()
	if disableCache {
		go func() { _ = m.engine.SetCacheDisabled(context.Background(), true) }()
	}

	m.setState(StateAttached)
	m.sink.Event(domain.NewAttached(opts.Port, ua))
	return nil
}

// OnPaused schedules the paused overlay message. Debounced so a rapid
// pause/resume cycle never flickers the overlay; engine failures are
// swallowed.
func (m *Manager) OnPaused() {
	m.sink.Event(domain.NewPaused())
	m.overlay.Schedule(func() {
		_ = m.engine.SetOverlayMessage(context.Background(), pausedOverlayMessage)
	})
}

// OnResumed clears the overlay immediately and cancels any pending show.
func (m *Manager) OnResumed() {
	m.sink.Event(domain.NewResumed())
	m.overlay.FlushWith(func() {
		_ = m.engine.SetOverlayMessage(context.Background(), "")
	})
}

// Restart reloads the debuggee, bypassing its cache.
func (m *Manager) Restart(ctx context.Context) error {
	return m.engine.Reload(ctx, true)
}

// OnDebuggeeExit records that the session ended externally (debuggee closed
// or detached on its own). The handle is dropped without a kill attempt: the
// process is already gone. A later Disconnect becomes a no-op.
func (m *Manager) OnDebuggeeExit(reason string) {
	m.mu.Lock()
	if m.state == StateTerminating || m.state == StateTerminated {
		m.mu.Unlock()
		return
	}
	m.state = StateTerminated
	m.handle = nil
	m.mu.Unlock()

	m.overlay.Stop()
	m.sink.Event(domain.NewTerminated(reason))
	m.onTerminate(reason)
}

// Disconnect tears the session down exactly once: protocol detach strictly
// first (killing a paused debuggee before detaching can silently fail the
// kill), then process termination, then the handle is cleared regardless of
// the kill outcome. It never returns an error and never runs twice.
func (m *Manager) Disconnect(ctx context.Context) {
	m.mu.Lock()
	if m.state == StateTerminating || m.state == StateTerminated {
		m.mu.Unlock()
		return
	}
	m.state = StateTerminating
	handle := m.handle
	m.handle = nil
	wasAttached := m.attached
	m.attached = false
	m.mu.Unlock()

	m.overlay.Stop()

	if wasAttached {
		// Teardown must not hang the host; detach errors are swallowed.
		_ = m.engine.Detach(ctx)
	}
	if handle != nil && !handle.Terminated() {
		_ = handle.Terminate()
	}

	m.setState(StateTerminated)
	m.sink.Event(domain.NewTerminated("disconnected"))
}

// fail terminates a launch that cannot proceed: the error is reported to the
// sink and the host, any spawned process is torn down, and the error is
// returned for the caller.
func (m *Manager) fail(err error) error {
	m.mu.Lock()
	m.state = StateError
	handle := m.handle
	m.handle = nil
	wasAttached := m.attached
	m.attached = false
	m.mu.Unlock()

	m.sink.Event(domain.NewError(err.Error()))

	if wasAttached {
		_ = m.engine.Detach(context.Background())
	}
	if handle != nil && !handle.Terminated() {
		_ = handle.Terminate()
	}

	m.setState(StateTerminated)
	m.sink.Event(domain.NewTerminated(err.Error()))
	m.onTerminate(err.Error())
	return err
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}
