// Package session owns the debuggee session lifecycle: build, spawn, attach,
// pause/resume side effects and ordered, idempotent teardown. The CDP wire
// protocol itself lives behind the ProtocolEngine collaborator.
package session

import (
	"context"
	"time"

	"github.com/tpavlinic/cdplaunch/internal/domain"
)

// AttachOptions address the remote debugging endpoint.
type AttachOptions struct {
	Address   string
	Port      int
	TargetURL string
	Timeout   time.Duration
}

// ProtocolEngine is the external CDP engine this component drives. It is a
// collaborator, not a base type: the manager composes it instead of
// inheriting from it.
type ProtocolEngine interface {
	Attach(ctx context.Context, opts AttachOptions) error
	Detach(ctx context.Context) error
	Reload(ctx context.Context, ignoreCache bool) error
	SetCacheDisabled(ctx context.Context, disabled bool) error
	SetOverlayMessage(ctx context.Context, message string) error
	UserAgent(ctx context.Context) (string, error)
}

// BuildRequest is handed to the build collaborator before spawn.
type BuildRequest struct {
	WorkDir   string
	Platform  string
	OutputDir string
}

// Builder compiles the debuggee target before launch. A rejection aborts the
// launch with a fixed user-facing message.
type Builder interface {
	Build(ctx context.Context, req BuildRequest) error
}

// ProcessHandle is the spawned debuggee as the manager sees it.
// spawn.Handle implements it; tests substitute fakes.
type ProcessHandle interface {
	PID() int
	Terminated() bool
	Terminate() error
}

// Spawner launches the debuggee for a fully-resolved config and port.
type Spawner interface {
	Spawn(ctx context.Context, cfg domain.LaunchConfig, port int) (ProcessHandle, error)
}

// SpawnerFunc adapts a function to the Spawner interface.
type SpawnerFunc func(ctx context.Context, cfg domain.LaunchConfig, port int) (ProcessHandle, error)

func (f SpawnerFunc) Spawn(ctx context.Context, cfg domain.LaunchConfig, port int) (ProcessHandle, error) {
	return f(ctx, cfg, port)
}
