package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/tpavlinic/cdplaunch/internal/session"
)

// devtoolsEngine is the CLI's stand-in protocol engine. It verifies the
// remote debugging endpoint over the DevTools discovery API and answers the
// user-agent probe from it. The stateful protocol operations (detach, reload,
// cache, overlay) are accepted and dropped: a full CDP engine is an external
// collaborator this tool degrades without.
type devtoolsEngine struct {
	clock   clock.Clock
	address string
	port    int
}

var _ session.ProtocolEngine = (*devtoolsEngine)(nil)

func newDevtoolsEngine() *devtoolsEngine {
	return &devtoolsEngine{clock: clock.New()}
}

// Attach polls the discovery endpoint until the debuggee answers or the
// timeout elapses. Browsers need a moment to open the devtools socket after
// spawn.
func (e *devtoolsEngine) Attach(ctx context.Context, opts session.AttachOptions) error {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	e.address = opts.Address
	e.port = opts.Port

	deadline := e.clock.Now().Add(timeout)
	var lastErr error
	for {
		_, err := session.ProbeVersion(ctx, opts.Address, opts.Port, time.Second)
		if err == nil {
			return nil
		}
		lastErr = err
		if e.clock.Now().After(deadline) {
			return fmt.Errorf("remote debugging endpoint not reachable within %s: %w", timeout, lastErr)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-e.clock.After(200 * time.Millisecond):
		}
	}
}

func (e *devtoolsEngine) Detach(ctx context.Context) error { return nil }

func (e *devtoolsEngine) Reload(ctx context.Context, ignoreCache bool) error { return nil }

func (e *devtoolsEngine) SetCacheDisabled(ctx context.Context, disabled bool) error { return nil }

func (e *devtoolsEngine) SetOverlayMessage(ctx context.Context, message string) error { return nil }

func (e *devtoolsEngine) UserAgent(ctx context.Context) (string, error) {
	info, err := session.ProbeVersion(ctx, e.address, e.port, time.Second)
	if err != nil {
		return "", err
	}
	return info.UserAgent, nil
}
