package domain

import (
	"errors"
	"fmt"
	"time"
)

// Port range used when no explicit remote-debugging port is requested.
const (
	PortRangeMin = 10000
	PortRangeMax = 20000
)

// LaunchConfig describes a single debuggee launch request. It is built once
// from the CLI/config layer and never mutated afterwards.
type LaunchConfig struct {
	// WorkDir is the working directory file targets resolve against.
	WorkDir string

	// Executable is the debuggee binary. Empty means "discover a browser".
	Executable string

	// ExplicitExecutable records whether Executable was supplied by the
	// caller rather than discovered. Helper-mediated spawn is skipped for
	// explicit executables.
	ExplicitExecutable bool

	// File is a file target relative to WorkDir. Mutually exclusive with URL;
	// File wins when both are set.
	File string

	// URL is an explicit launch URL.
	URL string

	// Port is the remote-debugging port. Zero means pick a random port in
	// [PortRangeMin, PortRangeMax).
	Port int

	// Address of the remote debugging endpoint. Defaults to localhost.
	Address string

	// Timeout for the attach handshake.
	Timeout time.Duration

	// NoDebug launches the debuggee without attaching.
	NoDebug bool

	// DisableNetworkCache asks the debuggee to bypass its HTTP cache after
	// attach.
	DisableNetworkCache bool

	// ExtraArgs are passed to the debuggee verbatim, after the
	// remote-debugging flag and before the target.
	ExtraArgs []string

	// WebRoot substitutes the ${webRoot} placeholder in PathOverrides.
	WebRoot string

	// PathOverrides maps source-map path patterns to local paths.
	PathOverrides map[string]string
}

// Validate reports configuration errors that would make a launch nonsensical.
func (c *LaunchConfig) Validate() error {
	if c.WorkDir == "" {
		return errors.New("working directory is required")
	}
	if c.Port != 0 && (c.Port < 1 || c.Port > 65535) {
		return fmt.Errorf("remote-debugging port out of range: %d", c.Port)
	}
	return nil
}
