package spawn

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
)

// Capabilities describes what the host platform requires of a launch.
type Capabilities struct {
	// IndirectPID is set when spawning through the platform's application
	// launcher makes the immediate child pid not the real debuggee pid, so a
	// helper must report the real id out-of-band.
	IndirectPID bool
}

// HostCapabilities returns the capabilities of the current platform.
func HostCapabilities() Capabilities {
	return Capabilities{IndirectPID: runtime.GOOS == "windows"}
}

// LaunchSpec is the fully-resolved spawn request handed to a strategy.
type LaunchSpec struct {
	Executable string
	Args       []string
	WorkDir    string
}

// SpawnError wraps an OS-level spawn failure. It is fatal for the session.
type SpawnError struct {
	Path string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to spawn debuggee %s: %v", e.Path, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// Strategy launches the debuggee one particular way.
type Strategy interface {
	Name() string
	Launch(ctx context.Context, spec LaunchSpec) (*Handle, error)
}

// SelectStrategy picks the launch strategy. Helper-mediated spawn applies
// only when the platform needs indirect PID discovery and the caller did not
// override the executable path; an explicit executable is spawned directly.
func SelectStrategy(caps Capabilities, explicitExecutable bool, helperPath string) Strategy {
	if caps.IndirectPID && !explicitExecutable && helperPath != "" {
		return &HelperStrategy{HelperPath: helperPath}
	}
	return &DirectStrategy{}
}

// DirectStrategy invokes the executable detached from the parent, with stdin
// discarded. The parent never waits on the debuggee beyond reaping it.
type DirectStrategy struct{}

func (s *DirectStrategy) Name() string { return "direct" }

func (s *DirectStrategy) Launch(ctx context.Context, spec LaunchSpec) (*Handle, error) {
	cmd := exec.Command(spec.Executable, spec.Args...)
	cmd.Dir = spec.WorkDir
	cmd.Stdin = nil
	setDetached(cmd)

	if err := cmd.Start(); err != nil {
		return nil, &SpawnError{Path: spec.Executable, Err: err}
	}

	// Reap in the background so the debuggee never zombies; the session does
	// not otherwise wait on it.
	go func() { _ = cmd.Wait() }()

	return NewHandle(cmd.Process, cmd.Process.Pid), nil
}

// HelperStrategy spawns through an intermediary that launches the debuggee
// and prints a single "pid=<n>" line with the real debuggee id. Everything
// else the helper writes is discarded.
type HelperStrategy struct {
	HelperPath string
}

func (s *HelperStrategy) Name() string { return "helper" }

func (s *HelperStrategy) Launch(ctx context.Context, spec LaunchSpec) (*Handle, error) {
	args := append([]string{spec.Executable}, spec.Args...)
	cmd := exec.Command(s.HelperPath, args...)
	cmd.Dir = spec.WorkDir
	cmd.Stdin = nil
	cmd.Stderr = nil
	setDetached(cmd)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &SpawnError{Path: s.HelperPath, Err: err}
	}
	if err := cmd.Start(); err != nil {
		return nil, &SpawnError{Path: s.HelperPath, Err: err}
	}

	handle := NewHandle(cmd.Process, 0)

	pidCh := make(chan int, 1)
	go func() {
		defer close(pidCh)
		scanner := bufio.NewScanner(stdout)
		for scanner.Scan() {
			pid, err := ParsePIDReport(scanner.Text())
			if err != nil {
				continue
			}
			pidCh <- pid
			break
		}
		// Drain whatever else the helper prints.
		for scanner.Scan() {
		}
	}()
	go func() { _ = cmd.Wait() }()

	select {
	case pid, ok := <-pidCh:
		if ok {
			handle.SetPID(pid)
		}
	case <-ctx.Done():
		_ = handle.Terminate()
		return nil, &SpawnError{Path: s.HelperPath, Err: ctx.Err()}
	}
	return handle, nil
}

// ParsePIDReport extracts the debuggee id from a helper message of the form
// "pid=<n>".
func ParsePIDReport(line string) (int, error) {
	line = strings.TrimSpace(line)
	rest, ok := strings.CutPrefix(line, "pid=")
	if !ok {
		return 0, fmt.Errorf("not a pid report: %q", line)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil || pid <= 0 {
		return 0, fmt.Errorf("malformed pid report: %q", line)
	}
	return pid, nil
}
