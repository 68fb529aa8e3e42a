//go:build !windows

package spawn

import "os"

// kill sends a cooperative interrupt to the debuggee. A failure usually means
// the process already exited; callers swallow it either way.
func kill(proc *os.Process, pid int) error {
	if proc == nil {
		return nil
	}
	return proc.Signal(os.Interrupt)
}
