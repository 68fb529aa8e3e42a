//go:build windows

package spawn

import (
	"os"
	"os/exec"
	"strconv"
)

// kill terminates the debuggee forcefully and tree-wide by pid. taskkill runs
// synchronously: the session's own process may be torn down right after this
// call and an asynchronous kill could be lost with it. When the helper never
// reported a pid, fall back to killing the immediate child.
func kill(proc *os.Process, pid int) error {
	if pid > 0 {
		return exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
	}
	if proc == nil {
		return nil
	}
	return proc.Kill()
}
