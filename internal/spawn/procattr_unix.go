//go:build !windows

package spawn

import (
	"os/exec"
	"syscall"
)

// setDetached puts the debuggee in its own process group so the parent's
// terminal signals never reach it.
func setDetached(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}
