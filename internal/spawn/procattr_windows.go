//go:build windows

package spawn

import (
	"os/exec"
	"syscall"
)

// setDetached creates the debuggee in a new process group so console events
// aimed at the parent never reach it.
func setDetached(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP,
	}
}
