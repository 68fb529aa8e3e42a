package spawn

import (
	"os"
	"sync"
)

// Handle is the running debuggee reference. It is owned exclusively by the
// session lifecycle manager; once marked terminated it is never killed again.
type Handle struct {
	mu         sync.Mutex
	proc       *os.Process
	pid        int
	terminated bool
}

// NewHandle wraps a started process. pid may be zero on the helper-mediated
// path until the helper reports the real debuggee id.
func NewHandle(proc *os.Process, pid int) *Handle {
	return &Handle{proc: proc, pid: pid}
}

// PID returns the debuggee process id, zero when not yet known.
func (h *Handle) PID() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pid
}

// SetPID records the real debuggee id reported out-of-band by the helper.
func (h *Handle) SetPID(pid int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pid = pid
}

// Terminated reports whether teardown already ran for this handle.
func (h *Handle) Terminated() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.terminated
}

// Terminate kills the debuggee. It is idempotent: the first call marks the
// handle terminated and later calls are no-ops. Kill failures (the process
// may already be gone) are swallowed.
func (h *Handle) Terminate() error {
	h.mu.Lock()
	if h.terminated {
		h.mu.Unlock()
		return nil
	}
	h.terminated = true
	proc, pid := h.proc, h.pid
	h.mu.Unlock()

	return kill(proc, pid)
}
