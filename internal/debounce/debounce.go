// Package debounce coalesces repeated UI side effects so rapid pause/resume
// cycles do not flicker the debuggee overlay.
package debounce

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// DefaultDelay is used when New is given a zero delay.
const DefaultDelay = 200 * time.Millisecond

// Debouncer arms at most one pending action at a time. A newer Schedule
// supersedes an older unexecuted one. Actions are best-effort: panics are
// swallowed because a failed UI hint must never fail the session.
type Debouncer struct {
	mu    sync.Mutex
	clock clock.Clock
	delay time.Duration
	timer *clock.Timer

	// seq invalidates an already-fired timer whose callback lost the race
	// against a newer Schedule, FlushWith or Stop.
	seq uint64
}

// New creates a Debouncer on the given clock. Pass clock.New() in production;
// tests supply a mock to drive the timer deterministically.
func New(c clock.Clock, delay time.Duration) *Debouncer {
	if c == nil {
		c = clock.New()
	}
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{clock: c, delay: delay}
}

// Schedule arms fn to run after the delay, replacing any pending action.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.timer = d.clock.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.seq != seq {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		run(fn)
	})
}

// FlushWith runs fn synchronously and cancels any pending scheduled action.
func (d *Debouncer) FlushWith(fn func()) {
	d.Stop()
	run(fn)
}

// Stop cancels any pending action without running anything.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func run(fn func()) {
	if fn == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	fn()
}
