package domain

import "time"

// SchemaVersion for emitted lifecycle events.
const SchemaVersion = 1

// Lifecycle event types.
const (
	EventLaunching  = "launching"
	EventSpawned    = "spawned"
	EventAttached   = "attached"
	EventPaused     = "paused"
	EventResumed    = "resumed"
	EventTerminated = "terminated"
	EventDiagnostic = "diagnostic"
	EventError      = "error"
)

// Event is a single session lifecycle event. Events are advisory: they feed
// logs, NDJSON output and monitors, never control flow.
type Event struct {
	Type          string   `json:"type"`
	SchemaVersion int      `json:"schemaVersion"`
	Timestamp     string   `json:"timestamp"`
	PID           int      `json:"pid,omitempty"`
	Port          int      `json:"port,omitempty"`
	Executable    string   `json:"executable,omitempty"`
	Args          []string `json:"args,omitempty"`
	UserAgent     string   `json:"user_agent,omitempty"`
	Reason        string   `json:"reason,omitempty"`
	Message       string   `json:"message,omitempty"`
}

func newEvent(typ string) Event {
	return Event{
		Type:          typ,
		SchemaVersion: SchemaVersion,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
}

// NewLaunching is emitted when a launch request is accepted.
func NewLaunching(executable string, port int) Event {
	e := newEvent(EventLaunching)
	e.Executable = executable
	e.Port = port
	return e
}

// NewSpawned echoes the spawned command so a reader can reproduce it.
func NewSpawned(pid int, executable string, args []string) Event {
	e := newEvent(EventSpawned)
	e.PID = pid
	e.Executable = executable
	e.Args = args
	return e
}

// NewAttached is emitted after the protocol engine handshake succeeds.
func NewAttached(port int, userAgent string) Event {
	e := newEvent(EventAttached)
	e.Port = port
	e.UserAgent = userAgent
	return e
}

// NewPaused is emitted when the debuggee pauses.
func NewPaused() Event { return newEvent(EventPaused) }

// NewResumed is emitted when the debuggee resumes.
func NewResumed() Event { return newEvent(EventResumed) }

// NewTerminated carries the human-readable reason the session ended.
func NewTerminated(reason string) Event {
	e := newEvent(EventTerminated)
	e.Reason = reason
	return e
}

// NewDiagnostic carries an advisory message (warnings, probe results).
func NewDiagnostic(message string) Event {
	e := newEvent(EventDiagnostic)
	e.Message = message
	return e
}

// NewError carries a non-advisory failure description.
func NewError(message string) Event {
	e := newEvent(EventError)
	e.Message = message
	return e
}
