package tmux

import (
	"fmt"
	"strings"
	"time"

	"github.com/tpavlinic/cdplaunch/internal/domain"
)

// ClearPane clears the pane content and scrollback history
func (m *Manager) ClearPane() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return ErrNoSessionAvailable
	}

	paneTarget := fmt.Sprintf("%s:0.0", m.config.SessionName)

	// Send reset terminal state + clear screen
	_, err := m.command("send-keys", "-t", paneTarget, "-R")
	if err != nil {
		return fmt.Errorf("failed to reset terminal: %w", err)
	}

	// Clear the scrollback history
	_, err = m.command("clear-history", "-t", paneTarget)
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	// Send clear command
	_, err = m.command("send-keys", "-t", paneTarget, "clear", "Enter")
	if err != nil {
		return fmt.Errorf("failed to clear screen: %w", err)
	}

	return nil
}

// ClearPaneWithBanner clears the pane and displays a session marker
func (m *Manager) ClearPaneWithBanner(message string) error {
	if err := m.ClearPane(); err != nil {
		return err
	}

	// Display session marker
	banner := fmt.Sprintf(
		"═══════════════════════════════════════════════════════════\n"+
			"  cdplaunch - %s\n"+
			"  Session: %s | Started: %s\n"+
			"═══════════════════════════════════════════════════════════",
		message,
		m.config.SessionName,
		time.Now().Format("2006-01-02 15:04:05"),
	)

	return m.WriteLines(strings.Split(banner, "\n"))
}

// WriteLine writes a single line to the tmux pane using echo
func (m *Manager) WriteLine(line string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return ErrNoSessionAvailable
	}

	// Escape special characters for shell
	escaped := escapeTmuxString(line)
	paneTarget := fmt.Sprintf("%s:0.0", m.config.SessionName)

	// Use send-keys with echo
	_, err := m.command("send-keys", "-t", paneTarget, fmt.Sprintf("echo '%s'", escaped), "Enter")
	return err
}

// WriteLines writes multiple lines efficiently
func (m *Manager) WriteLines(lines []string) error {
	for _, line := range lines {
		if err := m.WriteLine(line); err != nil {
			return err
		}
	}
	return nil
}

// escapeTmuxString escapes special characters for tmux send-keys
func escapeTmuxString(s string) string {
	// Escape single quotes for shell
	s = strings.ReplaceAll(s, "'", "'\"'\"'")
	// Escape backslashes
	s = strings.ReplaceAll(s, "\\", "\\\\")
	return s
}

// EventSink streams lifecycle events into the pane. Write failures are
// dropped: the mirror is advisory.
type EventSink struct {
	manager *Manager
}

// NewEventSink creates a sink writing to the manager's pane
func NewEventSink(manager *Manager) *EventSink {
	return &EventSink{manager: manager}
}

// Event renders one lifecycle event as a pane line
func (s *EventSink) Event(e domain.Event) {
	var line string
	switch e.Type {
	case domain.EventSpawned:
		line = fmt.Sprintf("🚀 spawned pid=%d %s", e.PID, e.Executable)
	case domain.EventAttached:
		line = fmt.Sprintf("🔗 attached on port %d", e.Port)
	case domain.EventPaused:
		line = "⏸  paused"
	case domain.EventResumed:
		line = "▶  resumed"
	case domain.EventTerminated:
		line = fmt.Sprintf("⏹  terminated: %s", e.Reason)
	case domain.EventError:
		line = fmt.Sprintf("❌ %s", e.Message)
	default:
		if e.Message != "" {
			line = e.Message
		} else {
			line = e.Type
		}
	}
	_ = s.manager.WriteLine(line)
}
