// Package tmux mirrors session lifecycle events into a tmux pane so a debug
// session can be observed from another terminal.
package tmux

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"github.com/GianlucaP106/gotmux/gotmux"
)

// ErrNoSessionAvailable is returned when pane operations run before a tmux
// session exists.
var ErrNoSessionAvailable = errors.New("no tmux session available")

// Config for the tmux mirror
type Config struct {
	SessionName string
	Detached    bool
}

// Manager owns one tmux session used as an event mirror
type Manager struct {
	mu      sync.Mutex
	config  *Config
	tmux    *gotmux.Tmux
	session *gotmux.Session
}

// IsTmuxAvailable reports whether the tmux binary is on PATH
func IsTmuxAvailable() bool {
	_, err := exec.LookPath("tmux")
	return err == nil
}

// GenerateSessionName derives a tmux session name from a base label
func GenerateSessionName(base string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, base)
	return "cdplaunch-" + sanitized
}

// NewManager connects to the default tmux server
func NewManager(cfg *Config) (*Manager, error) {
	t, err := gotmux.DefaultTmux()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to tmux: %w", err)
	}
	return &Manager{config: cfg, tmux: t}, nil
}

// GetOrCreateSession attaches to an existing session by name or creates one
func (m *Manager) GetOrCreateSession() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, err := m.tmux.GetSessionByName(m.config.SessionName); err == nil && s != nil {
		m.session = s
		return nil
	}

	s, err := m.tmux.NewSession(&gotmux.SessionOptions{Name: m.config.SessionName})
	if err != nil {
		return fmt.Errorf("failed to create tmux session: %w", err)
	}
	m.session = s
	return nil
}

// AttachCommand returns the shell command a user runs to view the mirror
func (m *Manager) AttachCommand() string {
	return fmt.Sprintf("tmux attach -t %s", m.config.SessionName)
}

// Cleanup kills the mirror session
func (m *Manager) Cleanup() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return nil
	}
	err := m.session.Kill()
	m.session = nil
	return err
}

// command runs a raw tmux command against the server
func (m *Manager) command(args ...string) (string, error) {
	out, err := exec.Command("tmux", args...).CombinedOutput()
	return string(out), err
}
