// Package tui is the interactive session monitor: a live view of lifecycle
// events for a running debug session.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tpavlinic/cdplaunch/internal/domain"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// EventMsg delivers a lifecycle event to the model.
type EventMsg domain.Event

// Model renders lifecycle events in a scrollable viewport.
type Model struct {
	title    string
	port     int
	events   <-chan domain.Event
	viewport viewport.Model
	lines    []string
	status   string
	ready    bool
}

// New creates a monitor for the given event stream.
func New(title string, port int, events <-chan domain.Event) Model {
	return Model{
		title:  title,
		port:   port,
		events: events,
		status: "launching",
	}
}

func waitForEvent(ch <-chan domain.Event) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return tea.QuitMsg{}
		}
		return EventMsg(e)
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		headerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight
		}
		m.viewport.SetContent(strings.Join(m.lines, "\n"))

	case EventMsg:
		e := domain.Event(msg)
		m.lines = append(m.lines, renderEvent(e))
		m.status = statusFor(e, m.status)
		if m.ready {
			m.viewport.SetContent(strings.Join(m.lines, "\n"))
			m.viewport.GotoBottom()
		}
		return m, waitForEvent(m.events)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	header := titleStyle.Render(fmt.Sprintf("cdplaunch %s", m.title)) +
		statusStyle.Render(fmt.Sprintf("port %d | %s | q to quit", m.port, m.status))
	if !m.ready {
		return header + "\n  starting..."
	}
	return header + "\n" + m.viewport.View()
}

func renderEvent(e domain.Event) string {
	ts := e.Timestamp
	switch e.Type {
	case domain.EventSpawned:
		return fmt.Sprintf("%s spawned pid=%d %s", ts, e.PID, strings.Join(e.Args, " "))
	case domain.EventAttached:
		return fmt.Sprintf("%s attached port=%d %s", ts, e.Port, e.UserAgent)
	case domain.EventPaused:
		return pausedStyle.Render(fmt.Sprintf("%s paused", ts))
	case domain.EventResumed:
		return fmt.Sprintf("%s resumed", ts)
	case domain.EventTerminated:
		return fmt.Sprintf("%s terminated: %s", ts, e.Reason)
	case domain.EventError:
		return errStyle.Render(fmt.Sprintf("%s error: %s", ts, e.Message))
	default:
		return fmt.Sprintf("%s %s %s", ts, e.Type, e.Message)
	}
}

func statusFor(e domain.Event, current string) string {
	switch e.Type {
	case domain.EventAttached:
		return "attached"
	case domain.EventPaused:
		return "paused"
	case domain.EventResumed:
		return "attached"
	case domain.EventTerminated:
		return "terminated"
	case domain.EventError:
		return "error"
	default:
		return current
	}
}
