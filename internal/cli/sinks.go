package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/tpavlinic/cdplaunch/internal/domain"
)

// textSink renders lifecycle events as human-readable lines.
type textSink struct {
	w io.Writer
}

func (s *textSink) Event(e domain.Event) {
	switch e.Type {
	case domain.EventLaunching:
		fmt.Fprintf(s.w, "%s %s (port %d)\n", styleHeading.Render("Launching"), e.Executable, e.Port)
	case domain.EventSpawned:
		fmt.Fprintf(s.w, "%s pid=%d %s %s\n", styleOK.Render("Spawned"), e.PID, e.Executable, strings.Join(e.Args, " "))
	case domain.EventAttached:
		line := fmt.Sprintf("%s port=%d", styleOK.Render("Attached"), e.Port)
		if e.UserAgent != "" {
			line += " " + styleDim.Render(e.UserAgent)
		}
		fmt.Fprintln(s.w, line)
	case domain.EventPaused:
		fmt.Fprintln(s.w, styleWarn.Render("Paused"))
	case domain.EventResumed:
		fmt.Fprintln(s.w, styleOK.Render("Resumed"))
	case domain.EventTerminated:
		fmt.Fprintf(s.w, "%s %s\n", styleHeading.Render("Terminated"), e.Reason)
	case domain.EventDiagnostic:
		fmt.Fprintln(s.w, styleDim.Render(e.Message))
	case domain.EventError:
		fmt.Fprintf(s.w, "%s %s\n", styleErr.Render("Error"), e.Message)
	}
}
