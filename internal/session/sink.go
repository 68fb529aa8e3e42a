package session

import (
	"go.uber.org/zap"

	"github.com/tpavlinic/cdplaunch/internal/domain"
)

// EventSink receives lifecycle events. The manager never logs ambiently; it
// emits structured events through an injected sink so it stays testable
// without a logging backend.
type EventSink interface {
	Event(e domain.Event)
}

// NopSink drops everything.
type NopSink struct{}

func (NopSink) Event(domain.Event) {}

// MultiSink fans an event out to several sinks.
type MultiSink []EventSink

func (m MultiSink) Event(e domain.Event) {
	for _, s := range m {
		if s != nil {
			s.Event(e)
		}
	}
}

// ZapSink logs events through a zap logger.
type ZapSink struct {
	logger *zap.Logger
}

func NewZapSink(logger *zap.Logger) *ZapSink {
	return &ZapSink{logger: logger}
}

func (s *ZapSink) Event(e domain.Event) {
	if s.logger == nil {
		return
	}
	fields := []zap.Field{zap.String("type", e.Type)}
	if e.PID > 0 {
		fields = append(fields, zap.Int("pid", e.PID))
	}
	if e.Port > 0 {
		fields = append(fields, zap.Int("port", e.Port))
	}
	if e.Executable != "" {
		fields = append(fields, zap.String("executable", e.Executable))
	}
	if len(e.Args) > 0 {
		fields = append(fields, zap.Strings("args", e.Args))
	}
	if e.Reason != "" {
		fields = append(fields, zap.String("reason", e.Reason))
	}
	if e.Message != "" {
		fields = append(fields, zap.String("message", e.Message))
	}
	if e.Type == domain.EventError {
		s.logger.Error("session event", fields...)
		return
	}
	s.logger.Info("session event", fields...)
}
