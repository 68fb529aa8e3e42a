package cli

import "go.uber.org/zap"

// newDebugLogger builds the verbose zap logger. Returns nil unless verbose
// mode is on; callers treat a nil logger as a no-op.
func newDebugLogger(globals *Globals) *zap.SugaredLogger {
	if globals == nil || !globals.Verbose {
		return nil
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.Encoding = "json"
	logger, err := cfg.Build()
	if err != nil {
		return nil
	}
	return logger.Sugar().With("component", "cdplaunch")
}
