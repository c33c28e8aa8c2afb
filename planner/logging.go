package planner

import "go.uber.org/zap"

// withLogger returns logger if non-nil, or a no-op sugared logger
// otherwise, so library callers never have to wire logging just to use
// a planner (spec §7.1 of SPEC_FULL.md).
func withLogger(logger *zap.SugaredLogger) *zap.SugaredLogger {
	if logger != nil {
		return logger
	}
	return zap.NewNop().Sugar()
}
