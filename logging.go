package tux

import (
	"go.uber.org/zap"
)

var logger = zap.NewNop()

// SetLogger routes build failures to l. Failures are logged at debug
// level and returned unchanged; nothing else is logged. Passing nil
// restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
