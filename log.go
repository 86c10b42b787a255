package enumkit

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var log = newLog()

func newLog() *atomic.Pointer[zap.Logger] {
	p := &atomic.Pointer[zap.Logger]{}
	p.Store(zap.NewNop())
	return p
}

// SetLogger sets the logger used for registration and cache events. A nil logger
// discards everything, which is the default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	log.Store(l)
}

func logger() *zap.Logger {
	return log.Load()
}
