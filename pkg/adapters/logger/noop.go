package logger

import "github.com/user/breakstudio/pkg/ports"

// NoopLogger discards every message. Quiet mode uses it, and so does
// the TUI editor, where console writes would corrupt the alternate
// screen.
type NoopLogger struct{}

var _ ports.Logger = (*NoopLogger)(nil)

// NewNoop creates a new no-op logger.
func NewNoop() *NoopLogger {
	return &NoopLogger{}
}

func (l *NoopLogger) Debug(msg string, args ...interface{}) {}
func (l *NoopLogger) Info(msg string, args ...interface{})  {}
func (l *NoopLogger) Warn(msg string, args ...interface{})  {}
func (l *NoopLogger) Error(msg string, args ...interface{}) {}

// WithComponent returns the same no-op logger.
func (l *NoopLogger) WithComponent(component string) ports.Logger {
	return l
}
