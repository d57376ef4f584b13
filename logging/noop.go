package logging

import "context"

// NoOpAdapter implements Adapter but does nothing
// This is the default implementation for minimal overhead when logging is disabled
type NoOpAdapter struct {
	level Level
}

// NoOpEvent discards everything
type NoOpEvent struct{}

// NewNoOpAdapter creates a new no-op adapter
func NewNoOpAdapter() Adapter {
	return &NoOpAdapter{level: DisabledLevel}
}

// SetLevel sets the log level (no-op)
func (n *NoOpAdapter) SetLevel(level Level) Adapter {
	n.level = level
	return n
}

// GetLevel returns the current log level
func (n *NoOpAdapter) GetLevel() Level {
	return n.level
}

func (n *NoOpAdapter) Trace() Event { return NoOpEvent{} }
func (n *NoOpAdapter) Debug() Event { return NoOpEvent{} }
func (n *NoOpAdapter) Info() Event  { return NoOpEvent{} }
func (n *NoOpAdapter) Warn() Event  { return NoOpEvent{} }
func (n *NoOpAdapter) Error() Event { return NoOpEvent{} }
func (n *NoOpAdapter) Fatal() Event { return NoOpEvent{} }
func (n *NoOpAdapter) Panic() Event { return NoOpEvent{} }

func (n *NoOpAdapter) Printf(format string, v ...interface{}) {}

// WithContext returns the same no-op adapter
func (n *NoOpAdapter) WithContext(ctx context.Context) Adapter {
	return n
}

// WithFields returns the same no-op adapter
func (n *NoOpAdapter) WithFields(fields ...Field) Adapter {
	return n
}

// WithPackage returns the same no-op adapter
func (n *NoOpAdapter) WithPackage(pkg string) Adapter {
	return n
}

func (e NoOpEvent) Fields(fields ...Field) Event               { return e }
func (e NoOpEvent) Field(key string, value interface{}) Event { return e }
func (e NoOpEvent) Err(err error) Event                        { return e }
func (e NoOpEvent) Msg(msg string)                             {}
func (e NoOpEvent) Msgf(format string, v ...interface{})       {}
