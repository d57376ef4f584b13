package logging

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"
)

// debug adds the caller location to every standard log line
var debug atomic.Bool

// SetDebug toggles caller tracking for the standard adapter
func SetDebug(enabled bool) {
	debug.Store(enabled)
}

// StandardAdapter implements Adapter using Go's standard log package
type StandardAdapter struct {
	logger *log.Logger
	level  Level
	pkg    string
	fields []Field
}

// NewStandardAdapter creates a new standard log adapter with the default logger
func NewStandardAdapter() Adapter {
	return NewStandardAdapterWithLogger(log.Default())
}

// NewStandardAdapterWithLogger creates a new standard log adapter with a custom logger
func NewStandardAdapterWithLogger(logger *log.Logger) Adapter {
	return &StandardAdapter{
		logger: logger,
		level:  InfoLevel,
	}
}

// StandardEvent collects fields until Msg writes the line
type StandardEvent struct {
	adapter *StandardAdapter
	level   Level
	fields  []Field
	err     error
	caller  string
}

// Fields adds structured fields to the event
func (e *StandardEvent) Fields(fields ...Field) Event {
	e.fields = append(e.fields, fields...)
	return e
}

// Field adds a single field to the event
func (e *StandardEvent) Field(key string, value interface{}) Event {
	e.fields = append(e.fields, Field{Key: key, Value: value})
	return e
}

// Err adds an error to the event
func (e *StandardEvent) Err(err error) Event {
	e.err = err
	return e
}

// Msg logs the message with all accumulated fields
func (e *StandardEvent) Msg(msg string) {
	if e.level < e.adapter.level || e.adapter.level == DisabledLevel {
		return
	}

	line := e.format(msg)
	switch e.level {
	case FatalLevel:
		e.adapter.logger.Fatal(line)
	case PanicLevel:
		e.adapter.logger.Panic(line)
	default:
		e.adapter.logger.Print(line)
	}
}

// Msgf logs the formatted message with all accumulated fields
func (e *StandardEvent) Msgf(format string, v ...interface{}) {
	e.Msg(fmt.Sprintf(format, v...))
}

func (e *StandardEvent) format(msg string) string {
	parts := []string{fmt.Sprintf("[%s]", strings.ToUpper(e.level.String()))}
	if e.adapter.pkg != "" {
		parts = append(parts, fmt.Sprintf("(%s)", e.adapter.pkg))
	}
	if e.caller != "" {
		parts = append(parts, e.caller+" >")
	}

	parts = append(parts, msg)
	for _, field := range append(append([]Field{}, e.adapter.fields...), e.fields...) {
		parts = append(parts, fmt.Sprintf("%s=%v", field.Key, field.Value))
	}

	if e.err != nil {
		parts = append(parts, fmt.Sprintf("error=%v", e.err))
	}

	return strings.Join(parts, " ")
}

// SetLevel sets the log level
func (s *StandardAdapter) SetLevel(level Level) Adapter {
	s.level = level
	return s
}

// GetLevel returns the current log level
func (s *StandardAdapter) GetLevel() Level {
	return s.level
}

func (s *StandardAdapter) event(level Level) Event {
	e := &StandardEvent{adapter: s, level: level}
	if debug.Load() {
		e.caller = track()
	}
	return e
}

func (s *StandardAdapter) Trace() Event { return s.event(TraceLevel) }
func (s *StandardAdapter) Debug() Event { return s.event(DebugLevel) }
func (s *StandardAdapter) Info() Event  { return s.event(InfoLevel) }
func (s *StandardAdapter) Warn() Event  { return s.event(WarnLevel) }
func (s *StandardAdapter) Error() Event { return s.event(ErrorLevel) }
func (s *StandardAdapter) Fatal() Event { return s.event(FatalLevel) }
func (s *StandardAdapter) Panic() Event { return s.event(PanicLevel) }

// Printf prints a formatted message
func (s *StandardAdapter) Printf(format string, v ...interface{}) {
	s.logger.Printf(format, v...)
}

// WithContext returns a copy of the adapter; the standard logger has no context support
func (s *StandardAdapter) WithContext(_ context.Context) Adapter {
	c := *s
	return &c
}

// WithFields returns a new adapter that prefixes every event with fields
func (s *StandardAdapter) WithFields(fields ...Field) Adapter {
	c := *s
	c.fields = append(append([]Field{}, s.fields...), fields...)
	return &c
}

// WithPackage returns a new adapter tagged with the package name
func (s *StandardAdapter) WithPackage(pkg string) Adapter {
	c := *s
	c.pkg = pkg
	return &c
}

// track returns file:line of the code that created the event
func track() string {
	_, file, line, ok := runtime.Caller(3)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
