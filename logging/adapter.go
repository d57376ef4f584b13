// Package logging is the logging facade used by every package of this module.
//
// Library packages obtain a logger with GetPackageLogger and never configure
// output themselves. The default global adapter discards everything, so
// embedding the identity packages in a host costs nothing until the host
// installs a real adapter:
//
//	logging.SetGlobalAdapter(logging.NewZerologAdapterWithLogger(zerolog.New(os.Stderr)))
//	logging.SetPackageLevel("identity", logging.DebugLevel)
package logging

import (
	"context"
	"strings"
)

// Level represents log levels
type Level int

const (
	TraceLevel Level = iota
	DebugLevel
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
	PanicLevel
	DisabledLevel
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "trace"
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case FatalLevel:
		return "fatal"
	case PanicLevel:
		return "panic"
	case DisabledLevel:
		return "disabled"
	default:
		return "unknown"
	}
}

// ParseLevel converts a level name into a Level. Unknown names yield InfoLevel.
func ParseLevel(name string) Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return TraceLevel
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	case "fatal":
		return FatalLevel
	case "panic":
		return PanicLevel
	case "disabled", "off":
		return DisabledLevel
	default:
		return InfoLevel
	}
}

// Adapter defines the interface for internal logging
type Adapter interface {
	// Level control
	SetLevel(level Level) Adapter
	GetLevel() Level

	// Event builders
	Trace() Event
	Debug() Event
	Info() Event
	Warn() Event
	Error() Event
	Fatal() Event
	Panic() Event

	Printf(format string, v ...interface{})

	// Context-aware logging
	WithContext(ctx context.Context) Adapter
	WithFields(fields ...Field) Adapter

	// Package-specific logger
	WithPackage(pkg string) Adapter
}

// Event is a single log entry under construction
type Event interface {
	Fields(fields ...Field) Event
	Field(key string, value interface{}) Event
	Err(err error) Event
	Msg(msg string)
	Msgf(format string, v ...interface{})
}

// Field represents a structured log field
type Field struct {
	Key   string
	Value interface{}
}

// F is a helper function to create fields
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
