package logging

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ZerologEvent wraps zerolog.Event to implement our Event interface
type ZerologEvent struct {
	event *zerolog.Event
}

// Fields adds structured fields to the event
func (e *ZerologEvent) Fields(fields ...Field) Event {
	for _, field := range fields {
		e.event = e.event.Interface(field.Key, field.Value)
	}
	return e
}

// Field adds a single structured field to the event
func (e *ZerologEvent) Field(key string, value interface{}) Event {
	e.event = e.event.Interface(key, value)
	return e
}

// Err adds an error to the event
func (e *ZerologEvent) Err(err error) Event {
	e.event = e.event.Err(err)
	return e
}

// Msg logs the message
func (e *ZerologEvent) Msg(msg string) {
	e.event.Msg(msg)
}

// Msgf logs the formatted message
func (e *ZerologEvent) Msgf(format string, v ...interface{}) {
	e.event.Msgf(format, v...)
}

// ZerologAdapter implements Adapter using zerolog
type ZerologAdapter struct {
	logger zerolog.Logger
	level  Level
}

// NewZerologAdapter creates a new zerolog adapter with the global zerolog logger
func NewZerologAdapter() Adapter {
	return NewZerologAdapterWithLogger(log.Logger)
}

// NewZerologAdapterWithLogger creates a new zerolog adapter with a custom logger
func NewZerologAdapterWithLogger(logger zerolog.Logger) Adapter {
	z := &ZerologAdapter{logger: logger}
	return z.SetLevel(InfoLevel)
}

// NewConsoleAdapter creates a zerolog adapter writing human readable lines to
// stderr and, when file is not nil, JSON lines to file
func NewConsoleAdapter(file io.Writer) Adapter {
	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02 15:04:05"}
	if file != nil {
		out = zerolog.MultiLevelWriter(out, file)
	}
	return NewZerologAdapterWithLogger(zerolog.New(out).With().Timestamp().Logger())
}

// SetLevel sets the log level
func (z *ZerologAdapter) SetLevel(level Level) Adapter {
	z.level = level
	z.logger = z.logger.Level(z.convertLevel(level))
	return z
}

// GetLevel returns the current log level
func (z *ZerologAdapter) GetLevel() Level {
	return z.level
}

// convertLevel converts our Level to zerolog.Level
func (z *ZerologAdapter) convertLevel(level Level) zerolog.Level {
	switch level {
	case TraceLevel:
		return zerolog.TraceLevel
	case DebugLevel:
		return zerolog.DebugLevel
	case InfoLevel:
		return zerolog.InfoLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	case FatalLevel:
		return zerolog.FatalLevel
	case PanicLevel:
		return zerolog.PanicLevel
	case DisabledLevel:
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func (z *ZerologAdapter) Trace() Event { return &ZerologEvent{event: z.logger.Trace()} }
func (z *ZerologAdapter) Debug() Event { return &ZerologEvent{event: z.logger.Debug()} }
func (z *ZerologAdapter) Info() Event  { return &ZerologEvent{event: z.logger.Info()} }
func (z *ZerologAdapter) Warn() Event  { return &ZerologEvent{event: z.logger.Warn()} }
func (z *ZerologAdapter) Error() Event { return &ZerologEvent{event: z.logger.Error()} }
func (z *ZerologAdapter) Fatal() Event { return &ZerologEvent{event: z.logger.Fatal()} }
func (z *ZerologAdapter) Panic() Event { return &ZerologEvent{event: z.logger.Panic()} }

func (z *ZerologAdapter) Printf(format string, v ...interface{}) {
	z.logger.Printf(format, v...)
}

// WithContext returns a new adapter bound to the logger stored in ctx, if any
func (z *ZerologAdapter) WithContext(ctx context.Context) Adapter {
	logger := z.logger
	if ctx != nil {
		if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
			logger = *l
		}
	}
	return &ZerologAdapter{
		logger: logger.With().Logger(),
		level:  z.level,
	}
}

// WithFields returns a new adapter with additional fields
func (z *ZerologAdapter) WithFields(fields ...Field) Adapter {
	logger := z.logger.With()
	for _, field := range fields {
		logger = logger.Interface(field.Key, field.Value)
	}
	return &ZerologAdapter{
		logger: logger.Logger(),
		level:  z.level,
	}
}

// WithPackage returns a new adapter with package name field
func (z *ZerologAdapter) WithPackage(pkg string) Adapter {
	return &ZerologAdapter{
		logger: z.logger.With().Str("package", pkg).Logger(),
		level:  z.level,
	}
}
