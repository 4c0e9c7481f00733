// Package log provides the default zerolog-backed Logger implementation.
//
// This file wires the slog-compatible Logger interface to rs/zerolog, which
// is the logging backend used across GeNet. The default provider writes
// structured JSON to stderr and attaches cockroachdb stack traces to error
// fields when available.

package log

import (
	"context"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/genet/pkg/errors"
)

// zerologLogger adapts a zerolog.Logger to the Logger interface.
type zerologLogger struct {
	logger zerolog.Logger
}

// Debug implements Logger.Debug.
func (z *zerologLogger) Debug(msg string, fields ...any) {
	z.emit(z.logger.Debug(), msg, fields)
}

// Info implements Logger.Info.
func (z *zerologLogger) Info(msg string, fields ...any) {
	z.emit(z.logger.Info(), msg, fields)
}

// Warn implements Logger.Warn.
func (z *zerologLogger) Warn(msg string, fields ...any) {
	z.emit(z.logger.Warn(), msg, fields)
}

// Error implements Logger.Error.
func (z *zerologLogger) Error(msg string, fields ...any) {
	z.emit(z.logger.Error(), msg, fields)
}

// With implements Logger.With.
func (z *zerologLogger) With(fields ...any) Logger {
	ctx := z.logger.With()
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		ctx = ctx.Interface(key, fields[i+1])
	}
	return &zerologLogger{logger: ctx.Logger()}
}

// Enabled implements Logger.Enabled.
func (z *zerologLogger) Enabled(_ context.Context, level Level) bool {
	return toZerologLevel(level) >= z.logger.GetLevel()
}

// emit writes one event, translating key-value pairs into structured fields.
// A bare error value (not preceded by a string key) is attached as the
// standard error field together with its stack trace when present.
func (z *zerologLogger) emit(event *zerolog.Event, msg string, fields []any) {
	i := 0
	for i < len(fields) {
		if key, ok := fields[i].(string); ok && i+1 < len(fields) {
			event = event.Interface(key, fields[i+1])
			i += 2
			continue
		}
		if err, ok := fields[i].(error); ok {
			event = event.Err(err)
			if trace := errors.GetStacktrace(err); trace != "" {
				event = event.Str(StacktraceAttrKey, trace)
			}
			i++
			continue
		}
		// Dangling value without a key; keep it visible rather than drop it.
		event = event.Interface("!BADKEY", fields[i])
		i++
	}
	event.Msg(msg)
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// defaultProvider is the process-wide zerolog provider.
type defaultLoggerProvider struct {
	mu     sync.RWMutex
	root   zerolog.Logger
	logger Logger
}

var provider = newDefaultProvider()

func newDefaultProvider() *defaultLoggerProvider {
	root := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel)
	return &defaultLoggerProvider{
		root:   root,
		logger: &zerologLogger{logger: root},
	}
}

// GetLogger implements LoggerProvider.GetLogger.
func (p *defaultLoggerProvider) GetLogger() Logger {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.logger
}

// GetLoggerWithName implements LoggerProvider.GetLoggerWithName.
func (p *defaultLoggerProvider) GetLoggerWithName(name string) Logger {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return &zerologLogger{logger: p.root.With().Str(ComponentKey, name).Logger()}
}

// SetLevel implements LoggerProvider.SetLevel.
func (p *defaultLoggerProvider) SetLevel(level Level) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.root = p.root.Level(toZerologLevel(level))
	p.logger = &zerologLogger{logger: p.root}
}

// GetLogger returns the default logger instance.
func GetLogger() Logger {
	return provider.GetLogger()
}

// GetLoggerWithName returns a logger tagged with a component name.
func GetLoggerWithName(name string) Logger {
	return provider.GetLoggerWithName(name)
}

// SetLevel sets the minimum level of the default provider.
func SetLevel(level Level) {
	provider.SetLevel(level)
}

// RouteWarnings redirects GeNet library warnings (for example a
// ConvergenceWarning from a Lasso fit) through the default zerolog logger
// as structured warn-level events.
func RouteWarnings() {
	errors.SetZerologWarnFunc(func(warning error) {
		provider.mu.RLock()
		root := provider.root
		provider.mu.RUnlock()

		event := root.Warn()
		if marshaler, ok := warning.(zerolog.LogObjectMarshaler); ok {
			event = event.EmbedObject(marshaler)
		}
		event.Msg(warning.Error())
	})
}
