// Package logging wraps zap behind a small Logger so consumers of the
// framework never import zap directly. The outcome types stay logging
// agnostic; see pkg/logext for the helpers that log around a result.
package logging

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type (
	Field  = zapcore.Field
	Option = zap.Option
)

type loggerCtxKey struct{}

type Logger struct {
	log *zap.Logger
}

var (
	logOnce      sync.Once
	cachedLogger *Logger
)

// SetGlobal installs a custom logger as the process-wide default. Only
// the first caller wins; later calls are ignored.
func SetGlobal(logger *zap.Logger) {
	if logger != nil {
		logOnce.Do(func() {
			cachedLogger = &Logger{log: logger}
		})
	}
}

func inProduction() bool {
	return os.Getenv("GO_ENVIRONMENT") == "production"
}

func defaultLogger() *zap.Logger {
	opts := []Option{
		zap.AddCallerSkip(1),
	}

	var logCfg zap.Config
	if inProduction() {
		logCfg = zap.NewProductionConfig()
	} else {
		logCfg = zap.NewDevelopmentConfig()
		logCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	logger, err := logCfg.Build(opts...)
	if err != nil {
		log.Panicf("could not create logger: %v", err)
	}

	return logger
}

// FromZap wraps an existing zap logger without touching the global one.
func FromZap(logger *zap.Logger) *Logger {
	return &Logger{log: logger}
}

func New() *Logger {
	if cachedLogger != nil {
		return cachedLogger
	}

	logger := defaultLogger()

	logOnce.Do(func() {
		cachedLogger = &Logger{log: logger}
	})

	return cachedLogger
}

// FromContext returns the logger carried by ctx, falling back to the
// global one.
func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return New()
	}

	if l, ok := ctx.Value(loggerCtxKey{}).(*Logger); ok {
		return l
	}

	return New()
}

func (l *Logger) Debug(msg string, fields ...Field) {
	l.log.Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...Field) {
	l.log.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...Field) {
	l.log.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...Field) {
	l.log.Error(msg, fields...)
}

func (l *Logger) Sync() error {
	return l.log.Sync()
}

func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{log: l.log.With(fields...)}
}

func (l *Logger) WithOptions(opts ...Option) *Logger {
	return &Logger{log: l.log.WithOptions(opts...)}
}

// GetContext returns a child context carrying l.
func (l *Logger) GetContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, l)
}
