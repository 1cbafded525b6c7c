package logger

import (
	"errors"
	"io"
)

// MultiLogger forwards every message to each wrapped logger in order.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger wraps the given loggers, skipping nil entries.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	ml := &MultiLogger{}
	for _, l := range loggers {
		if l != nil {
			ml.loggers = append(ml.loggers, l)
		}
	}
	return ml
}

func (ml *MultiLogger) LogTrace(format string, args ...interface{}) {
	for _, l := range ml.loggers {
		l.LogTrace(format, args...)
	}
}

func (ml *MultiLogger) LogDebug(format string, args ...interface{}) {
	for _, l := range ml.loggers {
		l.LogDebug(format, args...)
	}
}

func (ml *MultiLogger) LogInfo(format string, args ...interface{}) {
	for _, l := range ml.loggers {
		l.LogInfo(format, args...)
	}
}

func (ml *MultiLogger) LogWarn(format string, args ...interface{}) {
	for _, l := range ml.loggers {
		l.LogWarn(format, args...)
	}
}

func (ml *MultiLogger) LogError(format string, args ...interface{}) {
	for _, l := range ml.loggers {
		l.LogError(format, args...)
	}
}

func (ml *MultiLogger) LogProgress(label string, done, total int) {
	for _, l := range ml.loggers {
		l.LogProgress(label, done, total)
	}
}

// Close closes every wrapped logger that is an io.Closer and joins their errors.
func (ml *MultiLogger) Close() error {
	var errs []error
	for _, l := range ml.loggers {
		if c, ok := l.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// NoOpLogger discards everything.
type NoOpLogger struct{}

// NewNoOpLogger creates a NoOpLogger.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

func (n *NoOpLogger) LogTrace(format string, args ...interface{}) {}
func (n *NoOpLogger) LogDebug(format string, args ...interface{}) {}
func (n *NoOpLogger) LogInfo(format string, args ...interface{})  {}
func (n *NoOpLogger) LogWarn(format string, args ...interface{})  {}
func (n *NoOpLogger) LogError(format string, args ...interface{}) {}
func (n *NoOpLogger) LogProgress(label string, done, total int)   {}
