// ABOUTME: Logrus-backed logger implementation with structured fields
// ABOUTME: Adapts logrus to the engine's Logger interface

package logrus

import (
	"github.com/sirupsen/logrus"
)

// LogrusLogger implements the Logger interface using logrus
type LogrusLogger struct {
	log *logrus.Logger
}

// NewLogrusLogger creates a new logger with the default logrus configuration
func NewLogrusLogger() *LogrusLogger {
	return &LogrusLogger{
		log: logrus.New(),
	}
}

// NewLogrusLoggerWith wraps an existing logrus instance
func NewLogrusLoggerWith(log *logrus.Logger) *LogrusLogger {
	return &LogrusLogger{log: log}
}

// Debug logs a debug message
func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *LogrusLogger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}
