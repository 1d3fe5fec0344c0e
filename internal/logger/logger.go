package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the logging surface used across the tool. Collection details log
// at debug level; env variable values must never be passed to any method.
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string, err error)
	WithField(key string, value interface{}) Logger
	WithFields(fields map[string]interface{}) Logger
}

type LogrusLogger struct {
	logger *logrus.Logger
	entry  *logrus.Entry
}

// NewLogrus creates a logger writing to stderr at the default (info) level.
func NewLogrus() Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	return &LogrusLogger{
		logger: l,
		entry:  logrus.NewEntry(l),
	}
}

// NewLogrusWithLevel creates a logger at the given level. Unknown levels fall
// back to info.
func NewLogrusWithLevel(level string) Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)
	return &LogrusLogger{
		logger: l,
		entry:  logrus.NewEntry(l),
	}
}

func (l *LogrusLogger) Debug(msg string) {
	l.entry.Debug(msg)
}

func (l *LogrusLogger) Info(msg string) {
	l.entry.Info(msg)
}

func (l *LogrusLogger) Warn(msg string) {
	l.entry.Warn(msg)
}

func (l *LogrusLogger) Error(msg string, err error) {
	l.entry.WithError(err).Error(msg)
}

func (l *LogrusLogger) WithField(key string, value interface{}) Logger {
	return &LogrusLogger{
		logger: l.logger,
		entry:  l.entry.WithField(key, value),
	}
}

func (l *LogrusLogger) WithFields(fields map[string]interface{}) Logger {
	return &LogrusLogger{
		logger: l.logger,
		entry:  l.entry.WithFields(fields),
	}
}
