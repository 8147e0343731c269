// Package corolog is fringego's structured-logging surface. The teacher
// (tetratelabs/wazero) ships no logging library of its own — it is an
// embeddable runtime, not a service — so this wraps moby-moby's choice
// of github.com/sirupsen/logrus, the one place a generator library
// earns its keep logging anything: the debug registry's lifecycle and
// a panicking body's diagnostics.
package corolog

import "github.com/sirupsen/logrus"

// Logger is the minimal surface fringego needs. Tests and callers that
// don't want logrus can supply their own implementation via
// (*fringego.Config).WithLogger.
type Logger interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
}

type logrusLogger struct {
	entry *logrus.Entry
}

// Default returns a Logger backed by logrus.StandardLogger(), tagged
// with a "component" field the way moby-moby's daemon subsystems tag
// their own log lines.
func Default() Logger {
	return &logrusLogger{entry: logrus.StandardLogger().WithField("component", "fringego")}
}

func (l *logrusLogger) Debugf(format string, args ...any) { l.entry.Debugf(format, args...) }
func (l *logrusLogger) Warnf(format string, args ...any)  { l.entry.Warnf(format, args...) }

// Noop discards everything; useful in tests that don't want log noise.
func Noop() Logger { return noopLogger{} }

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}
func (noopLogger) Warnf(string, ...any)  {}
