package logger

import "context"

// NewNop returns a Logger that discards everything. Meant for tests and
// for components that run before logging is configured.
func NewNop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, fields ...Field) {}
func (nopLogger) Info(msg string, fields ...Field)  {}
func (nopLogger) Warn(msg string, fields ...Field)  {}
func (nopLogger) Error(msg string, fields ...Field) {}
func (nopLogger) Fatal(msg string, fields ...Field) {}

func (n nopLogger) WithContext(ctx context.Context) Logger { return n }
func (n nopLogger) WithFields(fields ...Field) Logger      { return n }

func (nopLogger) Sync() error { return nil }
