package logger

import (
	"errors"
	"fmt"
	"log/slog"
)

// Logger is a thin slog wrapper that carries component/function scoping and
// returns the errors it logs so call sites can log-and-return in one step.
type Logger struct {
	slog *slog.Logger
}

func New(component string) Logger {
	return Logger{slog: slog.Default().With("component", component)}
}

func (l Logger) Function(name string) Logger {
	return Logger{slog: l.slog.With("function", name)}
}

func (l Logger) File(name string) Logger {
	return Logger{slog: l.slog.With("file", name)}
}

func (l Logger) Debug(msg string, args ...any) {
	l.slog.Debug(msg, args...)
}

func (l Logger) Info(msg string, args ...any) {
	l.slog.Info(msg, args...)
}

func (l Logger) Warn(msg string, args ...any) {
	l.slog.Warn(msg, args...)
}

// Er logs an error without returning it, for paths that swallow the failure.
func (l Logger) Er(msg string, err error, args ...any) {
	l.slog.Error(msg, append([]any{"error", err}, args...)...)
}

// Err logs the error and returns it wrapped with the message. The original
// error remains reachable through errors.Is/errors.As.
func (l Logger) Err(msg string, err error, args ...any) error {
	l.Er(msg, err, args...)
	return fmt.Errorf("%s: %w", msg, err)
}

// Error logs the message and returns it as a new error.
func (l Logger) Error(msg string, args ...any) error {
	l.slog.Error(msg, args...)
	return errors.New(msg)
}

func (l Logger) ErrMsg(msg string) error {
	l.slog.Error(msg)
	return errors.New(msg)
}
