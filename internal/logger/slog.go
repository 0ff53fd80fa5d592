package logger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// SlogLogger forwards pipeline traffic to a structured slog logger.
//
// Print traffic becomes Info records, printerr traffic Error records and
// error reports become Warn or Error records carrying the report fields as
// attributes.
type SlogLogger struct {
	l *slog.Logger
}

// NewSlogLogger wraps l. A nil l uses slog.Default().
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	if l == nil {
		l = slog.Default()
	}
	return &SlogLogger{l: l}
}

// Logf implements Logger.
func (s *SlogLogger) Logf(stream Stream, format string, args ...any) {
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	if msg == "" {
		return
	}
	level := slog.LevelInfo
	if stream == Stderr {
		level = slog.LevelError
	}
	s.l.Log(context.Background(), level, msg, "stream", stream.String())
}

// LogError implements Logger.
func (s *SlogLogger) LogError(r ErrorReport) {
	level := slog.LevelError
	if r.Type == ErrWarning {
		level = slog.LevelWarn
	}
	s.l.Log(context.Background(), level, r.Details(),
		"type", r.Type.Label(),
		"function", r.Function,
		"file", r.File,
		"line", r.Line,
		"code", r.Code,
	)
}
