package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Stream selects the output channel a message is written to.
type Stream int

const (
	// Stdout is regular diagnostic output (print).
	Stdout Stream = iota
	// Stderr is error-stream output (printerr).
	Stderr
)

// String returns the stream name used by persistent sinks.
func (s Stream) String() string {
	if s == Stderr {
		return "stderr"
	}
	return "stdout"
}

// ErrorType classifies a structured error report.
type ErrorType int

const (
	ErrError ErrorType = iota
	ErrWarning
	ErrScript
	ErrShader
)

// Label returns the prefix printed in front of a report of this type.
func (t ErrorType) Label() string {
	switch t {
	case ErrWarning:
		return "WARNING"
	case ErrScript:
		return "SCRIPT ERROR"
	case ErrShader:
		return "SHADER ERROR"
	default:
		return "ERROR"
	}
}

// ErrorReport carries the context of an assertion or contract violation.
type ErrorReport struct {
	Function  string
	File      string
	Line      int
	Code      string // source expression that failed
	Rationale string // human explanation, may be empty
	Type      ErrorType
}

// Details returns the rationale, or the failing expression when no rationale
// was given.
func (r ErrorReport) Details() string {
	if r.Rationale != "" {
		return r.Rationale
	}
	return r.Code
}

// Logger is a diagnostic sink. Every sink in a Composite receives identical
// traffic.
type Logger interface {
	// Logf formats and writes a message to the given stream.
	Logf(stream Stream, format string, args ...any)

	// LogError writes a structured error report. Reports are never filtered
	// by verbosity.
	LogError(report ErrorReport)
}

// StdLogger writes to the process standard streams.
//
// Out and Err default to os.Stdout and os.Stderr.
type StdLogger struct {
	mu  sync.Mutex
	Out io.Writer
	Err io.Writer
}

// NewStdLogger creates a StdLogger bound to the process standard streams.
func NewStdLogger() *StdLogger {
	return &StdLogger{Out: os.Stdout, Err: os.Stderr}
}

func (l *StdLogger) writer(stream Stream) io.Writer {
	if stream == Stderr {
		if l.Err == nil {
			return os.Stderr
		}
		return l.Err
	}
	if l.Out == nil {
		return os.Stdout
	}
	return l.Out
}

// Logf implements Logger.
func (l *StdLogger) Logf(stream Stream, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.writer(stream), format, args...)
}

// LogError implements Logger.
//
// Output format:
//
//	ERROR: load_config: file is missing
//	   At: core/config.go:42.
func (l *StdLogger) LogError(r ErrorReport) {
	l.mu.Lock()
	defer l.mu.Unlock()
	w := l.writer(Stderr)
	fmt.Fprintf(w, "%s: %s: %s\n", r.Type.Label(), r.Function, r.Details())
	fmt.Fprintf(w, "   At: %s:%d.\n", r.File, r.Line)
}
