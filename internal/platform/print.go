package platform

import (
	"path/filepath"
	"runtime"

	"github.com/roach88/engineos/internal/logger"
)

// AddLogger appends a sink to the pipeline. The pipeline is replaced, not
// mutated, so a concurrent Print sees either the old or the new sink set.
func (o *OS) AddLogger(l logger.Logger) {
	if l == nil {
		return
	}
	for {
		cur := o.pipeline.Load()
		var next *logger.Composite
		if cur == nil {
			next = logger.NewBuilder().Add(l).Build()
		} else {
			next = cur.With(l)
		}
		if o.pipeline.CompareAndSwap(cur, next) {
			return
		}
	}
}

// Logger returns the current pipeline, or nil once the OS is closed.
func (o *OS) Logger() *logger.Composite {
	return o.pipeline.Load()
}

// Print sends a message to every sink on the stdout stream.
func (o *OS) Print(format string, args ...any) {
	if p := o.pipeline.Load(); p != nil {
		p.Logf(logger.Stdout, format, args...)
	}
}

// Printerr sends a message to every sink on the stderr stream.
func (o *OS) Printerr(format string, args ...any) {
	if p := o.pipeline.Load(); p != nil {
		p.Logf(logger.Stderr, format, args...)
	}
}

// PrintError sends a structured error report to every sink. Reports are
// never filtered by verbosity.
func (o *OS) PrintError(r logger.ErrorReport) {
	if p := o.pipeline.Load(); p != nil {
		p.LogError(r)
	}
}

// ReportError is PrintError with the function, file and line of the caller.
func (o *OS) ReportError(typ logger.ErrorType, code, rationale string) {
	r := logger.ErrorReport{Code: code, Rationale: rationale, Type: typ}
	if pc, file, line, ok := runtime.Caller(1); ok {
		r.File = filepath.Base(file)
		r.Line = line
		if fn := runtime.FuncForPC(pc); fn != nil {
			r.Function = fn.Name()
		}
	}
	o.PrintError(r)
}
