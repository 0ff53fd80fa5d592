package logger

import (
	"errors"
	"io"
)

// Composite fans every message out to an ordered set of sinks.
//
// A Composite is immutable once built: the sink order is insertion order
// and never changes. Use Builder (or With) to derive a larger pipeline.
type Composite struct {
	sinks []Logger
}

// Builder collects sinks during setup and produces one immutable Composite.
type Builder struct {
	sinks []Logger
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends a sink. Nil sinks are ignored.
func (b *Builder) Add(l Logger) *Builder {
	if l != nil {
		b.sinks = append(b.sinks, l)
	}
	return b
}

// Len returns the number of registered sinks.
func (b *Builder) Len() int {
	return len(b.sinks)
}

// Build returns a Composite holding a copy of the registered sinks.
// The builder may keep being used afterwards without affecting the result.
func (b *Builder) Build() *Composite {
	sinks := make([]Logger, len(b.sinks))
	copy(sinks, b.sinks)
	return &Composite{sinks: sinks}
}

// With returns a new Composite with l appended after the existing sinks.
// The receiver is left untouched.
func (c *Composite) With(l Logger) *Composite {
	b := &Builder{sinks: append([]Logger(nil), c.sinks...)}
	return b.Add(l).Build()
}

// Len returns the number of sinks in the pipeline.
func (c *Composite) Len() int {
	return len(c.sinks)
}

// Logf implements Logger by forwarding to every sink in order.
func (c *Composite) Logf(stream Stream, format string, args ...any) {
	for _, s := range c.sinks {
		s.Logf(stream, format, args...)
	}
}

// LogError implements Logger by forwarding to every sink in order.
func (c *Composite) LogError(r ErrorReport) {
	for _, s := range c.sinks {
		s.LogError(r)
	}
}

// Close closes every sink that implements io.Closer, in insertion order.
// All sinks are attempted; the returned error joins every failure.
func (c *Composite) Close() error {
	var errs []error
	for _, s := range c.sinks {
		if closer, ok := s.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
