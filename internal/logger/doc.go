// Package logger implements the diagnostic pipeline every print and error
// report in the engine flows through.
//
// A pipeline is a Composite: an ordered, immutable list of Logger sinks.
// Messages are delivered to every sink in insertion order. There is no
// removal operation; a sink added to a pipeline lives as long as the
// pipeline does.
//
// Sinks provided here:
//   - StdLogger: process stdout/stderr
//   - SlogLogger: a log/slog logger
//
// The journal package provides a persistent SQLite sink.
package logger
