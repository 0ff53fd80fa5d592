// Package journal provides SQLite-backed storage for diagnostic output.
//
// A Sink plugs into the logger pipeline and records every message and
// error report of a process run under the run's instance ID. The CLI reads
// the journal back with Instances and Entries.
//
// # Database Configuration
//
//   - WAL mode: the CLI can read while a process writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks instead of failing
//   - user_version tracks schema migrations
//
// Ordering uses the per-instance seq assigned by the Sink, never wall time.
package journal
