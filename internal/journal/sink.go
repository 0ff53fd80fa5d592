package journal

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/roach88/engineos/internal/logger"
)

// Sink is a logger.Logger that appends every message and error report to
// a Journal under one instance ID. Entries are numbered in delivery order.
//
// Write failures cannot be returned through the Logger interface; they are
// counted and reported through slog.
type Sink struct {
	j          *Journal
	instanceID string

	mu       sync.Mutex
	seq      int64
	failures int
}

// NewSink creates a sink writing to j. The sink takes ownership of j:
// closing the sink closes the journal.
func NewSink(j *Journal, instanceID string) *Sink {
	return &Sink{j: j, instanceID: instanceID}
}

func (s *Sink) append(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	e.InstanceID = s.instanceID
	e.Seq = s.seq
	if err := s.j.Append(context.Background(), e); err != nil {
		s.failures++
		slog.Warn("journal write failed", "instance", s.instanceID, "seq", e.Seq, "error", err)
	}
}

// Logf implements logger.Logger.
func (s *Sink) Logf(stream logger.Stream, format string, args ...any) {
	s.append(Entry{
		Kind:   KindMessage,
		Stream: stream.String(),
		Text:   fmt.Sprintf(format, args...),
	})
}

// LogError implements logger.Logger.
func (s *Sink) LogError(r logger.ErrorReport) {
	s.append(Entry{
		Kind:      KindError,
		ErrorType: r.Type.Label(),
		Function:  r.Function,
		File:      r.File,
		Line:      r.Line,
		Code:      r.Code,
		Rationale: r.Rationale,
	})
}

// Failures returns how many writes failed.
func (s *Sink) Failures() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failures
}

// Close closes the underlying journal.
func (s *Sink) Close() error {
	return s.j.Close()
}

var _ logger.Logger = (*Sink)(nil)
