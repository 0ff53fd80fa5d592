package testutil

import (
	"fmt"
	"strings"
	"sync"

	"github.com/roach88/engineos/internal/logger"
)

// LogLine is one message captured by RecordingLogger.
type LogLine struct {
	Stream logger.Stream
	Text   string
}

// RecordingLogger captures everything sent to it. An optional tag is kept
// alongside each entry in the shared Order slice so tests can check the
// delivery order across several sinks.
type RecordingLogger struct {
	Tag   string
	Order *[]string

	mu      sync.Mutex
	lines   []LogLine
	reports []logger.ErrorReport
	closed  bool
}

// NewRecordingLogger creates a recorder. order may be nil.
func NewRecordingLogger(tag string, order *[]string) *RecordingLogger {
	return &RecordingLogger{Tag: tag, Order: order}
}

func (r *RecordingLogger) Logf(stream logger.Stream, format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, LogLine{Stream: stream, Text: fmt.Sprintf(format, args...)})
	if r.Order != nil {
		*r.Order = append(*r.Order, r.Tag)
	}
}

func (r *RecordingLogger) LogError(report logger.ErrorReport) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, report)
	if r.Order != nil {
		*r.Order = append(*r.Order, r.Tag)
	}
}

// Close marks the recorder closed.
func (r *RecordingLogger) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

func (r *RecordingLogger) Lines() []LogLine {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]LogLine(nil), r.lines...)
}

// Text concatenates every captured message.
func (r *RecordingLogger) Text() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var b strings.Builder
	for _, l := range r.lines {
		b.WriteString(l.Text)
	}
	return b.String()
}

func (r *RecordingLogger) Reports() []logger.ErrorReport {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]logger.ErrorReport(nil), r.reports...)
}

func (r *RecordingLogger) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}
