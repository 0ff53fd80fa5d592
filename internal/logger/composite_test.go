package logger

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder appends every delivery to a shared trace so ordering across
// sinks can be checked.
type recorder struct {
	name  string
	trace *[]string
}

func (r *recorder) Logf(stream Stream, format string, args ...any) {
	*r.trace = append(*r.trace, fmt.Sprintf("%s/%s:%s", r.name, stream, fmt.Sprintf(format, args...)))
}

func (r *recorder) LogError(rep ErrorReport) {
	*r.trace = append(*r.trace, fmt.Sprintf("%s/error:%s", r.name, rep.Details()))
}

type closingRecorder struct {
	recorder
	closed bool
	err    error
}

func (c *closingRecorder) Close() error {
	c.closed = true
	return c.err
}

func TestComposite_DeliversInInsertionOrder(t *testing.T) {
	var trace []string
	c := NewBuilder().
		Add(&recorder{name: "a", trace: &trace}).
		Add(&recorder{name: "b", trace: &trace}).
		Add(&recorder{name: "c", trace: &trace}).
		Build()

	c.Logf(Stdout, "hello %d", 1)
	c.Logf(Stderr, "bad")
	c.LogError(ErrorReport{Code: "x != nil"})

	assert.Equal(t, []string{
		"a/stdout:hello 1", "b/stdout:hello 1", "c/stdout:hello 1",
		"a/stderr:bad", "b/stderr:bad", "c/stderr:bad",
		"a/error:x != nil", "b/error:x != nil", "c/error:x != nil",
	}, trace)
}

func TestBuilder_IgnoresNil(t *testing.T) {
	b := NewBuilder().Add(nil)
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.Build().Len())
}

func TestBuilder_BuildIsImmutable(t *testing.T) {
	var trace []string
	b := NewBuilder().Add(&recorder{name: "a", trace: &trace})
	c := b.Build()

	b.Add(&recorder{name: "late", trace: &trace})
	c.Logf(Stdout, "m")

	assert.Equal(t, []string{"a/stdout:m"}, trace)
	assert.Equal(t, 1, c.Len())
}

func TestComposite_WithLeavesReceiverUntouched(t *testing.T) {
	var trace []string
	base := NewBuilder().Add(&recorder{name: "a", trace: &trace}).Build()
	extended := base.With(&recorder{name: "b", trace: &trace})

	base.Logf(Stdout, "1")
	extended.Logf(Stdout, "2")

	assert.Equal(t, []string{"a/stdout:1", "a/stdout:2", "b/stdout:2"}, trace)
	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, extended.Len())
}

func TestComposite_CloseClosesClosers(t *testing.T) {
	var trace []string
	first := &closingRecorder{recorder: recorder{name: "a", trace: &trace}, err: errors.New("disk gone")}
	second := &closingRecorder{recorder: recorder{name: "b", trace: &trace}}
	c := NewBuilder().Add(first).Add(&recorder{name: "plain", trace: &trace}).Add(second).Build()

	err := c.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
	assert.True(t, first.closed)
	assert.True(t, second.closed, "close continues after a failing sink")
}

func TestStdLogger_Streams(t *testing.T) {
	var out, errOut bytes.Buffer
	l := &StdLogger{Out: &out, Err: &errOut}

	l.Logf(Stdout, "frame %d\n", 7)
	l.Logf(Stderr, "oops\n")

	assert.Equal(t, "frame 7\n", out.String())
	assert.Equal(t, "oops\n", errOut.String())
}

func TestStdLogger_LogErrorFormat(t *testing.T) {
	tests := []struct {
		name   string
		report ErrorReport
		want   string
	}{
		{
			name:   "rationale preferred",
			report: ErrorReport{Function: "load", File: "a.go", Line: 3, Code: "err != nil", Rationale: "file missing"},
			want:   "ERROR: load: file missing\n   At: a.go:3.\n",
		},
		{
			name:   "falls back to code",
			report: ErrorReport{Function: "load", File: "a.go", Line: 3, Code: "err != nil"},
			want:   "ERROR: load: err != nil\n   At: a.go:3.\n",
		},
		{
			name:   "warning label",
			report: ErrorReport{Function: "f", File: "b.go", Line: 9, Rationale: "slow", Type: ErrWarning},
			want:   "WARNING: f: slow\n   At: b.go:9.\n",
		},
		{
			name:   "shader label",
			report: ErrorReport{Function: "f", File: "s.glsl", Line: 1, Rationale: "bad", Type: ErrShader},
			want:   "SHADER ERROR: f: bad\n   At: s.glsl:1.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errOut bytes.Buffer
			l := &StdLogger{Out: &bytes.Buffer{}, Err: &errOut}
			l.LogError(tt.report)
			assert.Equal(t, tt.want, errOut.String())
		})
	}
}

func TestSlogLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	l.Logf(Stdout, "loaded %s\n", "scene")
	l.Logf(Stderr, "lost device")
	l.Logf(Stdout, "\n") // blank lines are dropped
	l.LogError(ErrorReport{Function: "f", File: "x.go", Line: 2, Rationale: "careful", Type: ErrWarning})

	out := buf.String()
	assert.Contains(t, out, `level=INFO msg="loaded scene" stream=stdout`)
	assert.Contains(t, out, `level=ERROR msg="lost device" stream=stderr`)
	assert.Contains(t, out, `level=WARN msg=careful type=WARNING function=f file=x.go line=2`)
	assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("\n")))
}
