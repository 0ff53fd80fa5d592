package harness

import "github.com/roach88/engineos/internal/testutil"

// Event types recorded in a trace.
const (
	EventCall   = "call"
	EventOutput = "output"
)

// TraceEvent is either an operation call with its outcome, or one unit of
// output the runtime produced.
type TraceEvent struct {
	Seq    int64  `json:"seq"`
	Type   string `json:"type"`
	Op     string `json:"op,omitempty"`
	Args   any    `json:"args,omitempty"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
	Stream string `json:"stream,omitempty"`
	Text   string `json:"text,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every expect clause and assertion held.
	Pass bool `json:"pass"`

	// Trace holds calls and output in the order they happened.
	Trace []TraceEvent `json:"trace"`

	// Errors contains validation error messages.
	Errors []string `json:"errors,omitempty"`

	// Hooks are the back-end lifecycle hooks, in call order.
	Hooks []string `json:"hooks"`

	// Execs are the processes launched through the back-end.
	Execs []testutil.ExecCall `json:"execs,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
		Hooks:  []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

func (r *Result) nextSeq() int64 {
	return int64(len(r.Trace)) + 1
}

// AddCall appends an operation call.
func (r *Result) AddCall(op string, args, result any, err error) {
	ev := TraceEvent{Seq: r.nextSeq(), Type: EventCall, Op: op, Args: args, Result: result}
	if err != nil {
		ev.Error = err.Error()
	}
	r.Trace = append(r.Trace, ev)
}

// AddOutput appends one unit of runtime output.
func (r *Result) AddOutput(stream, text string) {
	r.Trace = append(r.Trace, TraceEvent{Seq: r.nextSeq(), Type: EventOutput, Stream: stream, Text: text})
}

// Outputs returns the output events only.
func (r *Result) Outputs() []TraceEvent {
	var out []TraceEvent
	for _, ev := range r.Trace {
		if ev.Type == EventOutput {
			out = append(out, ev)
		}
	}
	return out
}
