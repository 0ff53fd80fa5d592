package harness

import (
	"fmt"
	"slices"
	"strings"
)

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string       // Assertion type for categorization
	Expected string       // Human-readable expected outcome
	Actual   string       // Human-readable actual outcome
	Trace    []TraceEvent // Full trace for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nFull trace:\n")
	for _, event := range e.Trace {
		switch event.Type {
		case EventCall:
			fmt.Fprintf(&buf, "  [%d] %s %v\n", event.Seq, event.Op, event.Args)
		case EventOutput:
			fmt.Fprintf(&buf, "  [%d] %s %q\n", event.Seq, event.Stream, event.Text)
		}
	}

	return buf.String()
}

// EvaluateAssertions runs every assertion against the result and returns
// the failure messages.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var errs []string
	for _, a := range assertions {
		if err := evaluate(result, a); err != nil {
			errs = append(errs, err.Error())
		}
	}
	return errs
}

func evaluate(result *Result, a Assertion) error {
	switch a.Type {
	case AssertOutputContains:
		return assertOutputContains(result.Trace, a)
	case AssertOutputOrder:
		return assertOutputOrder(result.Trace, a)
	case AssertCallCount:
		return assertCallCount(result.Trace, a)
	case AssertHooks:
		return assertHooks(result, a)
	case AssertRestart:
		return assertRestart(result, a)
	default:
		return fmt.Errorf("unknown assertion type: %s", a.Type)
	}
}

// assertOutputContains checks that some output event contains the text,
// on the given stream when one is set.
func assertOutputContains(trace []TraceEvent, a Assertion) error {
	for _, ev := range trace {
		if ev.Type != EventOutput {
			continue
		}
		if a.Stream != "" && ev.Stream != a.Stream {
			continue
		}
		if strings.Contains(ev.Text, a.Text) {
			return nil
		}
	}

	where := "output"
	if a.Stream != "" {
		where = a.Stream
	}
	return &AssertionError{
		Type:     AssertOutputContains,
		Expected: fmt.Sprintf("%s containing %q", where, a.Text),
		Actual:   "not found in trace",
		Trace:    trace,
	}
}

// assertOutputOrder checks that the texts appear in output in order.
// Other output may appear between them.
func assertOutputOrder(trace []TraceEvent, a Assertion) error {
	next := 0
	for _, ev := range trace {
		if next == len(a.Texts) {
			break
		}
		if ev.Type == EventOutput && strings.Contains(ev.Text, a.Texts[next]) {
			next++
		}
	}
	if next == len(a.Texts) {
		return nil
	}
	return &AssertionError{
		Type:     AssertOutputOrder,
		Expected: fmt.Sprintf("output in order: %q", a.Texts),
		Actual:   fmt.Sprintf("missing or out of order: %q", a.Texts[next]),
		Trace:    trace,
	}
}

// assertCallCount checks that the op ran exactly Count times.
func assertCallCount(trace []TraceEvent, a Assertion) error {
	count := 0
	for _, ev := range trace {
		if ev.Type == EventCall && ev.Op == a.Op {
			count++
		}
	}
	if count == a.Count {
		return nil
	}
	return &AssertionError{
		Type:     AssertCallCount,
		Expected: fmt.Sprintf("%s called %d times", a.Op, a.Count),
		Actual:   fmt.Sprintf("called %d times", count),
		Trace:    trace,
	}
}

// assertHooks checks the back-end lifecycle hooks exactly.
func assertHooks(result *Result, a Assertion) error {
	if slices.Equal(result.Hooks, a.Hooks) {
		return nil
	}
	return &AssertionError{
		Type:     AssertHooks,
		Expected: fmt.Sprintf("%v", a.Hooks),
		Actual:   fmt.Sprintf("%v", result.Hooks),
		Trace:    result.Trace,
	}
}

// assertRestart checks that the executable was relaunched exactly once,
// non-blocking, with the given arguments.
func assertRestart(result *Result, a Assertion) error {
	var restarts []string
	for _, e := range result.Execs {
		if e.Path == ExecPath && !e.Blocking {
			if slices.Equal(e.Args, a.Args) || (len(e.Args) == 0 && len(a.Args) == 0) {
				return nil
			}
			restarts = append(restarts, fmt.Sprintf("%v", e.Args))
		}
	}
	actual := "no restart"
	if len(restarts) > 0 {
		actual = "restarted with " + strings.Join(restarts, ", ")
	}
	return &AssertionError{
		Type:     AssertRestart,
		Expected: fmt.Sprintf("restart of %s with %v", ExecPath, a.Args),
		Actual:   actual,
		Trace:    result.Trace,
	}
}
