package harness

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/roach88/engineos/internal/display"
	"github.com/roach88/engineos/internal/display/headless"
	"github.com/roach88/engineos/internal/host"
	"github.com/roach88/engineos/internal/logger"
	"github.com/roach88/engineos/internal/platform"
	"github.com/roach88/engineos/internal/testutil"
)

// ExecPath is the executable path scenarios run under. Restarts re-execute
// it.
const ExecPath = "/engineos"

type runner struct {
	host    *host.Context
	backend *testutil.FakeBackend
	display *headless.Backend
	result  *Result
}

// traceSink records runtime output into the result trace.
type traceSink struct {
	mu     sync.Mutex
	result *Result
}

func (s *traceSink) Logf(stream logger.Stream, format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result.AddOutput(stream.String(), fmt.Sprintf(format, args...))
}

func (s *traceSink) LogError(r logger.ErrorReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result.AddOutput(logger.Stderr.String(),
		fmt.Sprintf("%s: %s: %s (%s:%d)", r.Type.Label(), r.Function, r.Details(), r.File, r.Line))
}

// Run executes a scenario and returns the result.
//
// Execution flow:
//  1. Build fake platform and headless display back-ends
//  2. Create the host and run setup
//  3. Execute steps, checking expect clauses
//  4. Shut down and collect hooks and launched processes
//  5. Evaluate assertions
//
// An error is returned only when the scenario cannot be executed at all;
// failed expectations are reported in the result.
func Run(scenario *Scenario) (*Result, error) {
	if err := validateScenario(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario %q: %w", scenario.Name, err)
	}

	backend := newBackend(scenario.Backend)
	disp := newDisplay(scenario.Backend)

	hc, err := host.New(backend, disp, host.Config{
		ExecPath:    ExecPath,
		ProjectFile: scenario.Project,
		AudioDriver: scenario.Backend.AudioDriver,
		Stdout:      io.Discard,
		Stderr:      io.Discard,
		IDGenerator: testutil.NewStaticIDGenerator(scenario.InstanceID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create host: %w", err)
	}

	result := NewResult()
	hc.OS.AddLogger(&traceSink{result: result})
	r := &runner{host: hc, backend: backend, display: disp, result: result}

	setupErr := hc.Setup()
	result.AddCall("setup", nil, nil, setupErr)
	if setupErr == nil {
		for i, step := range scenario.Steps {
			r.executeStep(i, step)
		}
	}

	shutdownErr := hc.Shutdown()
	result.AddCall("shutdown", nil, nil, shutdownErr)

	result.Hooks = backend.Hooks()
	result.Execs = backend.Execs()

	for _, msg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(msg)
	}
	return result, nil
}

func newBackend(setup BackendSetup) *testutil.FakeBackend {
	name := setup.Name
	if name == "" {
		name = "Fake"
	}
	b := testutil.NewFakeBackend(name)
	for _, feature := range setup.Internal {
		b.Internal[feature] = true
	}
	if setup.RuntimeError != "" {
		b.RuntimeErr = errors.New(setup.RuntimeError)
	}
	b.Stdin = strings.NewReader(setup.Stdin)
	return b
}

func newDisplay(setup BackendSetup) *headless.Backend {
	var opts []headless.Option
	if len(setup.Screens) > 0 {
		screens := make([]display.Rect, len(setup.Screens))
		for i, s := range setup.Screens {
			screens[i] = display.Rect{
				Position: display.Point{X: s.X, Y: s.Y},
				Size:     display.Size{Width: s.Width, Height: s.Height},
			}
		}
		opts = append(opts, headless.WithScreens(screens...))
	}
	if setup.Window != nil {
		opts = append(opts, headless.WithWindowSize(display.Size{Width: setup.Window.Width, Height: setup.Window.Height}))
	}
	if setup.Decoration != nil {
		opts = append(opts, headless.WithDecoration(display.Size{Width: setup.Decoration.Width, Height: setup.Decoration.Height}))
	}
	return headless.New(opts...)
}

func (r *runner) executeStep(index int, step Step) {
	var args any
	if len(step.Args) > 0 {
		args = step.Args
	}

	value, err := ops[step.Op](r, step.Args)
	r.result.AddCall(step.Op, args, value, err)

	prefix := fmt.Sprintf("steps[%d] %s", index, step.Op)
	if step.Expect == nil {
		if err != nil {
			r.result.AddError(fmt.Sprintf("%s: unexpected error: %v", prefix, err))
		}
		return
	}

	if step.Expect.Error != "" {
		switch {
		case err == nil:
			r.result.AddError(fmt.Sprintf("%s: expected error %q, got none", prefix, step.Expect.Error))
		case !errorMatches(err, step.Expect.Error):
			r.result.AddError(fmt.Sprintf("%s: expected error %q, got %v", prefix, step.Expect.Error, err))
		}
		return
	}
	if err != nil {
		r.result.AddError(fmt.Sprintf("%s: unexpected error: %v", prefix, err))
		return
	}
	if step.Expect.Result != nil && !valuesEqual(value, step.Expect.Result) {
		r.result.AddError(fmt.Sprintf("%s: expected result %v, got %v", prefix, step.Expect.Result, value))
	}
}

func errorMatches(err error, want string) bool {
	if code := platform.CodeOf(err); code != "" {
		return string(code) == want
	}
	return strings.Contains(err.Error(), want)
}

// valuesEqual compares two values after a JSON round-trip so YAML ints,
// Go ints and float64 all compare by value.
func valuesEqual(a, b any) bool {
	na, errA := normalize(a)
	nb, errB := normalize(b)
	if errA != nil || errB != nil {
		return false
	}
	return reflect.DeepEqual(na, nb)
}

func normalize(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
