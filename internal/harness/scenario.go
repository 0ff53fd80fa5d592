package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Project is an optional project settings file. Relative paths are
	// resolved against the scenario file's directory.
	Project string `yaml:"project,omitempty"`

	// Backend configures the fake platform back-end and headless display.
	Backend BackendSetup `yaml:"backend,omitempty"`

	// Steps are executed in order once the host is running.
	Steps []Step `yaml:"steps"`

	// Assertions validate the trace and the back-end after shutdown.
	Assertions []Assertion `yaml:"assertions,omitempty"`

	// InstanceID fixes the instance ID. Empty uses the static default.
	InstanceID string `yaml:"instance_id,omitempty"`
}

// BackendSetup configures the back-ends a scenario runs on.
type BackendSetup struct {
	// Name is the platform back-end name. Empty means "Fake".
	Name string `yaml:"name,omitempty"`

	// Screens replaces the default single 1024x600 screen.
	Screens []Rect `yaml:"screens,omitempty"`

	// Window is the initial client area size.
	Window *Size `yaml:"window,omitempty"`

	// Decoration is added to the window size by RealWindowSize.
	Decoration *Size `yaml:"decoration,omitempty"`

	// Internal lists names the back-end's internal feature check accepts.
	Internal []string `yaml:"internal,omitempty"`

	// RuntimeError, when set, makes runtime initialization fail.
	RuntimeError string `yaml:"runtime_error,omitempty"`

	// Stdin is the console input read by dialogs.
	Stdin string `yaml:"stdin,omitempty"`

	// AudioDriver, when set, overrides the project's audio driver for
	// runtime initialization.
	AudioDriver *int `yaml:"audio_driver,omitempty"`
}

// Rect is a screen rectangle.
type Rect struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Size is a width and height.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Step invokes one operation.
type Step struct {
	// Op names the operation (see Ops).
	Op string `yaml:"op"`

	// Args are the operation arguments.
	Args map[string]any `yaml:"args,omitempty"`

	// Expect validates the outcome. Nil means the step must not fail.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause specifies the expected outcome of a step.
type ExpectClause struct {
	// Result is compared with the operation's result after JSON
	// normalization, so 3 and 3.0 are equal.
	Result any `yaml:"result,omitempty"`

	// Error is the expected platform error code (e.g. "FAILED"), or a
	// substring of the error message for errors without a code.
	Error string `yaml:"error,omitempty"`
}

// Assertion validates the trace or the back-end after shutdown.
type Assertion struct {
	Type string `yaml:"type"`

	// Stream and Text are used by output_contains.
	Stream string `yaml:"stream,omitempty"`
	Text   string `yaml:"text,omitempty"`

	// Texts is used by output_order.
	Texts []string `yaml:"texts,omitempty"`

	// Op and Count are used by call_count.
	Op    string `yaml:"op,omitempty"`
	Count int    `yaml:"count,omitempty"`

	// Hooks is used by hooks.
	Hooks []string `yaml:"hooks,omitempty"`

	// Args is used by restart.
	Args []string `yaml:"args,omitempty"`
}

// Assertion type constants.
const (
	AssertOutputContains = "output_contains"
	AssertOutputOrder    = "output_order"
	AssertCallCount      = "call_count"
	AssertHooks          = "hooks"
	AssertRestart        = "restart"
)

// LoadScenario reads and parses a scenario YAML file. The project path is
// resolved against the file's directory.
func LoadScenario(path string) (*Scenario, error) {
	return LoadScenarioWithBasePath(path, filepath.Dir(path))
}

// LoadScenarioWithBasePath reads and parses a scenario YAML file,
// resolving the project path relative to basePath.
//
// Unknown fields are rejected so typos surface as errors.
func LoadScenarioWithBasePath(path, basePath string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.Project != "" && !filepath.IsAbs(scenario.Project) && basePath != "" {
		scenario.Project = filepath.Join(basePath, scenario.Project)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	if s.Project != "" {
		if _, err := os.Stat(s.Project); os.IsNotExist(err) {
			return fmt.Errorf("project file not found: %s", s.Project)
		}
	}

	for i, step := range s.Steps {
		if step.Op == "" {
			return fmt.Errorf("steps[%d]: op is required", i)
		}
		if _, ok := ops[step.Op]; !ok {
			return fmt.Errorf("steps[%d]: unknown op %q", i, step.Op)
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertOutputContains:
		if a.Text == "" {
			return fmt.Errorf("assertions[%d]: text is required for output_contains", index)
		}
		if a.Stream != "" && a.Stream != "stdout" && a.Stream != "stderr" {
			return fmt.Errorf("assertions[%d]: stream must be stdout or stderr", index)
		}
	case AssertOutputOrder:
		if len(a.Texts) == 0 {
			return fmt.Errorf("assertions[%d]: texts list is required for output_order", index)
		}
	case AssertCallCount:
		if a.Op == "" {
			return fmt.Errorf("assertions[%d]: op is required for call_count", index)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for call_count", index)
		}
	case AssertHooks:
		if len(a.Hooks) == 0 {
			return fmt.Errorf("assertions[%d]: hooks list is required for hooks", index)
		}
	case AssertRestart:
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
