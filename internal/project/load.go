package project

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// Load reads a settings file, choosing the format by extension: .yaml and
// .yml are YAML, .cue is CUE.
func Load(path string) (*Settings, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	case ".cue":
		return LoadCUE(path)
	default:
		return nil, fmt.Errorf("unsupported project file %q: want .yaml, .yml or .cue", path)
	}
}

// LoadYAML reads a YAML settings file.
// Unknown fields are rejected so typos do not pass silently.
func LoadYAML(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}

	var s Settings
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := s.resolve(path); err != nil {
		return nil, fmt.Errorf("invalid project: %w", err)
	}
	return &s, nil
}

// LoadCUE reads a CUE settings file and validates it against the embedded
// #Project schema.
func LoadCUE(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("building project schema: %w", err)
	}

	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("building CUE value: %w", err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Project")).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("invalid project: %w", err)
	}

	var s Settings
	if err := unified.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding project: %w", err)
	}

	if err := s.resolve(path); err != nil {
		return nil, fmt.Errorf("invalid project: %w", err)
	}
	return &s, nil
}
