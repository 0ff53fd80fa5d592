package project

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/roach88/engineos/internal/display"
)

// Settings is a project configuration file.
type Settings struct {
	Name              string          `yaml:"name" json:"name"`
	ResourcePathValue string          `yaml:"resource_path" json:"resource_path"`
	UseCustomUserDir  bool            `yaml:"use_custom_user_dir" json:"use_custom_user_dir"`
	CustomUserDirName string          `yaml:"custom_user_dir_name" json:"custom_user_dir_name"`
	Features          []string        `yaml:"features" json:"features"`
	Display           DisplaySettings `yaml:"display" json:"display"`
	Run               RunSettings     `yaml:"run" json:"run"`
}

// DisplaySettings configure the window. A nil KeepScreenOn means the
// default, on.
type DisplaySettings struct {
	Width        int    `yaml:"width" json:"width"`
	Height       int    `yaml:"height" json:"height"`
	Fullscreen   bool   `yaml:"fullscreen" json:"fullscreen"`
	VSync        bool   `yaml:"vsync" json:"vsync"`
	KeepScreenOn *bool  `yaml:"keep_screen_on" json:"keep_screen_on"`
	Orientation  string `yaml:"orientation" json:"orientation"`
}

// RunSettings configure the runtime.
type RunSettings struct {
	LowProcessorMode      bool `yaml:"low_processor_mode" json:"low_processor_mode"`
	LowProcessorSleepUsec int  `yaml:"low_processor_sleep_usec" json:"low_processor_sleep_usec"`
	AudioDriver           int  `yaml:"audio_driver" json:"audio_driver"`
	Verbose               bool `yaml:"verbose" json:"verbose"`
}

// HasCustomFeature reports whether name is listed in features.
func (s *Settings) HasCustomFeature(name string) bool {
	return slices.Contains(s.Features, name)
}

// AppName is the project name.
func (s *Settings) AppName() string { return s.Name }

// ResourcePath is the absolute resource directory.
func (s *Settings) ResourcePath() string { return s.ResourcePathValue }

// CustomUserDir returns the custom user data directory when the project
// opted into one.
func (s *Settings) CustomUserDir() (string, bool) {
	return s.CustomUserDirName, s.UseCustomUserDir
}

// KeepScreenOnValue resolves the keep-screen-on setting; unset means on.
func (d DisplaySettings) KeepScreenOnValue() bool {
	return d.KeepScreenOn == nil || *d.KeepScreenOn
}

// ScreenOrientation parses Orientation; empty means landscape.
func (d DisplaySettings) ScreenOrientation() (display.ScreenOrientation, error) {
	if d.Orientation == "" {
		return display.OrientationLandscape, nil
	}
	o, ok := display.ParseScreenOrientation(d.Orientation)
	if !ok {
		return 0, fmt.Errorf("unknown orientation %q", d.Orientation)
	}
	return o, nil
}

// WindowSize is the configured size, or zero when unset.
func (d DisplaySettings) WindowSize() display.Size {
	return display.Size{Width: d.Width, Height: d.Height}
}

// resolve makes the resource path absolute relative to the settings file's
// directory and validates cross-field rules.
func (s *Settings) resolve(file string) error {
	base := filepath.Dir(file)
	switch {
	case s.ResourcePathValue == "":
		s.ResourcePathValue = base
	case !filepath.IsAbs(s.ResourcePathValue):
		s.ResourcePathValue = filepath.Join(base, s.ResourcePathValue)
	}
	abs, err := filepath.Abs(s.ResourcePathValue)
	if err != nil {
		return fmt.Errorf("resolve resource path: %w", err)
	}
	s.ResourcePathValue = abs

	if _, err := s.Display.ScreenOrientation(); err != nil {
		return err
	}
	if s.Display.Width < 0 || s.Display.Height < 0 {
		return fmt.Errorf("window size must not be negative")
	}
	if s.Run.LowProcessorSleepUsec < 0 {
		return fmt.Errorf("low_processor_sleep_usec must not be negative")
	}
	return nil
}
