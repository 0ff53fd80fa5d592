package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/engineos/internal/display"
	"github.com/roach88/engineos/internal/platform"
	"github.com/roach88/engineos/internal/project"
)

// InfoOptions holds flags for the info command.
type InfoOptions struct {
	*RootOptions
	Project string
}

// ScreenInfo describes one screen.
type ScreenInfo struct {
	Index  int `json:"index"`
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// PlatformInfo is the report printed by the info command.
type PlatformInfo struct {
	Backend        string       `json:"backend"`
	Display        string       `json:"display"`
	ModelName      string       `json:"model_name"`
	Locale         string       `json:"locale"`
	UniqueID       string       `json:"unique_id,omitempty"`
	ProcessorCount int          `json:"processor_count"`
	DataPath       string       `json:"data_path"`
	ConfigPath     string       `json:"config_path"`
	CachePath      string       `json:"cache_path"`
	UserDataDir    string       `json:"user_data_dir"`
	PowerState     string       `json:"power_state"`
	PowerSeconds   int          `json:"power_seconds_left"`
	PowerPercent   int          `json:"power_percent_left"`
	AudioDrivers   []string     `json:"audio_drivers"`
	VideoDrivers   []string     `json:"video_drivers"`
	Screens        []ScreenInfo `json:"screens"`
}

func (p PlatformInfo) String() string {
	var b strings.Builder
	row := func(k string, v any) { fmt.Fprintf(&b, "%-16s %v\n", k+":", v) }
	row("Backend", p.Backend)
	row("Display", p.Display)
	row("Model", p.ModelName)
	row("Locale", p.Locale)
	if p.UniqueID != "" {
		row("Unique ID", p.UniqueID)
	}
	row("Processors", p.ProcessorCount)
	row("Data path", p.DataPath)
	row("Config path", p.ConfigPath)
	row("Cache path", p.CachePath)
	row("User data", p.UserDataDir)
	row("Power", fmt.Sprintf("%s (%d%%, %ds left)", p.PowerState, p.PowerPercent, p.PowerSeconds))
	row("Audio drivers", joinOrNone(p.AudioDrivers))
	row("Video drivers", joinOrNone(p.VideoDrivers))
	for _, s := range p.Screens {
		row(fmt.Sprintf("Screen %d", s.Index), fmt.Sprintf("%dx%d at (%d,%d)", s.Width, s.Height, s.X, s.Y))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

// NewInfoCommand creates the info command.
func NewInfoCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InfoOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Describe the platform and display back-ends",
		Long: `Print what the platform back-end reports about this machine: device
model, locale, well-known paths, power status, audio and video drivers,
and the screens of the display back-end.

The runtime is not initialized; only queries are made.

Examples:
  engineos info
  engineos info --project ./game.yaml --format json`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Project, "project", "", "project settings file (affects the user data directory)")

	return cmd
}

func runInfo(opts *InfoOptions, cmd *cobra.Command) error {
	out := opts.formatter(cmd)
	o, err := newQueryOS(opts.RootOptions, opts.Project)
	if err != nil {
		return err
	}
	defer o.Close()
	if opts.Project != "" {
		out.VerboseLog("loaded project %s", opts.Project)
	}

	d := display.New(opts.display())
	out.VerboseLog("querying %s back-end with %s display", o.Name(), d.Name())
	info := collectInfo(o, d)
	return out.Success(info)
}

// newQueryOS builds an OS for read-only queries, optionally bound to a
// project.
func newQueryOS(opts *RootOptions, projectFile string) (*platform.OS, error) {
	backend, err := opts.backend()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to create platform back-end", err)
	}
	var popts []platform.Option
	if opts.IDGenerator != nil {
		popts = append(popts, platform.WithIDGenerator(opts.IDGenerator))
	}
	o := platform.New(backend, popts...)
	if projectFile != "" {
		settings, err := project.Load(projectFile)
		if err != nil {
			_ = o.Close()
			return nil, WrapExitError(ExitCommandError, "failed to load project", err)
		}
		o.SetProject(settings)
	}
	return o, nil
}

func collectInfo(o *platform.OS, d *display.Driver) PlatformInfo {
	info := PlatformInfo{
		Backend:        o.Name(),
		Display:        d.Name(),
		ModelName:      o.ModelName(),
		Locale:         o.Locale(),
		ProcessorCount: o.ProcessorCount(),
		DataPath:       o.DataPath(),
		ConfigPath:     o.ConfigPath(),
		CachePath:      o.CachePath(),
		UserDataDir:    o.UserDataDir(),
		PowerState:     o.PowerState().String(),
		PowerSeconds:   o.PowerSecondsLeft(),
		PowerPercent:   o.PowerPercentLeft(),
		AudioDrivers:   []string{},
		VideoDrivers:   []string{},
		Screens:        []ScreenInfo{},
	}
	if id, err := o.UniqueID(); err == nil {
		info.UniqueID = id
	}
	for i := 0; i < o.AudioDriverCount(); i++ {
		info.AudioDrivers = append(info.AudioDrivers, o.AudioDriverName(i))
	}
	for i := 0; i < d.VideoDriverCount(); i++ {
		info.VideoDrivers = append(info.VideoDrivers, d.VideoDriverName(i))
	}
	for i := 0; i < d.ScreenCount(); i++ {
		pos, size := d.ScreenPosition(i), d.ScreenSize(i)
		info.Screens = append(info.Screens, ScreenInfo{
			Index: i, X: pos.X, Y: pos.Y, Width: size.Width, Height: size.Height,
		})
	}
	return info
}
