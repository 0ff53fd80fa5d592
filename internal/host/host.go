package host

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/roach88/engineos/internal/display"
	"github.com/roach88/engineos/internal/journal"
	"github.com/roach88/engineos/internal/logger"
	"github.com/roach88/engineos/internal/platform"
	"github.com/roach88/engineos/internal/project"
)

// startedAtLayout is fixed width so journal instances sort by start time
// as text.
const startedAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Config describes one process run.
type Config struct {
	ExecPath string
	Args     []string

	// ProjectFile is an optional .yaml/.yml/.cue settings file.
	ProjectFile string
	// JournalPath, when set, records all output in a SQLite journal.
	JournalPath string

	Verbose bool
	// AudioDriver, when non-nil, overrides the project's audio driver.
	AudioDriver *int
	NoWindow    bool

	// Slog, when set, receives a structured copy of all console output.
	Slog *slog.Logger

	// Stdout and Stderr receive console output. Nil means os.Stdout and
	// os.Stderr.
	Stdout io.Writer
	Stderr io.Writer

	// IDGenerator overrides the instance ID generator (for testing).
	IDGenerator platform.IDGenerator
}

// Context owns the single OS and Driver of a process and drives their
// lifecycle. Everything that needs runtime or display services receives it
// (or the two handles) explicitly.
type Context struct {
	OS      *platform.OS
	Display *display.Driver
	Project *project.Settings

	audioDriver int
}

// New builds the OS and Driver over the given back-ends and attaches the
// project and journal named by cfg. Nothing is initialized yet.
func New(backend platform.Backend, disp display.Backend, cfg Config) (*Context, error) {
	stdout, stderr := cfg.Stdout, cfg.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	var settings *project.Settings
	if cfg.ProjectFile != "" {
		s, err := project.Load(cfg.ProjectFile)
		if err != nil {
			return nil, err
		}
		settings = s
	}

	opts := []platform.Option{}
	if cfg.IDGenerator != nil {
		opts = append(opts, platform.WithIDGenerator(cfg.IDGenerator))
	}
	b := logger.NewBuilder().Add(&logger.StdLogger{Out: stdout, Err: stderr})
	if cfg.Slog != nil {
		b.Add(logger.NewSlogLogger(cfg.Slog))
	}
	pipeline := b.Build()
	opts = append(opts, platform.WithLogger(pipeline))
	o := platform.New(backend, opts...)

	if cfg.JournalPath != "" {
		j, err := journal.Open(cfg.JournalPath)
		if err != nil {
			_ = o.Close()
			return nil, fmt.Errorf("open journal: %w", err)
		}
		started := time.Now().UTC().Format(startedAtLayout)
		if err := j.RegisterInstance(context.Background(), o.InstanceID(), o.Name(), started); err != nil {
			j.Close()
			_ = o.Close()
			return nil, err
		}
		o.AddLogger(journal.NewSink(j, o.InstanceID()))
	}

	o.SetCmdline(cfg.ExecPath, cfg.Args)
	o.SetVerbose(cfg.Verbose)

	audio := 0
	if settings != nil {
		o.SetProject(settings)
		o.SetLowProcessorUsageMode(settings.Run.LowProcessorMode)
		if settings.Run.LowProcessorSleepUsec > 0 {
			o.SetLowProcessorUsageModeSleepUsec(settings.Run.LowProcessorSleepUsec)
		}
		if settings.Run.Verbose {
			o.SetVerbose(true)
		}
		audio = settings.Run.AudioDriver
	}
	if cfg.AudioDriver != nil {
		audio = *cfg.AudioDriver
	}

	d := display.New(disp, display.WithConsole(o), display.WithNoWindow(cfg.NoWindow))

	slog.Debug("host created",
		"instance", o.InstanceID(),
		"backend", o.Name(),
		"display", d.Name(),
		"project", cfg.ProjectFile,
		"journal", cfg.JournalPath,
	)
	return &Context{OS: o, Display: d, Project: settings, audioDriver: audio}, nil
}

// Setup initializes the runtime and applies display settings. On error the
// OS is left core-initialized; Shutdown must still be called.
func (c *Context) Setup() error {
	c.OS.InitializeCore()
	c.OS.SetSplashTickMsec(c.OS.TicksMsec())

	if err := c.OS.InitializeRuntime(c.audioDriver); err != nil {
		c.OS.SetLastError(err.Error())
		c.OS.Printerr("runtime initialization failed: %v\n", err)
		return err
	}

	if err := c.applyDisplaySettings(); err != nil {
		c.OS.SetLastError(err.Error())
		return err
	}

	c.OS.BeginRunning()
	return nil
}

func (c *Context) applyDisplaySettings() error {
	if c.Project != nil {
		ds := c.Project.Display
		if ds.Width > 0 && ds.Height > 0 {
			c.Display.SetWindowSize(ds.WindowSize())
		}
		c.Display.SetWindowFullscreen(ds.Fullscreen)
		c.Display.SetUseVSync(ds.VSync)
		c.Display.SetKeepScreenOn(ds.KeepScreenOnValue())
		orientation, err := ds.ScreenOrientation()
		if err != nil {
			return err
		}
		c.Display.SetScreenOrientation(orientation)
		if name := c.Project.AppName(); name != "" {
			c.Display.SetWindowTitle(name)
		}
	}
	if !c.Display.IsNoWindowModeEnabled() {
		c.Display.CenterWindow()
	}
	return nil
}

// Run drives loop until it asks to quit or ctx is cancelled. In
// low-processor mode each frame sleeps for the configured interval;
// otherwise the goroutine yields between frames.
func (c *Context) Run(ctx context.Context, loop display.MainLoop) error {
	if stage := c.OS.Stage(); stage != platform.StageRunning {
		return fmt.Errorf("host not running (stage %s)", stage)
	}

	c.Display.SetMainLoop(loop)
	loop.Init()
	defer loop.Finish()

	last := c.OS.TicksUsec()
	for frame := 0; ; frame++ {
		select {
		case <-ctx.Done():
			slog.Debug("main loop cancelled", "frames", frame)
			return nil
		default:
		}

		c.Display.ProcessEvents()
		now := c.OS.TicksUsec()
		if loop.Iteration(now - last) {
			slog.Debug("main loop finished", "frames", frame+1)
			return nil
		}
		last = now

		if c.OS.IsInLowProcessorUsageMode() {
			c.OS.DelayUsec(uint32(c.OS.LowProcessorUsageModeSleepUsec()))
		} else {
			c.OS.Yield()
		}
	}
}

// Shutdown finalizes whatever was initialized, relaunches the executable
// if a restart was requested, and destroys the OS.
func (c *Context) Shutdown() error {
	var errs []error

	switch c.OS.Stage() {
	case platform.StageCoreInitialized, platform.StageRuntimeInitialized, platform.StageRunning:
		c.OS.Finalize()
	}

	if c.OS.IsRestartOnExitSet() {
		args := c.OS.RestartOnExitArguments()
		slog.Debug("restarting", "exec", c.OS.ExecutablePath(), "args", args)
		if _, err := c.OS.Execute(c.OS.ExecutablePath(), args, false, platform.ExecOptions{}); err != nil {
			errs = append(errs, fmt.Errorf("restart: %w", err))
		}
	}

	if err := c.OS.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close: %w", err))
	}
	return errors.Join(errs...)
}

// ExitCode is the code the process should exit with.
func (c *Context) ExitCode() int {
	return c.OS.ExitCode()
}
