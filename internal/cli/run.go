package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roach88/engineos/internal/host"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Project     string
	Journal     string
	Frames      int
	AudioDriver int
	NoWindow    bool

	// ExecPath is the executable relaunched on restart. Empty means
	// os.Executable.
	ExecPath string
}

// RunSummary is the result of a completed run.
type RunSummary struct {
	InstanceID string `json:"instance_id"`
	Backend    string `json:"backend"`
	Display    string `json:"display"`
	Frames     int    `json:"frames"`
	ExitCode   int    `json:"exit_code"`
}

func (s RunSummary) String() string {
	return fmt.Sprintf("Ran %d frames on %s/%s (instance %s, exit code %d)",
		s.Frames, s.Backend, s.Display, s.InstanceID, s.ExitCode)
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run [-- program-args...]",
		Short: "Run the main loop",
		Long: `Bring up the runtime, run the main loop and shut down.

The platform back-end is selected for the current OS and the display is
headless. Project settings (YAML or CUE) configure the window, features
and low-processor mode. Arguments after -- are passed to the program as
its command line.

Example:
  engineos run --project ./game.yaml --frames 600
  engineos run --journal ./engineos.db -- --level 2`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHost(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Project, "project", "", "project settings file (.yaml, .yml or .cue)")
	cmd.Flags().StringVar(&opts.Journal, "journal", "", "record output in this SQLite journal")
	cmd.Flags().IntVar(&opts.Frames, "frames", 0, "stop after this many frames (0 runs until interrupted)")
	cmd.Flags().IntVar(&opts.AudioDriver, "audio-driver", 0, "preferred audio driver index")
	cmd.Flags().BoolVar(&opts.NoWindow, "no-window", false, "run without a window")
	cmd.Flags().StringVar(&opts.ExecPath, "exec-path", "", "executable relaunched on restart (default: this binary)")

	return cmd
}

func runHost(opts *RunOptions, args []string, cmd *cobra.Command) error {
	// Configure logging based on verbose flag
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))

	if opts.Frames < 0 {
		return NewExitError(ExitCommandError, "--frames must not be negative")
	}

	out := opts.formatter(cmd)
	backend, err := opts.backend()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to create platform back-end", err)
	}
	out.VerboseLog("platform back-end %s", backend.Name())

	execPath := opts.ExecPath
	if execPath == "" {
		if execPath, err = os.Executable(); err != nil {
			execPath = os.Args[0]
		}
	}

	cfg := host.Config{
		ExecPath:    execPath,
		Args:        args,
		ProjectFile: opts.Project,
		JournalPath: opts.Journal,
		Verbose:     opts.Verbose,
		NoWindow:    opts.NoWindow,
		Stdout:      cmd.OutOrStdout(),
		Stderr:      cmd.ErrOrStderr(),
		IDGenerator: opts.IDGenerator,
	}
	if cmd.Flags().Changed("audio-driver") {
		cfg.AudioDriver = &opts.AudioDriver
	}
	if opts.Verbose {
		cfg.Slog = slog.Default()
	}
	hc, err := host.New(backend, opts.display(), cfg)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to create host", err)
	}
	if opts.Project != "" {
		out.VerboseLog("loaded project %s", opts.Project)
	}
	if opts.Journal != "" {
		out.VerboseLog("recording to journal %s (instance %s)", opts.Journal, hc.OS.InstanceID())
	}

	if err := hc.Setup(); err != nil {
		return errors.Join(
			WrapExitError(ExitFailure, "runtime initialization failed", err),
			hc.Shutdown(),
		)
	}

	// Setup signal handling for graceful shutdown
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			slog.Info("received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	slog.Info("main loop starting", "backend", hc.OS.Name(), "display", hc.Display.Name(), "instance", hc.OS.InstanceID())
	loop := &host.FrameLoop{Frames: opts.Frames}
	runErr := hc.Run(ctx, loop)

	summary := RunSummary{
		InstanceID: hc.OS.InstanceID(),
		Backend:    hc.OS.Name(),
		Display:    hc.Display.Name(),
		Frames:     loop.Count(),
		ExitCode:   hc.ExitCode(),
	}
	if err := hc.Shutdown(); err != nil {
		runErr = errors.Join(runErr, err)
	}
	if runErr != nil {
		return WrapExitError(ExitFailure, "main loop error", runErr)
	}
	slog.Info("main loop stopped", "frames", summary.Frames)

	if err := out.Success(summary); err != nil {
		return err
	}
	if summary.ExitCode != ExitSuccess {
		return NewExitError(summary.ExitCode, fmt.Sprintf("program exited with code %d", summary.ExitCode))
	}
	return nil
}
