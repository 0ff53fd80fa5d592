package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/engineos/internal/display"
	"github.com/roach88/engineos/internal/display/headless"
	"github.com/roach88/engineos/internal/platform"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// NewBackend builds the platform back-end. Nil selects the back-end
	// compiled for the current OS.
	NewBackend func() (platform.Backend, error)
	// NewDisplay builds the display back-end. Nil selects headless.
	NewDisplay func() display.Backend
	// IDGenerator overrides the instance ID generator (for testing).
	IDGenerator platform.IDGenerator
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the engineos CLI.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWith(&RootOptions{})
}

// NewRootCommandWith creates the root command over preset options, so tests
// can inject back-ends.
func NewRootCommandWith(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "engineos",
		Short: "engineos - engine runtime host",
		Long: `Host the engine runtime on the current platform.

Brings up the OS services and display driver, runs the main loop and
records diagnostics in an optional SQLite journal.`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, c.CommandPath(), err)
	})

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewInfoCommand(opts))
	cmd.AddCommand(NewFeaturesCommand(opts))
	cmd.AddCommand(NewJournalCommand(opts))

	return cmd
}

// usageArgs reports argument validation failures as command errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return WrapExitError(ExitCommandError, "invalid arguments", err)
		}
		return nil
	}
}

func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

func (o *RootOptions) backend() (platform.Backend, error) {
	if o.NewBackend != nil {
		return o.NewBackend()
	}
	return defaultBackend()
}

func (o *RootOptions) display() display.Backend {
	if o.NewDisplay != nil {
		return o.NewDisplay()
	}
	return headless.New()
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// Execute runs the CLI with args and returns the process exit code.
// Command errors are reported on stderr in the selected format.
func Execute(opts *RootOptions, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommandWith(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	format := opts.Format
	if !isValidFormat(format) {
		format = "text"
	}
	f := &OutputFormatter{Format: format, Writer: stderr, Verbose: opts.Verbose}
	return f.Report(err)
}

// errorCode picks the code shown for err: the platform error code when
// there is one, otherwise a generic code per exit status.
func errorCode(err error) string {
	if code := platform.CodeOf(err); code != "" {
		return string(code)
	}
	if GetExitCode(err) == ExitCommandError {
		return "COMMAND"
	}
	return "FAILED"
}
