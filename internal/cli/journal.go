package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/engineos/internal/journal"
)

// JournalOptions holds flags for the journal command.
type JournalOptions struct {
	*RootOptions
	Database string
	Instance string
	Errors   bool
}

// InstanceList is the text/JSON view of recorded runs.
type InstanceList []journal.Instance

func (l InstanceList) String() string {
	if len(l) == 0 {
		return "No instances recorded"
	}
	var b strings.Builder
	for _, in := range l {
		fmt.Fprintf(&b, "%s  %s  %s  entries=%d errors=%d\n", in.InstanceID, in.StartedAt, in.Backend, in.Entries, in.Errors)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// EntryList is the text/JSON view of one run's journal.
type EntryList []journal.Entry

func (l EntryList) String() string {
	if len(l) == 0 {
		return "No entries recorded"
	}
	var b strings.Builder
	for _, e := range l {
		switch e.Kind {
		case journal.KindError:
			details := e.Rationale
			if details == "" {
				details = e.Code
			}
			fmt.Fprintf(&b, "%4d %s %s: %s: %s (%s:%d)\n", e.Seq, e.Kind, e.ErrorType, e.Function, details, e.File, e.Line)
		default:
			fmt.Fprintf(&b, "%4d %s %s\n", e.Seq, e.Stream, strings.TrimRight(e.Text, "\n"))
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// NewJournalCommand creates the journal command.
func NewJournalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &JournalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Inspect a recorded journal",
		Long: `Inspect the SQLite journal written by "engineos run --journal".

Without --instance, list every recorded run. With --instance, print the
messages and error reports of that run in emission order.

Examples:
  engineos journal --db ./engineos.db
  engineos journal --db ./engineos.db --instance <id> --errors`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJournal(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite journal (required)")
	cmd.Flags().StringVar(&opts.Instance, "instance", "", "show entries of this instance")
	cmd.Flags().BoolVar(&opts.Errors, "errors", false, "show only error reports")

	return cmd
}

func runJournal(opts *JournalOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.Database == "" {
		return NewExitError(ExitCommandError, "required flag \"db\" not set")
	}
	out := opts.formatter(cmd)

	// Opening would create the file; an inspection command must not.
	if _, err := os.Stat(opts.Database); err != nil {
		return WrapExitError(ExitCommandError, "journal not found", err)
	}
	j, err := journal.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open journal", err)
	}
	defer j.Close()
	out.VerboseLog("opened journal %s", opts.Database)

	if opts.Instance == "" {
		instances, err := j.Instances(ctx)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to list instances", err)
		}
		return out.Success(InstanceList(instances))
	}

	kind := journal.Kind("")
	if opts.Errors {
		kind = journal.KindError
	}
	entries, err := j.Entries(ctx, opts.Instance, kind)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read entries", err)
	}
	return out.Success(EntryList(entries))
}
