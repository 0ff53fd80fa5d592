package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// FeaturesOptions holds flags for the features command.
type FeaturesOptions struct {
	*RootOptions
	Project string
}

// FeatureAnswer is the resolution of one capability name.
type FeatureAnswer struct {
	Name      string `json:"name"`
	Supported bool   `json:"supported"`
	Tier      string `json:"tier"`
}

// FeatureReport lists either the fixed tokens or the answers to queries.
type FeatureReport struct {
	Tokens  []string        `json:"tokens,omitempty"`
	Answers []FeatureAnswer `json:"answers,omitempty"`
}

func (r FeatureReport) String() string {
	if r.Answers == nil {
		return strings.Join(r.Tokens, "\n")
	}
	lines := make([]string, len(r.Answers))
	for i, a := range r.Answers {
		if a.Supported {
			lines[i] = fmt.Sprintf("%s: yes (%s)", a.Name, a.Tier)
		} else {
			lines[i] = fmt.Sprintf("%s: no", a.Name)
		}
	}
	return strings.Join(lines, "\n")
}

// NewFeaturesCommand creates the features command.
func NewFeaturesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FeaturesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "features [name...]",
		Short: "List or query capability names",
		Long: `Without arguments, list the capability tokens that are always
answered: back-end name, build, pointer width and architecture.

With arguments, resolve each name and report which tier answered it.

Examples:
  engineos features
  engineos features s3tc pc --project ./game.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFeatures(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Project, "project", "", "project settings file (adds custom features)")

	return cmd
}

func runFeatures(opts *FeaturesOptions, names []string, cmd *cobra.Command) error {
	o, err := newQueryOS(opts.RootOptions, opts.Project)
	if err != nil {
		return err
	}
	defer o.Close()

	report := FeatureReport{}
	if len(names) == 0 {
		report.Tokens = o.Features().Tokens()
	} else {
		report.Answers = make([]FeatureAnswer, len(names))
		for i, name := range names {
			tier, ok := o.Features().Resolve(name)
			report.Answers[i] = FeatureAnswer{Name: name, Supported: ok, Tier: tier.String()}
		}
	}
	return opts.formatter(cmd).Success(report)
}
