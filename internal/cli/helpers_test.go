package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"

	"github.com/roach88/engineos/internal/display"
	"github.com/roach88/engineos/internal/display/headless"
	"github.com/roach88/engineos/internal/platform"
	"github.com/roach88/engineos/internal/testutil"
)

// testOptions wires a FakeBackend and a headless display. The created
// back-end is stored in *fake when fake is non-nil.
func testOptions(t *testing.T, fake **testutil.FakeBackend) *RootOptions {
	t.Helper()
	return &RootOptions{
		Format: "text",
		NewBackend: func() (platform.Backend, error) {
			b := testutil.NewFakeBackend("Fake")
			if fake != nil {
				*fake = b
			}
			return b, nil
		},
		NewDisplay:  func() display.Backend { return headless.New() },
		IDGenerator: testutil.NewStaticIDGenerator(""),
	}
}

func execute(cmd *cobra.Command, args ...string) (stdout, stderr string, err error) {
	out := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errBuf.String(), err
}
