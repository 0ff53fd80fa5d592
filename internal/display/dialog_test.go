package display_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/engineos/internal/display"
	"github.com/roach88/engineos/internal/display/headless"
	"github.com/roach88/engineos/internal/logger"
	"github.com/roach88/engineos/internal/platform"
	"github.com/roach88/engineos/internal/testutil"
)

// newConsoleDriver returns a driver whose dialogs read input and print
// through an OS backed by a fake back-end.
func newConsoleDriver(t *testing.T, input string) (*display.Driver, *testutil.RecordingLogger) {
	t.Helper()
	backend := testutil.NewFakeBackend("Fake")
	backend.Stdin = strings.NewReader(input)
	rec := testutil.NewRecordingLogger("console", nil)
	o := platform.New(backend, platform.WithLogger(logger.NewBuilder().Add(rec).Build()))
	return display.New(headless.New(), display.WithConsole(o)), rec
}

func TestDialogShow_RepromptsUntilValid(t *testing.T) {
	d, rec := newConsoleDriver(t, "abc\n9\n 2 \n")

	picked := -1
	err := d.DialogShow("Quit?", "Save changes?", []string{"Yes", "No", "Cancel"}, func(i int) {
		picked = i
	})

	require.NoError(t, err)
	assert.Equal(t, 1, picked)
	testutil.AssertGolden(t, "dialog_show_reprompt", []byte(rec.Text()))
}

func TestDialogShow_ZeroIsOutOfRange(t *testing.T) {
	d, _ := newConsoleDriver(t, "0\n1\n")

	picked := -1
	require.NoError(t, d.DialogShow("t", "d", []string{"OK"}, func(i int) { picked = i }))
	assert.Equal(t, 0, picked)
}

func TestDialogShow_EOFFails(t *testing.T) {
	d, _ := newConsoleDriver(t, "x\n")

	err := d.DialogShow("t", "d", []string{"OK"}, nil)
	assert.True(t, platform.IsFailed(err))
}

func TestDialogShow_NoButtons(t *testing.T) {
	d, _ := newConsoleDriver(t, "1\n")
	err := d.DialogShow("t", "d", nil, nil)
	assert.Equal(t, platform.CodeInvalidParameter, platform.CodeOf(err))
}

func TestDialogShow_NoConsole(t *testing.T) {
	d := display.New(headless.New())
	assert.True(t, platform.IsUnavailable(d.DialogShow("t", "d", []string{"OK"}, nil)))
}

func TestDialogInputText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"typed", "Alice\n", "Alice"},
		{"trimmed", "  Bob  \n", "Bob"},
		{"empty keeps partial", "\n", "Player"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := newConsoleDriver(t, tt.input)

			var gotOK bool
			var got string
			err := d.DialogInputText("Name", "Enter your name", "Player", func(ok bool, text string) {
				gotOK, got = ok, text
			})
			require.NoError(t, err)
			assert.True(t, gotOK)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDialogInputText_Prompt(t *testing.T) {
	d, rec := newConsoleDriver(t, "Alice\n")
	require.NoError(t, d.DialogInputText("Name", "Enter your name", "Player", func(bool, string) {}))
	testutil.AssertGolden(t, "dialog_input_text", []byte(rec.Text()))
}

func TestDialogInputText_RequiresCallback(t *testing.T) {
	d, rec := newConsoleDriver(t, "Alice\n")
	err := d.DialogInputText("Name", "Enter your name", "Player", nil)
	assert.True(t, platform.IsFailed(err))
	assert.Empty(t, rec.Text())
}
