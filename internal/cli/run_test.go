package cli

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/engineos/internal/journal"
	"github.com/roach88/engineos/internal/platform"
	"github.com/roach88/engineos/internal/testutil"
)

func TestRun_Frames(t *testing.T) {
	var fake *testutil.FakeBackend
	cmd := NewRunCommand(testOptions(t, &fake))

	stdout, _, err := execute(cmd, "--frames", "3")
	require.NoError(t, err)
	assert.Equal(t, "Ran 3 frames on Fake/Headless (instance "+testutil.StaticInstanceID+", exit code 0)\n", stdout)
	assert.Equal(t, []string{"initialize_core", "initialize_runtime", "finalize_runtime", "finalize_core"}, fake.Hooks())
}

func TestRun_JSON(t *testing.T) {
	opts := testOptions(t, nil)
	opts.Format = "json"
	cmd := NewRunCommand(opts)

	stdout, _, err := execute(cmd, "--frames", "2")
	require.NoError(t, err)

	var resp struct {
		Status string     `json:"status"`
		Data   RunSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, RunSummary{
		InstanceID: testutil.StaticInstanceID,
		Backend:    "Fake",
		Display:    "Headless",
		Frames:     2,
	}, resp.Data)
}

func TestRun_NegativeFrames(t *testing.T) {
	cmd := NewRunCommand(testOptions(t, nil))
	_, _, err := execute(cmd, "--frames", "-1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRun_BackendUnavailable(t *testing.T) {
	opts := testOptions(t, nil)
	opts.NewBackend = func() (platform.Backend, error) {
		return nil, platform.Unavailable("backend")
	}
	cmd := NewRunCommand(opts)

	_, _, err := execute(cmd, "--frames", "1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.True(t, platform.IsUnavailable(err))
}

func TestRun_MissingProject(t *testing.T) {
	cmd := NewRunCommand(testOptions(t, nil))
	_, _, err := execute(cmd, "--project", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "failed to create host")
}

func TestRun_RuntimeFailure(t *testing.T) {
	var fake *testutil.FakeBackend
	opts := testOptions(t, nil)
	opts.NewBackend = func() (platform.Backend, error) {
		fake = testutil.NewFakeBackend("Fake")
		fake.RuntimeErr = errors.New("no audio device")
		return fake, nil
	}
	cmd := NewRunCommand(opts)

	_, stderr, err := execute(cmd, "--frames", "1")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "runtime initialization failed")
	assert.Contains(t, stderr, "no audio device")
	assert.Equal(t, []string{"initialize_core", "initialize_runtime", "finalize_core"}, fake.Hooks())
}

func TestRun_CancelledContext(t *testing.T) {
	cmd := NewRunCommand(testOptions(t, nil))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cmd.SetContext(ctx)

	stdout, _, err := execute(cmd)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Ran 0 frames")
}

func TestRun_ProjectAndJournal(t *testing.T) {
	dir := t.TempDir()
	projectPath := filepath.Join(dir, "game.yaml")
	require.NoError(t, os.WriteFile(projectPath, []byte("name: Demo\nfeatures: [dlc]\n"), 0o644))
	dbPath := filepath.Join(dir, "journal.db")

	cmd := NewRunCommand(testOptions(t, nil))
	_, _, err := execute(cmd, "--project", projectPath, "--journal", dbPath, "--frames", "1", "--", "--level", "2")
	require.NoError(t, err)

	j, err := journal.Open(dbPath)
	require.NoError(t, err)
	defer j.Close()
	instances, err := j.Instances(context.Background())
	require.NoError(t, err)
	require.Len(t, instances, 1)
	assert.Equal(t, testutil.StaticInstanceID, instances[0].InstanceID)
}

func TestRun_AudioDriverFlagOverridesProject(t *testing.T) {
	projectPath := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(projectPath, []byte("run:\n  audio_driver: 2\n"), 0o644))

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"project value", nil, 2},
		{"explicit zero", []string{"--audio-driver", "0"}, 0},
		{"explicit one", []string{"--audio-driver", "1"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fake *testutil.FakeBackend
			cmd := NewRunCommand(testOptions(t, &fake))
			args := append([]string{"--project", projectPath, "--frames", "1"}, tt.args...)

			_, _, err := execute(cmd, args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fake.AudioDriver())
		})
	}
}

func TestRun_VerboseDiagnostics(t *testing.T) {
	dir := t.TempDir()
	projectPath := filepath.Join(dir, "game.yaml")
	require.NoError(t, os.WriteFile(projectPath, []byte("name: Demo\n"), 0o644))
	dbPath := filepath.Join(dir, "run.db")

	opts := testOptions(t, nil)
	opts.Verbose = true
	cmd := NewRunCommand(opts)

	stdout, stderr, err := execute(cmd, "--project", projectPath, "--journal", dbPath, "--frames", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Ran 1 frames")
	assert.Contains(t, stderr, "engineos: platform back-end Fake\n")
	assert.Contains(t, stderr, "engineos: loaded project "+projectPath+"\n")
	assert.Contains(t, stderr, "engineos: recording to journal "+dbPath+" (instance "+testutil.StaticInstanceID+")\n")
}
