package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/engineos/internal/display"
	"github.com/roach88/engineos/internal/display/headless"
	"github.com/roach88/engineos/internal/platform"
	"github.com/roach88/engineos/internal/testutil"
)

func TestInfo_Text(t *testing.T) {
	cmd := NewInfoCommand(testOptions(t, nil))
	stdout, _, err := execute(cmd)
	require.NoError(t, err)
	testutil.AssertGolden(t, "info_text", []byte(stdout))
}

func TestInfo_VerboseGoesToStderr(t *testing.T) {
	opts := testOptions(t, nil)
	opts.Verbose = true
	cmd := NewInfoCommand(opts)

	stdout, stderr, err := execute(cmd)
	require.NoError(t, err)
	assert.NotContains(t, stdout, "engineos:")
	assert.Equal(t, "engineos: querying Fake back-end with Headless display\n", stderr)
}

func TestInfo_JSON(t *testing.T) {
	opts := testOptions(t, nil)
	opts.Format = "json"
	cmd := NewInfoCommand(opts)

	stdout, _, err := execute(cmd)
	require.NoError(t, err)

	var resp struct {
		Status string       `json:"status"`
		Data   PlatformInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "Fake", resp.Data.Backend)
	assert.Equal(t, []string{"GLES2", "GLES3"}, resp.Data.VideoDrivers)
	assert.Equal(t, []string{}, resp.Data.AudioDrivers)
	require.Len(t, resp.Data.Screens, 1)
	assert.Equal(t, 1024, resp.Data.Screens[0].Width)
	assert.Empty(t, resp.Data.UniqueID)
}

func TestInfo_ProjectUserDir(t *testing.T) {
	var fake *testutil.FakeBackend
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: \"My: Game\"\n"), 0o644))

	cmd := NewInfoCommand(testOptions(t, &fake))
	_, _, err := execute(cmd, "--project", path)
	require.NoError(t, err)

	reqs := fake.UserDirRequests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "My- Game", reqs[0].App)
	assert.Equal(t, filepath.Dir(path), reqs[0].Fallback)
}

func TestInfo_BadProject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bogus: 1\n"), 0o644))

	cmd := NewInfoCommand(testOptions(t, nil))
	_, _, err := execute(cmd, "--project", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCollectInfo_UniqueIDAndAudio(t *testing.T) {
	b := &infoBackend{FakeBackend: testutil.NewFakeBackend("Fake")}
	o := platform.New(b)
	defer o.Close()

	info := collectInfo(o, display.New(headless.New()))
	assert.Equal(t, "abc123", info.UniqueID)
	assert.Equal(t, []string{"PulseAudio", "ALSA"}, info.AudioDrivers)
}

type infoBackend struct {
	*testutil.FakeBackend
}

func (b *infoBackend) UniqueID() (string, error) { return "abc123", nil }
func (b *infoBackend) AudioDriverCount() int     { return 2 }

func (b *infoBackend) AudioDriverName(i int) string {
	return []string{"PulseAudio", "ALSA"}[i]
}
