package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/engineos/internal/journal"
	"github.com/roach88/engineos/internal/logger"
	"github.com/roach88/engineos/internal/testutil"
)

// seedJournal records one instance with two messages and a warning.
func seedJournal(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "journal.db")
	j, err := journal.Open(path)
	require.NoError(t, err)
	require.NoError(t, j.RegisterInstance(context.Background(), "inst-1", "Fake", "2026-01-02T03:04:05Z"))

	sink := journal.NewSink(j, "inst-1")
	sink.Logf(logger.Stdout, "hello\n")
	sink.Logf(logger.Stderr, "warn %d\n", 2)
	sink.LogError(logger.ErrorReport{Function: "load", File: "x.go", Line: 3, Code: "ok", Type: logger.ErrWarning})
	require.NoError(t, sink.Close())
	return path
}

func TestJournal_MissingDatabaseFlag(t *testing.T) {
	cmd := NewJournalCommand(testOptions(t, nil))
	_, _, err := execute(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestJournal_NonExistentDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.db")
	cmd := NewJournalCommand(testOptions(t, nil))
	_, _, err := execute(cmd, "--db", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.NoFileExists(t, path)
}

func TestJournal_ListInstances(t *testing.T) {
	path := seedJournal(t)
	cmd := NewJournalCommand(testOptions(t, nil))
	stdout, _, err := execute(cmd, "--db", path)
	require.NoError(t, err)
	assert.Equal(t, "inst-1  2026-01-02T03:04:05Z  Fake  entries=3 errors=1\n", stdout)
}

func TestJournal_Entries(t *testing.T) {
	path := seedJournal(t)
	cmd := NewJournalCommand(testOptions(t, nil))
	stdout, _, err := execute(cmd, "--db", path, "--instance", "inst-1")
	require.NoError(t, err)
	testutil.AssertGolden(t, "journal_entries", []byte(stdout))
}

func TestJournal_VerboseNamesDatabase(t *testing.T) {
	path := seedJournal(t)
	opts := testOptions(t, nil)
	opts.Verbose = true
	cmd := NewJournalCommand(opts)

	_, stderr, err := execute(cmd, "--db", path)
	require.NoError(t, err)
	assert.Equal(t, "engineos: opened journal "+path+"\n", stderr)
}

func TestJournal_ErrorsOnly(t *testing.T) {
	path := seedJournal(t)
	cmd := NewJournalCommand(testOptions(t, nil))
	stdout, _, err := execute(cmd, "--db", path, "--instance", "inst-1", "--errors")
	require.NoError(t, err)
	assert.Equal(t, "   3 error WARNING: load: ok (x.go:3)\n", stdout)
}

func TestJournal_UnknownInstance(t *testing.T) {
	path := seedJournal(t)
	cmd := NewJournalCommand(testOptions(t, nil))
	stdout, _, err := execute(cmd, "--db", path, "--instance", "other")
	require.NoError(t, err)
	assert.Equal(t, "No entries recorded\n", stdout)
}
