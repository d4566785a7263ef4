package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/riordanpawley/kingdoms/internal/domain"
	"github.com/riordanpawley/kingdoms/internal/services/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapshotJSON = `{
  "season": "Season 9",
  "taken_at": "2026-03-01T12:00:00Z",
  "kingdoms": [
    {"id": "ashfall", "name": "Ashfall", "members": 20, "wins": 90, "losses": 40, "score": 15100, "territory": 40, "streak": 2},
    {"id": "brinehold", "name": "Brinehold", "members": 12, "wins": 120, "losses": 30, "score": 18420, "territory": 57, "streak": 6},
    {"id": "cinderwatch", "name": "Cinderwatch", "members": 8, "wins": 60, "losses": 55, "score": 9800, "territory": 12, "streak": 0}
  ]
}`

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

type cliEnv struct {
	dir       string
	cfgPath   string
	dbPath    string
	clipboard *fakeClipboard
}

// newCLIEnv writes a snapshot and a config pointing at it into a temp dir
func newCLIEnv(t *testing.T, withHistory bool) *cliEnv {
	t.Helper()

	dir := t.TempDir()
	env := &cliEnv{
		dir:       dir,
		cfgPath:   filepath.Join(dir, "kingdoms.yml"),
		dbPath:    filepath.Join(dir, "history.db"),
		clipboard: &fakeClipboard{},
	}

	snapPath := filepath.Join(dir, "kingdoms.json")
	require.NoError(t, os.WriteFile(snapPath, []byte(snapshotJSON), 0o644))

	enabled := "false"
	if withHistory {
		enabled = "true"
	}
	cfg := "source:\n" +
		"  path: " + snapPath + "\n" +
		"history:\n" +
		"  enabled: " + enabled + "\n" +
		"  path: " + env.dbPath + "\n"
	require.NoError(t, os.WriteFile(env.cfgPath, []byte(cfg), 0o644))

	return env
}

func (e *cliEnv) run(args ...string) (stdout, stderr string, err error) {
	cmd := newRootCommand(&options{clipboard: e.clipboard})

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", e.cfgPath}, args...))

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

// recordEarlier stores a snapshot from February where Ashfall led
func (e *cliEnv) recordEarlier(t *testing.T) {
	t.Helper()

	store, err := history.Open(e.dbPath, nil)
	require.NoError(t, err)
	defer store.Close()

	standings := domain.Rank([]domain.Kingdom{
		{ID: "ashfall", Name: "Ashfall", Score: 16000},
		{ID: "brinehold", Name: "Brinehold", Score: 14000},
	}, nil)
	_, _, err = store.Record(context.Background(), "Season 9",
		time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC), standings)
	require.NoError(t, err)
}

func TestListCommand(t *testing.T) {
	env := newCLIEnv(t, false)

	out, _, err := env.run("list")
	require.NoError(t, err)

	assert.Contains(t, out, "Season 9 (3 kingdoms)")
	assert.Contains(t, out, "RANK")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[4], "1"), "first row should be rank 1: %q", lines[4])
	assert.Contains(t, lines[4], "Brinehold")
	assert.Contains(t, lines[4], "18,420")
	assert.Contains(t, lines[4], "120/30")
	assert.Contains(t, lines[4], "Legendary")
	assert.Contains(t, lines[6], "Cinderwatch")
}

func TestListCommand_Top(t *testing.T) {
	env := newCLIEnv(t, false)

	out, _, err := env.run("list", "--top", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "Ashfall")
	assert.NotContains(t, out, "Cinderwatch")
}

func TestListCommand_MovementFromHistory(t *testing.T) {
	env := newCLIEnv(t, true)
	env.recordEarlier(t)

	out, _, err := env.run("list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[4], "▲1")
	assert.Contains(t, lines[5], "▼1")
	assert.Contains(t, lines[6], "new")
}

func TestListCommand_DoesNotRecord(t *testing.T) {
	env := newCLIEnv(t, true)

	_, _, err := env.run("list")
	require.NoError(t, err)

	store, err := history.Open(env.dbPath, nil)
	require.NoError(t, err)
	defer store.Close()

	n, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestListCommand_MissingSource(t *testing.T) {
	env := newCLIEnv(t, false)
	require.NoError(t, os.Remove(filepath.Join(env.dir, "kingdoms.json")))

	_, _, err := env.run("list")
	require.Error(t, err)

	var srcErr *domain.SourceError
	assert.True(t, errors.As(err, &srcErr), "expected a SourceError, got %v", err)
}

func TestCompareCommand(t *testing.T) {
	env := newCLIEnv(t, false)

	out, _, err := env.run("compare", "brinehold", "Ashfall")
	require.NoError(t, err)

	assert.Contains(t, out, "Win rate")
	assert.Contains(t, out, "Brinehold leads 7-1")
}

func TestCompareCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown kingdom", []string{"compare", "brinehold", "nowhere"}, `kingdom "nowhere"`},
		{"same kingdom", []string{"compare", "brinehold", "Brinehold"}, "with itself"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newCLIEnv(t, false)

			_, _, err := env.run(tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	t.Run("needs two kingdoms", func(t *testing.T) {
		env := newCLIEnv(t, false)

		_, _, err := env.run("compare", "brinehold")
		assert.Error(t, err)
	})
}

func TestShareCommand_Copies(t *testing.T) {
	env := newCLIEnv(t, false)

	out, _, err := env.run("share", "cinderwatch")
	require.NoError(t, err)

	assert.Contains(t, out, "Copied summary for Cinderwatch")
	assert.True(t, strings.HasPrefix(env.clipboard.text, "Cinderwatch is 3rd of 3 in Season 9"),
		"unexpected summary: %q", env.clipboard.text)
}

func TestShareCommand_Print(t *testing.T) {
	env := newCLIEnv(t, false)

	out, _, err := env.run("share", "Brinehold", "--print")
	require.NoError(t, err)

	assert.Contains(t, out, "Brinehold is 1st of 3 in Season 9")
	assert.Empty(t, env.clipboard.text)
}

func TestShareCommand_ClipboardUnavailable(t *testing.T) {
	env := newCLIEnv(t, false)
	env.clipboard.err = domain.ErrClipboardUnavailable

	_, _, err := env.run("share", "brinehold")
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrClipboardUnavailable)
	assert.Contains(t, err.Error(), "--print")
}

func TestShareCommand_NotFound(t *testing.T) {
	env := newCLIEnv(t, false)

	_, _, err := env.run("share", "nowhere", "--print")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVersionCommand(t *testing.T) {
	env := newCLIEnv(t, false)

	out, _, err := env.run("version")
	require.NoError(t, err)
	assert.Equal(t, "kingdoms dev\n", out)
}

func TestInvalidConfig(t *testing.T) {
	env := newCLIEnv(t, false)
	require.NoError(t, os.WriteFile(env.cfgPath, []byte("tooltip:\n  mode: wiggle\n"), 0o644))

	_, _, err := env.run("list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tooltip.mode")
}

func TestLogFile(t *testing.T) {
	env := newCLIEnv(t, false)
	logPath := filepath.Join(env.dir, "kingdoms.log")

	_, stderr, err := env.run("--log-file", logPath, "--verbose", "list")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fetching snapshot")
	assert.Empty(t, stderr)
}
