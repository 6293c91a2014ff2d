package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smallworld/core"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errw bytes.Buffer
	root := NewRootCmd(&out, &errw)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return out.String(), errw.String(), err
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2024-01-01")
	defer SetVersion("", "", "")

	assert.Equal(t, "1.0.0", version)
	assert.Equal(t, "abc123", commit)
	assert.Equal(t, "2024-01-01", date)
}

func TestConnectivityCommand(t *testing.T) {
	out, logs, err := execute(t, "connectivity", "--n", "6", "--p", "0,1", "--trials", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "n=6")
	assert.Contains(t, out, "1.0000")
	assert.Contains(t, out, "0.0000")
	assert.Contains(t, logs, "run=")
}

func TestConnectivityCommand_ConfigAndOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.toml")
	require.NoError(t, os.WriteFile(path, []byte("[connectivity]\nn = 8\np = [0.0]\ntrials = 2\n"), 0o600))

	out, _, err := execute(t, "--config", path, "connectivity", "--p", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "n=8", "n comes from the file")
	assert.Contains(t, out, "1.0000", "p comes from the flag")
	assert.NotContains(t, out, "0.0000")
}

func TestSweepCommand(t *testing.T) {
	out, _, err := execute(t, "sweep", "--n", "20", "--k", "4", "--p", "0,0.5", "--seed", "3", "--strict")
	require.NoError(t, err)
	assert.Contains(t, out, "n=20 k=4")
	assert.Contains(t, out, "0.5000", "C(0) of the 4-regular ring")
	assert.Contains(t, out, "1.0000", "baseline ratios")
}

func TestSweepCommand_Errors(t *testing.T) {
	_, _, err := execute(t, "sweep", "--n", "5", "--k", "3", "--p", "0")
	assert.ErrorIs(t, err, core.ErrDegree)

	_, _, err = execute(t, "--config", filepath.Join(t.TempDir(), "nope.toml"), "sweep")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "sweep", "extra")
	assert.Error(t, err)
}

func TestVerboseLogging(t *testing.T) {
	_, logs, err := execute(t, "-v", "connectivity", "--n", "4", "--p", "1", "--trials", "1")
	require.NoError(t, err)
	assert.Contains(t, logs, "point")
}
