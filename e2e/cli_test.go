//go:build e2e && unix

package e2e

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	cmd := exec.Command(binPath, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "HOME="+dir, "XDG_CONFIG_HOME="+dir)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestHelpCommand(t *testing.T) {
	t.Parallel()
	out, err := runCLI(t, "--help")
	require.NoError(t, err, "Help command should run without error")

	assert.Contains(t, out, "Usage")
	assert.Contains(t, out, "--contacts")
	assert.Contains(t, out, "match")
}

func TestMatchCommand(t *testing.T) {
	t.Parallel()
	out, err := runCLI(t, "match", "ch")
	require.NoError(t, err)
	assert.Equal(t, "Chetan Johnson\nCharlie Lee\n", out)

	out, err = runCLI(t, "match", "ch", "--exclude", "Chetan Johnson")
	require.NoError(t, err)
	assert.Equal(t, "Charlie Lee\n", out)
}

func TestUnknownFormatFails(t *testing.T) {
	t.Parallel()
	out, err := runCLI(t, "contacts", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, out, "unknown output format")
}
