package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/gadgetstore/pkg/types"
)

const addGalaxy = "1\nGalaxy S24\nPhone\nSamsung\n799.99\nblack\n10\n"

// execute runs the root command with args and stdin and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// isolate points every directory the CLI touches at a temp dir.
func isolate(t *testing.T) (configDir, logFile string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("GADGETSTORE_STATE_DIR", filepath.Join(dir, "state"))
	t.Setenv("GADGETSTORE_YEAR", "")
	return filepath.Join(dir, "config"), filepath.Join(dir, "state", "gadgetstore.log")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "gadgetstore v")
	assert.Contains(t, out, "module: "+modulePath)
}

func TestInitCommandWritesDefaultConfig(t *testing.T) {
	configDir, _ := isolate(t)

	out, err := execute(t, "", "init", "--config-dir", configDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration ready at")

	data, err := os.ReadFile(filepath.Join(configDir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "log_level: info")
	assert.Contains(t, string(data), "pause: true")

	// Idempotent: an edited file survives a second init.
	custom := []byte("year: 2030\n")
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), custom, 0o644))
	_, err = execute(t, "", "init", "--config-dir", configDir)
	require.NoError(t, err)
	data, err = os.ReadFile(filepath.Join(configDir, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, custom, data)
}

func TestRunSessionFromPipedInput(t *testing.T) {
	configDir, logFile := isolate(t)

	out, err := execute(t, addGalaxy+"5\n6\n", "--config-dir", configDir, "--year", "2024")
	require.NoError(t, err)
	assert.Contains(t, out, "Generated Serial Number: PH2400001")
	assert.Contains(t, out, "Category: PHONE")
	assert.NotContains(t, out, "Press Enter to continue", "piped input is not interactive")

	logs, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logs), `"message":"gadget added"`)
}

func TestRunYearFromConfigAndEnv(t *testing.T) {
	configDir, _ := isolate(t)
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("year: 2030\n"), 0o644))

	out, err := execute(t, addGalaxy+"6\n", "--config-dir", configDir)
	require.NoError(t, err)
	assert.Contains(t, out, "PH3000001")

	t.Setenv("GADGETSTORE_YEAR", "2031")
	out, err = execute(t, addGalaxy+"6\n", "--config-dir", configDir)
	require.NoError(t, err)
	assert.Contains(t, out, "PH3100001")

	out, err = execute(t, addGalaxy+"6\n", "--config-dir", configDir, "--year", "2024")
	require.NoError(t, err)
	assert.Contains(t, out, "PH2400001")
}

func TestRunRejectsBadConfig(t *testing.T) {
	configDir, _ := isolate(t)

	_, err := execute(t, "6\n", "--config-dir", configDir, "--log-level", "loud")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrLogLevelUnknown))
	assert.Equal(t, exitUserError, exitCode(err))

	_, err = execute(t, "6\n", "--config-dir", configDir, "--year=-5")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrYearInvalid)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitUserError, exitCode(errors.New("bad flag")))
	assert.Equal(t, exitSysError, exitCode(sysErr("open log: %w", os.ErrPermission)))
	assert.ErrorIs(t, sysErr("open log: %w", os.ErrPermission), os.ErrPermission)
}

func TestRejectsPositionalArgs(t *testing.T) {
	configDir, _ := isolate(t)
	_, err := execute(t, "", "--config-dir", configDir, "extra")
	assert.Error(t, err)
}
