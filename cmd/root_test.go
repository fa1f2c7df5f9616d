// File: cmd/root_test.go
package cmd

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/oxymouse/internal/movement"
	"github.com/xkilldash9x/oxymouse/internal/reporting"
	"github.com/xkilldash9x/oxymouse/internal/trajectory"
)

// executeCommand runs a pristine command tree and returns what it wrote to stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Keep the shared logger quiet and avoid picking up a developer's config file.
	t.Setenv("OXYMOUSE_LOGGER_LEVEL", "fatal")
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	root := NewRootCommand()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), err
}

func decodeResults(t *testing.T, out string) []reporting.Result {
	t.Helper()
	var results []reporting.Result
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		var r reporting.Result
		require.NoError(t, jsoniter.Unmarshal([]byte(line), &r))
		results = append(results, r)
	}
	return results
}

func TestRootCmd_VersionFlag(t *testing.T) {
	out, err := executeCommand(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "oxymouse version "+Version)
}

func TestRootCmd_NoArgs(t *testing.T) {
	out, err := executeCommand(t)
	require.NoError(t, err)
	assert.Contains(t, out, "oxymouse synthesizes human-like pointer trajectories.")
}

func TestAlgorithmsCmd(t *testing.T) {
	out, err := executeCommand(t, "algorithms")
	require.NoError(t, err)
	assert.Equal(t, "oxy\n", out)
}

func TestPathCmd(t *testing.T) {
	out, err := executeCommand(t, "path", "--seed", "42")
	require.NoError(t, err)

	results := decodeResults(t, out)
	require.Len(t, results, 1)
	r := results[0]
	assert.Equal(t, "oxy", r.Algorithm)
	assert.Equal(t, "path", r.Kind)
	assert.Equal(t, int64(42), r.Seed)

	require.NotEmpty(t, r.Points)
	assert.Equal(t, trajectory.Coordinate{X: 0, Y: 0}, r.Points[0])
	assert.Equal(t, trajectory.Coordinate{X: 1000, Y: 1000}, r.Points[len(r.Points)-1])
	for _, p := range r.Points {
		assert.True(t, p.X >= 0 && p.X <= 1000 && p.Y >= 0 && p.Y <= 1000, "point %v out of bounds", p)
	}

	again, err := executeCommand(t, "path", "--seed", "42")
	require.NoError(t, err)
	assert.Equal(t, out, again, "a pinned seed reproduces the path")
}

func TestScrollCmd_Text(t *testing.T) {
	out, err := executeCommand(t, "scroll", "--start", "0", "--end", "500", "--format", "text", "--seed", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Greater(t, len(lines), 1)
	assert.Equal(t, "# oxy scroll seed=3 points="+strconv.Itoa(len(lines)-1), lines[0])
	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, "0,"), "x is always zero: %q", line)
	}
	assert.Equal(t, "0,500", lines[len(lines)-1])
}

func TestRandomCmd(t *testing.T) {
	out, err := executeCommand(t, "random", "--width", "640", "--height", "480", "--seed", "8")
	require.NoError(t, err)

	r := decodeResults(t, out)[0]
	require.NotEmpty(t, r.Points)
	for _, p := range r.Points {
		assert.True(t, p.X >= 0 && p.X < 640 && p.Y >= 0 && p.Y < 480, "point %v outside viewport", p)
	}
}

func TestGenerateCmd_BatchCSV(t *testing.T) {
	out, err := executeCommand(t, "generate", "-n", "3", "--format", "csv", "--seed", "10", "--duration", "200ms")
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Greater(t, len(rows), 3)

	seedsByRun := map[string]string{}
	for _, row := range rows[1:] {
		seedsByRun[row[0]] = row[3]
	}
	assert.Equal(t, map[string]string{"0": "10", "1": "11", "2": "12"}, seedsByRun)
}

func TestGenerateCmd_InvalidCount(t *testing.T) {
	_, err := executeCommand(t, "generate", "--count", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--count must be at least 1")
}

func TestGenerateCmd_InvalidParameters(t *testing.T) {
	_, err := executeCommand(t, "generate", "--duration=-1s")
	require.Error(t, err)
	assert.ErrorIs(t, err, trajectory.ErrInvalidParameters)
}

func TestPathCmd_UnknownAlgorithm(t *testing.T) {
	_, err := executeCommand(t, "path", "--algorithm", "bezier")
	require.Error(t, err)
	assert.ErrorIs(t, err, movement.ErrUnknownAlgorithm)
}

func TestConfigFileAndOutputFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	outPath := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
trajectory:
  seed: 5
  duration: 300ms
output:
  format: text
  path: `+outPath+`
`), 0o644))

	stdout, err := executeCommand(t, "random", "--config", cfgPath)
	require.NoError(t, err)
	assert.Empty(t, stdout, "output goes to the configured file")

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "# oxy random seed=5 "))
}

func TestConfigFile_Invalid(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output:\n  format: xml\n"), 0o644))

	_, err := executeCommand(t, "algorithms", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load or validate config")
}
