// File: internal/reporting/reporter_test.go
package reporting_test

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/oxymouse/internal/reporting"
	"github.com/xkilldash9x/oxymouse/internal/trajectory"
)

// closeRecorder is an in-memory WriteCloser that records Close calls.
type closeRecorder struct {
	bytes.Buffer
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func sampleResult(kind string, seed int64) *reporting.Result {
	return &reporting.Result{
		Algorithm: "oxy",
		Kind:      kind,
		Seed:      seed,
		Points:    []trajectory.Coordinate{{X: 0, Y: 0}, {X: 3, Y: -4}, {X: 10, Y: 12}},
	}
}

func TestNew_Stdout(t *testing.T) {
	for _, format := range []string{"json", "csv", "text"} {
		for _, path := range []string{"", "stdout"} {
			r, err := reporting.New(format, path)
			require.NoError(t, err)
			assert.NoError(t, r.Close(), "closing the stdout wrapper is a no-op")
		}
	}
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "path.json")

	r, err := reporting.New("json", path)
	require.NoError(t, err)
	require.NoError(t, r.Write(sampleResult("path", 7)))
	require.NoError(t, r.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"kind":"path"`)
}

func TestNew_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.xml")

	r, err := reporting.New("xml", path)
	assert.Nil(t, r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format: xml")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file is created for an unsupported format")
}

func TestNew_UncreatableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "out.json")
	_, err := reporting.New("json", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}

func TestJSONReporter(t *testing.T) {
	out := &closeRecorder{}
	r, err := reporting.NewWithWriter("json", out)
	require.NoError(t, err)

	require.NoError(t, r.Write(sampleResult("generate", 1)))
	require.NoError(t, r.Write(sampleResult("scroll", 2)))
	require.NoError(t, r.Close())
	assert.True(t, out.closed)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2, "one JSON document per result")

	var decoded reporting.Result
	require.NoError(t, jsoniter.Unmarshal([]byte(lines[1]), &decoded))
	assert.Equal(t, *sampleResult("scroll", 2), decoded)
}

func TestCSVReporter(t *testing.T) {
	out := &closeRecorder{}
	r, err := reporting.NewWithWriter("csv", out)
	require.NoError(t, err)

	require.NoError(t, r.Write(sampleResult("generate", 1)))
	require.NoError(t, r.Write(sampleResult("generate", 2)))
	require.NoError(t, r.Close())
	assert.True(t, out.closed)

	rows, err := csv.NewReader(strings.NewReader(out.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1+6, "header plus three points per result")
	assert.Equal(t, []string{"run", "algorithm", "kind", "seed", "index", "x", "y"}, rows[0])
	assert.Equal(t, []string{"0", "oxy", "generate", "1", "1", "3", "-4"}, rows[2])
	assert.Equal(t, []string{"1", "oxy", "generate", "2", "2", "10", "12"}, rows[6])
}

func TestTextReporter(t *testing.T) {
	out := &closeRecorder{}
	r, err := reporting.NewWithWriter("text", out)
	require.NoError(t, err)

	require.NoError(t, r.Write(sampleResult("random", 5)))
	require.NoError(t, r.Close())

	assert.Equal(t, "# oxy random seed=5 points=3\n0,0\n3,-4\n10,12\n", out.String())
}

func TestNewWriter_DoesNotClose(t *testing.T) {
	out := &closeRecorder{}
	r, err := reporting.NewWriter("text", out)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.False(t, out.closed, "NewWriter does not own the writer")
}
