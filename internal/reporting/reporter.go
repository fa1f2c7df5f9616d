// File: internal/reporting/reporter.go
package reporting

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/xkilldash9x/oxymouse/internal/trajectory"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Result is one generated path and the request that produced it.
type Result struct {
	Algorithm string                  `json:"algorithm"`
	Kind      string                  `json:"kind"`
	Seed      int64                   `json:"seed"`
	Points    []trajectory.Coordinate `json:"points"`
}

// Reporter defines the interface for writing generated paths to an output.
type Reporter interface {
	// Write emits a single result.
	Write(result *Result) error
	// Close flushes the report and closes any underlying file.
	Close() error
}

// nopWriteCloser wraps an io.Writer and provides a no-op Close method.
type nopWriteCloser struct {
	io.Writer
}

func (nwc *nopWriteCloser) Close() error {
	return nil
}

// New creates a reporter for format writing to outputPath. An empty path or
// "stdout" writes to standard output.
func New(format, outputPath string) (Reporter, error) {
	switch format {
	case "json", "csv", "text":
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}

	if outputPath == "" || outputPath == "stdout" {
		return NewWriter(format, os.Stdout)
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", outputPath, err)
	}
	return NewWithWriter(format, f)
}

// NewWriter creates a reporter writing to w without taking ownership of it.
func NewWriter(format string, w io.Writer) (Reporter, error) {
	return NewWithWriter(format, &nopWriteCloser{w})
}

// NewWithWriter creates a reporter that takes ownership of w.
func NewWithWriter(format string, w io.WriteCloser) (Reporter, error) {
	switch format {
	case "json":
		return &jsonReporter{w: w, enc: json.NewEncoder(w)}, nil
	case "csv":
		return &csvReporter{w: w, csv: csv.NewWriter(w)}, nil
	case "text":
		return &textReporter{w: w}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// jsonReporter writes one JSON document per result (JSON Lines).
type jsonReporter struct {
	mu  sync.Mutex
	w   io.WriteCloser
	enc *jsoniter.Encoder
}

func (r *jsonReporter) Write(result *Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enc.Encode(result); err != nil {
		return fmt.Errorf("encoding %s result: %w", result.Kind, err)
	}
	return nil
}

func (r *jsonReporter) Close() error { return r.w.Close() }

// csvReporter writes a header once followed by one row per point.
type csvReporter struct {
	mu      sync.Mutex
	w       io.WriteCloser
	csv     *csv.Writer
	run     int
	started bool
}

func (r *csvReporter) Write(result *Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.started {
		if err := r.csv.Write([]string{"run", "algorithm", "kind", "seed", "index", "x", "y"}); err != nil {
			return err
		}
		r.started = true
	}

	seed := strconv.FormatInt(result.Seed, 10)
	run := strconv.Itoa(r.run)
	for i, p := range result.Points {
		row := []string{run, result.Algorithm, result.Kind, seed, strconv.Itoa(i), strconv.Itoa(p.X), strconv.Itoa(p.Y)}
		if err := r.csv.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	r.run++
	r.csv.Flush()
	return r.csv.Error()
}

func (r *csvReporter) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.csv.Flush()
	if err := r.csv.Error(); err != nil {
		r.w.Close()
		return err
	}
	return r.w.Close()
}

// textReporter writes a comment line per result and one "x,y" line per point.
type textReporter struct {
	mu sync.Mutex
	w  io.WriteCloser
}

func (r *textReporter) Write(result *Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := fmt.Fprintf(r.w, "# %s %s seed=%d points=%d\n", result.Algorithm, result.Kind, result.Seed, len(result.Points)); err != nil {
		return err
	}
	for _, p := range result.Points {
		if _, err := fmt.Fprintf(r.w, "%d,%d\n", p.X, p.Y); err != nil {
			return err
		}
	}
	return nil
}

func (r *textReporter) Close() error { return r.w.Close() }
