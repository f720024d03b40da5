// Package csv reads tabular player data from CSV files.
package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Table is a raw CSV table: a header row plus string records.
// Cell typing is decided later, once per column, by the dataset builder.
type Table struct {
	Headers []string
	Records [][]string
}

// Reader reads a player table from a CSV file.
type Reader struct {
	path      string
	hasHeader bool
	trimCells bool
}

// Option configures a CSV reader.
type Option func(*Reader)

// WithHeader indicates whether the CSV has a header row.
func WithHeader(has bool) Option {
	return func(r *Reader) {
		r.hasHeader = has
	}
}

// WithTrimCells controls whitespace trimming of every cell.
func WithTrimCells(trim bool) Option {
	return func(r *Reader) {
		r.trimCells = trim
	}
}

// NewReader creates a reader for the given file path.
func NewReader(path string, opts ...Option) *Reader {
	r := &Reader{
		path:      path,
		hasHeader: true,
		trimCells: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read loads the whole file into a Table.
// Rows whose field count differs from the header are skipped rather than
// failing the load; a short dataset beats no dataset for this tool.
func (r *Reader) Read() (*Table, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	t := &Table{}

	if r.hasHeader {
		headers, err := cr.Read()
		if err != nil {
			return nil, fmt.Errorf("read csv header: %w", err)
		}
		t.Headers = r.clean(headers)
	}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record: %w", err)
		}
		if r.hasHeader && len(record) != len(t.Headers) {
			continue
		}
		t.Records = append(t.Records, r.clean(record))
	}

	if r.hasHeader && len(t.Headers) == 0 {
		return nil, errors.New("csv has no columns")
	}
	return t, nil
}

func (r *Reader) clean(record []string) []string {
	if !r.trimCells {
		return record
	}
	out := make([]string, len(record))
	for i, v := range record {
		out[i] = strings.TrimSpace(v)
	}
	return out
}

// IsNumericColumn reports whether every non-empty cell of column idx
// parses as a float. Empty cells count as missing, not as non-numeric,
// so a sparse stat column is still numeric.
func (t *Table) IsNumericColumn(idx int) bool {
	seen := false
	for _, rec := range t.Records {
		v := rec[idx]
		if v == "" {
			continue
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return false
		}
		seen = true
	}
	return seen
}

// Column returns the index of a named header, or -1.
func (t *Table) Column(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}
