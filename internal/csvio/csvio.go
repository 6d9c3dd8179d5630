// Package csvio converts between delimited text and grids.
//
// Input has no header row. A configurable token marks a missing cell and
// every other field must parse as a float. Output keeps the input's shape
// and delimiter and rounds values to a fixed number of decimal places.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/danieljhkim/gridfill/internal/grid"
)

var (
	// ErrEmpty indicates the input contained no records.
	ErrEmpty = errors.New("input has no rows")

	// ErrRaggedRows indicates records of differing lengths.
	ErrRaggedRows = errors.New("inconsistent row lengths")

	// ErrInvalidNumber indicates a field that is neither a number nor the missing token.
	ErrInvalidNumber = errors.New("invalid number")
)

// Default option values. A zero Delimiter or MissingToken falls back to its
// default; a zero Precision does not and rounds to whole numbers. Start from
// DefaultOptions to get all three.
const (
	DefaultDelimiter    = ','
	DefaultMissingToken = "nan"
	DefaultPrecision    = 6
)

// Options controls parsing and formatting.
type Options struct {
	// Delimiter separates fields (default ',')
	Delimiter rune

	// MissingToken marks a missing cell (default "nan")
	MissingToken string

	// Comment, if non-zero, starts a line that is ignored on input
	Comment rune

	// Precision is the number of decimal places written; 0 writes whole
	// numbers and negative disables rounding
	Precision int
}

// DefaultOptions returns the options used by the command line when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Delimiter:    DefaultDelimiter,
		MissingToken: DefaultMissingToken,
		Precision:    DefaultPrecision,
	}
}

func (o Options) delimiter() rune {
	if o.Delimiter == 0 {
		return DefaultDelimiter
	}
	return o.Delimiter
}

func (o Options) missingToken() string {
	if o.MissingToken == "" {
		return DefaultMissingToken
	}
	return o.MissingToken
}

// Read parses delimited text into a grid.
func Read(r io.Reader, opts Options) (*grid.Grid, error) {
	cr := csv.NewReader(r)
	cr.Comma = opts.delimiter()
	cr.Comment = opts.Comment
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	token := opts.missingToken()
	var rows [][]grid.Cell
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(rows) > 0 && len(record) != len(rows[0]) {
			return nil, fmt.Errorf("row %d has %d fields, expected %d: %w",
				len(rows), len(record), len(rows[0]), ErrRaggedRows)
		}

		row := make([]grid.Cell, len(record))
		for j, field := range record {
			cell, err := parseCell(strings.TrimSpace(field), token)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %d: %w", len(rows), j, err)
			}
			row[j] = cell
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	return grid.FromRows(rows)
}

func parseCell(field, missingToken string) (grid.Cell, error) {
	if field == missingToken {
		return grid.Missing, nil
	}
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return grid.Missing, fmt.Errorf("%w: %q", ErrInvalidNumber, field)
	}
	return grid.Value(v), nil
}

// Write serializes g as delimited text. Missing cells are written as the
// missing token.
func Write(w io.Writer, g *grid.Grid, opts Options) error {
	cw := csv.NewWriter(w)
	cw.Comma = opts.delimiter()

	token := opts.missingToken()
	for _, row := range g.Rows() {
		record := make([]string, len(row))
		for j, cell := range row {
			if !cell.Known {
				record[j] = token
				continue
			}
			record[j] = FormatValue(cell.Value, opts.Precision)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

// FormatValue rounds v to precision decimal places and renders it in the
// shortest form, e.g. 2.666667, 3.5 or 1.
func FormatValue(v float64, precision int) string {
	if precision >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v) {
		scale := math.Pow(10, float64(precision))
		if rounded := math.Round(v*scale) / scale; !math.IsInf(rounded, 0) && !math.IsNaN(rounded) {
			v = rounded
		}
	}
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// DefaultOutputPath derives the output file name for input: a trailing
// ".csv" is removed and "_interpolated.csv" appended.
func DefaultOutputPath(input string) string {
	return strings.TrimSuffix(input, ".csv") + "_interpolated.csv"
}
