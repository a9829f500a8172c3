package chainio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by this package, matched with errors.Is.
var (
	// ErrNoData is returned when the input holds no sample rows and no
	// header, or when there is nothing to write.
	ErrNoData = errors.New("chainio: no samples in input")

	// ErrHeaderOnly is returned when the input holds a header row but no
	// sample rows.
	ErrHeaderOnly = errors.New("chainio: header but no sample rows")

	// ErrNameCount is returned by the writers when the supplied names do
	// not match the column count.
	ErrNameCount = errors.New("chainio: name count must match column count")
)

// CSVOptions controls the CSV dialect. The zero value means comma
// separation with no header row; DefaultCSVOptions is the common case.
type CSVOptions struct {
	// Comma is the field delimiter. Zero means ','.
	Comma rune

	// Header controls whether the first row carries parameter names
	// (reading) or whether one is written (writing).
	Header bool
}

// DefaultCSVOptions returns the usual dialect: comma-separated with a
// header row of parameter names.
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{Comma: ',', Header: true}
}

// ReadCSV parses one chain from r: one sample per row, one parameter per
// column. With a header, the returned names are its trimmed cells;
// without, names is nil.
//
// Parsing is strict. A non-numeric cell or a row with the wrong number
// of fields is an error carrying row and column context, never a skipped
// row: silently dropping rows would misalign draws across parameters.
func ReadCSV(r io.Reader, opts CSVOptions) (*mat.Dense, []string, error) {
	if opts.Comma == 0 {
		opts.Comma = ','
	}
	cr := csv.NewReader(r)
	cr.Comma = opts.Comma
	cr.TrimLeadingSpace = true

	row := 0
	var names []string
	if opts.Header {
		record, err := cr.Read()
		if err == io.EOF {
			return nil, nil, fmt.Errorf("%w: empty input", ErrNoData)
		}
		if err != nil {
			return nil, nil, fmt.Errorf("chainio: %w", err)
		}
		row++
		names = make([]string, len(record))
		for i, h := range record {
			names[i] = strings.TrimSpace(h)
		}
	}

	var (
		data []float64
		rows int
		cols int
	)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("chainio: %w", err)
		}
		row++
		if cols == 0 {
			cols = len(record)
		}
		for i, cell := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, nil, fmt.Errorf("chainio: row %d, column %d: %w", row, i+1, err)
			}
			data = append(data, v)
		}
		rows++
	}

	if rows == 0 {
		if opts.Header {
			return nil, nil, fmt.Errorf("%w: %d columns named, none filled", ErrHeaderOnly, len(names))
		}
		return nil, nil, fmt.Errorf("%w: empty input", ErrNoData)
	}

	return mat.NewDense(rows, cols, data), names, nil
}

// LoadCSV reads one chain from the file at path. See ReadCSV.
func LoadCSV(path string, opts CSVOptions) (*mat.Dense, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	return ReadCSV(f, opts)
}

// WriteCSV writes the sample matrix to w, one sample per row. Values are
// formatted so that reading them back reproduces every float exactly.
// With the header option set, nil names produce "param 1".."param p".
func WriteCSV(w io.Writer, samples mat.Matrix, names []string, opts CSVOptions) error {
	if samples == nil {
		return fmt.Errorf("%w: nil samples", ErrNoData)
	}
	rows, cols := samples.Dims()
	if rows == 0 || cols == 0 {
		return fmt.Errorf("%w: %dx%d samples", ErrNoData, rows, cols)
	}
	if names != nil && len(names) != cols {
		return fmt.Errorf("%w: got %d names for %d columns", ErrNameCount, len(names), cols)
	}
	if opts.Comma == 0 {
		opts.Comma = ','
	}

	cw := csv.NewWriter(w)
	cw.Comma = opts.Comma

	if opts.Header {
		if names == nil {
			names = make([]string, cols)
			for j := range names {
				names[j] = fmt.Sprintf("param %d", j+1)
			}
		}
		if err := cw.Write(names); err != nil {
			return fmt.Errorf("chainio: %w", err)
		}
	}

	record := make([]string, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			record[j] = strconv.FormatFloat(samples.At(i, j), 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("chainio: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("chainio: %w", err)
	}

	return nil
}

// SaveCSV writes the sample matrix to the file at path. See WriteCSV.
func SaveCSV(path string, samples mat.Matrix, names []string, opts CSVOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, samples, names, opts); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
