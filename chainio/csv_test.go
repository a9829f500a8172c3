package chainio_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/larkvale/chaindiag/chainio"
)

// TestReadCSV_HeaderAndValues parses a small two-parameter chain with a
// header row.
func TestReadCSV_HeaderAndValues(t *testing.T) {
	in := "mu, sigma\n1,0.5\n2,0.25\n3,0.125\n"

	samples, names, err := chainio.ReadCSV(strings.NewReader(in), chainio.DefaultCSVOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"mu", "sigma"}, names)
	r, c := samples.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 2.0, samples.At(1, 0))
	assert.Equal(t, 0.125, samples.At(2, 1))
}

// TestReadCSV_NoHeader parses headerless input and returns nil names.
func TestReadCSV_NoHeader(t *testing.T) {
	opts := chainio.CSVOptions{Comma: ','}

	samples, names, err := chainio.ReadCSV(strings.NewReader("1,2\n3,4\n"), opts)
	require.NoError(t, err)

	assert.Nil(t, names)
	assert.Equal(t, 4.0, samples.At(1, 1))
}

// TestReadCSV_Delimiter honors a non-comma delimiter.
func TestReadCSV_Delimiter(t *testing.T) {
	opts := chainio.DefaultCSVOptions()
	opts.Comma = ';'

	samples, names, err := chainio.ReadCSV(strings.NewReader("a;b\n1;2\n"), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Equal(t, 2.0, samples.At(0, 1))
}

// TestReadCSV_Errors covers empty input, header-only input, bad cells
// with position context, and ragged rows.
func TestReadCSV_Errors(t *testing.T) {
	_, _, err := chainio.ReadCSV(strings.NewReader(""), chainio.DefaultCSVOptions())
	assert.ErrorIs(t, err, chainio.ErrNoData, "empty with header expected")

	_, _, err = chainio.ReadCSV(strings.NewReader(""), chainio.CSVOptions{})
	assert.ErrorIs(t, err, chainio.ErrNoData, "empty without header expected")

	_, _, err = chainio.ReadCSV(strings.NewReader("a,b\n"), chainio.DefaultCSVOptions())
	assert.ErrorIs(t, err, chainio.ErrHeaderOnly)

	_, _, err = chainio.ReadCSV(strings.NewReader("a,b\n1,oops\n"), chainio.DefaultCSVOptions())
	require.Error(t, err)
	assert.ErrorContains(t, err, "row 2, column 2")
	assert.ErrorContains(t, err, "oops")

	_, _, err = chainio.ReadCSV(strings.NewReader("a,b\n1\n"), chainio.DefaultCSVOptions())
	require.Error(t, err)
	assert.ErrorContains(t, err, "wrong number of fields")
}

// TestWriteCSV_GeneratedHeader writes with nil names and gets generated
// parameter labels.
func TestWriteCSV_GeneratedHeader(t *testing.T) {
	samples := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	var b strings.Builder
	require.NoError(t, chainio.WriteCSV(&b, samples, nil, chainio.DefaultCSVOptions()))
	assert.Equal(t, "param 1,param 2\n1,2\n3,4\n", b.String())
}

// TestWriteCSV_Errors covers nil and empty matrices and name-count
// mismatches.
func TestWriteCSV_Errors(t *testing.T) {
	var b strings.Builder

	err := chainio.WriteCSV(&b, nil, nil, chainio.DefaultCSVOptions())
	assert.ErrorIs(t, err, chainio.ErrNoData, "nil matrix")

	err = chainio.WriteCSV(&b, &mat.Dense{}, nil, chainio.DefaultCSVOptions())
	assert.ErrorIs(t, err, chainio.ErrNoData, "empty matrix")

	err = chainio.WriteCSV(&b, mat.NewDense(1, 2, []float64{1, 2}), []string{"only"}, chainio.DefaultCSVOptions())
	assert.ErrorIs(t, err, chainio.ErrNameCount)
}

// TestRoundTrip: write then read reproduces names and every float bit.
func TestRoundTrip(t *testing.T) {
	samples := mat.NewDense(3, 2, []float64{
		0.1, -2.25,
		1e-9, 3.141592653589793,
		-123456.789, 0,
	})
	names := []string{"alpha", "beta"}

	var b strings.Builder
	require.NoError(t, chainio.WriteCSV(&b, samples, names, chainio.DefaultCSVOptions()))

	got, gotNames, err := chainio.ReadCSV(strings.NewReader(b.String()), chainio.DefaultCSVOptions())
	require.NoError(t, err)
	assert.Equal(t, names, gotNames)
	assert.True(t, mat.Equal(samples, got), "round trip must be lossless")
}

// TestSaveLoad round-trips through a real file.
func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chain.csv")
	samples := mat.NewDense(2, 1, []float64{1.5, -0.5})

	require.NoError(t, chainio.SaveCSV(path, samples, []string{"theta"}, chainio.DefaultCSVOptions()))

	got, names, err := chainio.LoadCSV(path, chainio.DefaultCSVOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"theta"}, names)
	assert.True(t, mat.Equal(samples, got))

	_, _, err = chainio.LoadCSV(filepath.Join(t.TempDir(), "missing.csv"), chainio.DefaultCSVOptions())
	assert.Error(t, err)
}
