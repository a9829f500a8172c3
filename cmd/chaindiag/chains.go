package main

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"gonum.org/v1/gonum/mat"

	"github.com/larkvale/chaindiag/chainio"
)

// csvOpts builds the CSV dialect from the delimiter and header flags.
func csvOpts() (chainio.CSVOptions, error) {
	if utf8.RuneCountInString(delimiter) != 1 {
		return chainio.CSVOptions{}, fmt.Errorf("delimiter must be a single character, got %q", delimiter)
	}
	comma, _ := utf8.DecodeRuneInString(delimiter)

	return chainio.CSVOptions{Comma: comma, Header: !noHeader}, nil
}

// loadChain reads one chain file, logging its shape.
func loadChain(path string, opts chainio.CSVOptions) (*mat.Dense, []string, error) {
	samples, names, err := chainio.LoadCSV(path, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	rows, cols := samples.Dims()
	slog.Debug("chain loaded",
		slog.String("file", path),
		slog.Int("samples", rows),
		slog.Int("parameters", cols))

	return samples, names, nil
}

// loadChains reads one chain per path. The returned names come from the
// first file's header, nil when headerless.
func loadChains(paths []string) ([]mat.Matrix, []string, error) {
	opts, err := csvOpts()
	if err != nil {
		return nil, nil, err
	}

	chains := make([]mat.Matrix, 0, len(paths))
	var names []string
	for i, path := range paths {
		samples, fileNames, err := loadChain(path, opts)
		if err != nil {
			return nil, nil, err
		}
		if i == 0 {
			names = fileNames
		}
		chains = append(chains, samples)
	}

	return chains, names, nil
}

// parseNames splits a comma-separated name list, trimming whitespace.
func parseNames(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}

	return parts
}

// paramName labels column j, falling back to generated names.
func paramName(names []string, j int) string {
	if j < len(names) && names[j] != "" {
		return names[j]
	}

	return fmt.Sprintf("param %d", j+1)
}
