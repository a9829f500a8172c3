// Package chainio reads and writes MCMC chains as CSV: one file per
// chain, one sample per row, one parameter per column, with an optional
// header row of parameter names.
//
// Parsing is strict. A non-numeric cell or a ragged row fails with row
// and column context instead of being skipped, because dropping rows
// would silently misalign draws across parameters. Writing uses the
// shortest float form that parses back to the identical value, so a
// write/read round trip is lossless.
//
// Usage
//
//	samples, names, err := chainio.LoadCSV("chain0.csv", chainio.DefaultCSVOptions())
//	if err != nil {
//	    // ErrNoData, ErrHeaderOnly, or a parse error with position context
//	}
//	_ = chainio.SaveCSV("out.csv", samples, names, chainio.DefaultCSVOptions())
package chainio
