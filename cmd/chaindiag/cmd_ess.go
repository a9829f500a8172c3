package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/larkvale/chaindiag/ess"
)

var essCmd = &cobra.Command{
	Use:   "ess <chain.csv...>",
	Short: "Effective sample size per parameter, one report per chain file",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runESS,
}

// runESS reports file, parameter and ESS on one line each, per file, so
// several chains can be compared without pooling them.
func runESS(cmd *cobra.Command, args []string) error {
	opts, err := csvOpts()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	start := time.Now()
	for _, path := range args {
		samples, names, err := loadChain(path, opts)
		if err != nil {
			return err
		}
		values, err := ess.ESS(samples)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		for j, v := range values {
			fmt.Fprintf(out, "%s\t%s\t%.2f\n", path, paramName(names, j), v)
		}
	}
	slog.Info("ess computed",
		slog.Int("files", len(args)),
		slog.Duration("elapsed", time.Since(start)))

	return nil
}
