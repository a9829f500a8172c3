package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/larkvale/chaindiag/rhat"
)

var rhatCmd = &cobra.Command{
	Use:   "rhat <chain.csv...>",
	Short: "Split-chain rhat per parameter across independent chains",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRhat,
}

// runRhat loads every file as one chain and reports the per-parameter
// diagnostic; values near 1 mean the chains agree.
func runRhat(cmd *cobra.Command, args []string) error {
	chains, names, err := loadChains(args)
	if err != nil {
		return err
	}

	start := time.Now()
	values, err := rhat.AllParams(chains, rhat.WithWarmUp(warmUp))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for j, v := range values {
		fmt.Fprintf(out, "%s\t%.4f\n", paramName(names, j), v)
	}
	slog.Info("rhat computed",
		slog.Int("chains", len(chains)),
		slog.Float64("warm_up", warmUp),
		slog.Duration("elapsed", time.Since(start)))

	return nil
}
