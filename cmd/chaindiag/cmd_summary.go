package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/larkvale/chaindiag/summary"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <chain.csv...>",
	Short: "Per-parameter report: moments, quantiles, rhat and ESS",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSummary,
}

// runSummary pools every file into one report table. Parameter names are
// taken from --names, then the run config, then the first file's header.
func runSummary(cmd *cobra.Command, args []string) error {
	chains, headerNames, err := loadChains(args)
	if err != nil {
		return err
	}

	names := headerNames
	switch {
	case namesCSV != "":
		names = parseNames(namesCSV)
	case len(cfg.Names) > 0 && !cmd.Flags().Changed("names"):
		names = cfg.Names
	}

	opts := []summary.Option{summary.WithNames(names...)}
	if runTime != "" {
		d, err := time.ParseDuration(runTime)
		if err != nil {
			return err
		}
		opts = append(opts, summary.WithRunTime(d))
	}

	s, err := summary.New(chains, opts...)
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	start := time.Now()
	if err := s.WriteTable(out); err != nil {
		return err
	}
	slog.Info("summary written",
		slog.Int("chains", s.NumChains()),
		slog.Int("parameters", s.NumParameters()),
		slog.String("output", outputTarget()),
		slog.Duration("elapsed", time.Since(start)))

	return nil
}

func outputTarget() string {
	if outPath == "" {
		return "stdout"
	}

	return outPath
}
