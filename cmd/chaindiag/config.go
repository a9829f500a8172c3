package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// runConfig mirrors the optional yaml run config. Every field has a flag
// counterpart; explicitly set flags win over config values.
type runConfig struct {
	WarmUp    float64  `yaml:"warm_up"`
	Time      string   `yaml:"time"`
	Names     []string `yaml:"names"`
	Delimiter string   `yaml:"delimiter"`
	NoHeader  bool     `yaml:"no_header"`
}

func loadRunConfig(path string) (runConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return runConfig{}, err
	}
	var c runConfig
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return runConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return c, nil
}

// mergeRunConfig folds config values into every flag the user left
// untouched on the running command. Names are resolved separately, at
// the point where CSV header names are known.
func mergeRunConfig(cmd *cobra.Command) {
	flags := cmd.Flags()
	if !flags.Changed("delimiter") && cfg.Delimiter != "" {
		delimiter = cfg.Delimiter
	}
	if !flags.Changed("no-header") && cfg.NoHeader {
		noHeader = true
	}
	if !flags.Changed("warm-up") && cfg.WarmUp != 0 {
		warmUp = cfg.WarmUp
	}
	if !flags.Changed("time") && cfg.Time != "" {
		runTime = cfg.Time
	}
}
