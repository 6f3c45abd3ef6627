package main

import (
	"fmt"

	"github.com/jonathan/skill-cleaner/internal/cleaning"
	"github.com/jonathan/skill-cleaner/internal/config"
	"github.com/jonathan/skill-cleaner/internal/observability"
	"github.com/spf13/cobra"
)

// runConfig builds the run configuration from the persistent flags.
func runConfig() config.Config {
	cfg := config.Config{Dir: dataDir, Verbose: verbose}
	return cfg.MergeWithDefaults(config.Default())
}

func runClean(cmd *cobra.Command, _ []string) error {
	cfg := runConfig()

	result, err := cleaning.Run(cfg, logger)
	if err != nil {
		return fmt.Errorf("cleaning failed: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintRoleBreakdown(result.Source, result.Roles)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintSummary(result.Summary)

	return nil
}
