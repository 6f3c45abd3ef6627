// Package main provides the entry point for the skill_cleaner CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	dataDir string
	verbose bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "skill_cleaner",
	Short: "Filter role and skill datasets down to mainstream skills",
	Long: `Reads roles.json and skills.json from the data directory, keeps only skills that
contain a mainstream technology keyword, and writes roles_cleaned.json and
skills_cleaned.json next to them.

Run without arguments to clean the files in the current directory.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if !verbose {
			logger = zap.NewNop()
			return nil
		}

		config := zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		config.OutputPaths = []string{"stderr"}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		_ = logger.Sync()
	},
	RunE: runClean,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataDir, "dir", "d", ".", "Directory holding the data files")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug diagnostics to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
