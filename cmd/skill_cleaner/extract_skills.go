package main

import (
	"fmt"

	"github.com/jonathan/skill-cleaner/internal/cleaning"
	"github.com/spf13/cobra"
)

var extractSkillsCmd = &cobra.Command{
	Use:   "extract-skills",
	Short: "Build skills.json from the skills listed in roles.json",
	Long:  "Collects every skill of every role in roles.json, lowercases and deduplicates them, and writes the sorted list to skills.json, replacing any existing file.",
	Args:  cobra.NoArgs,
	RunE:  runExtractSkills,
}

func init() {
	rootCmd.AddCommand(extractSkillsCmd)
}

func runExtractSkills(cmd *cobra.Command, _ []string) error {
	cfg := runConfig()

	skills, err := cleaning.Extract(cfg, logger)
	if err != nil {
		return fmt.Errorf("skill extraction failed: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✅ Extracted %d unique skills → %s\n", len(skills), cfg.SkillsInput)
	return nil
}
