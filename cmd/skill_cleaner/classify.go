package main

import (
	"github.com/jonathan/skill-cleaner/internal/observability"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <skill>...",
	Short: "Report whether each skill counts as mainstream",
	Long:  "Prints one tab-separated line per skill: the skill, true or false, and the first keyword it contains.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		observability.NewPrinter(cmd.OutOrStdout()).PrintClassification(args)
	},
}

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "List the mainstream keyword table",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		observability.NewPrinter(cmd.OutOrStdout()).PrintKeywords()
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(keywordsCmd)
}
