package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	docslog "github.com/effect-solutions/effect-docs/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// rootCmd is the base command for effect-docs.
var rootCmd = &cobra.Command{
	Use:   "effect-docs",
	Short: "Curated Effect best-practice documents, searchable from the terminal",
	Long: `effect-docs serves a curated set of Effect best-practice documents.
Browse and search them from the terminal, file issues against the corpus,
or run the MCP server to expose the same tools to AI agents.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		docslog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(issueCmd)
	rootCmd.AddCommand(guideCmd)
	rootCmd.AddCommand(versionCmd)
}
