package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd prints the effect-docs version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print the version of the effect-docs binary.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "effect-docs %s\n", Version)
	},
}
