package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/effect-solutions/effect-docs/internal/render"
)

// listCmd prints the document index, one line per document.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all best-practice documents",
	Long:  "Print one line per document in corpus order: slug — title — description.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), render.List(a.store))
		return nil
	},
}
