package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var searchLimit int

// searchCmd runs a keyword query against the corpus.
var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search the documents by keyword",
	Long: `Search titles, descriptions, and bodies case-insensitively. Title
matches rank above description matches, which rank above body matches.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		query := strings.Join(args, " ")
		results := a.index.SearchN(query, searchLimit)
		if len(results) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No matching documents.")
			return nil
		}

		slugColor := color.New(color.FgCyan)
		titleColor := color.New(color.Bold)
		for _, r := range results {
			fmt.Fprintf(cmd.OutOrStdout(), "%s — %s\n",
				slugColor.Sprint(r.Slug), titleColor.Sprint(r.Title))
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "maximum number of results (default 10)")
}
