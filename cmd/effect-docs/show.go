package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/effect-solutions/effect-docs/internal/docstore"
	"github.com/effect-solutions/effect-docs/internal/render"
)

var showRender bool

// showCmd prints one or more documents in the requested order.
var showCmd = &cobra.Command{
	Use:   "show <slug>...",
	Short: "Show one or more documents",
	Long: `Print the requested documents in the given order, each preceded by a
header naming its title and slug. The whole command fails on the first
unknown slug.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		out, err := render.Docs(a.store, args)
		if err != nil {
			var nf *docstore.NotFoundError
			if errors.As(err, &nf) {
				return failf("unknown document slug: %q (try `effect-docs list`)", nf.Slug)
			}
			return err
		}

		if showRender {
			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(100),
			)
			if err == nil {
				if pretty, err := renderer.Render(out); err == nil {
					fmt.Fprint(cmd.OutOrStdout(), pretty)
					return nil
				}
			}
			// Fall through to plain output if the terminal renderer fails.
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showRender, "render", false, "render markdown for the terminal")
}
