package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/effect-solutions/effect-docs/internal/tools"
)

// guideCmd prints the same usage guide the get_help tool returns over the
// protocol.
var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Explain the available tools and resources",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		res, err := a.dispatcher.Invoke(cmd.Context(), tools.NameHelp, nil)
		if err != nil {
			return err
		}
		out, ok := res.Structured.(tools.HelpOutput)
		if !ok {
			return fmt.Errorf("unexpected tool result type %T", res.Structured)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out.Guide)
		return nil
	},
}
