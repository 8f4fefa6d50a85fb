package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/effect-solutions/effect-docs/internal/issue"
	"github.com/effect-solutions/effect-docs/internal/tools"
)

var (
	issueCategory    string
	issueTitle       string
	issueDescription string
)

// issueCmd files an issue against the docs repository. It goes through
// the tool dispatcher so the CLI and protocol paths behave identically.
var issueCmd = &cobra.Command{
	Use:   "issue",
	Short: "File an issue against the documentation",
	Long: fmt.Sprintf(`Build a GitHub "new issue" URL from the given fields and surface it
with the configured open strategy (%s=browser|collect|stub|api).

Categories: %s`, "EFFECT_DOCS_OPEN", strings.Join(issue.Categories, ", ")),
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		res, err := a.dispatcher.Invoke(cmd.Context(), tools.NameIssue, map[string]any{
			"category":    issueCategory,
			"title":       issueTitle,
			"description": issueDescription,
		})
		if err != nil {
			var iae *tools.InvalidArgumentError
			if errors.As(err, &iae) {
				return failf("%s", iae.Error())
			}
			return err
		}

		outcome, ok := res.Structured.(issue.Result)
		if !ok {
			return fmt.Errorf("unexpected tool result type %T", res.Structured)
		}
		if outcome.Opened {
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString(outcome.Message))
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), color.YellowString(outcome.Message))
		}
		return nil
	},
}

func init() {
	issueCmd.Flags().StringVar(&issueCategory, "category", "", "issue category: "+strings.Join(issue.Categories, ", "))
	issueCmd.Flags().StringVar(&issueTitle, "title", "", "issue title")
	issueCmd.Flags().StringVar(&issueDescription, "description", "", "what is wrong or missing")
}
