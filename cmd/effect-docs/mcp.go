// Copyright 2026 The Effect Docs Authors
// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/effect-solutions/effect-docs/internal/rpc"
)

// mcpCmd is the parent command for MCP-related subcommands.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server commands",
	Long:  "Commands for running effect-docs as an MCP server, exposing search, issue-filing, and help tools to AI agents.",
}

// mcpServeCmd runs the MCP server over stdio.
var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Start an MCP server on stdin/stdout, exposing the documentation tools:
  - search_effect_solutions: keyword search across the document corpus
  - open_issue:              file a GitHub issue against the docs
  - get_help:                describe the server and its tools

Each document is also readable as a resource at effect-docs://docs/<slug>,
with the topic index at effect-docs://docs/topics.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		server := rpc.NewServer(a.store, a.dispatcher, Version)
		return server.Serve(cmd.Context(), os.Stdin, os.Stdout)
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}
