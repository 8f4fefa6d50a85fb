// Copyright 2026 The Effect Docs Authors
// SPDX-License-Identifier: MIT

// Package tools maps named tool invocations to handlers over the document
// corpus: search_effect_solutions, open_issue, and get_help.
//
// Every result carries two representations of the same data — a structured
// object and its JSON text rendering — so heterogeneous protocol clients
// can consume whichever they understand. The text form is derived from the
// structured form in a single encode step; the two can never diverge.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/effect-solutions/effect-docs/internal/issue"
	"github.com/effect-solutions/effect-docs/internal/search"
)

// Tool names.
const (
	NameSearch = "search_effect_solutions"
	NameIssue  = "open_issue"
	NameHelp   = "get_help"
)

// Definition describes one tool for tools/list. InputSchema is a JSON
// Schema fragment; it must match exactly what Invoke accepts.
type Definition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// Result is a tool outcome in both representations.
type Result struct {
	// Structured is the machine-readable result object.
	Structured any
	// Text is the JSON rendering of Structured.
	Text string
}

// newResult derives the text form from the structured form.
func newResult(v any) (*Result, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return &Result{Structured: v, Text: string(data)}, nil
}

// SearchOutput is the structured result of search_effect_solutions.
type SearchOutput struct {
	Results []search.Result `json:"results"`
}

// HelpOutput is the structured result of get_help.
type HelpOutput struct {
	Guide string `json:"guide"`
}

// Dispatcher routes tool invocations to their handlers.
type Dispatcher struct {
	index  *search.Index
	issues *issue.Service
	defs   []Definition
}

// NewDispatcher wires the dispatcher to its collaborators.
func NewDispatcher(index *search.Index, issues *issue.Service) *Dispatcher {
	return &Dispatcher{
		index:  index,
		issues: issues,
		defs:   definitions(),
	}
}

// Definitions returns the tool list served to protocol clients.
func (d *Dispatcher) Definitions() []Definition {
	return d.defs
}

// Invoke runs the named tool. Failures are typed: *UnknownToolError,
// *InvalidArgumentError, or *ExecutionError — a handler panic is caught
// here and converted, never allowed past the dispatcher.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args map[string]any) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = &ExecutionError{Tool: name, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	switch name {
	case NameSearch:
		return d.handleSearch(args)
	case NameIssue:
		return d.handleIssue(ctx, args)
	case NameHelp:
		return d.handleHelp()
	default:
		return nil, &UnknownToolError{Name: name}
	}
}

func (d *Dispatcher) handleSearch(args map[string]any) (*Result, error) {
	query, err := stringArg(NameSearch, args, "query")
	if err != nil {
		return nil, err
	}

	results := d.index.Search(query)
	if results == nil {
		results = []search.Result{}
	}
	res, err := newResult(SearchOutput{Results: results})
	if err != nil {
		return nil, &ExecutionError{Tool: NameSearch, Err: err}
	}
	return res, nil
}

func (d *Dispatcher) handleIssue(ctx context.Context, args map[string]any) (*Result, error) {
	req := issue.Request{}
	for _, field := range []struct {
		name string
		dst  *string
	}{
		{"category", &req.Category},
		{"title", &req.Title},
		{"description", &req.Description},
	} {
		val, err := stringArg(NameIssue, args, field.name)
		if err != nil {
			return nil, err
		}
		*field.dst = val
	}
	if err := req.Validate(); err != nil {
		return nil, &InvalidArgumentError{Tool: NameIssue, Arg: "category", Reason: err.Error()}
	}

	outcome, err := d.issues.File(ctx, req)
	if err != nil {
		return nil, &ExecutionError{Tool: NameIssue, Err: err}
	}
	res, err := newResult(outcome)
	if err != nil {
		return nil, &ExecutionError{Tool: NameIssue, Err: err}
	}
	return res, nil
}

func (d *Dispatcher) handleHelp() (*Result, error) {
	res, err := newResult(HelpOutput{Guide: helpGuide})
	if err != nil {
		return nil, &ExecutionError{Tool: NameHelp, Err: err}
	}
	return res, nil
}

// stringArg extracts a required non-empty string argument.
func stringArg(tool string, args map[string]any, name string) (string, error) {
	raw, ok := args[name]
	if !ok {
		return "", &InvalidArgumentError{Tool: tool, Arg: name, Reason: "required"}
	}
	s, ok := raw.(string)
	if !ok {
		return "", &InvalidArgumentError{Tool: tool, Arg: name, Reason: fmt.Sprintf("expected string, got %T", raw)}
	}
	if strings.TrimSpace(s) == "" {
		return "", &InvalidArgumentError{Tool: tool, Arg: name, Reason: "must not be empty"}
	}
	return s, nil
}

func definitions() []Definition {
	return []Definition{
		{
			Name:        NameSearch,
			Description: "Search the Effect best-practice documents by keyword. Matches titles, descriptions, and bodies; title matches rank first.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "Keywords to search for, e.g. \"error handling\"",
					},
				},
				"required": []string{"query"},
			},
		},
		{
			Name:        NameIssue,
			Description: "File a GitHub issue against the effect-docs repository: report a fix, suggest an improvement, or request a new topic.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"category": map[string]any{
						"type":        "string",
						"enum":        issue.Categories,
						"description": "Issue category",
					},
					"title": map[string]any{
						"type":        "string",
						"description": "Short issue title",
					},
					"description": map[string]any{
						"type":        "string",
						"description": "What is wrong or missing",
					},
				},
				"required": []string{"category", "title", "description"},
			},
		},
		{
			Name:        NameHelp,
			Description: "Describe this server and how to use its tools.",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
	}
}
