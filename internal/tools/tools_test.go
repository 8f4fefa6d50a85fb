// Copyright 2026 The Effect Docs Authors
// SPDX-License-Identifier: MIT

package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/effect-solutions/effect-docs/internal/docstore"
	"github.com/effect-solutions/effect-docs/internal/issue"
	"github.com/effect-solutions/effect-docs/internal/search"
)

func newTestDispatcher(t *testing.T) (*Dispatcher, *issue.CollectStrategy) {
	t.Helper()
	store, err := docstore.New()
	require.NoError(t, err)
	collect := issue.NewCollectStrategy()
	return NewDispatcher(search.NewIndex(store), issue.NewService("", collect)), collect
}

// assertDualForm checks that the text rendering parses back to the same
// data as the structured form.
func assertDualForm(t *testing.T, res *Result) {
	t.Helper()
	structured, err := json.Marshal(res.Structured)
	require.NoError(t, err)

	var fromText, fromStructured any
	require.NoError(t, json.Unmarshal([]byte(res.Text), &fromText))
	require.NoError(t, json.Unmarshal(structured, &fromStructured))
	assert.Equal(t, fromStructured, fromText, "text and structured forms must carry identical data")
}

func TestDefinitions_ExactToolSet(t *testing.T) {
	d, _ := newTestDispatcher(t)

	var names []string
	for _, def := range d.Definitions() {
		names = append(names, def.Name)
		assert.NotEmpty(t, def.Description)
		assert.Equal(t, "object", def.InputSchema["type"])
	}
	assert.Equal(t, []string{NameSearch, NameIssue, NameHelp}, names)
}

func TestInvoke_Search(t *testing.T) {
	d, _ := newTestDispatcher(t)

	res, err := d.Invoke(context.Background(), NameSearch, map[string]any{"query": "error handling"})
	require.NoError(t, err)
	assertDualForm(t, res)

	out, ok := res.Structured.(SearchOutput)
	require.True(t, ok)
	require.NotEmpty(t, out.Results)
	assert.Equal(t, "error-handling", out.Results[0].Slug)
}

func TestInvoke_SearchNoMatchesIsEmptyArray(t *testing.T) {
	d, _ := newTestDispatcher(t)

	res, err := d.Invoke(context.Background(), NameSearch, map[string]any{"query": "xyzzy-nothing"})
	require.NoError(t, err)
	assert.Contains(t, res.Text, `"results": []`, "no matches must serialize as an empty array, not null")
}

func TestInvoke_SearchArgumentErrors(t *testing.T) {
	d, _ := newTestDispatcher(t)

	tests := []struct {
		name string
		args map[string]any
	}{
		{"missing query", map[string]any{}},
		{"empty query", map[string]any{"query": ""}},
		{"whitespace query", map[string]any{"query": "   "}},
		{"non-string query", map[string]any{"query": 42}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.Invoke(context.Background(), NameSearch, tt.args)
			var iae *InvalidArgumentError
			require.ErrorAs(t, err, &iae)
			assert.Equal(t, "query", iae.Arg)
		})
	}
}

func TestInvoke_OpenIssue(t *testing.T) {
	d, collect := newTestDispatcher(t)

	res, err := d.Invoke(context.Background(), NameIssue, map[string]any{
		"category":    "Fix",
		"title":       "Broken link",
		"description": "Example body",
	})
	require.NoError(t, err)
	assertDualForm(t, res)

	out, ok := res.Structured.(issue.Result)
	require.True(t, ok)
	assert.True(t, out.Opened)
	assert.Equal(t, "collect", out.OpenedWith)
	assert.Contains(t, out.IssueURL, "issues/new")
	assert.Len(t, collect.URLs(), 1)
}

func TestInvoke_OpenIssueMissingField(t *testing.T) {
	d, collect := newTestDispatcher(t)

	_, err := d.Invoke(context.Background(), NameIssue, map[string]any{
		"category": "Fix",
		"title":    "Broken link",
	})
	var iae *InvalidArgumentError
	require.ErrorAs(t, err, &iae)
	assert.Equal(t, "description", iae.Arg)
	assert.Empty(t, collect.URLs(), "failed validation must not file anything")
}

func TestInvoke_GetHelp(t *testing.T) {
	d, _ := newTestDispatcher(t)

	res, err := d.Invoke(context.Background(), NameHelp, nil)
	require.NoError(t, err)
	assertDualForm(t, res)

	out, ok := res.Structured.(HelpOutput)
	require.True(t, ok)
	assert.Contains(t, out.Guide, NameSearch)
	assert.Contains(t, out.Guide, NameIssue)
	assert.Contains(t, out.Guide, NameHelp)
}

func TestInvoke_UnknownTool(t *testing.T) {
	d, _ := newTestDispatcher(t)

	_, err := d.Invoke(context.Background(), "frobnicate", nil)
	var ute *UnknownToolError
	require.ErrorAs(t, err, &ute)
	assert.Equal(t, "frobnicate", ute.Name)
}
