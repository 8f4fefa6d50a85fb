// Copyright 2026 The Effect Docs Authors
// SPDX-License-Identifier: MIT

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/effect-solutions/effect-docs/internal/docstore"
)

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	store, err := docstore.New()
	require.NoError(t, err)
	return NewIndex(store)
}

func TestSearch_EmptyAndWhitespaceQueries(t *testing.T) {
	idx := newTestIndex(t)

	assert.Empty(t, idx.Search(""))
	assert.Empty(t, idx.Search("   "))
	assert.Empty(t, idx.Search("\t\n"))
}

func TestSearch_TitleMatch(t *testing.T) {
	idx := newTestIndex(t)

	results := idx.Search("error handling")
	require.NotEmpty(t, results)
	assert.Equal(t, "error-handling", results[0].Slug)
	assert.Equal(t, "Error Handling", results[0].Title)
	assert.Equal(t, 3, results[0].Score)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	idx := newTestIndex(t)

	lower := idx.Search("error handling")
	upper := idx.Search("ERROR Handling")
	assert.Equal(t, lower, upper)
}

func TestSearch_TitleOutranksBody(t *testing.T) {
	idx := newTestIndex(t)

	// "streaming" is the Streaming doc's title and appears in other
	// bodies; the title match must come first.
	results := idx.Search("streaming")
	require.NotEmpty(t, results)
	assert.Equal(t, "streaming", results[0].Slug)
	for _, r := range results[1:] {
		assert.LessOrEqual(t, r.Score, results[0].Score)
	}
}

func TestSearch_MultiTokenRequiresAllTokens(t *testing.T) {
	idx := newTestIndex(t)

	// Both tokens appear in the testing doc; a nonsense token kills the
	// whole query.
	require.NotEmpty(t, idx.Search("test layer"))
	assert.Empty(t, idx.Search("test zzzzqqqq"))
}

func TestSearch_NoMatches(t *testing.T) {
	idx := newTestIndex(t)
	assert.Empty(t, idx.Search("xyzzy-not-in-corpus"))
}

func TestSearchN_LimitCapsResults(t *testing.T) {
	idx := newTestIndex(t)

	// "the" appears in effectively every body.
	all := idx.SearchN("the", 100)
	require.Greater(t, len(all), 2)

	capped := idx.SearchN("the", 2)
	assert.Len(t, capped, 2)
	assert.Equal(t, all[:2], capped)
}

func TestSearchN_ZeroLimitUsesDefault(t *testing.T) {
	idx := newTestIndex(t)

	results := idx.SearchN("the", 0)
	assert.LessOrEqual(t, len(results), DefaultLimit)
	assert.NotEmpty(t, results)
}

func TestSearch_Idempotent(t *testing.T) {
	idx := newTestIndex(t)

	first := idx.Search("resource")
	second := idx.Search("resource")
	assert.Equal(t, first, second)
}

func TestSearch_TieBreakFollowsCorpusOrder(t *testing.T) {
	idx := newTestIndex(t)

	// Body-only matches with equal score must come back in corpus order.
	results := idx.SearchN("the", 100)
	lastOrderBySlug := map[string]int{}
	store, err := docstore.New()
	require.NoError(t, err)
	for _, d := range store.All() {
		lastOrderBySlug[d.Slug] = d.Order
	}
	for i := 1; i < len(results); i++ {
		if results[i-1].Score == results[i].Score {
			assert.Less(t,
				lastOrderBySlug[results[i-1].Slug],
				lastOrderBySlug[results[i].Slug],
				"equal scores must follow corpus order")
		}
	}
}
