// Copyright 2026 The Effect Docs Authors
// SPDX-License-Identifier: MIT

// Package search answers keyword queries against the document corpus.
//
// Matching is case-insensitive substring search over title, description,
// and body. A multi-word query matches a document only if every token
// appears in one of the three fields. Title matches outrank description
// matches, which outrank body-only matches; remaining ties follow corpus
// order.
package search

import (
	"sort"
	"strings"

	"github.com/effect-solutions/effect-docs/internal/docstore"
)

// DefaultLimit caps result counts when the caller does not supply one.
const DefaultLimit = 10

// Field weights. A document's score is the weight of the best field any
// query token hits.
const (
	scoreBody        = 1
	scoreDescription = 2
	scoreTitle       = 3
)

// Result is one query match.
type Result struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	// Score ranks the match: 3 = title hit, 2 = description, 1 = body.
	Score int `json:"score"`
}

// Index is a searchable view over a document store. Read-only after
// construction; safe for concurrent use.
type Index struct {
	docs []indexed
}

type indexed struct {
	slug       string
	title      string
	lowerTitle string
	lowerDesc  string
	lowerBody  string
	order      int
}

// NewIndex builds the searchable view. The store must already be loaded.
func NewIndex(store *docstore.Store) *Index {
	docs := store.All()
	idx := &Index{docs: make([]indexed, 0, len(docs))}
	for _, d := range docs {
		idx.docs = append(idx.docs, indexed{
			slug:       d.Slug,
			title:      d.Title,
			lowerTitle: strings.ToLower(d.Title),
			lowerDesc:  strings.ToLower(d.Description),
			lowerBody:  strings.ToLower(d.Body),
			order:      d.Order,
		})
	}
	return idx
}

// Search runs a query with the default result limit.
func (idx *Index) Search(query string) []Result {
	return idx.SearchN(query, DefaultLimit)
}

// SearchN runs a query capped at limit results. An empty or all-whitespace
// query returns no results — it never falls through to the full corpus.
// A limit of zero or less means DefaultLimit.
func (idx *Index) SearchN(query string, limit int) []Result {
	tokens := strings.Fields(strings.ToLower(strings.TrimSpace(query)))
	if len(tokens) == 0 {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	type scored struct {
		Result
		order int
	}
	var matches []scored
	for _, d := range idx.docs {
		score := 0
		matched := true
		for _, tok := range tokens {
			switch {
			case strings.Contains(d.lowerTitle, tok):
				score = max(score, scoreTitle)
			case strings.Contains(d.lowerDesc, tok):
				score = max(score, scoreDescription)
			case strings.Contains(d.lowerBody, tok):
				score = max(score, scoreBody)
			default:
				matched = false
			}
			if !matched {
				break
			}
		}
		if matched {
			matches = append(matches, scored{
				Result: Result{Slug: d.slug, Title: d.title, Score: score},
				order:  d.order,
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		if matches[i].order != matches[j].order {
			return matches[i].order < matches[j].order
		}
		return matches[i].Slug < matches[j].Slug
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = m.Result
	}
	return results
}
