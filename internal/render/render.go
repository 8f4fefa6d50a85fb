// Copyright 2026 The Effect Docs Authors
// SPDX-License-Identifier: MIT

// Package render formats documents for the CLI and for resource reads.
package render

import (
	"strings"

	"github.com/effect-solutions/effect-docs/internal/docstore"
)

// docSeparator sits between consecutive documents in multi-document output.
const docSeparator = "\n\n---\n\n"

// List renders one line per document in store order, formatted as
// "slug — title — description". The description segment is omitted for
// documents without one.
func List(store *docstore.Store) string {
	var b strings.Builder
	for _, doc := range store.All() {
		b.WriteString(doc.Slug)
		b.WriteString(" — ")
		b.WriteString(doc.Title)
		if doc.Description != "" {
			b.WriteString(" — ")
			b.WriteString(doc.Description)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Docs concatenates the requested documents in the given order, each
// preceded by a heading naming its title and slug. Requested order wins
// over corpus order, and duplicate slugs render twice.
//
// The whole render fails on the first unknown slug with a
// *docstore.NotFoundError naming it; no partial output is returned.
func Docs(store *docstore.Store, slugs []string) (string, error) {
	docs := make([]docstore.Document, 0, len(slugs))
	for _, slug := range slugs {
		doc, err := store.Get(slug)
		if err != nil {
			return "", err
		}
		docs = append(docs, doc)
	}

	var b strings.Builder
	for i, doc := range docs {
		if i > 0 {
			b.WriteString(docSeparator)
		}
		b.WriteString("## ")
		b.WriteString(doc.Title)
		b.WriteString("\n(")
		b.WriteString(doc.Slug)
		b.WriteString(")\n\n")
		b.WriteString(doc.Body)
	}
	return b.String(), nil
}
