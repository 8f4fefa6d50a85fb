// Copyright 2026 The Effect Docs Authors
// SPDX-License-Identifier: MIT

package tools

// helpGuide is the static text returned by get_help.
const helpGuide = `# effect-docs — Effect best practices server

This server exposes a curated set of Effect best-practice documents and a
small set of tools for working with them.

## Available tools

1. **search_effect_solutions** — Keyword search across all documents.
   Matches titles, descriptions, and bodies; title matches rank first.
   Example: search_effect_solutions(query="error handling")
2. **open_issue** — File a GitHub issue against the effect-docs repository.
   Takes a category (Fix, Improvement, New Topic, Other), a title, and a
   description.
3. **get_help** — You are here.

## Available resources

Each document is readable at effect-docs://docs/<slug>, and
effect-docs://docs/topics returns the full topic index.

## Recommended workflow

1. Call search_effect_solutions with keywords from the problem at hand
2. Read the matching documents via their resource URIs
3. If a document is wrong or a topic is missing, file it with open_issue
`
