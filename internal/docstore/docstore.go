// Copyright 2026 The Effect Docs Authors
// SPDX-License-Identifier: MIT

// Package docstore loads the embedded best-practice document corpus into an
// immutable, ordered in-memory store.
//
// Each document is a markdown file under corpus/ with YAML frontmatter
// (title, description, order). The file's base name is the document slug.
// The corpus is fixed at compile time: the store is built once at startup
// and never mutated.
package docstore

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
)

//go:embed corpus/*.md
var corpusFS embed.FS

// Document is one best-practice article.
type Document struct {
	// Slug is the unique, URL-safe identifier, stable across renames.
	Slug string `json:"slug"`
	// Title is the display name.
	Title string `json:"title"`
	// Description is an optional one-line summary.
	Description string `json:"description,omitempty"`
	// Order controls the default listing sequence. Ties break by slug.
	Order int `json:"order"`
	// Body is the markdown content with frontmatter stripped.
	Body string `json:"-"`
}

// NotFoundError reports a slug with no matching document.
type NotFoundError struct {
	Slug string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("document not found: %q", e.Slug)
}

// docMeta is the YAML frontmatter shape expected at the top of each
// corpus file.
type docMeta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Order       int    `yaml:"order"`
}

// Store holds the loaded corpus. Safe for concurrent reads; contents never
// change after New returns.
type Store struct {
	docs   []Document // sorted by Order, then Slug
	bySlug map[string]*Document
}

// New loads the embedded corpus. It fails if any file lacks valid
// frontmatter or a title, if two files share a slug, or if the corpus is
// empty — callers treat that as fatal at startup.
func New() (*Store, error) {
	return newFromFS(corpusFS, "corpus")
}

func newFromFS(fsys fs.FS, dir string) (*Store, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading corpus directory: %w", err)
	}

	s := &Store{bySlug: make(map[string]*Document, len(entries))}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}

		var meta docMeta
		body, err := frontmatter.MustParse(bytes.NewReader(data), &meta)
		if err != nil {
			return nil, fmt.Errorf("parsing frontmatter of %s: %w", name, err)
		}
		if meta.Title == "" {
			return nil, fmt.Errorf("document %s has no title", name)
		}

		slug := strings.TrimSuffix(name, ".md")
		if _, dup := s.bySlug[slug]; dup {
			return nil, fmt.Errorf("duplicate slug %q", slug)
		}
		doc := Document{
			Slug:        slug,
			Title:       meta.Title,
			Description: meta.Description,
			Order:       meta.Order,
			Body:        strings.TrimSpace(string(body)),
		}
		s.docs = append(s.docs, doc)
	}

	if len(s.docs) == 0 {
		return nil, fmt.Errorf("corpus is empty")
	}

	sort.Slice(s.docs, func(i, j int) bool {
		if s.docs[i].Order != s.docs[j].Order {
			return s.docs[i].Order < s.docs[j].Order
		}
		return s.docs[i].Slug < s.docs[j].Slug
	})
	for i := range s.docs {
		s.bySlug[s.docs[i].Slug] = &s.docs[i]
	}
	return s, nil
}

// All returns every document in listing order (Order asc, then slug).
// The returned slice is shared; callers must not modify it.
func (s *Store) All() []Document {
	return s.docs
}

// Get returns the document for slug, or a *NotFoundError.
func (s *Store) Get(slug string) (Document, error) {
	doc, ok := s.bySlug[slug]
	if !ok {
		return Document{}, &NotFoundError{Slug: slug}
	}
	return *doc, nil
}

// Titles returns a slug → title mapping for the whole corpus.
func (s *Store) Titles() map[string]string {
	titles := make(map[string]string, len(s.docs))
	for _, d := range s.docs {
		titles[d.Slug] = d.Title
	}
	return titles
}

// Len returns the number of documents in the corpus.
func (s *Store) Len() int {
	return len(s.docs)
}
