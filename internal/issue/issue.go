// Copyright 2026 The Effect Docs Authors
// SPDX-License-Identifier: MIT

// Package issue builds GitHub "new issue" URLs from structured fields and
// surfaces them through a pluggable open strategy.
package issue

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// DefaultRepo is the repository issues are filed against, as "owner/name".
const DefaultRepo = "effect-solutions/effect-docs"

// Categories are the accepted issue categories.
var Categories = []string{"Fix", "Improvement", "New Topic", "Other"}

// Request carries the fields of an issue to file. All three are required.
type Request struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Validate reports the first missing or invalid field.
func (r Request) Validate() error {
	switch {
	case strings.TrimSpace(r.Category) == "":
		return fmt.Errorf("category is required")
	case !slices.Contains(Categories, r.Category):
		return fmt.Errorf("unknown category %q (one of: %s)", r.Category, strings.Join(Categories, ", "))
	case strings.TrimSpace(r.Title) == "":
		return fmt.Errorf("title is required")
	case strings.TrimSpace(r.Description) == "":
		return fmt.Errorf("description is required")
	}
	return nil
}

// Result is the outcome of filing an issue.
type Result struct {
	IssueURL   string `json:"issueUrl"`
	Message    string `json:"message"`
	Opened     bool   `json:"opened"`
	OpenedWith string `json:"openedWith"`
}

// OpenStrategy surfaces a generated issue URL to the user. Implementations
// must be safe for sequential reuse across the process lifetime; the
// strategy is selected once from configuration, not per call.
type OpenStrategy interface {
	// Name identifies the strategy in Result.OpenedWith.
	Name() string

	// Open attempts to surface the URL. The full request is supplied for
	// strategies that file through an API rather than a browser.
	Open(ctx context.Context, issueURL string, req Request) error
}

// Service files issues against a fixed repository using one strategy.
type Service struct {
	repo     string
	strategy OpenStrategy
}

// NewService builds a Service. An empty repo falls back to DefaultRepo.
func NewService(repo string, strategy OpenStrategy) *Service {
	if repo == "" {
		repo = DefaultRepo
	}
	return &Service{repo: repo, strategy: strategy}
}

// Strategy returns the configured open strategy.
func (s *Service) Strategy() OpenStrategy {
	return s.strategy
}

// BuildURL constructs the "new issue" URL for req. The same input always
// yields the same URL: url.Values.Encode sorts parameters and
// percent-encodes deterministically.
func (s *Service) BuildURL(req Request) string {
	params := url.Values{}
	params.Set("title", req.Title)
	params.Set("body", fmt.Sprintf("[%s] %s", req.Category, req.Description))
	return fmt.Sprintf("https://github.com/%s/issues/new?%s", s.repo, params.Encode())
}

// File validates req, builds the issue URL, and hands it to the strategy.
// A strategy failure is reported in the Result (Opened false), not as an
// error; the error return covers invalid requests only.
func (s *Service) File(ctx context.Context, req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	issueURL := s.BuildURL(req)
	res := Result{
		IssueURL:   issueURL,
		OpenedWith: s.strategy.Name(),
	}
	if err := s.strategy.Open(ctx, issueURL, req); err != nil {
		res.Message = fmt.Sprintf("Could not open issue via %s: %v. File it manually: %s",
			s.strategy.Name(), err, issueURL)
		return res, nil
	}
	res.Opened = true
	res.Message = fmt.Sprintf("Issue %q opened via %s: %s", req.Title, s.strategy.Name(), issueURL)
	return res, nil
}
