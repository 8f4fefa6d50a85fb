// Copyright 2026 The Effect Docs Authors
// SPDX-License-Identifier: MIT

package issue

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/go-github/v68/github"
)

// issueCreator is the slice of the GitHub API the strategy uses, kept
// small so tests can substitute a fake.
type issueCreator interface {
	Create(ctx context.Context, owner, repo string, req *github.IssueRequest) (*github.Issue, *github.Response, error)
}

// realIssueCreator delegates to the go-github client.
type realIssueCreator struct {
	client *github.Client
}

func (r *realIssueCreator) Create(ctx context.Context, owner, repo string, req *github.IssueRequest) (*github.Issue, *github.Response, error) {
	return r.client.Issues.Create(ctx, owner, repo, req)
}

// APIStrategy files the issue directly through the GitHub REST API instead
// of pointing a browser at the new-issue form. Requires a token with repo
// scope.
type APIStrategy struct {
	creator issueCreator
	owner   string
	name    string
}

// NewAPIStrategy builds an APIStrategy for the "owner/name" repo.
func NewAPIStrategy(token, repo string) *APIStrategy {
	owner, name, _ := strings.Cut(repo, "/")
	return &APIStrategy{
		creator: &realIssueCreator{client: github.NewClient(nil).WithAuthToken(token)},
		owner:   owner,
		name:    name,
	}
}

// Name implements OpenStrategy.
func (a *APIStrategy) Name() string { return StrategyAPI }

// Open creates the issue via the API. The issue body carries the
// category-prefixed description, matching what the URL form would submit.
func (a *APIStrategy) Open(ctx context.Context, _ string, req Request) error {
	body := fmt.Sprintf("[%s] %s", req.Category, req.Description)
	created, _, err := a.creator.Create(ctx, a.owner, a.name, &github.IssueRequest{
		Title: github.Ptr(req.Title),
		Body:  github.Ptr(body),
	})
	if err != nil {
		return fmt.Errorf("creating issue via GitHub API: %w", err)
	}
	slog.Info("issue created", "url", created.GetHTMLURL())
	return nil
}
