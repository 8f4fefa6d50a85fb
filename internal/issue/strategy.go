// Copyright 2026 The Effect Docs Authors
// SPDX-License-Identifier: MIT

package issue

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/effect-solutions/effect-docs/internal/testable"
)

// Strategy names, as accepted by FromName and reported in
// Result.OpenedWith.
const (
	StrategyBrowser = "browser"
	StrategyCollect = "collect"
	StrategyStub    = "stub"
	StrategyAPI     = "api"
)

// FromName resolves a strategy name from configuration. An empty name
// means browser. The api strategy is constructed separately because it
// needs a token; FromName returns an error for it without one.
func FromName(name, githubToken string) (OpenStrategy, error) {
	switch name {
	case "", StrategyBrowser:
		return NewBrowserStrategy(testable.DefaultRunner()), nil
	case StrategyCollect:
		return NewCollectStrategy(), nil
	case StrategyStub:
		return StubStrategy{}, nil
	case StrategyAPI:
		if githubToken == "" {
			return nil, fmt.Errorf("open strategy %q requires GITHUB_TOKEN", StrategyAPI)
		}
		return NewAPIStrategy(githubToken, DefaultRepo), nil
	default:
		return nil, fmt.Errorf("unknown open strategy %q", name)
	}
}

// BrowserStrategy launches the OS default browser on the issue URL. The
// launch is fire-and-forget: the browser's outcome never gates the
// response.
type BrowserStrategy struct {
	runner testable.CommandRunner
}

// NewBrowserStrategy builds a BrowserStrategy around the given runner.
func NewBrowserStrategy(runner testable.CommandRunner) *BrowserStrategy {
	return &BrowserStrategy{runner: runner}
}

// Name implements OpenStrategy.
func (b *BrowserStrategy) Name() string { return StrategyBrowser }

// Open launches the platform opener on the URL.
func (b *BrowserStrategy) Open(_ context.Context, issueURL string, _ Request) error {
	name, args := openerCommand(runtime.GOOS, issueURL)
	if _, err := b.runner.LookPath(name); err != nil {
		return fmt.Errorf("no browser opener available: %w", err)
	}
	if err := b.runner.Start(name, args...); err != nil {
		return fmt.Errorf("launching %s: %w", name, err)
	}
	slog.Debug("opened issue URL in browser", "url", issueURL)
	return nil
}

// openerCommand picks the platform URL opener.
func openerCommand(goos, issueURL string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{issueURL}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", issueURL}
	default:
		return "xdg-open", []string{issueURL}
	}
}

// CollectStrategy appends every opened URL to an in-memory log. It exists
// for tests and for callers that want to observe filings without side
// effects. Safe for concurrent use.
type CollectStrategy struct {
	mu   sync.Mutex
	urls []string
}

// NewCollectStrategy builds an empty CollectStrategy.
func NewCollectStrategy() *CollectStrategy {
	return &CollectStrategy{}
}

// Name implements OpenStrategy.
func (c *CollectStrategy) Name() string { return StrategyCollect }

// Open records the URL.
func (c *CollectStrategy) Open(_ context.Context, issueURL string, _ Request) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.urls = append(c.urls, issueURL)
	return nil
}

// URLs returns a copy of the collected log.
func (c *CollectStrategy) URLs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.urls))
	copy(out, c.urls)
	return out
}

// StubStrategy records success without doing anything. It never fails.
type StubStrategy struct{}

// Name implements OpenStrategy.
func (StubStrategy) Name() string { return StrategyStub }

// Open implements OpenStrategy.
func (StubStrategy) Open(context.Context, string, Request) error { return nil }
