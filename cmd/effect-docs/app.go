package main

import (
	"fmt"

	"github.com/effect-solutions/effect-docs/internal/config"
	"github.com/effect-solutions/effect-docs/internal/docstore"
	"github.com/effect-solutions/effect-docs/internal/issue"
	"github.com/effect-solutions/effect-docs/internal/search"
	"github.com/effect-solutions/effect-docs/internal/tools"
)

// app holds the wired components every command works against. The corpus
// is loaded once here; a load failure aborts the command — it is the one
// fatal condition in the program.
type app struct {
	cfg        *config.Config
	store      *docstore.Store
	index      *search.Index
	issues     *issue.Service
	dispatcher *tools.Dispatcher
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	store, err := docstore.New()
	if err != nil {
		return nil, fmt.Errorf("loading document corpus: %w", err)
	}

	strategy, err := issue.FromName(cfg.OpenStrategy, cfg.GitHubToken)
	if err != nil {
		return nil, err
	}
	issues := issue.NewService(cfg.IssueRepo, strategy)

	index := search.NewIndex(store)
	return &app{
		cfg:        cfg,
		store:      store,
		index:      index,
		issues:     issues,
		dispatcher: tools.NewDispatcher(index, issues),
	}, nil
}
