// Copyright 2026 The Effect Docs Authors
// SPDX-License-Identifier: MIT

// Package config resolves process configuration: which open strategy the
// issue-filing service uses and which repository issues target.
//
// Precedence: environment variables win over the global config file, which
// wins over defaults. Configuration is read once at process start.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvOpenStrategy selects the open strategy: browser (default), collect,
// stub, or api.
const EnvOpenStrategy = "EFFECT_DOCS_OPEN"

// EnvGitHubToken supplies the token for the api strategy.
const EnvGitHubToken = "GITHUB_TOKEN"

// Config is the resolved process configuration.
type Config struct {
	// OpenStrategy names the issue open strategy. Empty means browser.
	OpenStrategy string `yaml:"open_strategy"`
	// IssueRepo overrides the "owner/name" repository issues are filed
	// against. Empty means the built-in default.
	IssueRepo string `yaml:"issue_repo"`
	// GitHubToken is never read from the config file, only from the
	// environment.
	GitHubToken string `yaml:"-"`
}

// GlobalConfigDir returns the directory for global effect-docs
// configuration: $XDG_CONFIG_HOME/effect-docs if set, otherwise
// ~/.config/effect-docs.
func GlobalConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "effect-docs")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "effect-docs")
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() string {
	return filepath.Join(GlobalConfigDir(), "config.yaml")
}

// Load resolves configuration from the global file and the environment.
// A missing config file is not an error.
func Load() (*Config, error) {
	return load(GlobalConfigPath(), os.Getenv)
}

func load(path string, getenv func(string) string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path) //nolint:gosec // user config path
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	case errors.Is(err, fs.ErrNotExist):
		// No file; defaults plus environment.
	default:
		return nil, err
	}

	if v := getenv(EnvOpenStrategy); v != "" {
		cfg.OpenStrategy = v
	}
	cfg.GitHubToken = getenv(EnvGitHubToken)
	return cfg, nil
}
