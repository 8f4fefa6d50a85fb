// Copyright 2026 The Effect Docs Authors
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestLoad_NoFileUsesDefaultsAndEnv(t *testing.T) {
	cfg, err := load(filepath.Join(t.TempDir(), "missing.yaml"), envMap(nil))
	require.NoError(t, err)
	assert.Empty(t, cfg.OpenStrategy)
	assert.Empty(t, cfg.IssueRepo)
}

func TestLoad_FileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("open_strategy: stub\nissue_repo: acme/docs\n"), 0o600))

	cfg, err := load(path, envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, "stub", cfg.OpenStrategy)
	assert.Equal(t, "acme/docs", cfg.IssueRepo)
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("open_strategy: stub\n"), 0o600))

	cfg, err := load(path, envMap(map[string]string{
		EnvOpenStrategy: "collect",
		EnvGitHubToken:  "tok",
	}))
	require.NoError(t, err)
	assert.Equal(t, "collect", cfg.OpenStrategy)
	assert.Equal(t, "tok", cfg.GitHubToken)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("open_strategy: [not: valid\n"), 0o600))

	_, err := load(path, envMap(nil))
	assert.Error(t, err)
}

func TestGlobalConfigDir_HonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "effect-docs"), GlobalConfigDir())
}
