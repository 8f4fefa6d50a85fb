package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with the given args and captures output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Isolate from any real user config and force the no-op strategy.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("EFFECT_DOCS_OPEN", "stub")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append([]string{"--no-color"}, args...))
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	want := map[string]bool{
		"list": false, "show": false, "search": false,
		"issue": false, "guide": false, "mcp": false, "version": false,
	}
	for _, cmd := range rootCmd.Commands() {
		name := strings.Fields(cmd.Use)[0]
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, found := range want {
		assert.True(t, found, "command %q should be registered", name)
	}
}

func TestListCmd_OneLinePerDocument(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "error-handling — Error Handling")
	assert.Contains(t, out, "testing — Testing Effect Code")
}

func TestShowCmd_SingleDocument(t *testing.T) {
	out, err := execute(t, "show", "error-handling")
	require.NoError(t, err)
	assert.Contains(t, out, "(error-handling)")
	assert.Contains(t, out, "Error Handling")
}

func TestShowCmd_PreservesRequestedOrder(t *testing.T) {
	out, err := execute(t, "show", "testing", "error-handling")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "(testing)"), strings.Index(out, "(error-handling)"))
}

func TestShowCmd_UnknownSlugFailsNonZero(t *testing.T) {
	_, err := execute(t, "show", "nonexistent")
	require.Error(t, err)

	var ece *exitCodeError
	require.ErrorAs(t, err, &ece)
	assert.Equal(t, ExitFailure, ece.code)
	assert.Contains(t, ece.msg, "nonexistent")
}

func TestSearchCmd_FindsTitleMatch(t *testing.T) {
	out, err := execute(t, "search", "error", "handling")
	require.NoError(t, err)
	assert.Contains(t, out, "error-handling")
}

func TestSearchCmd_NoMatches(t *testing.T) {
	out, err := execute(t, "search", "xyzzy-nothing")
	require.NoError(t, err)
	assert.Contains(t, out, "No matching documents")
}

// resetIssueFlags clears the sticky flag variables between executions.
func resetIssueFlags() {
	issueCategory, issueTitle, issueDescription = "", "", ""
}

func TestIssueCmd_StubStrategy(t *testing.T) {
	resetIssueFlags()
	out, err := execute(t, "issue",
		"--category", "Fix",
		"--title", "Broken link",
		"--description", "Example body")
	require.NoError(t, err)
	assert.Contains(t, out, "issues/new")
	assert.Contains(t, out, "stub")
}

func TestIssueCmd_MissingFieldFailsNonZero(t *testing.T) {
	resetIssueFlags()
	_, err := execute(t, "issue", "--category", "Fix", "--title", "x")

	var ece *exitCodeError
	require.ErrorAs(t, err, &ece)
	assert.Equal(t, ExitFailure, ece.code)
	assert.Contains(t, ece.msg, "description")
}

func TestGuideCmd_ListsTools(t *testing.T) {
	out, err := execute(t, "guide")
	require.NoError(t, err)
	assert.Contains(t, out, "search_effect_solutions")
	assert.Contains(t, out, "open_issue")
	assert.Contains(t, out, "get_help")
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "effect-docs")
	assert.Contains(t, out, Version)
}

func TestMCPServeCmd_IsRegistered(t *testing.T) {
	found := false
	for _, cmd := range mcpCmd.Commands() {
		if cmd.Use == "serve" {
			found = true
			break
		}
	}
	assert.True(t, found, "serve command should be registered on mcpCmd")
}

func TestMCPServeCmd_RejectsArgs(t *testing.T) {
	err := mcpServeCmd.Args(mcpServeCmd, []string{"extra"})
	assert.Error(t, err)
}

func TestMain_ExitCodeErrorUnwraps(t *testing.T) {
	err := failf("boom %d", 42)
	var ece *exitCodeError
	require.True(t, errors.As(err, &ece))
	assert.Equal(t, ExitFailure, ece.code)
	assert.Equal(t, "boom 42", ece.msg)
}
