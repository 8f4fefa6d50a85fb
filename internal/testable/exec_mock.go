package testable

import "strings"

// MockCommandRunner is a test double for CommandRunner. It records every
// launch and can simulate a missing executable or a failing start.
type MockCommandRunner struct {
	// LookPathErr, when non-nil, is returned by LookPath for any file.
	LookPathErr error

	// LookPathResult is returned as the path when LookPathErr is nil.
	// Defaults to "/usr/bin/" + file.
	LookPathResult string

	// StartErr, when non-nil, is returned by every Start call.
	StartErr error

	// Calls records each Start invocation as the command name and all
	// arguments joined by spaces, for assertion purposes.
	Calls []string
}

// LookPath returns the configured result or error.
func (m *MockCommandRunner) LookPath(file string) (string, error) {
	if m.LookPathErr != nil {
		return "", m.LookPathErr
	}
	if m.LookPathResult != "" {
		return m.LookPathResult, nil
	}
	return "/usr/bin/" + file, nil
}

// Start records the call and returns the configured error, launching
// nothing.
func (m *MockCommandRunner) Start(name string, args ...string) error {
	m.Calls = append(m.Calls, strings.Join(append([]string{name}, args...), " "))
	return m.StartErr
}
