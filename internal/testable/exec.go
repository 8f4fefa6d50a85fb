// Package testable provides interfaces for mocking external dependencies
// such as process launching in tests.
package testable

import "os/exec"

// CommandRunner abstracts exec.LookPath and fire-and-forget process
// launching so that callers (e.g., the browser open strategy) can be
// tested without spawning real processes.
type CommandRunner interface {
	// LookPath searches for an executable named file in the directories
	// named by the PATH environment variable.
	LookPath(file string) (string, error)

	// Start launches name with the given arguments and returns without
	// waiting for it to exit. The caller does not observe the process
	// outcome.
	Start(name string, args ...string) error
}

// RealCommandRunner is the production implementation that delegates to the
// os/exec package.
type RealCommandRunner struct{}

// LookPath wraps exec.LookPath.
func (r *RealCommandRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Start launches the command without waiting for it. The child is reaped
// in the background so it does not linger as a zombie.
func (r *RealCommandRunner) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...) //nolint:gosec // args are controlled by callers
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// DefaultRunner returns a production CommandRunner backed by the os/exec
// package.
func DefaultRunner() CommandRunner {
	return &RealCommandRunner{}
}
