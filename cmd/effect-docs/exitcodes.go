package main

import "fmt"

// Exit codes for the effect-docs CLI.
const (
	ExitOK      = 0 // Command succeeded.
	ExitFailure = 1 // Unknown slug, invalid argument, or any other failure.
)

// exitCodeError carries a specific exit code up to main.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// failf builds an exitCodeError with ExitFailure.
func failf(format string, args ...any) error {
	return &exitCodeError{code: ExitFailure, msg: fmt.Sprintf(format, args...)}
}
