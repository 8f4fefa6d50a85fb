// Copyright 2026 The Effect Docs Authors
// SPDX-License-Identifier: MIT

package tools

import "fmt"

// UnknownToolError reports a tool name the dispatcher does not recognize.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool: %q", e.Name)
}

// InvalidArgumentError reports a missing, empty, or mistyped tool argument.
type InvalidArgumentError struct {
	Tool   string
	Arg    string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q for tool %q: %s", e.Arg, e.Tool, e.Reason)
}

// ExecutionError wraps an unexpected failure inside a tool handler. It is
// caught at the dispatcher boundary and never propagates past it.
type ExecutionError struct {
	Tool string
	Err  error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("tool %q failed: %v", e.Tool, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }
