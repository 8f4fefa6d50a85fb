// Copyright 2026 The Effect Docs Authors
// SPDX-License-Identifier: MIT

// Package rpc implements the newline-delimited JSON-RPC 2.0 front end that
// exposes the document tools and resources, plus a small client for
// driving it.
//
// One logical worker serves each stream: requests are decoded, handled,
// and answered one at a time. Malformed input lines are skipped — the
// stream stays usable — and requests arriving before the initialize
// handshake completes are rejected with a protocol error.
package rpc

import "encoding/json"

// ProtocolVersion is the protocol revision reported by initialize.
const ProtocolVersion = "2025-06-18"

// ServerName identifies this server in the initialize response.
const ServerName = "effect-docs"

// JSON-RPC 2.0 error codes.
const (
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Request is an incoming call or notification. A notification carries no
// id and expects no response.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response answers exactly one request, echoing its id.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// Error is a JSON-RPC error object.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return e.Message }

// InitializeResult is the payload answering an initialize request.
type InitializeResult struct {
	ProtocolVersion string       `json:"protocolVersion"`
	Capabilities    Capabilities `json:"capabilities"`
	ServerInfo      ServerInfo   `json:"serverInfo"`
}

// Capabilities advertises what the server supports.
type Capabilities struct {
	Tools     map[string]any `json:"tools"`
	Resources map[string]any `json:"resources"`
}

// ServerInfo names the server implementation.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ToolContent is one element of a tools/call result's content list.
type ToolContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ToolCallResult is the payload answering tools/call. Content carries the
// text rendering; StructuredContent carries the same data as an object.
type ToolCallResult struct {
	Content           []ToolContent `json:"content"`
	StructuredContent any           `json:"structuredContent"`
}

// ResourceInfo describes one readable resource for resources/list.
type ResourceInfo struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MimeType    string `json:"mimeType"`
}

// ResourceContent is one element of a resources/read result.
type ResourceContent struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
}
