// Copyright 2026 The Effect Docs Authors
// SPDX-License-Identifier: MIT

package rpc

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/effect-solutions/effect-docs/internal/docstore"
	"github.com/effect-solutions/effect-docs/internal/render"
	"github.com/effect-solutions/effect-docs/internal/tools"
)

// Resource URI scheme.
const (
	uriPrefix = "effect-docs://docs/"
	topicsURI = uriPrefix + "topics"
)

// maxLineBytes bounds a single protocol line. Requests are small; one
// megabyte is far beyond any legitimate call.
const maxLineBytes = 1 << 20

// state is the connection lifecycle. Only initialize is accepted while
// Uninitialized; tools and resources require Ready.
type state int

const (
	stateUninitialized state = iota
	stateInitPending         // initialize answered, awaiting notifications/initialized
	stateReady
	stateClosed
)

// Server serves one protocol stream at a time over a reader/writer pair.
type Server struct {
	store      *docstore.Store
	dispatcher *tools.Dispatcher
	version    string

	st state
}

// NewServer wires the front end to its collaborators.
func NewServer(store *docstore.Store, dispatcher *tools.Dispatcher, version string) *Server {
	return &Server{store: store, dispatcher: dispatcher, version: version}
}

// Serve reads newline-delimited JSON-RPC from r and writes responses to w
// until r is exhausted or ctx is cancelled. Lines that fail to parse as a
// protocol envelope are skipped; the stream stays usable. Each request is
// handled to completion before the next is read.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			s.st = stateClosed
			return err
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			slog.Debug("skipping malformed protocol line", "error", err)
			continue
		}
		if req.JSONRPC != "2.0" || req.Method == "" {
			slog.Debug("skipping envelope missing protocol fields", "method", req.Method)
			continue
		}

		if req.ID == nil {
			s.handleNotification(req)
			continue
		}
		resp := s.handleRequest(ctx, req)
		if err := writeLine(w, resp); err != nil {
			s.st = stateClosed
			return fmt.Errorf("writing response: %w", err)
		}
	}
	s.st = stateClosed
	return scanner.Err()
}

func (s *Server) handleNotification(req Request) {
	switch req.Method {
	case "notifications/initialized":
		if s.st == stateInitPending {
			s.st = stateReady
			slog.Debug("protocol ready")
		}
	default:
		slog.Debug("ignoring notification", "method", req.Method)
	}
}

func (s *Server) handleRequest(ctx context.Context, req Request) *Response {
	if req.Method == "initialize" {
		return s.handleInitialize(req)
	}
	if s.st != stateReady {
		return errorResponse(req.ID, CodeInvalidRequest, "server not initialized")
	}

	switch req.Method {
	case "tools/list":
		return resultResponse(req.ID, map[string]any{"tools": s.dispatcher.Definitions()})
	case "tools/call":
		return s.handleToolCall(ctx, req)
	case "resources/list":
		return resultResponse(req.ID, map[string]any{"resources": s.listResources()})
	case "resources/read":
		return s.handleResourceRead(req)
	default:
		return errorResponse(req.ID, CodeMethodNotFound, fmt.Sprintf("method not found: %q", req.Method))
	}
}

func (s *Server) handleInitialize(req Request) *Response {
	if s.st != stateUninitialized {
		return errorResponse(req.ID, CodeInvalidRequest, "already initialized")
	}
	s.st = stateInitPending
	return resultResponse(req.ID, InitializeResult{
		ProtocolVersion: ProtocolVersion,
		Capabilities: Capabilities{
			Tools:     map[string]any{},
			Resources: map[string]any{},
		},
		ServerInfo: ServerInfo{Name: ServerName, Version: s.version},
	})
}

func (s *Server) handleToolCall(ctx context.Context, req Request) *Response {
	var params struct {
		Name      string         `json:"name"`
		Arguments map[string]any `json:"arguments"`
	}
	if err := json.Unmarshal(req.Params, &params); err != nil || params.Name == "" {
		return errorResponse(req.ID, CodeInvalidParams, "tools/call requires a tool name")
	}

	res, err := s.dispatcher.Invoke(ctx, params.Name, params.Arguments)
	if err != nil {
		var (
			unknownTool *tools.UnknownToolError
			invalidArg  *tools.InvalidArgumentError
		)
		switch {
		case errors.As(err, &unknownTool), errors.As(err, &invalidArg):
			return errorResponse(req.ID, CodeInvalidParams, err.Error())
		default:
			return errorResponse(req.ID, CodeInternalError, err.Error())
		}
	}
	return resultResponse(req.ID, ToolCallResult{
		Content:           []ToolContent{{Type: "text", Text: res.Text}},
		StructuredContent: res.Structured,
	})
}

func (s *Server) listResources() []ResourceInfo {
	docs := s.store.All()
	resources := make([]ResourceInfo, 0, len(docs)+1)
	resources = append(resources, ResourceInfo{
		URI:         topicsURI,
		Name:        "Topic index",
		Description: "One line per document: slug, title, description",
		MimeType:    "text/markdown",
	})
	for _, doc := range docs {
		resources = append(resources, ResourceInfo{
			URI:         uriPrefix + doc.Slug,
			Name:        doc.Title,
			Description: doc.Description,
			MimeType:    "text/markdown",
		})
	}
	return resources
}

func (s *Server) handleResourceRead(req Request) *Response {
	var params struct {
		URI string `json:"uri"`
	}
	if err := json.Unmarshal(req.Params, &params); err != nil || params.URI == "" {
		return errorResponse(req.ID, CodeInvalidParams, "resources/read requires a uri")
	}

	var text string
	switch {
	case params.URI == topicsURI:
		text = render.List(s.store)
	case strings.HasPrefix(params.URI, uriPrefix):
		slug := strings.TrimPrefix(params.URI, uriPrefix)
		rendered, err := render.Docs(s.store, []string{slug})
		if err != nil {
			return errorResponse(req.ID, CodeInvalidParams, err.Error())
		}
		text = rendered
	default:
		return errorResponse(req.ID, CodeInvalidParams, fmt.Sprintf("unknown resource uri: %q", params.URI))
	}

	return resultResponse(req.ID, map[string]any{
		"contents": []ResourceContent{{URI: params.URI, MimeType: "text/markdown", Text: text}},
	})
}

func resultResponse(id any, result any) *Response {
	data, err := json.Marshal(result)
	if err != nil {
		return errorResponse(id, CodeInternalError, fmt.Sprintf("encoding result: %v", err))
	}
	return &Response{JSONRPC: "2.0", ID: id, Result: data}
}

func errorResponse(id any, code int, message string) *Response {
	return &Response{JSONRPC: "2.0", ID: id, Error: &Error{Code: code, Message: message}}
}

func writeLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
