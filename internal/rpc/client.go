// Copyright 2026 The Effect Docs Authors
// SPDX-License-Identifier: MIT

package rpc

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Client drives a protocol stream from the caller's side. It correlates
// responses to in-flight requests by id; the pending table is guarded so
// callers may issue requests from multiple goroutines even though the
// server answers them one at a time.
type Client struct {
	w io.Writer

	mu      sync.Mutex
	pending map[string]chan *Response
	closed  bool

	g *errgroup.Group
}

// NewClient starts a client over the given stream halves and begins
// reading responses.
func NewClient(r io.Reader, w io.Writer) *Client {
	c := &Client{
		w:       w,
		pending: make(map[string]chan *Response),
		g:       &errgroup.Group{},
	}
	c.g.Go(func() error { return c.readLoop(r) })
	return c
}

// readLoop delivers each response to the request waiting on its id.
// Responses with no matching pending entry are dropped.
func (c *Client) readLoop(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		var resp Response
		if err := json.Unmarshal(scanner.Bytes(), &resp); err != nil {
			continue
		}
		key := fmt.Sprint(resp.ID)
		c.mu.Lock()
		ch, ok := c.pending[key]
		if ok {
			delete(c.pending, key)
		}
		c.mu.Unlock()
		if ok {
			ch <- &resp
		}
	}

	// Stream ended: fail anything still waiting.
	c.mu.Lock()
	c.closed = true
	for key, ch := range c.pending {
		delete(c.pending, key)
		close(ch)
	}
	c.mu.Unlock()
	return scanner.Err()
}

// Call sends a request and blocks until its response arrives, ctx is
// cancelled, or the stream closes. A JSON-RPC error response is returned
// as an *Error.
func (c *Client) Call(ctx context.Context, method string, params any) (json.RawMessage, error) {
	id := uuid.NewString()
	ch := make(chan *Response, 1)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, fmt.Errorf("connection closed")
	}
	c.pending[id] = ch
	c.mu.Unlock()

	if err := c.send(Request{JSONRPC: "2.0", ID: id, Method: method, Params: marshalParams(params)}); err != nil {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
		return nil, err
	}

	select {
	case resp, ok := <-ch:
		if !ok {
			return nil, fmt.Errorf("connection closed before response to %s", method)
		}
		if resp.Error != nil {
			return nil, resp.Error
		}
		return resp.Result, nil
	case <-ctx.Done():
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
		return nil, ctx.Err()
	}
}

// Notify sends a notification; no response is expected.
func (c *Client) Notify(method string, params any) error {
	return c.send(Request{JSONRPC: "2.0", Method: method, Params: marshalParams(params)})
}

// Initialize runs the handshake: initialize, then
// notifications/initialized.
func (c *Client) Initialize(ctx context.Context) (*InitializeResult, error) {
	raw, err := c.Call(ctx, "initialize", map[string]any{
		"protocolVersion": ProtocolVersion,
		"clientInfo":      map[string]any{"name": "effect-docs-client"},
	})
	if err != nil {
		return nil, err
	}
	var result InitializeResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decoding initialize result: %w", err)
	}
	if err := c.Notify("notifications/initialized", nil); err != nil {
		return nil, err
	}
	return &result, nil
}

// Wait blocks until the read loop ends (the server side closed the
// stream) and returns its error.
func (c *Client) Wait() error {
	return c.g.Wait()
}

func (c *Client) send(req Request) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return writeLine(c.w, req)
}

func marshalParams(params any) json.RawMessage {
	if params == nil {
		return nil
	}
	data, err := json.Marshal(params)
	if err != nil {
		return nil
	}
	return data
}
