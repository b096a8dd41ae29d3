package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ironsheep/thumbor-tools-mcp/internal/render"
	"github.com/ironsheep/thumbor-tools-mcp/internal/thumbor"
)

// ErrNoSecurityKey is returned by thumbor_sign when neither the call nor the
// server configuration supplies a key.
var ErrNoSecurityKey = errors.New("no security key: pass \"key\" or configure security_key")

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "thumbor_url", "thumbor_img").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Warn().Err(err).Str("tool", params.Name).Msg("tool execution failed")
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}
	s.logger.Debug().Str("tool", params.Name).Msg("tool executed")

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "thumbor_url":
		return s.handleURL(args)
	case "thumbor_srcset":
		return s.handleSrcset(args)
	case "thumbor_img":
		return s.handleImg(args)
	case "thumbor_sign":
		return s.handleSign(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return errors.New("missing arguments")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// URLResult is the thumbor_url result.
type URLResult struct {
	URL string `json:"url"`
}

func (s *Server) handleURL(args json.RawMessage) (interface{}, error) {
	var p render.Props
	if err := decodeArgs(args, &p); err != nil {
		return nil, err
	}
	u, err := s.renderer.URL(p)
	if err != nil {
		return nil, err
	}
	return URLResult{URL: u}, nil
}

func (s *Server) handleSrcset(args json.RawMessage) (interface{}, error) {
	var p render.Props
	if err := decodeArgs(args, &p); err != nil {
		return nil, err
	}
	return s.renderer.ResponsiveSet(p)
}

type imgArgs struct {
	render.Props
	// Lazy shadows Props.Lazy so that an absent value falls back to the
	// server default.
	Lazy *bool `json:"lazy"`
}

// ImgResult is the thumbor_img result.
type ImgResult struct {
	HTML string `json:"html"`
}

func (s *Server) handleImg(args json.RawMessage) (interface{}, error) {
	var a imgArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	p := a.Props
	p.Lazy = s.defaultLazy
	if a.Lazy != nil {
		p.Lazy = *a.Lazy
	}

	html, err := s.renderer.Image(p)
	if err != nil {
		return nil, err
	}
	return ImgResult{HTML: html}, nil
}

type signArgs struct {
	Path string `json:"path"`
	Key  string `json:"key"`
}

// SignResult is the thumbor_sign result.
type SignResult struct {
	Path      string `json:"path"`
	Signature string `json:"signature"`
}

func (s *Server) handleSign(args json.RawMessage) (interface{}, error) {
	var a signArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	path := strings.TrimPrefix(a.Path, "/")
	if path == "" {
		return nil, errors.New("path is required")
	}

	signer := s.renderer.Signer
	if a.Key != "" {
		signer = thumbor.NewSigner(a.Key)
	}
	if signer == nil {
		return nil, ErrNoSecurityKey
	}

	return SignResult{Path: path, Signature: signer.Sign(path)}, nil
}
