// Package server implements the MCP (Model Context Protocol) server for thumbor URL tools.
//
// This package provides a JSON-RPC 2.0 server that exposes thumbor URL
// building, responsive srcset generation and <img> rendering through the MCP
// protocol. No image is ever fetched: every tool is a pure string builder
// over the render and thumbor packages.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - thumbor_url: Build one processed-image URL
//   - thumbor_srcset: Build the candidate set and fallback src for a breakpoint ladder
//   - thumbor_img: Render an eager or lazy <img> element
//   - thumbor_sign: Compute the HMAC signature for a URL path
//
// The url, srcset and img tools take the same argument object as render.Props:
//
//	{
//	  "src": "https://cdn.example/photo.jpg",
//	  "server_url": "https://img.example",
//	  "options": {"smart_crop": true, "filters": [{"name": "quality", "args": [80]}]},
//	  "breakpoints": [320, 640, 1024],
//	  "lazy": true,
//	  "attributes": {"alt": "A photo", "sizes": "50vw"}
//	}
//
// server_url may be omitted when the server was started with a configured
// endpoint. Likewise a configured security key signs every URL unless the
// options carry an explicit auth_token.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string, e.g. the missing-endpoint message
//
// # Usage
//
//	r := render.New(cfg.ServerURL, cfg.SecurityKey, cfg.Breakpoints)
//	srv := server.New(r, server.WithLogger(log.Logger))
//	if err := srv.Run(); err != nil {
//	    log.Fatal().Err(err).Send()
//	}
package server
