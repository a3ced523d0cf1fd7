// Package server implements the MCP (Model Context Protocol) server for color analysis tools.
//
// This package provides a JSON-RPC 2.0 server that exposes WCAG contrast math
// and image color extraction through the MCP protocol. It's designed to work
// with Claude and other MCP-compatible clients.
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
// The server provides 6 color tools organized into categories:
//
// Contrast Operations:
//   - contrast_ratio: WCAG 2.0 contrast ratio plus AA/AAA compliance
//   - relative_luminance: WCAG 2.0 relative luminance of a color
//   - suggest_text_color: Pick black or white text for a background
//
// Image Operations:
//   - average_color: Mean color of an image (file path, URL, or base64 blob)
//
// Conversion Operations:
//   - hex_to_rgb: Parse a hex string into RGB and HSL components
//   - rgb_to_hex: Format RGB components as canonical "#rrggbb"
//
// # State
//
// The server holds no per-image state: every average_color call rasterizes
// its source on a fresh scratch surface, and the contrast and conversion
// tools are pure functions of their arguments. There is no image cache.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
