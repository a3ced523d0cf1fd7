package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/ironsheep/color-tools-mcp/internal/colorimetry"
	"github.com/ironsheep/color-tools-mcp/internal/raster"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "contrast_ratio", "average_color").
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
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

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
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Parses color arguments with the colorimetry codec
//  3. Calls the appropriate colorimetry/raster function
//  4. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Contrast Operations
	case "contrast_ratio":
		return s.handleContrastRatio(args)
	case "relative_luminance":
		return s.handleRelativeLuminance(args)
	case "suggest_text_color":
		return s.handleSuggestTextColor(args)

	// Image Operations
	case "average_color":
		return s.handleAverageColor(args)

	// Conversion Operations
	case "hex_to_rgb":
		return s.handleHexToRGB(args)
	case "rgb_to_hex":
		return s.handleRGBToHex(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Contrast Handlers ===

type contrastRatioArgs struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

// ContrastRatioResult pairs the contrast ratio of two colors with the WCAG
// conformance levels that ratio satisfies.
type ContrastRatioResult struct {
	Foreground colorimetry.ColorResult      `json:"foreground"`
	Background colorimetry.ColorResult      `json:"background"`
	Ratio      float64                      `json:"ratio"`
	Compliance colorimetry.ComplianceResult `json:"compliance"`
}

func (s *Server) handleContrastRatio(args json.RawMessage) (interface{}, error) {
	var a contrastRatioArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	fg, err := colorimetry.ParseHex(a.Foreground)
	if err != nil {
		return nil, fmt.Errorf("foreground: %w", err)
	}
	bg, err := colorimetry.ParseHex(a.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	ratio := colorimetry.ContrastRatio(fg, bg)
	return &ContrastRatioResult{
		Foreground: colorimetry.Result(fg),
		Background: colorimetry.Result(bg),
		Ratio:      ratio,
		Compliance: colorimetry.Compliance(ratio),
	}, nil
}

type relativeLuminanceArgs struct {
	Color string `json:"color"`
}

// LuminanceResult reports the relative luminance of a color.
type LuminanceResult struct {
	Color     colorimetry.ColorResult `json:"color"`
	Luminance float64                 `json:"luminance"` // 0.0 (black) to 1.0 (white)
}

func (s *Server) handleRelativeLuminance(args json.RawMessage) (interface{}, error) {
	var a relativeLuminanceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	c, err := colorimetry.ParseHex(a.Color)
	if err != nil {
		return nil, err
	}

	return &LuminanceResult{
		Color:     colorimetry.Result(c),
		Luminance: colorimetry.RelativeLuminance(c),
	}, nil
}

type suggestTextColorArgs struct {
	Background string `json:"background"`
}

// TextColorResult reports the recommended text color for a background.
type TextColorResult struct {
	Background colorimetry.ColorResult `json:"background"`
	TextColor  colorimetry.ColorResult `json:"text_color"`
	Ratio      float64                 `json:"ratio"` // Contrast of text over background
}

func (s *Server) handleSuggestTextColor(args json.RawMessage) (interface{}, error) {
	var a suggestTextColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	bg, err := colorimetry.ParseHex(a.Background)
	if err != nil {
		return nil, err
	}

	text := colorimetry.SuggestTextColor(bg)
	return &TextColorResult{
		Background: colorimetry.Result(bg),
		TextColor:  colorimetry.Result(text),
		Ratio:      colorimetry.ContrastRatio(text, bg),
	}, nil
}

// === Image Handlers ===

type averageColorArgs struct {
	Source     string `json:"source"`
	DataBase64 string `json:"data_base64"`
}

// AverageColorResult reports the mean color of an image.
type AverageColorResult struct {
	Color colorimetry.ColorResult `json:"color"`
}

func (s *Server) handleAverageColor(args json.RawMessage) (interface{}, error) {
	var a averageColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var src raster.Source
	switch {
	case a.Source != "" && a.DataBase64 != "":
		return nil, fmt.Errorf("source and data_base64 are mutually exclusive")
	case a.Source != "":
		src = raster.FromURL(a.Source)
	case a.DataBase64 != "":
		data, err := base64.StdEncoding.DecodeString(a.DataBase64)
		if err != nil {
			return nil, fmt.Errorf("invalid base64 image data: %w", err)
		}
		src = raster.FromBlob(data)
	default:
		return nil, fmt.Errorf("either source or data_base64 is required")
	}

	avg, err := raster.AverageColor(context.Background(), s.raster, src)
	if err != nil {
		return nil, err
	}

	return &AverageColorResult{Color: colorimetry.Result(avg)}, nil
}

// === Conversion Handlers ===

type hexToRGBArgs struct {
	Hex string `json:"hex"`
}

func (s *Server) handleHexToRGB(args json.RawMessage) (interface{}, error) {
	var a hexToRGBArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	c, err := colorimetry.ParseHex(a.Hex)
	if err != nil {
		return nil, err
	}

	return colorimetry.Result(c), nil
}

type rgbToHexArgs struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

func (s *Server) handleRGBToHex(args json.RawMessage) (interface{}, error) {
	var a rgbToHexArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	for _, v := range []int{a.R, a.G, a.B} {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("component %d outside range 0-255", v)
		}
	}

	c := colorimetry.RGB{R: uint8(a.R), G: uint8(a.G), B: uint8(a.B)}
	return colorimetry.Result(c), nil
}
