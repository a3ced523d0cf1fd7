package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Contrast Operations
		{
			Name:        "contrast_ratio",
			Description: "Compute the WCAG 2.0 contrast ratio between two colors and report which conformance levels (AA, AAA, large text) it satisfies. The ratio ranges from 1:1 (identical) to 21:1 (black on white).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"foreground": map[string]interface{}{
						"type":        "string",
						"description": "Foreground color as 6-digit hex, with or without leading # (e.g. \"#ff5733\")",
					},
					"background": map[string]interface{}{
						"type":        "string",
						"description": "Background color as 6-digit hex, with or without leading #",
					},
				},
				"required": []string{"foreground", "background"},
			},
		},
		{
			Name:        "relative_luminance",
			Description: "Compute the WCAG 2.0 relative luminance of a color: its perceptually weighted brightness in linear space, from 0.0 (black) to 1.0 (white).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Color as 6-digit hex, with or without leading #",
					},
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "suggest_text_color",
			Description: "Pick black or white text for a given background color, whichever has the higher WCAG contrast ratio.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"background": map[string]interface{}{
						"type":        "string",
						"description": "Background color as 6-digit hex, with or without leading #",
					},
				},
				"required": []string{"background"},
			},
		},

		// Image Operations
		{
			Name:        "average_color",
			Description: "Compute the average color of an image by rasterizing it and taking the unweighted per-channel mean of all pixels. The image may be a local file path, an http(s) URL, or base64-encoded bytes.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"source": map[string]interface{}{
						"type":        "string",
						"description": "File path or http(s) URL of the image. Mutually exclusive with data_base64.",
					},
					"data_base64": map[string]interface{}{
						"type":        "string",
						"description": "Base64-encoded image bytes (PNG, JPEG, or GIF). Mutually exclusive with source.",
					},
				},
			},
		},

		// Conversion Operations
		{
			Name:        "hex_to_rgb",
			Description: "Parse a 6-digit hex color string into RGB components (plus an HSL rendering). Accepts upper or lower case, with or without leading #.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hex": map[string]interface{}{
						"type":        "string",
						"description": "Hex color string (e.g. \"ff5733\" or \"#FF5733\")",
					},
				},
				"required": []string{"hex"},
			},
		},
		{
			Name:        "rgb_to_hex",
			Description: "Format RGB components as a canonical lowercase \"#rrggbb\" hex string.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"r": map[string]interface{}{
						"type":        "integer",
						"description": "Red component (0-255)",
					},
					"g": map[string]interface{}{
						"type":        "integer",
						"description": "Green component (0-255)",
					},
					"b": map[string]interface{}{
						"type":        "integer",
						"description": "Blue component (0-255)",
					},
				},
				"required": []string{"r", "g", "b"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
