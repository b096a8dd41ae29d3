package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var srcProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute URL of the source image. Only its host and path are used.",
}

var serverURLProperty = map[string]interface{}{
	"type":        "string",
	"description": "Thumbor server base URL. Overrides the configured server_url.",
}

var breakpointsProperty = map[string]interface{}{
	"type":        "array",
	"items":       map[string]interface{}{"type": "integer", "minimum": 1},
	"minItems":    1,
	"description": "Candidate widths in pixels, in output order. The last one is the fallback src. Defaults to the configured ladder.",
}

// optionsSchema describes thumbor.Options.
var optionsSchema = map[string]interface{}{
	"type":        "object",
	"description": "Transformation options. Every field is optional.",
	"properties": map[string]interface{}{
		"auth_token": map[string]interface{}{
			"type":        "string",
			"description": "Precomputed signature. Replaces signing and 'unsafe'.",
		},
		"size": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"width":  map[string]interface{}{"type": "integer"},
				"height": map[string]interface{}{"type": "integer"},
			},
			"description": "Target size. 0 keeps the aspect ratio on that axis.",
		},
		"trim": map[string]interface{}{"type": "boolean"},
		"trim_source": map[string]interface{}{
			"type": "string",
			"enum": []string{"top-left", "bottom-right"},
		},
		"crop": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"top_left":     pointSchema,
				"bottom_right": pointSchema,
			},
			"description": "Manual crop in source pixel coordinates.",
		},
		"fit_in": map[string]interface{}{"type": "boolean"},
		"horizontal_align": map[string]interface{}{
			"type": "string",
			"enum": []string{"left", "center", "right"},
		},
		"vertical_align": map[string]interface{}{
			"type": "string",
			"enum": []string{"top", "middle", "bottom"},
		},
		"smart_crop": map[string]interface{}{"type": "boolean"},
		"filters": map[string]interface{}{
			"type": "array",
			"items": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{"type": "string"},
					"args": map[string]interface{}{
						"type":  "array",
						"items": map[string]interface{}{"type": []string{"string", "number", "boolean"}},
					},
				},
				"required": []string{"name"},
			},
			"description": "Filters applied in order, e.g. {\"name\":\"quality\",\"args\":[80]}.",
		},
	},
}

var pointSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"x": map[string]interface{}{"type": "integer"},
		"y": map[string]interface{}{"type": "integer"},
	},
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "thumbor_url",
			Description: "Build a single thumbor image URL for a source image and transformation options.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"src":        srcProperty,
					"server_url": serverURLProperty,
					"options":    optionsSchema,
				},
				"required": []string{"src"},
			},
		},
		{
			Name:        "thumbor_srcset",
			Description: "Build a responsive srcset with one thumbor URL per breakpoint width, plus the fallback src.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"src":         srcProperty,
					"server_url":  serverURLProperty,
					"options":     optionsSchema,
					"breakpoints": breakpointsProperty,
				},
				"required": []string{"src"},
			},
		},
		{
			Name:        "thumbor_img",
			Description: "Render a responsive <img> element. Lazy mode emits data-src/data-srcset/data-sizes and the 'lazyload' class for lazysizes.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"src":         srcProperty,
					"server_url":  serverURLProperty,
					"options":     optionsSchema,
					"breakpoints": breakpointsProperty,
					"lazy": map[string]interface{}{
						"type":        "boolean",
						"description": "Render for deferred loading. Defaults to the configured value.",
					},
					"attributes": map[string]interface{}{
						"type":                 "object",
						"additionalProperties": map[string]interface{}{"type": []string{"string", "number", "boolean"}},
						"description":          "Extra attributes such as alt, class or sizes. src and srcset cannot be overridden.",
					},
				},
				"required": []string{"src"},
			},
		},
		{
			Name:        "thumbor_sign",
			Description: "Compute the thumbor HMAC-SHA1 signature for a URL path (everything after the signature segment).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Path to sign, e.g. 300x0/smart/cdn.example/photo.jpg",
					},
					"key": map[string]interface{}{
						"type":        "string",
						"description": "Security key. Defaults to the configured security_key.",
					},
				},
				"required": []string{"path"},
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
