package server

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ironsheep/thumbor-tools-mcp/internal/render"
)

const (
	testServer = "https://img.example"
	testSource = "https://cdn.example/photo.jpg"
)

func newTestServer(opts ...Option) *Server {
	return New(render.New(testServer, "", []int{160, 480}), opts...)
}

func TestNew(t *testing.T) {
	s := newTestServer()
	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.renderer == nil {
		t.Fatal("New() did not keep the renderer")
	}
	if s.version != "dev" {
		t.Errorf("version: got %q, want dev", s.version)
	}
}

func TestNew_Options(t *testing.T) {
	s := newTestServer(WithVersion("1.2.3"), WithDefaultLazy(true))
	if s.version != "1.2.3" {
		t.Errorf("version: got %q, want 1.2.3", s.version)
	}
	if !s.defaultLazy {
		t.Error("defaultLazy: got false, want true")
	}
}

func TestMCPRequest_Unmarshal(t *testing.T) {
	tests := []struct {
		name       string
		json       string
		wantID     interface{}
		wantMethod string
	}{
		{
			"string id",
			`{"jsonrpc":"2.0","id":"test-1","method":"tools/list"}`,
			"test-1",
			"tools/list",
		},
		{
			"number id",
			`{"jsonrpc":"2.0","id":42,"method":"ping"}`,
			float64(42), // JSON numbers decode as float64
			"ping",
		},
		{
			"null id",
			`{"jsonrpc":"2.0","id":null,"method":"initialize"}`,
			nil,
			"initialize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req MCPRequest
			if err := json.Unmarshal([]byte(tt.json), &req); err != nil {
				t.Fatalf("Failed to unmarshal: %v", err)
			}

			if req.ID != tt.wantID {
				t.Errorf("ID: got %v (%T), want %v (%T)", req.ID, req.ID, tt.wantID, tt.wantID)
			}
			if req.Method != tt.wantMethod {
				t.Errorf("Method: got %s, want %s", req.Method, tt.wantMethod)
			}
		})
	}
}

func TestHandleRequest_Initialize(t *testing.T) {
	s := newTestServer(WithVersion("9.9.9"))
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "initialize"})

	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}
	if resp.ID != 1 {
		t.Errorf("ID: got %v, want 1", resp.ID)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	if result["protocolVersion"] != protocolVersion {
		t.Errorf("protocolVersion: got %v", result["protocolVersion"])
	}

	info := result["serverInfo"].(map[string]interface{})
	if info["name"] != serverName || info["version"] != "9.9.9" {
		t.Errorf("serverInfo: got %v", info)
	}
}

func TestHandleRequest_Ping(t *testing.T) {
	s := newTestServer()
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: "ping-1", Method: "ping"})

	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}
	if resp.ID != "ping-1" {
		t.Errorf("ID: got %v, want ping-1", resp.ID)
	}
}

func TestHandleRequest_ToolsList(t *testing.T) {
	s := newTestServer()
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/list"})

	if resp == nil || resp.Error != nil {
		t.Fatalf("unexpected response: %+v", resp)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	toolsList, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}
	if len(toolsList) != 4 {
		t.Errorf("Expected 4 tools, got %d", len(toolsList))
	}
}

func TestHandleRequest_NotificationsInitialized(t *testing.T) {
	s := newTestServer()
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", Method: "notifications/initialized"})

	if resp != nil {
		t.Error("notifications/initialized should return nil response")
	}
}

func TestHandleRequest_MethodNotFound(t *testing.T) {
	s := newTestServer()
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 7, Method: "resources/list"})

	if resp == nil || resp.Error == nil {
		t.Fatal("expected an error response")
	}
	if resp.Error.Code != codeMethodNotFound {
		t.Errorf("Error.Code: got %d, want %d", resp.Error.Code, codeMethodNotFound)
	}
	if !strings.Contains(resp.Error.Message, "resources/list") {
		t.Errorf("Error.Message: got %q", resp.Error.Message)
	}
}

func TestServe(t *testing.T) {
	in := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		``,
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"thumbor_url","arguments":{"src":"` + testSource + `"}}}`,
		`not json`,
		`{"jsonrpc":"2.0","id":3,"method":"ping"}`,
	}, "\n")

	var out bytes.Buffer
	if err := newTestServer().Serve(strings.NewReader(in), &out); err != nil {
		t.Fatalf("Serve: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 responses, got %d:\n%s", len(lines), out.String())
	}

	var parseErr MCPResponse
	if err := json.Unmarshal([]byte(lines[2]), &parseErr); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if parseErr.Error == nil || parseErr.Error.Code != codeParseError {
		t.Errorf("expected parse error, got %s", lines[2])
	}
	if parseErr.ID != nil {
		t.Errorf("parse error ID: got %v, want null", parseErr.ID)
	}

	if !strings.Contains(lines[1], `https://img.example/unsafe/0x0/cdn.example/photo.jpg`) {
		t.Errorf("tools/call response missing URL: %s", lines[1])
	}
}

func TestMCPError_OmitsEmptyData(t *testing.T) {
	s := newTestServer()
	data, err := json.Marshal(s.errorResponse(1, codeMethodNotFound, "Method not found", ""))
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	if strings.Contains(string(data), `"data"`) {
		t.Errorf("data should be omitted: %s", data)
	}
}
