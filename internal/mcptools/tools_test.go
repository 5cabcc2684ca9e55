package mcptools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/vaultpass/vaultpass-engine/internal/config"
	"github.com/vaultpass/vaultpass-engine/internal/model"
	"github.com/vaultpass/vaultpass-engine/internal/service"
	"github.com/vaultpass/vaultpass-engine/internal/strength"
)

func testServer(t *testing.T) *server.MCPServer {
	t.Helper()
	rt, err := service.NewRuntime(config.DefaultEngine(), nil, nil)
	if err != nil {
		t.Fatalf("NewRuntime: %v", err)
	}
	s := server.NewMCPServer("test", "1.0.0")
	Register(s, service.NewGeneratorService(rt), service.NewStrengthService(rt))
	return s
}

// callTool calls a registered tool via the MCPServer's HandleMessage.
func callTool(t *testing.T, s *server.MCPServer, name string, args map[string]any) (*mcp.CallToolResult, error) {
	t.Helper()

	reqJSON, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  "tools/call",
		"params": map[string]any{
			"name":      name,
			"arguments": args,
		},
	})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	respBytes, err := json.Marshal(s.HandleMessage(context.Background(), reqJSON))
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}

	var resp struct {
		Result json.RawMessage `json:"result"`
		Error  *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(respBytes, &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("RPC error %d: %s", resp.Error.Code, resp.Error.Message)
	}

	var result mcp.CallToolResult
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	return &result, nil
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	t.Fatal("no text content in result")
	return ""
}

func TestGeneratePassword(t *testing.T) {
	s := testServer(t)

	res, err := callTool(t, s, "generate_password", map[string]any{
		"length":  24,
		"symbols": false,
	})
	if err != nil {
		t.Fatalf("callTool: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, res))
	}

	var resp model.GenerateResponse
	if err := json.Unmarshal([]byte(resultText(t, res)), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Password) != 24 {
		t.Errorf("expected 24 characters, got %d", len(resp.Password))
	}
	if strings.ContainsAny(resp.Password, "!@#$%^&*()_+-=[]{}|;:,.<>?") {
		t.Errorf("symbols disabled but got %q", resp.Password)
	}
	if resp.Strength != strength.Classify(resp.Password) {
		t.Errorf("strength %v does not match password", resp.Strength)
	}
}

func TestGeneratePassword_Defaults(t *testing.T) {
	s := testServer(t)

	res, err := callTool(t, s, "generate_password", map[string]any{})
	if err != nil {
		t.Fatalf("callTool: %v", err)
	}
	var resp model.GenerateResponse
	if err := json.Unmarshal([]byte(resultText(t, res)), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Length != 16 {
		t.Errorf("expected default length 16, got %d", resp.Length)
	}
}

func TestGeneratePassword_InvalidArguments(t *testing.T) {
	s := testServer(t)

	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"too short", map[string]any{"length": 3}, "below minimum"},
		{"fractional", map[string]any{"length": 12.5}, "whole number"},
		{"no classes", map[string]any{"uppercase": false, "lowercase": false, "numbers": false, "symbols": false}, "character type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := callTool(t, s, "generate_password", tt.args)
			if err != nil {
				t.Fatalf("callTool: %v", err)
			}
			if !res.IsError {
				t.Fatal("expected tool error")
			}
			if text := resultText(t, res); !strings.Contains(text, tt.want) {
				t.Errorf("error %q does not mention %q", text, tt.want)
			}
		})
	}
}

func TestCheckStrength(t *testing.T) {
	s := testServer(t)

	tests := []struct {
		password string
		want     strength.Tier
	}{
		{"", strength.Weak},
		{"abcdefgh", strength.Weak},
		{"Abcdefgh1", strength.Medium},
		{"Abcdefghij1!", strength.Strong},
		{"Abcdefghijklmno1!", strength.Strong},
	}

	for _, tt := range tests {
		res, err := callTool(t, s, "check_strength", map[string]any{
			"password": tt.password,
			"hints":    []string{"alice"},
		})
		if err != nil {
			t.Fatalf("callTool(%q): %v", tt.password, err)
		}
		var resp model.StrengthResponse
		if err := json.Unmarshal([]byte(resultText(t, res)), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Strength != tt.want {
			t.Errorf("check_strength(%q) = %v, want %v", tt.password, resp.Strength, tt.want)
		}
	}
}

func TestCheckStrength_MissingPassword(t *testing.T) {
	s := testServer(t)

	res, err := callTool(t, s, "check_strength", map[string]any{})
	if err != nil {
		// Required-argument validation may reject the call at the protocol level.
		return
	}
	if !res.IsError {
		t.Fatal("expected tool error for missing password")
	}
}
