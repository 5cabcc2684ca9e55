// Package mcptools exposes password generation and strength checks as MCP
// tools.
package mcptools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/vaultpass/vaultpass-engine/internal/crypto"
	"github.com/vaultpass/vaultpass-engine/internal/model"
	"github.com/vaultpass/vaultpass-engine/internal/service"
)

// Register adds the generate_password and check_strength tools to s.
func Register(s *server.MCPServer, gen *service.GeneratorService, str *service.StrengthService) {
	registerGenerate(s, gen)
	registerCheckStrength(s, str)
}

func registerGenerate(s *server.MCPServer, gen *service.GeneratorService) {
	s.AddTool(
		mcp.NewTool("generate_password",
			mcp.WithDescription("Generate a random password from the selected character classes and report its strength tier. Omitted options use the configured defaults."),
			mcp.WithNumber("length", mcp.Description("Password length (default: 16)")),
			mcp.WithBoolean("uppercase", mcp.Description("Include uppercase letters")),
			mcp.WithBoolean("lowercase", mcp.Description("Include lowercase letters")),
			mcp.WithBoolean("numbers", mcp.Description("Include digits")),
			mcp.WithBoolean("symbols", mcp.Description("Include symbols from !@#$%^&*()_+-=[]{}|;:,.<>?")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := req.GetArguments()

			var gr model.GenerateRequest
			if v, ok := args["length"].(float64); ok {
				if v != float64(int(v)) {
					return mcp.NewToolResultError(fmt.Sprintf("length must be a whole number, got %v", v)), nil
				}
				gr.Length = int(v)
			}
			gr.Uppercase = optBool(args, "uppercase")
			gr.Lowercase = optBool(args, "lowercase")
			gr.Numbers = optBool(args, "numbers")
			gr.Symbols = optBool(args, "symbols")

			resp, err := gen.Generate(gr)
			if err != nil {
				if errors.Is(err, crypto.ErrInvalidArgument) {
					return mcp.NewToolResultError(err.Error()), nil
				}
				slog.Error("generate_password failed", "error", err)
				return nil, err
			}
			return jsonResult(resp)
		},
	)
}

func registerCheckStrength(s *server.MCPServer, str *service.StrengthService) {
	s.AddTool(
		mcp.NewTool("check_strength",
			mcp.WithDescription("Rate a password as weak, medium, strong or very-strong and report which rule decided it."),
			mcp.WithString("password", mcp.Required(), mcp.Description("Password to rate. An empty string rates weak.")),
			mcp.WithArray("hints", mcp.Description("User-specific words such as a username or email that weaken the advisory estimate"), mcp.WithStringItems()),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := req.GetArguments()
			password, ok := args["password"].(string)
			if !ok {
				return mcp.NewToolResultError("password is required"), nil
			}

			var hints []string
			if raw, ok := args["hints"].([]any); ok {
				for _, h := range raw {
					if s, ok := h.(string); ok && s != "" {
						hints = append(hints, s)
					}
				}
			}

			return jsonResult(str.Check(model.StrengthRequest{Password: password, Hints: hints}))
		},
	)
}

func optBool(args map[string]any, key string) *bool {
	v, ok := args[key].(bool)
	if !ok {
		return nil
	}
	return &v
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
