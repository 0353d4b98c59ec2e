package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcpproto "github.com/mark3labs/mcp-go/mcp"

	"github.com/rawgroundbeef/x402check"
)

func (s *Server) handleValidate(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	document, ok := documentArg(req)
	if !ok {
		return mcpproto.NewToolResultError("document argument is required"), nil
	}
	strict, _ := req.GetArguments()["strict"].(bool)

	opts := []x402check.Option{x402check.WithRegistry(s.registry)}
	if strict {
		opts = append(opts, x402check.WithStrict())
	}
	return jsonResult(x402check.Validate(document, opts...)), nil
}

func (s *Server) handleDetect(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	document, ok := documentArg(req)
	if !ok {
		return mcpproto.NewToolResultError("document argument is required"), nil
	}
	return jsonResult(map[string]any{"format": x402check.Detect(document)}), nil
}

func (s *Server) handleNormalize(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	document, ok := documentArg(req)
	if !ok {
		return mcpproto.NewToolResultError("document argument is required"), nil
	}

	normalized, err := x402check.Normalize(document)
	if err != nil {
		return mcpproto.NewToolResultError(fmt.Sprintf("cannot normalize: %v", err)), nil
	}
	return jsonResult(normalized), nil
}

func documentArg(req mcpproto.CallToolRequest) (string, bool) {
	document, ok := req.GetArguments()["document"].(string)
	if !ok || document == "" {
		return "", false
	}
	return document, true
}

// jsonResult renders v as indented JSON text content.
func jsonResult(v any) *mcpproto.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcpproto.NewToolResultError(fmt.Sprintf("encode result: %v", err))
	}
	return &mcpproto.CallToolResult{
		Content: []mcpproto.Content{mcpproto.NewTextContent(string(data))},
	}
}
