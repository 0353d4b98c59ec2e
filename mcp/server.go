// Package mcp exposes the validator over the Model Context Protocol,
// so agent toolchains can check payment configurations before paying
// for anything.
//
// Three tools are served: x402_validate, x402_detect and
// x402_normalize. Each takes the configuration document as JSON text
// and answers with JSON text.
package mcp

import (
	"context"
	"net/http"
	"os"

	mcpproto "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/rawgroundbeef/x402check"
)

// Server wraps an MCP server with the validation tools registered.
type Server struct {
	mcp      *mcpserver.MCPServer
	registry *x402check.Registry
}

// Option configures the Server.
type Option func(*Server)

// WithRegistry overrides the network registry used by the tools.
func WithRegistry(reg *x402check.Registry) Option {
	return func(s *Server) {
		if reg != nil {
			s.registry = reg
		}
	}
}

// NewServer builds an MCP server exposing the validation tools.
func NewServer(opts ...Option) *Server {
	s := &Server{registry: x402check.DefaultRegistry()}
	for _, opt := range opts {
		opt(s)
	}

	s.mcp = mcpserver.NewMCPServer("x402check", x402check.Version)

	s.mcp.AddTool(mcpproto.NewTool(
		"x402_validate",
		mcpproto.WithDescription("Validate an x402 payment configuration document and report errors, warnings and the normalized form"),
		mcpproto.WithString("document", mcpproto.Required(), mcpproto.Description("The configuration document as JSON text")),
		mcpproto.WithBoolean("strict", mcpproto.Description("Treat warnings as errors")),
	), s.handleValidate)

	s.mcp.AddTool(mcpproto.NewTool(
		"x402_detect",
		mcpproto.WithDescription("Detect which x402 format a payment configuration document uses"),
		mcpproto.WithString("document", mcpproto.Required(), mcpproto.Description("The configuration document as JSON text")),
	), s.handleDetect)

	s.mcp.AddTool(mcpproto.NewTool(
		"x402_normalize",
		mcpproto.WithDescription("Rewrite an x402 payment configuration document into the canonical current format"),
		mcpproto.WithString("document", mcpproto.Required(), mcpproto.Description("The configuration document as JSON text")),
	), s.handleNormalize)

	return s
}

// ServeStdio serves MCP over stdin and stdout until ctx is cancelled
// or the input stream closes.
func (s *Server) ServeStdio(ctx context.Context) error {
	return mcpserver.NewStdioServer(s.mcp).Listen(ctx, os.Stdin, os.Stdout)
}

// Handler returns the streamable HTTP transport for the server.
func (s *Server) Handler() http.Handler {
	return mcpserver.NewStreamableHTTPServer(s.mcp)
}

// MCPServer returns the underlying server, for callers that want to
// register more tools on it.
func (s *Server) MCPServer() *mcpserver.MCPServer {
	return s.mcp
}
