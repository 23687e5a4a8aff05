// Package mcpserver exposes the registered trip tools over the Model Context Protocol.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/firebase/genkit/go/ai"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/va6996/tripmate/log"
	"github.com/va6996/tripmate/tools"
)

// Server bridges a tools.Registry to an MCP server.
type Server struct {
	mcpServer *server.MCPServer
	registry  *tools.Registry
}

// New creates an MCP server offering every tool in registry.
func New(name, version string, registry *tools.Registry) *Server {
	s := &Server{
		mcpServer: server.NewMCPServer(name, version, server.WithToolCapabilities(false)),
		registry:  registry,
	}
	for _, t := range registry.GetTools() {
		def := t.Definition()
		s.mcpServer.AddTool(toolFor(def), s.handler(def.Name))
	}
	return s
}

// toolFor carries the genkit input schema over verbatim. mcp-go refuses to
// marshal a tool with both a structured and a raw schema, so only one is set.
func toolFor(def *ai.ToolDefinition) mcp.Tool {
	if len(def.InputSchema) > 0 {
		if raw, err := json.Marshal(def.InputSchema); err == nil {
			return mcp.NewToolWithRawSchema(def.Name, def.Description, raw)
		}
	}
	return mcp.NewTool(def.Name, mcp.WithDescription(def.Description))
}

// MCPServer returns the underlying server, for custom transports.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdio.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) handler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})
		log.Debugf(ctx, "MCP call %s with %v", name, args)

		out, err := s.registry.ExecuteTool(ctx, name, args)
		if err != nil {
			log.Warnf(ctx, "MCP call %s failed: %v", name, err)
			return mcp.NewToolResultError(err.Error()), nil
		}
		text, err := render(out)
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(text), nil
	}
}

// render prefers a tool output's own text form and falls back to JSON.
func render(out interface{}) (string, error) {
	switch v := out.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render tool output: %w", err)
	}
	return string(b), nil
}
