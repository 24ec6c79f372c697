// Package mcp exposes the token registry and source scanners over the Model
// Context Protocol so editor agents can query tokens and audit component
// code without shelling out to the CLI.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/gnana997/styleaudit/pkg/mcplog"
	"github.com/gnana997/styleaudit/pkg/registry"
	"github.com/gnana997/styleaudit/pkg/scanner"
)

const serverVersion = "0.1.0-dev"

// Server wires the registry and scanner into MCP tools.
type Server struct {
	mcpServer *server.MCPServer
	registry  *registry.Registry
	scanner   *scanner.Scanner
	logger    *mcplog.Logger // nil disables tool-call logging
	log       *slog.Logger
}

// NewServer creates an MCP server backed by the given registry and scanner.
// toolLog may be nil.
func NewServer(reg *registry.Registry, sc *scanner.Scanner, toolLog *mcplog.Logger, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{registry: reg, scanner: sc, logger: toolLog, log: log}

	opts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	}
	if toolLog != nil {
		opts = append(opts, server.WithToolHandlerMiddleware(s.loggingMiddleware()))
	}

	s.mcpServer = server.NewMCPServer("styleaudit", serverVersion, opts...)

	s.mcpServer.AddTools(
		server.ServerTool{Tool: listTokensTool(), Handler: s.handleListTokens},
		server.ServerTool{Tool: findTokenTool(), Handler: s.handleFindToken},
		server.ServerTool{Tool: closestColorTool(), Handler: s.handleClosestColor},
		server.ServerTool{Tool: bestMatchTool(), Handler: s.handleBestMatch},
		server.ServerTool{Tool: tokenCountsTool(), Handler: s.handleTokenCounts},
		server.ServerTool{Tool: matchSourceTool(), Handler: s.handleMatchSource},
		server.ServerTool{Tool: scanFileTool(), Handler: s.handleScanFile},
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
