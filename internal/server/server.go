// Package server exposes the automation pipeline as MCP tools.
package server

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/uipilot/internal/automation"
	"github.com/mj1618/uipilot/internal/config"
	"github.com/mj1618/uipilot/internal/logging"
	"github.com/mj1618/uipilot/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
}

// Server wraps the MCP server around one orchestrator. Tool calls are
// serialized: every tool drives the same desktop.
type Server struct {
	orch *automation.Orchestrator
	cfg  config.Config
	log  *slog.Logger

	mu  sync.Mutex
	mcp *mcpserver.MCPServer
}

// New creates a server with all tools registered.
func New(orch *automation.Orchestrator, cfg config.Config) *Server {
	s := &Server{
		orch: orch,
		cfg:  cfg,
		log:  logging.New("server"),
	}
	s.mcp = mcpserver.NewMCPServer("uipilot", version.Version)
	s.registerTools()
	return s
}

// MCP returns the underlying MCP server.
func (s *Server) MCP() *mcpserver.MCPServer { return s.mcp }

// Serve starts the configured transport and blocks.
func (s *Server) Serve(c Config) error {
	s.log.Info("starting MCP server", "transport", c.Transport, "port", c.Port)
	switch c.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", c.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", c.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("check_running",
			mcp.WithDescription("Report whether the target application has a visible window. Returns RUNNING or NOT_RUNNING."),
		),
		s.handleCheckRunning,
	)

	s.mcp.AddTool(
		mcp.NewTool("bring_to_front",
			mcp.WithDescription("Locate the target application's window and force it to the foreground. Succeeds when the window was found, even if focus could not be verified."),
		),
		s.handleBringToFront,
	)

	s.mcp.AddTool(
		mcp.NewTool("click_start_creation",
			mcp.WithDescription("Bring the editor to the front and activate its start-creation button"),
		),
		s.handleClickStartCreation,
	)

	s.mcp.AddTool(
		mcp.NewTool("click",
			mcp.WithDescription("Bring the target window to the front and activate a control by name"),
			mcp.WithString("target", mcp.Description("Control name to resolve"), mcp.Required()),
			mcp.WithBoolean("no-fallback", mcp.Description("Disable proportional coordinate fallback")),
		),
		s.handleClick,
	)

	s.mcp.AddTool(
		mcp.NewTool("import_videos",
			mcp.WithDescription("Write existing media paths to the import list file and activate the import button"),
			mcp.WithArray("paths", mcp.Description("Media file paths"), mcp.Required()),
		),
		s.handleImportVideos,
	)
}
