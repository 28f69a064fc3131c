package cmd

import (
	"fmt"

	"github.com/mj1618/uipilot/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing uipilot tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes check_running,
bring_to_front, click_start_creation, click and import_videos as tools.
Tool calls are serialized; each returns the same structured result as the
matching command.

Supported transports:
  stdio             Standard I/O (default)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  uipilot serve
  uipilot serve --transport streamable-http --port 8080`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")

	orch, err := newOrchestrator()
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	return server.New(orch, cfg).Serve(server.Config{Transport: transport, Port: port})
}
