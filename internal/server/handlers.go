package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/uipilot/internal/automation"
	"github.com/mj1618/uipilot/internal/model"
	"gopkg.in/yaml.v3"
)

// resultToText serializes an InvocationResult to YAML for MCP response.
func resultToText(res model.InvocationResult) string {
	b, err := yaml.Marshal(res)
	if err != nil {
		return fmt.Sprintf("success: %v\nstate: %s\nerror: %s", res.Success, res.State, res.Error)
	}
	return string(b)
}

func toolResult(res model.InvocationResult) *mcp.CallToolResult {
	if !res.Success {
		return mcp.NewToolResultError(resultToText(res))
	}
	return mcp.NewToolResultText(resultToText(res))
}

func (s *Server) handleCheckRunning(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	running, _ := s.orch.CheckRunning(ctx)
	return mcp.NewToolResultText(automation.RunningToken(running)), nil
}

func (s *Server) handleBringToFront(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.orch.Run(ctx, automation.Request{Mode: automation.ModeFocusOnly})
	return toolResult(res), nil
}

func (s *Server) handleClickStartCreation(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.orch.Run(ctx, automation.Request{Mode: automation.ModeFull, Target: s.cfg.Targets.Start})
	return toolResult(res), nil
}

func (s *Server) handleClick(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	name := stringParam(params, "target", "")
	if name == "" {
		return mcp.NewToolResultError("target is required"), nil
	}
	target := s.cfg.TargetFor(name)
	if boolParam(params, "no-fallback", false) {
		target.Fallback = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.orch.Run(ctx, automation.Request{Mode: automation.ModeFull, Target: target})
	return toolResult(res), nil
}

func (s *Server) handleImportVideos(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	// Paths arrive as a JSON array or as a string holding one; both reach
	// the orchestrator as raw JSON so validation stays in one place.
	var raw string
	switch v := params["paths"].(type) {
	case string:
		raw = v
	case nil:
		raw = ""
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("paths: %v", err)), nil
		}
		raw = string(b)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.orch.ImportVideos(ctx, raw)
	return toolResult(res), nil
}
