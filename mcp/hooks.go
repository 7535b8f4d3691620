package mcp

import (
	"context"

	"github.com/ka2n/mcpdocs/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// newHooks logs every request and every failed request.
// Tool failures are results with IsError set, not errors, so they get their own hook.
func newHooks() *server.Hooks {
	hooks := &server.Hooks{}
	hooks.AddBeforeAny(logRequest)
	hooks.AddOnError(logError)
	hooks.AddAfterCallTool(logToolResult)
	return hooks
}

func logRequest(ctx context.Context, id any, method mcp.MCPMethod, message any) {
	log.Debug("MCP request", "id", id, "method", method)
}

func logError(ctx context.Context, id any, method mcp.MCPMethod, message any, err error) {
	log.Warn("MCP request failed", "id", id, "method", method, "error", err)
}

func logToolResult(ctx context.Context, id any, req *mcp.CallToolRequest, result *mcp.CallToolResult) {
	if result == nil || !result.IsError {
		return
	}

	var text string
	if len(result.Content) > 0 {
		switch c := result.Content[0].(type) {
		case mcp.TextContent:
			text = c.Text
		case *mcp.TextContent:
			text = c.Text
		}
	}
	log.Warn("MCP tool call failed", "id", id, "tool", req.Params.Name, "error", text)
}
