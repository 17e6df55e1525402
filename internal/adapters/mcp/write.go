package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"timelog/internal/application/commands"
	"timelog/internal/ports"
)

// RegisterWriteTools adds the timer and archive tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, repo ports.DocumentRepository) {
	s.AddTool(startTool(), startHandler(repo))
	s.AddTool(stopTool(), stopHandler(repo))
	s.AddTool(archiveTool(), archiveHandler(repo))
}

// --- start ---

func startTool() mcp.Tool {
	return mcp.NewTool("start",
		mcp.WithDescription("Start the timer on one document. Any other running document is stopped first."),
		mcp.WithString("path",
			mcp.Description("Path fragment matching exactly one document, e.g. ABC-123"),
			mcp.Required(),
		),
	)
}

func startHandler(repo ports.DocumentRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewStartCommand(repo, req.GetString("path", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- stop ---

func stopTool() mcp.Tool {
	return mcp.NewTool("stop",
		mcp.WithDescription("Stop the timer on every document matching the path fragments."),
		mcp.WithString("path",
			mcp.Description("Comma separated path fragments"),
			mcp.Required(),
		),
	)
}

func stopHandler(repo ports.DocumentRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewStopCommand(repo, splitList(req.GetString("path", ""))...).Execute(ctx)
		return batchResult(result, err)
	}
}

// --- archive ---

func archiveTool() mcp.Tool {
	return mcp.NewTool("archive",
		mcp.WithDescription("Move every stopped document matching the path fragments into the archive directory."),
		mcp.WithString("path",
			mcp.Description("Comma separated path fragments"),
			mcp.Required(),
		),
	)
}

func archiveHandler(repo ports.DocumentRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewArchiveCommand(repo, splitList(req.GetString("path", ""))...).Execute(ctx)
		return batchResult(result, err)
	}
}

// batchResult reports partial success: the summary line plus every
// per-document failure.
func batchResult(result *commands.ActionResult, err error) (*mcp.CallToolResult, error) {
	if result == nil {
		return toolError(err)
	}
	if err != nil {
		return toolError(fmt.Errorf("%s\n%w", result.Message, err))
	}
	return mcp.NewToolResultText(result.Message), nil
}
