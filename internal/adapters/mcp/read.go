package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"timelog/internal/adapters/render"
	"timelog/internal/application/commands"
	"timelog/internal/ports"
)

// RegisterReadTools adds the query tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, repo ports.DocumentRepository) {
	s.AddTool(queryTool(), queryHandler(repo))
	s.AddTool(activeTool(), activeHandler(repo))
	s.AddTool(tagsReportTool(), tagsReportHandler(repo))
	s.AddTool(showTool(), showHandler(repo))
}

// --- query ---

func withQueryArgs() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("tags",
			mcp.Description("Comma separated tags; documents carrying any of them match. Takes precedence over path."),
		),
		mcp.WithString("path",
			mcp.Description("Comma separated path fragments; documents whose path contains any of them match."),
		),
		mcp.WithString("start",
			mcp.Description("Window start: YYYY-MM-DD, today, yesterday, month, biweekly or friday. Omit for no date window."),
		),
		mcp.WithString("end",
			mcp.Description("Window end, same tokens as start. Omit for an open window. Requires start."),
		),
	}
}

func queryTool() mcp.Tool {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Report the worklog of matching documents: each range, a subtotal per document and the grand total."),
	}, withQueryArgs()...)
	return mcp.NewTool("query", opts...)
}

func queryHandler(repo ports.DocumentRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := runQuery(ctx, repo, req)
		if err != nil {
			return toolError(err)
		}
		if len(result.Documents) == 0 {
			return mcp.NewToolResultText("No documents found."), nil
		}
		return mcp.NewToolResultText(render.QueryReport(result.Documents)), nil
	}
}

func runQuery(ctx context.Context, repo ports.DocumentRepository, req mcp.CallToolRequest) (*commands.QueryResult, error) {
	cmd := commands.NewQueryCommand(repo)
	cmd.Tags = splitList(req.GetString("tags", ""))
	cmd.Paths = splitList(req.GetString("path", ""))
	cmd.StartDate = req.GetString("start", "")
	cmd.EndDate = req.GetString("end", "")
	return cmd.Execute(ctx)
}

// --- active ---

func activeTool() mcp.Tool {
	return mcp.NewTool("active",
		mcp.WithDescription("List the paths of documents with a running timer."),
	)
}

func activeHandler(repo ports.DocumentRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewQueryCommand(repo)
		cmd.ActiveOnly = true
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(result.Documents) == 0 {
			return mcp.NewToolResultText("No active documents."), nil
		}
		return mcp.NewToolResultText(render.Paths(result.Documents)), nil
	}
}

// --- tags_report ---

func tagsReportTool() mcp.Tool {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Total worked time per tag for matching documents. Ticket key tags (ABC-123) are left out of the rows but counted in the total."),
	}, withQueryArgs()...)
	return mcp.NewTool("tags_report", opts...)
}

func tagsReportHandler(repo ports.DocumentRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := runQuery(ctx, repo, req)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(render.TagsReport(result.TagsReport())), nil
	}
}

// --- show ---

func showTool() mcp.Tool {
	return mcp.NewTool("show",
		mcp.WithDescription("Read the markdown body of the first document whose path contains the given fragment."),
		mcp.WithString("path",
			mcp.Description("Path fragment, e.g. ABC-123"),
			mcp.Required(),
		),
	)
}

func showHandler(repo ports.DocumentRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		doc, err := commands.NewFindCommand(repo, req.GetString("path", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s\n\n%s", doc.Path, doc.Body)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
