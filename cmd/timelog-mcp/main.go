package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"timelog/internal/adapters/filesystem"
	mcpadapter "timelog/internal/adapters/mcp"
	"timelog/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("timelog-mcp: %v", err)
	}

	rootFlag := flag.String("root", cfg.Root, "document root")
	flag.Parse()

	// stdout carries the protocol
	logger := config.NewLogger(os.Stderr, cfg.LogLevel)
	slog.SetDefault(logger)
	repo := filesystem.NewRepository(*rootFlag)
	logger.Info("serving", "root", repo.Root())

	mcpServer := server.NewMCPServer(
		"timelog-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, repo)
	mcpadapter.RegisterWriteTools(mcpServer, repo)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("timelog-mcp: %v", err)
	}
}
