package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"timelog/internal/adapters/editor"
	"timelog/internal/adapters/filesystem"
	"timelog/internal/adapters/tui"
	"timelog/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// stderr would draw over the alternate screen
	slog.SetDefault(config.NewLogger(io.Discard, cfg.LogLevel))

	// Initialize adapters
	repo := filesystem.NewRepository(cfg.Root)
	editorOpener := editor.NewOpener(cfg.Editor)

	// Create and run TUI app
	app := tui.NewApp(repo, editorOpener, clipboard.WriteAll, nil)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
