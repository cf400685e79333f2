package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/devjaesung/sowa-admin/internal/api"
	"github.com/devjaesung/sowa-admin/internal/config"
	"github.com/devjaesung/sowa-admin/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := openLogger(cfg.Log.Path)

	timeout := time.Duration(cfg.API.TimeoutSeconds) * time.Second
	client := api.NewClient(cfg.API.BaseURL, timeout, logger)

	p := tea.NewProgram(
		tui.New(ctx, cfg, client, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

// openLogger writes to the configured file; the TUI owns the terminal, so
// stderr is not an option. A bad path degrades to a discard logger rather
// than failing startup.
func openLogger(path string) *slog.Logger {
	if path == "" {
		return slog.New(slog.DiscardHandler)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return slog.New(slog.DiscardHandler)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
