package app

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/1broseidon/termfloat/internal/config"
	"github.com/1broseidon/termfloat/internal/theme"
)

// Run loads themes, starts the theme watcher when a themes directory is
// configured, and runs the bubbletea program until quit.
func Run(cfg *config.Config, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	themes := theme.NewRegistry()
	if cfg.ThemesDir != "" {
		if err := themes.LoadDir(cfg.ThemesDir); err != nil {
			return fmt.Errorf("failed to load themes: %w", err)
		}
	}

	model := New(cfg, themes, logger)
	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if cfg.ThemesDir != "" {
		watcher, err := theme.NewWatcher(themes, cfg.ThemesDir, logger)
		if err != nil {
			logger.Warn("theme watcher unavailable", "error", err)
		} else {
			watcher.SetReloadCallback(func(name string) {
				program.Send(themeReloadedMsg{name: name})
			})
			if err := watcher.Start(); err != nil {
				logger.Warn("theme watcher failed to start", "error", err)
			}
			defer func() { _ = watcher.Stop() }()
		}
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("program failed: %w", err)
	}
	return nil
}
