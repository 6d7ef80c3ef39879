package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/1broseidon/termfloat/internal/app"
	"github.com/1broseidon/termfloat/internal/config"
)

var (
	flagConfig string
	flagThemes string
)

func main() {
	root := &cobra.Command{
		Use:          "termfloat",
		Short:        "Floating, chrome-managed windows inside your terminal",
		SilenceUsage: true,
		RunE:         run,
	}
	root.Flags().StringVar(&flagConfig, "config", "", "path to config file (default ~/.config/termfloat/config.yaml)")
	root.Flags().StringVar(&flagThemes, "themes", "", "directory of theme files (overrides config)")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("termfloat requires an interactive terminal (stdin/stdout must be TTYs)")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	path := flagConfig
	if path == "" {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			return err
		}
		path = defaultPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if flagThemes != "" {
		cfg.ThemesDir = flagThemes
	}

	return app.Run(cfg, logger)
}
