// Package main implements the vaultmd CLI and MCP server.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	_ "github.com/joho/godotenv/autoload"

	"github.com/vaultmd/vaultmd/internal/config"
	"github.com/vaultmd/vaultmd/internal/ui"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "vaultmd",
		Short: "Markdown notes with search and git sync",
		Long: `vaultmd is a minimalist command layer for a directory of Markdown
notes: create notes with path safety checks, search them by recency or
content (ripgrep with a built-in fallback), and synchronize the whole
directory through git in one shot.

The same operations are available to MCP-capable editors and agents via
'vaultmd serve'.`,
		Example: `  vaultmd new personal/house/renovation
  vaultmd search "heat pump"
  vaultmd sync`,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")

	root.AddCommand(newCmd())
	root.AddCommand(searchCmd())
	root.AddCommand(syncCmd())
	root.AddCommand(serveCmd())

	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the configuration and guarantees the notes root exists.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.EnsureRoot(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// notifier builds the user-facing output sink for CLI commands.
func notifier() *ui.Notifier {
	return ui.NewNotifier(os.Stdout, os.Stderr, isatty.IsTerminal(os.Stdout.Fd()))
}

// slogger builds the diagnostic logger. Diagnostics go to stderr so they
// never mix with result lists on stdout.
func slogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}
