package main

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/vaultmd/vaultmd/internal/search"
	"github.com/vaultmd/vaultmd/internal/vault"
)

var (
	noteVault     *vault.Service
	searchService *search.Service
	syncRoot      string
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the note operations over MCP",
		Long: `Run an MCP server on stdio exposing the note, search, and sync
operations as tools, so an MCP-capable editor or agent can host the
command layer.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			noteVault = vault.New(cfg.Root())
			searchService = search.New(cfg.Root(), slogger())
			syncRoot = cfg.Root()

			server := mcp.NewServer(&mcp.Implementation{
				Name:    "vaultmd",
				Version: version,
			}, nil)

			registerTools(server)

			if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
				return fmt.Errorf("error running server: %w", err)
			}
			return nil
		},
	}
}
