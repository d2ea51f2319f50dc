package main

import (
	"github.com/spf13/cobra"

	"github.com/vaultmd/vaultmd/internal/search"
)

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Search notes by content, or list recent ones",
		Long: `With a query, search note contents via ripgrep (case-insensitive
unless the query contains an uppercase letter). Without one, list the ten
most recently modified notes.`,
		Example: `  vaultmd search
  vaultmd search "heat pump"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			query := ""
			if len(args) > 0 {
				query = args[0]
			}

			n := notifier()
			results, err := search.New(cfg.Root(), slogger()).Search(cmd.Context(), query)
			if err != nil {
				return err
			}

			n.Title(search.Title(query))
			if len(results) == 0 {
				n.Dim("no matches")
				return nil
			}
			for _, r := range results {
				if query == "" {
					n.Line("%s", r.RelPath)
				} else {
					n.Line("%s:%d: %s", r.RelPath, r.Line, r.Text)
				}
			}
			return nil
		},
	}
}
