package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultmd/vaultmd/internal/gitsync"
)

func syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Pull, commit, and push the notes root through git",
		Long: `Run the fixed git sequence pull, status, add, commit, push against
the notes root. The pipeline stops at the first failing step. A clean
working tree after the pull is reported as nothing to sync; a failed push
after a successful commit is a warning, since the commit is kept locally.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			n := notifier()
			report := gitsync.Sync(cmd.Context(), cfg.Root())

			switch {
			case report.Outcome.OK():
				n.Info("%s", report.Outcome)
				return nil
			case report.Outcome.Warning():
				n.Warn("%s", report.Outcome)
				n.Dim(report.Detail)
				return nil
			default:
				n.Dim(report.Detail)
				return fmt.Errorf("sync failed: %s", report.Outcome)
			}
		},
	}
}
