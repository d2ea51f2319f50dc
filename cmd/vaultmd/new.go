package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/vaultmd/vaultmd/internal/vault"
)

func newCmd() *cobra.Command {
	var edit bool

	cmd := &cobra.Command{
		Use:   "new <path>",
		Short: "Create or open a note",
		Long: `Create a note under the notes root, or locate it if it already
exists. The path is relative to the notes root; ".md" is appended when
missing, and traversal outside the root is rejected. New notes start with
a "tags:" line.`,
		Example: `  vaultmd new personal/house/renovation
  vaultmd new ideas --edit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			n := notifier()
			path, created, err := vault.New(cfg.Root()).EnsureNote(args[0])
			if err != nil {
				return err
			}

			if created {
				n.Info("Created %s", path)
			} else {
				n.Info("Opened %s", path)
			}

			if edit {
				return openEditor(path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&edit, "edit", "e", false, "open the note in $EDITOR")
	return cmd
}

// openEditor hands the note to the user's editor, attached to the
// terminal.
func openEditor(path string) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		return fmt.Errorf("$EDITOR is not set")
	}

	c := exec.Command(editor, path)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}
	return nil
}
