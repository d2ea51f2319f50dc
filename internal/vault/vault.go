// Package vault materializes notes on disk under the notes root.
package vault

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vaultmd/vaultmd/internal/notepath"
)

// seed is written as the first line of every newly created note. Existing
// notes are never modified.
const seed = "tags:\n"

// Service creates and locates notes under a fixed root.
type Service struct {
	root string
}

// New creates a vault service over root. The root is expanded but not
// created; call EnsureRoot on the configuration first.
func New(root string) *Service {
	return &Service{root: notepath.ExpandRoot(root)}
}

// Root returns the expanded notes root.
func (s *Service) Root() string {
	return s.root
}

// Resolve validates name against the root without touching the
// filesystem.
func (s *Service) Resolve(name string) (string, error) {
	return notepath.Resolve(s.root, name)
}

// EnsureNote resolves name and creates the note file if it does not exist
// yet, including any parent directories. New notes start with the seed
// line; existing notes are left untouched. Returns the absolute path and
// whether a file was created.
func (s *Service) EnsureNote(name string) (string, bool, error) {
	path, err := s.Resolve(name)
	if err != nil {
		return "", false, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", false, fmt.Errorf("failed to create note directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
				return "", false, fmt.Errorf("note path %s is a directory", name)
			}
			return path, false, nil
		}
		return "", false, fmt.Errorf("failed to create note %s: %w", name, err)
	}
	defer f.Close()

	if _, err := f.WriteString(seed); err != nil {
		return "", false, fmt.Errorf("failed to write note %s: %w", name, err)
	}

	return path, true, nil
}
