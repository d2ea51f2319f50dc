// Package notepath resolves user-supplied note names to safe absolute
// paths inside the configured notes root.
package notepath

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Validation failures returned by Resolve. Callers can match these with
// errors.Is to distinguish bad input from other failures.
var (
	ErrEmptyPath = errors.New("note path is empty")
	ErrTraversal = errors.New("note path attempts to leave the notes root")
	ErrEscape    = errors.New("resolved path escapes the notes root")
)

// Resolve turns a relative note name into an absolute path under root.
//
// The raw input is validated before any expansion: a ".." segment, a
// leading "/", or a leading "~" is rejected outright, so normalization can
// never turn a traversal attempt into a path that passes the later checks.
// Tilde and environment expansion apply to root only, never to the user
// segment. The result always carries a single ".md" suffix and is
// guaranteed to be a strict descendant of the expanded root.
//
// Resolve never touches the filesystem; creating parent directories and
// the note itself is the caller's job.
func Resolve(root, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w", ErrEmptyPath)
	}

	normalized := strings.ReplaceAll(raw, "\\", "/")
	if strings.HasPrefix(normalized, "/") || strings.HasPrefix(normalized, "~") {
		return "", fmt.Errorf("%w: %q", ErrTraversal, raw)
	}
	for _, segment := range strings.Split(normalized, "/") {
		if segment == ".." {
			return "", fmt.Errorf("%w: %q", ErrTraversal, raw)
		}
	}

	normalized = strings.Trim(normalized, "/")

	expandedRoot := ExpandRoot(root)
	resolved := filepath.Join(expandedRoot, filepath.FromSlash(normalized))

	// Defense in depth: the join above cannot escape after the raw-input
	// checks, but require the literal prefix anyway.
	prefix := strings.TrimSuffix(expandedRoot, string(filepath.Separator)) + string(filepath.Separator)
	if !strings.HasPrefix(resolved, prefix) {
		return "", fmt.Errorf("%w: %q", ErrEscape, raw)
	}

	if !strings.HasSuffix(resolved, ".md") {
		resolved += ".md"
	}

	return resolved, nil
}

// ExpandRoot expands a leading "~" and any environment variables in a
// notes root path and collapses redundant separators. It does not verify
// that the directory exists.
func ExpandRoot(root string) string {
	root = os.ExpandEnv(root)
	if root == "~" || strings.HasPrefix(root, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			root = filepath.Join(home, strings.TrimPrefix(root[1:], "/"))
		}
	}
	return filepath.Clean(root)
}

// RelativeTo strips the expanded root prefix (plus one separator) from an
// absolute path. Paths outside the root are returned unchanged.
func RelativeTo(root, absPath string) string {
	prefix := strings.TrimSuffix(ExpandRoot(root), string(filepath.Separator)) + string(filepath.Separator)
	rel := strings.TrimPrefix(absPath, prefix)
	return strings.ReplaceAll(rel, "\\", "/")
}
