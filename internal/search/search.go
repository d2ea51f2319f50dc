// Package search provides unified recency and content search over the
// notes root.
package search

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/vaultmd/vaultmd/internal/execx"
	"github.com/vaultmd/vaultmd/internal/notepath"
)

const (
	// recentLimit caps recency-mode listings.
	recentLimit = 10

	// recentPlaceholder is the fixed line text for recency-mode records.
	recentPlaceholder = "[recent]"

	// rgExitNoMatch is ripgrep's conventional "no matches" exit code.
	rgExitNoMatch = 1
)

// Result is the uniform record shape both modes produce: most relevant or
// most recent first. Recency-mode records carry Line 1 and a placeholder
// Text.
type Result struct {
	Path    string // absolute path
	RelPath string // path relative to the notes root
	Line    int
	Text    string
}

// Service searches the notes root. The zero value is not usable; construct
// with New.
type Service struct {
	root   string
	rgBin  string
	logger *slog.Logger
}

// New creates a search service over root. A nil logger discards
// diagnostics.
func New(root string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		root:   notepath.ExpandRoot(root),
		rgBin:  "rg",
		logger: logger,
	}
}

// Title returns the human-readable heading for a query's result set.
func Title(query string) string {
	if strings.TrimSpace(query) == "" {
		return "Recent Notes"
	}
	return "Search: " + query
}

// Search dispatches on the query: empty means recency mode, anything else
// means content mode.
func (s *Service) Search(ctx context.Context, query string) ([]Result, error) {
	if strings.TrimSpace(query) == "" {
		return s.Recent()
	}
	return s.Content(ctx, query)
}

// Recent lists the most recently modified notes, newest first. Ties keep
// the enumeration order of the walk.
func (s *Service) Recent() ([]Result, error) {
	type entry struct {
		path    string
		modTime int64
	}

	var entries []entry
	for _, path := range s.listNotes() {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		entries = append(entries, entry{path: path, modTime: info.ModTime().UnixNano()})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].modTime > entries[j].modTime
	})
	if len(entries) > recentLimit {
		entries = entries[:recentLimit]
	}

	results := make([]Result, 0, len(entries))
	for _, e := range entries {
		results = append(results, Result{
			Path:    e.path,
			RelPath: notepath.RelativeTo(s.root, e.path),
			Line:    1,
			Text:    recentPlaceholder,
		})
	}
	return results, nil
}

// Content searches note contents for query via ripgrep. Matching is
// case-insensitive unless the query contains an uppercase letter. A
// missing ripgrep binary degrades to an in-process scan of the same files
// rather than failing the call.
func (s *Service) Content(ctx context.Context, query string) ([]Result, error) {
	out, err := execx.Run(ctx, s.root, s.rgBin,
		"--line-number",
		"--with-filename",
		"--no-heading",
		"--smart-case",
		"--glob", "*.md",
		"--", query, ".",
	)
	if err != nil {
		if errors.Is(err, execx.ErrNotInstalled) {
			s.logger.Warn("ripgrep not installed, using built-in scan", "root", s.root)
			return s.scan(query), nil
		}
		var cmdErr *execx.Error
		if errors.As(err, &cmdErr) && cmdErr.ExitCode == rgExitNoMatch {
			return []Result{}, nil
		}
		return nil, err
	}

	return s.parseMatches(out), nil
}

// parseMatches converts ripgrep's file:line:text output into results.
// Lines that do not match the three-field shape are dropped.
func (s *Service) parseMatches(out string) []Result {
	results := []Result{}
	for line := range strings.Lines(out) {
		line = strings.TrimRight(line, "\n")
		if line == "" {
			continue
		}
		result, ok := s.parseMatch(line)
		if !ok {
			s.logger.Debug("dropping malformed match line", "line", line)
			continue
		}
		results = append(results, result)
	}
	return results
}

func (s *Service) parseMatch(line string) (Result, bool) {
	file, rest, ok := strings.Cut(line, ":")
	if !ok || file == "" {
		return Result{}, false
	}
	lineno, text, ok := strings.Cut(rest, ":")
	if !ok {
		return Result{}, false
	}
	n, err := strconv.Atoi(lineno)
	if err != nil || n < 1 {
		return Result{}, false
	}

	abs := file
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(s.root, filepath.FromSlash(strings.TrimPrefix(file, "./")))
	}
	return Result{
		Path:    abs,
		RelPath: notepath.RelativeTo(s.root, abs),
		Line:    n,
		Text:    text,
	}, true
}

// scan is the list-based fallback used when ripgrep is unavailable. It
// applies the same smart-case rule over the same note enumeration.
func (s *Service) scan(query string) []Result {
	caseSensitive := hasUpper(query)
	needle := query
	if !caseSensitive {
		needle = strings.ToLower(query)
	}

	results := []Result{}
	for _, path := range s.listNotes() {
		content, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		for i, line := range strings.Split(string(content), "\n") {
			haystack := line
			if !caseSensitive {
				haystack = strings.ToLower(line)
			}
			if strings.Contains(haystack, needle) {
				results = append(results, Result{
					Path:    path,
					RelPath: notepath.RelativeTo(s.root, path),
					Line:    i + 1,
					Text:    line,
				})
			}
		}
	}
	return results
}

// listNotes enumerates every .md file under the root in walk order,
// skipping hidden directories such as .git.
func (s *Service) listNotes() []string {
	var notes []string
	_ = filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != s.root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() && strings.HasSuffix(d.Name(), ".md") {
			notes = append(notes, path)
		}
		return nil
	})
	return notes
}

func hasUpper(s string) bool {
	return strings.ContainsFunc(s, unicode.IsUpper)
}
