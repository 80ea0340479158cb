package domain

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/outfitter-dev/recast/internal/adapter"
	m "github.com/outfitter-dev/recast/internal/model"
)

// Selector enumerates candidate files under a root. It matches the
// include extensions, refuses to descend into the fixed ignore set, and
// applies any per-run exclusion regexes on top. Selection has no side
// effects; unreadable individual files surface later, per file.
type Selector struct {
	fs      adapter.SourceFSAdapter
	exclude []*regexp.Regexp
}

// NewSelector builds a Selector. Exclude patterns are compiled eagerly so
// a bad regex fails the run before any file is touched.
func NewSelector(fs adapter.SourceFSAdapter, exclude []string) (*Selector, error) {
	compiled := make([]*regexp.Regexp, 0, len(exclude))

	for _, pattern := range exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		compiled = append(compiled, re)
	}

	return &Selector{fs: fs, exclude: compiled}, nil
}

// Select returns the candidate files under root as paths relative to
// root, sorted for deterministic reporting. An unreadable root is a hard
// failure for the whole run.
func (s *Selector) Select(root m.Path) ([]m.Path, error) {
	rootStr, recursive := parseRootPath(string(root))

	info, err := s.fs.FileInfo(m.Path(rootStr))
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	if !info.IsDir() {
		if s.includes(filepath.Base(rootStr)) {
			return []m.Path{m.Path(filepath.Base(rootStr))}, nil
		}

		return nil, nil
	}

	var selected []m.Path

	err = s.fs.Walk(m.Path(rootStr), recursive, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path != rootStr && ignoreDirs[info.Name()] {
				return filepath.SkipDir
			}

			return nil
		}

		rel, relErr := s.fs.RelPath(m.Path(rootStr), m.Path(path))
		if relErr != nil {
			return relErr
		}

		if !s.includes(path) || s.excluded(string(rel)) {
			return nil
		}

		selected = append(selected, rel)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", rootStr, err)
	}

	sort.Slice(selected, func(i, j int) bool { return selected[i] < selected[j] })

	return selected, nil
}

// Root resolves the directory part of a path argument, stripping the
// recursive marker. A single-file argument resolves to its directory so
// relative reporting stays consistent.
func (s *Selector) Root(root m.Path) m.Path {
	rootStr, _ := parseRootPath(string(root))

	if info, err := s.fs.FileInfo(m.Path(rootStr)); err == nil && !info.IsDir() {
		return m.Path(filepath.Dir(rootStr))
	}

	return m.Path(rootStr)
}

func (s *Selector) includes(path string) bool {
	return includeExtensions[strings.ToLower(filepath.Ext(path))]
}

func (s *Selector) excluded(rel string) bool {
	rel = filepath.ToSlash(rel)

	for _, re := range s.exclude {
		if re.MatchString(rel) {
			return true
		}
	}

	return false
}

// parseRootPath interprets Go-style path arguments: "dir/..." walks
// recursively. A bare directory is recursive too; a codemod's default is
// the whole tree.
func parseRootPath(root string) (string, bool) {
	if strings.HasSuffix(root, "/...") {
		trimmed := strings.TrimSuffix(root, "/...")
		if trimmed == "" {
			trimmed = "."
		}

		return trimmed, true
	}

	if root == "..." {
		return ".", true
	}

	return root, true
}
