// Package scan finds class lists in source files and checks every class
// against the compiler, optionally watching the sources for changes.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher selects source files by include and exclude glob patterns relative
// to a root directory. Exclusions win and prune whole directories.
type Matcher struct {
	include []string
	exclude []string
}

// NewMatcher validates the patterns. An empty include list selects every
// file that is not excluded.
func NewMatcher(include, exclude []string) (*Matcher, error) {
	for _, pattern := range exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern: %s", pattern)
		}
	}
	for _, pattern := range include {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid include pattern: %s", pattern)
		}
	}
	return &Matcher{include: include, exclude: exclude}, nil
}

// Excluded reports whether the slash separated relative path matches an
// exclude pattern.
func (m *Matcher) Excluded(rel string) bool {
	return slices.ContainsFunc(m.exclude, func(pattern string) bool {
		ok, _ := doublestar.Match(pattern, rel)
		return ok
	})
}

// Match reports whether a file at the slash separated relative path is
// selected.
func (m *Matcher) Match(rel string) bool {
	if m.Excluded(rel) {
		return false
	}
	if len(m.include) == 0 {
		return true
	}
	return slices.ContainsFunc(m.include, func(pattern string) bool {
		ok, _ := doublestar.Match(pattern, rel)
		return ok
	})
}

// Discover returns the selected files under root as sorted absolute paths.
// A root naming a file is returned as is, patterns do not apply to files
// given explicitly.
func (m *Matcher) Discover(root string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path: %w", err)
	}
	fi, err := os.Stat(absRoot)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return []string{absRoot}, nil
	}

	var files []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// continue walking on errors
			return nil
		}
		rel := relative(absRoot, path)
		if d.IsDir() {
			if path != absRoot && m.Excluded(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() && m.Match(rel) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}

// relative returns path relative to root with forward slashes, the form
// patterns are written in.
func relative(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	return filepath.ToSlash(rel)
}
