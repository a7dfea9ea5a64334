package scan

import (
	"context"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Report receives the findings of files linted again after a change. Files
// that no longer have findings are reported with none.
type Report func(file string, findings []Finding)

// Watch lints files under the roots again whenever they change, until ctx is
// done. Changes are collected until the sources have been quiet for
// debounce. Directories created later are watched as well.
func (l *Linter) Watch(ctx context.Context, roots []string, debounce time.Duration, report Report) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	defer fsw.Close()

	abs := make([]string, 0, len(roots))
	for _, root := range roots {
		r, err := filepath.Abs(root)
		if err != nil {
			return fmt.Errorf("failed to resolve root path: %w", err)
		}
		fi, err := os.Stat(r)
		if err != nil {
			return err
		}
		if !fi.IsDir() {
			// files are watched through their directory
			if err := fsw.Add(filepath.Dir(r)); err != nil {
				return fmt.Errorf("watching directory %s: %w", filepath.Dir(r), err)
			}
			abs = append(abs, r)
			continue
		}
		if err := l.addTree(fsw, r, r); err != nil {
			return err
		}
		abs = append(abs, r)
	}
	l.log.Info("Watching for changes", zap.Strings("roots", abs), zap.Duration("debounce", debounce))

	var (
		pending = make(map[string]bool)
		timer   = time.NewTimer(debounce)
	)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			root, selected := l.selectPath(abs, event.Name)
			if !selected {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
					if err := l.addTree(fsw, root, event.Name); err != nil {
						l.log.Warn("Unable to watch new directory", zap.String("dir", event.Name), zap.Error(err))
					}
					continue
				}
			}
			pending[event.Name] = true
			timer.Reset(debounce)

		case <-timer.C:
			for _, path := range slices.Sorted(maps.Keys(pending)) {
				l.relint(path, report)
			}
			clear(pending)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			l.log.Warn("File watcher error", zap.Error(err))
		}
	}
}

// addTree watches dir and every directory below it which is not excluded
// relative to root.
func (l *Linter) addTree(fsw *fsnotify.Watcher, root, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if path != root && l.matcher.Excluded(relative(root, path)) {
			return filepath.SkipDir
		}
		if err := fsw.Add(path); err != nil {
			return fmt.Errorf("watching directory %s: %w", path, err)
		}
		return nil
	})
}

// selectPath finds the root a changed path belongs to. Roots naming files
// select only themselves, directory roots apply the patterns. Directories
// are selected when they are not excluded so that they can be watched.
func (l *Linter) selectPath(roots []string, path string) (string, bool) {
	for _, root := range roots {
		if path == root {
			return root, true
		}
		rel, err := filepath.Rel(root, path)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		rel = filepath.ToSlash(rel)
		if fi, err := os.Stat(path); err == nil && fi.IsDir() {
			return root, !l.matcher.Excluded(rel)
		}
		return root, l.matcher.Match(rel)
	}
	return "", false
}

func (l *Linter) relint(path string, report Report) {
	fi, err := os.Stat(path)
	switch {
	case err != nil:
		// removed or renamed away
		report(path, nil)
		return
	case fi.IsDir():
		return
	}
	findings, err := l.LintFile(path)
	if err != nil {
		l.log.Warn("Unable to lint changed file", zap.String("file", path), zap.Error(err))
		return
	}
	report(path, findings)
}
