// Package scan reads directory contents into structured entries.
//
// Entries are read fresh from the filesystem on every call; nothing is
// cached between draws. Per-entry access errors are skipped with a warning
// so one unreadable entry never aborts a render.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"time"

	"github.com/kylesnowschwartz/tree-viz/internal/logger"
)

// Entry is one filesystem object considered during traversal.
type Entry struct {
	Name    string
	IsDir   bool
	ModTime time.Time
	Size    int64 // byte size of the file itself; meaningless for directories
}

// Ignorer reports whether a path relative to the scan root is excluded.
// *ignore.GitIgnore from sabhiram/go-gitignore satisfies this.
type Ignorer interface {
	MatchesPath(rel string) bool
}

// Filter holds the visibility rules applied to a directory listing.
type Filter struct {
	Ignore     []string // shell-glob patterns against bare entry names
	ShowFiles  bool
	ShowHidden bool
	Gitignore  Ignorer // optional; nil disables gitignore matching
}

// Children lists the immediate children of dir, filtered and ordered for
// display. rel is dir's path relative to the scan root, used only for
// gitignore matching ("" for the root itself).
//
// Filter policy, in order: ignore-glob matches are dropped, then non-dirs
// when files are off, then dotfiles when hidden entries are off, then
// gitignore matches. Survivors sort directories-first, then by name.
// Entries whose metadata cannot be read are skipped with a warning.
func Children(dir, rel string, f Filter) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var entries []Entry
	for _, de := range dirents {
		name := de.Name()
		if matchesAny(name, f.Ignore) {
			continue
		}
		if !f.ShowFiles && !de.IsDir() {
			continue
		}
		if !f.ShowHidden && isHidden(name) {
			continue
		}
		if f.Gitignore != nil && matchesGitignore(f.Gitignore, rel, name, de.IsDir()) {
			continue
		}

		info, err := de.Info()
		if err != nil {
			logger.L.Warn("skipping unreadable entry",
				"path", filepath.Join(dir, name), "error", err)
			continue
		}

		entries = append(entries, Entry{
			Name:    name,
			IsDir:   de.IsDir(),
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
	}

	// Directories first, then lexicographic by name. The last entry after
	// this sort is the one that gets the corner connector.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

// DirSize returns the total bytes of all regular files reachable under dir.
// Aggregation ignores every display filter: hidden and ignored files still
// count, so the reported size reflects true on-disk content. Unreadable
// subtrees contribute nothing and are logged.
func DirSize(dir string) int64 {
	var total int64
	_ = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.L.Warn("skipping unreadable path in size aggregation",
				"path", p, "error", err)
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			logger.L.Warn("skipping unstatable file in size aggregation",
				"path", p, "error", err)
			return nil
		}
		total += info.Size()
		return nil
	})
	return total
}

// ValidatePatterns rejects malformed ignore globs up front so a bad pattern
// surfaces as a config error instead of silently never matching.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if _, err := path.Match(p, ""); err != nil {
			return fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
	}
	return nil
}

func matchesAny(name string, patterns []string) bool {
	for _, p := range patterns {
		if ok, err := path.Match(p, name); err == nil && ok {
			return true
		}
	}
	return false
}

// matchesGitignore matches the entry's root-relative path. Directories get
// a trailing slash so dir-only patterns ("build/") apply.
func matchesGitignore(ign Ignorer, rel, name string, isDir bool) bool {
	p := path.Join(rel, name)
	if isDir {
		p += "/"
	}
	return ign.MatchesPath(p)
}

func isHidden(name string) bool {
	return len(name) > 0 && name[0] == '.'
}
