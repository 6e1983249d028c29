package render

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/kylesnowschwartz/tree-viz/config"
	"github.com/kylesnowschwartz/tree-viz/internal/logger"
	"github.com/kylesnowschwartz/tree-viz/internal/scan"
)

// Tree glyphs. A wall segment keeps the vertical continuation line for
// pending siblings; a space segment ends it after a last child.
const (
	connectorBranch = "├──"
	connectorCorner = "└──"
	prefixWall      = "│  "
	prefixSpace     = "   "
)

// ExportFilename is the fixed name of the plain-text export file, written
// inside the caller-supplied save directory.
const ExportFilename = "tree_structure.txt"

const timeLayout = "2006-01-02 15:04"

// ErrNotDirectory is returned by Draw when the configured root does not
// exist or is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// TreeRenderer renders a directory hierarchy as a connector-glyph tree.
// Each instance is bound to the root fixed in its Options.
type TreeRenderer struct {
	opts      config.Options
	theme     Theme
	useColor  bool
	w         io.Writer
	gitignore scan.Ignorer
}

// New creates a tree renderer writing printed output and save notices to w.
// When useColor is false the terminal output is the same plain text that a
// file export produces.
//
// If Options.UseGitignore is set, <root>/.gitignore is compiled here once; a
// missing file silently disables the feature, an unreadable one is logged.
func New(w io.Writer, opts config.Options, useColor bool) *TreeRenderer {
	r := &TreeRenderer{
		opts:     opts,
		theme:    DefaultTheme(),
		useColor: useColor,
		w:        w,
	}

	if opts.UseGitignore {
		gi, err := ignore.CompileIgnoreFile(filepath.Join(opts.Root, ".gitignore"))
		switch {
		case err == nil:
			r.gitignore = gi
		case errors.Is(err, fs.ErrNotExist):
			// no .gitignore at the root; nothing to apply
		default:
			logger.L.Warn("gitignore unavailable", "root", opts.Root, "error", err)
		}
	}

	return r
}

// Draw renders the whole tree.
//
// If savePath is non-empty, the plain-text serialization is written to
// ExportFilename inside it and the location is reported to the writer; the
// export is independent of asString. With asString true the (styled) text
// is returned without printing, otherwise it is printed and "" is returned.
//
// The only fatal precondition is the root: if it is not an existing
// directory, Draw fails with ErrNotDirectory before producing any output.
// An export write failure is returned as an error, but the rendered text is
// still returned alongside it since it remains valid.
func (r *TreeRenderer) Draw(asString bool, savePath string) (string, error) {
	info, err := os.Stat(r.opts.Root)
	if err != nil {
		return "", fmt.Errorf("%s: %w", r.opts.Root, ErrNotDirectory)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s: %w", r.opts.Root, ErrNotDirectory)
	}

	lines := []Line{r.rootLine(info)}
	lines = append(lines, r.subtree(r.opts.Root, "", nil)...)

	out := r.serialize(lines)

	if savePath != "" {
		dst := filepath.Join(savePath, ExportFilename)
		if err := os.WriteFile(dst, []byte(PlainText(lines)), 0o644); err != nil {
			return out, fmt.Errorf("saving tree structure: %w", err)
		}
		fmt.Fprintf(r.w, "Tree structure saved to %s\n", dst)
	}

	if asString {
		return out, nil
	}
	fmt.Fprintln(r.w, out)
	return "", nil
}

// subtree emits the lines for the ordered, filtered children of dir,
// depth-first. parentIsLast records the last-child state of every ancestor
// and determines whether each prefix level is a wall or a space. rel is
// dir's path relative to the root, carried for gitignore matching.
//
// Listing errors below the root are not fatal: the directory simply renders
// with no children and the failure is logged.
func (r *TreeRenderer) subtree(dir, rel string, parentIsLast []bool) []Line {
	entries, err := scan.Children(dir, rel, scan.Filter{
		Ignore:     r.opts.Ignore,
		ShowFiles:  r.opts.ShowFiles,
		ShowHidden: r.opts.ShowHidden,
		Gitignore:  r.gitignore,
	})
	if err != nil {
		logger.L.Warn("skipping unreadable directory", "path", dir, "error", err)
		return nil
	}

	var lines []Line
	for i, e := range entries {
		isLast := i == len(entries)-1
		lines = append(lines, r.entryLine(dir, e, isLast, parentIsLast))

		if e.IsDir {
			lines = append(lines, r.subtree(
				filepath.Join(dir, e.Name),
				filepath.ToSlash(filepath.Join(rel, e.Name)),
				append(parentIsLast, isLast))...)
		}
	}
	return lines
}

// entryLine builds one row: prefix + connector, then the styled label, then
// any annotations.
func (r *TreeRenderer) entryLine(dir string, e scan.Entry, isLast bool, parentIsLast []bool) Line {
	var frame strings.Builder
	for _, wasLast := range parentIsLast {
		if wasLast {
			frame.WriteString(prefixSpace)
		} else {
			frame.WriteString(prefixWall)
		}
	}
	if isLast {
		frame.WriteString(connectorCorner)
	} else {
		frame.WriteString(connectorBranch)
	}
	frame.WriteString(" ")

	line := Line{{Text: frame.String(), Tag: TagFrame}}
	if e.IsDir {
		line = append(line, Segment{Text: e.Name + "/", Tag: TagDir})
	} else {
		line = append(line, Segment{Text: e.Name, Tag: TagFile})
	}
	return append(line, r.annotations(filepath.Join(dir, e.Name), e.IsDir, e.ModTime, e.Size)...)
}

// rootLine is the first row: the root's own name and annotations, no frame.
func (r *TreeRenderer) rootLine(info fs.FileInfo) Line {
	line := Line{{Text: rootLabel(r.opts.Root), Tag: TagDir}}
	return append(line, r.annotations(r.opts.Root, true, info.ModTime(), 0)...)
}

// rootLabel is the root's base name with a trailing separator. The
// filesystem root is its own separator already, so it is not doubled.
func rootLabel(root string) string {
	base := filepath.Base(root)
	if base == string(filepath.Separator) {
		return base
	}
	return base + "/"
}

// annotations returns the optional bracketed suffixes. Directory sizes are
// the recursive total of all contained file bytes, computed independently
// of the active filters: what a directory weighs does not change with what
// is currently visible.
func (r *TreeRenderer) annotations(path string, isDir bool, modTime time.Time, size int64) []Segment {
	var segs []Segment
	if r.opts.ShowModifiedTime {
		segs = append(segs, Segment{
			Text: " [Modified: " + modTime.Format(timeLayout) + "]",
			Tag:  TagAnnotation,
		})
	}
	if r.opts.ShowSize {
		if isDir {
			size = scan.DirSize(path)
		}
		segs = append(segs, Segment{
			Text: " [Size: " + FormatSize(size) + "]",
			Tag:  TagAnnotation,
		})
	}
	return segs
}

func (r *TreeRenderer) serialize(lines []Line) string {
	if r.useColor {
		return StyledText(lines, r.theme)
	}
	return PlainText(lines)
}
