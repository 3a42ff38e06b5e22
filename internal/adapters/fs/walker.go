// Package fs provides file system adapters for expanding patterns and touching paths.
package fs

import (
	"errors"
	iofs "io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// Entry is a filesystem entry found below a walk root.
type Entry struct {
	// Path is the entry's path, rooted like the walk root.
	Path string
	// Rel is the slash-separated path relative to the walk root.
	Rel   string
	IsDir bool
}

// WalkOptions controls which entries a walk visits.
type WalkOptions struct {
	// MaxDepth limits how many path segments below the root are visited.
	// Zero or less means unlimited.
	MaxDepth int
	// Hidden includes entries whose name starts with a dot.
	Hidden bool
	// SymlinkDepth is the deepest level at which symlinked directories are
	// descended into. Zero follows none. The root itself is always resolved.
	SymlinkDepth int
}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Walk yields every entry below root in lexical order, excluding root itself.
// A missing root yields nothing. Any other walk error is yielded once and
// ends the sequence.
//
// Paths are reported below root as given, even when root or a followed
// directory is a symlink.
func (w *Walker) Walk(root string, opts WalkOptions) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		info, err := os.Stat(root)
		if err != nil {
			if !errors.Is(err, iofs.ErrNotExist) {
				yield(Entry{}, err)
			}
			return
		}
		if !info.IsDir() {
			return
		}

		w.walk(root, "", opts, yield)
	}
}

// walk visits the children of dir. It reports whether the walk should go on.
func (w *Walker) walk(dir, rel string, opts WalkOptions, yield func(Entry, error) bool) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return true
		}
		yield(Entry{}, err)
		return false
	}

	for _, d := range entries {
		name := d.Name()
		if !opts.Hidden && strings.HasPrefix(name, ".") {
			continue
		}

		path := filepath.Join(dir, name)
		childRel := name
		if rel != "" {
			childRel = rel + "/" + name
		}

		isDir, descend := d.IsDir(), d.IsDir()
		if d.Type()&iofs.ModeSymlink != 0 {
			// Dangling links and links to files stay plain entries.
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				isDir = true
				descend = depth(childRel) <= opts.SymlinkDepth
			}
		}

		if !yield(Entry{Path: path, Rel: childRel, IsDir: isDir}, nil) {
			return false
		}

		if !descend || (opts.MaxDepth > 0 && depth(childRel) >= opts.MaxDepth) {
			continue
		}
		if !w.walk(path, childRel, opts, yield) {
			return false
		}
	}

	return true
}

func depth(rel string) int {
	return strings.Count(rel, "/") + 1
}
