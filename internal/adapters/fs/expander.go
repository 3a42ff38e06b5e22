package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
	"go.trai.ch/rerun/internal/core/domain"
	"go.trai.ch/zerr"
)

const globMeta = "*?[{"

// Expander implements ports.PathExpander using gobwas/glob over a directory walk.
type Expander struct {
	walker *Walker
	stat   func(string) (os.FileInfo, error)
	lstat  func(string) (os.FileInfo, error)
}

// NewExpander creates a new Expander.
func NewExpander(walker *Walker) *Expander {
	return &Expander{
		walker: walker,
		stat:   os.Stat,
		lstat:  os.Lstat,
	}
}

// Expand resolves pattern against the working directory.
//
// A pattern without glob metacharacters names a single path and matches it
// only if it exists. A trailing slash restricts matches to directories.
// Results are absolute and in lexical order.
func (e *Expander) Expand(ctx context.Context, pattern string, cache *domain.StatCache) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p := filepath.ToSlash(pattern)
	dirOnly := strings.HasSuffix(p, "/")
	if trimmed := strings.TrimRight(p, "/"); trimmed != "" {
		p = trimmed
	}

	base := ""
	if strings.HasPrefix(p, "/") {
		base, p = "/", strings.TrimLeft(p, "/")
	}

	return e.expand(ctx, pattern, base, strings.Split(p, "/"), dirOnly, cache)
}

// expand resolves segs below the literal path base, which is empty for the
// working directory.
func (e *Expander) expand(
	ctx context.Context,
	pattern, base string,
	segs []string,
	dirOnly bool,
	cache *domain.StatCache,
) ([]string, error) {
	first := slices.IndexFunc(segs, func(seg string) bool {
		return strings.ContainsAny(seg, globMeta)
	})
	if first < 0 {
		return e.expandLiteral(joinPath(base, segs), dirOnly, cache)
	}

	prefix := joinPath(base, segs[:first])
	hasPrefix := prefix != ""
	switch {
	case prefix == "":
		prefix = "."
	case filepath.VolumeName(prefix) == prefix:
		prefix += "/"
	}

	rest := segs[first:]
	if at := slices.Index(rest, ".."); at > 0 {
		return e.expandParent(ctx, pattern, prefix, rest, at, hasPrefix, dirOnly, cache)
	}
	return e.expandGlob(ctx, pattern, prefix, rest, hasPrefix, dirOnly, cache)
}

// expandParent resolves a pattern with ".." after a wildcard. The segments
// before it match directories, and the rest resolves lexically below each.
func (e *Expander) expandParent(
	ctx context.Context,
	pattern, base string,
	rest []string,
	at int,
	hasPrefix, dirOnly bool,
	cache *domain.StatCache,
) ([]string, error) {
	dirs, err := e.expandGlob(ctx, pattern, base, rest[:at], hasPrefix, true, cache)
	if err != nil {
		return nil, err
	}

	var matched []string
	for _, dir := range dirs {
		paths, err := e.expand(ctx, pattern, filepath.ToSlash(dir), rest[at:], dirOnly, cache)
		if err != nil {
			return nil, err
		}
		matched = append(matched, paths...)
	}
	return matched, nil
}

func (e *Expander) expandLiteral(p string, dirOnly bool, cache *domain.StatCache) ([]string, error) {
	abs, err := filepath.Abs(filepath.FromSlash(p))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrExpansionFailed.Error()), "pattern", p)
	}

	st, ok, err := e.lookup(abs, cache)
	if err != nil || !ok {
		return nil, err
	}
	if dirOnly && !st.IsDir {
		return nil, nil
	}
	return []string{abs}, nil
}

func (e *Expander) expandGlob(
	ctx context.Context,
	pattern, base string,
	rest []string,
	hasPrefix, dirOnly bool,
	cache *domain.StatCache,
) ([]string, error) {
	matchers, err := compile(rest)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidPattern.Error()), "pattern", pattern)
	}

	root, err := filepath.Abs(filepath.FromSlash(base))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrExpansionFailed.Error()), "pattern", pattern)
	}

	// Symlinked directories are followed like a shell would, except below
	// a "**" segment.
	opts := WalkOptions{Hidden: namesHidden(rest), SymlinkDepth: len(rest)}
	if at := slices.IndexFunc(rest, isGlobstar); at >= 0 {
		opts.SymlinkDepth = at
	} else {
		opts.MaxDepth = len(rest)
	}

	var matched []string

	// "src/**" matches src itself as well as everything below it.
	if hasPrefix && strings.Join(rest, "/") == "**" {
		st, ok, err := e.lookup(root, cache)
		if err != nil {
			return nil, err
		}
		if ok && (!dirOnly || st.IsDir) {
			matched = append(matched, root)
		}
	}

	for entry, err := range e.walker.Walk(root, opts) {
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrExpansionFailed.Error()), "pattern", pattern)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !matchAny(matchers, entry.Rel) {
			continue
		}

		st, ok, err := e.lookup(entry.Path, cache)
		if err != nil {
			return nil, err
		}
		if !ok || (dirOnly && !st.IsDir) {
			continue
		}
		matched = append(matched, entry.Path)
	}

	return matched, nil
}

// lookup returns the cached metadata for path, stat'ing and caching it on a
// miss. A path that does not exist reports ok == false.
func (e *Expander) lookup(path string, cache *domain.StatCache) (domain.FileStat, bool, error) {
	if st, ok := cache.Get(path); ok {
		return st, true, nil
	}

	info, err := e.stat(path)
	if errors.Is(err, os.ErrNotExist) {
		// Dangling symlinks still count as matches, with their own times.
		info, err = e.lstat(path)
	}
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.FileStat{}, false, nil
		}
		return domain.FileStat{}, false, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
	}

	st := domain.FileStat{ModTime: info.ModTime(), IsDir: info.IsDir()}
	cache.Put(path, st)
	return st, true, nil
}

// compile builds matchers for the glob remainder of a pattern. A "**"
// segment also matches zero directories, so "**/*.c" matches "main.c".
func compile(rest []string) ([]glob.Glob, error) {
	variants := []string{strings.Join(rest, "/")}
	if hasGlobstar(rest) {
		var collapsed []string
		for _, seg := range rest {
			if seg != "**" {
				collapsed = append(collapsed, seg)
			}
		}
		if len(collapsed) > 0 && len(collapsed) < len(rest) {
			variants = append(variants, strings.Join(collapsed, "/"))
		}
	}

	matchers := make([]glob.Glob, 0, len(variants))
	for _, v := range variants {
		g, err := glob.Compile(v, '/')
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, g)
	}
	return matchers, nil
}

func matchAny(matchers []glob.Glob, rel string) bool {
	for _, m := range matchers {
		if m.Match(rel) {
			return true
		}
	}
	return false
}

func hasGlobstar(rest []string) bool {
	return slices.ContainsFunc(rest, isGlobstar)
}

func isGlobstar(seg string) bool {
	return strings.Contains(seg, "**")
}

// joinPath appends slash-separated segments to base.
func joinPath(base string, segs []string) string {
	p := strings.Join(segs, "/")
	switch {
	case base == "":
		return p
	case p == "":
		return base
	case strings.HasSuffix(base, "/"):
		return base + p
	default:
		return base + "/" + p
	}
}

func namesHidden(rest []string) bool {
	for _, seg := range rest {
		if strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}
