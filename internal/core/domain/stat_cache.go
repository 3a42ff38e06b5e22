package domain

import "time"

// FileStat is the metadata rerun keeps for a matched path.
type FileStat struct {
	ModTime time.Time
	IsDir   bool
}

// StatCache maps absolute matched paths to their metadata for one invocation.
//
// It is owned by a single run and is not safe for concurrent use. Once a path
// has an entry, that entry is authoritative until the cache is dropped; the
// filesystem is not consulted again for it.
type StatCache struct {
	entries map[string]FileStat
}

// NewStatCache creates an empty StatCache.
func NewStatCache() *StatCache {
	return &StatCache{
		entries: make(map[string]FileStat),
	}
}

// Get returns the cached metadata for path.
func (c *StatCache) Get(path string) (FileStat, bool) {
	st, ok := c.entries[path]
	return st, ok
}

// Put records metadata for path. An existing entry is kept as is.
func (c *StatCache) Put(path string, st FileStat) {
	if _, ok := c.entries[path]; ok {
		return
	}
	c.entries[path] = st
}

// Len returns the number of cached paths.
func (c *StatCache) Len() int {
	return len(c.entries)
}

// FirstDir returns the first path in paths whose cached entry is a directory.
// Paths without an entry are never returned.
func (c *StatCache) FirstDir(paths []string) (string, bool) {
	for _, p := range paths {
		if st, ok := c.entries[p]; ok && st.IsDir {
			return p, true
		}
	}
	return "", false
}
