package domain

import "time"

// Epoch is the newest modification time of an empty path list.
var Epoch = time.Unix(0, 0)

// NewestModTime returns the latest modification time among paths, reading
// metadata only from cache. Paths missing from the cache are skipped.
// It returns Epoch when no path contributes.
func NewestModTime(paths []string, cache *StatCache) time.Time {
	newest := Epoch
	for _, p := range paths {
		st, ok := cache.Get(p)
		if !ok {
			continue
		}
		if st.ModTime.After(newest) {
			newest = st.ModTime
		}
	}
	return newest
}

// IsStale reports whether the sources are strictly newer than the targets.
// Equal times do not count as stale, so coarse filesystem clocks can hide an
// edit made in the same tick as the last build.
func IsStale(sourceNewest, targetNewest time.Time) bool {
	return sourceNewest.After(targetNewest)
}
