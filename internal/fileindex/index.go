// Package fileindex maintains an in-memory index of markdown files
// and serves fuzzy path search for the file finder.
package fileindex

import (
	"sync"
	"time"
)

// Index caches the discovered markdown file paths. It is refreshed in
// the background and re-checked for staleness when the terminal
// regains focus, so results stay fresh without rescanning on every
// search keystroke.
type Index struct {
	mu          sync.RWMutex
	paths       []string
	lastRefresh time.Time
}

// NewIndex creates an empty index. An empty index always reports
// stale so the first refresh happens immediately.
func NewIndex() *Index {
	return &Index{}
}

// Paths returns a copy of the indexed paths.
func (ix *Index) Paths() []string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	out := make([]string, len(ix.paths))
	copy(out, ix.paths)
	return out
}

// Update replaces the indexed paths and resets the refresh clock.
func (ix *Index) Update(paths []string) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.paths = paths
	ix.lastRefresh = time.Now()
}

// Empty reports whether the index holds no paths.
func (ix *Index) Empty() bool {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.paths) == 0
}

// Stale reports whether the last refresh is older than threshold.
// An index that has never been refreshed is always stale.
func (ix *Index) Stale(threshold time.Duration) bool {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if ix.lastRefresh.IsZero() {
		return true
	}
	return time.Since(ix.lastRefresh) > threshold
}

// Count returns the number of indexed paths.
func (ix *Index) Count() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.paths)
}
