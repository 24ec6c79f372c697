// Package indexer keeps per-file match records in an LRU-bounded index with
// content-hash change detection, and wires a filesystem watcher that keeps
// the index current as component sources change.
package indexer

import (
	"github.com/gnana997/styleaudit/pkg/match"
)

// FileEntry is one indexed file's match records.
type FileEntry struct {
	Path        string             `json:"path"`
	ContentHash string             `json:"contentHash"`
	Matches     []match.Match      `json:"matches"`
	Diagnostics []match.Diagnostic `json:"diagnostics,omitempty"`
	IndexedAt   int64              `json:"indexedAt"` // Unix millis
}

// MatchIndexConfig controls index sizing.
type MatchIndexConfig struct {
	// MaxCachedFiles bounds the LRU. Zero uses the default.
	MaxCachedFiles int
	// Debug enables per-file index logging.
	Debug bool
}

// DefaultMatchIndexConfig covers typical component trees.
func DefaultMatchIndexConfig() MatchIndexConfig {
	return MatchIndexConfig{MaxCachedFiles: 1000}
}

// MatchIndexStats is a point-in-time snapshot of index counters.
type MatchIndexStats struct {
	IndexedFiles int64 `json:"indexedFiles"`
	CachedFiles  int   `json:"cachedFiles"`
	DirtyFiles   int   `json:"dirtyFiles"`
	CacheHits    int64 `json:"cacheHits"`
	CacheMisses  int64 `json:"cacheMisses"`
	Evictions    int64 `json:"evictions"`
	TotalMatches int   `json:"totalMatches"`
}

// WatchOptions configures the file watcher.
type WatchOptions struct {
	// DebounceMs groups rapid successive writes into one re-scan. Zero uses
	// the 200ms default.
	DebounceMs int
}

// DefaultWatchOptions returns the standard debounce window.
func DefaultWatchOptions() WatchOptions {
	return WatchOptions{DebounceMs: 200}
}
