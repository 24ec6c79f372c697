package indexer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gnana997/styleaudit/pkg/scanner"
)

// MatchIndex caches per-file match records keyed by absolute path.
//
// Entries carry a sha256 of the source they were computed from, so callers
// can cheaply tell whether a file needs re-scanning. An LRU bound keeps
// memory flat on large trees; dirty tracking lets the watcher invalidate
// instantly and re-scan lazily.
//
// Safe for concurrent use.
type MatchIndex struct {
	cache *lru.Cache[string, *FileEntry]
	dirty map[string]bool
	mu    sync.RWMutex

	indexedFiles atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	evictions    atomic.Int64

	config MatchIndexConfig
	logger *slog.Logger
}

// NewMatchIndex creates an index ready for use.
func NewMatchIndex(config MatchIndexConfig, logger *slog.Logger) *MatchIndex {
	if config.MaxCachedFiles == 0 {
		config.MaxCachedFiles = DefaultMatchIndexConfig().MaxCachedFiles
	}
	if logger == nil {
		logger = slog.Default()
	}

	idx := &MatchIndex{
		dirty:  make(map[string]bool),
		config: config,
		logger: logger,
	}

	cache, err := lru.NewWithEvict(config.MaxCachedFiles, func(key string, value *FileEntry) {
		idx.evictions.Add(1)
		if config.Debug {
			logger.Debug("index evicting file", "path", key, "matches", len(value.Matches))
		}
	})
	if err != nil {
		// Only possible with a non-positive size, which defaults prevent.
		panic(fmt.Sprintf("failed to create match index cache: %v", err))
	}
	idx.cache = cache
	return idx
}

// HashContent returns the hex sha256 digest the index uses for change
// detection.
func HashContent(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// Put indexes one file's matches, replacing any previous entry and clearing
// its dirty flag.
func (idx *MatchIndex) Put(path string, content []byte, fm scanner.FileMatches) *FileEntry {
	entry := &FileEntry{
		Path:        path,
		ContentHash: HashContent(content),
		Matches:     fm.Matches,
		Diagnostics: fm.Diagnostics,
		IndexedAt:   time.Now().UnixMilli(),
	}

	idx.mu.Lock()
	idx.cache.Add(path, entry)
	delete(idx.dirty, path)
	idx.mu.Unlock()

	idx.indexedFiles.Add(1)
	if idx.config.Debug {
		idx.logger.Debug("indexed file", "path", path, "matches", len(fm.Matches))
	}
	return entry
}

// Get returns the cached entry for path. Dirty entries are treated as
// misses so callers re-scan before trusting stale records.
func (idx *MatchIndex) Get(path string) (*FileEntry, bool) {
	idx.mu.RLock()
	if idx.dirty[path] {
		idx.mu.RUnlock()
		idx.cacheMisses.Add(1)
		return nil, false
	}
	entry, ok := idx.cache.Get(path)
	idx.mu.RUnlock()

	if !ok {
		idx.cacheMisses.Add(1)
		return nil, false
	}
	idx.cacheHits.Add(1)
	return entry, true
}

// Changed reports whether content differs from what the entry for path was
// computed from. Unknown paths count as changed.
func (idx *MatchIndex) Changed(path string, content []byte) bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if idx.dirty[path] {
		return true
	}
	entry, ok := idx.cache.Peek(path)
	if !ok {
		return true
	}
	return entry.ContentHash != HashContent(content)
}

// MarkDirty flags path so the next Get misses.
func (idx *MatchIndex) MarkDirty(path string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	if _, ok := idx.cache.Peek(path); ok {
		idx.dirty[path] = true
	}
}

// Remove drops path from the index entirely.
func (idx *MatchIndex) Remove(path string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.cache.Remove(path)
	delete(idx.dirty, path)
}

// Paths returns every indexed path, including dirty ones.
func (idx *MatchIndex) Paths() []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.cache.Keys()
}

// Stats returns a snapshot of the index counters.
func (idx *MatchIndex) Stats() MatchIndexStats {
	idx.mu.RLock()
	cached := idx.cache.Len()
	dirtyCount := len(idx.dirty)
	totalMatches := 0
	for _, key := range idx.cache.Keys() {
		if entry, ok := idx.cache.Peek(key); ok {
			totalMatches += len(entry.Matches)
		}
	}
	idx.mu.RUnlock()

	return MatchIndexStats{
		IndexedFiles: idx.indexedFiles.Load(),
		CachedFiles:  cached,
		DirtyFiles:   dirtyCount,
		CacheHits:    idx.cacheHits.Load(),
		CacheMisses:  idx.cacheMisses.Load(),
		Evictions:    idx.evictions.Load(),
		TotalMatches: totalMatches,
	}
}

// Purge empties the index.
func (idx *MatchIndex) Purge() {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.cache.Purge()
	idx.dirty = make(map[string]bool)
}
