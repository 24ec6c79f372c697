package util

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/edsrzf/mmap-go"
)

// FileCache hands out source file contents backed by memory-mapped files,
// so repeated scans of the same file (watch mode, MCP tools) avoid repeated
// reads. Falls back to os.ReadFile when mmap is unavailable.
//
// Safe for concurrent use.
type FileCache interface {
	// Content returns the full file contents. Loads and maps the file on
	// first access.
	Content(path string) (string, error)

	// Bytes returns the raw mapped region for path. The slice is only valid
	// until Close.
	Bytes(path string) ([]byte, error)

	// Invalidate drops path from the cache so the next access re-reads it.
	Invalidate(path string)

	// Size returns the number of currently cached files.
	Size() int

	// Stats returns cumulative cache metrics.
	Stats() FileCacheStats

	// Close unmaps everything. The cache is reusable afterward.
	Close() error
}

// FileCacheConfig bounds the cache. Zero values mean unlimited.
type FileCacheConfig struct {
	// MaxFiles caps the number of concurrently mapped files.
	MaxFiles int
	// MaxMemoryMB caps total mapped virtual memory.
	MaxMemoryMB int
	// Logger receives mmap fallback warnings. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultFileCacheConfig covers component trees up to tens of thousands of
// source files.
func DefaultFileCacheConfig() *FileCacheConfig {
	return &FileCacheConfig{
		MaxFiles:    10000,
		MaxMemoryMB: 2048,
	}
}

// FileCacheStats carries cumulative counters plus a point-in-time size.
type FileCacheStats struct {
	FilesLoaded   int64
	FilesCached   int
	CacheHits     int64
	CacheMisses   int64
	MmapFailures  int64
	TotalMappedMB float64
}

type mappedFile struct {
	data   mmap.MMap
	file   *os.File // nil for fallback entries
	mapped bool
}

type fileCache struct {
	config *FileCacheConfig
	logger *slog.Logger

	mu    sync.RWMutex
	files map[string]*mappedFile

	statsMu sync.Mutex
	stats   FileCacheStats
}

// NewFileCache creates a FileCache; nil config uses defaults.
func NewFileCache(config *FileCacheConfig) FileCache {
	if config == nil {
		config = DefaultFileCacheConfig()
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &fileCache{
		config: config,
		logger: logger,
		files:  make(map[string]*mappedFile),
	}
}

func (fc *fileCache) Content(path string) (string, error) {
	data, err := fc.Bytes(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (fc *fileCache) Bytes(path string) ([]byte, error) {
	fc.mu.RLock()
	if mf, ok := fc.files[path]; ok {
		fc.mu.RUnlock()
		fc.bump(func(s *FileCacheStats) { s.CacheHits++ })
		return mf.data, nil
	}
	fc.mu.RUnlock()

	fc.mu.Lock()
	defer fc.mu.Unlock()

	// Another goroutine may have loaded it while we waited.
	if mf, ok := fc.files[path]; ok {
		fc.bump(func(s *FileCacheStats) { s.CacheHits++ })
		return mf.data, nil
	}

	fc.bump(func(s *FileCacheStats) { s.CacheMisses++ })

	if err := fc.checkLimits(path); err != nil {
		return nil, err
	}

	mf, err := fc.load(path)
	if err != nil {
		return nil, err
	}
	fc.files[path] = mf
	fc.bump(func(s *FileCacheStats) { s.FilesLoaded++ })
	return mf.data, nil
}

func (fc *fileCache) checkLimits(path string) error {
	if fc.config.MaxFiles > 0 && len(fc.files) >= fc.config.MaxFiles {
		return fmt.Errorf("file cache limit reached: %d files", len(fc.files))
	}
	if fc.config.MaxMemoryMB > 0 {
		stat, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("stat %q: %w", path, err)
		}
		afterMB := fc.mappedMBLocked() + float64(stat.Size())/(1024*1024)
		if afterMB >= float64(fc.config.MaxMemoryMB) {
			return fmt.Errorf("file cache memory limit reached: %.1f MB of %d MB",
				afterMB, fc.config.MaxMemoryMB)
		}
	}
	return nil
}

// load opens and maps one file. Holds mu.
func (fc *fileCache) load(path string) (*mappedFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("stat %q: %w", path, err)
	}

	// Zero bytes cannot be mapped.
	if stat.Size() == 0 {
		file.Close()
		return &mappedFile{data: nil}, nil
	}

	data, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		fc.logger.Warn("mmap failed, reading file directly",
			"path", path, "error", err)
		fc.bump(func(s *FileCacheStats) { s.MmapFailures++ })
		file.Close()

		raw, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("read %q: %w", path, readErr)
		}
		return &mappedFile{data: mmap.MMap(raw)}, nil
	}

	return &mappedFile{data: data, file: file, mapped: true}, nil
}

func (fc *fileCache) Invalidate(path string) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if mf, ok := fc.files[path]; ok {
		fc.release(path, mf)
		delete(fc.files, path)
	}
}

func (fc *fileCache) Size() int {
	fc.mu.RLock()
	defer fc.mu.RUnlock()
	return len(fc.files)
}

func (fc *fileCache) Stats() FileCacheStats {
	fc.mu.RLock()
	cached := len(fc.files)
	mappedMB := fc.mappedMBLocked()
	fc.mu.RUnlock()

	fc.statsMu.Lock()
	defer fc.statsMu.Unlock()
	stats := fc.stats
	stats.FilesCached = cached
	stats.TotalMappedMB = mappedMB
	return stats
}

func (fc *fileCache) mappedMBLocked() float64 {
	var total int64
	for _, mf := range fc.files {
		total += int64(len(mf.data))
	}
	return float64(total) / (1024 * 1024)
}

func (fc *fileCache) Close() error {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	var errs []error
	for path, mf := range fc.files {
		if err := fc.release(path, mf); err != nil {
			errs = append(errs, err)
		}
	}
	fc.files = make(map[string]*mappedFile)

	if len(errs) > 0 {
		return fmt.Errorf("file cache close: %v", errs)
	}
	return nil
}

// release unmaps one entry. Holds mu.
func (fc *fileCache) release(path string, mf *mappedFile) error {
	var err error
	if mf.mapped && mf.data != nil {
		if uerr := mf.data.Unmap(); uerr != nil {
			fc.logger.Warn("unmap failed", "path", path, "error", uerr)
			err = fmt.Errorf("unmap %q: %w", path, uerr)
		}
	}
	if mf.file != nil {
		if cerr := mf.file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %q: %w", path, cerr)
		}
	}
	return err
}

func (fc *fileCache) bump(update func(*FileCacheStats)) {
	fc.statsMu.Lock()
	update(&fc.stats)
	fc.statsMu.Unlock()
}
