package indexer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/gnana997/styleaudit/pkg/scanner"
)

// Watcher follows filesystem events under a root and keeps a MatchIndex
// current: changed source files are debounced, re-scanned, and re-indexed;
// removed files drop out of the index.
type Watcher struct {
	watcher *fsnotify.Watcher
	scanner *scanner.Scanner
	index   *MatchIndex
	cfg     scanner.ScanConfig
	options WatchOptions
	logger  *slog.Logger

	root string

	debounceTimers map[string]*time.Timer
	debounceMu     sync.Mutex

	stopChan chan struct{}
	stopped  bool
	mu       sync.Mutex
}

// NewWatcher creates a watcher feeding index through sc.
func NewWatcher(sc *scanner.Scanner, index *MatchIndex, cfg scanner.ScanConfig, options WatchOptions, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	if options.DebounceMs == 0 {
		options.DebounceMs = DefaultWatchOptions().DebounceMs
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		watcher:        fsw,
		scanner:        sc,
		index:          index,
		cfg:            cfg,
		options:        options,
		logger:         logger,
		debounceTimers: make(map[string]*time.Timer),
		stopChan:       make(chan struct{}),
	}, nil
}

// Start watches rootPath and every non-excluded subdirectory, then begins
// processing events in the background.
func (w *Watcher) Start(rootPath string) error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return fmt.Errorf("watcher already stopped")
	}
	w.mu.Unlock()

	absRoot, err := filepath.Abs(rootPath)
	if err != nil {
		return fmt.Errorf("resolve root path: %w", err)
	}
	w.root = absRoot

	err = filepath.Walk(absRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Continue on error.
		}
		if !info.IsDir() {
			return nil
		}
		if w.excluded(path) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("failed to watch directory", "path", path, "error", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("setup watches: %w", err)
	}

	w.logger.Info("file watcher started", "root", absRoot)
	go w.eventLoop()
	return nil
}

// Stop shuts the watcher down. Idempotent.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.stopChan)

	w.debounceMu.Lock()
	for _, timer := range w.debounceTimers {
		timer.Stop()
	}
	w.debounceTimers = make(map[string]*time.Timer)
	w.debounceMu.Unlock()

	err := w.watcher.Close()
	w.logger.Info("file watcher stopped")
	return err
}

func (w *Watcher) eventLoop() {
	for {
		select {
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("file watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name
	if w.excluded(path) {
		return
	}

	// New directories must be added to the watch set.
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if err := w.watcher.Add(path); err != nil {
				w.logger.Warn("failed to watch new directory", "path", path, "error", err)
			}
			return
		}
	}

	if !isSourceFile(path) {
		return
	}

	w.logger.Debug("file event", "op", event.Op.String(), "path", path)

	switch {
	case event.Op.Has(fsnotify.Write), event.Op.Has(fsnotify.Create):
		w.debounceRescan(path)
	case event.Op.Has(fsnotify.Remove), event.Op.Has(fsnotify.Rename):
		w.index.Remove(path)
	}
}

// debounceRescan schedules a re-scan after the debounce window. Repeated
// events for the same file within the window collapse into one scan.
func (w *Watcher) debounceRescan(path string) {
	w.index.MarkDirty(path)

	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, exists := w.debounceTimers[path]; exists {
		timer.Stop()
	}
	w.debounceTimers[path] = time.AfterFunc(
		time.Duration(w.options.DebounceMs)*time.Millisecond,
		func() {
			w.rescan(path)
			w.debounceMu.Lock()
			delete(w.debounceTimers, path)
			w.debounceMu.Unlock()
		},
	)
}

func (w *Watcher) rescan(path string) {
	w.scanner.Cache().Invalidate(path)

	content, err := os.ReadFile(path)
	if err != nil {
		w.logger.Warn("failed to read changed file", "path", path, "error", err)
		w.index.Remove(path)
		return
	}

	fm, err := w.scanner.ScanFile(path, w.cfg)
	if err != nil {
		w.logger.Warn("failed to re-scan file", "path", path, "error", err)
		return
	}

	w.index.Put(path, content, *fm)
	w.logger.Debug("file re-indexed", "path", path, "matches", len(fm.Matches))
}

// excluded applies the scan config's exclusion globs to path.
func (w *Watcher) excluded(path string) bool {
	rel := path
	if w.root != "" {
		if r, err := filepath.Rel(w.root, path); err == nil {
			rel = r
		}
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range w.cfg.Exclude {
		if matched, _ := doublestar.PathMatch(pattern, rel); matched {
			return true
		}
	}
	return false
}

// PendingRescans returns how many files currently sit in the debounce
// window.
func (w *Watcher) PendingRescans() int {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()
	return len(w.debounceTimers)
}

func isSourceFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts", ".tsx", ".js", ".jsx":
		return true
	}
	return false
}
