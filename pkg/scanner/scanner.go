package scanner

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/gnana997/styleaudit/pkg/match"
	"github.com/gnana997/styleaudit/pkg/registry"
	"github.com/gnana997/styleaudit/pkg/util"
)

// Scanner orchestrates the scan pipeline: discovery, parallel matching,
// and resolution against a token registry.
type Scanner struct {
	cache util.FileCache
	log   *slog.Logger
}

// New creates a scanner with its own file cache.
func New(logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	cfg := util.DefaultFileCacheConfig()
	cfg.Logger = logger
	return &Scanner{
		cache: util.NewFileCache(cfg),
		log:   logger,
	}
}

// Cache exposes the scanner's file cache so a watcher can invalidate
// entries for changed files.
func (s *Scanner) Cache() util.FileCache {
	return s.cache
}

// Run discovers source files under rootDir and matches them in parallel.
func (s *Scanner) Run(rootDir string, cfg ScanConfig) (*ScanResult, error) {
	totalStart := time.Now()
	stats := ScanStats{}

	discoveryStart := time.Now()
	files, err := DiscoverSourceFiles(rootDir, cfg)
	if err != nil {
		return nil, fmt.Errorf("discovery failed: %w", err)
	}
	stats.FilesDiscovered = len(files)
	stats.DiscoveryTimeMs = time.Since(discoveryStart).Milliseconds()

	s.log.Info("discovery complete", "files", len(files), "ms", stats.DiscoveryTimeMs)

	if len(files) == 0 {
		stats.TotalTimeMs = time.Since(totalStart).Milliseconds()
		return &ScanResult{Stats: stats}, nil
	}

	matchStart := time.Now()
	result := s.matchFiles(files, cfg, &stats)
	stats.MatchTimeMs = time.Since(matchStart).Milliseconds()
	stats.TotalTimeMs = time.Since(totalStart).Milliseconds()
	result.Stats = stats

	s.log.Info("scan complete",
		"scanned", stats.FilesScanned,
		"failed", stats.FilesFailed,
		"matches", stats.TotalMatches,
		"ms", stats.TotalTimeMs)

	return result, nil
}

// ScanFile matches a single source file.
func (s *Scanner) ScanFile(path string, cfg ScanConfig) (*FileMatches, error) {
	source, err := s.cache.Content(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	fm := MatchSource(source, matchOptions(cfg))
	fm.Path = path
	for i := range fm.Matches {
		fm.Matches[i].File = path
	}
	return &fm, nil
}

// MatchSource runs both matchers over raw source text.
func MatchSource(source string, opts match.Options) FileMatches {
	utilRes := match.NewUtilityClassMatcher().Match(source, opts)
	inlineRes := match.NewInlineStyleMatcher().Match(source, opts)

	fm := FileMatches{
		Matches:     append(utilRes.Matches, inlineRes.Matches...),
		Diagnostics: append(utilRes.Diagnostics, inlineRes.Diagnostics...),
	}
	sort.SliceStable(fm.Matches, func(i, j int) bool {
		return fm.Matches[i].Location.Start < fm.Matches[j].Location.Start
	})
	return fm
}

func matchOptions(cfg ScanConfig) match.Options {
	opts := match.DefaultOptions()
	opts.Categories = cfg.Categories
	return opts
}

func (s *Scanner) matchFiles(files []string, cfg ScanConfig, stats *ScanStats) *ScanResult {
	pool := NewWorkerPool(cfg.Workers, s.cache, matchOptions(cfg), s.log)
	pool.Start()

	var (
		collected []FileMatches
		collectWg sync.WaitGroup
	)
	collectWg.Add(1)
	go func() {
		defer collectWg.Done()
		results, errors := pool.Results(), pool.Errors()
		for results != nil || errors != nil {
			select {
			case fm, ok := <-results:
				if !ok {
					results = nil
					continue
				}
				collected = append(collected, fm)
			case fe, ok := <-errors:
				if !ok {
					errors = nil
					continue
				}
				stats.FilesFailed++
				s.log.Warn("file skipped", "path", fe.Path, "error", fe.Err)
			}
		}
	}()

	for _, path := range files {
		if err := pool.Submit(FileJob{Path: path}); err != nil {
			break
		}
	}
	pool.FinishSubmitting()
	pool.Wait()
	pool.Stop()
	collectWg.Wait()

	sort.Slice(collected, func(i, j int) bool {
		return collected[i].Path < collected[j].Path
	})

	result := &ScanResult{}
	for _, fm := range collected {
		stats.FilesScanned++
		stats.TotalMatches += len(fm.Matches)
		if len(fm.Matches) > 0 || len(fm.Diagnostics) > 0 {
			result.Files = append(result.Files, fm)
		}
	}
	return result
}

// Resolve maps every match in result through the registry's best-match
// lookup. Matches with no token above the threshold keep a nil Token so
// callers can report unresolved values.
func Resolve(reg *registry.Registry, result *ScanResult) ([]FileSuggestions, error) {
	var out []FileSuggestions
	for _, fm := range result.Files {
		fs := FileSuggestions{Path: fm.Path}
		for _, m := range fm.Matches {
			sug := Suggestion{Match: m}
			res, err := reg.FindBestMatch(m.Value, registry.Category(m.Category), nil)
			if err != nil {
				return nil, fmt.Errorf("resolve %q: %w", m.Value, err)
			}
			if res != nil {
				sug.Token = &res.Token
				sug.Confidence = res.Confidence
			}
			fs.Suggestions = append(fs.Suggestions, sug)
		}
		if len(fs.Suggestions) > 0 {
			out = append(out, fs)
		}
	}
	return out, nil
}

// Close releases the scanner's file cache.
func (s *Scanner) Close() error {
	return s.cache.Close()
}
