package scanner

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DiscoverSourceFiles walks rootDir applying the config's include/exclude
// globs. Returns a sorted slice of absolute paths for deterministic output.
func DiscoverSourceFiles(rootDir string, cfg ScanConfig) ([]string, error) {
	return discover(rootDir, cfg.Include, cfg.Exclude)
}

// DiscoverCSSFiles walks rootDir for stylesheets using the CSS include
// globs, honoring the same exclusions.
func DiscoverCSSFiles(rootDir string, cfg ScanConfig) ([]string, error) {
	return discover(rootDir, cfg.CSSInclude, cfg.Exclude)
}

func discover(rootDir string, include, exclude []string) ([]string, error) {
	for _, pattern := range exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern: %s", pattern)
		}
	}
	for _, pattern := range include {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid include pattern: %s", pattern)
		}
	}

	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path: %w", err)
	}

	var files []string

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Continue walking on errors.
		}

		relPath, err := filepath.Rel(absRoot, path)
		if err != nil {
			relPath = path
		}
		relPath = filepath.ToSlash(relPath)

		// Exclusions apply to directories and files alike.
		for _, pattern := range exclude {
			matched, _ := doublestar.PathMatch(pattern, relPath)
			if matched {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		if d.IsDir() {
			return nil
		}

		if len(include) > 0 {
			matched := false
			for _, pattern := range include {
				if m, _ := doublestar.PathMatch(pattern, relPath); m {
					matched = true
					break
				}
			}
			if !matched {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
