// Package scanner walks component trees, runs both style matchers over every
// source file in parallel, and resolves the findings against a token
// registry.
package scanner

import (
	"github.com/gnana997/styleaudit/pkg/match"
	"github.com/gnana997/styleaudit/pkg/registry"
)

// ScanConfig configures file discovery and matching.
type ScanConfig struct {
	// Include glob patterns for source file matching.
	Include []string
	// Exclude glob patterns.
	Exclude []string
	// CSSInclude glob patterns for stylesheet discovery.
	CSSInclude []string
	// Categories limits matching; empty means all.
	Categories []match.Category
	// Workers overrides the pool size when positive.
	Workers int
}

// DefaultScanConfig returns defaults for typical JS component trees, with
// test, story, and mock files excluded.
func DefaultScanConfig() ScanConfig {
	return ScanConfig{
		Include: []string{
			"**/*.ts",
			"**/*.tsx",
			"**/*.js",
			"**/*.jsx",
		},
		CSSInclude: []string{
			"**/*.css",
		},
		Exclude: []string{
			"node_modules/**",
			".git/**",
			"dist/**",
			"build/**",
			".next/**",
			"coverage/**",
			"out/**",
			".vscode/**",
			".styleaudit/**",
			"**/*.test.*",
			"**/*.spec.*",
			"**/*.stories.*",
			"**/*.story.*",
			"**/__tests__/**",
			"**/__mocks__/**",
			"**/__snapshots__/**",
			"**/*.d.ts",
		},
	}
}

// FileMatches holds every match found in one source file.
type FileMatches struct {
	Path        string             `json:"path"`
	Matches     []match.Match      `json:"matches"`
	Diagnostics []match.Diagnostic `json:"diagnostics,omitempty"`
}

// ScanStats tracks per-phase scan metrics.
type ScanStats struct {
	FilesDiscovered int   `json:"filesDiscovered"`
	FilesScanned    int   `json:"filesScanned"`
	FilesFailed     int   `json:"filesFailed"`
	TotalMatches    int   `json:"totalMatches"`
	DiscoveryTimeMs int64 `json:"discoveryTimeMs"`
	MatchTimeMs     int64 `json:"matchTimeMs"`
	TotalTimeMs     int64 `json:"totalTimeMs"`
}

// ScanResult is the output of one scan run. Files are ordered by path.
type ScanResult struct {
	Files []FileMatches `json:"files"`
	Stats ScanStats     `json:"stats"`
}

// Suggestion pairs a source match with the token that should replace it.
// Token is nil when nothing in the registry clears the confidence threshold.
type Suggestion struct {
	Match      match.Match     `json:"match"`
	Token      *registry.Token `json:"token,omitempty"`
	Confidence float64         `json:"confidence,omitempty"`
}

// FileSuggestions groups suggestions per source file.
type FileSuggestions struct {
	Path        string       `json:"path"`
	Suggestions []Suggestion `json:"suggestions"`
}
