package scanner

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/styleaudit/pkg/match"
	"github.com/gnana997/styleaudit/pkg/registry"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestScanner_Run(t *testing.T) {
	root := writeTree(t, map[string]string{
		"src/Button.tsx": `export const Button = () => (
  <button className="bg-[#25C9D0] rounded-[8px]">go</button>
);`,
		"src/Card.tsx": `export const Card = () => (
  <div style={{ padding: '16px' }}>card</div>
);`,
		"src/clean.tsx": `export const Clean = () => <div className="flex" />;`,
	})

	s := New(discardLogger())
	defer s.Close()

	result, err := s.Run(root, DefaultScanConfig())
	require.NoError(t, err)

	assert.Equal(t, 3, result.Stats.FilesDiscovered)
	assert.Equal(t, 3, result.Stats.FilesScanned)
	assert.Equal(t, 0, result.Stats.FilesFailed)
	assert.Equal(t, 3, result.Stats.TotalMatches)

	// Only files with findings appear, ordered by path.
	require.Len(t, result.Files, 2)
	assert.Contains(t, result.Files[0].Path, "Button.tsx")
	assert.Contains(t, result.Files[1].Path, "Card.tsx")

	require.Len(t, result.Files[0].Matches, 2)
	assert.Equal(t, "#25C9D0", result.Files[0].Matches[0].Value)
	assert.Equal(t, result.Files[0].Path, result.Files[0].Matches[0].File)
}

func TestScanner_RunEmptyDir(t *testing.T) {
	s := New(discardLogger())
	defer s.Close()

	result, err := s.Run(t.TempDir(), DefaultScanConfig())
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.Equal(t, 0, result.Stats.FilesDiscovered)
}

func TestScanner_CategoryFilter(t *testing.T) {
	root := writeTree(t, map[string]string{
		"src/Mixed.tsx": `<div className="bg-[#fff] p-[8px]" />`,
	})

	cfg := DefaultScanConfig()
	cfg.Categories = []match.Category{match.CategorySpacing}

	s := New(discardLogger())
	defer s.Close()

	result, err := s.Run(root, cfg)
	require.NoError(t, err)
	require.Len(t, result.Files, 1)
	require.Len(t, result.Files[0].Matches, 1)
	assert.Equal(t, match.CategorySpacing, result.Files[0].Matches[0].Category)
}

func TestScanner_ScanFile(t *testing.T) {
	root := writeTree(t, map[string]string{
		"Badge.tsx": `<span style={{ backgroundColor: '#FEE2E2' }} />`,
	})

	s := New(discardLogger())
	defer s.Close()

	fm, err := s.ScanFile(filepath.Join(root, "Badge.tsx"), DefaultScanConfig())
	require.NoError(t, err)
	require.Len(t, fm.Matches, 1)
	assert.Equal(t, "#FEE2E2", fm.Matches[0].Value)
	assert.Equal(t, fm.Path, fm.Matches[0].File)
}

func TestResolve(t *testing.T) {
	css := `:root {
  --brand-teal: #25C9D0;
  --spacing-md: 16px;
}`
	reg := registry.New(discardLogger())
	require.NoError(t, reg.Initialize(css))

	root := writeTree(t, map[string]string{
		"src/App.tsx": `<div className="bg-[#25C9D0]" style={{ padding: '16px', margin: '99px' }} />`,
	})

	s := New(discardLogger())
	defer s.Close()

	result, err := s.Run(root, DefaultScanConfig())
	require.NoError(t, err)

	suggestions, err := Resolve(reg, result)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	require.Len(t, suggestions[0].Suggestions, 3)

	byValue := map[string]Suggestion{}
	for _, sug := range suggestions[0].Suggestions {
		byValue[sug.Match.Value] = sug
	}

	teal := byValue["#25C9D0"]
	require.NotNil(t, teal.Token)
	assert.Equal(t, "brand-teal", teal.Token.Name)
	assert.Equal(t, 1.0, teal.Confidence)

	md := byValue["16px"]
	require.NotNil(t, md.Token)
	assert.Equal(t, "md", md.Token.Name)

	// 99px matches no spacing token; the suggestion stays unresolved.
	assert.Nil(t, byValue["99px"].Token)
}

func TestMatchSource_CombinedOrdering(t *testing.T) {
	src := `<div style={{ color: '#111111' }} className="bg-[#222222]">`
	fm := MatchSource(src, match.DefaultOptions())

	require.Len(t, fm.Matches, 2)
	assert.Equal(t, "#111111", fm.Matches[0].Value)
	assert.Equal(t, "#222222", fm.Matches[1].Value)
}
