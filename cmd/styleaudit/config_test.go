package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTokenSource_FlagWins(t *testing.T) {
	t.Chdir(t.TempDir())
	assert.Equal(t, "theme.css", resolveTokenSource("theme.css"))
}

func TestResolveTokenSource_ConfigFallback(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.MkdirAll(".styleaudit", 0o755))
	require.NoError(t, os.WriteFile(".styleaudit/config.yaml",
		[]byte("version: \"1\"\ntokens: styles/tokens.css\nlog_path: .styleaudit/mcp.jsonl\n"), 0o644))

	assert.Equal(t, "styles/tokens.css", resolveTokenSource(""))
	assert.Equal(t, ".styleaudit/mcp.jsonl", resolveLogPath(""))
}

func TestResolveTokenSource_NoConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	assert.Empty(t, resolveTokenSource(""))
	assert.Empty(t, resolveLogPath(""))
}

func TestInitRegistry_DiscoversStylesheets(t *testing.T) {
	root := t.TempDir()
	t.Chdir(root)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "styles"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "styles", "tokens.css"),
		[]byte(":root { --brand-teal: #25C9D0; }"), 0o644))

	log := slog.New(slog.DiscardHandler)
	reg, err := initRegistry(log, "", root)
	require.NoError(t, err)

	token, err := reg.FindTokenByName("brand-teal")
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, "#25C9D0", token.Value)
}

func TestInitRegistry_NoStylesheets(t *testing.T) {
	root := t.TempDir()
	t.Chdir(root)

	log := slog.New(slog.DiscardHandler)
	_, err := initRegistry(log, "", root)
	assert.ErrorContains(t, err, "no stylesheets")
}

func TestInitRegistry_ExplicitFile(t *testing.T) {
	root := t.TempDir()
	t.Chdir(root)
	path := filepath.Join(root, "tokens.css")
	require.NoError(t, os.WriteFile(path,
		[]byte(":root { --spacing-sm: 8px; }"), 0o644))

	log := slog.New(slog.DiscardHandler)
	reg, err := initRegistry(log, path, root)
	require.NoError(t, err)

	counts, err := reg.TokenCounts()
	require.NoError(t, err)
	assert.Equal(t, 1, counts["spacing"])
}
