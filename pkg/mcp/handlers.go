package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gnana997/styleaudit/pkg/match"
	"github.com/gnana997/styleaudit/pkg/registry"
	"github.com/gnana997/styleaudit/pkg/scanner"
)

// jsonResult marshals v as the tool's text content.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("failed to encode result", err), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (s *Server) handleListTokens(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category := req.GetString("category", "")

	if category == "" {
		tokens, err := s.registry.AllTokens()
		if err != nil {
			return mcp.NewToolResultErrorFromErr("registry unavailable", err), nil
		}
		return jsonResult(tokens)
	}

	cat, ok := parseCategory(category)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown category: %s", category)), nil
	}
	tokens, err := s.registry.TokensByCategory(cat)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("registry unavailable", err), nil
	}
	return jsonResult(tokens)
}

func (s *Server) handleFindToken(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	token, err := s.registry.FindTokenByName(name)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("registry unavailable", err), nil
	}
	if token == nil {
		return mcp.NewToolResultError(fmt.Sprintf("no token found for %q", name)), nil
	}
	return jsonResult(token)
}

func (s *Server) handleClosestColor(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	value, err := req.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := s.registry.FindClosestColorMatch(value, matchOpts(req))
	if err != nil {
		return mcp.NewToolResultErrorFromErr("registry unavailable", err), nil
	}
	if res == nil {
		return mcp.NewToolResultText(fmt.Sprintf("no color token matches %q within the threshold", value)), nil
	}
	return jsonResult(res)
}

func (s *Server) handleBestMatch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	value, err := req.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var cat registry.Category
	if category := req.GetString("category", ""); category != "" {
		parsed, ok := parseCategory(category)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unknown category: %s", category)), nil
		}
		cat = parsed
	}

	res, err := s.registry.FindBestMatch(value, cat, matchOpts(req))
	if err != nil {
		return mcp.NewToolResultErrorFromErr("registry unavailable", err), nil
	}
	if res == nil {
		return mcp.NewToolResultText(fmt.Sprintf("no token matches %q", value)), nil
	}
	return jsonResult(res)
}

func (s *Server) handleTokenCounts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	counts, err := s.registry.TokenCounts()
	if err != nil {
		return mcp.NewToolResultErrorFromErr("registry unavailable", err), nil
	}
	return jsonResult(counts)
}

func (s *Server) handleMatchSource(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source, err := req.RequireString("source")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := match.DefaultOptions()
	if categories := req.GetString("categories", ""); categories != "" {
		for _, raw := range strings.Split(categories, ",") {
			cat, ok := parseMatchCategory(strings.TrimSpace(raw))
			if !ok {
				return mcp.NewToolResultError(fmt.Sprintf("unknown category: %s", raw)), nil
			}
			opts.Categories = append(opts.Categories, cat)
		}
	}

	fm := scanner.MatchSource(source, opts)
	return jsonResult(fm)
}

func (s *Server) handleScanFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	fm, err := s.scanner.ScanFile(path, scanner.DefaultScanConfig())
	if err != nil {
		return mcp.NewToolResultErrorFromErr("failed to scan file", err), nil
	}

	result := &scanner.ScanResult{Files: []scanner.FileMatches{*fm}}
	suggestions, err := scanner.Resolve(s.registry, result)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("failed to resolve matches", err), nil
	}

	out := map[string]any{
		"path":        fm.Path,
		"matches":     fm.Matches,
		"diagnostics": fm.Diagnostics,
	}
	if len(suggestions) > 0 {
		out["suggestions"] = suggestions[0].Suggestions
	}
	return jsonResult(out)
}

// matchOpts reads the optional threshold argument.
func matchOpts(req mcp.CallToolRequest) *registry.MatchOptions {
	threshold := req.GetFloat("threshold", 0)
	if threshold <= 0 {
		return nil
	}
	return &registry.MatchOptions{Threshold: threshold}
}

func parseCategory(s string) (registry.Category, bool) {
	for _, cat := range registry.Categories {
		if string(cat) == s {
			return cat, true
		}
	}
	return "", false
}

func parseMatchCategory(s string) (match.Category, bool) {
	switch match.Category(s) {
	case match.CategoryColor, match.CategorySpacing, match.CategoryBorderRadius,
		match.CategoryShadow, match.CategoryTypography:
		return match.Category(s), true
	}
	return "", false
}
