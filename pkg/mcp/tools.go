package mcp

import "github.com/mark3labs/mcp-go/mcp"

func listTokensTool() mcp.Tool {
	return mcp.NewTool("list_tokens",
		mcp.WithDescription("List design tokens, optionally filtered by category (color, typography, spacing, borderRadius, shadow)."),
		mcp.WithString("category",
			mcp.Description("Token category to filter by; omit for all tokens."),
		),
	)
}

func findTokenTool() mcp.Tool {
	return mcp.NewTool("find_token",
		mcp.WithDescription("Find one token by name, CSS variable, or utility class alias."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Token name (e.g. 'brand-teal'), variable ('--brand-teal'), or alias ('rounded-lg')."),
		),
	)
}

func closestColorTool() mcp.Tool {
	return mcp.NewTool("closest_color",
		mcp.WithDescription("Find the color token nearest to a CSS color value, with a confidence score."),
		mcp.WithString("value",
			mcp.Required(),
			mcp.Description("CSS color value: hex, rgb(), hsl(), or oklch()."),
		),
		mcp.WithNumber("threshold",
			mcp.Description("Minimum confidence in (0,1]; defaults to 0.85."),
		),
	)
}

func bestMatchTool() mcp.Tool {
	return mcp.NewTool("best_match",
		mcp.WithDescription("Find the best token for any style value, auto-detecting the category when omitted."),
		mcp.WithString("value",
			mcp.Required(),
			mcp.Description("Style value: a color, length, or shadow literal."),
		),
		mcp.WithString("category",
			mcp.Description("Restrict matching to one category."),
		),
		mcp.WithNumber("threshold",
			mcp.Description("Minimum color confidence in (0,1]; defaults to 0.85."),
		),
	)
}

func tokenCountsTool() mcp.Tool {
	return mcp.NewTool("token_counts",
		mcp.WithDescription("Return the number of registered tokens per category."),
	)
}

func matchSourceTool() mcp.Tool {
	return mcp.NewTool("match_source",
		mcp.WithDescription("Scan raw component source text for hardcoded styling values in utility classes and inline style objects."),
		mcp.WithString("source",
			mcp.Required(),
			mcp.Description("Component source text to scan."),
		),
		mcp.WithString("categories",
			mcp.Description("Comma-separated categories to match; omit for all."),
		),
	)
}

func scanFileTool() mcp.Tool {
	return mcp.NewTool("scan_file",
		mcp.WithDescription("Scan one source file on disk and resolve its matches against the token registry."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to the source file."),
		),
	)
}
