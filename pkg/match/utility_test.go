package match

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUtilityMatcher_TwoColorClasses(t *testing.T) {
	src := `<div className="bg-[#25C9D0] text-[rgb(85,85,85)]">`
	res := NewUtilityClassMatcher().Match(src, DefaultOptions())

	require.Len(t, res.Matches, 2)

	first := res.Matches[0]
	assert.Equal(t, CategoryColor, first.Category)
	assert.Equal(t, "#25C9D0", first.Value)
	assert.Equal(t, "backgroundColor", first.Property)
	assert.Equal(t, ScopeUtilityClass, first.Scope)

	second := res.Matches[1]
	assert.Equal(t, CategoryColor, second.Category)
	assert.Equal(t, "rgb(85,85,85)", second.Value)
	assert.Equal(t, "color", second.Property)
	assert.Equal(t, ScopeUtilityClass, second.Scope)
}

func TestUtilityMatcher_OffsetsPointAtValue(t *testing.T) {
	src := `<div className="bg-[#25C9D0]">`
	res := NewUtilityClassMatcher().Match(src, DefaultOptions())

	require.Len(t, res.Matches, 1)
	loc := res.Matches[0].Location
	assert.Equal(t, strings.Index(src, "#25C9D0"), loc.Start)
	assert.Equal(t, "#25C9D0", src[loc.Start:loc.End])
	assert.Equal(t, 1, loc.Line)
	assert.Equal(t, loc.Start+1, loc.Column)
}

func TestUtilityMatcher_EnclosingTagAndContext(t *testing.T) {
	src := `export function App() {
  return <Button className="rounded-[12px]">go</Button>;
}`
	res := NewUtilityClassMatcher().Match(src, DefaultOptions())

	require.Len(t, res.Matches, 1)
	m := res.Matches[0]
	assert.Equal(t, CategoryBorderRadius, m.Category)
	assert.Equal(t, "borderRadius", m.Property)
	assert.Equal(t, "Button", m.Tag)
	assert.Contains(t, m.Context, "rounded-[12px]")
	assert.Equal(t, 2, m.Location.Line)
}

func TestUtilityMatcher_SpacingAndVariantModifiers(t *testing.T) {
	// A hover: modifier must not leak into the prefix lookup.
	src := `<div className="p-[16px] mt-[2rem] hover:bg-[#111827] gap-x-[4px]">`
	res := NewUtilityClassMatcher().Match(src, DefaultOptions())

	require.Len(t, res.Matches, 4)
	assert.Equal(t, "padding", res.Matches[0].Property)
	assert.Equal(t, "marginTop", res.Matches[1].Property)
	assert.Equal(t, "backgroundColor", res.Matches[2].Property)
	assert.Equal(t, "#111827", res.Matches[2].Value)
	assert.Equal(t, "columnGap", res.Matches[3].Property)
}

func TestUtilityMatcher_UnmappedPrefixSkipped(t *testing.T) {
	src := `<div className="grid-cols-[1fr_2fr] bg-[#fff]">`
	res := NewUtilityClassMatcher().Match(src, DefaultOptions())

	require.Len(t, res.Matches, 1)
	assert.Equal(t, "#fff", res.Matches[0].Value)
}

func TestUtilityMatcher_CategoryFilter(t *testing.T) {
	src := `<div className="bg-[#fff] p-[8px] shadow-[0_2px_4px_#00000022]">`
	res := NewUtilityClassMatcher().Match(src, Options{Categories: []Category{CategorySpacing}})

	require.Len(t, res.Matches, 1)
	assert.Equal(t, CategorySpacing, res.Matches[0].Category)
	assert.Equal(t, "8px", res.Matches[0].Value)
}

func TestUtilityMatcher_BraceWrappedAndTernary(t *testing.T) {
	src := `<div className={active ? "bg-[#111111]" : "bg-[#222222]"}>`
	res := NewUtilityClassMatcher().Match(src, DefaultOptions())

	// Both ternary branches surface as separate candidates.
	require.Len(t, res.Matches, 2)
	assert.Equal(t, "#111111", res.Matches[0].Value)
	assert.Equal(t, "#222222", res.Matches[1].Value)
}

func TestUtilityMatcher_TemplateLiteralDynamicValue(t *testing.T) {
	src := "<div className={`bg-[${accent}] mt-[8px]`}>"
	res := NewUtilityClassMatcher().Match(src, DefaultOptions())

	require.Len(t, res.Matches, 2)
	assert.Equal(t, "${accent}", res.Matches[0].Value)
	assert.Equal(t, "8px", res.Matches[1].Value)

	// The unresolvable dynamic value is reported, not guessed at.
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, ScopeUtilityClass, res.Diagnostics[0].Scope)
}

func TestUtilityMatcher_FallbackToAllStringLiterals(t *testing.T) {
	src := `const badge = cva("rounded-[4px] bg-[#FEE2E2]");`
	res := NewUtilityClassMatcher().Match(src, DefaultOptions())

	require.Len(t, res.Matches, 2)
	assert.Equal(t, CategoryBorderRadius, res.Matches[0].Category)
	assert.Equal(t, CategoryColor, res.Matches[1].Category)
}

func TestUtilityMatcher_CustomPrefix(t *testing.T) {
	src := `<div className="ring-[#0EA5E9]">`
	opts := DefaultOptions()
	opts.CustomPrefixes = map[string]PropertyMapping{
		"ring-": {Property: "outlineColor", Category: CategoryColor},
	}
	res := NewUtilityClassMatcher().Match(src, opts)

	require.Len(t, res.Matches, 1)
	assert.Equal(t, "outlineColor", res.Matches[0].Property)
}

func TestUtilityMatcher_NoMatches(t *testing.T) {
	src := `<div className="flex items-center justify-between">`
	res := NewUtilityClassMatcher().Match(src, DefaultOptions())
	assert.Empty(t, res.Matches)
	assert.Empty(t, res.Diagnostics)
}
