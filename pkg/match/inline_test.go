package match

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInlineMatcher_TwoSpacingValues(t *testing.T) {
	src := `<div style={{ padding: '16px', margin: '2rem' }}>`
	res := NewInlineStyleMatcher().Match(src, DefaultOptions())

	require.Len(t, res.Matches, 2)

	first := res.Matches[0]
	assert.Equal(t, CategorySpacing, first.Category)
	assert.Equal(t, "16px", first.Value)
	assert.Equal(t, "padding", first.Property)
	assert.Equal(t, ScopeInlineStyle, first.Scope)

	second := res.Matches[1]
	assert.Equal(t, CategorySpacing, second.Category)
	assert.Equal(t, "2rem", second.Value)
	assert.Equal(t, "margin", second.Property)
}

func TestInlineMatcher_OffsetsPointAtValue(t *testing.T) {
	src := `<span style={{ color: '#25C9D0' }}>x</span>`
	res := NewInlineStyleMatcher().Match(src, DefaultOptions())

	require.Len(t, res.Matches, 1)
	loc := res.Matches[0].Location
	assert.Equal(t, strings.Index(src, "#25C9D0"), loc.Start)
	assert.Equal(t, "#25C9D0", src[loc.Start:loc.End])
}

func TestInlineMatcher_ColorShadowAndRadius(t *testing.T) {
	src := `<div style={{
  backgroundColor: 'rgb(31, 41, 55)',
  borderRadius: '8px',
  boxShadow: '0 2px 4px rgba(0,0,0,0.1)',
}}>`
	res := NewInlineStyleMatcher().Match(src, DefaultOptions())

	require.Len(t, res.Matches, 3)
	assert.Equal(t, CategoryColor, res.Matches[0].Category)
	assert.Equal(t, CategoryBorderRadius, res.Matches[1].Category)
	assert.Equal(t, CategoryShadow, res.Matches[2].Category)
	assert.Equal(t, "0 2px 4px rgba(0,0,0,0.1)", res.Matches[2].Value)
}

func TestInlineMatcher_UnrecognizedPropertySkipped(t *testing.T) {
	src := `<div style={{ display: 'flex', color: '#fff' }}>`
	res := NewInlineStyleMatcher().Match(src, DefaultOptions())

	require.Len(t, res.Matches, 1)
	assert.Equal(t, "color", res.Matches[0].Property)
}

func TestInlineMatcher_ExpressionValueSkippedWithDiagnostic(t *testing.T) {
	src := `<div style={{ padding: spacing.md, margin: '1rem' }}>`
	res := NewInlineStyleMatcher().Match(src, DefaultOptions())

	require.Len(t, res.Matches, 1)
	assert.Equal(t, "1rem", res.Matches[0].Value)

	require.Len(t, res.Diagnostics, 1)
	assert.Contains(t, res.Diagnostics[0].Message, "padding")
}

func TestInlineMatcher_TemplateInterpolationSkipped(t *testing.T) {
	src := "<div style={{ padding: `${size}px` }}>"
	res := NewInlineStyleMatcher().Match(src, DefaultOptions())

	assert.Empty(t, res.Matches)
	require.Len(t, res.Diagnostics, 1)
}

func TestInlineMatcher_Indirection(t *testing.T) {
	src := `const cardStyle = {
  backgroundColor: '#1F2937',
  padding: '24px',
};

export function Card() {
  return <div style={cardStyle}>card</div>;
}`
	res := NewInlineStyleMatcher().Match(src, DefaultOptions())

	require.Len(t, res.Matches, 2)
	assert.Equal(t, "cardStyle", res.Matches[0].Path)
	assert.Equal(t, "#1F2937", res.Matches[0].Value)
	assert.Equal(t, "cardStyle", res.Matches[1].Path)
	assert.Equal(t, "24px", res.Matches[1].Value)

	// Offsets point into the declaration, not the style attribute.
	assert.Equal(t, strings.Index(src, "#1F2937"), res.Matches[0].Location.Start)
}

func TestInlineMatcher_IndirectionUsedTwiceDedupes(t *testing.T) {
	src := `const s = { color: '#112233' };
const A = () => <i style={s} />;
const B = () => <b style={s} />;`
	res := NewInlineStyleMatcher().Match(src, DefaultOptions())

	require.Len(t, res.Matches, 1)
	assert.Equal(t, "s", res.Matches[0].Path)
}

func TestInlineMatcher_UnresolvedIndirection(t *testing.T) {
	src := `<div style={themeStyles}>`
	res := NewInlineStyleMatcher().Match(src, DefaultOptions())

	assert.Empty(t, res.Matches)
	require.Len(t, res.Diagnostics, 1)
	assert.Contains(t, res.Diagnostics[0].Message, "themeStyles")
}

func TestInlineMatcher_NestedObjectOneLevel(t *testing.T) {
	src := `<div style={{ color: '#ffffff', '&:hover': { color: '#eeeeee', '&:active': { color: '#dddddd' } } }}>`
	res := NewInlineStyleMatcher().Match(src, DefaultOptions())

	// The first nested level is descended into; deeper blocks are not.
	require.Len(t, res.Matches, 2)
	assert.Equal(t, "", res.Matches[0].Path)
	assert.Equal(t, "#ffffff", res.Matches[0].Value)
	assert.Equal(t, "&:hover", res.Matches[1].Path)
	assert.Equal(t, "#eeeeee", res.Matches[1].Value)
}

func TestInlineMatcher_CategoryFilter(t *testing.T) {
	src := `<div style={{ color: '#fff', padding: '4px' }}>`
	res := NewInlineStyleMatcher().Match(src, Options{Categories: []Category{CategoryColor}})

	require.Len(t, res.Matches, 1)
	assert.Equal(t, CategoryColor, res.Matches[0].Category)
}

func TestInlineMatcher_TagContext(t *testing.T) {
	src := `<Card style={{ margin: '12px' }}>`
	res := NewInlineStyleMatcher().Match(src, DefaultOptions())

	require.Len(t, res.Matches, 1)
	assert.Equal(t, "Card", res.Matches[0].Tag)
	assert.Contains(t, res.Matches[0].Context, "margin")
}
