package match

import "regexp"

// utilityPrefixes maps arbitrary-value utility-class prefixes to their target
// CSS property and category. Lookup is by the full hyphenated identifier
// preceding the bracket; unmapped prefixes are skipped silently.
var utilityPrefixes = map[string]PropertyMapping{
	// Colors.
	"bg-":       {"backgroundColor", CategoryColor},
	"text-":     {"color", CategoryColor},
	"border-":   {"borderColor", CategoryColor},
	"border-t-": {"borderTopColor", CategoryColor},
	"border-b-": {"borderBottomColor", CategoryColor},
	"border-l-": {"borderLeftColor", CategoryColor},
	"border-r-": {"borderRightColor", CategoryColor},
	"outline-":  {"outlineColor", CategoryColor},
	"fill-":     {"fill", CategoryColor},
	"stroke-":   {"stroke", CategoryColor},
	"from-":     {"background", CategoryColor},
	"via-":      {"background", CategoryColor},
	"to-":       {"background", CategoryColor},

	// Border radius.
	"rounded-":    {"borderRadius", CategoryBorderRadius},
	"rounded-t-":  {"borderRadius", CategoryBorderRadius},
	"rounded-b-":  {"borderRadius", CategoryBorderRadius},
	"rounded-l-":  {"borderRadius", CategoryBorderRadius},
	"rounded-r-":  {"borderRadius", CategoryBorderRadius},
	"rounded-tl-": {"borderTopLeftRadius", CategoryBorderRadius},
	"rounded-tr-": {"borderTopRightRadius", CategoryBorderRadius},
	"rounded-bl-": {"borderBottomLeftRadius", CategoryBorderRadius},
	"rounded-br-": {"borderBottomRightRadius", CategoryBorderRadius},

	// Shadows.
	"shadow-": {"boxShadow", CategoryShadow},

	// Spacing.
	"m-":       {"margin", CategorySpacing},
	"mt-":      {"marginTop", CategorySpacing},
	"mr-":      {"marginRight", CategorySpacing},
	"mb-":      {"marginBottom", CategorySpacing},
	"ml-":      {"marginLeft", CategorySpacing},
	"mx-":      {"marginInline", CategorySpacing},
	"my-":      {"marginBlock", CategorySpacing},
	"p-":       {"padding", CategorySpacing},
	"pt-":      {"paddingTop", CategorySpacing},
	"pr-":      {"paddingRight", CategorySpacing},
	"pb-":      {"paddingBottom", CategorySpacing},
	"pl-":      {"paddingLeft", CategorySpacing},
	"px-":      {"paddingInline", CategorySpacing},
	"py-":      {"paddingBlock", CategorySpacing},
	"gap-":     {"gap", CategorySpacing},
	"gap-x-":   {"columnGap", CategorySpacing},
	"gap-y-":   {"rowGap", CategorySpacing},
	"space-x-": {"margin", CategorySpacing},
	"space-y-": {"margin", CategorySpacing},

	// Typography.
	"font-":     {"fontFamily", CategoryTypography},
	"leading-":  {"lineHeight", CategoryTypography},
	"tracking-": {"letterSpacing", CategoryTypography},
}

// inlineProperties maps style-object property names to categories.
// Unrecognized properties are skipped silently.
var inlineProperties = map[string]Category{
	// Colors.
	"color":           CategoryColor,
	"backgroundColor": CategoryColor,
	"borderColor":     CategoryColor,
	"borderTopColor":  CategoryColor,
	"borderBottomColor": CategoryColor,
	"borderLeftColor":  CategoryColor,
	"borderRightColor": CategoryColor,
	"outlineColor":     CategoryColor,
	"caretColor":       CategoryColor,
	"fill":             CategoryColor,
	"stroke":           CategoryColor,

	// Spacing.
	"margin":        CategorySpacing,
	"marginTop":     CategorySpacing,
	"marginRight":   CategorySpacing,
	"marginBottom":  CategorySpacing,
	"marginLeft":    CategorySpacing,
	"marginInline":  CategorySpacing,
	"marginBlock":   CategorySpacing,
	"padding":       CategorySpacing,
	"paddingTop":    CategorySpacing,
	"paddingRight":  CategorySpacing,
	"paddingBottom": CategorySpacing,
	"paddingLeft":   CategorySpacing,
	"paddingInline": CategorySpacing,
	"paddingBlock":  CategorySpacing,
	"gap":           CategorySpacing,
	"columnGap":     CategorySpacing,
	"rowGap":        CategorySpacing,

	// Border radius.
	"borderRadius":            CategoryBorderRadius,
	"borderTopLeftRadius":     CategoryBorderRadius,
	"borderTopRightRadius":    CategoryBorderRadius,
	"borderBottomLeftRadius":  CategoryBorderRadius,
	"borderBottomRightRadius": CategoryBorderRadius,

	// Shadows.
	"boxShadow":  CategoryShadow,
	"textShadow": CategoryShadow,
	"filter":     CategoryShadow,
}

// Per-category value shape patterns. These accept literals only; dynamic
// expressions fail the shape check and are skipped rather than guessed at.
var (
	colorValuePattern = regexp.MustCompile(
		`^(#([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})|rgba?\([^)]*\)|hsla?\([^)]*\)|oklch\([^)]*\))$`)

	lengthValuePattern = regexp.MustCompile(
		`^-?(\d+(\.\d+)?|\.\d+)(px|rem|em|%|vh|vw|pt)$|^0$`)

	shadowValuePattern = regexp.MustCompile(
		`^(inset\s+)?-?(\d+(\.\d+)?|\.\d+)(px|rem|em)?\s+-?(\d+(\.\d+)?|\.\d+)(px|rem|em)?.*(#[0-9a-fA-F]{3,8}|rgba?\(|hsla?\(|oklch\()`)
)

// validValueShape reports whether a value is an acceptable literal for the
// category. Typography values have no single shape and pass through.
func validValueShape(cat Category, value string) bool {
	switch cat {
	case CategoryColor:
		return colorValuePattern.MatchString(value)
	case CategorySpacing, CategoryBorderRadius:
		return lengthValuePattern.MatchString(value)
	case CategoryShadow:
		return shadowValuePattern.MatchString(value)
	}
	return true
}
