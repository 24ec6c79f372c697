// Package registry builds a typed design-token registry from CSS custom
// property declarations and resolves queried style values against it.
package registry

import (
	"github.com/gnana997/styleaudit/pkg/colormath"
)

// Category classifies a design token.
type Category string

const (
	CategoryColor        Category = "color"
	CategoryTypography   Category = "typography"
	CategorySpacing      Category = "spacing"
	CategoryBorderRadius Category = "borderRadius"
	CategoryShadow       Category = "shadow"
)

// Categories lists every token category in a stable order.
var Categories = []Category{
	CategoryColor,
	CategoryTypography,
	CategorySpacing,
	CategoryBorderRadius,
	CategoryShadow,
}

// Token is a named design token derived from a CSS custom property.
// Tokens are built once during Initialize and never mutated afterward;
// exactly one of the category payload fields is populated, keyed by Category.
type Token struct {
	Name         string   `json:"name"`
	Variable     string   `json:"variable"`                // declared name, e.g. "--spacing-sm"
	UtilityClass string   `json:"utility_class,omitempty"` // class alias where a convention exists
	Category     Category `json:"category"`
	Value        string   `json:"value"` // original declared value

	Color        *colormath.Color `json:"color,omitempty"`
	Typography   *Typography      `json:"typography,omitempty"`
	ShadowLayers []ShadowLayer    `json:"shadow_layers,omitempty"`
}

// clone deep-copies a token so callers can never mutate registry storage
// through the category payload pointers.
func (t Token) clone() Token {
	out := t
	if t.Color != nil {
		c := *t.Color
		if t.Color.OKLCH != nil {
			ok := *t.Color.OKLCH
			c.OKLCH = &ok
		}
		out.Color = &c
	}
	if t.Typography != nil {
		ty := *t.Typography
		out.Typography = &ty
	}
	if t.ShadowLayers != nil {
		out.ShadowLayers = append([]ShadowLayer(nil), t.ShadowLayers...)
	}
	return out
}

// Typography accumulates the declarations that share one base name
// (e.g. --heading-font-size and --heading-line-height merge into "heading").
type Typography struct {
	FontFamily    string `json:"font_family,omitempty"`
	FontSize      string `json:"font_size,omitempty"`
	FontWeight    string `json:"font_weight,omitempty"`
	LineHeight    string `json:"line_height,omitempty"`
	LetterSpacing string `json:"letter_spacing,omitempty"`
}

// ShadowLayer is one parsed layer of a box-shadow value.
type ShadowLayer struct {
	Inset   bool   `json:"inset,omitempty"`
	OffsetX string `json:"offset_x"`
	OffsetY string `json:"offset_y"`
	Blur    string `json:"blur,omitempty"`
	Spread  string `json:"spread,omitempty"`
	Color   string `json:"color,omitempty"`
}

// MatchResult is the outcome of a successful registry lookup.
type MatchResult struct {
	Token      Token   `json:"token"`
	Confidence float64 `json:"confidence"` // [0,1], 1 = exact
	Value      string  `json:"value"`      // the value that was queried
}

// MatchOptions tunes FindClosestColorMatch and FindBestMatch.
type MatchOptions struct {
	// Threshold is the minimum confidence for a nearest-neighbor color match.
	// Zero means the default of 0.85.
	Threshold float64
	// Exact requires an exact hex match; nearest-neighbor search is skipped.
	Exact bool
}

// DefaultThreshold is the minimum confidence accepted for nearest-neighbor
// color matches when the caller does not override it.
const DefaultThreshold = 0.85

// Diagnostic records a non-fatal issue encountered while building or
// querying the registry. Diagnostics never abort the surrounding operation.
type Diagnostic struct {
	Stage    string `json:"stage"` // "initialize" | "query"
	Variable string `json:"variable,omitempty"`
	Value    string `json:"value,omitempty"`
	Message  string `json:"message"`
}
