package registry

import (
	"fmt"
	"strings"
)

// ParseShadowLayers best-effort parses a box-shadow value into its layers.
// Commas outside parentheses separate layers, so rgba() colors inside a
// layer stay intact. An error means the value keeps its string form only.
func ParseShadowLayers(value string) ([]ShadowLayer, error) {
	parts := splitTopLevel(value, ',')

	layers := make([]ShadowLayer, 0, len(parts))
	for _, part := range parts {
		layer, err := parseShadowLayer(part)
		if err != nil {
			return nil, err
		}
		layers = append(layers, layer)
	}
	if len(layers) == 0 {
		return nil, fmt.Errorf("registry: empty shadow value %q", value)
	}
	return layers, nil
}

// parseShadowLayer splits one layer into inset, up to four lengths, and a
// trailing color. Lengths come first in CSS order: x, y, blur, spread.
func parseShadowLayer(s string) (ShadowLayer, error) {
	fields := splitTopLevel(s, ' ')

	var layer ShadowLayer
	var lengths []string
	var colorParts []string

	for _, f := range fields {
		switch {
		case f == "inset":
			layer.Inset = true
		case isLength(f) && len(colorParts) == 0:
			lengths = append(lengths, f)
		default:
			colorParts = append(colorParts, f)
		}
	}

	if len(lengths) < 2 {
		return ShadowLayer{}, fmt.Errorf("registry: shadow layer %q needs at least x and y offsets", s)
	}

	layer.OffsetX = lengths[0]
	layer.OffsetY = lengths[1]
	if len(lengths) > 2 {
		layer.Blur = lengths[2]
	}
	if len(lengths) > 3 {
		layer.Spread = lengths[3]
	}
	layer.Color = strings.Join(colorParts, " ")
	return layer, nil
}

// isLength reports whether a field looks like a CSS length or the bare zero.
func isLength(s string) bool {
	if s == "0" {
		return true
	}
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	digits := 0
	for i < len(s) && (s[i] == '.' || (s[i] >= '0' && s[i] <= '9')) {
		i++
		digits++
	}
	if digits == 0 {
		return false
	}
	switch s[i:] {
	case "", "px", "rem", "em", "%", "vh", "vw", "pt":
		return true
	}
	return false
}

// splitTopLevel splits on sep outside parentheses, trimming and dropping
// empty segments.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])

	out := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
