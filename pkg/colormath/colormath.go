// Package colormath converts between CSS color representations (hex, rgb(a),
// hsl(a), oklch) and computes a normalized distance between two colors.
// All functions are pure and deterministic.
package colormath

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB holds 8-bit channels in [0,255] and an alpha in [0,1] (1 = opaque).
type RGB struct {
	R int     `json:"r"`
	G int     `json:"g"`
	B int     `json:"b"`
	A float64 `json:"a"`
}

// HSL holds hue in whole degrees [0,360) and saturation/lightness as whole
// percentages [0,100]. Alpha is in [0,1].
type HSL struct {
	H int     `json:"h"`
	S int     `json:"s"`
	L int     `json:"l"`
	A float64 `json:"a"`
}

// OKLCH holds the raw oklch() components: lightness as a 0-1 fraction,
// chroma and hue as plain floats, alpha in [0,1].
type OKLCH struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
	A float64 `json:"a"`
}

// Color is the normalized result of parsing a color literal. Hex and RGB are
// always populated. OKLCH is present only when the input was an oklch()
// literal. Fallback marks a value whose syntax was not recognized; such a
// Color degrades to opaque black and must not be treated as a real match.
type Color struct {
	Hex      string `json:"hex"`
	RGB      RGB    `json:"rgb"`
	HSL      HSL    `json:"hsl"`
	OKLCH    *OKLCH `json:"oklch,omitempty"`
	Fallback bool   `json:"fallback,omitempty"`
}

// maxDistance is the diagonal of the RGB cube, used to normalize Distance
// into [0,1].
var maxDistance = 255 * math.Sqrt(3)

// ParseColor parses a color literal in any of the four supported families:
// #hex (3/4/6/8 digits), rgb()/rgba(), hsl()/hsla(), oklch().
//
// A value with a recognized prefix but malformed components returns an error.
// A value with no recognized prefix does not: it returns an opaque-black
// Color with Fallback set, leaving the diagnostic to the caller.
func ParseColor(text string) (Color, error) {
	s := strings.TrimSpace(text)
	lower := strings.ToLower(s)

	switch {
	case strings.HasPrefix(s, "#"):
		rgb, err := HexToRGB(s)
		if err != nil {
			return Color{}, err
		}
		return fromRGB(rgb), nil

	case strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba("):
		rgb, err := parseRGBFunc(lower)
		if err != nil {
			return Color{}, err
		}
		return fromRGB(rgb), nil

	case strings.HasPrefix(lower, "hsl(") || strings.HasPrefix(lower, "hsla("):
		hsl, err := parseHSLFunc(lower)
		if err != nil {
			return Color{}, err
		}
		rgb := HSLToRGB(hsl)
		return Color{Hex: RGBToHex(rgb), RGB: rgb, HSL: hsl}, nil

	case strings.HasPrefix(lower, "oklch("):
		ok, err := parseOKLCHFunc(lower)
		if err != nil {
			return Color{}, err
		}
		rgb := OKLCHToRGB(ok)
		c := fromRGB(rgb)
		c.OKLCH = &ok
		return c, nil
	}

	// Unrecognized syntax degrades to opaque black rather than failing.
	black := RGB{R: 0, G: 0, B: 0, A: 1}
	return Color{Hex: "#000000", RGB: black, HSL: RGBToHSL(black), Fallback: true}, nil
}

func fromRGB(rgb RGB) Color {
	return Color{Hex: RGBToHex(rgb), RGB: rgb, HSL: RGBToHSL(rgb)}
}

// HexToRGB parses #rgb, #rgba, #rrggbb, and #rrggbbaa forms.
func HexToRGB(hex string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	// Expand shorthand digits.
	switch len(h) {
	case 3, 4:
		var sb strings.Builder
		for _, r := range h {
			sb.WriteRune(r)
			sb.WriteRune(r)
		}
		h = sb.String()
	case 6, 8:
	default:
		return RGB{}, fmt.Errorf("colormath: invalid hex color %q", hex)
	}

	v, err := strconv.ParseUint(h, 16, 64)
	if err != nil {
		return RGB{}, fmt.Errorf("colormath: invalid hex color %q: %w", hex, err)
	}

	rgb := RGB{A: 1}
	if len(h) == 8 {
		rgb.A = math.Round(float64(v&0xff)/255*100) / 100
		v >>= 8
	}
	rgb.B = int(v & 0xff)
	rgb.G = int(v >> 8 & 0xff)
	rgb.R = int(v >> 16 & 0xff)
	return rgb, nil
}

// RGBToHex renders a 6-digit lowercase hex string, appending a 2-digit alpha
// suffix only when alpha is present and below 1.
func RGBToHex(rgb RGB) string {
	hex := fmt.Sprintf("#%02x%02x%02x", clamp255(rgb.R), clamp255(rgb.G), clamp255(rgb.B))
	if rgb.A > 0 && rgb.A < 1 {
		hex += fmt.Sprintf("%02x", int(math.Round(rgb.A*255)))
	}
	return hex
}

// RGBToHSL converts with the standard formula, rounding hue to whole degrees
// and saturation/lightness to whole percentages.
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255
	g := float64(rgb.G) / 255
	b := float64(rgb.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	var h, s float64
	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2 - max - min)
		} else {
			s = d / (max + min)
		}
		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		case b:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return HSL{
		H: int(math.Round(h*360)) % 360,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
		A: rgb.A,
	}
}

// HSLToRGB converts with the standard sector-interpolation formula.
func HSLToRGB(hsl HSL) RGB {
	rgb := hslToRGB(float64(hsl.H), float64(hsl.S)/100, float64(hsl.L)/100)
	rgb.A = hsl.A
	return rgb
}

func hslToRGB(hueDeg, s, l float64) RGB {
	h := math.Mod(math.Mod(hueDeg, 360)+360, 360) / 360

	if s == 0 {
		v := int(math.Round(l * 255))
		return RGB{R: v, G: v, B: v, A: 1}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: int(math.Round(hueToChannel(p, q, h+1.0/3) * 255)),
		G: int(math.Round(hueToChannel(p, q, h) * 255)),
		B: int(math.Round(hueToChannel(p, q, h-1.0/3) * 255)),
		A: 1,
	}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// OKLCHToRGB is an approximate conversion, not a colorimetric transform:
// hue passes through, lightness is used as HSL lightness, and chroma maps to
// a saturation estimate (chroma / 0.4, capped at 1). The approximation is the
// reference behavior; achromatic values (chroma 0) convert exactly.
func OKLCHToRGB(ok OKLCH) RGB {
	s := ok.C / 0.4
	if s > 1 {
		s = 1
	}
	l := ok.L
	if l < 0 {
		l = 0
	} else if l > 1 {
		l = 1
	}
	rgb := hslToRGB(ok.H, s, l)
	rgb.A = ok.A
	return rgb
}

// Distance is the Euclidean distance over the RGB cube normalized by the
// maximum possible distance, in [0,1]. Alpha is ignored.
func Distance(a, b RGB) float64 {
	dr := float64(a.R - b.R)
	dg := float64(a.G - b.G)
	db := float64(a.B - b.B)
	return math.Sqrt(dr*dr+dg*dg+db*db) / maxDistance
}

// Confidence converts a distance into a [0,1] similarity score.
func Confidence(distance float64) float64 {
	return 1 - distance
}

func parseRGBFunc(s string) (RGB, error) {
	inner, err := innerArgs(s)
	if err != nil {
		return RGB{}, err
	}
	parts := splitComponents(inner)
	if len(parts) != 3 && len(parts) != 4 {
		return RGB{}, fmt.Errorf("colormath: invalid rgb() value %q", s)
	}

	rgb := RGB{A: 1}
	chans := [3]*int{&rgb.R, &rgb.G, &rgb.B}
	for i, dst := range chans {
		f, err := strconv.ParseFloat(strings.TrimSuffix(parts[i], "%"), 64)
		if err != nil {
			return RGB{}, fmt.Errorf("colormath: invalid rgb() channel %q", parts[i])
		}
		if strings.HasSuffix(parts[i], "%") {
			f = f / 100 * 255
		}
		*dst = clamp255(int(math.Round(f)))
	}
	if len(parts) == 4 {
		a, err := parseAlpha(parts[3])
		if err != nil {
			return RGB{}, err
		}
		rgb.A = a
	}
	return rgb, nil
}

func parseHSLFunc(s string) (HSL, error) {
	inner, err := innerArgs(s)
	if err != nil {
		return HSL{}, err
	}
	parts := splitComponents(inner)
	if len(parts) != 3 && len(parts) != 4 {
		return HSL{}, fmt.Errorf("colormath: invalid hsl() value %q", s)
	}

	h, err := strconv.ParseFloat(strings.TrimSuffix(parts[0], "deg"), 64)
	if err != nil {
		return HSL{}, fmt.Errorf("colormath: invalid hsl() hue %q", parts[0])
	}
	sat, err := strconv.ParseFloat(strings.TrimSuffix(parts[1], "%"), 64)
	if err != nil {
		return HSL{}, fmt.Errorf("colormath: invalid hsl() saturation %q", parts[1])
	}
	l, err := strconv.ParseFloat(strings.TrimSuffix(parts[2], "%"), 64)
	if err != nil {
		return HSL{}, fmt.Errorf("colormath: invalid hsl() lightness %q", parts[2])
	}

	hsl := HSL{
		H: int(math.Round(h)),
		S: int(math.Round(sat)),
		L: int(math.Round(l)),
		A: 1,
	}
	if len(parts) == 4 {
		a, err := parseAlpha(parts[3])
		if err != nil {
			return HSL{}, err
		}
		hsl.A = a
	}
	return hsl, nil
}

func parseOKLCHFunc(s string) (OKLCH, error) {
	inner, err := innerArgs(s)
	if err != nil {
		return OKLCH{}, err
	}
	parts := splitComponents(inner)
	if len(parts) != 3 && len(parts) != 4 {
		return OKLCH{}, fmt.Errorf("colormath: invalid oklch() value %q", s)
	}

	l, err := strconv.ParseFloat(strings.TrimSuffix(parts[0], "%"), 64)
	if err != nil {
		return OKLCH{}, fmt.Errorf("colormath: invalid oklch() lightness %q", parts[0])
	}
	// Lightness is either a bare 0-1 fraction or a percentage.
	if strings.HasSuffix(parts[0], "%") {
		l /= 100
	}
	c, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return OKLCH{}, fmt.Errorf("colormath: invalid oklch() chroma %q", parts[1])
	}
	h, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return OKLCH{}, fmt.Errorf("colormath: invalid oklch() hue %q", parts[2])
	}

	ok := OKLCH{L: l, C: c, H: h, A: 1}
	if len(parts) == 4 {
		a, err := parseAlpha(parts[3])
		if err != nil {
			return OKLCH{}, err
		}
		ok.A = a
	}
	return ok, nil
}

// innerArgs returns the text between the first "(" and the final ")".
func innerArgs(s string) (string, error) {
	open := strings.IndexByte(s, '(')
	close := strings.LastIndexByte(s, ')')
	if open < 0 || close < open {
		return "", fmt.Errorf("colormath: malformed color function %q", s)
	}
	return s[open+1 : close], nil
}

// splitComponents splits function arguments on commas or, failing that, on
// whitespace with "/" treated as a plain separator (modern CSS syntax).
func splitComponents(inner string) []string {
	var raw []string
	if strings.Contains(inner, ",") {
		raw = strings.Split(inner, ",")
	} else {
		raw = strings.Fields(strings.ReplaceAll(inner, "/", " "))
	}
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func parseAlpha(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, fmt.Errorf("colormath: invalid alpha %q", s)
	}
	if strings.HasSuffix(s, "%") {
		f /= 100
	}
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	return f, nil
}

func clamp255(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
