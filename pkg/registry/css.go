package registry

import (
	"regexp"
	"strings"
)

// Variable is one CSS custom property declaration.
type Variable struct {
	Name  string // declared name including the "--" prefix
	Value string
}

// colorValuePattern anchors the strict color-literal syntax used to classify
// a variable as a color token. Looser shapes (named colors, var() chains)
// deliberately do not qualify.
var colorValuePattern = regexp.MustCompile(
	`^(#([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})|rgba?\([^)]*\)|hsla?\([^)]*\)|oklch\([^)]*\))$`)

// typographySuffixes map a variable-name suffix to the Typography field it
// populates. Order matters only for base-name stripping.
var typographySuffixes = []string{
	"-font-family",
	"-font-size",
	"-font-weight",
	"-line-height",
	"-letter-spacing",
}

// ExtractVariables scans CSS text for --name: value; declarations without
// interpreting selector structure. Values run to the next semicolon or
// closing brace outside parentheses. A repeated name keeps its first
// position in the declaration order but takes the last declared value.
// Declarations whose value is itself a var() reference are skipped: indirect
// values never resolve to a token.
func ExtractVariables(css string) []Variable {
	var order []string
	values := make(map[string]string)

	for i := 0; i < len(css)-1; i++ {
		if css[i] != '-' || css[i+1] != '-' {
			continue
		}

		// Read the identifier after "--".
		j := i + 2
		for j < len(css) && isIdentChar(css[j]) {
			j++
		}
		if j == i+2 {
			continue
		}
		name := css[i:j]

		// Expect a colon, allowing whitespace.
		k := j
		for k < len(css) && (css[k] == ' ' || css[k] == '\t') {
			k++
		}
		if k >= len(css) || css[k] != ':' {
			continue
		}
		k++

		// Value runs to the next top-level semicolon or closing brace.
		depth := 0
		v := k
		for v < len(css) {
			switch css[v] {
			case '(':
				depth++
			case ')':
				if depth > 0 {
					depth--
				}
			case ';', '}':
				if depth == 0 {
					goto done
				}
			}
			v++
		}
	done:
		value := strings.TrimSpace(css[k:v])
		if value != "" && !strings.HasPrefix(value, "var(") {
			if _, seen := values[name]; !seen {
				order = append(order, name)
			}
			values[name] = value
		}
		i = v
	}

	vars := make([]Variable, 0, len(order))
	for _, name := range order {
		vars = append(vars, Variable{Name: name, Value: values[name]})
	}
	return vars
}

func isIdentChar(c byte) bool {
	return c == '-' || c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// classify determines the token category for a declaration, in fixed
// precedence: strict color value shape, then name conventions, then
// typography suffixes. An empty category means the declaration is dropped.
func classify(v Variable) Category {
	switch {
	case colorValuePattern.MatchString(v.Value):
		return CategoryColor
	case strings.Contains(v.Name, "spacing"):
		return CategorySpacing
	case strings.Contains(v.Name, "border-radius"):
		return CategoryBorderRadius
	case strings.Contains(v.Name, "shadow"):
		return CategoryShadow
	case isTypographyName(v.Name):
		return CategoryTypography
	}
	return ""
}

func isTypographyName(name string) bool {
	for _, suffix := range typographySuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return strings.Contains(name, "text-")
}

// baseName derives the token identity from a variable name: the "--" prefix
// goes, category conventions are stripped, and typography suffixes collapse
// so multiple declarations merge into one token.
func baseName(variable string, cat Category) string {
	name := strings.TrimPrefix(variable, "--")

	switch cat {
	case CategorySpacing:
		name = strings.TrimPrefix(name, "spacing-")
	case CategoryBorderRadius:
		name = strings.TrimPrefix(name, "border-radius-")
	case CategoryShadow:
		name = strings.TrimPrefix(name, "shadow-")
	case CategoryTypography:
		for _, suffix := range typographySuffixes {
			if strings.HasSuffix(name, suffix) {
				return strings.TrimSuffix(name, suffix)
			}
		}
	}

	if name == "" {
		name = "default"
	}
	return name
}

// typographyField returns which Typography field a variable name declares.
func typographyField(variable string) string {
	name := strings.TrimPrefix(variable, "--")
	for _, suffix := range typographySuffixes {
		if strings.HasSuffix(name, suffix) {
			return strings.TrimPrefix(suffix, "-")
		}
	}
	return ""
}

// utilityAlias returns the utility-class alias for categories with a stable
// class convention. Spacing has no single alias (p-/m-/gap- all apply).
func utilityAlias(name string, cat Category) string {
	switch cat {
	case CategoryBorderRadius:
		return "rounded-" + name
	case CategoryShadow:
		return "shadow-" + name
	}
	return ""
}

// LooksLikeColor reports whether a value is syntactically a color literal.
// Used by FindBestMatch to decide whether the color category applies at all.
func LooksLikeColor(value string) bool {
	v := strings.TrimSpace(value)
	lower := strings.ToLower(v)
	return strings.HasPrefix(v, "#") ||
		strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba(") ||
		strings.HasPrefix(lower, "hsl(") || strings.HasPrefix(lower, "hsla(") ||
		strings.HasPrefix(lower, "oklch(")
}
