package match

import (
	"regexp"
	"sort"
	"strings"
)

// InlineStyleMatcher finds style-bearing literals in inline style object
// literals: both the direct style={{ … }} form and the style={identifier}
// indirection resolved against a const/let/var declaration in the same
// source.
type InlineStyleMatcher struct{}

// NewInlineStyleMatcher returns a stateless inline-style matcher.
func NewInlineStyleMatcher() *InlineStyleMatcher {
	return &InlineStyleMatcher{}
}

var styleAttrPattern = regexp.MustCompile(`\bstyle\s*=\s*\{`)

// Match scans sourceText and returns inline-style match records ordered by
// source position.
func (m *InlineStyleMatcher) Match(source string, opts Options) Result {
	lt := newLineTable(source)
	var res Result

	for _, loc := range styleAttrPattern.FindAllStringIndex(source, -1) {
		open := loc[1] - 1 // the outer JSX expression brace
		inner := skipSpace(source, loc[1])
		if inner >= len(source) {
			continue
		}

		if source[inner] == '{' {
			close := matchBrace(source, inner)
			if close < 0 {
				res.Diagnostics = append(res.Diagnostics, Diagnostic{
					Scope:   ScopeInlineStyle,
					Message: "unbalanced style object literal",
					Offset:  inner,
				})
				continue
			}
			m.scanObject(lt, source, inner+1, close, "", 0, opts, &res)
			continue
		}

		// style={identifier}: resolve against a declaration elsewhere.
		ident := identAt(source, inner)
		if ident == "" {
			continue
		}
		bodyStart, bodyEnd := findObjectDecl(source, ident)
		if bodyStart < 0 {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				Scope:   ScopeInlineStyle,
				Message: "style indirection " + ident + " does not resolve to an object literal",
				Offset:  open,
			})
			continue
		}
		m.scanObject(lt, source, bodyStart, bodyEnd, ident, 0, opts, &res)
	}

	// Indirection bodies live elsewhere in the source, and the same
	// declaration may back several style attributes: order by position and
	// drop duplicates.
	sort.SliceStable(res.Matches, func(i, j int) bool {
		return res.Matches[i].Location.Start < res.Matches[j].Location.Start
	})
	res.Matches = dedupeByStart(res.Matches)
	return res
}

// findObjectDecl locates `const|let|var <ident> = { … }` and returns the
// body's byte range, or (-1, -1).
func findObjectDecl(source, ident string) (int, int) {
	pattern := regexp.MustCompile(
		`\b(?:const|let|var)\s+` + regexp.QuoteMeta(ident) + `\s*(?::[^={]+)?=\s*\{`)
	loc := pattern.FindStringIndex(source)
	if loc == nil {
		return -1, -1
	}
	open := loc[1] - 1
	close := matchBrace(source, open)
	if close < 0 {
		return -1, -1
	}
	return open + 1, close
}

// scanObject splits an object body into property:value pairs with a
// comma/quote-aware scan. First-level nested objects (pseudo-state
// sub-objects) are descended into once; deeper blocks are not.
func (m *InlineStyleMatcher) scanObject(lt *lineTable, source string, start, end int, path string, depth int, opts Options, res *Result) {
	i := start
	for i < end {
		i = skipSpace(source, i)
		if i >= end {
			break
		}

		// Property name: quoted or bare identifier.
		var name string
		switch source[i] {
		case '\'', '"':
			content, next := readString(source, i)
			if next < 0 || next > end {
				return
			}
			name = content
			i = next
		default:
			name = identAt(source, i)
			if name == "" {
				i = skipPair(source, i, end)
				continue
			}
			i += len(name)
		}

		i = skipSpace(source, i)
		if i >= end || source[i] != ':' {
			// Shorthand or spread entry; not a style pair.
			i = skipPair(source, i, end)
			continue
		}
		i = skipSpace(source, i+1)
		if i >= end {
			break
		}

		// Nested object value.
		if source[i] == '{' {
			close := matchBrace(source, i)
			if close < 0 || close > end {
				return
			}
			if depth == 0 {
				m.scanObject(lt, source, i+1, close, joinPath(path, name), depth+1, opts, res)
			}
			i = skipPair(source, close+1, end)
			continue
		}

		valueStart := i
		valueEnd := scanValue(source, i, end)
		m.emitPair(lt, source, name, valueStart, valueEnd, path, opts, res)
		i = skipPair(source, valueEnd, end)
	}
}

// emitPair validates one property:value pair and appends a match record.
func (m *InlineStyleMatcher) emitPair(lt *lineTable, source, name string, valueStart, valueEnd int, path string, opts Options, res *Result) {
	cat, ok := opts.CustomProperties[name]
	if !ok {
		cat, ok = inlineProperties[name]
	}
	if !ok || !opts.wants(cat) {
		return
	}

	raw := strings.TrimRight(source[valueStart:valueEnd], " \t\r\n")
	valueEnd = valueStart + len(raw)

	// A quoted literal contributes its content; offsets move inside the
	// quotes.
	value := raw
	if len(raw) >= 2 && (raw[0] == '\'' || raw[0] == '"' || raw[0] == '`') && raw[len(raw)-1] == raw[0] {
		value = raw[1 : len(raw)-1]
		valueStart++
		valueEnd--
	}

	if !validValueShape(cat, value) {
		// Computed or non-literal values are skipped, never evaluated.
		res.Diagnostics = append(res.Diagnostics, Diagnostic{
			Scope:   ScopeInlineStyle,
			Message: "value for " + name + " is not a recognizable " + string(cat) + " literal",
			Offset:  valueStart,
		})
		return
	}

	rec := Match{
		Category: cat,
		Value:    value,
		Property: name,
		Scope:    ScopeInlineStyle,
		Path:     path,
		Location: lt.locate(valueStart, valueEnd),
	}
	if opts.IncludeContext {
		rec.Context = lt.lineText(valueStart)
		rec.Tag = lt.enclosingTag(valueStart)
	}
	res.Matches = append(res.Matches, rec)
}

// scanValue reads from i to the comma ending the pair, skipping string
// literals and balanced parens/brackets.
func scanValue(source string, i, end int) int {
	depth := 0
	for i < end {
		switch source[i] {
		case '(', '[':
			depth++
		case ')', ']':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				return i
			}
		case '\'', '"', '`':
			_, next := readString(source, i)
			if next < 0 || next > end {
				return end
			}
			i = next
			continue
		}
		i++
	}
	return end
}

// skipPair advances past the current pair's trailing comma.
func skipPair(source string, i, end int) int {
	i = scanValue(source, i, end)
	if i < end && source[i] == ',' {
		i++
	}
	return i
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func dedupeByStart(matches []Match) []Match {
	out := matches[:0]
	lastStart := -1
	for _, m := range matches {
		if m.Location.Start == lastStart {
			continue
		}
		out = append(out, m)
		lastStart = m.Location.Start
	}
	return out
}
