package match

import "regexp"

// UtilityClassMatcher finds Tailwind-style arbitrary-value utility classes
// (e.g. bg-[#25C9D0]) inside className attribute strings, falling back to
// every string literal in the source when no className attribute exists.
type UtilityClassMatcher struct{}

// NewUtilityClassMatcher returns a stateless utility-class matcher.
func NewUtilityClassMatcher() *UtilityClassMatcher {
	return &UtilityClassMatcher{}
}

var classNameAttrPattern = regexp.MustCompile(`\bclassName\s*=`)

// Match scans sourceText and returns ordered utility-class match records.
func (m *UtilityClassMatcher) Match(source string, opts Options) Result {
	lt := newLineTable(source)
	var res Result

	candidates := classNameCandidates(source)
	if len(candidates) == 0 {
		// No className anywhere: scan every string literal instead,
		// accepting false positives in exchange for coverage.
		candidates = stringLiterals(source)
	}

	for _, cand := range candidates {
		m.scanCandidate(lt, cand, opts, &res)
	}
	return res
}

// classNameCandidates extracts the value strings of className attributes:
// plain-quoted, template-literal, and brace-wrapped forms. A brace-wrapped
// expression (cn() calls, ternaries) contributes every string literal it
// contains, so both branches of a simple ternary become candidates.
func classNameCandidates(source string) []span {
	var spans []span

	for _, loc := range classNameAttrPattern.FindAllStringIndex(source, -1) {
		i := skipSpace(source, loc[1])
		if i >= len(source) {
			continue
		}
		switch source[i] {
		case '"', '\'', '`':
			content, next := readString(source, i)
			if next < 0 {
				continue
			}
			spans = append(spans, span{start: i + 1, text: content})
		case '{':
			close := matchBrace(source, i)
			if close < 0 {
				continue
			}
			for _, s := range stringLiterals(source[i+1 : close]) {
				spans = append(spans, span{start: i + 1 + s.start, text: s.text})
			}
		}
	}
	return spans
}

// scanCandidate walks one candidate string for prefix-[value] tokens.
func (m *UtilityClassMatcher) scanCandidate(lt *lineTable, cand span, opts Options, res *Result) {
	content := cand.text

	for i := 0; i < len(content); i++ {
		if content[i] != '[' {
			continue
		}

		// The prefix is the hyphenated identifier ending just before the
		// bracket. Variant modifiers (hover:, md:) stop the backward scan.
		ts := i
		for ts > 0 && isPrefixByte(content[ts-1]) {
			ts--
		}
		prefix := content[ts:i]
		if len(prefix) < 2 || prefix[len(prefix)-1] != '-' {
			continue
		}

		mapping, ok := opts.CustomPrefixes[prefix]
		if !ok {
			mapping, ok = utilityPrefixes[prefix]
		}
		if !ok {
			continue
		}

		// Find the closing bracket, tolerating nested brackets in the value.
		depth := 1
		j := i + 1
		for j < len(content) && depth > 0 {
			switch content[j] {
			case '[':
				depth++
			case ']':
				depth--
			}
			if depth == 0 {
				break
			}
			j++
		}
		if depth != 0 {
			break
		}
		value := content[i+1 : j]
		if value == "" || !opts.wants(mapping.Category) {
			i = j
			continue
		}

		// Candidate start + match offset + prefix length + 1 places the
		// value inside the original source.
		start := cand.start + ts + len(prefix) + 1
		end := cand.start + j

		rec := Match{
			Category: mapping.Category,
			Value:    value,
			Property: mapping.Property,
			Scope:    ScopeUtilityClass,
			Location: lt.locate(start, end),
		}
		if opts.IncludeContext {
			rec.Context = lt.lineText(start)
			rec.Tag = lt.enclosingTag(start)
		}
		res.Matches = append(res.Matches, rec)

		if isDynamic(value) {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				Scope:   ScopeUtilityClass,
				Message: "dynamic value in " + prefix + "[...]: not resolvable to a literal",
				Offset:  start,
			})
		}
		i = j
	}
}

func isPrefixByte(c byte) bool {
	return c == '-' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
