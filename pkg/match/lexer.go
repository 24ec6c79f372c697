package match

import (
	"regexp"
	"strings"
)

// lineTable resolves byte offsets to 1-based line/column positions and line
// text. Built once per Match call; matchers stay stateless across calls.
type lineTable struct {
	source string
	starts []int // byte offset of each line start
}

func newLineTable(source string) *lineTable {
	starts := []int{0}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineTable{source: source, starts: starts}
}

// locate builds a Location for the half-open byte range [start, end).
func (lt *lineTable) locate(start, end int) Location {
	line := lt.lineIndex(start)
	return Location{
		Start:  start,
		End:    end,
		Line:   line + 1,
		Column: start - lt.starts[line] + 1,
	}
}

func (lt *lineTable) lineIndex(offset int) int {
	lo, hi := 0, len(lt.starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if lt.starts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// lineText returns the text of the line containing offset, without the
// trailing newline.
func (lt *lineTable) lineText(offset int) string {
	line := lt.lineIndex(offset)
	start := lt.starts[line]
	end := len(lt.source)
	if line+1 < len(lt.starts) {
		end = lt.starts[line+1] - 1
	}
	return lt.source[start:end]
}

var tagPattern = regexp.MustCompile(`<([A-Za-z][A-Za-z0-9.]*)`)

// enclosingTag finds the nearest preceding <Tag on the line containing
// offset. Best effort only; returns "" when the line has no opening tag
// before the match.
func (lt *lineTable) enclosingTag(offset int) string {
	line := lt.lineIndex(offset)
	start := lt.starts[line]
	prefix := lt.source[start:offset]

	tags := tagPattern.FindAllStringSubmatch(prefix, -1)
	if len(tags) == 0 {
		return ""
	}
	return tags[len(tags)-1][1]
}

// span is a region of the source holding a string literal's content
// (quotes excluded).
type span struct {
	start int // absolute offset of the first content byte
	text  string
}

// stringLiterals scans for single-, double-, and backtick-quoted literals,
// honoring backslash escapes. Template literals are returned whole,
// ${...} interpolations included.
func stringLiterals(source string) []span {
	var spans []span
	i := 0
	for i < len(source) {
		c := source[i]
		if c != '\'' && c != '"' && c != '`' {
			i++
			continue
		}
		content, next := readString(source, i)
		if next < 0 {
			// Unterminated literal: stop scanning rather than guessing.
			break
		}
		spans = append(spans, span{start: i + 1, text: content})
		i = next
	}
	return spans
}

// readString reads a quoted literal starting at the quote character and
// returns its content plus the offset just past the closing quote.
// Returns -1 when the literal never terminates.
func readString(source string, start int) (string, int) {
	quote := source[start]
	i := start + 1
	for i < len(source) {
		switch source[i] {
		case '\\':
			i += 2
			continue
		case quote:
			return source[start+1 : i], i + 1
		case '\n':
			// Only template literals span lines.
			if quote != '`' {
				return source[start+1 : i], i + 1
			}
		}
		i++
	}
	return "", -1
}

// matchBrace returns the offset of the brace closing the one at open,
// tracking nesting depth and skipping string literal contents. Returns -1
// when unbalanced.
func matchBrace(source string, open int) int {
	depth := 0
	i := open
	for i < len(source) {
		switch source[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		case '\'', '"', '`':
			_, next := readString(source, i)
			if next < 0 {
				return -1
			}
			i = next
			continue
		}
		i++
	}
	return -1
}

// skipSpace advances past whitespace.
func skipSpace(source string, i int) int {
	for i < len(source) && (source[i] == ' ' || source[i] == '\t' || source[i] == '\n' || source[i] == '\r') {
		i++
	}
	return i
}

// identAt reads a JS identifier starting at i; empty when none.
func identAt(source string, i int) string {
	j := i
	for j < len(source) && isIdentByte(source[j], j > i) {
		j++
	}
	return source[i:j]
}

func isIdentByte(c byte, notFirst bool) bool {
	if c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
		return true
	}
	return notFirst && c >= '0' && c <= '9'
}

// unquote strips one layer of matching quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') ||
			(s[0] == '"' && s[len(s)-1] == '"') ||
			(s[0] == '`' && s[len(s)-1] == '`') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// isDynamic reports whether a value still contains template interpolation.
func isDynamic(value string) bool {
	return strings.Contains(value, "${")
}
