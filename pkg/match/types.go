// Package match scans raw component source text for hardcoded styling
// values and emits ordered match records with precise source locations.
// It deliberately avoids a host-language parser: a small quote/brace-depth
// lexer stands in for AST accuracy.
package match

// Category classifies the kind of style value a match carries. The values
// mirror the registry's token categories so an orchestrator can feed one
// into the other without translation.
type Category string

const (
	CategoryColor        Category = "color"
	CategorySpacing      Category = "spacing"
	CategoryBorderRadius Category = "borderRadius"
	CategoryShadow       Category = "shadow"
	CategoryTypography   Category = "typography"
)

// Scope is the syntactic context a value was found in.
type Scope string

const (
	ScopeUtilityClass Scope = "utility-class"
	ScopeInlineStyle  Scope = "inline-style"
)

// Location pins a matched value to its position in the original source.
// Start and End are byte offsets; Line and Column are 1-based.
type Location struct {
	Start  int `json:"start"`
	End    int `json:"end"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Match is one style-bearing literal found in source text. Records are
// emitted in order of first appearance and never mutated afterward.
type Match struct {
	Category Category `json:"category"`
	Value    string   `json:"value"`    // the matched value, verbatim
	Property string   `json:"property"` // originating CSS property name
	Scope    Scope    `json:"scope"`
	Context  string   `json:"context,omitempty"` // containing source line
	Tag      string   `json:"tag,omitempty"`     // best-effort enclosing element
	Path     string   `json:"path,omitempty"` // property path for indirect origins
	File     string   `json:"file,omitempty"` // source file, filled in by the scanner
	Location Location `json:"location"`
}

// Diagnostic records a non-fatal scanning issue (dynamic values, unresolved
// indirections). Diagnostics ride alongside matches; they never abort a scan.
type Diagnostic struct {
	Scope   Scope  `json:"scope"`
	Message string `json:"message"`
	Offset  int    `json:"offset"`
}

// PropertyMapping ties a utility-class prefix to its CSS property and
// category.
type PropertyMapping struct {
	Property string
	Category Category
}

// Options restricts what a matcher emits. The zero value matches every
// category without context extraction.
type Options struct {
	// Categories limits emitted categories; empty means all.
	Categories []Category
	// IncludeContext fills the Context and Tag fields.
	IncludeContext bool
	// CustomPrefixes extends the utility-class prefix table for one call.
	CustomPrefixes map[string]PropertyMapping
	// CustomProperties extends the inline-style property table for one call.
	CustomProperties map[string]Category
}

// DefaultOptions matches all categories with context extraction on.
func DefaultOptions() Options {
	return Options{IncludeContext: true}
}

func (o Options) wants(cat Category) bool {
	if len(o.Categories) == 0 {
		return true
	}
	for _, c := range o.Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// Result is the outcome of one matcher invocation.
type Result struct {
	Matches     []Match
	Diagnostics []Diagnostic
}

// Matcher is the shared contract of the two pattern matchers. Matchers are
// stateless and safe for concurrent use on independent source strings.
type Matcher interface {
	Match(source string, opts Options) Result
}
