package registry

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnana997/styleaudit/pkg/colormath"
)

// Registry resolves style values against design tokens built from CSS custom
// properties. It moves one-way from uninitialized to initialized; once built
// it is read-only and safe for concurrent use.
type Registry struct {
	log         *slog.Logger
	initialized bool
	tokens      []Token
	byCategory  map[Category][]int // indexes into tokens, declaration order
	diags       []Diagnostic
}

// New creates an uninitialized registry. Every query fails until Initialize
// has run.
func New(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		log:        logger,
		byCategory: make(map[Category][]int),
	}
}

// Initialize builds the token set from source, which is either literal CSS
// text or a path to a CSS file. Failing to obtain text is fatal; individual
// malformed tokens are skipped with a diagnostic. Calling Initialize on an
// initialized registry is a no-op.
func (r *Registry) Initialize(source string) error {
	if r.initialized {
		return nil
	}
	if source == "" {
		return fmt.Errorf("registry: no CSS source provided")
	}

	css := source
	if !looksLikeCSSText(source) {
		data, err := os.ReadFile(source)
		if err != nil {
			return fmt.Errorf("registry: read CSS source %q: %w", source, err)
		}
		css = string(data)
	}

	vars := ExtractVariables(css)
	for _, v := range vars {
		r.addToken(v)
	}

	r.initialized = true
	r.log.Info("token registry initialized",
		"variables", len(vars),
		"tokens", len(r.tokens),
		"diagnostics", len(r.diags))
	return nil
}

// looksLikeCSSText distinguishes inline CSS from a file path: declaration
// text always carries a custom property with its colon.
func looksLikeCSSText(source string) bool {
	return strings.Contains(source, "--") && strings.Contains(source, ":")
}

// addToken classifies one declaration and builds or merges its token.
// Declarations outside the five modeled categories are dropped silently.
func (r *Registry) addToken(v Variable) {
	cat := classify(v)
	if cat == "" {
		return
	}

	name := baseName(v.Name, cat)

	switch cat {
	case CategoryColor:
		color, err := colormath.ParseColor(v.Value)
		if err != nil {
			// One malformed color must not abort the rest of the build.
			r.diags = append(r.diags, Diagnostic{
				Stage:    "initialize",
				Variable: v.Name,
				Value:    v.Value,
				Message:  err.Error(),
			})
			return
		}
		if color.Fallback {
			r.diags = append(r.diags, Diagnostic{
				Stage:    "initialize",
				Variable: v.Name,
				Value:    v.Value,
				Message:  "unrecognized color syntax, token skipped",
			})
			return
		}
		r.append(Token{
			Name: name, Variable: v.Name, Category: cat,
			Value: v.Value, Color: &color,
		})

	case CategoryTypography:
		r.mergeTypography(name, v)

	case CategoryShadow:
		tok := Token{
			Name: name, Variable: v.Name, Category: cat,
			UtilityClass: utilityAlias(name, cat), Value: v.Value,
		}
		layers, err := ParseShadowLayers(v.Value)
		if err != nil {
			// Value string is still usable without structured layers.
			r.diags = append(r.diags, Diagnostic{
				Stage:    "initialize",
				Variable: v.Name,
				Value:    v.Value,
				Message:  err.Error(),
			})
		} else {
			tok.ShadowLayers = layers
		}
		r.append(tok)

	default: // spacing, borderRadius
		r.append(Token{
			Name: name, Variable: v.Name, Category: cat,
			UtilityClass: utilityAlias(name, cat), Value: v.Value,
		})
	}
}

// mergeTypography updates the token sharing the derived base name in place,
// creating it on first sight. Token identity within the category is the base
// name, so multiple declarations never produce duplicates.
func (r *Registry) mergeTypography(name string, v Variable) {
	var tok *Token
	for _, idx := range r.byCategory[CategoryTypography] {
		if r.tokens[idx].Name == name {
			tok = &r.tokens[idx]
			break
		}
	}
	if tok == nil {
		r.append(Token{
			Name: name, Variable: v.Name, Category: CategoryTypography,
			Value: v.Value, Typography: &Typography{},
		})
		tok = &r.tokens[len(r.tokens)-1]
	}

	switch typographyField(v.Name) {
	case "font-family":
		tok.Typography.FontFamily = v.Value
	case "font-size":
		tok.Typography.FontSize = v.Value
	case "font-weight":
		tok.Typography.FontWeight = v.Value
	case "line-height":
		tok.Typography.LineHeight = v.Value
	case "letter-spacing":
		tok.Typography.LetterSpacing = v.Value
	default:
		// A bare "text-" variable contributes no structured field; the raw
		// value is already retained on first sight.
	}
}

func (r *Registry) append(tok Token) {
	r.tokens = append(r.tokens, tok)
	r.byCategory[tok.Category] = append(r.byCategory[tok.Category], len(r.tokens)-1)
}

func (r *Registry) ensureInitialized() error {
	if !r.initialized {
		return fmt.Errorf("registry: not initialized, call Initialize first")
	}
	return nil
}

// FindTokenByName matches against the token name, the raw variable name with
// or without its "--" prefix, and the utility-class alias. First match in
// declaration order wins; nil means no match.
func (r *Registry) FindTokenByName(name string) (*Token, error) {
	if err := r.ensureInitialized(); err != nil {
		return nil, err
	}
	for i := range r.tokens {
		t := &r.tokens[i]
		if t.Name == name ||
			t.Variable == name ||
			strings.TrimPrefix(t.Variable, "--") == name ||
			(t.UtilityClass != "" && t.UtilityClass == name) {
			c := t.clone()
			return &c, nil
		}
	}
	return nil, nil
}

// FindTokenByCSSVariable matches the declared variable name exactly.
func (r *Registry) FindTokenByCSSVariable(variable string) (*Token, error) {
	if err := r.ensureInitialized(); err != nil {
		return nil, err
	}
	for i := range r.tokens {
		if r.tokens[i].Variable == variable {
			c := r.tokens[i].clone()
			return &c, nil
		}
	}
	return nil, nil
}

// FindClosestColorMatch resolves a color value against the color tokens.
// An exact hex match (case-insensitive) always wins with confidence 1.
// Otherwise the single nearest token by RGB distance is returned when its
// confidence clears the threshold. Unparseable input yields no match.
func (r *Registry) FindClosestColorMatch(value string, opts *MatchOptions) (*MatchResult, error) {
	if err := r.ensureInitialized(); err != nil {
		return nil, err
	}

	threshold := DefaultThreshold
	exact := false
	if opts != nil {
		if opts.Threshold > 0 {
			threshold = opts.Threshold
		}
		exact = opts.Exact
	}

	parsed, err := colormath.ParseColor(value)
	if err != nil || parsed.Fallback {
		// A fallback-black parse must never be treated as a real color.
		msg := "unrecognized color syntax"
		if err != nil {
			msg = err.Error()
		}
		r.log.Debug("color query not parseable", "value", value, "reason", msg)
		return nil, nil
	}

	// Exact hex equality beats any nearest-neighbor candidate.
	for _, idx := range r.byCategory[CategoryColor] {
		tok := r.tokens[idx]
		if strings.EqualFold(tok.Color.Hex, parsed.Hex) {
			return &MatchResult{Token: tok.clone(), Confidence: 1, Value: value}, nil
		}
	}
	if exact {
		return nil, nil
	}

	best := -1
	bestDistance := 2.0
	for _, idx := range r.byCategory[CategoryColor] {
		d := colormath.Distance(parsed.RGB, r.tokens[idx].Color.RGB)
		if d < bestDistance {
			bestDistance = d
			best = idx
		}
	}
	if best < 0 {
		return nil, nil
	}

	confidence := colormath.Confidence(bestDistance)
	if confidence < threshold {
		return nil, nil
	}
	return &MatchResult{Token: r.tokens[best].clone(), Confidence: confidence, Value: value}, nil
}

// FindBestMatch resolves a value with an optional category restriction.
// With no category the search order is fixed: color (only when the value is
// syntactically a color), then spacing, borderRadius, and shadow by exact
// value equality. The precedence is the tie-break: a value equal to both a
// spacing and a borderRadius token resolves to spacing.
func (r *Registry) FindBestMatch(value string, category Category, opts *MatchOptions) (*MatchResult, error) {
	if err := r.ensureInitialized(); err != nil {
		return nil, err
	}

	if category != "" {
		return r.matchCategory(value, category, opts)
	}

	order := []Category{CategoryColor, CategorySpacing, CategoryBorderRadius, CategoryShadow}
	for _, cat := range order {
		if cat == CategoryColor && !LooksLikeColor(value) {
			continue
		}
		res, err := r.matchCategory(value, cat, opts)
		if err != nil {
			return nil, err
		}
		if res != nil {
			return res, nil
		}
	}
	return nil, nil
}

func (r *Registry) matchCategory(value string, cat Category, opts *MatchOptions) (*MatchResult, error) {
	if cat == CategoryColor {
		return r.FindClosestColorMatch(value, opts)
	}

	want := strings.TrimSpace(value)
	for _, idx := range r.byCategory[cat] {
		if r.tokens[idx].Value == want {
			return &MatchResult{Token: r.tokens[idx].clone(), Confidence: 1, Value: value}, nil
		}
	}
	return nil, nil
}

// TokensByCategory returns copies of the tokens in one category.
func (r *Registry) TokensByCategory(cat Category) ([]Token, error) {
	if err := r.ensureInitialized(); err != nil {
		return nil, err
	}
	idxs := r.byCategory[cat]
	out := make([]Token, len(idxs))
	for i, idx := range idxs {
		out[i] = r.tokens[idx].clone()
	}
	return out, nil
}

// AllTokens returns a copy of every token in declaration order.
func (r *Registry) AllTokens() ([]Token, error) {
	if err := r.ensureInitialized(); err != nil {
		return nil, err
	}
	out := make([]Token, len(r.tokens))
	for i := range r.tokens {
		out[i] = r.tokens[i].clone()
	}
	return out, nil
}

// TokenCounts returns per-category token counts.
func (r *Registry) TokenCounts() (map[Category]int, error) {
	if err := r.ensureInitialized(); err != nil {
		return nil, err
	}
	counts := make(map[Category]int, len(Categories))
	for _, cat := range Categories {
		counts[cat] = len(r.byCategory[cat])
	}
	return counts, nil
}

// Diagnostics returns a copy of the non-fatal issues recorded so far.
func (r *Registry) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(r.diags))
	copy(out, r.diags)
	return out
}

// ExportTokens writes the full token set as indented JSON. A write failure
// is surfaced to the caller.
func (r *Registry) ExportTokens(path string) error {
	tokens, err := r.AllTokens()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(tokens, "", "  ")
	if err != nil {
		return fmt.Errorf("registry: marshal tokens: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("registry: create export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("registry: write tokens to %q: %w", path, err)
	}
	r.log.Info("tokens exported", "path", path, "count", len(tokens))
	return nil
}
