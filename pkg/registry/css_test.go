package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractVariables(t *testing.T) {
	css := `:root {
  --olivia-blue: #25C9D0;
  --spacing-sm: 1rem;
  --shadow-card: 0 2px 4px rgba(0, 0, 0, 0.1);
}`
	vars := ExtractVariables(css)
	require.Len(t, vars, 3)
	assert.Equal(t, Variable{Name: "--olivia-blue", Value: "#25C9D0"}, vars[0])
	assert.Equal(t, Variable{Name: "--spacing-sm", Value: "1rem"}, vars[1])
	// Commas inside rgba() must not end the value early.
	assert.Equal(t, "0 2px 4px rgba(0, 0, 0, 0.1)", vars[2].Value)
}

func TestExtractVariables_LastDeclarationWins(t *testing.T) {
	css := `:root { --primary: #111111; }
.theme { --primary: #222222; }`
	vars := ExtractVariables(css)
	require.Len(t, vars, 1)
	assert.Equal(t, "#222222", vars[0].Value)
}

func TestExtractVariables_SkipsVarReferences(t *testing.T) {
	css := `:root {
  --base: #ffffff;
  --alias: var(--base);
}`
	vars := ExtractVariables(css)
	require.Len(t, vars, 1)
	assert.Equal(t, "--base", vars[0].Name)
}

func TestExtractVariables_ValueEndsAtClosingBrace(t *testing.T) {
	css := `:root { --spacing-xs: 4px }`
	vars := ExtractVariables(css)
	require.Len(t, vars, 1)
	assert.Equal(t, "4px", vars[0].Value)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		variable Variable
		want     Category
	}{
		{"hex color", Variable{"--olivia-blue", "#25C9D0"}, CategoryColor},
		{"oklch color", Variable{"--white", "oklch(1 0 0)"}, CategoryColor},
		{"rgb color", Variable{"--gray", "rgb(85, 85, 85)"}, CategoryColor},
		{"spacing by name", Variable{"--spacing-sm", "1rem"}, CategorySpacing},
		{"border radius by name", Variable{"--border-radius-lg", "12px"}, CategoryBorderRadius},
		{"shadow by name", Variable{"--shadow-card", "0 2px 4px rgba(0,0,0,0.1)"}, CategoryShadow},
		{"typography suffix", Variable{"--heading-font-size", "2rem"}, CategoryTypography},
		{"text substring", Variable{"--text-body", "1rem/1.5 sans-serif"}, CategoryTypography},
		{"unmodeled", Variable{"--z-index-modal", "50"}, Category("")},
		// Value shape wins over name conventions.
		{"color value in spacing name", Variable{"--spacing-accent", "#ff0000"}, CategoryColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.variable))
		})
	}
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "sm", baseName("--spacing-sm", CategorySpacing))
	assert.Equal(t, "lg", baseName("--border-radius-lg", CategoryBorderRadius))
	assert.Equal(t, "card", baseName("--shadow-card", CategoryShadow))
	assert.Equal(t, "heading", baseName("--heading-font-size", CategoryTypography))
	assert.Equal(t, "heading", baseName("--heading-line-height", CategoryTypography))
	assert.Equal(t, "olivia-blue", baseName("--olivia-blue", CategoryColor))
	assert.Equal(t, "default", baseName("--border-radius-", CategoryBorderRadius))
}

func TestLooksLikeColor(t *testing.T) {
	assert.True(t, LooksLikeColor("#fff"))
	assert.True(t, LooksLikeColor("rgb(1,2,3)"))
	assert.True(t, LooksLikeColor("oklch(1 0 0)"))
	assert.False(t, LooksLikeColor("1rem"))
	assert.False(t, LooksLikeColor("0 2px 4px rgba(0,0,0,0.1)"))
}
