package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	th := Default()

	c, ok := th.ColorValue("blue-500")
	require.True(t, ok)
	assert.Equal(t, "#3b82f6", c)

	px, ok := th.SpacingValue("4")
	require.True(t, ok)
	assert.Equal(t, 16.0, px)

	bp, ok := th.BreakpointValue("md")
	require.True(t, ok)
	assert.Equal(t, 768.0, bp)

	fs, ok := th.FontSizeValue("xl")
	require.True(t, ok)
	assert.Equal(t, FontSize{Size: 20, LineHeight: 28}, fs)

	w, ok := th.FontWeightValue("semibold")
	require.True(t, ok)
	assert.Equal(t, 600, w)

	r, ok := th.RadiusValue(DefaultKey)
	require.True(t, ok)
	assert.Equal(t, 4.0, r)

	_, ok = th.ShadowValue("md")
	assert.True(t, ok)
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a.Colors["blue-500"] = "#000000"
	delete(a.Spacing, "4")

	b := Default()
	c, _ := b.ColorValue("blue-500")
	assert.Equal(t, "#3b82f6", c)
	_, ok := b.Spacing["4"]
	assert.True(t, ok)
}

func TestSpacingValue(t *testing.T) {
	th := Default()
	tests := []struct {
		name     string
		expected float64
		ok       bool
	}{
		{"px", 1, true},
		{"0.5", 2, true},
		{"13", 52, true},
		{"2.25", 9, true},
		{"2.3", 0, false},
		{"-1", 0, false},
		{"1e2", 0, false},
		{"auto", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := th.SpacingValue(tt.name)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.expected, got, 1e-9)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	base := Default()
	base.Merge(&Theme{
		SpacingUnit: 5,
		Colors:      map[string]string{"brand": "#123456", "blue-500": "#0000ff"},
		Breakpoints: map[string]float64{"3xl": 1920},
	})

	c, _ := base.ColorValue("brand")
	assert.Equal(t, "#123456", c)
	c, _ = base.ColorValue("blue-500")
	assert.Equal(t, "#0000ff", c)
	c, _ = base.ColorValue("red-500")
	assert.Equal(t, "#ef4444", c)

	bp, ok := base.BreakpointValue("3xl")
	assert.True(t, ok)
	assert.Equal(t, 1920.0, bp)

	// table entries win over the unit
	px, _ := base.SpacingValue("4")
	assert.Equal(t, 16.0, px)
	px, _ = base.SpacingValue("13")
	assert.Equal(t, 65.0, px)

	base.Merge(nil)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "tokens.yaml", `
colors:
  brand: "#ff0066"
radius:
  card: 10
`)
	th, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "#ff0066", th.Colors["brand"])
	assert.Equal(t, 10.0, th.Radius["card"])
	assert.Empty(t, th.Spacing)
}

func TestLoad_YAMLUnknownField(t *testing.T) {
	path := writeFile(t, "tokens.yml", "colours:\n  brand: red\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EmptyYAML(t *testing.T) {
	path := writeFile(t, "empty.yaml", "")
	th, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, th.Colors)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "tokens.toml", `
spacing_unit = 5

[colors]
brand = "#00ff88"

[font_size]
huge = { size = 80, line_height = 88 }
`)
	th, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5.0, th.SpacingUnit)
	assert.Equal(t, "#00ff88", th.Colors["brand"])
	assert.Equal(t, FontSize{Size: 80, LineHeight: 88}, th.FontSize["huge"])
}

func TestLoad_Unsupported(t *testing.T) {
	path := writeFile(t, "tokens.json", "{}")
	_, err := Load(path)
	assert.ErrorContains(t, err, "unsupported theme file type")
}

func TestParseCSS(t *testing.T) {
	src := `@import "tailwindcss";

@theme {
  --color-brand-500: oklch(0.62 0.19 250);
  --breakpoint-3xl: 120rem;
  --font-display: "Satoshi", sans-serif;
  --font-weight-hairline: 50;
  --text-tiny: 0.625rem;
  --text-tiny--line-height: calc(1 / 0.625);
  --spacing: 0.25rem;
  --color-*: initial;
  /* trailing declaration without semicolon */
  --radius-card: 12px
}

.btn {
  --color-ignored: red;
}
`
	th, err := ParseCSS(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, "oklch(0.62 0.19 250)", th.Colors["brand-500"])
	assert.NotContains(t, th.Colors, "ignored")
	assert.NotContains(t, th.Colors, "*")
	assert.Equal(t, 1920.0, th.Breakpoints["3xl"])
	assert.Equal(t, "Satoshi", th.FontFamily["display"])
	assert.Equal(t, 50, th.FontWeight["hairline"])
	assert.Equal(t, 10.0, th.FontSize["tiny"].Size)
	assert.InDelta(t, 16.0, th.FontSize["tiny"].LineHeight, 1e-9)
	assert.Equal(t, 4.0, th.SpacingUnit)
	assert.Equal(t, 12.0, th.Radius["card"])
}

func TestParseCSS_BadValues(t *testing.T) {
	src := `@theme {
  --breakpoint-huge: wide;
  --font-weight-odd: heavy;
}`
	_, err := ParseCSS(strings.NewReader(src))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "huge")
	assert.Contains(t, err.Error(), "odd")
}

func TestLoadFiles(t *testing.T) {
	yamlPath := writeFile(t, "a.yaml", "colors:\n  brand: \"#111111\"\n")
	cssPath := writeFile(t, "b.css", "@theme { --color-brand: #222222; --color-accent: #333333; }")

	th, err := LoadFiles(yamlPath, cssPath)
	require.NoError(t, err)
	assert.Equal(t, "#222222", th.Colors["brand"])
	assert.Equal(t, "#333333", th.Colors["accent"])
	assert.Equal(t, "#ef4444", th.Colors["red-500"])
}

func TestLoadFiles_CombinesErrors(t *testing.T) {
	_, err := LoadFiles("/nonexistent/a.yaml", "/nonexistent/b.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a.yaml")
	assert.Contains(t, err.Error(), "b.toml")
}

func TestTokens_NaturalOrder(t *testing.T) {
	th := &Theme{Colors: map[string]string{
		"red-100": "#2", "red-50": "#1", "red-900": "#4", "red-500": "#3",
	}}
	tokens := th.Tokens("colors")
	names := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		assert.Equal(t, "colors", tok.Group)
		names = append(names, tok.Name)
	}
	assert.Equal(t, []string{"red-50", "red-100", "red-500", "red-900"}, names)
}

func TestTokens_AllGroups(t *testing.T) {
	tokens := Default().Tokens()
	seen := make(map[string]bool)
	for _, tok := range tokens {
		seen[tok.Group] = true
	}
	for _, g := range Groups {
		assert.True(t, seen[g], "group %s has no tokens", g)
	}
}
