package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func newTestParser() *Parser {
	return NewParser(nil, nil)
}

func TestParse_Literals(t *testing.T) {
	p := newTestParser()
	tests := []struct {
		token     string
		property  string
		value     string
		direction string
	}{
		{"flex", PropDisplay, "flex", ""},
		{"hidden", PropDisplay, "none", ""},
		{"flex-row", PropFlexDirection, "row", ""},
		{"flex-col", PropFlexDirection, "column", ""},
		{"absolute", PropPosition, "absolute", ""},
		{"italic", PropFontStyle, "italic", ""},
		{"underline", PropTextDecorationLine, "underline", ""},
		{"uppercase", PropTextTransform, "uppercase", ""},
		{"text-center", PropTextAlign, "center", ""},
		{"overflow-x-auto", PropOverflow, "auto", "x"},
		{"items-center", PropAlignItems, "center", ""},
		{"justify-between", PropJustifyContent, "space-between", ""},
		{"bg-linear-to-r", PropBackgroundImage, "linear-gradient", "to right"},
		{"bg-gradient-to-tl", PropBackgroundImage, "linear-gradient", "to top left"},
		{"bg-blend-multiply", PropBackgroundBlendMode, "multiply", ""},
		{"bg-cover", PropBackgroundSize, "cover", ""},
		{"bg-no-repeat", PropBackgroundRepeat, "no-repeat", ""},
		{"invisible", PropVisibility, "hidden", ""},
		{"border-dashed", PropBorderStyle, "dashed", ""},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			s, ok := p.Parse(tt.token)
			require.True(t, ok)
			assert.Equal(t, tt.property, s.Property)
			assert.Equal(t, tt.value, s.Value)
			assert.Equal(t, tt.direction, s.Direction)
			assert.Equal(t, VariantPreset, s.Variant)
			assert.Equal(t, tt.token, s.Raw)
		})
	}
}

func TestParse_Presets(t *testing.T) {
	p := newTestParser()
	tests := []struct {
		token     string
		property  string
		value     string
		number    float64
		unit      string
		direction string
	}{
		{"p-4", PropPadding, "16px", 16, "px", ""},
		{"px-2.5", PropPadding, "10px", 10, "px", "x"},
		{"pt-px", PropPadding, "1px", 1, "px", "t"},
		{"p-13", PropPadding, "52px", 52, "px", ""},
		{"gap-x-3", PropGap, "12px", 12, "px", "x"},
		{"w-1/2", PropWidth, "50%", 50, "%", ""},
		{"w-1/3", PropWidth, "33.3333%", 33.3333, "%", ""},
		{"w-full", PropWidth, "100%", 100, "%", ""},
		{"h-screen", PropHeight, "100vh", 100, "vh", ""},
		{"w-screen", PropWidth, "100vw", 100, "vw", ""},
		{"max-w-md", PropMaxWidth, "448px", 448, "px", ""},
		{"top-4", PropTop, "16px", 16, "px", ""},
		{"bg-red-500", PropBackgroundColor, "#ef4444", 0, "", ""},
		{"from-blue-500", PropGradientFrom, "#3b82f6", 0, "", ""},
		{"text-xl", PropFontSize, "20px", 20, "px", ""},
		{"text-white", PropColor, "#ffffff", 0, "", ""},
		{"font-bold", PropFontWeight, "700", 700, "", ""},
		{"font-mono", PropFontFamily, "Roboto Mono", 0, "", ""},
		{"leading-tight", PropLineHeight, "1.25", 1.25, "", ""},
		{"leading-6", PropLineHeight, "24px", 24, "px", ""},
		{"tracking-wide", PropLetterSpacing, "0.025em", 0.025, "em", ""},
		{"rounded", PropBorderRadius, "4px", 4, "px", ""},
		{"rounded-lg", PropBorderRadius, "8px", 8, "px", ""},
		{"rounded-tl-xl", PropBorderRadius, "12px", 12, "px", "tl"},
		{"border", PropBorderWidth, "1px", 1, "px", ""},
		{"border-t-2", PropBorderWidth, "2px", 2, "px", "t"},
		{"border-gray-200", PropBorderColor, "#e5e7eb", 0, "", ""},
		{"stroke-2", PropStrokeWidth, "2", 2, "", ""},
		{"stroke-black", PropStroke, "#000000", 0, "", ""},
		{"shadow-md", PropBoxShadow, "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)", 0, "", ""},
		{"blur", PropBlur, "8px", 8, "px", ""},
		{"backdrop-blur-sm", PropBackdropBlur, "4px", 4, "px", ""},
		{"opacity-50", PropOpacity, "0.5", 0.5, "", ""},
		{"z-10", PropZIndex, "10", 10, "", ""},
		{"order-first", PropOrder, "-9999", -9999, "", ""},
		{"grow", PropFlexGrow, "1", 1, "", ""},
		{"rotate-45", PropRotate, "45deg", 45, "deg", ""},
		{"scale-110", PropScale, "110%", 110, "%", ""},
		{"duration-300", PropTransitionDuration, "300ms", 300, "ms", ""},
		{"ease-in-out", PropTransitionTimingFunction, "cubic-bezier(0.4, 0, 0.2, 1)", 0, "", ""},
		{"grid-cols-3", PropGridTemplateColumns, "repeat(3, minmax(0, 1fr))", 0, "", ""},
		{"col-span-full", PropGridColumn, "1 / -1", 0, "", ""},
		{"aspect-video", PropAspectRatio, "16 / 9", 16.0 / 9.0, "", ""},
		{"cursor-pointer", PropCursor, "pointer", 0, "", ""},
		{"m-auto", PropMargin, "auto", 0, "", ""},
		{"bg-linear-45", PropBackgroundImage, "linear-gradient", 0, "", "45deg"},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			s, ok := p.Parse(tt.token)
			require.True(t, ok)
			assert.Equal(t, tt.property, s.Property)
			assert.Equal(t, tt.value, s.Value)
			assert.InDelta(t, tt.number, s.Number, 1e-4)
			assert.Equal(t, tt.unit, s.Unit)
			assert.Equal(t, tt.direction, s.Direction)
			assert.Equal(t, VariantPreset, s.Variant)
			assert.Nil(t, s.Opacity)
		})
	}
}

func TestParse_Opacity(t *testing.T) {
	p := newTestParser()
	tests := []struct {
		token string
		alpha float64
	}{
		{"bg-red-500/50", 0.5},
		{"text-black/[0.35]", 0.35},
		{"border-white/[12%]", 0.12},
		{"bg-[#ff0000]/25", 0.25},
		{"shadow-black/10", 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			s, ok := p.Parse(tt.token)
			require.True(t, ok)
			require.NotNil(t, s.Opacity)
			assert.InDelta(t, tt.alpha, s.Alpha(), 1e-9)
		})
	}

	for _, bad := range []string{"bg-red-500/101", "bg-red-500/x", "bg-red-500/[2]", "p-4/50"} {
		_, ok := p.Parse(bad)
		assert.False(t, ok, bad)
	}
}

func TestParse_Arbitrary(t *testing.T) {
	p := newTestParser()
	tests := []struct {
		token    string
		property string
		value    string
		numeric  bool
		number   float64
		unit     string
		variant  Variant
	}{
		{"p-[16px]", PropPadding, "16px", true, 16, "px", VariantArbitrary},
		{"w-[1.5rem]", PropWidth, "1.5rem", true, 1.5, "rem", VariantArbitrary},
		{"rotate-[45deg]", PropRotate, "45deg", true, 45, "deg", VariantArbitrary},
		{"w-[50%]", PropWidth, "50%", true, 50, "%", VariantArbitrary},
		{"w-[calc(100%-2rem)]", PropWidth, "calc(100%-2rem)", false, 0, "", VariantArbitrary},
		{"grid-cols-[1fr_2fr]", PropGridTemplateColumns, "1fr 2fr", false, 0, "", VariantArbitrary},
		{"bg-[#1da1f2]", PropBackgroundColor, "#1da1f2", false, 0, "", VariantArbitrary},
		{"bg-[url(/img/a_b.png)]", PropBackgroundImage, "url(/img/a_b.png)", false, 0, "", VariantArbitrary},
		{"bg-[linear-gradient(to_right,red,blue)]", PropBackgroundImage, "linear-gradient(to right,red,blue)", false, 0, "", VariantArbitrary},
		{"bg-[length:200px_100px]", PropBackgroundSize, "200px 100px", false, 0, "", VariantArbitrary},
		{"bg-[position:center_top]", PropBackgroundPosition, "center top", false, 0, "", VariantArbitrary},
		{"bg-[image:var(--hero)]", PropBackgroundImage, "var(--hero)", false, 0, "", VariantArbitrary},
		{"text-[14px]", PropFontSize, "14px", true, 14, "px", VariantArbitrary},
		{"text-[rgb(10,20,30)]", PropColor, "rgb(10,20,30)", false, 0, "", VariantArbitrary},
		{"text-[length:var(--size)]", PropFontSize, "var(--size)", false, 0, "", VariantArbitrary},
		{"border-[3px]", PropBorderWidth, "3px", true, 3, "px", VariantArbitrary},
		{"border-[#ccc]", PropBorderColor, "#ccc", false, 0, "", VariantArbitrary},
		{"shadow-[0_35px_60px_-15px_rgba(0,0,0,0.3)]", PropBoxShadow, "0 35px 60px -15px rgba(0,0,0,0.3)", false, 0, "", VariantArbitrary},
		{"font-[600]", PropFontWeight, "600", true, 600, "", VariantArbitrary},
		{"font-[Inter/Semi_Bold]", PropFontName, "Inter/Semi Bold", false, 0, "", VariantArbitrary},
		{"font-['Open_Sans']", PropFontFamily, "'Open Sans'", false, 0, "", VariantArbitrary},
		{"[mask-type:luminance]", "maskType", "luminance", false, 0, "", VariantArbitrary},
		{"[--gutter:12px]", "--gutter", "12px", true, 12, "px", VariantArbitrary},
		{"bg-(--brand)", PropBackgroundColor, "var(--brand)", false, 0, "", VariantVariable},
		{"text-(length:--size)", PropFontSize, "var(--size)", false, 0, "", VariantVariable},
		{"border-(--line)", PropBorderColor, "var(--line)", false, 0, "", VariantVariable},
		{"p-(--gap)", PropPadding, "var(--gap)", false, 0, "", VariantVariable},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			s, ok := p.Parse(tt.token)
			require.True(t, ok)
			assert.Equal(t, tt.property, s.Property)
			assert.Equal(t, tt.value, s.Value)
			assert.Equal(t, tt.numeric, s.Numeric)
			assert.InDelta(t, tt.number, s.Number, 1e-9)
			assert.Equal(t, tt.unit, s.Unit)
			assert.Equal(t, tt.variant, s.Variant)
		})
	}
}

func TestParse_Flags(t *testing.T) {
	p := newTestParser()

	s, ok := p.Parse("-mt-4")
	require.True(t, ok)
	assert.True(t, s.Negative)
	assert.Equal(t, 16.0, s.Number)
	assert.Equal(t, -16.0, s.Signed())
	assert.Equal(t, "-16px", s.CSSValue())

	s, ok = p.Parse("bg-red-500!")
	require.True(t, ok)
	assert.True(t, s.Important)
	assert.Equal(t, "#ef4444", s.Value)
	assert.Equal(t, "bg-red-500!", s.Raw)

	s, ok = p.Parse("!-top-[5px]")
	require.True(t, ok)
	assert.True(t, s.Important)
	assert.True(t, s.Negative)
	assert.Equal(t, "-5px", s.CSSValue())

	s, ok = p.Parse("-top-(--offset)")
	require.True(t, ok)
	assert.Equal(t, "calc(var(--offset) * -1)", s.CSSValue())

	// negation only applies to signed properties
	for _, bad := range []string{"-p-4", "-bg-red-500", "-flex", "-opacity-50"} {
		_, ok := p.Parse(bad)
		assert.False(t, ok, bad)
	}
}

func TestParse_Unknown(t *testing.T) {
	p := newTestParser()
	for _, token := range []string{
		"", "!", "-", "foo", "bg-nope-500", "p-x", "p-", "w-1/0", "text-",
		"[color]", "[:red]", "[bad prop:1]", "bg-[]", "bg-()", "bg-(brand)", "rounded-huge",
		"grid-cols-0", "opacity-150", "bg-[#fff", "font-ultra", "rotate-x",
		// numbers that do not fit an int
		"z-99999999999999999999", "grid-cols-99999999999999999999", "col-span-99999999999999999999",
		"duration-99999999999999999999", "aspect-99999999999999999999/2", "w-1/99999999999999999999",
	} {
		t.Run(token, func(t *testing.T) {
			s, ok := p.Parse(token)
			assert.False(t, ok)
			assert.Equal(t, Style{Raw: token}, s)
		})
	}
}

type customTokens struct {
	Tokens
	colors map[string]string
}

func (c customTokens) ColorValue(name string) (string, bool) {
	v, ok := c.colors[name]
	return v, ok
}

func TestParse_InjectedTokens(t *testing.T) {
	p := NewParser(customTokens{Tokens: newTestParser().tokens, colors: map[string]string{"brand": "#123456"}}, nil)

	s, ok := p.Parse("bg-brand")
	require.True(t, ok)
	assert.Equal(t, "#123456", s.Value)

	_, ok = p.Parse("bg-red-500")
	assert.False(t, ok, "palette comes from the provider only")

	s, ok = p.Parse("p-4")
	require.True(t, ok)
	assert.Equal(t, 16.0, s.Number)
}

func TestCamelCase(t *testing.T) {
	tests := map[string]string{
		"mask-type":          "maskType",
		"-webkit-line-clamp": "webkitLineClamp",
		"--my-var":           "--my-var",
		"color":              "color",
	}
	for in, expected := range tests {
		if got := camelCase(in); got != expected {
			t.Errorf("camelCase(%q): expected %q, got %q", in, expected, got)
		}
	}
}

func TestParse_NeverPanics(t *testing.T) {
	p := newTestParser()
	rapid.Check(t, func(t *rapid.T) {
		token := rapid.StringOf(rapid.RuneFrom([]rune("-![]()/:#_.%abgptwxyz0123456789"))).Draw(t, "token")
		s, ok := p.Parse(token)
		if s.Raw != token {
			t.Fatalf("raw not preserved: %q vs %q", s.Raw, token)
		}
		if !ok && s.Property != "" {
			t.Fatalf("unknown token %q carries property %q", token, s.Property)
		}
	})
}
