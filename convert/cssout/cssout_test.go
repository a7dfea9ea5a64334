package cssout

import (
	"io"
	"strings"
	"testing"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twc/classes"
	"twc/common"
	"twc/utility"
)

func TestEscapeClass(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"p-4", "p-4"},
		{"-mt-4", "-mt-4"},
		{"hover:p-4", `hover\:p-4`},
		{"w-1/2", `w-1\/2`},
		{"2xl:p-4", `\32 xl\:p-4`},
		{"p-[16px]", `p-\[16px\]`},
		{"p-0.5", `p-0\.5`},
		{"p-4!", `p-4\!`},
	}
	for _, tt := range tests {
		if got := EscapeClass(tt.in); got != tt.expected {
			t.Errorf("%q: expected %q, got %q", tt.in, tt.expected, got)
		}
	}
}

func TestDeclarations(t *testing.T) {
	tests := []struct {
		utility  string
		expected []string
	}{
		{"px-4", []string{"padding-inline: 16px;"}},
		{"mt-2", []string{"margin-top: 8px;"}},
		{"-mx-2", []string{"margin-inline: -8px;"}},
		{"border-t-2", []string{"border-top-width: 2px;"}},
		{"border", []string{"border-width: 1px;"}},
		{"rounded-tl-lg", []string{"border-top-left-radius: 8px;"}},
		{"rounded-t", []string{"border-top-left-radius: 4px;", "border-top-right-radius: 4px;"}},
		{"size-4", []string{"width: 16px;", "height: 16px;"}},
		{"gap-x-2", []string{"column-gap: 8px;"}},
		{"bg-red-500", []string{"background-color: #ef4444;"}},
		{"bg-red-500/50", []string{"background-color: color-mix(in oklab, #ef4444 50%, transparent);"}},
		{"bg-linear-to-r", []string{"background-image: linear-gradient(to right, var(--tw-gradient-stops));"}},
		{"from-red-500", []string{"--tw-gradient-from: #ef4444;", "--tw-gradient-stops: var(--tw-gradient-from), var(--tw-gradient-to);"}},
		{"font-sans", []string{"font-family: Inter;"}},
		{"font-mono", []string{`font-family: "Roboto Mono";`}},
		{"font-bold", []string{"font-weight: 700;"}},
		{"truncate", []string{"overflow: hidden;", "white-space: nowrap;", "text-overflow: ellipsis;"}},
		{"p-4!", []string{"padding: 16px !important;"}},
		{"[mask-type:luminance]", []string{"mask-type: luminance;"}},
		{"z-10", []string{"z-index: 10;"}},
		{"blur-sm", []string{"filter: blur(4px);"}},
		{"opacity-50", []string{"opacity: 0.5;"}},
		{"-rotate-45", []string{"rotate: -45deg;"}},
		{"flex-col", []string{"flex-direction: column;"}},
	}
	p := utility.NewParser(nil, nil)
	for _, tt := range tests {
		t.Run(tt.utility, func(t *testing.T) {
			s, ok := p.Parse(tt.utility)
			require.True(t, ok)
			var got []string
			for _, d := range Declarations(s) {
				got = append(got, d.String())
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestKebab(t *testing.T) {
	tests := map[string]string{
		"backgroundColor": "background-color",
		"zIndex":          "z-index",
		"webkitLineClamp": "-webkit-line-clamp",
		"--brand-color":   "--brand-color",
		"display":         "display",
	}
	for in, expected := range tests {
		if got := kebab(in); got != expected {
			t.Errorf("%q: expected %q, got %q", in, expected, got)
		}
	}
}

func TestEmit(t *testing.T) {
	c := classes.NewCompiler(nil, common.DarkModeMedia, nil)
	sheet := NewEmitter(nil).Emit(c.Compile("md:hover:bg-red-500 p-4 bogus hoverr:p-2 p-4"))

	expected := `.p-4 {
  padding: 16px;
}

@media (width >= 768px) {
  .md\:hover\:bg-red-500:hover {
    background-color: #ef4444;
  }
}
`
	assert.Equal(t, expected, sheet.String())
	assert.Len(t, sheet.Warnings, 2)
}

func TestEmit_Space(t *testing.T) {
	c := classes.NewCompiler(nil, common.DarkModeMedia, nil)
	sheet := NewEmitter(nil).Emit(c.Compile("space-x-4"))
	assert.Equal(t, ":where(.space-x-4 > :not(:last-child)) {\n  margin-inline-end: 16px;\n}\n", sheet.String())
}

func TestEmit_DarkClass(t *testing.T) {
	c := classes.NewCompiler(nil, common.DarkModeClass, nil)
	sheet := NewEmitter(nil).Emit(c.Compile("dark:bg-black"))
	require.Len(t, sheet.Rules, 1)
	assert.Equal(t, `.dark .dark\:bg-black`, sheet.Rules[0].Selector)
	assert.Empty(t, sheet.Rules[0].AtRules)
}

// The emitted text has to be valid CSS: the tokenizer must see balanced
// blocks and no bad tokens.
func TestEmit_ParsesBack(t *testing.T) {
	c := classes.NewCompiler(nil, common.DarkModeMedia, nil)
	input := "p-4 md:p-8 hover:bg-red-500/50 w-1/2 2xl:[&>p]:mt-2 [@supports(display:grid)]:grid " +
		"data-[state=open]:opacity-100 group-hover:text-white bg-[url(x.png)] font-[Inter/Semi_Bold]"
	sheet := NewEmitter(nil).Emit(c.Compile(input))
	require.Empty(t, sheet.Warnings)

	p := css.NewParser(parse.NewInputString(sheet.String()), false)
	depth, rules := 0, 0
	for {
		gt, _, _ := p.Next()
		if gt == css.ErrorGrammar {
			require.ErrorIs(t, p.Err(), io.EOF)
			break
		}
		switch gt {
		case css.BeginRulesetGrammar, css.BeginAtRuleGrammar:
			depth++
			if gt == css.BeginRulesetGrammar {
				rules++
			}
		case css.EndRulesetGrammar, css.EndAtRuleGrammar:
			depth--
		}
	}
	assert.Zero(t, depth)
	assert.Equal(t, len(sheet.Rules), rules)
	assert.True(t, strings.Contains(sheet.String(), "@supports (display:grid)") || strings.Contains(sheet.String(), "@supports (display: grid)"))
}
