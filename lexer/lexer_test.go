package lexer

import (
	"reflect"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func mods(texts ...string) []Token {
	out := make([]Token, 0, len(texts))
	for _, t := range texts {
		out = append(out, Token{Kind: KindModifier, Text: t})
	}
	return out
}

func util(text string) Token {
	return Token{Kind: KindUtility, Text: text}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{"empty", "", nil},
		{"lone colon", ":", mods("")},
		{"utility only", "bg-blue-500", []Token{util("bg-blue-500")}},
		{"modifiers and utility", "md:hover:bg-blue-500", append(mods("md", "hover"), util("bg-blue-500"))},
		{"double colon keeps empty token", "before::content-none", append(mods("before", ""), util("content-none"))},
		{"trailing colon has no utility", "hover:", mods("hover")},
		{
			"colon inside arbitrary value",
			"bg-[url(data:image/svg+xml;utf8,<svg></svg>)]",
			[]Token{util("bg-[url(data:image/svg+xml;utf8,<svg></svg>)]")},
		},
		{"arbitrary property", "[mask-type:luminance]", []Token{util("[mask-type:luminance]")}},
		{
			"arbitrary selector modifier",
			"[&:nth-child(3)]:underline",
			append(mods("[&:nth-child(3)]"), util("underline")),
		},
		{
			"arbitrary media query",
			"[@media(min-width:900px)]:p-4",
			append(mods("[@media(min-width:900px)]"), util("p-4")),
		},
		{"data attribute", "data-[state=open]:block", append(mods("data-[state=open]"), util("block"))},
		{"variable shorthand", "hover:bg-(--brand:x)", append(mods("hover"), util("bg-(--brand:x)"))},
		{"escaped colon", `a\:b:c`, append(mods(`a\:b`), util("c"))},
		{"important suffix segment", "hover:bg-red-500:!", append(mods("hover"), util("bg-red-500!"))},
		{"important inside brackets is inert", "content-['!']", []Token{util("content-['!']")}},
		{"quoted closing bracket", "content-[']:']", []Token{util("content-[']:']")}},
		{"quoted url", `bg-[url("a:b.png")]:p-4`, append(mods(`bg-[url("a:b.png")]`), util("p-4"))},
		{"apostrophe inside a word", "bg-[url(it's.png)]:p-4", append(mods("bg-[url(it's.png)]"), util("p-4"))},
		{"apostrophe before colon", "content-[it's]:hover:x", append(mods("content-[it's]", "hover"), util("x"))},
		{"unterminated bracket", "hover:bg-[url(a:b", append(mods("hover"), util("bg-[url(a:b"))},
		{"stray closer is literal", "a]:b", append(mods("a]"), util("b"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) == 0 && len(tt.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tokenize(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSplitClasses(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"whitespace only", " \t\n ", nil},
		{"simple list", "p-4  bg-red-500\tflex", []string{"p-4", "bg-red-500", "flex"}},
		{"space inside brackets", "grid-cols-[1fr 2fr] gap-2", []string{"grid-cols-[1fr 2fr]", "gap-2"}},
		{"escaped space", `a\ b c`, []string{`a\ b`, "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitClasses(tt.input)
			if len(got) == 0 && len(tt.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SplitClasses(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	m, u, ok := Split("md:hover:bg-blue-500")
	if !ok || u != "bg-blue-500" {
		t.Fatalf("expected utility bg-blue-500, got %q (ok=%v)", u, ok)
	}
	if !reflect.DeepEqual(m, []string{"md", "hover"}) {
		t.Errorf("expected modifiers [md hover], got %q", m)
	}

	if _, _, ok := Split("hover:"); ok {
		t.Error("expected no utility for a class ending in a colon")
	}
}

func TestBalanced(t *testing.T) {
	if !Balanced("bg-[url(a)]") {
		t.Error("expected balanced")
	}
	if Balanced("bg-[url(a)") {
		t.Error("expected unbalanced")
	}
	if !Balanced(`a\[`) {
		t.Error("escaped bracket must not count")
	}
}

// Tokens joined back with colons reproduce any class built from plain
// segments, and bracketed regions are never split.
func TestTokenize_BracketsNeverSplit(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 5).Draw(rt, "segments")
		segments := make([]string, n)
		for i := range segments {
			seg := rapid.StringMatching(`[a-z][a-z0-9-]{0,8}`).Draw(rt, "prefix")
			if rapid.Bool().Draw(rt, "bracketed") {
				inner := rapid.StringMatching(`[a-z0-9:;/.,+=_#%]{1,12}`).Draw(rt, "inner")
				seg += "-[" + inner + "]"
			}
			segments[i] = seg
		}
		input := strings.Join(segments, ":")

		tokens := Tokenize(input)
		if len(tokens) != n {
			rt.Fatalf("expected %d tokens for %q, got %v", n, input, tokens)
		}
		for i, tok := range tokens {
			if tok.Text != segments[i] {
				rt.Fatalf("token %d: expected %q, got %q", i, segments[i], tok.Text)
			}
			if want := i == n-1; (tok.Kind == KindUtility) != want {
				rt.Fatalf("token %d of %q has kind %s", i, input, tok.Kind)
			}
		}
	})
}

func TestTokenize_NeverPanics(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		input := rapid.StringMatching(`[a-z:\[\]()\\!'" -]{0,24}`).Draw(rt, "input")
		tokens := Tokenize(input)
		utilities := 0
		for _, tok := range tokens {
			if tok.Kind == KindUtility {
				utilities++
			}
		}
		if utilities > 1 {
			rt.Fatalf("more than one utility token for %q: %v", input, tokens)
		}
	})
}
