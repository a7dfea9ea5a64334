package theme

import (
	"slices"
	"strconv"

	"github.com/maruel/natural"
)

// Token groups in listing order.
var Groups = []string{
	"colors", "spacing", "breakpoints", "containers", "font_size", "font_weight",
	"font_family", "radius", "shadow", "blur", "tracking", "leading", "ease",
}

// Token is a single named design token rendered as text.
type Token struct {
	Group string `json:"group" yaml:"group"`
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Tokens lists the tokens of the requested groups (all groups when none are
// given). Names are in natural order so that "red-50" precedes "red-100".
func (t *Theme) Tokens(groups ...string) []Token {
	if len(groups) == 0 {
		groups = Groups
	}
	var out []Token
	for _, g := range groups {
		switch g {
		case "colors":
			out = appendTokens(out, g, t.Colors, func(v string) string { return v })
		case "spacing":
			out = appendTokens(out, g, t.Spacing, formatFloat)
		case "breakpoints":
			out = appendTokens(out, g, t.Breakpoints, formatFloat)
		case "containers":
			out = appendTokens(out, g, t.Containers, formatFloat)
		case "font_size":
			out = appendTokens(out, g, t.FontSize, func(v FontSize) string {
				if v.LineHeight == 0 {
					return formatFloat(v.Size)
				}
				return formatFloat(v.Size) + "/" + formatFloat(v.LineHeight)
			})
		case "font_weight":
			out = appendTokens(out, g, t.FontWeight, strconv.Itoa)
		case "font_family":
			out = appendTokens(out, g, t.FontFamily, func(v string) string { return v })
		case "radius":
			out = appendTokens(out, g, t.Radius, formatFloat)
		case "shadow":
			out = appendTokens(out, g, t.Shadow, func(v string) string { return v })
		case "blur":
			out = appendTokens(out, g, t.Blur, formatFloat)
		case "tracking":
			out = appendTokens(out, g, t.Tracking, formatFloat)
		case "leading":
			out = appendTokens(out, g, t.Leading, formatFloat)
		case "ease":
			out = appendTokens(out, g, t.Ease, func(v string) string { return v })
		}
	}
	return out
}

// SortedNames returns the keys of a token table in natural order.
func SortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	slices.SortFunc(names, func(a, b string) int {
		switch {
		case a == b:
			return 0
		case natural.Less(a, b):
			return -1
		default:
			return 1
		}
	})
	return names
}

func appendTokens[V any](out []Token, group string, m map[string]V, format func(V) string) []Token {
	for _, name := range SortedNames(m) {
		out = append(out, Token{Group: group, Name: name, Value: format(m[name])})
	}
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
