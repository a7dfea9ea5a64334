package design

import (
	"strings"

	"twc/utility"
)

// pixels returns a numeric length in pixels, negation applied.
func (cv *conversion) pixels(s utility.Style) (float64, bool) {
	if !s.Numeric {
		return 0, false
	}
	n := s.Signed()
	switch s.Unit {
	case "px", "":
		return n, true
	case "rem", "em":
		return round4(n * cv.ctx.rem()), true
	case "pt":
		return round4(n * 4 / 3), true
	}
	return 0, false
}

// nonNegative is pixels for fields that cannot go below zero.
func (cv *conversion) nonNegative(s utility.Style) (float64, bool) {
	n, ok := cv.pixels(s)
	if !ok || n < 0 {
		return 0, false
	}
	return n, true
}

func milliseconds(s utility.Style) (float64, bool) {
	if !s.Numeric || s.Number < 0 {
		return 0, false
	}
	switch s.Unit {
	case "ms", "":
		return s.Number, true
	case "s":
		return s.Number * 1000, true
	}
	return 0, false
}

// splitTopLevel splits v at sep outside parentheses and quotes. Empty
// parts are dropped when sep is a space.
func splitTopLevel(v string, sep byte) []string {
	var (
		out   []string
		depth int
		quote byte
		start int
	)
	for i := 0; i < len(v); i++ {
		ch := v[i]
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			}
		case ch == '"' || ch == '\'':
			quote = ch
		case ch == '(':
			depth++
		case ch == ')':
			if depth > 0 {
				depth--
			}
		case ch == sep && depth == 0:
			out = appendPart(out, v[start:i], sep)
			start = i + 1
		}
	}
	return appendPart(out, v[start:], sep)
}

func appendPart(out []string, part string, sep byte) []string {
	part = strings.TrimSpace(part)
	if part == "" && sep == ' ' {
		return out
	}
	return append(out, part)
}

// blendMode turns a CSS blend mode into the node form: "color-dodge" is
// COLOR_DODGE.
func blendMode(v string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(v), "-", "_"))
}

// unquote strips url() and quotes around a resource reference.
func unquote(v string) string {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, "url(") && strings.HasSuffix(v, ")") {
		v = strings.TrimSpace(v[4 : len(v)-1])
	}
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		v = v[1 : len(v)-1]
	}
	return v
}
