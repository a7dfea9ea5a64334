package lexer

import "strings"

// nesting tracks bracket and parenthesis depth of the text scanned so far.
// Inside a group quotes are honored so that a quoted "]" does not close it. A
// quote opens a string only where a value may start (after an opener, a
// separator or a space), so an apostrophe inside a word stays literal.
type nesting struct {
	stack []byte // expected closers, innermost last
	quote byte   // active quote character inside a group, 0 when none
	prev  byte   // previous byte fed
}

func (n *nesting) depth() int {
	return len(n.stack)
}

// feed advances the nesting state over a single (non-escaped) byte.
func (n *nesting) feed(c byte) {
	defer func() { n.prev = c }()
	if n.quote != 0 {
		if c == n.quote {
			n.quote = 0
		}
		return
	}
	switch c {
	case '[':
		n.stack = append(n.stack, ']')
	case '(':
		n.stack = append(n.stack, ')')
	case ']', ')':
		// a closer that does not match the innermost opener is taken literally
		if d := len(n.stack); d > 0 && n.stack[d-1] == c {
			n.stack = n.stack[:d-1]
		}
	case '\'', '"':
		if len(n.stack) > 0 && strings.IndexByte("[(,=:_ ", n.prev) >= 0 {
			n.quote = c
		}
	}
}

// Tokenize splits a single class into its modifier tokens and the trailing
// utility token.
//
// Only colons at nesting depth 0 separate tokens, so arbitrary values such as
// "[mask-type:luminance]" or "bg-[url(data:image/svg+xml;...)]" stay intact and
// a prefix like "bg-" is never separated from its bracket group. Escaped
// characters are copied together with the backslash and never act as
// delimiters. When brackets are not terminated the remainder of the input
// belongs to the current token.
//
// A final "!" segment is merged into the preceding token (important marker). A
// class ending in a colon has no utility token: every token is a modifier.
func Tokenize(input string) []Token {
	if input == "" {
		return nil
	}

	var (
		parts []string
		cur   strings.Builder
		nest  nesting
	)
	for i := 0; i < len(input); i++ {
		c := input[i]
		if c == '\\' {
			cur.WriteByte(c)
			if i+1 < len(input) {
				i++
				cur.WriteByte(input[i])
			}
			continue
		}
		if c == ':' && nest.depth() == 0 && nest.quote == 0 {
			parts = append(parts, cur.String())
			cur.Reset()
			continue
		}
		nest.feed(c)
		cur.WriteByte(c)
	}
	parts = append(parts, cur.String())

	if n := len(parts); n > 1 && parts[n-1] == "!" {
		parts[n-2] += "!"
		parts = parts[:n-1]
	}

	withUtility := true
	if n := len(parts); n > 1 && parts[n-1] == "" {
		parts = parts[:n-1]
		withUtility = false
	}

	tokens := make([]Token, 0, len(parts))
	for i, p := range parts {
		kind := KindModifier
		if withUtility && i == len(parts)-1 {
			kind = KindUtility
		}
		tokens = append(tokens, Token{Kind: kind, Text: p})
	}
	return tokens
}

// SplitClasses splits a class list on whitespace outside of brackets and
// parentheses. Empty entries are dropped.
func SplitClasses(input string) []string {
	var (
		classes []string
		cur     strings.Builder
		nest    nesting
	)
	flush := func() {
		if cur.Len() > 0 {
			classes = append(classes, cur.String())
			cur.Reset()
		}
	}
	for i := 0; i < len(input); i++ {
		c := input[i]
		if c == '\\' {
			cur.WriteByte(c)
			if i+1 < len(input) {
				i++
				cur.WriteByte(input[i])
			}
			continue
		}
		if isSpace(c) && nest.depth() == 0 {
			flush()
			continue
		}
		nest.feed(c)
		cur.WriteByte(c)
	}
	flush()
	return classes
}

// Split is a convenience wrapper returning modifier texts and the utility
// text. ok is false when the class has no utility token.
func Split(class string) (modifiers []string, utility string, ok bool) {
	for _, t := range Tokenize(class) {
		if t.IsModifier() {
			modifiers = append(modifiers, t.Text)
			continue
		}
		utility, ok = t.Text, true
	}
	return modifiers, utility, ok
}

// Balanced reports whether every bracket and parenthesis in s is closed.
func Balanced(s string) bool {
	var nest nesting
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' {
			i++
			continue
		}
		nest.feed(s[i])
	}
	return nest.depth() == 0
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
