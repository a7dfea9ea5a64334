// Package lexer splits utility-class strings into modifier and utility tokens.
package lexer

// Kind tells whether a token conditions a class or is the class itself.
// ENUM(modifier, utility)
type Kind int

// Token is a single colon-delimited part of a class.
type Token struct {
	Kind Kind
	Text string
}

// IsModifier returns true for tokens preceding the utility.
func (t Token) IsModifier() bool {
	return t.Kind == KindModifier
}
