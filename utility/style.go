// Package utility turns the utility part of a class ("bg-red-500/50",
// "p-[16px]", "-mt-4") into a style instruction.
package utility

import (
	"strconv"
	"strings"
)

// Variant tells where the value of an instruction came from.
// ENUM(preset, arbitrary, variable)
type Variant int

// Style is one resolved style instruction. Property is a canonical
// camelCase name from the Prop* constants, Value the resolved CSS value.
// Several instructions may share a property, their order is significant.
type Style struct {
	Property string `json:"property" yaml:"property"`
	Value    string `json:"value" yaml:"value"`
	// Number and Unit are set when Value is a single number with an
	// optional unit ("16px", "45deg", "0.5").
	Number  float64 `json:"number,omitempty" yaml:"number,omitempty"`
	Numeric bool    `json:"numeric,omitempty" yaml:"numeric,omitempty"`
	Unit    string  `json:"unit,omitempty" yaml:"unit,omitempty"`
	Variant Variant `json:"variant" yaml:"variant"`
	// Direction narrows the property to sides, axes or corners ("x", "t",
	// "tl") and holds the gradient direction ("to right") for linear
	// gradients.
	Direction string `json:"direction,omitempty" yaml:"direction,omitempty"`
	// Opacity is the "/50" color modifier in [0, 1].
	Opacity   *float64 `json:"opacity,omitempty" yaml:"opacity,omitempty"`
	Negative  bool     `json:"negative,omitempty" yaml:"negative,omitempty"`
	Important bool     `json:"important,omitempty" yaml:"important,omitempty"`
	Raw       string   `json:"raw" yaml:"raw"`
}

// Alpha returns the opacity modifier, 1 when there is none.
func (s Style) Alpha() float64 {
	if s.Opacity == nil {
		return 1
	}
	return *s.Opacity
}

// Signed returns Number with the negation applied.
func (s Style) Signed() float64 {
	if s.Negative {
		return -s.Number
	}
	return s.Number
}

// CSSValue returns the value as it should appear in a declaration, with
// negation applied.
func (s Style) CSSValue() string {
	if !s.Negative {
		return s.Value
	}
	if s.Numeric {
		return formatNumber(-s.Number) + s.Unit
	}
	return "calc(" + s.Value + " * -1)"
}

// setNumber fills Value, Number and Unit from a number and a unit.
func (s *Style) setNumber(n float64, unit string) {
	s.Number, s.Unit, s.Numeric = n, unit, true
	s.Value = formatNumber(n) + unit
}

// setLiteral parses value as a number with an optional unit, otherwise it is
// kept as is.
func (s *Style) setLiteral(value string) {
	s.Value = value
	if sm := numberRe.FindStringSubmatch(value); sm != nil {
		if n, err := strconv.ParseFloat(sm[1], 64); err == nil {
			s.Number, s.Unit, s.Numeric = n, sm[2], true
		}
	}
}

func formatNumber(n float64) string {
	s := strconv.FormatFloat(n, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
