package utility

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"twc/theme"
)

// Tokens is the design-token provider the parser resolves preset values
// against. *theme.Theme implements it.
type Tokens interface {
	ColorValue(name string) (string, bool)
	SpacingValue(name string) (float64, bool)
	ContainerValue(name string) (float64, bool)
	FontSizeValue(name string) (theme.FontSize, bool)
	FontWeightValue(name string) (int, bool)
	FontFamilyValue(name string) (string, bool)
	RadiusValue(name string) (float64, bool)
	ShadowValue(name string) (string, bool)
	BlurValue(name string) (float64, bool)
	TrackingValue(name string) (float64, bool)
	LeadingValue(name string) (float64, bool)
	EaseValue(name string) (string, bool)
}

// Parser resolves utility tokens. It is safe for concurrent use as long as
// the token provider is not modified.
type Parser struct {
	log    *zap.Logger
	tokens Tokens
}

// NewParser creates a utility parser. A nil provider selects the default
// theme.
func NewParser(tokens Tokens, log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	if tokens == nil {
		tokens = theme.Default()
	}
	return &Parser{log: log.Named("utility-parser"), tokens: tokens}
}

// Parse resolves a utility token. When the token is not recognized the
// returned Style carries only Raw and ok is false.
func (p *Parser) Parse(token string) (Style, bool) {
	s := Style{Raw: token}
	body := token
	switch {
	case strings.HasSuffix(body, "!"):
		body, s.Important = body[:len(body)-1], true
	case strings.HasPrefix(body, "!"):
		body, s.Important = body[1:], true
	}
	if strings.HasPrefix(body, "-") {
		body, s.Negative = body[1:], true
	}

	if body == "" || !p.parse(&s, body) {
		p.log.Debug("Unknown utility", zap.String("utility", token))
		return Style{Raw: token}, false
	}
	return s, true
}

func (p *Parser) parse(s *Style, body string) bool {
	if l, ok := literals[body]; ok {
		if s.Negative {
			return false
		}
		s.Property, s.Value, s.Direction = l.property, l.value, l.direction
		return true
	}
	if body[0] == '[' {
		return wholeProperty(s, body)
	}

	pre, value, ok := lookupPrefix(body)
	if !ok || (s.Negative && !pre.negatable) {
		return false
	}
	s.Property, s.Direction = pre.property, pre.direction

	if base, _, _ := splitAlpha(value); isGroup(base, '[', ']') || isGroup(base, '(', ')') {
		return p.arbitrary(s, pre, value)
	}
	if value == "" {
		if pre.bare == "" {
			return false
		}
		value = pre.bare
	}
	return p.preset(s, pre, value)
}

// isGroup reports whether s is a single bracket group from start to end.
func isGroup(s string, open, close byte) bool {
	if len(s) < 2 || s[0] != open || s[len(s)-1] != close {
		return false
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case open:
			depth++
		case close:
			depth--
			if depth == 0 && i != len(s)-1 {
				return false
			}
		}
	}
	return depth == 0
}

// splitAlpha separates a trailing "/50", "/[0.35]" or "/(--alpha)" color
// opacity modifier. The slash has to be outside of brackets.
func splitAlpha(value string) (base, alpha string, ok bool) {
	depth := 0
	for i := len(value) - 1; i > 0; i-- {
		switch value[i] {
		case ']', ')':
			depth++
		case '[', '(':
			depth--
		case '/':
			if depth == 0 {
				return value[:i], value[i+1:], true
			}
		}
	}
	return value, "", false
}

var (
	numberRe   = regexp.MustCompile(`^(-?(?:\d+\.?\d*|\.\d+))(px|rem|em|%|deg|rad|turn|ms|s|vh|vw|dvh|dvw|svh|lvh|ch|ex|fr)?$`)
	propertyRe = regexp.MustCompile(`^(--)?[a-zA-Z][a-zA-Z0-9-]*$`)
	fractionRe = regexp.MustCompile(`^(\d+)/(\d+)$`)
	integerRe  = regexp.MustCompile(`^\d+$`)
)

// wholeProperty handles "[mask-type:luminance]".
func wholeProperty(s *Style, body string) bool {
	if !isGroup(body, '[', ']') {
		return false
	}
	prop, value, ok := strings.Cut(body[1:len(body)-1], ":")
	if !ok || !propertyRe.MatchString(prop) || value == "" {
		return false
	}
	s.Variant = VariantArbitrary
	s.Property = camelCase(prop)
	s.setLiteral(decodeValue(value))
	return true
}

// camelCase converts a CSS property name, custom properties are kept.
func camelCase(prop string) string {
	if strings.HasPrefix(prop, "--") {
		return prop
	}
	var sb strings.Builder
	upper := false
	for i := 0; i < len(prop); i++ {
		c := prop[i]
		if c == '-' {
			upper = sb.Len() > 0
			continue
		}
		if upper && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		upper = false
		sb.WriteByte(c)
	}
	return sb.String()
}

// decodeValue turns unescaped underscores into spaces. url() content is
// left alone.
func decodeValue(v string) string {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, "url(") || !strings.Contains(v, "_") {
		return v
	}
	var sb strings.Builder
	for i := 0; i < len(v); i++ {
		switch {
		case v[i] == '\\' && i+1 < len(v) && v[i+1] == '_':
			sb.WriteByte('_')
			i++
		case v[i] == '_':
			sb.WriteByte(' ')
		default:
			sb.WriteByte(v[i])
		}
	}
	return sb.String()
}

// Type hints accepted in "bg-[color:var(--x)]" and "text-(length:--size)".
var typeHints = []string{
	"color", "length", "size", "percentage", "number", "position", "image", "url",
	"family-name", "weight", "line-width", "shadow", "angle",
}

func cutHint(v string) (string, string) {
	for _, h := range typeHints {
		if rest, ok := strings.CutPrefix(v, h+":"); ok {
			return h, rest
		}
	}
	return "", v
}

func (p *Parser) arbitrary(s *Style, pre prefix, value string) bool {
	base, alphaText, hasAlpha := splitAlpha(value)
	if !isGroup(base, '[', ']') && !isGroup(base, '(', ')') {
		base, hasAlpha = value, false
	}
	inner := strings.TrimSpace(base[1 : len(base)-1])
	hint, inner := cutHint(inner)
	if inner == "" {
		return false
	}

	if base[0] == '(' {
		if !strings.HasPrefix(inner, "--") || !propertyRe.MatchString(inner) {
			return false
		}
		s.Variant = VariantVariable
		s.Value = "var(" + inner + ")"
	} else {
		s.Variant = VariantArbitrary
		s.setLiteral(decodeValue(inner))
	}

	isColor := hint == "color" || (hint == "" && s.Variant == VariantArbitrary && looksLikeColor(s.Value))
	isLength := hint == "length" || hint == "line-width" || hint == "size" || hint == "number" ||
		hint == "percentage" || (hint == "" && s.Numeric)

	switch pre.kind {
	case kindColor:
		if hint != "" && hint != "color" {
			return !hasAlpha && p.backgroundHint(s, pre, hint)
		}
		if pre.property == PropBackgroundColor && s.Variant == VariantArbitrary && looksLikeImage(s.Value) {
			s.Property = PropBackgroundImage
			return !hasAlpha
		}
	case kindText:
		if isLength {
			s.Property = PropFontSize
			return !hasAlpha
		}
	case kindWidthColor:
		// a variable without a hint is taken as a color
		if !isColor && !(hint == "" && s.Variant == VariantVariable) {
			return !hasAlpha && isLength
		}
		s.Property = pre.alt
	case kindShadow:
		if !isColor {
			return !hasAlpha
		}
		s.Property = pre.alt
	case kindFont:
		switch {
		case hint == "weight" || (hint == "" && s.Numeric):
			s.Property = PropFontWeight
		case hint == "" && s.Variant == VariantArbitrary && strings.Contains(s.Value, "/"):
			s.Property = PropFontName
		default:
			s.Property = PropFontFamily
		}
		return !hasAlpha
	default:
		return !hasAlpha
	}

	if hasAlpha {
		a, ok := parseAlpha(alphaText)
		if !ok {
			return false
		}
		s.Opacity = &a
	}
	return true
}

// backgroundHint handles explicit non-color hints on color prefixes.
func (p *Parser) backgroundHint(s *Style, pre prefix, hint string) bool {
	if pre.property != PropBackgroundColor {
		return false
	}
	switch hint {
	case "image", "url":
		s.Property = PropBackgroundImage
		if hint == "url" && s.Variant == VariantArbitrary && !strings.HasPrefix(s.Value, "url(") {
			s.Value, s.Numeric = "url("+s.Value+")", false
		}
	case "length", "size", "percentage":
		s.Property = PropBackgroundSize
	case "position":
		s.Property = PropBackgroundPosition
	default:
		return false
	}
	return true
}

var colorFuncs = []string{"#", "rgb(", "rgba(", "hsl(", "hsla(", "hwb(", "oklch(", "oklab(", "lab(", "lch(", "color(", "color-mix(", "var("}

func looksLikeColor(v string) bool {
	lv := strings.ToLower(v)
	for _, f := range colorFuncs {
		if strings.HasPrefix(lv, f) {
			return true
		}
	}
	return lv == "transparent" || lv == "currentcolor" || lv == "inherit"
}

func looksLikeImage(v string) bool {
	return strings.HasPrefix(v, "url(") || strings.Contains(v, "gradient(") || strings.HasPrefix(v, "image-set(")
}

// parseAlpha reads "50" (percent), "[0.35]" or "[35%]" into [0, 1].
func parseAlpha(text string) (float64, bool) {
	if isGroup(text, '[', ']') {
		text = text[1 : len(text)-1]
		if pct, ok := strings.CutSuffix(text, "%"); ok {
			v, err := strconv.ParseFloat(pct, 64)
			return v / 100, err == nil && v >= 0 && v <= 100
		}
		v, err := strconv.ParseFloat(text, 64)
		return v, err == nil && v >= 0 && v <= 1
	}
	v, ok := integer(text)
	return float64(v) / 100, ok && v <= 100
}

func (p *Parser) preset(s *Style, pre prefix, value string) bool {
	if kw, ok := pre.keywords[value]; ok {
		s.setLiteral(kw)
		return true
	}

	switch pre.kind {
	case kindSpacing:
		return p.spacing(s, value)
	case kindSize:
		return p.size(s, value)
	case kindMaxSize:
		switch value {
		case "none":
			s.Value = "none"
			return true
		case "prose":
			s.setNumber(65, "ch")
			return true
		}
		if v, ok := p.tokens.ContainerValue(value); ok {
			s.setNumber(v, "px")
			return true
		}
		return p.size(s, value)
	case kindColor:
		return p.color(s, value)
	case kindText:
		if fs, ok := p.tokens.FontSizeValue(value); ok {
			s.Property = PropFontSize
			s.setNumber(fs.Size, "px")
			return true
		}
		return p.color(s, value)
	case kindFont:
		if w, ok := p.tokens.FontWeightValue(value); ok {
			s.setNumber(float64(w), "")
			return true
		}
		if f, ok := p.tokens.FontFamilyValue(value); ok {
			s.Property, s.Value = PropFontFamily, f
			return true
		}
	case kindWidthColor:
		if n, ok := integer(value); ok {
			unit := "px"
			if pre.property == PropStrokeWidth {
				unit = ""
			}
			s.setNumber(float64(n), unit)
			return true
		}
		s.Property = pre.alt
		return p.color(s, value)
	case kindRadius:
		if v, ok := p.tokens.RadiusValue(value); ok {
			s.setNumber(v, "px")
			return true
		}
	case kindShadow:
		if v, ok := p.tokens.ShadowValue(value); ok {
			s.Value = v
			return true
		}
		s.Property = pre.alt
		return p.color(s, value)
	case kindBlur:
		if v, ok := p.tokens.BlurValue(value); ok {
			s.setNumber(v, "px")
			return true
		}
	case kindLeading:
		if v, ok := p.tokens.LeadingValue(value); ok {
			s.setNumber(v, "")
			return true
		}
		return p.spacing(s, value)
	case kindTracking:
		if v, ok := p.tokens.TrackingValue(value); ok {
			s.setNumber(v, "em")
			return true
		}
	case kindOpacity:
		if n, ok := integer(value); ok {
			if n <= 100 {
				s.setNumber(float64(n)/100, "")
				return true
			}
		}
	case kindInteger:
		if n, ok := integer(value); ok {
			s.setNumber(float64(n), "")
			return true
		}
	case kindDuration:
		if n, ok := integer(value); ok {
			s.setNumber(float64(n), "ms")
			return true
		}
	case kindEase:
		if v, ok := p.tokens.EaseValue(value); ok {
			s.Value = v
			return true
		}
	case kindAngle, kindGradientAngle:
		if n, ok := integer(value); ok {
			if pre.kind == kindGradientAngle {
				s.Value, s.Direction = "linear-gradient", formatNumber(float64(n))+"deg"
				if s.Negative {
					s.Direction, s.Negative = "-"+s.Direction, false
				}
				return true
			}
			s.setNumber(float64(n), "deg")
			return true
		}
	case kindPercent:
		if n, ok := integer(value); ok {
			s.setNumber(float64(n), "%")
			return true
		}
	case kindGridTrack:
		switch {
		case value == "none" || value == "subgrid":
			s.Value = value
			return true
		case positive(value):
			s.Value = "repeat(" + value + ", minmax(0, 1fr))"
			return true
		}
	case kindSpan:
		switch {
		case value == "full":
			s.Value = "1 / -1"
			return true
		case positive(value):
			s.Value = "span " + value + " / span " + value
			return true
		}
	case kindAspect:
		switch value {
		case "auto":
			s.Value = "auto"
			return true
		case "square":
			value = "1/1"
		case "video":
			value = "16/9"
		}
		if a, b, ok := fraction(value); ok {
			s.Number, s.Numeric = float64(a)/float64(b), true
			s.Value = strconv.Itoa(a) + " / " + strconv.Itoa(b)
			return true
		}
	}
	return false
}

// integer parses an unsigned decimal that fits an int.
func integer(text string) (int, bool) {
	if !integerRe.MatchString(text) {
		return 0, false
	}
	n, err := strconv.Atoi(text)
	return n, err == nil
}

func positive(text string) bool {
	n, ok := integer(text)
	return ok && n > 0
}

// fraction parses "a/b" with a non-zero denominator.
func fraction(text string) (a, b int, ok bool) {
	sm := fractionRe.FindStringSubmatch(text)
	if sm == nil {
		return 0, 0, false
	}
	var err error
	if a, err = strconv.Atoi(sm[1]); err != nil {
		return 0, 0, false
	}
	if b, err = strconv.Atoi(sm[2]); err != nil || b == 0 {
		return 0, 0, false
	}
	return a, b, true
}

func (p *Parser) spacing(s *Style, value string) bool {
	if v, ok := p.tokens.SpacingValue(value); ok {
		s.setNumber(v, "px")
		return true
	}
	return false
}

func (p *Parser) size(s *Style, value string) bool {
	switch value {
	case "auto":
		s.Value = "auto"
		return true
	case "full":
		s.setNumber(100, "%")
		return true
	case "screen":
		unit := "vw"
		if strings.Contains(strings.ToLower(s.Property), "height") || s.Direction == "y" {
			unit = "vh"
		}
		s.setNumber(100, unit)
		return true
	case "min", "max", "fit":
		s.Value = value + "-content"
		return true
	}
	if fractionRe.MatchString(value) {
		a, b, ok := fraction(value)
		if !ok {
			return false
		}
		s.setNumber(math.Round(float64(a)/float64(b)*1e6)/1e4, "%")
		return true
	}
	return p.spacing(s, value)
}

func (p *Parser) color(s *Style, value string) bool {
	base, alphaText, hasAlpha := splitAlpha(value)
	c, ok := p.tokens.ColorValue(base)
	if !ok {
		return false
	}
	s.Value = c
	if hasAlpha {
		a, ok := parseAlpha(alphaText)
		if !ok {
			return false
		}
		s.Opacity = &a
	}
	return true
}
