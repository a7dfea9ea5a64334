package modifier

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"twc/common"
)

// Scale resolves named breakpoint and container sizes to pixels.
type Scale interface {
	BreakpointValue(name string) (float64, bool)
	ContainerValue(name string) (float64, bool)
}

type defaultScale struct{}

func (defaultScale) BreakpointValue(name string) (float64, bool) {
	v, ok := defaultBreakpoints[name]
	return v, ok
}

func (defaultScale) ContainerValue(name string) (float64, bool) {
	v, ok := defaultContainers[name]
	return v, ok
}

// Parser classifies modifier tokens. It is safe for concurrent use.
type Parser struct {
	log   *zap.Logger
	scale Scale
	dark  common.DarkMode
}

// NewParser creates a modifier parser. A nil scale selects the built-in
// breakpoint and container sizes.
func NewParser(scale Scale, dark common.DarkMode, log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	if scale == nil {
		scale = defaultScale{}
	}
	return &Parser{log: log.Named("modifier-parser"), scale: scale, dark: dark}
}

// Parse classifies a single modifier. It never fails: anything it does not
// recognize comes back as Unknown carrying the raw text.
func (p *Parser) Parse(token string) Modifier {
	m := p.parse(token)
	if IsUnknown(m) {
		p.log.Debug("Unknown modifier", zap.String("modifier", token))
	}
	return m
}

// ParseChain parses every modifier of a class in order.
func (p *Parser) ParseChain(tokens []string) []Modifier {
	out := make([]Modifier, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, p.Parse(t))
	}
	return out
}

func unknown(raw string) Modifier {
	return Unknown{base{raw: raw}}
}

func (p *Parser) parse(token string) Modifier {
	if token == "" || token == "!" || !balanced(token) {
		return unknown(token)
	}
	if m, ok := p.literal(token); ok {
		return m
	}
	if m, ok := p.breakpoint(token); ok {
		return m
	}

	switch {
	case token[0] == '@':
		return p.container(token)
	case token[0] == '[':
		return p.arbitrary(token)
	case strings.HasPrefix(token, "supports-"):
		return p.supports(token)
	case strings.HasPrefix(token, "data-"), strings.HasPrefix(token, "aria-"):
		return p.attribute(token)
	case strings.HasPrefix(token, "has-"), strings.HasPrefix(token, "not-"):
		return p.logical(token)
	case strings.HasPrefix(token, "group-"), strings.HasPrefix(token, "peer-"):
		return p.group(token)
	case strings.HasPrefix(token, "nth-"):
		return p.nth(token)
	}
	return unknown(token)
}

func (p *Parser) literal(token string) (Modifier, bool) {
	if i, s, ok := lookup(states, token); ok {
		return State{base: base{raw: token, rank: RankState, offset: i + 1}, Name: token, Pseudo: s.selector}, true
	}
	if i, s, ok := lookup(pseudoElements, token); ok {
		return PseudoElement{base: base{raw: token, rank: RankPseudoElement, offset: i}, Name: token, Pseudo: s.selector}, true
	}
	if i, f, ok := lookup(mediaFeatures, token); ok {
		return MediaFeature{base: base{raw: token, rank: RankMediaFeature, offset: i}, Name: token, Query: f.selector}, true
	}
	switch token {
	case "motion-safe":
		return Motion{base: base{raw: token, rank: RankMotion}}, true
	case "motion-reduce":
		return Motion{base: base{raw: token, rank: RankMotion, offset: 1}, Reduce: true}, true
	case "ltr":
		return Direction{base: base{raw: token, rank: RankDirection}}, true
	case "rtl":
		return Direction{base: base{raw: token, rank: RankDirection, offset: 1}, RTL: true}, true
	case "dark":
		return Dark{base: base{raw: token, rank: RankDark}, Class: p.dark == common.DarkModeClass}, true
	case "starting":
		return AtRule{base: base{raw: token, rank: RankArbitraryAtRule, offset: 90}, Keyword: "starting-style"}, true
	}
	return nil, false
}

func (p *Parser) breakpoint(token string) (Modifier, bool) {
	name, isMax := token, false
	switch {
	case strings.HasPrefix(token, "max-"):
		name, isMax = token[4:], true
	case strings.HasPrefix(token, "min-"):
		name = token[4:]
	}

	bp := Breakpoint{Max: isMax}
	if inner, ok := bracketed(name); ok && name != token {
		if !lengthRe.MatchString(inner) {
			return nil, false
		}
		bp.Length = inner
	} else if v, ok := p.scale.BreakpointValue(name); ok {
		bp.Name, bp.Length = name, formatPx(v)
	} else {
		return nil, false
	}
	bp.base = base{raw: token, rank: RankBreakpoint, offset: sizeOffset(bp.Length, isMax)}
	return bp, true
}

// container parses "@md", "@max-md", "@min-[400px]", "@[30rem]/sidebar".
func (p *Parser) container(token string) Modifier {
	rest, scope := splitScope(token[1:])
	c := Container{Scope: scope}
	switch {
	case strings.HasPrefix(rest, "max-"):
		rest, c.Max = rest[4:], true
	case strings.HasPrefix(rest, "min-"):
		rest = rest[4:]
	}
	if inner, ok := bracketed(rest); ok {
		if !lengthRe.MatchString(inner) {
			return unknown(token)
		}
		c.Length = inner
	} else if v, ok := p.scale.ContainerValue(rest); ok {
		c.Name, c.Length = rest, formatPx(v)
	} else {
		return unknown(token)
	}
	c.base = base{raw: token, rank: RankContainer, offset: sizeOffset(c.Length, c.Max)}
	return c
}

var (
	atRuleRe = regexp.MustCompile(`^@(media|supports|container)(?:/([A-Za-z0-9-]+))?_?(\(.*\))$`)

	// Accepted shapes of arbitrary selectors, after underscores became spaces.
	selectorShapes = []*regexp.Regexp{
		// pseudo-class, pseudo-element and compound chains: &:hover, &::before, &:hover:focus
		regexp.MustCompile(`^&(::?[a-zA-Z-]+(\(.*\))?)+$`),
		// combinators: &>*, &+p, &~.x
		regexp.MustCompile(`^&\s*[>+~]\s*\S.*$`),
		// descendant: &_p
		regexp.MustCompile(`^&\s+\S.*$`),
		// attribute, optionally followed by pseudo-classes: &[open], &[dir=rtl]:hover
		regexp.MustCompile(`^&(\[[^\]]+\])+(::?[a-zA-Z-]+(\(.*\))?)*$`),
		// compound class: &.active
		regexp.MustCompile(`^&(\.[a-zA-Z_-][\w-]*)+(::?[a-zA-Z-]+(\(.*\))?)*$`),
		// ancestor: .dark_&
		regexp.MustCompile(`^\S.*\s+&$`),
	}

	lengthRe = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)(px|rem|em|vw|vh|ch)?$`)
)

func (p *Parser) arbitrary(token string) Modifier {
	content, ok := bracketed(token)
	if !ok || content == "" {
		return unknown(token)
	}

	if content[0] == '@' {
		sm := atRuleRe.FindStringSubmatch(content)
		if sm == nil {
			return unknown(token)
		}
		rule := AtRule{Keyword: sm[1], Scope: sm[2], Query: decodeArbitrary(sm[3])}
		switch rule.Keyword {
		case "supports":
			rule.base = base{raw: token, rank: RankSupports, offset: 50}
		case "container":
			rule.base = base{raw: token, rank: RankContainer, offset: 99}
		default:
			rule.base = base{raw: token, rank: RankArbitraryAtRule}
		}
		return rule
	}

	sel := strings.TrimSpace(decodeArbitrary(content))
	if strings.Count(sel, "&") != 1 {
		return unknown(token)
	}
	for _, re := range selectorShapes {
		if re.MatchString(sel) {
			return ArbitrarySelector{base: base{raw: token, rank: RankArbitrarySelector, offset: selectorWeight(sel)}, Selector: sel}
		}
	}
	return unknown(token)
}

// selectorWeight grows with pseudo-class colons, attribute brackets and
// combinators (a plain space counts as the descendant combinator).
func selectorWeight(sel string) int {
	combinators := strings.Count(sel, ">") + strings.Count(sel, "+") + strings.Count(sel, "~")
	if combinators == 0 {
		combinators = len(strings.Fields(sel)) - 1
	}
	return min(strings.Count(sel, ":")+2*strings.Count(sel, "[")+3*combinators, 99)
}

func (p *Parser) supports(token string) Modifier {
	rest := token[len("supports-"):]
	var query string
	if inner, ok := bracketed(rest); ok {
		inner = strings.TrimSpace(decodeArbitrary(inner))
		switch {
		case inner == "":
			return unknown(token)
		case strings.HasPrefix(inner, "(") || strings.HasPrefix(inner, "not ") || strings.HasPrefix(inner, "selector("):
			query = inner
		case strings.Contains(inner, ":"):
			prop, val, _ := strings.Cut(inner, ":")
			query = "(" + strings.TrimSpace(prop) + ": " + strings.TrimSpace(val) + ")"
		default:
			query = "(" + inner + ": var(--tw))"
		}
	} else if identRe.MatchString(rest) {
		query = "(" + rest + ": var(--tw))"
	} else {
		return unknown(token)
	}
	return AtRule{base: base{raw: token, rank: RankSupports}, Keyword: "supports", Query: query}
}

var identRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`)

func (p *Parser) attribute(token string) Modifier {
	ns, rest, _ := strings.Cut(token, "-")
	a := Attribute{Namespace: ns}

	if inner, ok := bracketed(rest); ok {
		inner = strings.TrimSpace(decodeArbitrary(inner))
		name, value, hasValue := strings.Cut(inner, "=")
		name = strings.TrimSpace(name)
		if !identRe.MatchString(name) || (hasValue && strings.TrimSpace(value) == "") {
			return unknown(token)
		}
		a.Name, a.Value, a.Arbitrary = name, strings.Trim(strings.TrimSpace(value), `"'`), true
		a.base = base{raw: token, rank: RankAttribute, offset: 20}
		return a
	}

	if !identRe.MatchString(rest) {
		return unknown(token)
	}
	if ns == "data" {
		a.Name = rest
		a.base = base{raw: token, rank: RankAttribute}
		return a
	}
	if slices.Contains(ariaFlags, rest) {
		a.Name = rest
		a.base = base{raw: token, rank: RankAttribute, offset: 1}
		return a
	}
	for attr, values := range ariaValues {
		if v, ok := strings.CutPrefix(rest, attr+"-"); ok && slices.Contains(values, v) {
			a.Name, a.Value = attr, v
			a.base = base{raw: token, rank: RankAttribute, offset: 10}
			return a
		}
	}
	return unknown(token)
}

func (p *Parser) logical(token string) Modifier {
	op, rest, _ := strings.Cut(token, "-")
	l := Logical{Op: op}
	if inner, ok := bracketed(rest); ok {
		sel := strings.TrimSpace(decodeArbitrary(inner))
		if sel == "" {
			return unknown(token)
		}
		l.Selector = sel
		l.base = base{raw: token, rank: RankLogical}
		return l
	}
	inner := p.parse(rest)
	switch inner.(type) {
	case State, Attribute:
	default:
		return unknown(token)
	}
	l.Inner = inner
	l.base = base{raw: token, rank: RankLogical, offset: int(inner.Rank())}
	return l
}

func (p *Parser) group(token string) Modifier {
	kind, rest, _ := strings.Cut(token, "-")
	rest, name := splitScope(rest)
	g := Group{Peer: kind == "peer", Name: name}
	rank := RankGroup
	if g.Peer {
		rank = RankPeer
	}
	if rest == "" {
		return unknown(token)
	}
	if inner, ok := bracketed(rest); ok {
		sel := strings.TrimSpace(decodeArbitrary(inner))
		if sel == "" {
			return unknown(token)
		}
		g.Selector = sel
		g.base = base{raw: token, rank: rank}
		return g
	}
	inner := p.parse(rest)
	switch inner.(type) {
	case State, Attribute, Logical:
	default:
		return unknown(token)
	}
	g.Inner = inner
	g.base = base{raw: token, rank: rank, offset: int(inner.Rank())}
	return g
}

func (p *Parser) nth(token string) Modifier {
	for i, f := range nthForms {
		arg, ok := strings.CutPrefix(token, f.name)
		if !ok {
			continue
		}
		if inner, ok := bracketed(arg); ok {
			arg = strings.TrimSpace(decodeArbitrary(inner))
		} else if _, err := strconv.Atoi(arg); err != nil {
			return unknown(token)
		}
		if arg == "" {
			return unknown(token)
		}
		return State{
			base:   base{raw: token, rank: RankState, offset: nthOffset + len(nthForms) - 1 - i},
			Name:   f.selector,
			Arg:    arg,
			Pseudo: ":" + f.selector + "(" + arg + ")",
		}
	}
	return unknown(token)
}

// bracketed returns the content of s when s is a single "[...]" group.
func bracketed(s string) (string, bool) {
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return "", false
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 && i != len(s)-1 {
				return "", false
			}
		}
	}
	return s[1 : len(s)-1], depth == 0
}

// splitScope separates a trailing "/name" that is not inside brackets.
func splitScope(s string) (string, string) {
	depth := 0
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case ']', ')':
			depth++
		case '[', '(':
			depth--
		case '/':
			if depth == 0 {
				return s[:i], s[i+1:]
			}
		}
	}
	return s, ""
}

// decodeArbitrary turns unescaped underscores into spaces and drops the
// escape from "\_".
func decodeArbitrary(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s) && s[i+1] == '_':
			sb.WriteByte('_')
			i++
		case s[i] == '_':
			sb.WriteByte(' ')
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

func balanced(s string) bool {
	var stack []byte
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '[':
			stack = append(stack, ']')
		case '(':
			stack = append(stack, ')')
		case ']', ')':
			if len(stack) == 0 || stack[len(stack)-1] != s[i] {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}
	return len(stack) == 0
}

func sizeOffset(length string, isMax bool) int {
	off := 0
	if px, ok := lengthPx(length); ok {
		off = min(int(px/100), 49)
	}
	if isMax {
		off += 50
	}
	return off
}

func lengthPx(length string) (float64, bool) {
	sm := lengthRe.FindStringSubmatch(length)
	if sm == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(sm[1], 64)
	if err != nil {
		return 0, false
	}
	switch sm[2] {
	case "rem", "em":
		v *= 16
	}
	return v, true
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
