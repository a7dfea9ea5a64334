package modifier

import (
	"testing"

	"twc/common"
)

func newTestParser() *Parser {
	return NewParser(nil, common.DarkModeMedia, nil)
}

func TestParse_Unknown(t *testing.T) {
	p := newTestParser()
	for _, in := range []string{
		"", "!", "hovered", "[foo]", "[&&:hover]", "[@media]", "@foo", "@",
		"data-", "aria-bogus", "group-", "group-md", "has-md", "min-foo", "max-[wide]",
		"nth-x", "nth-", "[&:hover", "a]", "supports-[]", "peer-[]",
	} {
		t.Run(in, func(t *testing.T) {
			m := p.Parse(in)
			if !IsUnknown(m) {
				t.Fatalf("expected Unknown for %q, got %T", in, m)
			}
			if m.Raw() != in {
				t.Errorf("expected raw %q, got %q", in, m.Raw())
			}
			if m.Kind() != KindUnknown || m.Rank() != RankNone {
				t.Errorf("unexpected kind %s / rank %s", m.Kind(), m.Rank())
			}
		})
	}
}

func TestParse_Kinds(t *testing.T) {
	p := newTestParser()
	tests := []struct {
		in   string
		kind Kind
		rank Rank
	}{
		{"hover", KindState, RankState},
		{"first", KindState, RankState},
		{"nth-3", KindState, RankState},
		{"before", KindPseudoElement, RankPseudoElement},
		{"file", KindPseudoElement, RankPseudoElement},
		{"md", KindBreakpoint, RankBreakpoint},
		{"max-2xl", KindBreakpoint, RankBreakpoint},
		{"min-[900px]", KindBreakpoint, RankBreakpoint},
		{"@md", KindContainer, RankContainer},
		{"@max-[30rem]/sidebar", KindContainer, RankContainer},
		{"[&:nth-child(3)]", KindArbitrarySelector, RankArbitrarySelector},
		{"[&_p]", KindArbitrarySelector, RankArbitrarySelector},
		{"[.dark_&]", KindArbitrarySelector, RankArbitrarySelector},
		{"[@media(print)]", KindAtRule, RankArbitraryAtRule},
		{"[@supports(display:grid)]", KindAtRule, RankSupports},
		{"[@container/sidebar(min-width:400px)]", KindAtRule, RankContainer},
		{"supports-[display:grid]", KindAtRule, RankSupports},
		{"starting", KindAtRule, RankArbitraryAtRule},
		{"data-[state=open]", KindAttribute, RankAttribute},
		{"aria-checked", KindAttribute, RankAttribute},
		{"has-checked", KindLogical, RankLogical},
		{"not-[.x]", KindLogical, RankLogical},
		{"group-hover", KindGroup, RankGroup},
		{"peer-invalid/email", KindGroup, RankPeer},
		{"motion-reduce", KindMotion, RankMotion},
		{"rtl", KindDirection, RankDirection},
		{"dark", KindDark, RankDark},
		{"print", KindMediaFeature, RankMediaFeature},
		{"pointer-coarse", KindMediaFeature, RankMediaFeature},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m := p.Parse(tt.in)
			if m.Kind() != tt.kind {
				t.Errorf("expected kind %s, got %s", tt.kind, m.Kind())
			}
			if m.Rank() != tt.rank {
				t.Errorf("expected rank %s, got %s", tt.rank, m.Rank())
			}
			if m.Raw() != tt.in {
				t.Errorf("expected raw %q, got %q", tt.in, m.Raw())
			}
		})
	}
}

func TestParse_Breakpoints(t *testing.T) {
	p := newTestParser()

	md := p.Parse("md").(Breakpoint)
	if md.Name != "md" || md.Length != "768px" || md.Max {
		t.Errorf("unexpected md breakpoint: %+v", md)
	}
	maxMd := p.Parse("max-md").(Breakpoint)
	if !maxMd.Max || maxMd.Length != "768px" {
		t.Errorf("unexpected max-md breakpoint: %+v", maxMd)
	}
	if maxMd.Priority() <= md.Priority() {
		t.Errorf("expected max-md (%d) to outrank md (%d)", maxMd.Priority(), md.Priority())
	}

	arb := p.Parse("min-[900px]").(Breakpoint)
	if arb.Name != "" || arb.Length != "900px" {
		t.Errorf("unexpected arbitrary breakpoint: %+v", arb)
	}
	if lg := p.Parse("lg"); lg.Priority() <= md.Priority() {
		t.Errorf("expected lg to outrank md")
	}
}

type scale struct {
	breakpoints map[string]float64
	containers  map[string]float64
}

func (s scale) BreakpointValue(name string) (float64, bool) {
	v, ok := s.breakpoints[name]
	return v, ok
}

func (s scale) ContainerValue(name string) (float64, bool) {
	v, ok := s.containers[name]
	return v, ok
}

func TestParse_InjectedScale(t *testing.T) {
	p := NewParser(scale{
		breakpoints: map[string]float64{"tablet": 600},
		containers:  map[string]float64{"card": 320},
	}, common.DarkModeMedia, nil)

	bp, ok := p.Parse("tablet").(Breakpoint)
	if !ok || bp.Length != "600px" {
		t.Fatalf("expected tablet breakpoint of 600px, got %#v", p.Parse("tablet"))
	}
	if !IsUnknown(p.Parse("md")) {
		t.Error("md must not resolve with a scale that lacks it")
	}
	c, ok := p.Parse("@card").(Container)
	if !ok || c.Length != "320px" {
		t.Errorf("expected card container of 320px, got %#v", p.Parse("@card"))
	}
	// bracketed lengths bypass the scale
	if _, ok := p.Parse("max-[1000px]").(Breakpoint); !ok {
		t.Error("arbitrary breakpoint must not need the scale")
	}
}

func TestParse_Containers(t *testing.T) {
	p := newTestParser()
	c := p.Parse("@[500px]/sidebar").(Container)
	if c.Scope != "sidebar" || c.Length != "500px" || c.Max {
		t.Errorf("unexpected container: %+v", c)
	}
	c = p.Parse("@max-md").(Container)
	if !c.Max || c.Name != "md" || c.Length != "448px" {
		t.Errorf("unexpected container: %+v", c)
	}
}

func TestParse_Arbitrary(t *testing.T) {
	p := newTestParser()
	tests := []struct {
		in       string
		selector string
	}{
		{"[&:nth-child(3)]", "&:nth-child(3)"},
		{"[&::before]", "&::before"},
		{"[&:hover:focus]", "&:hover:focus"},
		{"[&>*]", "&>*"},
		{"[&+p]", "&+p"},
		{"[&~.x]", "&~.x"},
		{"[&_p]", "& p"},
		{"[&_svg_path]", "& svg path"},
		{"[&[open]]", "&[open]"},
		{"[&.active]", "&.active"},
		{"[.dark_&]", ".dark &"},
		{`[&_.a\_b]`, "& .a_b"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m, ok := p.Parse(tt.in).(ArbitrarySelector)
			if !ok {
				t.Fatalf("expected arbitrary selector, got %T", p.Parse(tt.in))
			}
			if m.Selector != tt.selector {
				t.Errorf("expected %q, got %q", tt.selector, m.Selector)
			}
		})
	}

	plain := p.Parse("[&:hover]")
	richer := p.Parse("[&>p:hover]")
	if richer.Priority() <= plain.Priority() {
		t.Errorf("expected attribute and combinator to raise priority: %d <= %d", richer.Priority(), plain.Priority())
	}
}

func TestParse_ArbitraryAtRules(t *testing.T) {
	p := newTestParser()

	m := p.Parse("[@media(min-width:900px)_and_(max-width:1200px)]").(AtRule)
	if m.Keyword != "media" || m.Query != "(min-width:900px) and (max-width:1200px)" {
		t.Errorf("unexpected at-rule: %+v", m)
	}

	m = p.Parse("[@container/sidebar(min-width:400px)]").(AtRule)
	if m.Keyword != "container" || m.Scope != "sidebar" || m.Query != "(min-width:400px)" {
		t.Errorf("unexpected at-rule: %+v", m)
	}

	if hover := p.Parse("hover"); m.Priority() <= hover.Priority() {
		t.Error("at-rules must outrank selector modifiers")
	}
}

func TestParse_Supports(t *testing.T) {
	p := newTestParser()
	tests := []struct {
		in    string
		query string
	}{
		{"supports-[display:grid]", "(display: grid)"},
		{"supports-backdrop-filter", "(backdrop-filter: var(--tw))"},
		{"supports-[(display:grid)_and_(gap:1rem)]", "(display:grid) and (gap:1rem)"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m := p.Parse(tt.in).(AtRule)
			if m.Query != tt.query {
				t.Errorf("expected %q, got %q", tt.query, m.Query)
			}
		})
	}
}

func TestParse_Attributes(t *testing.T) {
	p := newTestParser()
	tests := []struct {
		in       string
		expected Attribute
	}{
		{"data-[state=open]", Attribute{Namespace: "data", Name: "state", Value: "open", Arbitrary: true}},
		{"data-[size='large']", Attribute{Namespace: "data", Name: "size", Value: "large", Arbitrary: true}},
		{"data-[loading]", Attribute{Namespace: "data", Name: "loading", Arbitrary: true}},
		{"data-active", Attribute{Namespace: "data", Name: "active"}},
		{"aria-checked", Attribute{Namespace: "aria", Name: "checked"}},
		{"aria-sort-ascending", Attribute{Namespace: "aria", Name: "sort", Value: "ascending"}},
		{"aria-[valuenow=5]", Attribute{Namespace: "aria", Name: "valuenow", Value: "5", Arbitrary: true}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			a, ok := p.Parse(tt.in).(Attribute)
			if !ok {
				t.Fatalf("expected attribute, got %T", p.Parse(tt.in))
			}
			a.base = base{}
			if a != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, a)
			}
		})
	}
}

func TestParse_Compound(t *testing.T) {
	p := newTestParser()

	g := p.Parse("group-hover/sidebar").(Group)
	if g.Peer || g.Name != "sidebar" || g.Inner == nil || g.Inner.Raw() != "hover" {
		t.Errorf("unexpected group: %+v", g)
	}
	if hover := p.Parse("hover"); g.Priority() >= hover.Priority() {
		t.Errorf("group-hover (%d) must rank below hover (%d)", g.Priority(), hover.Priority())
	}

	peer := p.Parse("peer-[.is-dirty]").(Group)
	if !peer.Peer || peer.Selector != ".is-dirty" {
		t.Errorf("unexpected peer: %+v", peer)
	}

	l := p.Parse("not-first").(Logical)
	if l.Op != "not" || l.Inner == nil || l.Inner.Kind() != KindState {
		t.Errorf("unexpected logical: %+v", l)
	}

	nested := p.Parse("group-has-checked").(Group)
	if nested.Inner.Kind() != KindLogical {
		t.Errorf("expected logical inside group, got %s", nested.Inner.Kind())
	}
}

func TestParse_Nth(t *testing.T) {
	p := newTestParser()
	tests := []struct {
		in     string
		pseudo string
	}{
		{"nth-3", ":nth-child(3)"},
		{"nth-[2n+1]", ":nth-child(2n+1)"},
		{"nth-[2n_+_1]", ":nth-child(2n + 1)"},
		{"nth-last-2", ":nth-last-child(2)"},
		{"nth-of-type-4", ":nth-of-type(4)"},
		{"nth-last-of-type-[odd]", ":nth-last-of-type(odd)"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			s, ok := p.Parse(tt.in).(State)
			if !ok {
				t.Fatalf("expected state, got %T", p.Parse(tt.in))
			}
			if s.Pseudo != tt.pseudo {
				t.Errorf("expected %q, got %q", tt.pseudo, s.Pseudo)
			}
		})
	}
}

func TestParse_DarkStrategy(t *testing.T) {
	if d := newTestParser().Parse("dark").(Dark); d.Class {
		t.Error("media strategy must not produce class dark mode")
	}
	if d := NewParser(nil, common.DarkModeClass, nil).Parse("dark").(Dark); !d.Class {
		t.Error("class strategy must produce class dark mode")
	}
}

func TestParseChain(t *testing.T) {
	chain := newTestParser().ParseChain([]string{"md", "hover", "bogus"})
	if len(chain) != 3 {
		t.Fatalf("expected 3 modifiers, got %d", len(chain))
	}
	if chain[0].Kind() != KindBreakpoint || chain[1].Kind() != KindState || chain[2].Kind() != KindUnknown {
		t.Errorf("unexpected kinds: %s %s %s", chain[0].Kind(), chain[1].Kind(), chain[2].Kind())
	}
}
