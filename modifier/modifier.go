// Package modifier classifies the conditions preceding a utility ("md",
// "hover", "data-[state=open]", "[@media(print)]", ...) and turns chains of
// them into CSS selectors and nested at-rules.
//
// # Priority
//
// Every modifier has an integer priority: Rank*100 + offset. Rank is the
// category and is the only thing that decides the order between categories,
// the position of a modifier in the class never does. Ranks, lowest first:
//
//	selector ranks   none, group, peer, direction, attribute, arbitrary-selector,
//	                 logical, state, pseudo-element
//	at-rule ranks    breakpoint, container, arbitrary-at-rule, supports,
//	                 media-feature, motion, dark
//
// Lower priorities are applied first: at-rules nest outermost first, selector
// parts are appended left to right. Pseudo-elements rank last among selectors
// because nothing may follow them. Offsets order modifiers inside a category:
//
//   - breakpoint and container: "min" forms use the length in hundreds of
//     pixels (0-49), "max" forms add 50 so that a max query outranks a min one;
//   - arbitrary selector: grows with pseudo-class colons, attribute brackets
//     and combinators;
//   - state: position in the known state list (hover < focus < active);
//   - group and peer: the rank of the wrapped modifier, so a wrapped state
//     always ends up below the same state used directly.
//
// Ties are broken by the modifier text so the result never depends on input
// order.
package modifier

// Kind identifies the concrete type of a Modifier.
// ENUM(unknown, state, pseudo-element, breakpoint, container, arbitrary-selector, at-rule, attribute, logical, group, motion, direction, dark, media-feature)
type Kind int

// Rank is the category part of a modifier priority.
// ENUM(none, group, peer, direction, attribute, arbitrary-selector, logical, state, pseudo-element, breakpoint, container, arbitrary-at-rule, supports, media-feature, motion, dark)
type Rank int

// IsAtRule reports whether modifiers of this rank wrap the rule in an at-rule
// rather than changing the selector. Dark is an at-rule unless the class
// strategy is in use.
func (r Rank) IsAtRule() bool {
	return r >= RankBreakpoint
}

// Modifier is one parsed modifier. The set of implementations is closed, use
// a type switch over the exported types of this package.
type Modifier interface {
	Kind() Kind
	Rank() Rank
	Priority() int
	// Raw returns the modifier text as written.
	Raw() string

	isModifier()
}

type base struct {
	raw    string
	rank   Rank
	offset int
}

func (b base) Rank() Rank    { return b.rank }
func (b base) Priority() int { return int(b.rank)*100 + b.offset }
func (b base) Raw() string   { return b.raw }
func (base) isModifier()     {}

// Unknown is returned for anything that could not be classified.
type Unknown struct{ base }

// State is a pseudo-class condition. Name is the modifier name ("hover") or
// the pseudo-class of functional forms ("nth-last-of-type") with Arg holding
// the argument. Pseudo is what gets appended to the selector.
type State struct {
	base
	Name   string
	Arg    string
	Pseudo string
}

type PseudoElement struct {
	base
	Name   string
	Pseudo string
}

// Breakpoint is a viewport width query. Length is either a named size
// resolved through the scale or an arbitrary length taken from brackets.
type Breakpoint struct {
	base
	Name   string // empty for arbitrary lengths
	Max    bool
	Length string
}

// Container is a container width query, optionally bound to a named
// container.
type Container struct {
	base
	Name   string
	Scope  string
	Max    bool
	Length string
}

// ArbitrarySelector holds a selector template where "&" stands for the
// element, underscores already turned into spaces.
type ArbitrarySelector struct {
	base
	Selector string
}

// AtRule is an explicit at-rule: "@media", "@supports", "@container" or
// "@starting-style". Scope names the container for "@container/name(...)".
type AtRule struct {
	base
	Keyword string
	Scope   string
	Query   string
}

// Attribute conditions on a data-* or aria-* attribute. An empty Value means
// presence only (data) or "true" (aria boolean flags).
type Attribute struct {
	base
	Namespace string
	Name      string
	Value     string
	Arbitrary bool
}

// Logical is "has-*" or "not-*". Either Inner or Selector is set.
type Logical struct {
	base
	Op       string
	Inner    Modifier
	Selector string
}

// Group is "group-*" or "peer-*": the condition applies to a marked ancestor
// or preceding sibling. Either Inner or Selector is set.
type Group struct {
	base
	Peer     bool
	Name     string
	Inner    Modifier
	Selector string
}

type Motion struct {
	base
	Reduce bool
}

type Direction struct {
	base
	RTL bool
}

// Dark selects dark color scheme, via media query or an ancestor class.
type Dark struct {
	base
	Class bool
}

// MediaFeature covers the remaining named media conditions: print,
// orientation, contrast, forced colors and pointer capabilities.
type MediaFeature struct {
	base
	Name  string
	Query string
}

func (Unknown) Kind() Kind           { return KindUnknown }
func (State) Kind() Kind             { return KindState }
func (PseudoElement) Kind() Kind     { return KindPseudoElement }
func (Breakpoint) Kind() Kind        { return KindBreakpoint }
func (Container) Kind() Kind         { return KindContainer }
func (ArbitrarySelector) Kind() Kind { return KindArbitrarySelector }
func (AtRule) Kind() Kind            { return KindAtRule }
func (Attribute) Kind() Kind         { return KindAttribute }
func (Logical) Kind() Kind           { return KindLogical }
func (Group) Kind() Kind             { return KindGroup }
func (Motion) Kind() Kind            { return KindMotion }
func (Direction) Kind() Kind         { return KindDirection }
func (Dark) Kind() Kind              { return KindDark }
func (MediaFeature) Kind() Kind      { return KindMediaFeature }

// IsUnknown is a shortcut for checking the parse result.
func IsUnknown(m Modifier) bool {
	_, ok := m.(Unknown)
	return m == nil || ok
}
