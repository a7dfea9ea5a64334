package modifier

import (
	"cmp"
	"slices"
	"strings"
)

// template returns the selector template of a selector modifier, "&" marks
// where the selector built so far goes. ok is false for at-rule modifiers and
// for Unknown.
func template(m Modifier) (string, bool) {
	switch m := m.(type) {
	case State:
		return "&" + m.Pseudo, true
	case PseudoElement:
		return "&" + m.Pseudo, true
	case ArbitrarySelector:
		return m.Selector, true
	case Attribute:
		return "&" + attributeSelector(m), true
	case Direction:
		dir := "ltr"
		if m.RTL {
			dir = "rtl"
		}
		return `&:where(:dir(` + dir + `), [dir="` + dir + `"], [dir="` + dir + `"] *)`, true
	case Dark:
		if m.Class {
			return ".dark &", true
		}
	case Logical:
		inner := m.Selector
		if m.Inner != nil {
			t, ok := template(m.Inner)
			if !ok {
				return "", false
			}
			inner = strings.TrimPrefix(t, "&")
			if m.Op == "has" {
				inner = "*" + inner
			}
		}
		return "&:" + m.Op + "(" + inner + ")", true
	case Group:
		// the condition on the marked element is wrapped into an element
		// level :is() so that several of them compose on the same element
		marker := ".group"
		if m.Peer {
			marker = ".peer"
		}
		if m.Name != "" {
			marker += `\/` + m.Name
		}
		marker = ":where(" + marker + ")"
		var cond string
		switch {
		case m.Inner != nil:
			t, ok := template(m.Inner)
			if !ok {
				return "", false
			}
			cond = strings.ReplaceAll(t, "&", marker)
		case strings.Contains(m.Selector, "&"):
			cond = strings.ReplaceAll(m.Selector, "&", marker)
		default:
			cond = marker + m.Selector
		}
		if m.Peer {
			return "&:is(" + cond + " ~ *)", true
		}
		return "&:is(" + cond + " *)", true
	}
	return "", false
}

func attributeSelector(a Attribute) string {
	name := a.Namespace + "-" + a.Name
	switch {
	case a.Value != "":
		return `[` + name + `="` + a.Value + `"]`
	case a.Namespace == "aria" && !a.Arbitrary:
		return `[` + name + `="true"]`
	default:
		return `[` + name + `]`
	}
}

// Selector applies a selector modifier to base. At-rule modifiers and Unknown
// return base unchanged.
func Selector(base string, m Modifier) string {
	t, ok := template(m)
	if !ok {
		return base
	}
	return strings.ReplaceAll(t, "&", base)
}

// Query returns the at-rule prelude of an at-rule modifier ("@media (width >=
// 768px)"), or an empty string for selector modifiers and Unknown.
func Query(m Modifier) string {
	switch m := m.(type) {
	case Breakpoint:
		return "@media " + widthCondition(m.Length, m.Max)
	case Container:
		q := "@container "
		if m.Scope != "" {
			q += m.Scope + " "
		}
		return q + widthCondition(m.Length, m.Max)
	case AtRule:
		if m.Query == "" {
			return "@" + m.Keyword
		}
		q := "@" + m.Keyword + " "
		if m.Scope != "" {
			q += m.Scope + " "
		}
		return q + m.Query
	case Motion:
		if m.Reduce {
			return "@media (prefers-reduced-motion: reduce)"
		}
		return "@media (prefers-reduced-motion: no-preference)"
	case Dark:
		if !m.Class {
			return "@media (prefers-color-scheme: dark)"
		}
	case MediaFeature:
		return "@media " + m.Query
	}
	return ""
}

func widthCondition(length string, isMax bool) string {
	if isMax {
		return "(width < " + length + ")"
	}
	return "(width >= " + length + ")"
}

// Sort returns the modifiers ordered by ascending priority, ties broken by
// the raw text. The input is not modified.
func Sort(chain []Modifier) []Modifier {
	out := slices.Clone(chain)
	slices.SortStableFunc(out, func(a, b Modifier) int {
		if c := cmp.Compare(a.Priority(), b.Priority()); c != 0 {
			return c
		}
		return cmp.Compare(a.Raw(), b.Raw())
	})
	return out
}

// Rule is the result of applying a modifier chain to a selector.
type Rule struct {
	Selector string
	// AtRules are the wrapping at-rules, outermost first.
	AtRules []string
}

// Compose applies the chain to base. At-rules are never merged: each one
// becomes its own nesting level. Unknown modifiers are skipped.
func Compose(base string, chain []Modifier) Rule {
	r := Rule{Selector: base}
	for _, m := range Sort(chain) {
		if q := Query(m); q != "" {
			r.AtRules = append(r.AtRules, q)
			continue
		}
		r.Selector = Selector(r.Selector, m)
	}
	return r
}

// Wrap renders body (one declaration per line) inside the rule.
func (r Rule) Wrap(body string) string {
	var sb strings.Builder
	for i, q := range r.AtRules {
		writeIndented(&sb, i, q+" {")
	}
	depth := len(r.AtRules)
	writeIndented(&sb, depth, r.Selector+" {")
	for line := range strings.SplitSeq(strings.TrimRight(body, "\n"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			writeIndented(&sb, depth+1, line)
		}
	}
	for i := depth; i >= 0; i-- {
		writeIndented(&sb, i, "}")
	}
	return sb.String()
}

func writeIndented(sb *strings.Builder, depth int, line string) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(line)
	sb.WriteByte('\n')
}
