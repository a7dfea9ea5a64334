// Package classes runs the whole parsing pipeline over a class list: every
// class is tokenized, its modifiers classified and its utility resolved.
package classes

import (
	"cmp"
	"slices"

	"go.uber.org/zap"

	"twc/common"
	"twc/lexer"
	"twc/modifier"
	"twc/theme"
	"twc/utility"
)

// Class is one parsed class of a list.
type Class struct {
	Raw       string
	Modifiers []modifier.Modifier
	Style     utility.Style
	// Known is false when the utility could not be resolved.
	Known bool
}

// UnknownModifiers returns the raw text of modifiers that were not
// recognized.
func (c Class) UnknownModifiers() []string {
	var out []string
	for _, m := range c.Modifiers {
		if modifier.IsUnknown(m) {
			out = append(out, m.Raw())
		}
	}
	return out
}

// Valid reports whether both the utility and every modifier were recognized.
func (c Class) Valid() bool {
	return c.Known && len(c.UnknownModifiers()) == 0
}

// Compiler holds the parsers for one theme. It is safe for concurrent use.
type Compiler struct {
	log       *zap.Logger
	modifiers *modifier.Parser
	utilities *utility.Parser
}

// NewCompiler creates a compiler resolving tokens against th, nil selects the
// default theme.
func NewCompiler(th *theme.Theme, dark common.DarkMode, log *zap.Logger) *Compiler {
	if log == nil {
		log = zap.NewNop()
	}
	if th == nil {
		th = theme.Default()
	}
	return &Compiler{
		log:       log.Named("classes"),
		modifiers: modifier.NewParser(th, dark, log),
		utilities: utility.NewParser(th, log),
	}
}

// Compile parses a whitespace separated class list, in order.
func (c *Compiler) Compile(input string) []Class {
	raws := lexer.SplitClasses(input)
	out := make([]Class, 0, len(raws))
	for _, raw := range raws {
		out = append(out, c.Class(raw))
	}
	c.log.Debug("Compiled class list", zap.Int("classes", len(out)))
	return out
}

// Class parses a single class.
func (c *Compiler) Class(raw string) Class {
	mods, util, ok := lexer.Split(raw)
	cl := Class{Raw: raw, Modifiers: c.modifiers.ParseChain(mods)}
	if !ok {
		cl.Style = utility.Style{Raw: util}
		return cl
	}
	cl.Style, cl.Known = c.utilities.Parse(util)
	return cl
}

// Styles returns the instructions of the known classes, in order.
func Styles(list []Class) []utility.Style {
	out := make([]utility.Style, 0, len(list))
	for _, c := range list {
		if c.Known {
			out = append(out, c.Style)
		}
	}
	return out
}

// Select keeps the classes that apply when the given modifiers are active
// ("dark", "md", "hover"). A class applies when every one of its modifiers
// is active, so unconditioned classes are always kept. The result is in
// Sort order.
func Select(list []Class, active ...string) []Class {
	var out []Class
	for _, c := range list {
		if !c.Valid() {
			continue
		}
		if !slices.ContainsFunc(c.Modifiers, func(m modifier.Modifier) bool {
			return !slices.Contains(active, m.Raw())
		}) {
			out = append(out, c)
		}
	}
	return Sort(out)
}

// Sort orders classes for last-writer-wins consumers: unconditioned classes
// first, then by growing number of modifiers and highest modifier priority.
// Classes that tie keep their list order. The input is not modified.
func Sort(list []Class) []Class {
	out := slices.Clone(list)
	slices.SortStableFunc(out, func(a, b Class) int {
		if c := cmp.Compare(len(a.Modifiers), len(b.Modifiers)); c != 0 {
			return c
		}
		return cmp.Compare(topPriority(a), topPriority(b))
	})
	return out
}

func topPriority(c Class) int {
	top := 0
	for _, m := range c.Modifiers {
		top = max(top, m.Priority())
	}
	return top
}
