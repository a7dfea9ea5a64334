// Package cssout renders compiled classes as a CSS stylesheet, one rule per
// class with its modifiers turned into selectors and nested at-rules.
package cssout

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"

	"twc/classes"
	"twc/modifier"
	"twc/utility"
)

// Rule is the CSS generated for one class.
type Rule struct {
	Class        string
	Selector     string
	AtRules      []string
	Declarations []Declaration
}

// String renders the rule, at-rules nested outermost first.
func (r Rule) String() string {
	lines := make([]string, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		lines = append(lines, d.String())
	}
	return modifier.Rule{Selector: r.Selector, AtRules: r.AtRules}.Wrap(strings.Join(lines, "\n"))
}

// Stylesheet is the emitted CSS.
type Stylesheet struct {
	Rules    []Rule
	Warnings []string
}

// WriteTo writes the stylesheet to w, implementing io.WriterTo. Rules are
// separated by blank lines.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, r := range s.Rules {
		if i > 0 {
			n, err := fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		n, err := io.WriteString(w, r.String())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// Emitter converts classes to CSS rules.
type Emitter struct {
	log *zap.Logger
}

// NewEmitter creates a new CSS emitter.
func NewEmitter(log *zap.Logger) *Emitter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Emitter{log: log.Named("css-emitter")}
}

// Emit renders every valid class once, ordered so that conditioned rules
// come after the rules they override. Invalid classes are reported in
// Warnings.
func (e *Emitter) Emit(list []classes.Class) *Stylesheet {
	sheet := &Stylesheet{}
	seen := make(map[string]bool, len(list))
	var valid []classes.Class
	for _, c := range list {
		if seen[c.Raw] {
			continue
		}
		seen[c.Raw] = true
		if !c.Known {
			sheet.Warnings = append(sheet.Warnings, "unknown utility: "+c.Raw)
			continue
		}
		if unknown := c.UnknownModifiers(); len(unknown) > 0 {
			sheet.Warnings = append(sheet.Warnings, fmt.Sprintf("unknown modifiers %q: %s", unknown, c.Raw))
			continue
		}
		valid = append(valid, c)
	}

	for _, c := range classes.Sort(valid) {
		sheet.Rules = append(sheet.Rules, e.Rule(c))
	}
	e.log.Debug("Emitted stylesheet",
		zap.Int("rules", len(sheet.Rules)),
		zap.Int("warnings", len(sheet.Warnings)))
	return sheet
}

// Rule renders a single class.
func (e *Emitter) Rule(c classes.Class) Rule {
	composed := modifier.Compose("."+EscapeClass(c.Raw), c.Modifiers)
	sel := composed.Selector
	if c.Style.Property == utility.PropSpace {
		sel = ":where(" + sel + " > :not(:last-child))"
	}
	return Rule{
		Class:        c.Raw,
		Selector:     sel,
		AtRules:      composed.AtRules,
		Declarations: Declarations(c.Style),
	}
}

// EscapeClass escapes a class name for use in a class selector.
func EscapeClass(raw string) string {
	if raw != "" && css.IsIdent([]byte(raw)) {
		return raw
	}
	var sb strings.Builder
	for i, r := range raw {
		switch {
		case unicode.IsDigit(r) && (i == 0 || (i == 1 && raw[0] == '-')):
			fmt.Fprintf(&sb, `\%x `, r)
		case r == '-' || r == '_' || r >= 0x80 || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9'):
			sb.WriteRune(r)
		default:
			sb.WriteByte('\\')
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
