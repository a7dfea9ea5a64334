package convert

import (
	"context"
	"fmt"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"

	"twc/classes"
	"twc/convert/cssout"
	"twc/state"
	"twc/utility"
)

// ModifierInfo describes one modifier of a class.
type ModifierInfo struct {
	Raw      string `json:"raw" yaml:"raw"`
	Kind     string `json:"kind" yaml:"kind"`
	Rank     string `json:"rank" yaml:"rank"`
	Priority int    `json:"priority" yaml:"priority"`
}

// Explanation is the breakdown of a single class.
type Explanation struct {
	Class     string         `json:"class" yaml:"class"`
	Modifiers []ModifierInfo `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	// Utility is absent when the utility is unknown.
	Utility      *utility.Style `json:"utility,omitempty" yaml:"utility,omitempty"`
	Selector     string         `json:"selector,omitempty" yaml:"selector,omitempty"`
	AtRules      []string       `json:"atRules,omitempty" yaml:"atRules,omitempty"`
	Declarations []string       `json:"declarations,omitempty" yaml:"declarations,omitempty"`
	Problems     []string       `json:"problems,omitempty" yaml:"problems,omitempty"`
}

// Explain shows how every class of a list is understood.
func Explain(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("explain")

	input, err := readInput(cmd)
	if err != nil {
		return err
	}
	format := outputFormat(cmd.String("to"), env.Cfg.Convert.Format, log)

	out, err := createOutput(cmd.Root().Writer, cmd.String("output"), cmd.Bool("overwrite"), env.Rpt, log)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(out))

	emitter := cssout.NewEmitter(log)
	list := env.Compiler.Compile(input)
	result := make([]Explanation, 0, len(list))
	for _, c := range list {
		result = append(result, explain(emitter, c))
	}
	return encode(out, format, result)
}

func explain(emitter *cssout.Emitter, c classes.Class) Explanation {
	ex := Explanation{Class: c.Raw}
	for _, m := range c.Modifiers {
		ex.Modifiers = append(ex.Modifiers, ModifierInfo{
			Raw:      m.Raw(),
			Kind:     m.Kind().String(),
			Rank:     m.Rank().String(),
			Priority: m.Priority(),
		})
	}
	if unknown := c.UnknownModifiers(); len(unknown) > 0 {
		ex.Problems = append(ex.Problems, "unknown modifier "+strings.Join(quoteAll(unknown), ", "))
	}
	if !c.Known {
		if len(c.Style.Raw) == 0 {
			ex.Problems = append(ex.Problems, "missing utility")
		} else {
			ex.Problems = append(ex.Problems, fmt.Sprintf("unknown utility %q", c.Style.Raw))
		}
		return ex
	}

	style := c.Style
	ex.Utility = &style
	if !c.Valid() {
		return ex
	}
	rule := emitter.Rule(c)
	ex.Selector, ex.AtRules = rule.Selector, rule.AtRules
	for _, d := range rule.Declarations {
		ex.Declarations = append(ex.Declarations, d.String())
	}
	return ex
}

func quoteAll(list []string) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = fmt.Sprintf("%q", s)
	}
	return out
}
