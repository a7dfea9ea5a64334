package convert

import (
	"context"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"

	"twc/state"
	"twc/theme"
)

// Tokens lists the design tokens of the active theme.
func Tokens(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("tokens")

	groups := cmd.Args().Slice()
	for _, g := range groups {
		if !slices.Contains(theme.Groups, g) {
			return fmt.Errorf("unknown token group %q", g)
		}
	}

	out, err := createOutput(cmd.Root().Writer, cmd.String("output"), cmd.Bool("overwrite"), env.Rpt, log)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(out))

	tokens := env.Theme.Tokens(groups...)
	if name := cmd.String("to"); len(name) > 0 {
		return encode(out, outputFormat(name, env.Cfg.Convert.Format, log), tokens)
	}
	return writeTokens(out, tokens)
}

func writeTokens(w io.Writer, tokens []theme.Token) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, t := range tokens {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Group, t.Name, t.Value)
	}
	return tw.Flush()
}
