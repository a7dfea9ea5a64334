package convert

import (
	"context"
	"fmt"
	"io"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"twc/classes"
	"twc/convert/cssout"
	"twc/state"
)

// CSS writes the stylesheet of a class list.
func CSS(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("css")

	input, err := readInput(cmd)
	if err != nil {
		return err
	}

	out, err := createOutput(cmd.Root().Writer, cmd.String("output"), cmd.Bool("overwrite"), env.Rpt, log)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(out))

	return writeCSS(out, env.Compiler, input, log)
}

func writeCSS(w io.Writer, compiler *classes.Compiler, input string, log *zap.Logger) error {
	sheet := cssout.NewEmitter(log).Emit(compiler.Compile(input))
	for _, warning := range sheet.Warnings {
		log.Warn("Class skipped", zap.String("reason", warning))
	}
	if _, err := sheet.WriteTo(w); err != nil {
		return fmt.Errorf("unable to write stylesheet: %w", err)
	}
	return nil
}
