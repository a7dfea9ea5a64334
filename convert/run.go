// Package convert implements the program commands: every action reads class
// lists or design styles, runs them through the pipeline and writes the
// result to a file or standard output.
package convert

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"twc/classes"
	"twc/common"
	"twc/convert/design"
	"twc/state"
)

// Run converts a class list to the style of a design node.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	input, err := readInput(cmd)
	if err != nil {
		return err
	}

	format := outputFormat(cmd.String("to"), env.Cfg.Convert.Format, log)

	dctx := env.DesignContext()
	if name := cmd.String("parent-layout"); len(name) > 0 {
		if mode, err := common.ParseLayoutMode(name); err != nil {
			log.Warn("Unknown parent layout requested, ignoring", zap.Error(err))
		} else {
			dctx.ParentLayoutMode = mode
		}
	}

	variants := env.Cfg.Convert.Variants
	if cmd.IsSet("variant") {
		variants = cmd.StringSlice("variant")
	}

	log.Debug("Processing starting",
		zap.Int("length", len(input)),
		zap.Stringer("format", format),
		zap.Stringer("parent", dctx.ParentLayoutMode),
		zap.Strings("variants", variants))
	defer func(start time.Time) {
		log.Debug("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	res := convertClasses(env.Compiler, input, dctx, variants, log)
	for _, w := range res.Warnings {
		log.Warn("Instruction dropped", zap.String("reason", w))
	}

	out, err := createOutput(cmd.Root().Writer, cmd.String("output"), cmd.Bool("overwrite"), env.Rpt, log)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(out))

	return encode(out, format, res.Style)
}

// convertClasses compiles input and converts the classes applying with the
// active variants. Classes under other modifiers do not contribute.
func convertClasses(compiler *classes.Compiler, input string, dctx design.Context, variants []string, log *zap.Logger) design.Result {
	list := compiler.Compile(input)
	for _, c := range list {
		if !c.Valid() {
			log.Warn("Ignoring unknown class", zap.String("class", c.Raw))
		}
	}
	return design.NewConverter(log).Convert(classes.Styles(classes.Select(list, variants...)), dctx)
}

// readInput returns the command arguments joined as one class list. Without
// arguments, or with a single "-", the list is read from standard input.
func readInput(cmd *cli.Command) (string, error) {
	args := cmd.Args().Slice()
	if len(args) > 0 && (len(args) > 1 || args[0] != "-") {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.Root().Reader)
	if err != nil {
		return "", fmt.Errorf("unable to read standard input: %w", err)
	}
	return string(data), nil
}

// outputFormat parses the requested format, falling back to def.
func outputFormat(name string, def common.OutputFormat, log *zap.Logger) common.OutputFormat {
	if len(name) == 0 {
		return def
	}
	format, err := common.ParseOutputFormat(name)
	if err != nil {
		log.Warn("Unknown output format requested, using default", zap.Stringer("format", def), zap.Error(err))
		return def
	}
	return format
}
