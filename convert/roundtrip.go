package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/maruel/natural"
	"github.com/sergi/go-diff/diffmatchpatch"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"twc/classes"
	"twc/convert/design"
	"twc/convert/reverse"
	"twc/state"
)

// RoundTrip compares the classes of a list with the classes exported back
// from its design style. Both sides are in natural order, one class per
// line in Diffs.
type RoundTrip struct {
	Input  []string
	Output []string
	Diffs  []diffmatchpatch.Diff
}

// Equal reports whether the export reproduced the input.
func (r RoundTrip) Equal() bool {
	return slices.Equal(r.Input, r.Output)
}

// WriteTo renders the class level diff: unchanged classes are indented,
// lost ones start with "-" and added ones with "+".
func (r RoundTrip) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	for _, d := range r.Diffs {
		var mark string
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			mark = "  "
		case diffmatchpatch.DiffDelete:
			mark = "- "
		case diffmatchpatch.DiffInsert:
			mark = "+ "
		}
		for line := range strings.SplitSeq(strings.TrimSuffix(d.Text, "\n"), "\n") {
			sb.WriteString(mark)
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

// Roundtrip converts a class list to a design style, exports the style and
// shows what changed on the way.
func Roundtrip(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("roundtrip")

	input, err := readInput(cmd)
	if err != nil {
		return err
	}

	out, err := createOutput(cmd.Root().Writer, cmd.String("output"), cmd.Bool("overwrite"), env.Rpt, log)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(out))

	rt := roundTrip(env.Compiler, reverse.NewExporter(env.Theme, log), input, env.DesignContext(), log)
	if _, err := fmt.Fprintf(out, "input:  %s\noutput: %s\n", strings.Join(rt.Input, " "), strings.Join(rt.Output, " ")); err != nil {
		return err
	}
	if rt.Equal() {
		log.Info("Class list survived the round trip", zap.Int("classes", len(rt.Input)))
		return nil
	}
	if _, err := rt.WriteTo(out); err != nil {
		return err
	}
	if cmd.Bool("strict") {
		return errors.New("class list changed in the round trip")
	}
	return nil
}

// roundTrip uses the valid unconditioned classes of input. Conditioned
// classes have no place in a single design style.
func roundTrip(compiler *classes.Compiler, exporter *reverse.Exporter, input string, dctx design.Context, log *zap.Logger) RoundTrip {
	list := compiler.Compile(input)
	selected := classes.Select(list)
	if skipped := len(list) - len(selected); skipped > 0 {
		log.Info("Classes skipped, either conditioned or unknown", zap.Int("count", skipped))
	}

	var rt RoundTrip
	for _, c := range selected {
		rt.Input = append(rt.Input, c.Raw)
	}
	res := design.NewConverter(log).Convert(classes.Styles(selected), dctx)
	rt.Output = exporter.Classes(res.Style)

	for _, side := range []*[]string{&rt.Input, &rt.Output} {
		slices.SortFunc(*side, func(a, b string) int {
			switch {
			case natural.Less(a, b):
				return -1
			case natural.Less(b, a):
				return 1
			}
			return 0
		})
		*side = slices.Compact(*side)
	}

	dmp := diffmatchpatch.New()
	a, b, table := dmp.DiffLinesToChars(lines(rt.Input), lines(rt.Output))
	rt.Diffs = dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), table)
	return rt
}

func lines(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return strings.Join(list, "\n") + "\n"
}
