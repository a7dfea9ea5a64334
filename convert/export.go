package convert

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"twc/config"
	"twc/convert/design"
	"twc/convert/reverse"
	"twc/state"
)

// Export writes the class list reproducing a design node style read from a
// JSON or YAML document.
func Export(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("export")

	src := cmd.Args().Get(0)
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	var data []byte
	if len(src) == 0 || src == "-" {
		data, err = io.ReadAll(cmd.Root().Reader)
	} else {
		data, err = os.ReadFile(src)
		env.Rpt.Store("source/"+config.CleanFileName(src), src)
	}
	if err != nil {
		return fmt.Errorf("unable to read design style: %w", err)
	}

	st, err := decodeStyle(data)
	if err != nil {
		return err
	}

	out, err := createOutput(cmd.Root().Writer, cmd.String("output"), cmd.Bool("overwrite"), env.Rpt, log)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(out))

	_, err = fmt.Fprintln(out, reverse.NewExporter(env.Theme, log).Export(st))
	return err
}

// decodeStyle reads a design style. Documents starting with '{' are JSON,
// anything else is YAML. Unknown fields are errors in both.
func decodeStyle(data []byte) (design.Style, error) {
	var st design.Style

	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&st); err != nil {
			return st, fmt.Errorf("unable to decode json design style: %w", err)
		}
		return st, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&st); err != nil && !errors.Is(err, io.EOF) {
		return st, fmt.Errorf("unable to decode yaml design style: %w", err)
	}
	return st, nil
}
