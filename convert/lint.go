package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"twc/common"
	"twc/scan"
	"twc/state"
)

// Lint checks the class lists of source files, optionally watching them.
func Lint(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("lint")

	roots := cmd.Args().Slice()
	if len(roots) == 0 {
		roots = []string{"."}
	}

	linter, err := scan.NewLinter(env.Cfg.Scan, env.Compiler, env.Rpt, env.Log)
	if err != nil {
		return fmt.Errorf("unable to prepare linter: %w", err)
	}

	out := cmd.Root().Writer
	var format *common.OutputFormat
	if name := cmd.String("to"); len(name) > 0 {
		f := outputFormat(name, env.Cfg.Convert.Format, log)
		format = &f
	}

	log.Info("Processing starting", zap.Strings("roots", roots))
	findings, err := linter.Lint(ctx, roots...)
	if werr := writeFindings(out, format, findings); werr != nil {
		return werr
	}

	if !cmd.Bool("watch") {
		if err != nil {
			return err
		}
		if len(findings) > 0 {
			return fmt.Errorf("found %d problem(s)", len(findings))
		}
		log.Info("No problems found")
		return nil
	}

	if err != nil {
		log.Warn("Initial pass incomplete", zap.Error(err))
	}
	return linter.Watch(ctx, roots, env.Cfg.Scan.Debounce, func(file string, findings []scan.Finding) {
		if len(findings) == 0 {
			log.Info("No problems", zap.String("file", file))
			return
		}
		if err := writeFindings(out, format, findings); err != nil {
			log.Warn("Unable to write findings", zap.Error(err))
		}
	})
}

// writeFindings prints one finding per line with file names relative to
// the working directory, or encodes them when format is set.
func writeFindings(w io.Writer, format *common.OutputFormat, findings []scan.Finding) error {
	wd, _ := os.Getwd()
	for i, f := range findings {
		if rel, err := filepath.Rel(wd, f.File); err == nil && len(wd) > 0 && filepath.IsLocal(rel) {
			findings[i].File = rel
		}
	}
	if format != nil {
		if findings == nil {
			findings = []scan.Finding{}
		}
		return encode(w, *format, findings)
	}
	for _, f := range findings {
		if _, err := fmt.Fprintln(w, f.String()); err != nil {
			return err
		}
	}
	return nil
}
