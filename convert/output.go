package convert

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"twc/common"
	"twc/config"
)

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// createOutput opens the destination of a command. Empty name or "-" selects
// stdout. An existing file is replaced only when overwrite is set, missing
// directories are created. Files written are added to the report.
func createOutput(stdout io.Writer, dst string, overwrite bool, rpt *config.Report, log *zap.Logger) (io.WriteCloser, error) {
	if len(dst) == 0 || dst == "-" {
		return nopCloser{stdout}, nil
	}

	dst, err := filepath.Abs(dst)
	if err != nil {
		return nil, err
	}

	if fi, err := os.Stat(dst); err == nil {
		if fi.IsDir() {
			return nil, fmt.Errorf("output path is a directory: %s", dst)
		}
		if !overwrite {
			return nil, fmt.Errorf("output file already exists: %s", dst)
		}
		log.Warn("Overwriting existing file", zap.String("file", dst))
	} else if !os.IsNotExist(err) {
		return nil, err
	} else if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return nil, fmt.Errorf("unable to create output directory: %w", err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return nil, fmt.Errorf("unable to create output file: %w", err)
	}
	// stored by name, the archive picks up the content on close
	rpt.Store("result/"+filepath.Base(dst), dst)
	log.Debug("Writing output", zap.String("file", dst))
	return f, nil
}

// encode writes v in the requested format.
func encode(w io.Writer, format common.OutputFormat, v any) error {
	switch format {
	case common.OutputFormatYaml:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("unable to encode yaml: %w", err)
		}
		return enc.Close()
	case common.OutputFormatJson:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		// selectors carry '>' and '&'
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("unable to encode json: %w", err)
		}
		return nil
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
