package state

import (
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"twc/classes"
	"twc/theme"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start: time.Now(),
	}
}

// Initialize loads the configured token files over the default theme and
// prepares the class compiler for it. Token files end up in the debug report.
func (e *LocalEnv) Initialize() error {
	if e.Cfg == nil {
		return fmt.Errorf("configuration is not loaded")
	}
	log := e.Log
	if log == nil {
		log = zap.NewNop()
	}

	th, err := theme.LoadFiles(e.Cfg.Theme.Files...)
	if err != nil {
		return fmt.Errorf("unable to load theme: %w", err)
	}
	for i, path := range e.Cfg.Theme.Files {
		if err := e.Rpt.StoreCopy(fmt.Sprintf("theme/%d-%s", i, filepath.Base(path)), path); err != nil {
			log.Warn("Unable to store theme file in report", zap.String("file", path), zap.Error(err))
		}
	}
	if len(e.Cfg.Theme.Files) > 0 {
		log.Debug("Theme loaded", zap.Strings("files", e.Cfg.Theme.Files))
	}

	e.Theme = th
	e.Compiler = classes.NewCompiler(th, e.Cfg.Theme.Dark, log)
	return nil
}
