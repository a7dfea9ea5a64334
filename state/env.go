// Package state defines shared program state.
package state

import (
	"context"
	"time"

	"go.uber.org/zap"

	"twc/classes"
	"twc/config"
	"twc/convert/design"
	"twc/theme"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// set by Initialize
	Theme    *theme.Theme
	Compiler *classes.Compiler

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// DesignContext describes the surroundings converted nodes are placed into.
func (e *LocalEnv) DesignContext() design.Context {
	if e.Cfg == nil {
		return design.Context{}
	}
	return design.Context{
		ParentLayoutMode: e.Cfg.Convert.ParentLayout,
		FontFamily:       e.Cfg.Convert.FontFamily,
		RootFontSize:     e.Cfg.Convert.RootFontSize,
	}
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}
