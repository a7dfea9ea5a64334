package state

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"twc/common"
	"twc/config"
)

func TestContextWithEnv(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	if ctx == nil {
		t.Fatal("ContextWithEnv() returned nil")
	}

	env := EnvFromContext(ctx)
	if env == nil {
		t.Fatal("EnvFromContext() returned nil")
	}

	if env.start.IsZero() {
		t.Error("Environment start time not set")
	}
}

func TestEnvFromContext(t *testing.T) {
	t.Run("valid context", func(t *testing.T) {
		ctx := ContextWithEnv(context.Background())
		env := EnvFromContext(ctx)

		if env == nil {
			t.Error("Expected non-nil environment")
		}
	})

	t.Run("panic on missing env", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Expected panic when env not in context")
			}
		}()

		// Use plain context without env
		EnvFromContext(context.Background())
	})
}

func TestLocalEnv_Uptime(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	env := EnvFromContext(ctx)

	time.Sleep(10 * time.Millisecond)
	uptime := env.Uptime()

	if uptime < 10*time.Millisecond {
		t.Errorf("Uptime() = %v, expected at least 10ms", uptime)
	}
	if uptime > 1*time.Second {
		t.Errorf("Uptime() = %v, unexpectedly large", uptime)
	}
}

func TestLocalEnv_RedirectStdLog(t *testing.T) {
	t.Run("with logger", func(t *testing.T) {
		env := &LocalEnv{
			Log: zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1))),
		}

		env.RedirectStdLog()
		if env.restoreStdLog == nil {
			t.Error("Expected restoreStdLog to be set")
		}

		env.RestoreStdLog()
	})

	t.Run("without logger", func(t *testing.T) {
		env := &LocalEnv{}

		// Should not panic
		env.RedirectStdLog()
		if env.restoreStdLog != nil {
			t.Error("Expected restoreStdLog to remain nil")
		}
		env.RestoreStdLog()
	})
}

func TestLocalEnv_DesignContext(t *testing.T) {
	env := &LocalEnv{}
	if ctx := env.DesignContext(); ctx.ParentLayoutMode != common.LayoutModeNone || ctx.FontFamily != "" {
		t.Errorf("DesignContext() without configuration = %+v, want zero", ctx)
	}

	env.Cfg = &config.Config{Convert: config.ConvertConfig{
		ParentLayout: common.LayoutModeHorizontal,
		FontFamily:   "Roboto",
		RootFontSize: 10,
	}}
	ctx := env.DesignContext()
	if ctx.ParentLayoutMode != common.LayoutModeHorizontal || ctx.FontFamily != "Roboto" || ctx.RootFontSize != 10 {
		t.Errorf("DesignContext() = %+v", ctx)
	}
}

func TestLocalEnv_Initialize(t *testing.T) {
	t.Run("no configuration", func(t *testing.T) {
		env := &LocalEnv{}
		if err := env.Initialize(); err == nil {
			t.Error("Expected error without configuration")
		}
	})

	t.Run("default theme", func(t *testing.T) {
		env := &LocalEnv{Cfg: &config.Config{Version: 1}}
		if err := env.Initialize(); err != nil {
			t.Fatalf("Initialize() error = %v", err)
		}
		if env.Theme == nil || env.Compiler == nil {
			t.Fatal("Initialize() did not set theme and compiler")
		}
		if v, _ := env.Theme.ColorValue("red-500"); v != "#ef4444" {
			t.Errorf("red-500 = %q, want #ef4444", v)
		}
	})

	t.Run("token file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "brand.yaml")
		if err := os.WriteFile(path, []byte("colors:\n  brand: \"#123456\"\n"), 0644); err != nil {
			t.Fatal(err)
		}
		env := &LocalEnv{
			Cfg: &config.Config{Version: 1, Theme: config.ThemeConfig{Files: []string{path}}},
			Log: zaptest.NewLogger(t),
		}
		if err := env.Initialize(); err != nil {
			t.Fatalf("Initialize() error = %v", err)
		}
		if v, _ := env.Theme.ColorValue("brand"); v != "#123456" {
			t.Errorf("brand = %q, want #123456", v)
		}
		if !env.Compiler.Class("bg-brand").Known {
			t.Error("bg-brand is not known after loading the token file")
		}
	})

	t.Run("missing token file", func(t *testing.T) {
		env := &LocalEnv{Cfg: &config.Config{Version: 1, Theme: config.ThemeConfig{Files: []string{"/nonexistent/theme.toml"}}}}
		if err := env.Initialize(); err == nil {
			t.Error("Expected error for missing token file")
		}
	})
}

func TestLocalEnv_RedirectAndRestore(t *testing.T) {
	env := &LocalEnv{
		Log: zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1))),
	}

	// Test multiple redirect/restore cycles
	for i := 0; i < 3; i++ {
		env.RedirectStdLog()
		if env.restoreStdLog == nil {
			t.Errorf("Iteration %d: restoreStdLog not set", i)
		}
		env.RestoreStdLog()
	}
}

func TestEnvKey(t *testing.T) {
	// Verify that envKey is a unique type
	var key envKey
	ctx := context.WithValue(context.Background(), key, &LocalEnv{start: time.Now()})

	val := ctx.Value(key)
	if val == nil {
		t.Error("Failed to retrieve value with envKey")
	}

	if _, ok := val.(*LocalEnv); !ok {
		t.Error("Retrieved value is not *LocalEnv")
	}
}
