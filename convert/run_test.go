package convert

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"twc/common"
	"twc/config"
	"twc/convert/design"
	"twc/state"
)

// setupTestEnv creates a test environment with proper context and logger
func setupTestEnv(t *testing.T) (context.Context, *state.LocalEnv) {
	t.Helper()
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg, err := config.LoadConfiguration("")
	require.NoError(t, err)
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = logger
	env.Cfg = cfg
	require.NoError(t, env.Initialize())
	return ctx, env
}

var testFlags = []cli.Flag{
	&cli.StringFlag{Name: "to"},
	&cli.StringFlag{Name: "output", Aliases: []string{"o"}},
	&cli.BoolFlag{Name: "overwrite"},
	&cli.StringFlag{Name: "parent-layout"},
	&cli.StringSliceFlag{Name: "variant"},
	&cli.BoolFlag{Name: "strict"},
	&cli.BoolFlag{Name: "watch"},
}

// runAction runs action as a subcommand, feeding stdin and collecting stdout.
func runAction(ctx context.Context, action cli.ActionFunc, stdin string, args ...string) (string, error) {
	var out bytes.Buffer
	app := &cli.Command{
		Name:   "twc",
		Reader: strings.NewReader(stdin),
		Writer: &out,
		Commands: []*cli.Command{
			{Name: "action", Action: action, Flags: testFlags},
		},
	}
	err := app.Run(ctx, append([]string{"twc", "action"}, args...))
	return out.String(), err
}

func TestConvertClasses(t *testing.T) {
	_, env := setupTestEnv(t)

	res := convertClasses(env.Compiler, "flex flex-col gap-4 p-4 md:p-8 bogus", design.Context{}, nil, env.Log)
	st := res.Style
	require.NotNil(t, st.LayoutMode)
	assert.Equal(t, common.LayoutModeVertical, *st.LayoutMode)
	assert.Equal(t, 16.0, *st.ItemSpacing)
	assert.Equal(t, 16.0, *st.PaddingTop)

	st = convertClasses(env.Compiler, "p-4 md:p-8 lg:p-12", design.Context{}, []string{"md"}, env.Log).Style
	assert.Equal(t, 32.0, *st.PaddingTop)

	st = convertClasses(env.Compiler, "p-4 md:p-8 lg:p-12", design.Context{}, []string{"md", "lg"}, env.Log).Style
	assert.Equal(t, 48.0, *st.PaddingTop)
}

func TestRun(t *testing.T) {
	ctx, _ := setupTestEnv(t)

	t.Run("arguments", func(t *testing.T) {
		out, err := runAction(ctx, Run, "", "--variant", "md", "p-4", "md:p-8")
		require.NoError(t, err)
		var st design.Style
		require.NoError(t, json.Unmarshal([]byte(out), &st))
		require.NotNil(t, st.PaddingTop)
		assert.Equal(t, 32.0, *st.PaddingTop)
	})

	t.Run("stdin yaml", func(t *testing.T) {
		out, err := runAction(ctx, Run, "flex flex-col\np-4\n", "--to", "yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "layoutMode: vertical\n")
		assert.Contains(t, out, "paddingTop: 16\n")
	})

	t.Run("unknown format falls back", func(t *testing.T) {
		out, err := runAction(ctx, Run, "", "--to", "toml", "p-4")
		require.NoError(t, err)
		assert.True(t, json.Valid([]byte(out)))
	})

	t.Run("output file", func(t *testing.T) {
		dst := filepath.Join(t.TempDir(), "nested", "style.json")
		out, err := runAction(ctx, Run, "", "-o", dst, "p-4")
		require.NoError(t, err)
		assert.Empty(t, out)
		data, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"paddingTop": 16`)

		_, err = runAction(ctx, Run, "", "-o", dst, "p-2")
		assert.ErrorContains(t, err, "already exists")

		_, err = runAction(ctx, Run, "", "-o", dst, "--overwrite", "p-2")
		require.NoError(t, err)
		data, err = os.ReadFile(dst)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"paddingTop": 8`)
	})

	t.Run("cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := runAction(cctx, Run, "", "p-4")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCSS(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	out, err := runAction(ctx, CSS, "", "p-4", "bogus", "p-4")
	require.NoError(t, err)
	assert.Equal(t, ".p-4 {\n  padding: 16px;\n}\n", out)
}

func TestExplain(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	out, err := runAction(ctx, Explain, "", "hover:p-4 md:hoverr:bogus")
	require.NoError(t, err)

	var result []Explanation
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result, 2)

	first := result[0]
	assert.Equal(t, "hover:p-4", first.Class)
	require.Len(t, first.Modifiers, 1)
	assert.Equal(t, "state", first.Modifiers[0].Kind)
	assert.Equal(t, `.hover\:p-4:hover`, first.Selector)
	assert.Equal(t, []string{"padding: 16px;"}, first.Declarations)
	require.NotNil(t, first.Utility)
	assert.Equal(t, "p-4", first.Utility.Raw)
	assert.Empty(t, first.Problems)

	second := result[1]
	require.Len(t, second.Modifiers, 2)
	assert.Nil(t, second.Utility)
	assert.Empty(t, second.Selector)
	assert.Equal(t, []string{`unknown modifier "hoverr"`, `unknown utility "bogus"`}, second.Problems)
}

func TestExport(t *testing.T) {
	ctx, env := setupTestEnv(t)
	const classes = "flex flex-col gap-4 p-4 items-center"
	st := convertClasses(env.Compiler, classes, design.Context{}, nil, env.Log).Style

	var buf bytes.Buffer
	require.NoError(t, encode(&buf, common.OutputFormatJson, st))
	out, err := runAction(ctx, Export, buf.String())
	require.NoError(t, err)
	assert.Equal(t, classes+"\n", out)

	buf.Reset()
	require.NoError(t, encode(&buf, common.OutputFormatYaml, st))
	src := filepath.Join(t.TempDir(), "style.yaml")
	require.NoError(t, os.WriteFile(src, buf.Bytes(), 0644))
	out, err = runAction(ctx, Export, "", src)
	require.NoError(t, err)
	assert.Equal(t, classes+"\n", out)

	_, err = runAction(ctx, Export, "", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestDecodeStyle(t *testing.T) {
	st, err := decodeStyle([]byte(`{"opacity": 0.5}`))
	require.NoError(t, err)
	assert.Equal(t, 0.5, *st.Opacity)

	st, err = decodeStyle([]byte("layoutMode: horizontal\nitemSpacing: 8\n"))
	require.NoError(t, err)
	assert.Equal(t, common.LayoutModeHorizontal, *st.LayoutMode)
	assert.Equal(t, 8.0, *st.ItemSpacing)

	_, err = decodeStyle(nil)
	assert.NoError(t, err)

	_, err = decodeStyle([]byte(`{"opacityy": 0.5}`))
	assert.Error(t, err)
	_, err = decodeStyle([]byte("layoutMode: diagonal\n"))
	assert.Error(t, err)
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, encode(&buf, common.OutputFormatJson, map[string]string{"selector": ".a > b & c"}))
	assert.Equal(t, "{\n  \"selector\": \".a > b & c\"\n}\n", buf.String())

	buf.Reset()
	require.NoError(t, encode(&buf, common.OutputFormatYaml, map[string]int{"a": 1}))
	assert.Equal(t, "a: 1\n", buf.String())
}
