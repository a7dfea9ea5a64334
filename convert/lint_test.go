package convert

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twc/common"
	"twc/scan"
	"twc/theme"
)

func TestLintAction(t *testing.T) {
	ctx, _ := setupTestEnv(t)

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte(`<div class="p-4 bogus"></div>`), 0644))

	out, err := runAction(ctx, Lint, "", root)
	assert.ErrorContains(t, err, "found 1 problem(s)")
	assert.Contains(t, out, `index.html:1:17: bogus: unknown utility "bogus"`)

	out, err = runAction(ctx, Lint, "", "--to", "json", root)
	assert.Error(t, err)
	var findings []scan.Finding
	require.NoError(t, json.Unmarshal([]byte(out), &findings))
	require.Len(t, findings, 1)
	assert.Equal(t, "bogus", findings[0].Class)

	clean := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(clean, "index.html"), []byte(`<div class="p-4"></div>`), 0644))
	out, err = runAction(ctx, Lint, "", "--to", "yaml", clean)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestWriteFindings(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	findings := []scan.Finding{
		{File: filepath.Join(wd, "src", "a.html"), Line: 2, Column: 3, Class: "x", Problem: `unknown utility "x"`},
	}
	var buf bytes.Buffer
	require.NoError(t, writeFindings(&buf, nil, findings))
	assert.Equal(t, filepath.Join("src", "a.html")+`:2:3: x: unknown utility "x"`+"\n", buf.String())

	buf.Reset()
	format := common.OutputFormatYaml
	require.NoError(t, writeFindings(&buf, &format, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestTokens(t *testing.T) {
	ctx, env := setupTestEnv(t)

	out, err := runAction(ctx, Tokens, "", "breakpoints")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, writeTokens(&buf, env.Theme.Tokens("breakpoints")))
	assert.Equal(t, buf.String(), out)
	assert.Regexp(t, `(?m)^breakpoints\s+md\s+768$`, out)

	out, err = runAction(ctx, Tokens, "", "--to", "json", "spacing", "radius")
	require.NoError(t, err)
	var tokens []theme.Token
	require.NoError(t, json.Unmarshal([]byte(out), &tokens))
	require.NotEmpty(t, tokens)
	assert.Equal(t, "spacing", tokens[0].Group)
	assert.Equal(t, "radius", tokens[len(tokens)-1].Group)

	_, err = runAction(ctx, Tokens, "", "nope")
	assert.ErrorContains(t, err, `unknown token group "nope"`)
}
