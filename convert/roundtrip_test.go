package convert

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twc/convert/design"
	"twc/convert/reverse"
)

func TestRoundTrip(t *testing.T) {
	_, env := setupTestEnv(t)
	exporter := reverse.NewExporter(env.Theme, env.Log)

	rt := roundTrip(env.Compiler, exporter, "p-4 flex md:p-8 bogus flex", design.Context{}, env.Log)
	assert.True(t, rt.Equal())
	assert.Equal(t, []string{"flex", "p-4"}, rt.Input)
	assert.Equal(t, []string{"flex", "p-4"}, rt.Output)

	var buf bytes.Buffer
	_, err := rt.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "  flex\n  p-4\n", buf.String())

	rt = roundTrip(env.Compiler, exporter, "px-2 py-2", design.Context{}, env.Log)
	assert.False(t, rt.Equal())
	assert.Equal(t, []string{"p-2"}, rt.Output)
	buf.Reset()
	_, err = rt.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "- px-2\n")
	assert.Contains(t, buf.String(), "- py-2\n")
	assert.Contains(t, buf.String(), "+ p-2\n")

	rt = roundTrip(env.Compiler, exporter, "", design.Context{}, env.Log)
	assert.True(t, rt.Equal())
	assert.Empty(t, rt.Diffs)
}

func TestRoundtripAction(t *testing.T) {
	ctx, _ := setupTestEnv(t)

	out, err := runAction(ctx, Roundtrip, "", "p-4 flex")
	require.NoError(t, err)
	assert.Equal(t, "input:  flex p-4\noutput: flex p-4\n", out)

	out, err = runAction(ctx, Roundtrip, "", "px-2 py-2")
	require.NoError(t, err)
	assert.Contains(t, out, "+ p-2\n")

	_, err = runAction(ctx, Roundtrip, "", "--strict", "px-2 py-2")
	assert.ErrorContains(t, err, "changed")
}
