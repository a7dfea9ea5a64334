package classes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twc/common"
	"twc/modifier"
	"twc/utility"
)

func raws(list []Class) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.Raw)
	}
	return out
}

func TestCompile(t *testing.T) {
	c := NewCompiler(nil, common.DarkModeMedia, nil)
	list := c.Compile("md:hover:bg-linear-to-r from-red-500  to-blue-500\tp-[16px] bogus hover:")
	require.Len(t, list, 6)

	first := list[0]
	require.Len(t, first.Modifiers, 2)
	assert.Equal(t, modifier.KindBreakpoint, first.Modifiers[0].Kind())
	assert.Equal(t, modifier.KindState, first.Modifiers[1].Kind())
	assert.True(t, first.Known)
	assert.Equal(t, utility.PropBackgroundImage, first.Style.Property)
	assert.Equal(t, "to right", first.Style.Direction)

	assert.Equal(t, utility.PropGradientFrom, list[1].Style.Property)
	assert.Equal(t, utility.PropGradientTo, list[2].Style.Property)
	assert.Equal(t, "16px", list[3].Style.Value)
	assert.Equal(t, utility.VariantArbitrary, list[3].Style.Variant)

	assert.False(t, list[4].Known)
	assert.Equal(t, "bogus", list[4].Style.Raw)

	// trailing colon: modifier without utility
	assert.False(t, list[5].Known)
	require.Len(t, list[5].Modifiers, 1)

	styles := Styles(list)
	require.Len(t, styles, 4)
	assert.Equal(t, utility.PropGradientFrom, styles[1].Property)
}

func TestCompile_BracketsKeepSpaces(t *testing.T) {
	c := NewCompiler(nil, common.DarkModeMedia, nil)
	list := c.Compile("grid-cols-[1fr_2fr] [&_p]:mt-2")
	require.Len(t, list, 2)
	assert.Equal(t, "1fr 2fr", list[0].Style.Value)
	require.Len(t, list[1].Modifiers, 1)
	assert.Equal(t, modifier.KindArbitrarySelector, list[1].Modifiers[0].Kind())
}

func TestClass_Valid(t *testing.T) {
	c := NewCompiler(nil, common.DarkModeMedia, nil)

	cl := c.Class("hoverr:p-4")
	assert.True(t, cl.Known)
	assert.False(t, cl.Valid())
	assert.Equal(t, []string{"hoverr"}, cl.UnknownModifiers())

	cl = c.Class("md:p-4")
	assert.True(t, cl.Valid())
	assert.Empty(t, cl.UnknownModifiers())
}

func TestSelect(t *testing.T) {
	c := NewCompiler(nil, common.DarkModeMedia, nil)
	list := c.Compile("dark:md:p-10 md:p-8 p-4 hover:p-6 bogus x:p-1 dark:bg-black bg-white")

	tests := []struct {
		name     string
		active   []string
		expected []string
	}{
		{"base", nil, []string{"p-4", "bg-white"}},
		{"md", []string{"md"}, []string{"p-4", "bg-white", "md:p-8"}},
		{"dark md", []string{"dark", "md"}, []string{"p-4", "bg-white", "md:p-8", "dark:bg-black", "dark:md:p-10"}},
		{"hover", []string{"hover"}, []string{"p-4", "bg-white", "hover:p-6"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, raws(Select(list, tt.active...)))
		})
	}
}

func TestSort(t *testing.T) {
	c := NewCompiler(nil, common.DarkModeMedia, nil)
	list := c.Compile("md:hover:p-2 hover:p-1 lg:p-3 p-4 md:p-5")
	sorted := Sort(list)
	assert.Equal(t, []string{"p-4", "hover:p-1", "md:p-5", "lg:p-3", "md:hover:p-2"}, raws(sorted))
	// input untouched
	assert.Equal(t, "md:hover:p-2", list[0].Raw)
}
