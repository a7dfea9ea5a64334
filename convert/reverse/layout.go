package reverse

import (
	"twc/common"
	"twc/convert/design"
)

var (
	primaryAligns = map[string]string{
		"MIN": "justify-start", "CENTER": "justify-center", "MAX": "justify-end", "SPACE_BETWEEN": "justify-between",
	}
	counterAligns = map[string]string{
		"MIN": "items-start", "CENTER": "items-center", "MAX": "items-end", "BASELINE": "items-baseline",
	}
	layoutAligns = map[string]string{"STRETCH": "self-stretch", "INHERIT": "self-auto"}
)

func (w *writer) layout(st design.Style) {
	hidden := st.Visible != nil && !*st.Visible
	switch {
	case hidden && st.LayoutMode == nil:
		w.add("invisible")
	case hidden:
		w.add("hidden")
	case st.Visible != nil:
		w.add("visible")
	}

	vertical := false
	if st.LayoutMode != nil {
		switch *st.LayoutMode {
		case common.LayoutModeNone:
			// hidden already sets it
			if !hidden {
				w.add("block")
			}
		case common.LayoutModeHorizontal:
			w.add("flex")
		case common.LayoutModeVertical:
			w.add("flex", "flex-col")
			vertical = true
		case common.LayoutModeGrid:
			w.add("grid")
		}
	}
	switch st.LayoutWrap {
	case "WRAP":
		w.add("flex-wrap")
	case "NO_WRAP":
		w.add("flex-nowrap")
	}

	x, y := st.ItemSpacing, st.CounterAxisSpacing
	if vertical {
		x, y = y, x
	}
	if equal(x, y) {
		w.add("gap-" + w.e.spacingValue(*x))
	} else {
		if x != nil {
			w.add("gap-x-" + w.e.spacingValue(*x))
		}
		if y != nil {
			w.add("gap-y-" + w.e.spacingValue(*y))
		}
	}
	w.sides("p", st.PaddingTop, st.PaddingRight, st.PaddingBottom, st.PaddingLeft)

	if c, ok := primaryAligns[st.PrimaryAxisAlignItems]; ok {
		w.add(c)
	}
	if c, ok := counterAligns[st.CounterAxisAlignItems]; ok {
		w.add(c)
	}
	if c, ok := layoutAligns[st.LayoutAlign]; ok {
		w.add(c)
	}
	if g := st.LayoutGrow; g != nil {
		switch *g {
		case 1:
			w.add("grow")
		case 0:
			w.add("grow-0")
		default:
			w.add("grow-" + bracket(formatNumber(*g)))
		}
	}
}

// sides writes the shortest combination of all-side, axis and single side
// classes covering the set sides.
func (w *writer) sides(prefix string, t, r, b, l *float64) {
	if equal(t, r) && equal(t, b) && equal(t, l) {
		w.add(prefix + "-" + w.e.spacingValue(*t))
		return
	}
	pair := func(axis, first, second string, a, z *float64) {
		if equal(a, z) {
			w.add(prefix + axis + "-" + w.e.spacingValue(*a))
			return
		}
		if a != nil {
			w.add(prefix + first + "-" + w.e.spacingValue(*a))
		}
		if z != nil {
			w.add(prefix + second + "-" + w.e.spacingValue(*z))
		}
	}
	pair("y", "t", "b", t, b)
	pair("x", "l", "r", l, r)
}

func (w *writer) sizing(st design.Style) {
	h, v := st.LayoutSizingHorizontal, st.LayoutSizingVertical
	if h != nil && v != nil && *h == design.SizingFixed && *v == design.SizingFixed && equal(st.Width, st.Height) {
		w.add("size-" + w.e.spacingValue(*st.Width))
	} else {
		w.dimension("w", h, st.Width)
		w.dimension("h", v, st.Height)
	}

	if st.MinWidth != nil {
		w.add("min-w-" + w.e.spacingValue(*st.MinWidth))
	}
	if st.MinHeight != nil {
		w.add("min-h-" + w.e.spacingValue(*st.MinHeight))
	}
	if st.MaxWidth != nil {
		if name, ok := w.e.containers.name(*st.MaxWidth); ok {
			w.add("max-w-" + name)
		} else {
			w.add("max-w-" + w.e.spacingValue(*st.MaxWidth))
		}
	}
	if st.MaxHeight != nil {
		w.add("max-h-" + w.e.spacingValue(*st.MaxHeight))
	}
}

// dimension writes the length of one axis and, when it is not fixed, the
// sizing that replaced it.
func (w *writer) dimension(prefix string, sizing *design.Sizing, length *float64) {
	if length != nil {
		w.add(prefix + "-" + w.e.spacingValue(*length))
	}
	if sizing == nil {
		return
	}
	switch *sizing {
	case design.SizingFill:
		w.add(prefix + "-full")
	case design.SizingHug:
		w.add(prefix + "-fit")
	}
}

func (w *writer) position(st design.Style) {
	switch st.LayoutPositioning {
	case "ABSOLUTE":
		w.add("absolute")
	case "AUTO":
		w.add("relative")
	}
	if st.X != nil {
		w.add(w.e.signed("left", *st.X))
	}
	if st.Y != nil {
		w.add(w.e.signed("top", *st.Y))
	}
	if st.ClipsContent != nil {
		if *st.ClipsContent {
			w.add("overflow-hidden")
		} else {
			w.add("overflow-visible")
		}
	}
}
