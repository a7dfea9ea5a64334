package design

import (
	"twc/common"
	"twc/utility"
)

var (
	primaryAlign = map[string]string{
		"flex-start": "MIN", "start": "MIN", "center": "CENTER",
		"flex-end": "MAX", "end": "MAX", "space-between": "SPACE_BETWEEN",
	}
	counterAlign = map[string]string{
		"flex-start": "MIN", "start": "MIN", "center": "CENTER",
		"flex-end": "MAX", "end": "MAX", "baseline": "BASELINE",
	}
)

// axes collects gaps until the layout direction is known.
type axes struct {
	x, y *float64
}

// position converts layout, sizing and positioning instructions.
func (cv *conversion) position(styles []utility.Style) {
	st := &cv.style
	var (
		display   string
		direction string
		gap       axes
	)
	for _, s := range styles {
		switch s.Property {
		case utility.PropDisplay:
			display = s.Value
			if s.Value == "none" {
				st.Visible = ptr(false)
			}
		case utility.PropFlexDirection:
			direction = s.Value
			if s.Value == "row-reverse" || s.Value == "column-reverse" {
				cv.warn(s, "reversed direction is laid out forward")
			}
		case utility.PropFlexWrap:
			if s.Value == "nowrap" {
				st.LayoutWrap = "NO_WRAP"
			} else {
				st.LayoutWrap = "WRAP"
			}
		case utility.PropGap, utility.PropSpace:
			n, ok := cv.nonNegative(s)
			if !ok {
				cv.warn(s, "invalid gap")
				continue
			}
			if s.Direction != "y" {
				gap.x = ptr(n)
			}
			if s.Direction != "x" {
				gap.y = ptr(n)
			}
		case utility.PropPadding:
			cv.padding(s)
		case utility.PropJustifyContent:
			cv.keyword(s, primaryAlign, &st.PrimaryAxisAlignItems)
		case utility.PropAlignItems:
			cv.keyword(s, counterAlign, &st.CounterAxisAlignItems)
		case utility.PropAlignSelf:
			switch s.Value {
			case "stretch":
				st.LayoutAlign = "STRETCH"
			case "auto":
				st.LayoutAlign = "INHERIT"
			default:
				cv.extra(s)
			}
		case utility.PropFlex:
			switch s.Value {
			case "none", "0 1 auto":
				st.LayoutGrow = ptr(0.0)
			default:
				st.LayoutGrow = ptr(1.0)
			}
		case utility.PropFlexGrow:
			if !s.Numeric || s.Number < 0 {
				cv.warn(s, "invalid flex grow")
				continue
			}
			st.LayoutGrow = ptr(min(s.Number, 1))
		case utility.PropWidth, utility.PropHeight, utility.PropSize:
			cv.dimension(s)
		case utility.PropMinWidth:
			cv.limit(s, &st.MinWidth)
		case utility.PropMinHeight:
			cv.limit(s, &st.MinHeight)
		case utility.PropMaxWidth:
			cv.limit(s, &st.MaxWidth)
		case utility.PropMaxHeight:
			cv.limit(s, &st.MaxHeight)
		case utility.PropPosition:
			if s.Value == "absolute" || s.Value == "fixed" {
				st.LayoutPositioning = "ABSOLUTE"
			} else {
				st.LayoutPositioning = "AUTO"
			}
		case utility.PropInset, utility.PropLeft, utility.PropTop:
			n, ok := cv.pixels(s)
			if !ok {
				cv.extra(s)
				continue
			}
			if s.Property == utility.PropLeft || (s.Property == utility.PropInset && s.Direction != "y") {
				st.X = ptr(n)
			}
			if s.Property == utility.PropTop || (s.Property == utility.PropInset && s.Direction != "x") {
				st.Y = ptr(n)
			}
		case utility.PropOverflow:
			st.ClipsContent = ptr(s.Value != "visible")
		}
	}
	cv.layoutMode(display, direction)
	cv.gaps(gap)
}

func (cv *conversion) layoutMode(display, direction string) {
	mode := common.LayoutModeHorizontal
	if direction == "column" || direction == "column-reverse" {
		mode = common.LayoutModeVertical
	}
	switch display {
	case "flex", "inline-flex":
	case "grid", "inline-grid":
		mode = common.LayoutModeGrid
	case "":
		if direction == "" {
			return
		}
	default:
		mode = common.LayoutModeNone
	}
	cv.style.LayoutMode = &mode
}

// gaps maps x and y gaps to the primary and counter axis of the layout.
func (cv *conversion) gaps(g axes) {
	primary, counter := g.x, g.y
	if cv.style.LayoutMode != nil && *cv.style.LayoutMode == common.LayoutModeVertical {
		primary, counter = g.y, g.x
	}
	if primary != nil {
		cv.style.ItemSpacing = primary
	}
	if counter != nil {
		cv.style.CounterAxisSpacing = counter
	}
}

func (cv *conversion) padding(s utility.Style) {
	n, ok := cv.nonNegative(s)
	if !ok {
		cv.warn(s, "invalid padding")
		return
	}
	st := &cv.style
	set := func(dst **float64, sides ...string) {
		for _, side := range sides {
			if s.Direction == side {
				*dst = ptr(n)
				return
			}
		}
	}
	set(&st.PaddingTop, "", "y", "t")
	set(&st.PaddingBottom, "", "y", "b")
	set(&st.PaddingLeft, "", "x", "l", "s")
	set(&st.PaddingRight, "", "x", "r", "e")
}

// dimension handles width, height and size. A full size fills an auto
// layout parent and hugs anywhere else.
func (cv *conversion) dimension(s utility.Style) {
	var (
		sizing Sizing
		length *float64
	)
	switch {
	case s.Value == "auto" || s.Value == "fit-content" || s.Value == "max-content" || s.Value == "min-content":
		sizing = SizingHug
	case s.Numeric && s.Unit == "%" && s.Number == 100:
		sizing = SizingHug
		if cv.ctx.ParentLayoutMode.IsAuto() {
			sizing = SizingFill
		}
	default:
		n, ok := cv.nonNegative(s)
		if !ok {
			cv.warn(s, "unsupported size")
			return
		}
		sizing, length = SizingFixed, &n
	}

	st := &cv.style
	if s.Property != utility.PropHeight {
		st.LayoutSizingHorizontal = ptr(sizing)
		if length != nil {
			st.Width = ptr(*length)
		}
	}
	if s.Property != utility.PropWidth {
		st.LayoutSizingVertical = ptr(sizing)
		if length != nil {
			st.Height = ptr(*length)
		}
	}
}

func (cv *conversion) limit(s utility.Style, dst **float64) {
	if s.Value == "none" {
		*dst = nil
		return
	}
	n, ok := cv.nonNegative(s)
	if !ok {
		cv.warn(s, "unsupported size limit")
		return
	}
	*dst = &n
}
