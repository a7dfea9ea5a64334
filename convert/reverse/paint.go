package reverse

import (
	"math"
	"slices"
	"strings"

	"twc/convert/design"
)

var gradientSides = map[float64]string{
	0: "t", 45: "tr", 90: "r", 135: "br", 180: "b", 225: "bl", 270: "l", 315: "tl",
}

// cssBlend is the inverse of the node blend mode naming.
func cssBlend(mode string) string {
	return strings.ToLower(strings.ReplaceAll(mode, "_", "-"))
}

func (w *writer) fills(st design.Style) {
	for _, p := range st.Fills {
		switch p.Type {
		case design.PaintTypeSolid:
			if p.Color == nil {
				continue
			}
			w.add("bg-" + w.e.color(*p.Color))
		case design.PaintTypeGradientLinear, design.PaintTypeGradientRadial, design.PaintTypeGradientAngular:
			w.gradient(p)
		case design.PaintTypeImage:
			if p.ImageURL == "" {
				continue
			}
			w.add("bg-[url(" + strings.ReplaceAll(p.ImageURL, " ", "%20") + ")]")
			switch p.ScaleMode {
			case "TILE":
				w.add("bg-repeat")
			case "FIT":
				w.add("bg-contain")
			}
		default:
			continue
		}
		if p.BlendMode != "" {
			w.add("bg-blend-" + cssBlend(p.BlendMode))
		}
	}
}

// evenlySpaced reports whether stops sit at i/(n-1), the positions from/via/to
// utilities produce.
func evenlySpaced(stops []design.ColorStop) bool {
	last := float64(len(stops) - 1)
	for i, s := range stops {
		if math.Abs(s.Position-float64(i)/last) > 1e-4 {
			return false
		}
	}
	return true
}

func (w *writer) gradient(p design.Paint) {
	var head string
	switch p.Type {
	case design.PaintTypeGradientLinear:
		if side, ok := gradientSides[p.Angle]; ok {
			head = "bg-linear-to-" + side
		} else if p.Angle == math.Trunc(p.Angle) {
			head = "bg-linear-" + formatNumber(p.Angle)
		}
	case design.PaintTypeGradientRadial:
		if p.Angle == 0 {
			head = "bg-radial"
		}
	case design.PaintTypeGradientAngular:
		if p.Angle == 0 {
			head = "bg-conic"
		}
	}
	if head == "" || len(p.Stops) < 2 || !evenlySpaced(p.Stops) {
		w.add("bg-" + bracket(cssGradient(p)))
		return
	}

	w.add(head, "from-"+w.e.color(p.Stops[0].Color))
	for _, s := range p.Stops[1 : len(p.Stops)-1] {
		w.add("via-" + w.e.color(s.Color))
	}
	w.add("to-" + w.e.color(p.Stops[len(p.Stops)-1].Color))
}

// cssGradient writes a gradient paint as a CSS gradient function with
// explicit stop positions.
func cssGradient(p design.Paint) string {
	var args []string
	name := "linear-gradient"
	switch p.Type {
	case design.PaintTypeGradientLinear:
		args = append(args, formatNumber(p.Angle)+"deg")
	case design.PaintTypeGradientRadial:
		name = "radial-gradient"
	case design.PaintTypeGradientAngular:
		name = "conic-gradient"
		if p.Angle != 0 {
			args = append(args, "from "+formatNumber(p.Angle)+"deg")
		}
	}
	for _, s := range p.Stops {
		args = append(args, cssColor(s.Color)+" "+formatNumber(s.Position*100)+"%")
	}
	return name + "(" + strings.Join(args, ", ") + ")"
}

func (w *writer) strokes(st design.Style) {
	for _, p := range st.Strokes {
		if p.Type == design.PaintTypeSolid && p.Color != nil {
			w.add("border-" + w.e.color(*p.Color))
		}
	}
	for _, side := range []struct {
		prefix string
		weight *float64
	}{
		{"border", st.StrokeWeight},
		{"border-t", st.StrokeTopWeight},
		{"border-r", st.StrokeRightWeight},
		{"border-b", st.StrokeBottomWeight},
		{"border-l", st.StrokeLeftWeight},
	} {
		if side.weight == nil {
			continue
		}
		switch n := *side.weight; {
		case n == 1:
			w.add(side.prefix)
		case n == math.Trunc(n):
			w.add(side.prefix + "-" + formatNumber(n))
		default:
			w.add(side.prefix + "-" + bracket(formatNumber(n)+"px"))
		}
	}
	switch {
	case slices.Equal(st.DashPattern, []float64{4, 4}):
		w.add("border-dashed")
	case slices.Equal(st.DashPattern, []float64{1, 1}):
		w.add("border-dotted")
	}
}

func (w *writer) corners(st design.Style) {
	for _, c := range []struct {
		prefix string
		radius *float64
	}{
		{"rounded", st.CornerRadius},
		{"rounded-tl", st.TopLeftRadius},
		{"rounded-tr", st.TopRightRadius},
		{"rounded-br", st.BottomRightRadius},
		{"rounded-bl", st.BottomLeftRadius},
	} {
		if c.radius != nil {
			w.add(preset(c.prefix, w.e.radius, *c.radius))
		}
	}
}

// effects writes consecutive shadows as one class so that preset shadow
// lists are recognized, blurs in between keep their place.
func (w *writer) effects(st design.Style) {
	var run []design.Effect
	flush := func() {
		if len(run) > 0 {
			w.add(w.e.shadow(run))
			run = nil
		}
	}
	for _, ef := range st.Effects {
		switch ef.Type {
		case design.EffectTypeDropShadow, design.EffectTypeInnerShadow:
			run = append(run, ef)
		case design.EffectTypeLayerBlur:
			flush()
			w.add(preset("blur", w.e.blur, ef.Radius))
		case design.EffectTypeBackgroundBlur:
			flush()
			w.add(preset("backdrop-blur", w.e.blur, ef.Radius))
		}
	}
	flush()
}

// node writes opacity, rotation and blend mode.
func (w *writer) node(st design.Style) {
	if st.Opacity != nil {
		pct := *st.Opacity * 100
		if r := math.Round(pct); math.Abs(pct-r) < 1e-6 {
			w.add("opacity-" + formatNumber(r))
		} else {
			w.add("opacity-" + bracket(formatNumber(*st.Opacity)))
		}
	}
	if st.Rotation != nil {
		deg := math.Round(*st.Rotation*180/math.Pi*100) / 100
		prefix := "rotate-"
		if deg < 0 {
			prefix, deg = "-rotate-", -deg
		}
		if deg == math.Trunc(deg) {
			w.add(prefix + formatNumber(deg))
		} else {
			w.add(prefix + bracket(formatNumber(deg)+"deg"))
		}
	}
	if st.BlendMode != "" {
		w.add("mix-blend-" + cssBlend(st.BlendMode))
	}
}
