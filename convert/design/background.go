package design

import (
	"math"
	"strings"

	"twc/utility"
)

// bgGroup is one background layer: the instruction that opened it and the
// instructions attached to it afterwards.
type bgGroup struct {
	start    utility.Style
	from, to *utility.Style
	vias     []utility.Style
	blend    string
	size     string
	repeat   string
	position string
}

func opensGroup(property string) bool {
	switch property {
	case utility.PropBackgroundColor, utility.PropBackgroundImage, utility.PropFill:
		return true
	}
	return false
}

func (g *bgGroup) attach(s utility.Style) {
	switch s.Property {
	case utility.PropGradientFrom:
		g.from = &s
	case utility.PropGradientVia:
		g.vias = append(g.vias, s)
	case utility.PropGradientTo:
		g.to = &s
	case utility.PropBackgroundBlendMode:
		g.blend = s.Value
	case utility.PropBackgroundSize:
		g.size = s.Value
	case utility.PropBackgroundRepeat:
		g.repeat = s.Value
	case utility.PropBackgroundPosition:
		g.position = s.Value
	}
}

func (g *bgGroup) hasStops() bool {
	return g.from != nil || g.to != nil || len(g.vias) > 0
}

// background turns every background color or image into one fill, in order.
// Instructions seen before the first layer opens attach to that layer.
func (cv *conversion) background(styles []utility.Style) {
	var (
		groups  []*bgGroup
		pending []utility.Style
	)
	for _, s := range styles {
		if opensGroup(s.Property) {
			g := &bgGroup{start: s}
			if len(groups) == 0 {
				for _, p := range pending {
					g.attach(p)
				}
				pending = nil
			}
			groups = append(groups, g)
			continue
		}
		if len(groups) == 0 {
			pending = append(pending, s)
			continue
		}
		groups[len(groups)-1].attach(s)
	}
	for _, p := range pending {
		cv.warn(p, "no background layer to attach to")
	}

	for _, g := range groups {
		if p, ok := cv.layer(g); ok {
			cv.style.Fills = append(cv.style.Fills, p)
		}
	}
}

func (cv *conversion) layer(g *bgGroup) (Paint, bool) {
	var (
		p  Paint
		ok bool
	)
	value := strings.TrimSpace(g.start.Value)
	switch {
	case g.start.Property != utility.PropBackgroundImage:
		if g.hasStops() {
			cv.warn(g.start, "gradient stops on a solid background are ignored")
		}
		var c Color
		if c, ok = cv.color(g.start); ok {
			p = Paint{Type: PaintTypeSolid, Color: &c}
		}
	case value == "none":
		return Paint{}, false
	case value == "linear-gradient" || value == "radial-gradient" || value == "conic-gradient":
		p, ok = cv.stopGradient(g)
	case strings.Contains(value, "gradient("):
		p, ok = cv.cssGradient(g.start)
	case strings.HasPrefix(value, "url("):
		p, ok = Paint{Type: PaintTypeImage, ImageURL: unquote(value), ScaleMode: scaleMode(g)}, true
	default:
		cv.warn(g.start, "unsupported background image")
	}
	if !ok {
		return Paint{}, false
	}
	if g.position != "" && p.Type == PaintTypeImage {
		cv.warn(g.start, "background position is not supported")
	}
	if g.blend != "" {
		p.BlendMode = blendMode(g.blend)
	}
	return p, true
}

func scaleMode(g *bgGroup) string {
	switch {
	case g.repeat != "" && g.repeat != "no-repeat":
		return "TILE"
	case g.size == "contain":
		return "FIT"
	}
	return "FILL"
}

// color parses a color instruction with its opacity modifier applied.
func (cv *conversion) color(s utility.Style) (Color, bool) {
	c, ok := ParseColor(s.Value)
	if !ok {
		cv.warn(s, "unable to parse color")
		return Color{}, false
	}
	c.A = round4(c.A * s.Alpha())
	return c, true
}

func gradientType(name string) (PaintType, bool) {
	switch strings.TrimPrefix(name, "repeating-") {
	case "linear-gradient":
		return PaintTypeGradientLinear, true
	case "radial-gradient":
		return PaintTypeGradientRadial, true
	case "conic-gradient":
		return PaintTypeGradientAngular, true
	}
	return 0, false
}

// stopGradient builds a gradient from the from/via/to instructions of a
// layer. A missing end takes the transparent form of the nearest stop.
func (cv *conversion) stopGradient(g *bgGroup) (Paint, bool) {
	typ, _ := gradientType(g.start.Value)
	p := Paint{Type: typ}
	if typ == PaintTypeGradientLinear {
		p.Angle = 180
		if g.start.Direction != "" {
			a, ok := directionAngle(g.start.Direction)
			if !ok {
				cv.warn(g.start, "unable to parse gradient direction")
				return Paint{}, false
			}
			p.Angle = a
		}
	}

	parse := func(s *utility.Style) *Color {
		if s == nil {
			return nil
		}
		if c, ok := cv.color(*s); ok {
			return &c
		}
		return nil
	}
	from, to := parse(g.from), parse(g.to)
	var mid []Color
	for _, v := range g.vias {
		if c := parse(&v); c != nil {
			mid = append(mid, *c)
		}
	}
	if from == nil && to == nil && len(mid) == 0 {
		cv.warn(g.start, "gradient without color stops")
		return Paint{}, false
	}
	if from == nil {
		c := firstOf(mid, to).Transparent()
		from = &c
	}
	if to == nil {
		c := lastOf(mid, from).Transparent()
		to = &c
	}

	colors := append(append([]Color{*from}, mid...), *to)
	p.Stops = make([]ColorStop, len(colors))
	last := float64(len(colors) - 1)
	for i, c := range colors {
		p.Stops[i] = ColorStop{Position: float64(i) / last, Color: c}
	}
	return p, true
}

func firstOf(list []Color, fallback *Color) Color {
	if len(list) > 0 {
		return list[0]
	}
	return *fallback
}

func lastOf(list []Color, fallback *Color) Color {
	if len(list) > 0 {
		return list[len(list)-1]
	}
	return *fallback
}

// cssGradient parses a literal gradient function such as
// "linear-gradient(to right, #f00, rgb(0 0 255) 80%)".
func (cv *conversion) cssGradient(s utility.Style) (Paint, bool) {
	name, args, ok := cssFunction(strings.TrimSpace(s.Value))
	typ, known := gradientType(strings.ToLower(name))
	if !ok || !known {
		cv.warn(s, "unsupported background image")
		return Paint{}, false
	}
	p := Paint{Type: typ}
	if typ == PaintTypeGradientLinear {
		p.Angle = 180
	}

	parts := splitTopLevel(args, ',')
	if len(parts) > 0 {
		first := strings.ToLower(parts[0])
		switch {
		case typ == PaintTypeGradientLinear:
			if a, ok := directionAngle(first); ok {
				p.Angle, parts = a, parts[1:]
			}
		case typ == PaintTypeGradientAngular && strings.HasPrefix(first, "from "):
			if a, ok := directionAngle(strings.TrimSpace(first[5:])); ok {
				p.Angle = a
			}
			parts = parts[1:]
		default:
			// shape and position of radial and conic gradients
			if _, ok := ParseColor(splitTopLevel(first, ' ')[0]); !ok {
				parts = parts[1:]
			}
		}
	}

	type stop struct {
		color Color
		pos   float64
		set   bool
	}
	var stops []stop
	for _, part := range parts {
		fields := splitTopLevel(part, ' ')
		if len(fields) == 0 {
			continue
		}
		c, ok := ParseColor(fields[0])
		if !ok {
			cv.warn(s, "unable to parse gradient stop "+part)
			continue
		}
		c.A = round4(c.A * s.Alpha())
		st := stop{color: c}
		if len(fields) > 1 {
			if n, pct, ok := number(fields[1]); ok && pct {
				st.pos, st.set = math.Max(0, math.Min(1, n/100)), true
			}
		}
		stops = append(stops, st)
	}
	if len(stops) == 0 {
		cv.warn(s, "gradient without color stops")
		return Paint{}, false
	}

	last := float64(max(len(stops)-1, 1))
	for i, st := range stops {
		if !st.set {
			st.pos = float64(i) / last
		}
		p.Stops = append(p.Stops, ColorStop{Position: round4(st.pos), Color: st.color})
	}
	return p, true
}

var sideAngles = map[string]float64{
	"to top":          0,
	"to top right":    45,
	"to right top":    45,
	"to right":        90,
	"to bottom right": 135,
	"to right bottom": 135,
	"to bottom":       180,
	"to bottom left":  225,
	"to left bottom":  225,
	"to left":         270,
	"to top left":     315,
	"to left top":     315,
}

// directionAngle reads "to right" or an angle and returns degrees in [0, 360).
func directionAngle(dir string) (float64, bool) {
	dir = strings.Join(strings.Fields(strings.ToLower(dir)), " ")
	if a, ok := sideAngles[dir]; ok {
		return a, true
	}
	if dir == "" || dir == "none" {
		return 0, false
	}
	a, ok := angle(dir)
	if !ok {
		return 0, false
	}
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return round4(a), true
}
