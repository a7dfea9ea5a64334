package design

import (
	"math"
	"strconv"
	"strings"

	"twc/utility"
)

// Shadow color when a shadow does not name one.
var defaultShadowColor = Color{A: 0.25}

// other converts strokes, corners, effects and transforms. Whatever has no
// field on the node style ends up in Extra.
func (cv *conversion) other(styles []utility.Style) {
	st := &cv.style
	var shadowColor *utility.Style
	for _, s := range styles {
		switch s.Property {
		case utility.PropBorderColor, utility.PropStroke:
			if c, ok := cv.color(s); ok {
				st.Strokes = append(st.Strokes, Paint{Type: PaintTypeSolid, Color: &c})
			}
		case utility.PropBorderWidth, utility.PropStrokeWidth:
			cv.strokeWeight(s)
		case utility.PropBorderStyle:
			switch s.Value {
			case "dashed":
				st.DashPattern = []float64{4, 4}
			case "dotted":
				st.DashPattern = []float64{1, 1}
			case "none":
				st.DashPattern, st.StrokeWeight = nil, ptr(0.0)
			default:
				st.DashPattern = nil
			}
		case utility.PropBorderRadius:
			cv.radius(s)
		case utility.PropOpacity:
			n := s.Number
			if s.Unit == "%" {
				n /= 100
			}
			if !s.Numeric || (s.Unit != "" && s.Unit != "%") || s.Negative || n < 0 || n > 1 {
				cv.warn(s, "opacity out of range")
				continue
			}
			st.Opacity = ptr(n)
		case utility.PropBoxShadow:
			st.Effects = append(st.Effects, cv.shadows(s)...)
		case utility.PropShadowColor:
			shadowColor = &s
		case utility.PropBlur, utility.PropBackdropBlur:
			n, ok := cv.nonNegative(s)
			if !ok {
				cv.warn(s, "invalid blur radius")
				continue
			}
			if n == 0 {
				continue
			}
			typ := EffectTypeLayerBlur
			if s.Property == utility.PropBackdropBlur {
				typ = EffectTypeBackgroundBlur
			}
			st.Effects = append(st.Effects, Effect{Type: typ, Radius: n})
		case utility.PropRotate:
			deg, ok := degrees(s)
			if !ok {
				cv.warn(s, "invalid rotation")
				continue
			}
			st.Rotation = ptr(round4(deg * math.Pi / 180))
		case utility.PropMixBlendMode:
			st.BlendMode = blendMode(s.Value)
		case utility.PropVisibility:
			st.Visible = ptr(s.Value == "visible")
		default:
			cv.extra(s)
		}
	}

	if shadowColor == nil {
		return
	}
	c, ok := cv.color(*shadowColor)
	if !ok {
		return
	}
	for i := range st.Effects {
		if t := st.Effects[i].Type; t == EffectTypeDropShadow || t == EffectTypeInnerShadow {
			st.Effects[i].Color = ptr(c)
		}
	}
}

func (cv *conversion) strokeWeight(s utility.Style) {
	n, ok := cv.nonNegative(s)
	if !ok {
		cv.warn(s, "invalid stroke weight")
		return
	}
	st := &cv.style
	switch s.Direction {
	case "":
		st.StrokeWeight = ptr(n)
	case "x":
		st.StrokeLeftWeight, st.StrokeRightWeight = ptr(n), ptr(n)
	case "y":
		st.StrokeTopWeight, st.StrokeBottomWeight = ptr(n), ptr(n)
	case "t":
		st.StrokeTopWeight = ptr(n)
	case "b":
		st.StrokeBottomWeight = ptr(n)
	case "l", "s":
		st.StrokeLeftWeight = ptr(n)
	case "r", "e":
		st.StrokeRightWeight = ptr(n)
	}
}

func (cv *conversion) radius(s utility.Style) {
	n, ok := cv.nonNegative(s)
	if !ok {
		cv.warn(s, "invalid corner radius")
		return
	}
	st := &cv.style
	corners := map[string][]**float64{
		"t":  {&st.TopLeftRadius, &st.TopRightRadius},
		"r":  {&st.TopRightRadius, &st.BottomRightRadius},
		"b":  {&st.BottomRightRadius, &st.BottomLeftRadius},
		"l":  {&st.TopLeftRadius, &st.BottomLeftRadius},
		"s":  {&st.TopLeftRadius, &st.BottomLeftRadius},
		"e":  {&st.TopRightRadius, &st.BottomRightRadius},
		"tl": {&st.TopLeftRadius},
		"tr": {&st.TopRightRadius},
		"br": {&st.BottomRightRadius},
		"bl": {&st.BottomLeftRadius},
	}
	if s.Direction == "" {
		st.CornerRadius = ptr(n)
		return
	}
	for _, dst := range corners[s.Direction] {
		*dst = ptr(n)
	}
}

// degrees reads an angle instruction, negation applied.
func degrees(s utility.Style) (float64, bool) {
	if !s.Numeric {
		return 0, false
	}
	n := s.Signed()
	switch s.Unit {
	case "deg", "":
		return n, true
	case "rad":
		return n * 180 / math.Pi, true
	case "turn":
		return n * 360, true
	case "grad":
		return n * 0.9, true
	}
	return 0, false
}

// shadows parses a box-shadow list into effects, one per layer.
func (cv *conversion) shadows(s utility.Style) []Effect {
	v := strings.TrimSpace(s.Value)
	if v == "none" || v == "" {
		return nil
	}
	var out []Effect
	for _, layer := range splitTopLevel(v, ',') {
		e, ok := parseShadow(layer, cv.ctx.rem())
		if !ok {
			cv.warn(s, "unable to parse shadow "+layer)
			continue
		}
		if s.Opacity != nil {
			e.Color.A = round4(e.Color.A * s.Alpha())
		}
		out = append(out, e)
	}
	return out
}

// parseShadow reads "[inset] x y [blur [spread]] [color]" in any order of
// color and lengths.
func parseShadow(layer string, rem float64) (Effect, bool) {
	e := Effect{Type: EffectTypeDropShadow}
	var lengths []float64
	for _, f := range splitTopLevel(layer, ' ') {
		if f == "inset" {
			e.Type = EffectTypeInnerShadow
			continue
		}
		if n, ok := shadowLength(f, rem); ok {
			lengths = append(lengths, n)
			continue
		}
		c, ok := ParseColor(f)
		if !ok || e.Color != nil {
			return Effect{}, false
		}
		e.Color = &c
	}
	if len(lengths) < 2 || len(lengths) > 4 {
		return Effect{}, false
	}
	e.OffsetX, e.OffsetY = lengths[0], lengths[1]
	if len(lengths) > 2 {
		if lengths[2] < 0 {
			return Effect{}, false
		}
		e.Radius = lengths[2]
	}
	if len(lengths) > 3 {
		e.Spread = lengths[3]
	}
	if e.Color == nil {
		e.Color = ptr(defaultShadowColor)
	}
	return e, true
}

func shadowLength(f string, rem float64) (float64, bool) {
	scale := 1.0
	switch {
	case strings.HasSuffix(f, "px"):
		f = strings.TrimSuffix(f, "px")
	case strings.HasSuffix(f, "rem"):
		f, scale = strings.TrimSuffix(f, "rem"), rem
	}
	n, err := strconv.ParseFloat(f, 64)
	if err != nil {
		return 0, false
	}
	return round4(n * scale), true
}
