package design

import (
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color, every channel in [0, 1].
type Color struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
	A float64 `json:"a" yaml:"a"`
}

// Hex returns the color as #rrggbb, alpha is dropped.
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// Transparent returns the same color with zero alpha.
func (c Color) Transparent() Color {
	c.A = 0
	return c
}

var namedColors = map[string]Color{
	"black":   {0, 0, 0, 1},
	"white":   {1, 1, 1, 1},
	"red":     {1, 0, 0, 1},
	"green":   {0, 128.0 / 255, 0, 1},
	"lime":    {0, 1, 0, 1},
	"blue":    {0, 0, 1, 1},
	"yellow":  {1, 1, 0, 1},
	"orange":  {1, 165.0 / 255, 0, 1},
	"gray":    {128.0 / 255, 128.0 / 255, 128.0 / 255, 1},
	"grey":    {128.0 / 255, 128.0 / 255, 128.0 / 255, 1},
	"silver":  {192.0 / 255, 192.0 / 255, 192.0 / 255, 1},
	"maroon":  {128.0 / 255, 0, 0, 1},
	"navy":    {0, 0, 128.0 / 255, 1},
	"teal":    {0, 128.0 / 255, 128.0 / 255, 1},
	"olive":   {128.0 / 255, 128.0 / 255, 0, 1},
	"purple":  {128.0 / 255, 0, 128.0 / 255, 1},
	"aqua":    {0, 1, 1, 1},
	"cyan":    {0, 1, 1, 1},
	"fuchsia": {1, 0, 1, 1},
	"magenta": {1, 0, 1, 1},
}

// ParseColor reads hex, rgb(), hsl(), oklch(), oklab() and a few named
// colors. currentColor, var() and other context dependent values fail.
func ParseColor(raw string) (Color, bool) {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case v == "transparent":
		return Color{}, true
	case strings.HasPrefix(v, "#"):
		return parseHex(v[1:])
	}

	name, args, ok := cssFunction(v)
	if !ok {
		c, ok := namedColors[v]
		return c, ok
	}
	ch, alpha, ok := channels(args)
	if !ok {
		return Color{}, false
	}

	var c colorful.Color
	switch name {
	case "rgb", "rgba":
		var rgb [3]float64
		for i, s := range ch {
			n, pct, ok := number(s)
			if !ok {
				return Color{}, false
			}
			if pct {
				rgb[i] = n / 100
			} else {
				rgb[i] = n / 255
			}
		}
		c = colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}
	case "hsl", "hsla":
		h, okH := angle(ch[0])
		s, _, okS := number(ch[1])
		l, _, okL := number(ch[2])
		if !okH || !okS || !okL {
			return Color{}, false
		}
		c = colorful.Hsl(h, s/100, l/100)
	case "oklch":
		l, lpct, okL := number(ch[0])
		chroma, cpct, okC := number(ch[1])
		h, okH := angle(ch[2])
		if !okL || !okC || !okH {
			return Color{}, false
		}
		if lpct {
			l /= 100
		}
		if cpct {
			chroma = chroma * 0.4 / 100
		}
		c = colorful.OkLch(l, chroma, h)
	case "oklab":
		l, lpct, okL := number(ch[0])
		a, apct, okA := number(ch[1])
		b, bpct, okB := number(ch[2])
		if !okL || !okA || !okB {
			return Color{}, false
		}
		if lpct {
			l /= 100
		}
		if apct {
			a = a * 0.4 / 100
		}
		if bpct {
			b = b * 0.4 / 100
		}
		c = colorful.OkLab(l, a, b)
	default:
		return Color{}, false
	}
	c = c.Clamped()
	return Color{R: round4(c.R), G: round4(c.G), B: round4(c.B), A: alpha}, true
}

func parseHex(hex string) (Color, bool) {
	alpha := 1.0
	switch len(hex) {
	case 3, 6:
	case 4:
		a, err := strconv.ParseUint(hex[3:]+hex[3:], 16, 8)
		if err != nil {
			return Color{}, false
		}
		alpha, hex = round4(float64(a)/255), hex[:3]
	case 8:
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return Color{}, false
		}
		alpha, hex = round4(float64(a)/255), hex[:6]
	default:
		return Color{}, false
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return Color{}, false
	}
	return Color{R: round4(c.R), G: round4(c.G), B: round4(c.B), A: alpha}, true
}

// cssFunction splits "name(args)".
func cssFunction(v string) (string, string, bool) {
	open := strings.IndexByte(v, '(')
	if open <= 0 || !strings.HasSuffix(v, ")") {
		return "", "", false
	}
	return v[:open], v[open+1 : len(v)-1], true
}

// channels splits "r g b / a" or "r, g, b, a" into three channels and alpha.
func channels(args string) ([]string, float64, bool) {
	alpha := 1.0
	var alphaText string
	if main, a, ok := strings.Cut(args, "/"); ok {
		args, alphaText = main, strings.TrimSpace(a)
	}
	fields := strings.FieldsFunc(args, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	if len(fields) == 4 && alphaText == "" {
		fields, alphaText = fields[:3], fields[3]
	}
	if len(fields) != 3 {
		return nil, 0, false
	}
	if alphaText != "" {
		a, pct, ok := number(alphaText)
		if !ok {
			return nil, 0, false
		}
		if pct {
			a /= 100
		}
		alpha = math.Max(0, math.Min(1, a))
	}
	return fields, alpha, true
}

// number parses "12", "12.5" or "40%". "none" reads as zero.
func number(s string) (float64, bool, bool) {
	if s == "none" {
		return 0, false, true
	}
	pct := strings.HasSuffix(s, "%")
	n, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	return n, pct, err == nil
}

// angle parses a hue in degrees, "deg", "rad" and "turn" units included.
func angle(s string) (float64, bool) {
	var scale float64 = 1
	switch {
	case strings.HasSuffix(s, "deg"):
		s = strings.TrimSuffix(s, "deg")
	case strings.HasSuffix(s, "grad"):
		s, scale = strings.TrimSuffix(s, "grad"), 0.9
	case strings.HasSuffix(s, "rad"):
		s, scale = strings.TrimSuffix(s, "rad"), 180/math.Pi
	case strings.HasSuffix(s, "turn"):
		s, scale = strings.TrimSuffix(s, "turn"), 360
	}
	if s == "none" {
		return 0, true
	}
	n, err := strconv.ParseFloat(s, 64)
	return n * scale, err == nil
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
