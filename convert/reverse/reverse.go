// Package reverse turns a design node style back into a class list. Values
// present in the theme come out as preset utilities ("p-4", "bg-red-500"),
// everything else as arbitrary values ("p-[13px]").
package reverse

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"twc/convert/design"
	"twc/theme"
	"twc/utility"
)

// scale maps a token value back to its name. When several names share a
// value the first one in natural order wins.
type scale map[float64]string

func (s scale) add(v float64, name string) {
	k := round4(v)
	if _, ok := s[k]; !ok {
		s[k] = name
	}
}

func (s scale) name(v float64) (string, bool) {
	n, ok := s[round4(v)]
	return n, ok
}

func newScale[V any](m map[string]V, value func(V) float64) scale {
	s := make(scale, len(m))
	for _, name := range theme.SortedNames(m) {
		s.add(value(m[name]), name)
	}
	return s
}

func identity(v float64) float64 { return v }

type shadowPreset struct {
	name    string
	effects []design.Effect
}

var (
	transitionNames = []string{
		"transition", "transition-all", "transition-colors", "transition-opacity",
		"transition-shadow", "transition-transform", "transition-none",
	}
	animationNames = []string{"animate-spin", "animate-ping", "animate-pulse", "animate-bounce"}
)

// Exporter writes design styles as class lists. It is safe for concurrent
// use.
type Exporter struct {
	log *zap.Logger
	th  *theme.Theme

	spacing     scale
	containers  scale
	radius      scale
	fontSizes   scale
	blur        scale
	leading     scale
	tracking    scale
	weights     map[int]string
	families    map[string]string
	colors      map[design.Color]string
	ease        map[string]string
	transitions map[string]string
	animations  map[string]string
	shadows     []shadowPreset
}

// NewExporter builds the reverse lookup tables of th, nil selects the default
// theme.
func NewExporter(th *theme.Theme, log *zap.Logger) *Exporter {
	if log == nil {
		log = zap.NewNop()
	}
	if th == nil {
		th = theme.Default()
	}
	e := &Exporter{
		log:         log.Named("exporter"),
		th:          th,
		spacing:     newScale(th.Spacing, identity),
		containers:  newScale(th.Containers, identity),
		radius:      newScale(th.Radius, identity),
		fontSizes:   newScale(th.FontSize, func(f theme.FontSize) float64 { return f.Size }),
		blur:        newScale(th.Blur, identity),
		leading:     newScale(th.Leading, identity),
		tracking:    newScale(th.Tracking, identity),
		weights:     make(map[int]string),
		families:    make(map[string]string),
		colors:      make(map[design.Color]string),
		ease:        make(map[string]string),
		transitions: make(map[string]string),
		animations:  make(map[string]string),
	}
	for _, name := range theme.SortedNames(th.FontWeight) {
		if _, ok := e.weights[th.FontWeight[name]]; !ok {
			e.weights[th.FontWeight[name]] = name
		}
	}
	for _, name := range theme.SortedNames(th.FontFamily) {
		f := design.FirstFamily(th.FontFamily[name])
		if _, ok := e.families[f]; !ok && f != "" {
			e.families[f] = name
		}
	}
	for _, name := range theme.SortedNames(th.Colors) {
		c, ok := design.ParseColor(th.Colors[name])
		if !ok {
			continue
		}
		if _, ok := e.colors[c]; !ok {
			e.colors[c] = name
		}
	}
	for _, name := range theme.SortedNames(th.Ease) {
		if _, ok := e.ease[th.Ease[name]]; !ok {
			e.ease[th.Ease[name]] = name
		}
	}

	p := utility.NewParser(th, log)
	for _, names := range []struct {
		list []string
		dst  map[string]string
	}{{transitionNames, e.transitions}, {animationNames, e.animations}} {
		for _, name := range names.list {
			if s, ok := p.Parse(name); ok {
				names.dst[s.Value] = name
			}
		}
	}

	cv := design.NewConverter(log)
	for _, name := range theme.SortedNames(th.Shadow) {
		s := utility.Style{Property: utility.PropBoxShadow, Value: th.Shadow[name], Raw: "shadow-" + name}
		if effects := cv.Convert([]utility.Style{s}, design.Context{}).Style.Effects; len(effects) > 0 {
			e.shadows = append(e.shadows, shadowPreset{name: name, effects: effects})
		}
	}
	return e
}

// Export returns the class list reproducing st, space separated.
func (e *Exporter) Export(st design.Style) string {
	return strings.Join(e.Classes(st), " ")
}

// Classes returns the classes reproducing st. Converting them again yields
// st for every value the theme can name; paint, stroke and effect lists keep
// their order.
func (e *Exporter) Classes(st design.Style) []string {
	w := &writer{e: e}
	w.layout(st)
	w.sizing(st)
	w.position(st)
	w.fills(st)
	w.strokes(st)
	w.corners(st)
	w.effects(st)
	w.node(st)
	w.text(st)
	w.motion(st)
	w.extra(st)
	e.log.Debug("Exported style",
		zap.Int("classes", len(w.out)),
		zap.Int("arbitrary", w.arbitrary))
	return w.out
}

// writer accumulates the classes of one Export call.
type writer struct {
	e         *Exporter
	out       []string
	arbitrary int
}

func (w *writer) add(classes ...string) {
	for _, c := range classes {
		if strings.Contains(c, "[") {
			w.arbitrary++
		}
		w.out = append(w.out, c)
	}
}

// spacingValue names a pixel length on the spacing scale. Lengths that are
// a whole number of quarter steps are written as step counts ("p-13").
func (e *Exporter) spacingValue(px float64) string {
	if name, ok := e.spacing.name(px); ok {
		return name
	}
	if unit := e.th.SpacingUnit; unit > 0 && px >= 0 {
		q := px / unit * 4
		if r := math.Round(q); math.Abs(q-r) < 1e-6 {
			return formatNumber(r / 4)
		}
	}
	return bracket(formatNumber(px) + "px")
}

// signed writes prefix-value with the sign moved in front ("-mt-2").
func (e *Exporter) signed(prefix string, px float64) string {
	if px < 0 {
		return "-" + prefix + "-" + e.spacingValue(-px)
	}
	return prefix + "-" + e.spacingValue(px)
}

// color names a color from the palette. Translucent colors use the opacity
// modifier of their opaque form, colors outside the palette are written as
// hex.
func (e *Exporter) color(c design.Color) string {
	if name, ok := e.colors[c]; ok {
		return name
	}
	opaque := c
	opaque.A = 1
	name, ok := e.colors[opaque]
	if !ok {
		name = bracket(opaque.Hex())
	}
	if c.A == 1 {
		return name
	}
	pct := c.A * 100
	if r := math.Round(pct); math.Abs(pct-r) < 1e-6 {
		return name + "/" + strconv.Itoa(int(r))
	}
	return name + "/" + bracket(formatNumber(c.A))
}

// shadow names a run of shadow effects, preset lists first.
func (e *Exporter) shadow(run []design.Effect) string {
	for _, p := range e.shadows {
		if reflect.DeepEqual(p.effects, run) {
			if p.name == theme.DefaultKey {
				return "shadow"
			}
			return "shadow-" + p.name
		}
	}
	layers := make([]string, 0, len(run))
	for _, ef := range run {
		var sb strings.Builder
		if ef.Type == design.EffectTypeInnerShadow {
			sb.WriteString("inset ")
		}
		for _, n := range []float64{ef.OffsetX, ef.OffsetY, ef.Radius, ef.Spread} {
			sb.WriteString(formatNumber(n) + "px ")
		}
		c := design.Color{A: 0.25}
		if ef.Color != nil {
			c = *ef.Color
		}
		sb.WriteString(cssColor(c))
		layers = append(layers, sb.String())
	}
	return "shadow-" + bracket(strings.Join(layers, ", "))
}

// preset writes prefix alone for the DEFAULT token, prefix-name for other
// tokens and an arbitrary pixel value otherwise.
func preset(prefix string, s scale, px float64) string {
	name, ok := s.name(px)
	switch {
	case !ok:
		return prefix + "-" + bracket(formatNumber(px)+"px")
	case name == theme.DefaultKey:
		return prefix
	}
	return prefix + "-" + name
}

// cssColor writes a color for use inside an arbitrary value.
func cssColor(c design.Color) string {
	if c.A == 1 {
		return c.Hex()
	}
	ch := func(v float64) string { return strconv.Itoa(int(math.Round(v * 255))) }
	return "rgb(" + ch(c.R) + " " + ch(c.G) + " " + ch(c.B) + " / " + formatNumber(c.A) + ")"
}

// bracket wraps an arbitrary value, spaces become underscores.
func bracket(v string) string {
	return "[" + strings.ReplaceAll(v, " ", "_") + "]"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(round4(v), 'f', -1, 64)
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

func equal(a, b *float64) bool {
	return a != nil && b != nil && *a == *b
}

// kebab turns a camelCase property name into its CSS form.
func kebab(name string) string {
	if strings.HasPrefix(name, "--") {
		return name
	}
	var sb strings.Builder
	for _, r := range name {
		if 'A' <= r && r <= 'Z' {
			sb.WriteByte('-')
			r += 'a' - 'A'
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
