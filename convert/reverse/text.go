package reverse

import (
	"math"
	"strconv"
	"strings"

	"twc/convert/design"
	"twc/theme"
)

var (
	textAligns = map[string]string{
		"LEFT": "text-left", "CENTER": "text-center", "RIGHT": "text-right", "JUSTIFIED": "text-justify",
	}
	textDecorations = map[string]string{
		"UNDERLINE": "underline", "STRIKETHROUGH": "line-through", "NONE": "no-underline",
	}
	textCases = map[string]string{
		"UPPER": "uppercase", "LOWER": "lowercase", "TITLE": "capitalize", "ORIGINAL": "normal-case",
	}
)

func (w *writer) text(st design.Style) {
	w.font(st.FontName)
	if st.FontSize != nil {
		if name, ok := w.e.fontSizes.name(*st.FontSize); ok {
			w.add("text-" + name)
		} else {
			w.add("text-" + bracket(formatNumber(*st.FontSize)+"px"))
		}
	}
	for _, p := range st.TextFills {
		if p.Type == design.PaintTypeSolid && p.Color != nil {
			w.add("text-" + w.e.color(*p.Color))
		}
	}

	if lh := st.LineHeight; lh != nil {
		switch lh.Unit {
		case "AUTO":
			w.add("leading-[normal]")
		case "PERCENT":
			m := lh.Value / 100
			if name, ok := w.e.leading.name(m); ok {
				w.add("leading-" + name)
			} else {
				w.add("leading-" + bracket(formatNumber(m)))
			}
		case "PIXELS":
			w.add("leading-" + w.e.spacingValue(lh.Value))
		}
	}
	if ls := st.LetterSpacing; ls != nil {
		switch ls.Unit {
		case "PERCENT":
			em := ls.Value / 100
			if name, ok := w.e.tracking.name(em); ok {
				w.add("tracking-" + name)
			} else {
				w.add("tracking-" + bracket(formatNumber(em)+"em"))
			}
		case "PIXELS":
			w.add("tracking-" + bracket(formatNumber(ls.Value)+"px"))
		}
	}
	if st.ParagraphIndent != nil {
		w.add(w.e.signed("indent", *st.ParagraphIndent))
	}

	for _, kw := range []struct {
		table map[string]string
		value string
	}{
		{textAligns, st.TextAlignHorizontal},
		{textDecorations, st.TextDecoration},
		{textCases, st.TextCase},
	} {
		if c, ok := kw.table[kw.value]; ok {
			w.add(c)
		}
	}

	if st.MaxLines != nil {
		w.add("line-clamp-" + strconv.Itoa(*st.MaxLines))
	}
	switch {
	case st.TextTruncation == "ENDING" && st.MaxLines == nil:
		w.add("truncate")
	case st.TextTruncation == "DISABLED":
		w.add("text-clip")
	}
}

// font splits a font name into family, weight and italic classes. The
// default family is left out when the weight or italic class alone rebuilds
// the name. Styles that are not weight names keep the explicit form.
func (w *writer) font(fn *design.FontName) {
	if fn == nil {
		return
	}
	weight, italic, ok := design.ParseFontStyle(fn.Style)
	if !ok {
		w.add("font-" + bracket(fn.Family+"/"+fn.Style))
		return
	}
	if fn.Family != design.DefaultFontFamily || (weight == 400 && !italic) {
		if name, ok := w.e.families[fn.Family]; ok {
			w.add("font-" + name)
		} else {
			w.add("font-" + bracket(fn.Family))
		}
	}
	if weight != 400 {
		if name, ok := w.e.weights[weight]; ok {
			w.add("font-" + name)
		} else {
			w.add("font-" + bracket(strconv.Itoa(weight)))
		}
	}
	if italic {
		w.add("italic")
	}
}

func (w *writer) motion(st design.Style) {
	if t := st.Transition; t != nil {
		start := len(w.out)
		if t.Property != "" {
			if name, ok := w.e.transitions[t.Property]; ok {
				w.add(name)
			} else {
				w.add(bracket("transition-property:" + t.Property))
			}
		}
		if t.Easing != "" {
			if name, ok := w.e.ease[t.Easing]; ok {
				w.add("ease-" + name)
			} else {
				w.add("ease-" + bracket(t.Easing))
			}
		}
		for _, d := range []struct {
			prefix string
			ms     float64
		}{{"duration", t.Duration}, {"delay", t.Delay}} {
			switch {
			case d.ms == 0:
			case d.ms == math.Trunc(d.ms):
				w.add(d.prefix + "-" + formatNumber(d.ms))
			default:
				w.add(d.prefix + "-" + bracket(formatNumber(d.ms)+"ms"))
			}
		}
		if len(w.out) == start {
			w.add("duration-0")
		}
	}
	if st.Animation != "" {
		if name, ok := w.e.animations[st.Animation]; ok {
			w.add(name)
		} else {
			w.add("animate-" + bracket(st.Animation))
		}
	}
}

type extraKind int

const (
	extraLength extraKind = iota
	extraInteger
)

// Utilities for the extra properties with a spacing or integer value.
var extraPrefixes = map[string]struct {
	prefix string
	kind   extraKind
}{
	"margin":      {"m", extraLength},
	"margin-x":    {"mx", extraLength},
	"margin-y":    {"my", extraLength},
	"margin-t":    {"mt", extraLength},
	"margin-r":    {"mr", extraLength},
	"margin-b":    {"mb", extraLength},
	"margin-l":    {"ml", extraLength},
	"margin-s":    {"ms", extraLength},
	"margin-e":    {"me", extraLength},
	"inset":       {"inset", extraLength},
	"inset-x":     {"inset-x", extraLength},
	"inset-y":     {"inset-y", extraLength},
	"top":         {"top", extraLength},
	"right":       {"right", extraLength},
	"bottom":      {"bottom", extraLength},
	"left":        {"left", extraLength},
	"translate-x": {"translate-x", extraLength},
	"translate-y": {"translate-y", extraLength},
	"zIndex":      {"z", extraInteger},
	"order":       {"order", extraInteger},
	"flexShrink":  {"shrink", extraInteger},
}

// extra writes the properties the node model has no field for. Known
// prefixes get their utility, directional keys use the key as prefix with
// an arbitrary value, the rest become whole property classes.
func (w *writer) extra(st design.Style) {
	for _, key := range theme.SortedNames(st.Extra) {
		v := st.Extra[key]
		form, known := extraPrefixes[key]
		switch {
		case known && v == "auto":
			w.add(form.prefix + "-auto")
		case known && form.kind == extraLength:
			if px, ok := pixelValue(v); ok {
				w.add(w.e.signed(form.prefix, px))
				continue
			}
			w.add(form.prefix + "-" + bracket(v))
		case known:
			if n, err := strconv.Atoi(v); err == nil {
				if n < 0 {
					w.add("-" + form.prefix + "-" + strconv.Itoa(-n))
				} else {
					w.add(form.prefix + "-" + v)
				}
				continue
			}
			w.add(form.prefix + "-" + bracket(v))
		case !strings.HasPrefix(key, "--") && strings.Contains(key, "-"):
			w.add(key + "-" + bracket(v))
		default:
			w.add(bracket(kebab(key) + ":" + v))
		}
	}
}

func pixelValue(v string) (float64, bool) {
	num, ok := strings.CutSuffix(v, "px")
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseFloat(num, 64)
	return n, err == nil
}
