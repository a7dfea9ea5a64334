package cssout

import (
	"strconv"
	"strings"
	"unicode"

	"twc/utility"
)

// Declaration is one "property: value" pair.
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

func (d Declaration) String() string {
	if d.Important {
		return d.Property + ": " + d.Value + " !important;"
	}
	return d.Property + ": " + d.Value + ";"
}

const (
	gradientStops     = "var(--tw-gradient-from), var(--tw-gradient-to)"
	gradientViaStops  = "var(--tw-gradient-from), var(--tw-gradient-via), var(--tw-gradient-to)"
	defaultTransition = "cubic-bezier(0.4, 0, 0.2, 1)"
)

var colorProperties = map[string]bool{
	utility.PropBackgroundColor:     true,
	utility.PropColor:               true,
	utility.PropBorderColor:         true,
	utility.PropOutlineColor:        true,
	utility.PropRingColor:           true,
	utility.PropStroke:              true,
	utility.PropFill:                true,
	utility.PropTextDecorationColor: true,
	utility.PropShadowColor:         true,
	utility.PropGradientFrom:        true,
	utility.PropGradientVia:         true,
	utility.PropGradientTo:          true,
}

// logical side names of Direction values.
var sides = map[string][]string{
	"x": {"inline"},
	"y": {"block"},
	"t": {"top"},
	"r": {"right"},
	"b": {"bottom"},
	"l": {"left"},
	"s": {"inline-start"},
	"e": {"inline-end"},
}

var corners = map[string][]string{
	"t":  {"top-left", "top-right"},
	"r":  {"top-right", "bottom-right"},
	"b":  {"bottom-right", "bottom-left"},
	"l":  {"top-left", "bottom-left"},
	"s":  {"start-start", "end-start"},
	"e":  {"start-end", "end-end"},
	"tl": {"top-left"},
	"tr": {"top-right"},
	"br": {"bottom-right"},
	"bl": {"bottom-left"},
}

// value returns the CSS value of an instruction, colors with an opacity
// modifier are mixed with transparent.
func value(s utility.Style) string {
	v := s.CSSValue()
	if s.Opacity != nil && colorProperties[s.Property] {
		pct := strconv.FormatFloat(*s.Opacity*100, 'f', -1, 64)
		return "color-mix(in oklab, " + v + " " + pct + "%, transparent)"
	}
	return v
}

// Declarations renders one instruction as CSS declarations.
func Declarations(s utility.Style) []Declaration {
	v := value(s)
	var out []Declaration
	add := func(prop, val string) {
		out = append(out, Declaration{Property: prop, Value: val, Important: s.Important})
	}

	switch s.Property {
	case utility.PropPadding, utility.PropMargin, utility.PropBorderWidth:
		base, suffix := kebab(s.Property), ""
		if s.Property == utility.PropBorderWidth {
			base, suffix = "border", "-width"
		}
		if s.Direction == "" {
			add(base+suffix, v)
			break
		}
		for _, side := range sides[s.Direction] {
			add(base+"-"+side+suffix, v)
		}
	case utility.PropBorderColor:
		if side, ok := sides[s.Direction]; ok {
			add("border-"+side[0]+"-color", v)
		} else {
			add("border-color", v)
		}
	case utility.PropBorderRadius:
		if s.Direction == "" {
			add("border-radius", v)
			break
		}
		for _, c := range corners[s.Direction] {
			add("border-"+c+"-radius", v)
		}
	case utility.PropInset:
		switch s.Direction {
		case "x":
			add("inset-inline", v)
		case "y":
			add("inset-block", v)
		default:
			add("inset", v)
		}
	case utility.PropGap:
		switch s.Direction {
		case "x":
			add("column-gap", v)
		case "y":
			add("row-gap", v)
		default:
			add("gap", v)
		}
	case utility.PropSpace:
		if s.Direction == "y" {
			add("margin-block-end", v)
		} else {
			add("margin-inline-end", v)
		}
	case utility.PropSize:
		add("width", v)
		add("height", v)
	case utility.PropOverflow:
		if s.Direction != "" {
			add("overflow-"+s.Direction, v)
		} else {
			add("overflow", v)
		}
	case utility.PropBackgroundImage:
		switch s.Value {
		case "linear-gradient":
			dir := s.Direction
			if dir == "" {
				dir = "to bottom"
			}
			add("background-image", "linear-gradient("+dir+", var(--tw-gradient-stops))")
		case "radial-gradient", "conic-gradient":
			add("background-image", s.Value+"(var(--tw-gradient-stops))")
		default:
			add("background-image", v)
		}
	case utility.PropGradientFrom:
		add("--tw-gradient-from", v)
		add("--tw-gradient-stops", gradientStops)
	case utility.PropGradientVia:
		add("--tw-gradient-via", v)
		add("--tw-gradient-stops", gradientViaStops)
	case utility.PropGradientTo:
		add("--tw-gradient-to", v)
	case utility.PropFontFamily:
		add("font-family", quoteFamily(v))
	case utility.PropFontName:
		family, _, _ := strings.Cut(v, "/")
		add("font-family", quoteFamily(strings.TrimSpace(family)))
	case utility.PropTextOverflow:
		if strings.TrimSuffix(strings.TrimPrefix(s.Raw, "!"), "!") == "truncate" {
			add("overflow", "hidden")
			add("white-space", "nowrap")
		}
		add("text-overflow", v)
	case utility.PropLineClamp:
		if v == "none" {
			add("overflow", "visible")
			add("display", "block")
			add("-webkit-line-clamp", "unset")
			break
		}
		add("overflow", "hidden")
		add("display", "-webkit-box")
		add("-webkit-box-orient", "vertical")
		add("-webkit-line-clamp", v)
	case utility.PropBlur:
		add("filter", "blur("+v+")")
	case utility.PropBackdropBlur:
		add("backdrop-filter", "blur("+v+")")
	case utility.PropScale, utility.PropTranslate:
		name := kebab(s.Property)
		switch s.Direction {
		case "x", "y":
			add("--tw-"+name+"-"+s.Direction, v)
			add(name, "var(--tw-"+name+"-x) var(--tw-"+name+"-y)")
		default:
			add(name, v)
		}
	case utility.PropSkew:
		add("transform", "skew"+strings.ToUpper(s.Direction)+"("+v+")")
	case utility.PropShadowColor:
		add("--tw-shadow-color", v)
	case utility.PropRingWidth:
		add("box-shadow", "0 0 0 "+v+" var(--tw-ring-color, currentColor)")
	case utility.PropRingColor:
		add("--tw-ring-color", v)
	case utility.PropTransitionProperty:
		add("transition-property", v)
		if v != "none" {
			add("transition-timing-function", defaultTransition)
			add("transition-duration", "150ms")
		}
	default:
		add(kebab(s.Property), v)
	}
	return out
}

// quoteFamily quotes a single family name containing spaces.
func quoteFamily(v string) string {
	if strings.ContainsAny(v, `,"'`) || !strings.Contains(v, " ") {
		return v
	}
	return `"` + v + `"`
}

// kebab turns a camelCase property name back into its CSS form. Custom
// properties are kept, vendor prefixes regain their leading dash.
func kebab(name string) string {
	if strings.HasPrefix(name, "--") {
		return name
	}
	var sb strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	out := sb.String()
	for _, vendor := range []string{"webkit-", "moz-", "ms-"} {
		if strings.HasPrefix(out, vendor) {
			return "-" + out
		}
	}
	return out
}
