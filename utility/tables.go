package utility

import (
	"cmp"
	"slices"
)

type literal struct {
	property  string
	value     string
	direction string
}

// Fixed utilities matched before any prefix lookup.
var literals = map[string]literal{
	"block":        {PropDisplay, "block", ""},
	"inline-block": {PropDisplay, "inline-block", ""},
	"inline":       {PropDisplay, "inline", ""},
	"flex":         {PropDisplay, "flex", ""},
	"inline-flex":  {PropDisplay, "inline-flex", ""},
	"grid":         {PropDisplay, "grid", ""},
	"inline-grid":  {PropDisplay, "inline-grid", ""},
	"contents":     {PropDisplay, "contents", ""},
	"flow-root":    {PropDisplay, "flow-root", ""},
	"table":        {PropDisplay, "table", ""},
	"hidden":       {PropDisplay, "none", ""},

	"static":   {PropPosition, "static", ""},
	"fixed":    {PropPosition, "fixed", ""},
	"absolute": {PropPosition, "absolute", ""},
	"relative": {PropPosition, "relative", ""},
	"sticky":   {PropPosition, "sticky", ""},

	"visible":   {PropVisibility, "visible", ""},
	"invisible": {PropVisibility, "hidden", ""},
	"collapse":  {PropVisibility, "collapse", ""},

	"overflow-auto":      {PropOverflow, "auto", ""},
	"overflow-hidden":    {PropOverflow, "hidden", ""},
	"overflow-clip":      {PropOverflow, "clip", ""},
	"overflow-visible":   {PropOverflow, "visible", ""},
	"overflow-scroll":    {PropOverflow, "scroll", ""},
	"overflow-x-auto":    {PropOverflow, "auto", "x"},
	"overflow-x-hidden":  {PropOverflow, "hidden", "x"},
	"overflow-x-scroll":  {PropOverflow, "scroll", "x"},
	"overflow-x-visible": {PropOverflow, "visible", "x"},
	"overflow-y-auto":    {PropOverflow, "auto", "y"},
	"overflow-y-hidden":  {PropOverflow, "hidden", "y"},
	"overflow-y-scroll":  {PropOverflow, "scroll", "y"},
	"overflow-y-visible": {PropOverflow, "visible", "y"},

	"box-border":          {PropBoxSizing, "border-box", ""},
	"box-content":         {PropBoxSizing, "content-box", ""},
	"isolate":             {PropIsolation, "isolate", ""},
	"isolation-auto":      {PropIsolation, "auto", ""},
	"pointer-events-none": {PropPointerEvents, "none", ""},
	"pointer-events-auto": {PropPointerEvents, "auto", ""},
	"select-none":         {PropUserSelect, "none", ""},
	"select-text":         {PropUserSelect, "text", ""},
	"select-all":          {PropUserSelect, "all", ""},
	"select-auto":         {PropUserSelect, "auto", ""},

	"object-contain":    {PropObjectFit, "contain", ""},
	"object-cover":      {PropObjectFit, "cover", ""},
	"object-fill":       {PropObjectFit, "fill", ""},
	"object-none":       {PropObjectFit, "none", ""},
	"object-scale-down": {PropObjectFit, "scale-down", ""},

	"flex-row":          {PropFlexDirection, "row", ""},
	"flex-row-reverse":  {PropFlexDirection, "row-reverse", ""},
	"flex-col":          {PropFlexDirection, "column", ""},
	"flex-col-reverse":  {PropFlexDirection, "column-reverse", ""},
	"flex-wrap":         {PropFlexWrap, "wrap", ""},
	"flex-nowrap":       {PropFlexWrap, "nowrap", ""},
	"flex-wrap-reverse": {PropFlexWrap, "wrap-reverse", ""},
	"flex-1":            {PropFlex, "1 1 0%", ""},
	"flex-auto":         {PropFlex, "1 1 auto", ""},
	"flex-initial":      {PropFlex, "0 1 auto", ""},
	"flex-none":         {PropFlex, "none", ""},

	"items-start":    {PropAlignItems, "flex-start", ""},
	"items-end":      {PropAlignItems, "flex-end", ""},
	"items-center":   {PropAlignItems, "center", ""},
	"items-baseline": {PropAlignItems, "baseline", ""},
	"items-stretch":  {PropAlignItems, "stretch", ""},

	"content-start":   {PropAlignContent, "flex-start", ""},
	"content-end":     {PropAlignContent, "flex-end", ""},
	"content-center":  {PropAlignContent, "center", ""},
	"content-between": {PropAlignContent, "space-between", ""},
	"content-around":  {PropAlignContent, "space-around", ""},
	"content-stretch": {PropAlignContent, "stretch", ""},

	"self-auto":     {PropAlignSelf, "auto", ""},
	"self-start":    {PropAlignSelf, "flex-start", ""},
	"self-end":      {PropAlignSelf, "flex-end", ""},
	"self-center":   {PropAlignSelf, "center", ""},
	"self-stretch":  {PropAlignSelf, "stretch", ""},
	"self-baseline": {PropAlignSelf, "baseline", ""},

	"justify-start":   {PropJustifyContent, "flex-start", ""},
	"justify-end":     {PropJustifyContent, "flex-end", ""},
	"justify-center":  {PropJustifyContent, "center", ""},
	"justify-between": {PropJustifyContent, "space-between", ""},
	"justify-around":  {PropJustifyContent, "space-around", ""},
	"justify-evenly":  {PropJustifyContent, "space-evenly", ""},
	"justify-stretch": {PropJustifyContent, "stretch", ""},

	"italic":        {PropFontStyle, "italic", ""},
	"not-italic":    {PropFontStyle, "normal", ""},
	"underline":     {PropTextDecorationLine, "underline", ""},
	"overline":      {PropTextDecorationLine, "overline", ""},
	"line-through":  {PropTextDecorationLine, "line-through", ""},
	"no-underline":  {PropTextDecorationLine, "none", ""},
	"uppercase":     {PropTextTransform, "uppercase", ""},
	"lowercase":     {PropTextTransform, "lowercase", ""},
	"capitalize":    {PropTextTransform, "capitalize", ""},
	"normal-case":   {PropTextTransform, "none", ""},
	"text-left":     {PropTextAlign, "left", ""},
	"text-center":   {PropTextAlign, "center", ""},
	"text-right":    {PropTextAlign, "right", ""},
	"text-justify":  {PropTextAlign, "justify", ""},
	"text-start":    {PropTextAlign, "start", ""},
	"text-end":      {PropTextAlign, "end", ""},
	"truncate":      {PropTextOverflow, "ellipsis", ""},
	"text-ellipsis": {PropTextOverflow, "ellipsis", ""},
	"text-clip":     {PropTextOverflow, "clip", ""},

	"whitespace-normal":   {PropWhiteSpace, "normal", ""},
	"whitespace-nowrap":   {PropWhiteSpace, "nowrap", ""},
	"whitespace-pre":      {PropWhiteSpace, "pre", ""},
	"whitespace-pre-line": {PropWhiteSpace, "pre-line", ""},
	"whitespace-pre-wrap": {PropWhiteSpace, "pre-wrap", ""},

	"border-solid":  {PropBorderStyle, "solid", ""},
	"border-dashed": {PropBorderStyle, "dashed", ""},
	"border-dotted": {PropBorderStyle, "dotted", ""},
	"border-double": {PropBorderStyle, "double", ""},
	"border-none":   {PropBorderStyle, "none", ""},
	"outline-none":  {PropOutlineWidth, "0px", ""},

	"bg-none":              {PropBackgroundImage, "none", ""},
	"bg-radial":            {PropBackgroundImage, "radial-gradient", ""},
	"bg-conic":             {PropBackgroundImage, "conic-gradient", ""},
	"bg-cover":             {PropBackgroundSize, "cover", ""},
	"bg-contain":           {PropBackgroundSize, "contain", ""},
	"bg-auto":              {PropBackgroundSize, "auto", ""},
	"bg-repeat":            {PropBackgroundRepeat, "repeat", ""},
	"bg-no-repeat":         {PropBackgroundRepeat, "no-repeat", ""},
	"bg-repeat-x":          {PropBackgroundRepeat, "repeat-x", ""},
	"bg-repeat-y":          {PropBackgroundRepeat, "repeat-y", ""},
	"bg-repeat-round":      {PropBackgroundRepeat, "round", ""},
	"bg-repeat-space":      {PropBackgroundRepeat, "space", ""},
	"bg-center":            {PropBackgroundPosition, "center", ""},
	"bg-top":               {PropBackgroundPosition, "top", ""},
	"bg-bottom":            {PropBackgroundPosition, "bottom", ""},
	"bg-left":              {PropBackgroundPosition, "left", ""},
	"bg-right":             {PropBackgroundPosition, "right", ""},
	"bg-left-top":          {PropBackgroundPosition, "left top", ""},
	"bg-left-bottom":       {PropBackgroundPosition, "left bottom", ""},
	"bg-right-top":         {PropBackgroundPosition, "right top", ""},
	"bg-right-bottom":      {PropBackgroundPosition, "right bottom", ""},
	"transition":           {PropTransitionProperty, "color, background-color, border-color, text-decoration-color, fill, stroke, opacity, box-shadow, transform", ""},
	"transition-all":       {PropTransitionProperty, "all", ""},
	"transition-none":      {PropTransitionProperty, "none", ""},
	"transition-colors":    {PropTransitionProperty, "color, background-color, border-color, text-decoration-color, fill, stroke", ""},
	"transition-opacity":   {PropTransitionProperty, "opacity", ""},
	"transition-shadow":    {PropTransitionProperty, "box-shadow", ""},
	"transition-transform": {PropTransitionProperty, "transform", ""},
}

// Gradient direction suffixes of bg-linear-to-* and the older bg-gradient-to-*.
var gradientDirections = map[string]string{
	"t": "to top", "tr": "to top right", "r": "to right", "br": "to bottom right",
	"b": "to bottom", "bl": "to bottom left", "l": "to left", "tl": "to top left",
}

var blendModes = []string{
	"normal", "multiply", "screen", "overlay", "darken", "lighten", "color-dodge", "color-burn",
	"hard-light", "soft-light", "difference", "exclusion", "hue", "saturation", "color", "luminosity",
}

func init() {
	for suffix, dir := range gradientDirections {
		literals["bg-linear-to-"+suffix] = literal{PropBackgroundImage, "linear-gradient", dir}
		literals["bg-gradient-to-"+suffix] = literal{PropBackgroundImage, "linear-gradient", dir}
	}
	for _, mode := range blendModes {
		literals["bg-blend-"+mode] = literal{PropBackgroundBlendMode, mode, ""}
		literals["mix-blend-"+mode] = literal{PropMixBlendMode, mode, ""}
	}
	slices.SortFunc(prefixes, func(a, b prefix) int {
		return cmp.Compare(len(b.name), len(a.name))
	})
}

// valueKind selects how the value after a prefix is resolved.
type valueKind int

const (
	kindSpacing valueKind = iota
	kindSize
	kindMaxSize
	kindColor
	kindText       // font size or color
	kindFont       // weight or family
	kindWidthColor // width, or color through alt
	kindRadius
	kindShadow
	kindBlur
	kindLeading
	kindTracking
	kindOpacity
	kindInteger
	kindDuration
	kindEase
	kindAngle
	kindPercent
	kindGridTrack
	kindSpan
	kindAspect
	kindKeyword
	kindGradientAngle
)

type prefix struct {
	name      string
	property  string
	direction string
	kind      valueKind
	// alt is the color property for kinds that take either a width or a color.
	alt       string
	negatable bool
	// bare is the value used when the utility is the prefix alone.
	bare     string
	keywords map[string]string
}

var sides = []struct{ suffix, direction string }{
	{"", ""}, {"x", "x"}, {"y", "y"}, {"t", "t"}, {"r", "r"}, {"b", "b"}, {"l", "l"}, {"s", "s"}, {"e", "e"},
}

// prefixes is sorted longest name first during init.
var prefixes = buildPrefixes()

func buildPrefixes() []prefix {
	var out []prefix
	for _, s := range sides {
		out = append(out,
			prefix{name: "p" + s.suffix, property: PropPadding, direction: s.direction, kind: kindSpacing},
			prefix{name: "m" + s.suffix, property: PropMargin, direction: s.direction, kind: kindSpacing, negatable: true, keywords: map[string]string{"auto": "auto"}},
		)
		name := "border"
		if s.suffix != "" {
			name += "-" + s.suffix
		}
		out = append(out, prefix{name: name, property: PropBorderWidth, direction: s.direction, kind: kindWidthColor, alt: PropBorderColor, bare: "1"})
	}
	for _, c := range []string{"t", "r", "b", "l", "s", "e", "tl", "tr", "br", "bl"} {
		out = append(out, prefix{name: "rounded-" + c, property: PropBorderRadius, direction: c, kind: kindRadius, bare: "DEFAULT"})
	}

	out = append(out,
		prefix{name: "gap", property: PropGap, kind: kindSpacing},
		prefix{name: "gap-x", property: PropGap, direction: "x", kind: kindSpacing},
		prefix{name: "gap-y", property: PropGap, direction: "y", kind: kindSpacing},
		prefix{name: "space-x", property: PropSpace, direction: "x", kind: kindSpacing, negatable: true},
		prefix{name: "space-y", property: PropSpace, direction: "y", kind: kindSpacing, negatable: true},
		prefix{name: "indent", property: PropTextIndent, kind: kindSpacing, negatable: true},

		prefix{name: "w", property: PropWidth, kind: kindSize},
		prefix{name: "h", property: PropHeight, kind: kindSize},
		prefix{name: "size", property: PropSize, kind: kindSize},
		prefix{name: "min-w", property: PropMinWidth, kind: kindSize},
		prefix{name: "min-h", property: PropMinHeight, kind: kindSize},
		prefix{name: "max-w", property: PropMaxWidth, kind: kindMaxSize},
		prefix{name: "max-h", property: PropMaxHeight, kind: kindSize, keywords: map[string]string{"none": "none"}},
		prefix{name: "basis", property: PropFlexBasis, kind: kindSize},
		prefix{name: "inset", property: PropInset, kind: kindSize, negatable: true},
		prefix{name: "inset-x", property: PropInset, direction: "x", kind: kindSize, negatable: true},
		prefix{name: "inset-y", property: PropInset, direction: "y", kind: kindSize, negatable: true},
		prefix{name: "top", property: PropTop, kind: kindSize, negatable: true},
		prefix{name: "right", property: PropRight, kind: kindSize, negatable: true},
		prefix{name: "bottom", property: PropBottom, kind: kindSize, negatable: true},
		prefix{name: "left", property: PropLeft, kind: kindSize, negatable: true},
		prefix{name: "translate-x", property: PropTranslate, direction: "x", kind: kindSize, negatable: true},
		prefix{name: "translate-y", property: PropTranslate, direction: "y", kind: kindSize, negatable: true},

		prefix{name: "bg", property: PropBackgroundColor, kind: kindColor},
		prefix{name: "bg-linear", property: PropBackgroundImage, kind: kindGradientAngle, negatable: true},
		prefix{name: "from", property: PropGradientFrom, kind: kindColor},
		prefix{name: "via", property: PropGradientVia, kind: kindColor},
		prefix{name: "to", property: PropGradientTo, kind: kindColor},
		prefix{name: "text", property: PropColor, kind: kindText},
		prefix{name: "decoration", property: PropTextDecorationColor, kind: kindColor},
		prefix{name: "fill", property: PropFill, kind: kindColor},
		prefix{name: "stroke", property: PropStrokeWidth, kind: kindWidthColor, alt: PropStroke},
		prefix{name: "ring", property: PropRingWidth, kind: kindWidthColor, alt: PropRingColor, bare: "1"},
		prefix{name: "outline", property: PropOutlineWidth, kind: kindWidthColor, alt: PropOutlineColor, bare: "1"},
		prefix{name: "rounded", property: PropBorderRadius, kind: kindRadius, bare: "DEFAULT"},
		prefix{name: "shadow", property: PropBoxShadow, kind: kindShadow, alt: PropShadowColor, bare: "DEFAULT"},
		prefix{name: "blur", property: PropBlur, kind: kindBlur, bare: "DEFAULT"},
		prefix{name: "backdrop-blur", property: PropBackdropBlur, kind: kindBlur, bare: "DEFAULT"},
		prefix{name: "opacity", property: PropOpacity, kind: kindOpacity},

		prefix{name: "font", property: PropFontWeight, kind: kindFont},
		prefix{name: "leading", property: PropLineHeight, kind: kindLeading},
		prefix{name: "tracking", property: PropLetterSpacing, kind: kindTracking, negatable: true},
		prefix{name: "line-clamp", property: PropLineClamp, kind: kindInteger, keywords: map[string]string{"none": "none"}},

		prefix{name: "z", property: PropZIndex, kind: kindInteger, negatable: true, keywords: map[string]string{"auto": "auto"}},
		prefix{name: "order", property: PropOrder, kind: kindInteger, negatable: true, keywords: map[string]string{"first": "-9999", "last": "9999", "none": "0"}},
		prefix{name: "grow", property: PropFlexGrow, kind: kindInteger, bare: "1"},
		prefix{name: "shrink", property: PropFlexShrink, kind: kindInteger, bare: "1"},
		prefix{name: "grid-cols", property: PropGridTemplateColumns, kind: kindGridTrack},
		prefix{name: "grid-rows", property: PropGridTemplateRows, kind: kindGridTrack},
		prefix{name: "col-span", property: PropGridColumn, kind: kindSpan},
		prefix{name: "row-span", property: PropGridRow, kind: kindSpan},
		prefix{name: "aspect", property: PropAspectRatio, kind: kindAspect},

		prefix{name: "rotate", property: PropRotate, kind: kindAngle, negatable: true},
		prefix{name: "skew-x", property: PropSkew, direction: "x", kind: kindAngle, negatable: true},
		prefix{name: "skew-y", property: PropSkew, direction: "y", kind: kindAngle, negatable: true},
		prefix{name: "scale", property: PropScale, kind: kindPercent, negatable: true},
		prefix{name: "scale-x", property: PropScale, direction: "x", kind: kindPercent, negatable: true},
		prefix{name: "scale-y", property: PropScale, direction: "y", kind: kindPercent, negatable: true},
		prefix{name: "origin", property: PropTransformOrigin, kind: kindKeyword, keywords: map[string]string{
			"center": "center", "top": "top", "top-right": "top right", "right": "right", "bottom-right": "bottom right",
			"bottom": "bottom", "bottom-left": "bottom left", "left": "left", "top-left": "top left",
		}},

		prefix{name: "duration", property: PropTransitionDuration, kind: kindDuration},
		prefix{name: "delay", property: PropTransitionDelay, kind: kindDuration},
		prefix{name: "ease", property: PropTransitionTimingFunction, kind: kindEase},
		prefix{name: "animate", property: PropAnimation, kind: kindKeyword, keywords: map[string]string{
			"none":   "none",
			"spin":   "spin 1s linear infinite",
			"ping":   "ping 1s cubic-bezier(0, 0, 0.2, 1) infinite",
			"pulse":  "pulse 2s cubic-bezier(0.4, 0, 0.6, 1) infinite",
			"bounce": "bounce 1s infinite",
		}},
		prefix{name: "cursor", property: PropCursor, kind: kindKeyword, keywords: keywordSet(
			"auto", "default", "pointer", "wait", "text", "move", "help", "not-allowed", "none", "context-menu",
			"progress", "cell", "crosshair", "copy", "grab", "grabbing", "col-resize", "row-resize", "zoom-in", "zoom-out",
		)},
	)
	return out
}

func keywordSet(names ...string) map[string]string {
	m := make(map[string]string, len(names))
	for _, n := range names {
		m[n] = n
	}
	return m
}

// lookupPrefix finds the longest prefix owning body. value is what follows
// the prefix and its dash, empty for bare utilities.
func lookupPrefix(body string) (prefix, string, bool) {
	for _, p := range prefixes {
		if body == p.name {
			return p, "", true
		}
		if len(body) > len(p.name)+1 && body[:len(p.name)] == p.name && body[len(p.name)] == '-' {
			return p, body[len(p.name)+1:], true
		}
	}
	return prefix{}, "", false
}
