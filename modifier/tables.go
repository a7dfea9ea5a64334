package modifier

type pseudo struct {
	name     string
	selector string // appended to the element
}

// Known pseudo-class states. The position is the priority offset, later
// entries win over earlier ones.
var states = []pseudo{
	{"first", ":first-child"},
	{"last", ":last-child"},
	{"only", ":only-child"},
	{"odd", ":nth-child(odd)"},
	{"even", ":nth-child(even)"},
	{"first-of-type", ":first-of-type"},
	{"last-of-type", ":last-of-type"},
	{"only-of-type", ":only-of-type"},
	{"empty", ":empty"},
	{"visited", ":visited"},
	{"target", ":target"},
	{"open", ":is([open], :popover-open)"},
	{"default", ":default"},
	{"checked", ":checked"},
	{"indeterminate", ":indeterminate"},
	{"placeholder-shown", ":placeholder-shown"},
	{"autofill", ":autofill"},
	{"optional", ":optional"},
	{"required", ":required"},
	{"valid", ":valid"},
	{"invalid", ":invalid"},
	{"user-valid", ":user-valid"},
	{"user-invalid", ":user-invalid"},
	{"in-range", ":in-range"},
	{"out-of-range", ":out-of-range"},
	{"read-only", ":read-only"},
	{"enabled", ":enabled"},
	{"disabled", ":disabled"},
	{"inert", ":is([inert], [inert] *)"},
	{"focus-within", ":focus-within"},
	{"hover", ":hover"},
	{"focus", ":focus"},
	{"focus-visible", ":focus-visible"},
	{"active", ":active"},
}

// Functional structural pseudo-classes, longest prefix first.
var nthForms = []pseudo{
	{"nth-last-of-type-", "nth-last-of-type"},
	{"nth-of-type-", "nth-of-type"},
	{"nth-last-", "nth-last-child"},
	{"nth-", "nth-child"},
}

const nthOffset = 60

var pseudoElements = []pseudo{
	{"before", "::before"},
	{"after", "::after"},
	{"first-letter", "::first-letter"},
	{"first-line", "::first-line"},
	{"marker", "::marker"},
	{"selection", "::selection"},
	{"file", "::file-selector-button"},
	{"placeholder", "::placeholder"},
	{"backdrop", "::backdrop"},
	{"details-content", "::details-content"},
}

var mediaFeatures = []pseudo{
	{"print", "print"},
	{"portrait", "(orientation: portrait)"},
	{"landscape", "(orientation: landscape)"},
	{"contrast-more", "(prefers-contrast: more)"},
	{"contrast-less", "(prefers-contrast: less)"},
	{"forced-colors", "(forced-colors: active)"},
	{"inverted-colors", "(inverted-colors: inverted)"},
	{"pointer-fine", "(pointer: fine)"},
	{"pointer-coarse", "(pointer: coarse)"},
	{"pointer-none", "(pointer: none)"},
	{"any-pointer-fine", "(any-pointer: fine)"},
	{"any-pointer-coarse", "(any-pointer: coarse)"},
	{"any-pointer-none", "(any-pointer: none)"},
	{"noscript", "(scripting: none)"},
}

// ARIA attributes usable as boolean flags: "aria-checked" means
// [aria-checked="true"].
var ariaFlags = []string{
	"busy", "checked", "disabled", "expanded", "hidden", "pressed", "readonly", "required", "selected",
}

// ARIA attributes with enumerated values: "aria-sort-ascending".
var ariaValues = map[string][]string{
	"sort":         {"ascending", "descending", "none", "other"},
	"current":      {"page", "step", "location", "date", "time", "true", "false"},
	"orientation":  {"horizontal", "vertical"},
	"haspopup":     {"menu", "listbox", "tree", "grid", "dialog", "true", "false"},
	"live":         {"polite", "assertive", "off"},
	"autocomplete": {"inline", "list", "both", "none"},
	"invalid":      {"grammar", "spelling", "true", "false"},
}

// Defaults used when the parser has no scale, in pixels.
var (
	defaultBreakpoints = map[string]float64{
		"sm": 640, "md": 768, "lg": 1024, "xl": 1280, "2xl": 1536,
	}
	defaultContainers = map[string]float64{
		"3xs": 256, "2xs": 288, "xs": 320, "sm": 384, "md": 448, "lg": 512, "xl": 576,
		"2xl": 672, "3xl": 768, "4xl": 896, "5xl": 1024, "6xl": 1152, "7xl": 1280,
	}
)

func lookup(list []pseudo, name string) (int, pseudo, bool) {
	for i, p := range list {
		if p.name == name {
			return i, p, true
		}
	}
	return 0, pseudo{}, false
}
