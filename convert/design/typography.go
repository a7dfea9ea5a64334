package design

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"twc/utility"
)

var weightNames = []string{
	"Thin", "Extra Light", "Light", "Regular", "Medium", "Semi Bold", "Bold", "Extra Bold", "Black",
}

// weightName maps a numeric weight to its style name, rounding to the
// nearest hundred.
func weightName(w float64) string {
	i := int(math.Round(w/100)) - 1
	i = max(0, min(len(weightNames)-1, i))
	return weightNames[i]
}

// ParseFontStyle reads a style name such as "Semi Bold Italic" back into a
// numeric weight and the italic flag.
func ParseFontStyle(name string) (weight int, italic bool, ok bool) {
	name = strings.TrimSpace(name)
	if name == "Italic" {
		return 400, true, true
	}
	name, italic = strings.CutSuffix(name, " Italic")
	for i, w := range weightNames {
		if w == name {
			return (i + 1) * 100, italic, true
		}
	}
	return 0, false, false
}

var titleCase = cases.Title(language.Und)

// FirstFamily returns the family a font name is built from for a
// font-family value.
func FirstFamily(v string) string {
	return family(v)
}

// family returns the first family of a font-family list, unquoted. Lower case
// names are title cased ("roboto mono" is "Roboto Mono").
func family(v string) string {
	first := strings.TrimSpace(splitTopLevel(v, ',')[0])
	first = unquote(first)
	if first != "" && first == strings.ToLower(first) {
		first = titleCase.String(first)
	}
	return first
}

// font combines family, weight and italic instructions into one font name.
// An explicit "Family/Style" instruction wins over all of them.
func (cv *conversion) font(styles []utility.Style) {
	var (
		explicit *FontName
		fam      string
		weight   float64
		italic   *bool
	)
	for _, s := range styles {
		switch s.Property {
		case utility.PropFontName:
			f, st, ok := strings.Cut(s.Value, "/")
			f, st = strings.TrimSpace(f), strings.TrimSpace(st)
			if !ok || f == "" || st == "" {
				cv.warn(s, "font name must be Family/Style")
				continue
			}
			explicit = &FontName{Family: f, Style: st}
		case utility.PropFontFamily:
			if f := family(s.Value); f != "" {
				fam = f
			}
		case utility.PropFontWeight:
			if !s.Numeric || s.Unit != "" || s.Number < 1 || s.Number > 1000 {
				cv.warn(s, "invalid font weight")
				continue
			}
			weight = s.Number
		case utility.PropFontStyle:
			italic = ptr(s.Value == "italic" || strings.HasPrefix(s.Value, "oblique"))
		}
	}

	switch {
	case explicit != nil:
		cv.style.FontName = explicit
	case fam != "" || weight != 0 || italic != nil:
		if fam == "" {
			fam = cv.ctx.fontFamily()
		}
		if weight == 0 {
			weight = 400
		}
		name := weightName(weight)
		if italic != nil && *italic {
			name += " Italic"
		}
		cv.style.FontName = &FontName{Family: fam, Style: name}
	}
}

var (
	textAligns = map[string]string{
		"left": "LEFT", "start": "LEFT", "center": "CENTER",
		"right": "RIGHT", "end": "RIGHT", "justify": "JUSTIFIED",
	}
	textDecorations = map[string]string{
		"underline": "UNDERLINE", "line-through": "STRIKETHROUGH", "none": "NONE",
	}
	textCases = map[string]string{
		"uppercase": "UPPER", "lowercase": "LOWER", "capitalize": "TITLE", "none": "ORIGINAL",
	}
)

func (cv *conversion) text(styles []utility.Style) {
	st := &cv.style
	for _, s := range styles {
		switch s.Property {
		case utility.PropColor:
			if c, ok := cv.color(s); ok {
				st.TextFills = append(st.TextFills, Paint{Type: PaintTypeSolid, Color: &c})
			}
		case utility.PropFontSize:
			if n, ok := cv.pixels(s); ok && n > 0 {
				st.FontSize = &n
			} else {
				cv.warn(s, "invalid font size")
			}
		case utility.PropLineHeight:
			if m, ok := cv.lineHeight(s); ok {
				st.LineHeight = &m
			} else {
				cv.warn(s, "invalid line height")
			}
		case utility.PropLetterSpacing:
			switch {
			case s.Numeric && s.Unit == "em":
				st.LetterSpacing = &Measure{Value: round4(s.Signed() * 100), Unit: "PERCENT"}
			case s.Numeric && s.Unit == "%":
				st.LetterSpacing = &Measure{Value: s.Signed(), Unit: "PERCENT"}
			default:
				if n, ok := cv.pixels(s); ok {
					st.LetterSpacing = &Measure{Value: n, Unit: "PIXELS"}
				} else {
					cv.warn(s, "invalid letter spacing")
				}
			}
		case utility.PropTextIndent:
			if n, ok := cv.pixels(s); ok {
				st.ParagraphIndent = &n
			} else {
				cv.warn(s, "invalid text indent")
			}
		case utility.PropTextAlign:
			cv.keyword(s, textAligns, &st.TextAlignHorizontal)
		case utility.PropTextDecorationLine:
			cv.keyword(s, textDecorations, &st.TextDecoration)
		case utility.PropTextTransform:
			cv.keyword(s, textCases, &st.TextCase)
		case utility.PropTextOverflow:
			if s.Value == "ellipsis" {
				st.TextTruncation = "ENDING"
			} else {
				st.TextTruncation = "DISABLED"
			}
		case utility.PropLineClamp:
			if s.Value == "none" {
				st.MaxLines, st.TextTruncation = nil, "DISABLED"
				continue
			}
			n, err := strconv.Atoi(s.Value)
			if err != nil || n < 1 {
				cv.warn(s, "invalid line clamp")
				continue
			}
			st.MaxLines, st.TextTruncation = &n, "ENDING"
		}
	}
}

func (cv *conversion) lineHeight(s utility.Style) (Measure, bool) {
	if s.Value == "normal" {
		return Measure{Unit: "AUTO"}, true
	}
	if !s.Numeric || s.Negative || s.Number < 0 {
		return Measure{}, false
	}
	switch s.Unit {
	case "":
		return Measure{Value: round4(s.Number * 100), Unit: "PERCENT"}, true
	case "%":
		return Measure{Value: s.Number, Unit: "PERCENT"}, true
	}
	n, ok := cv.pixels(s)
	return Measure{Value: n, Unit: "PIXELS"}, ok
}

// keyword maps an enumerated CSS value, unknown values are dropped.
func (cv *conversion) keyword(s utility.Style, table map[string]string, dst *string) {
	if v, ok := table[s.Value]; ok {
		*dst = v
		return
	}
	cv.warn(s, "unsupported value")
}
