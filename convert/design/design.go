// Package design aggregates an ordered list of style instructions into the
// style object of a design tool node: paint and effect lists plus flat
// layout and typography fields.
//
// Conversion never fails as a whole. An instruction that cannot be expressed
// contributes nothing and leaves a warning behind.
package design

import (
	"go.uber.org/zap"

	"twc/common"
	"twc/utility"
)

// Paint is one fill or stroke layer.
type Paint struct {
	Type  PaintType `json:"type" yaml:"type"`
	Color *Color    `json:"color,omitempty" yaml:"color,omitempty"`
	// Stops and Angle describe gradients. Angle follows CSS: 0 points up,
	// 90 to the right.
	Stops     []ColorStop `json:"stops,omitempty" yaml:"stops,omitempty"`
	Angle     float64     `json:"angle,omitempty" yaml:"angle,omitempty"`
	ImageURL  string      `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	ScaleMode string      `json:"scaleMode,omitempty" yaml:"scaleMode,omitempty"`
	BlendMode string      `json:"blendMode,omitempty" yaml:"blendMode,omitempty"`
}

type ColorStop struct {
	Position float64 `json:"position" yaml:"position"`
	Color    Color   `json:"color" yaml:"color"`
}

// Effect is a shadow or a blur.
type Effect struct {
	Type    EffectType `json:"type" yaml:"type"`
	Color   *Color     `json:"color,omitempty" yaml:"color,omitempty"`
	OffsetX float64    `json:"offsetX,omitempty" yaml:"offsetX,omitempty"`
	OffsetY float64    `json:"offsetY,omitempty" yaml:"offsetY,omitempty"`
	Radius  float64    `json:"radius" yaml:"radius"`
	Spread  float64    `json:"spread,omitempty" yaml:"spread,omitempty"`
}

type FontName struct {
	Family string `json:"family" yaml:"family"`
	Style  string `json:"style" yaml:"style"`
}

// Measure is a number with a unit: PIXELS, PERCENT or AUTO.
type Measure struct {
	Value float64 `json:"value,omitempty" yaml:"value,omitempty"`
	Unit  string  `json:"unit" yaml:"unit"`
}

type Transition struct {
	Property string  `json:"property,omitempty" yaml:"property,omitempty"`
	Duration float64 `json:"duration,omitempty" yaml:"duration,omitempty"`
	Delay    float64 `json:"delay,omitempty" yaml:"delay,omitempty"`
	Easing   string  `json:"easing,omitempty" yaml:"easing,omitempty"`
}

// Style is the aggregated node style. Unset fields are nil or empty and
// are omitted from the serialized form. Lengths are in pixels, durations in
// milliseconds, Rotation in radians.
type Style struct {
	Fills     []Paint  `json:"fills,omitempty" yaml:"fills,omitempty"`
	Strokes   []Paint  `json:"strokes,omitempty" yaml:"strokes,omitempty"`
	Effects   []Effect `json:"effects,omitempty" yaml:"effects,omitempty"`
	TextFills []Paint  `json:"textFills,omitempty" yaml:"textFills,omitempty"`

	StrokeWeight       *float64  `json:"strokeWeight,omitempty" yaml:"strokeWeight,omitempty"`
	StrokeTopWeight    *float64  `json:"strokeTopWeight,omitempty" yaml:"strokeTopWeight,omitempty"`
	StrokeRightWeight  *float64  `json:"strokeRightWeight,omitempty" yaml:"strokeRightWeight,omitempty"`
	StrokeBottomWeight *float64  `json:"strokeBottomWeight,omitempty" yaml:"strokeBottomWeight,omitempty"`
	StrokeLeftWeight   *float64  `json:"strokeLeftWeight,omitempty" yaml:"strokeLeftWeight,omitempty"`
	DashPattern        []float64 `json:"dashPattern,omitempty" yaml:"dashPattern,omitempty"`

	CornerRadius      *float64 `json:"cornerRadius,omitempty" yaml:"cornerRadius,omitempty"`
	TopLeftRadius     *float64 `json:"topLeftRadius,omitempty" yaml:"topLeftRadius,omitempty"`
	TopRightRadius    *float64 `json:"topRightRadius,omitempty" yaml:"topRightRadius,omitempty"`
	BottomRightRadius *float64 `json:"bottomRightRadius,omitempty" yaml:"bottomRightRadius,omitempty"`
	BottomLeftRadius  *float64 `json:"bottomLeftRadius,omitempty" yaml:"bottomLeftRadius,omitempty"`

	Opacity      *float64 `json:"opacity,omitempty" yaml:"opacity,omitempty"`
	Rotation     *float64 `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	BlendMode    string   `json:"blendMode,omitempty" yaml:"blendMode,omitempty"`
	Visible      *bool    `json:"visible,omitempty" yaml:"visible,omitempty"`
	ClipsContent *bool    `json:"clipsContent,omitempty" yaml:"clipsContent,omitempty"`

	LayoutMode             *common.LayoutMode `json:"layoutMode,omitempty" yaml:"layoutMode,omitempty"`
	LayoutWrap             string             `json:"layoutWrap,omitempty" yaml:"layoutWrap,omitempty"`
	ItemSpacing            *float64           `json:"itemSpacing,omitempty" yaml:"itemSpacing,omitempty"`
	CounterAxisSpacing     *float64           `json:"counterAxisSpacing,omitempty" yaml:"counterAxisSpacing,omitempty"`
	PaddingTop             *float64           `json:"paddingTop,omitempty" yaml:"paddingTop,omitempty"`
	PaddingRight           *float64           `json:"paddingRight,omitempty" yaml:"paddingRight,omitempty"`
	PaddingBottom          *float64           `json:"paddingBottom,omitempty" yaml:"paddingBottom,omitempty"`
	PaddingLeft            *float64           `json:"paddingLeft,omitempty" yaml:"paddingLeft,omitempty"`
	PrimaryAxisAlignItems  string             `json:"primaryAxisAlignItems,omitempty" yaml:"primaryAxisAlignItems,omitempty"`
	CounterAxisAlignItems  string             `json:"counterAxisAlignItems,omitempty" yaml:"counterAxisAlignItems,omitempty"`
	LayoutSizingHorizontal *Sizing            `json:"layoutSizingHorizontal,omitempty" yaml:"layoutSizingHorizontal,omitempty"`
	LayoutSizingVertical   *Sizing            `json:"layoutSizingVertical,omitempty" yaml:"layoutSizingVertical,omitempty"`
	Width                  *float64           `json:"width,omitempty" yaml:"width,omitempty"`
	Height                 *float64           `json:"height,omitempty" yaml:"height,omitempty"`
	MinWidth               *float64           `json:"minWidth,omitempty" yaml:"minWidth,omitempty"`
	MinHeight              *float64           `json:"minHeight,omitempty" yaml:"minHeight,omitempty"`
	MaxWidth               *float64           `json:"maxWidth,omitempty" yaml:"maxWidth,omitempty"`
	MaxHeight              *float64           `json:"maxHeight,omitempty" yaml:"maxHeight,omitempty"`
	LayoutGrow             *float64           `json:"layoutGrow,omitempty" yaml:"layoutGrow,omitempty"`
	LayoutAlign            string             `json:"layoutAlign,omitempty" yaml:"layoutAlign,omitempty"`
	LayoutPositioning      string             `json:"layoutPositioning,omitempty" yaml:"layoutPositioning,omitempty"`
	X                      *float64           `json:"x,omitempty" yaml:"x,omitempty"`
	Y                      *float64           `json:"y,omitempty" yaml:"y,omitempty"`

	FontName            *FontName `json:"fontName,omitempty" yaml:"fontName,omitempty"`
	FontSize            *float64  `json:"fontSize,omitempty" yaml:"fontSize,omitempty"`
	LineHeight          *Measure  `json:"lineHeight,omitempty" yaml:"lineHeight,omitempty"`
	LetterSpacing       *Measure  `json:"letterSpacing,omitempty" yaml:"letterSpacing,omitempty"`
	ParagraphIndent     *float64  `json:"paragraphIndent,omitempty" yaml:"paragraphIndent,omitempty"`
	TextAlignHorizontal string    `json:"textAlignHorizontal,omitempty" yaml:"textAlignHorizontal,omitempty"`
	TextDecoration      string    `json:"textDecoration,omitempty" yaml:"textDecoration,omitempty"`
	TextCase            string    `json:"textCase,omitempty" yaml:"textCase,omitempty"`
	TextTruncation      string    `json:"textTruncation,omitempty" yaml:"textTruncation,omitempty"`
	MaxLines            *int      `json:"maxLines,omitempty" yaml:"maxLines,omitempty"`

	Transition *Transition `json:"transition,omitempty" yaml:"transition,omitempty"`
	Animation  string      `json:"animation,omitempty" yaml:"animation,omitempty"`

	// Extra keeps instructions the node model has no field for, keyed by
	// property (and direction, "margin-x"), as CSS values.
	Extra map[string]string `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// DefaultFontFamily is used when a font weight or style is set without a family.
const DefaultFontFamily = "Inter"

// Context carries what the conversion needs to know about the node's
// surroundings.
type Context struct {
	// ParentLayoutMode decides whether "full" sizes can fill the parent.
	ParentLayoutMode common.LayoutMode
	// FontFamily replaces DefaultFontFamily when set.
	FontFamily string
	// RootFontSize converts rem, 16 when zero.
	RootFontSize float64
}

func (ctx Context) fontFamily() string {
	if ctx.FontFamily != "" {
		return ctx.FontFamily
	}
	return DefaultFontFamily
}

func (ctx Context) rem() float64 {
	if ctx.RootFontSize > 0 {
		return ctx.RootFontSize
	}
	return 16
}

// Result holds the converted style and what could not be converted.
type Result struct {
	Style    Style
	Warnings []string
}

// Converter converts style instructions to a design node style.
type Converter struct {
	log *zap.Logger
}

// NewConverter creates a new converter.
func NewConverter(log *zap.Logger) *Converter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Converter{log: log.Named("design")}
}

type bucket int

const (
	bucketBackground bucket = iota
	bucketFont
	bucketText
	bucketPosition
	bucketAnimation
	bucketOther
	bucketCount
)

func bucketOf(property string) bucket {
	switch property {
	case utility.PropBackgroundColor, utility.PropBackgroundImage, utility.PropBackgroundSize,
		utility.PropBackgroundRepeat, utility.PropBackgroundPosition, utility.PropBackgroundBlendMode,
		utility.PropGradientFrom, utility.PropGradientVia, utility.PropGradientTo, utility.PropFill:
		return bucketBackground
	case utility.PropFontFamily, utility.PropFontWeight, utility.PropFontStyle, utility.PropFontName:
		return bucketFont
	case utility.PropColor, utility.PropFontSize, utility.PropLineHeight, utility.PropLetterSpacing,
		utility.PropTextAlign, utility.PropTextDecorationLine, utility.PropTextTransform,
		utility.PropTextIndent, utility.PropTextOverflow, utility.PropLineClamp:
		return bucketText
	case utility.PropDisplay, utility.PropPosition, utility.PropFlexDirection, utility.PropFlexWrap,
		utility.PropFlex, utility.PropFlexGrow, utility.PropAlignItems, utility.PropAlignSelf,
		utility.PropJustifyContent, utility.PropGap, utility.PropSpace, utility.PropPadding,
		utility.PropWidth, utility.PropHeight, utility.PropSize, utility.PropMinWidth,
		utility.PropMinHeight, utility.PropMaxWidth, utility.PropMaxHeight, utility.PropInset,
		utility.PropTop, utility.PropLeft, utility.PropOverflow:
		return bucketPosition
	case utility.PropAnimation, utility.PropTransitionProperty, utility.PropTransitionDuration,
		utility.PropTransitionDelay, utility.PropTransitionTimingFunction:
		return bucketAnimation
	}
	return bucketOther
}

// Convert aggregates styles in order. Scalar fields are last-writer-wins,
// paint and effect lists keep the order of the instructions producing them.
func (c *Converter) Convert(styles []utility.Style, ctx Context) Result {
	var buckets [bucketCount][]utility.Style
	for _, s := range styles {
		b := bucketOf(s.Property)
		buckets[b] = append(buckets[b], s)
	}

	cv := &conversion{log: c.log, ctx: ctx}
	cv.background(buckets[bucketBackground])
	cv.font(buckets[bucketFont])
	cv.text(buckets[bucketText])
	cv.position(buckets[bucketPosition])
	cv.animation(buckets[bucketAnimation])
	cv.other(buckets[bucketOther])

	c.log.Debug("Converted styles",
		zap.Int("instructions", len(styles)),
		zap.Int("warnings", len(cv.warnings)))
	return Result{Style: cv.style, Warnings: cv.warnings}
}

// conversion is the state of one Convert call.
type conversion struct {
	log      *zap.Logger
	ctx      Context
	style    Style
	warnings []string
}

func (cv *conversion) warn(s utility.Style, msg string) {
	cv.log.Debug("Instruction dropped", zap.String("raw", s.Raw), zap.String("reason", msg))
	cv.warnings = append(cv.warnings, msg+": "+s.Raw)
}

// extra keeps an instruction the node model cannot express.
func (cv *conversion) extra(s utility.Style) {
	key := s.Property
	if s.Direction != "" {
		key += "-" + s.Direction
	}
	if cv.style.Extra == nil {
		cv.style.Extra = make(map[string]string)
	}
	cv.style.Extra[key] = s.CSSValue()
}

func ptr[T any](v T) *T {
	return &v
}
