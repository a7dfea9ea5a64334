package utility

// Canonical property names produced by the parser. Most follow the CSS
// property in camelCase, the gradient stops, fontName and space are
// instructions with no direct CSS counterpart.
const (
	PropDisplay             = "display"
	PropPosition            = "position"
	PropVisibility          = "visibility"
	PropOverflow            = "overflow"
	PropBoxSizing           = "boxSizing"
	PropIsolation           = "isolation"
	PropPointerEvents       = "pointerEvents"
	PropUserSelect          = "userSelect"
	PropCursor              = "cursor"
	PropObjectFit           = "objectFit"
	PropFlexDirection       = "flexDirection"
	PropFlexWrap            = "flexWrap"
	PropFlex                = "flex"
	PropFlexGrow            = "flexGrow"
	PropFlexShrink          = "flexShrink"
	PropFlexBasis           = "flexBasis"
	PropAlignItems          = "alignItems"
	PropAlignContent        = "alignContent"
	PropAlignSelf           = "alignSelf"
	PropJustifyContent      = "justifyContent"
	PropGap                 = "gap"
	PropSpace               = "space"
	PropOrder               = "order"
	PropGridTemplateColumns = "gridTemplateColumns"
	PropGridTemplateRows    = "gridTemplateRows"
	PropGridColumn          = "gridColumn"
	PropGridRow             = "gridRow"
	PropAspectRatio         = "aspectRatio"

	PropPadding   = "padding"
	PropMargin    = "margin"
	PropWidth     = "width"
	PropHeight    = "height"
	PropMinWidth  = "minWidth"
	PropMinHeight = "minHeight"
	PropMaxWidth  = "maxWidth"
	PropMaxHeight = "maxHeight"
	PropSize      = "size"
	PropInset     = "inset"
	PropTop       = "top"
	PropRight     = "right"
	PropBottom    = "bottom"
	PropLeft      = "left"
	PropZIndex    = "zIndex"

	PropBackgroundColor     = "backgroundColor"
	PropBackgroundImage     = "backgroundImage"
	PropBackgroundSize      = "backgroundSize"
	PropBackgroundRepeat    = "backgroundRepeat"
	PropBackgroundPosition  = "backgroundPosition"
	PropBackgroundBlendMode = "backgroundBlendMode"
	PropGradientFrom        = "gradientFrom"
	PropGradientVia         = "gradientVia"
	PropGradientTo          = "gradientTo"
	PropMixBlendMode        = "mixBlendMode"

	PropColor               = "color"
	PropFontSize            = "fontSize"
	PropFontWeight          = "fontWeight"
	PropFontFamily          = "fontFamily"
	PropFontStyle           = "fontStyle"
	PropFontName            = "fontName"
	PropLineHeight          = "lineHeight"
	PropLetterSpacing       = "letterSpacing"
	PropTextAlign           = "textAlign"
	PropTextDecorationLine  = "textDecorationLine"
	PropTextDecorationColor = "textDecorationColor"
	PropTextTransform       = "textTransform"
	PropTextIndent          = "textIndent"
	PropWhiteSpace          = "whiteSpace"
	PropLineClamp           = "lineClamp"
	PropTextOverflow        = "textOverflow"

	PropBorderWidth  = "borderWidth"
	PropBorderColor  = "borderColor"
	PropBorderStyle  = "borderStyle"
	PropBorderRadius = "borderRadius"
	PropOutlineWidth = "outlineWidth"
	PropOutlineColor = "outlineColor"
	PropRingWidth    = "ringWidth"
	PropRingColor    = "ringColor"
	PropStroke       = "stroke"
	PropStrokeWidth  = "strokeWidth"
	PropFill         = "fill"

	PropOpacity         = "opacity"
	PropBoxShadow       = "boxShadow"
	PropShadowColor     = "shadowColor"
	PropBlur            = "blur"
	PropBackdropBlur    = "backdropBlur"
	PropRotate          = "rotate"
	PropScale           = "scale"
	PropTranslate       = "translate"
	PropSkew            = "skew"
	PropTransformOrigin = "transformOrigin"

	PropAnimation                = "animation"
	PropTransitionProperty       = "transitionProperty"
	PropTransitionDuration       = "transitionDuration"
	PropTransitionDelay          = "transitionDelay"
	PropTransitionTimingFunction = "transitionTimingFunction"
)
