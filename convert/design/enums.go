package design

// Kind of a paint layer.
// ENUM(solid, gradient-linear, gradient-radial, gradient-angular, image)
type PaintType int

// Kind of a visual effect.
// ENUM(drop-shadow, inner-shadow, layer-blur, background-blur)
type EffectType int

// How a node is sized along one axis.
// ENUM(fixed, hug, fill)
type Sizing int
