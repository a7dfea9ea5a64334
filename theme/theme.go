// Package theme provides design tokens: the color palette, spacing, radius,
// typography and breakpoint scales the parsers resolve named values against.
//
// A Theme is plain data. Parsers keep a reference to it and only read from it,
// so callers may swap themes between calls without any synchronization.
package theme

import (
	"bytes"
	_ "embed"
	"fmt"
	"maps"
	"strconv"
	"strings"
	"sync"

	yaml "gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultTheme []byte

// DefaultKey names the value used by bare utilities such as "rounded",
// "shadow" or "blur".
const DefaultKey = "DEFAULT"

type FontSize struct {
	Size       float64 `yaml:"size" toml:"size"`
	LineHeight float64 `yaml:"line_height,omitempty" toml:"line_height,omitempty"`
}

// Theme is a set of named design tokens. Lengths are in pixels.
type Theme struct {
	// SpacingUnit is the pixel size of one spacing step, used for numeric
	// spacing values absent from the Spacing table ("p-13" is 13 steps).
	SpacingUnit float64             `yaml:"spacing_unit" toml:"spacing_unit"`
	Colors      map[string]string   `yaml:"colors" toml:"colors"`
	Spacing     map[string]float64  `yaml:"spacing" toml:"spacing"`
	Breakpoints map[string]float64  `yaml:"breakpoints" toml:"breakpoints"`
	Containers  map[string]float64  `yaml:"containers" toml:"containers"`
	FontSize    map[string]FontSize `yaml:"font_size" toml:"font_size"`
	FontWeight  map[string]int      `yaml:"font_weight" toml:"font_weight"`
	FontFamily  map[string]string   `yaml:"font_family" toml:"font_family"`
	Radius      map[string]float64  `yaml:"radius" toml:"radius"`
	Shadow      map[string]string   `yaml:"shadow" toml:"shadow"`
	Blur        map[string]float64  `yaml:"blur" toml:"blur"`
	Tracking    map[string]float64  `yaml:"tracking" toml:"tracking"`
	Leading     map[string]float64  `yaml:"leading" toml:"leading"`
	Ease        map[string]string   `yaml:"ease" toml:"ease"`
}

var decodeDefault = sync.OnceValues(func() (*Theme, error) {
	t := &Theme{}
	if err := decodeYAML(defaultTheme, t); err != nil {
		return nil, fmt.Errorf("embedded theme is broken: %w", err)
	}
	return t, nil
})

// Default returns a fresh copy of the embedded default theme.
func Default() *Theme {
	t, err := decodeDefault()
	if err != nil {
		// embedded data is checked by tests, this should never happen
		panic(err)
	}
	return t.Clone()
}

// Clone returns a deep copy of the theme.
func (t *Theme) Clone() *Theme {
	return &Theme{
		SpacingUnit: t.SpacingUnit,
		Colors:      maps.Clone(t.Colors),
		Spacing:     maps.Clone(t.Spacing),
		Breakpoints: maps.Clone(t.Breakpoints),
		Containers:  maps.Clone(t.Containers),
		FontSize:    maps.Clone(t.FontSize),
		FontWeight:  maps.Clone(t.FontWeight),
		FontFamily:  maps.Clone(t.FontFamily),
		Radius:      maps.Clone(t.Radius),
		Shadow:      maps.Clone(t.Shadow),
		Blur:        maps.Clone(t.Blur),
		Tracking:    maps.Clone(t.Tracking),
		Leading:     maps.Clone(t.Leading),
		Ease:        maps.Clone(t.Ease),
	}
}

// Merge overlays every token defined in other on top of t.
func (t *Theme) Merge(other *Theme) {
	if other == nil {
		return
	}
	if other.SpacingUnit > 0 {
		t.SpacingUnit = other.SpacingUnit
	}
	t.Colors = overlay(t.Colors, other.Colors)
	t.Spacing = overlay(t.Spacing, other.Spacing)
	t.Breakpoints = overlay(t.Breakpoints, other.Breakpoints)
	t.Containers = overlay(t.Containers, other.Containers)
	t.FontSize = overlay(t.FontSize, other.FontSize)
	t.FontWeight = overlay(t.FontWeight, other.FontWeight)
	t.FontFamily = overlay(t.FontFamily, other.FontFamily)
	t.Radius = overlay(t.Radius, other.Radius)
	t.Shadow = overlay(t.Shadow, other.Shadow)
	t.Blur = overlay(t.Blur, other.Blur)
	t.Tracking = overlay(t.Tracking, other.Tracking)
	t.Leading = overlay(t.Leading, other.Leading)
	t.Ease = overlay(t.Ease, other.Ease)
}

func overlay[V any](dst, src map[string]V) map[string]V {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]V, len(src))
	}
	maps.Copy(dst, src)
	return dst
}

func (t *Theme) ColorValue(name string) (string, bool) {
	v, ok := t.Colors[name]
	return v, ok
}

// SpacingValue resolves a spacing token. Numbers that are multiples of a
// quarter step and missing from the table are computed from SpacingUnit.
func (t *Theme) SpacingValue(name string) (float64, bool) {
	if v, ok := t.Spacing[name]; ok {
		return v, true
	}
	if t.SpacingUnit <= 0 {
		return 0, false
	}
	n, err := strconv.ParseFloat(name, 64)
	if err != nil || n < 0 || n*4 != float64(int(n*4)) || strings.ContainsAny(name, "eE+") {
		return 0, false
	}
	return n * t.SpacingUnit, true
}

func (t *Theme) BreakpointValue(name string) (float64, bool) {
	v, ok := t.Breakpoints[name]
	return v, ok
}

func (t *Theme) ContainerValue(name string) (float64, bool) {
	v, ok := t.Containers[name]
	return v, ok
}

func (t *Theme) FontSizeValue(name string) (FontSize, bool) {
	v, ok := t.FontSize[name]
	return v, ok
}

func (t *Theme) FontWeightValue(name string) (int, bool) {
	v, ok := t.FontWeight[name]
	return v, ok
}

func (t *Theme) FontFamilyValue(name string) (string, bool) {
	v, ok := t.FontFamily[name]
	return v, ok
}

func (t *Theme) RadiusValue(name string) (float64, bool) {
	v, ok := t.Radius[name]
	return v, ok
}

func (t *Theme) ShadowValue(name string) (string, bool) {
	v, ok := t.Shadow[name]
	return v, ok
}

func (t *Theme) BlurValue(name string) (float64, bool) {
	v, ok := t.Blur[name]
	return v, ok
}

func (t *Theme) TrackingValue(name string) (float64, bool) {
	v, ok := t.Tracking[name]
	return v, ok
}

func (t *Theme) LeadingValue(name string) (float64, bool) {
	v, ok := t.Leading[name]
	return v, ok
}

func (t *Theme) EaseValue(name string) (string, bool) {
	v, ok := t.Ease[name]
	return v, ok
}

func decodeYAML(data []byte, t *Theme) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(t); err != nil {
		return fmt.Errorf("failed to decode theme data: %w", err)
	}
	return nil
}
