// Package common holds enumerations shared by configuration and the
// conversion packages. Keeping them here lets both sides import them without
// pulling configuration into the pipeline.
package common

// Output encoding of a converted design style.
// ENUM(json, yaml)
type OutputFormat int

func (o OutputFormat) Ext() string {
	switch o {
	case OutputFormatJson:
		return ".json"
	case OutputFormatYaml:
		return ".yaml"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

// Layout mode of the parent frame a node is placed into.
// ENUM(none, horizontal, vertical, grid)
type LayoutMode int

// IsAuto reports whether the parent frame lays out its children itself and
// therefore supports fill sizing.
func (l LayoutMode) IsAuto() bool {
	return l != LayoutModeNone
}

// How the dark variant is expressed in generated CSS.
// ENUM(media, class)
type DarkMode int
