package component

import "image/color"

type GeometryKind string

const (
	GeometryPlatform GeometryKind = "platform"
	GeometrySpike    GeometryKind = "spike"
	GeometryWall     GeometryKind = "wall"
)

// Geometry is a static rectangle; Transform holds its top-left corner.
type Geometry struct {
	W     float64
	H     float64
	Kind  GeometryKind
	Color color.RGBA
}

var GeometryComponent = NewComponent[Geometry]()
