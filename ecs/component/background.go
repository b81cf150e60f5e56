package component

import "image/color"

// Background is a parallax backdrop drawn first. Offset is recomputed from
// the camera each frame and wraps at the view width.
type Background struct {
	Sky    color.RGBA
	Hills  color.RGBA
	Speed  float64
	Offset float64
}

var BackgroundComponent = NewComponent[Background]()
