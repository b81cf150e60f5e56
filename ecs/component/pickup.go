package component

import "image/color"

// Star is a collectible centred on its Transform.
type Star struct {
	Size      float64
	Points    int
	Color     color.RGBA
	Collected bool
}

var StarComponent = NewComponent[Star]()
