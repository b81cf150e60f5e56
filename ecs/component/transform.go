package component

// Transform is a world-space anchor. What the anchor means depends on the
// shape: circle centre for the ball, bottom-centre for hostiles, top-left for
// rectangles.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
