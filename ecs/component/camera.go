package component

// Camera scrolls horizontally only. X is the world x drawn at the left screen edge.
type Camera struct {
	X           float64
	ViewWidth   float64
	WorldWidth  float64
	TargetEntID uint64 // ecs.Entity being followed; zero follows the ball
}

var CameraComponent = NewComponent[Camera]()
