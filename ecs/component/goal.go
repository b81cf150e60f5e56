package component

import "image/color"

type GoalKind string

const (
	GoalFlag   GoalKind = "flag"
	GoalReward GoalKind = "reward"
)

// Goal is a rectangle (Transform is top-left) that ends the level on contact.
// A reward starts Hidden off-screen and is revealed by the boss on defeat.
type Goal struct {
	W      float64
	H      float64
	Kind   GoalKind
	Hidden bool
	Color  color.RGBA
}

var GoalComponent = NewComponent[Goal]()
