package component

// Actions gates which inputs the ball honours. The tutorial unlocks them one at a time.
type Actions struct {
	Right      bool
	Left       bool
	Jump       bool
	DoubleJump bool
}

// Action names used by hint specs.
const (
	ActionRight      = "right"
	ActionLeft       = "left"
	ActionJump       = "jump"
	ActionDoubleJump = "doubleJump"
)

// Allow enables a named action. Unknown names are ignored and reported.
func (a *Actions) Allow(name string) bool {
	switch name {
	case ActionRight:
		a.Right = true
	case ActionLeft:
		a.Left = true
	case ActionJump:
		a.Jump = true
	case ActionDoubleJump:
		a.DoubleJump = true
	default:
		return false
	}
	return true
}

func AllActions() Actions {
	return Actions{Right: true, Left: true, Jump: true, DoubleJump: true}
}

var ActionsComponent = NewComponent[Actions]()
