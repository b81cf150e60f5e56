package component

// ContactKind is the closed set of ways an entity can interact with the ball.
type ContactKind int

const (
	ContactGeometry ContactKind = iota
	ContactStomp
	ContactCollect
	ContactBoss
	ContactGoal
)

func (k ContactKind) String() string {
	switch k {
	case ContactGeometry:
		return "geometry"
	case ContactStomp:
		return "stomp"
	case ContactCollect:
		return "collect"
	case ContactBoss:
		return "boss"
	case ContactGoal:
		return "goal"
	}
	return "unknown"
}

// Contact opts an entity into the ball's contact pass.
type Contact struct {
	Kind ContactKind
}

var ContactComponent = NewComponent[Contact]()
