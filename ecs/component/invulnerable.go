package component

// Invulnerable marks the ball as immune to contact damage. The player motion
// system counts Frames down once per update and removes the component at zero.
type Invulnerable struct {
	Frames int
}

var InvulnerableComponent = NewComponent[Invulnerable]()
