package component

// RespawnRequest asks the respawn system to put the ball back on its spawn
// point with no velocity and no jumps used.
type RespawnRequest struct{}

var RespawnRequestComponent = NewComponent[RespawnRequest]()
