package component

import "image/color"

// Ball is the player. JumpStrength is negative (screen y grows downward).
type Ball struct {
	Radius       float64
	Gravity      float64
	JumpStrength float64
	MoveSpeed    float64
	MaxJumps     int
	JumpCount    int

	SpawnX float64
	SpawnY float64

	Fill   color.RGBA
	Border color.RGBA

	// Interacted flips on the first movement input and starts the music.
	Interacted bool
}

var BallComponent = NewComponent[Ball]()
