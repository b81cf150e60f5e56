package common

// Logical canvas size. Both frontends lay out against this and scale.
const (
	BaseWidth  = 800
	BaseHeight = 600
)
