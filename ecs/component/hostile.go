package component

import "image/color"

type HostileVariant int

const (
	HostileBasic HostileVariant = iota
	// HostileAdvanced grants one extra life the first time it is stomped.
	HostileAdvanced
)

func (v HostileVariant) String() string {
	if v == HostileAdvanced {
		return "advanced"
	}
	return "basic"
}

// Patrol is a hopping enemy pacing a platform. Transform is its bottom-centre.
type Patrol struct {
	Size      float64
	Direction float64
	Speed     float64

	DY           float64
	Gravity      float64
	JumpStrength float64
	JumpInterval int
	Frame        int

	MinX   float64
	MaxX   float64
	Ground float64

	Active       bool
	Variant      HostileVariant
	HasGivenLife bool
	Color        color.RGBA
}

var PatrolComponent = NewComponent[Patrol]()
