package component

import "image/color"

// Boss runtime state. Transform is its bottom-centre.
type Boss struct {
	Size      float64
	Health    int
	MaxHealth int
	Phase     int

	DY      float64
	Gravity float64

	ArenaMinX float64
	ArenaMaxX float64
	Ground    float64
	// MinX keeps the boss away from the wall near the level start.
	MinX float64

	BehaviorTimer  int
	TargetX        float64
	Direction      float64
	JumpCooldown   int
	BulletCooldown int

	Bullets []Projectile

	Reward   uint64 // ecs.Entity of the goal placed on defeat
	Defeated bool
	Color    color.RGBA
}

var BossComponent = NewComponent[Boss]()

// Projectile is a boss bullet; it lives in the owning Boss, not as an entity.
type Projectile struct {
	X      float64
	Y      float64
	DX     float64
	DY     float64
	Radius float64
	Color  color.RGBA
	Active bool
}
