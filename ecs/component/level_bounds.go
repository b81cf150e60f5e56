package component

// LevelBounds is the playable extent. The ball respawns when it falls past
// Height plus its radius and is clamped to [0, Width-radius] horizontally.
// Projectiles die outside [0, Width] x [0, Height].
type LevelBounds struct {
	Width  float64
	Height float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
