package system

import (
	"github.com/milk9111/pinkball/ecs"
	"github.com/milk9111/pinkball/ecs/component"
	"github.com/milk9111/pinkball/prefabs"
)

// BoundsSystem handles the ball leaving the level: falling below the world
// costs a life and queues a respawn; horizontal travel is clamped.
type BoundsSystem struct{}

func NewBoundsSystem() *BoundsSystem { return &BoundsSystem{} }

func (s *BoundsSystem) Update(ctx *Context) {
	if ctx == nil || ctx.World == nil {
		return
	}
	w := ctx.World

	p, ok := findPlayer(w)
	if !ok || isPaused(w, p.Entity) {
		return
	}
	bounds := levelBounds(ctx)

	if p.T.Y > bounds.Height+p.B.Radius {
		ctx.LoseLife("fell")
		_ = ecs.Add(w, p.Entity, component.RespawnRequestComponent.Kind(), &component.RespawnRequest{})
	}

	if p.T.X < 0 {
		p.T.X = 0
	}
	if max := bounds.Width - p.B.Radius; p.T.X > max {
		p.T.X = max
	}
}

func levelBounds(ctx *Context) component.LevelBounds {
	if e, ok := ecs.First(ctx.World, component.LevelBoundsComponent.Kind()); ok {
		if b, ok := ecs.Get(ctx.World, e, component.LevelBoundsComponent.Kind()); ok {
			return *b
		}
	}
	game := ctx.Tuning.Game
	if game.WorldWidth == 0 {
		game = prefabs.DefaultGameSpec()
	}
	return component.LevelBounds{Width: game.WorldWidth, Height: game.WorldHeight}
}
