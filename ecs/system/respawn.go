package system

import (
	"github.com/milk9111/pinkball/ecs"
	"github.com/milk9111/pinkball/ecs/component"
)

type RespawnSystem struct{}

func NewRespawnSystem() *RespawnSystem { return &RespawnSystem{} }

// Update moves any ball with a pending RespawnRequest back to its spawn
// point with zero vertical speed and a fresh jump count.
func (s *RespawnSystem) Update(ctx *Context) {
	if ctx == nil || ctx.World == nil {
		return
	}
	w := ctx.World

	ecs.ForEach(w, component.RespawnRequestComponent.Kind(), func(e ecs.Entity, _ *component.RespawnRequest) {
		defer ecs.Remove(w, e, component.RespawnRequestComponent.Kind())
		Respawn(w, e)
	})
}

// Respawn resets a ball in place. Horizontal speed is left alone; the next
// motion update recomputes it from input.
func Respawn(w *ecs.World, e ecs.Entity) {
	b, ok := ecs.Get(w, e, component.BallComponent.Kind())
	if !ok {
		return
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.X = b.SpawnX
		t.Y = b.SpawnY
	}
	if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
		v.DY = 0
	}
	b.JumpCount = 0
}
