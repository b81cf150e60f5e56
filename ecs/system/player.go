package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pinkball/common"
	"github.com/milk9111/pinkball/ecs"
	"github.com/milk9111/pinkball/ecs/component"
)

// playerRef gathers the ball's components so contact code can mutate them directly.
type playerRef struct {
	Entity ecs.Entity
	T      *component.Transform
	V      *component.Velocity
	B      *component.Ball
}

func findPlayer(w *ecs.World) (playerRef, bool) {
	e, ok := ecs.First(w, component.BallComponent.Kind())
	if !ok {
		return playerRef{}, false
	}
	t, tok := ecs.Get(w, e, component.TransformComponent.Kind())
	v, vok := ecs.Get(w, e, component.VelocityComponent.Kind())
	b, bok := ecs.Get(w, e, component.BallComponent.Kind())
	if !tok || !vok || !bok {
		return playerRef{}, false
	}
	return playerRef{Entity: e, T: t, V: v, B: b}, true
}

func (p playerRef) box() cp.BB {
	return common.CircleBB(p.T.X, p.T.Y, p.B.Radius)
}

func (p playerRef) center() cp.Vector {
	return cp.Vector{X: p.T.X, Y: p.T.Y}
}

// IsInvulnerable reports whether the ball is inside its post-hit window.
func IsInvulnerable(w *ecs.World, e ecs.Entity) bool {
	return ecs.Has(w, e, component.InvulnerableComponent.Kind())
}

// hurt costs a life unless the ball is invulnerable, then opens the window.
func hurt(ctx *Context, p playerRef, reason string) bool {
	if IsInvulnerable(ctx.World, p.Entity) {
		return false
	}
	ctx.LoseLife(reason)
	_ = ecs.Add(ctx.World, p.Entity, component.InvulnerableComponent.Kind(), &component.Invulnerable{Frames: ctx.Tuning.Game.InvulnerableFrames})
	return true
}
