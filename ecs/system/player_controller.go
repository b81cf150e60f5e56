package system

import (
	"github.com/milk9111/pinkball/ecs"
	"github.com/milk9111/pinkball/ecs/component"
)

// PlayerMotionSystem applies input, gravity and integration to the ball and
// ticks its invulnerability window. Collision happens afterwards in the
// contact pass.
type PlayerMotionSystem struct{}

func NewPlayerMotionSystem() *PlayerMotionSystem { return &PlayerMotionSystem{} }

func (s *PlayerMotionSystem) Update(ctx *Context) {
	if ctx == nil || ctx.World == nil {
		return
	}
	w := ctx.World

	p, ok := findPlayer(w)
	if !ok || isPaused(w, p.Entity) {
		return
	}

	var in component.Input
	if got, ok := ecs.Get(w, p.Entity, component.InputComponent.Kind()); ok {
		in = *got
	}
	var actions component.Actions
	if got, ok := ecs.Get(w, p.Entity, component.ActionsComponent.Kind()); ok {
		actions = *got
	}

	if !p.B.Interacted && in.Moving() {
		p.B.Interacted = true
		ctx.StartMusic()
	}

	switch {
	case in.Right && actions.Right:
		p.V.DX = p.B.MoveSpeed
	case in.Left && actions.Left:
		p.V.DX = -p.B.MoveSpeed
	default:
		p.V.DX = 0
	}

	if in.Jump && canJump(actions, p.B) {
		p.V.DY = p.B.JumpStrength
		p.B.JumpCount++
		ctx.Play(SoundJump)
	}

	p.V.DY += p.B.Gravity
	p.T.X += p.V.DX
	p.T.Y += p.V.DY

	if inv, ok := ecs.Get(w, p.Entity, component.InvulnerableComponent.Kind()); ok {
		inv.Frames--
		if inv.Frames <= 0 {
			ecs.Remove(w, p.Entity, component.InvulnerableComponent.Kind())
		}
	}
}

// canJump allows the first jump with the jump action and any further air
// jump only once the double jump is unlocked.
func canJump(actions component.Actions, b *component.Ball) bool {
	if !actions.Jump || b.JumpCount >= b.MaxJumps {
		return false
	}
	return b.JumpCount == 0 || actions.DoubleJump
}
