package system

import (
	"github.com/milk9111/pinkball/ecs"
	"github.com/milk9111/pinkball/ecs/component"
)

// HostileMotionSystem moves patrolling enemies: a hop every JumpInterval
// frames, constant horizontal pacing that reverses at the platform edges,
// and gravity down to the platform top.
type HostileMotionSystem struct{}

func NewHostileMotionSystem() *HostileMotionSystem { return &HostileMotionSystem{} }

func (s *HostileMotionSystem) Update(ctx *Context) {
	if ctx == nil || ctx.World == nil {
		return
	}
	w := ctx.World

	ecs.ForEach2(w, component.PatrolComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Patrol, t *component.Transform) {
		if !p.Active || isPaused(w, e) {
			return
		}
		guard(ctx, "hostile motion", e, func() {
			stepPatrol(p, t)
		})
	})
}

func stepPatrol(p *component.Patrol, t *component.Transform) {
	p.Frame++
	if p.Frame >= p.JumpInterval {
		p.DY = -p.JumpStrength
		p.Frame = 0
	}

	p.DY += p.Gravity
	t.Y += p.DY
	t.X += p.Direction * p.Speed

	half := p.Size / 2
	if t.X-half <= p.MinX {
		t.X = p.MinX + half
		p.Direction = 1
	}
	if t.X+half >= p.MaxX {
		t.X = p.MaxX - half
		p.Direction = -1
	}

	if t.Y > p.Ground {
		t.Y = p.Ground
		p.DY = 0
	}
}
