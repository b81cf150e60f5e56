package system

import (
	"math"

	"github.com/milk9111/pinkball/common"
	"github.com/milk9111/pinkball/ecs"
	"github.com/milk9111/pinkball/ecs/component"
)

// contactResolver handles one ContactKind against the ball. Each resolver is
// called at most once per entity per frame.
type contactResolver interface {
	resolve(ctx *Context, p playerRef, e ecs.Entity)
}

// ContactSystem walks every entity that opted into contact, in creation
// order, and dispatches on its ContactKind.
type ContactSystem struct {
	resolvers map[component.ContactKind]contactResolver
}

func NewContactSystem() *ContactSystem {
	return &ContactSystem{resolvers: map[component.ContactKind]contactResolver{
		component.ContactGeometry: geometryResolver{},
		component.ContactStomp:    stompResolver{},
		component.ContactCollect:  collectResolver{},
		component.ContactBoss:     bossResolver{},
		component.ContactGoal:     goalResolver{},
	}}
}

func (s *ContactSystem) Update(ctx *Context) {
	if ctx == nil || ctx.World == nil {
		return
	}
	w := ctx.World

	p, ok := findPlayer(w)
	if !ok || isPaused(w, p.Entity) {
		return
	}

	ecs.ForEach(w, component.ContactComponent.Kind(), func(e ecs.Entity, c *component.Contact) {
		if e == p.Entity {
			return
		}
		r, ok := s.resolvers[c.Kind]
		if !ok {
			ctx.Logf("contact: entity %s has unhandled kind %s", e, c.Kind)
			return
		}
		guard(ctx, "contact "+c.Kind.String(), e, func() {
			r.resolve(ctx, p, e)
		})
	})
}

type geometryResolver struct{}

// resolve pushes the ball out of a rectangle one axis at a time. Only the
// side the ball is moving into is resolved, so a ball resting on a platform
// is not shoved sideways when it brushes an edge.
func (geometryResolver) resolve(ctx *Context, p playerRef, e ecs.Entity) {
	w := ctx.World
	g, ok := ecs.Get(w, e, component.GeometryComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}

	r := p.B.Radius
	left, top := t.X, t.Y
	right, bottom := t.X+g.W, t.Y+g.H

	if !common.Overlaps(p.box(), common.RectBB(t.X, t.Y, g.W, g.H)) {
		return
	}

	if p.T.Y+r > top && p.T.Y-r < bottom {
		if p.T.X+r > left && p.T.X < left && p.V.DX > 0 {
			p.T.X = left - r
			p.V.DX = 0
		}
		if p.T.X-r < right && p.T.X > right && p.V.DX < 0 {
			p.T.X = right + r
			p.V.DX = 0
		}
	}

	if p.T.X+r > left && p.T.X-r < right {
		if p.T.Y+r > top && p.T.Y < top && p.V.DY > 0 {
			p.T.Y = top - r
			p.V.DY = 0
			p.B.JumpCount = 0
		}
		if p.T.Y-r < bottom && p.T.Y > bottom && p.V.DY < 0 {
			p.T.Y = bottom + r
			p.V.DY = 0
		}
	}

	if g.Kind == component.GeometrySpike {
		ctx.LoseLife("spike")
	}
}

type stompResolver struct{}

// resolve is shared by both hostile variants. Landing on the top edge while
// falling defeats the enemy; any other overlap hurts the ball.
func (stompResolver) resolve(ctx *Context, p playerRef, e ecs.Entity) {
	w := ctx.World
	enemy, ok := ecs.Get(w, e, component.PatrolComponent.Kind())
	if !ok || !enemy.Active {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}

	ball := p.box()
	body := common.FootBB(t.X, t.Y, enemy.Size)
	horizontal := ball.R > body.L && ball.L < body.R

	if horizontal && ball.T > body.B && ball.B < body.B && p.V.DY > 0 {
		enemy.Active = false
		p.V.DY = p.B.JumpStrength
		ctx.AddScore(ctx.Tuning.Game.EnemyPoints)
		ctx.Play(SoundStomp)
		if enemy.Variant == component.HostileAdvanced && !enemy.HasGivenLife {
			enemy.HasGivenLife = true
			ctx.GainLife()
		}
		return
	}

	if common.Overlaps(ball, body) {
		hurt(ctx, p, enemy.Variant.String()+" enemy")
	}
}

type collectResolver struct{}

func (collectResolver) resolve(ctx *Context, p playerRef, e ecs.Entity) {
	w := ctx.World
	star, ok := ecs.Get(w, e, component.StarComponent.Kind())
	if !ok || star.Collected {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}

	reach := p.B.Radius + star.Size/2
	if math.Abs(p.T.X-t.X) < reach && math.Abs(p.T.Y-t.Y) < reach {
		star.Collected = true
		ctx.AddScore(star.Points)
		ctx.Play(SoundStar)
	}
}

type bossResolver struct{}

// resolve lets a falling ball stomp the boss for one point of damage. The
// ball is lifted clear of the boss so the bounce cannot register as a side
// hit on the next frame.
func (bossResolver) resolve(ctx *Context, p playerRef, e ecs.Entity) {
	w := ctx.World
	boss, ok := ecs.Get(w, e, component.BossComponent.Kind())
	if !ok || boss.Health <= 0 {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}

	body := common.FootBB(t.X, t.Y, boss.Size)
	if !common.Overlaps(p.box(), body) {
		return
	}

	if p.V.DY > 0 {
		damageBoss(ctx, e, boss, t)
		p.V.DY = p.B.JumpStrength
		p.T.Y = math.Min(p.T.Y, body.B-p.B.Radius)
		return
	}
	hurt(ctx, p, "boss")
}

type goalResolver struct{}

func (goalResolver) resolve(ctx *Context, p playerRef, e ecs.Entity) {
	w := ctx.World
	goal, ok := ecs.Get(w, e, component.GoalComponent.Kind())
	if !ok || goal.Hidden {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	if common.Overlaps(p.box(), common.RectBB(t.X, t.Y, goal.W, goal.H)) {
		w.Events().Push(ecs.Event{Type: EventGoalReached, Entity: e, Data: goal.Kind})
	}
}
