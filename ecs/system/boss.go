package system

import (
	"math"

	"github.com/milk9111/pinkball/ecs"
	"github.com/milk9111/pinkball/ecs/component"
	"github.com/milk9111/pinkball/prefabs"
)

// BossSystem runs the boss state machine. It is not part of the regular
// schedule: the session calls it only while a level is in play.
//
// Phase 1 wanders between random targets. Phase 2 (any damage taken) mixes
// wandering with hops. Phase 3 (health at or below the enrage percentage)
// leaps constantly and fires rings of bullets.
type BossSystem struct{}

func NewBossSystem() *BossSystem { return &BossSystem{} }

func (s *BossSystem) Update(ctx *Context) {
	if ctx == nil || ctx.World == nil {
		return
	}
	w := ctx.World
	spec := ctx.Tuning.Boss

	ecs.ForEach2(w, component.BossComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, b *component.Boss, t *component.Transform) {
		if b.Health <= 0 || isPaused(w, e) {
			return
		}
		guard(ctx, "boss", e, func() {
			stepBoss(ctx, spec, e, b, t)
		})
	})
}

func stepBoss(ctx *Context, spec prefabs.BossSpec, e ecs.Entity, b *component.Boss, t *component.Transform) {
	b.DY += b.Gravity
	t.Y += b.DY
	if t.Y >= b.Ground {
		t.Y = b.Ground
		b.DY = 0
	}

	if prev := b.Phase; UpdateBossPhase(b, spec.EnragePercent) && prev != b.Phase {
		ctx.Logf("boss %s enters phase %d", e, b.Phase)
	}

	switch b.Phase {
	case 1:
		wander(ctx, spec, b, t)
	case 2:
		wanderOrHop(ctx, spec, b, t)
	default:
		leap(ctx, spec, b, t)
		fireRing(spec, b, t)
	}

	updateBullets(ctx, b)

	if b.JumpCooldown > 0 {
		b.JumpCooldown--
	}
}

// UpdateBossPhase raises the phase from current health; it never lowers it.
// Reports whether the phase changed.
func UpdateBossPhase(b *component.Boss, enragePercent float64) bool {
	if b.MaxHealth <= 0 {
		return false
	}
	before := b.Phase
	pct := float64(b.Health) / float64(b.MaxHealth) * 100
	if b.Phase < 2 && pct < 100 {
		b.Phase = 2
	}
	if b.Phase < 3 && pct <= enragePercent {
		b.Phase = 3
	}
	return b.Phase != before
}

func pickTarget(ctx *Context, b *component.Boss) {
	b.TargetX = b.ArenaMinX + ctx.Rand.Float64()*(b.ArenaMaxX-b.ArenaMinX)
	if b.TargetX < b.MinX {
		b.TargetX = b.MinX
	}
}

// seek moves toward TargetX and reports whether the boss has arrived.
func seek(spec prefabs.BossSpec, b *component.Boss, t *component.Transform, speed float64) bool {
	if math.Abs(t.X-b.TargetX) <= spec.ArriveTolerance {
		return true
	}
	if t.X < b.TargetX {
		t.X += speed
	} else {
		t.X -= speed
	}
	return false
}

func wander(ctx *Context, spec prefabs.BossSpec, b *component.Boss, t *component.Transform) {
	if b.BehaviorTimer <= 0 {
		pickTarget(ctx, b)
		b.BehaviorTimer = spec.PatrolFrames
	}
	if seek(spec, b, t, spec.PatrolSpeed+float64(b.Phase)) {
		b.BehaviorTimer--
	}
}

func wanderOrHop(ctx *Context, spec prefabs.BossSpec, b *component.Boss, t *component.Transform) {
	if b.BehaviorTimer <= 0 {
		if ctx.Rand.Float64() < 0.5 {
			pickTarget(ctx, b)
			b.BehaviorTimer = spec.PatrolFrames
		} else {
			if b.DY == 0 {
				b.DY = spec.HopSpeed
			}
			b.BehaviorTimer = spec.HopFrames
		}
	}
	if seek(spec, b, t, spec.HopMove+float64(b.Phase)) {
		b.BehaviorTimer--
	}
}

func leap(ctx *Context, spec prefabs.BossSpec, b *component.Boss, t *component.Transform) {
	if b.JumpCooldown <= 0 && b.DY == 0 {
		b.DY = spec.LeapSpeed
		if ctx.Rand.Float64() > 0.5 {
			b.Direction = 1
		} else {
			b.Direction = -1
		}
		b.JumpCooldown = spec.LeapCooldown
	}

	t.X += b.Direction * (spec.LeapMove + float64(b.Phase))
	if t.X <= b.ArenaMinX {
		t.X = b.ArenaMinX
		b.Direction = 1
	} else if t.X >= b.ArenaMaxX {
		t.X = b.ArenaMaxX
		b.Direction = -1
	}
	if t.X < b.MinX {
		t.X = b.MinX
	}
}

// ringDirections are the unit steps of a bullet ring: axes, then diagonals.
var ringDirections = [8][2]float64{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
}

func fireRing(spec prefabs.BossSpec, b *component.Boss, t *component.Transform) {
	if b.BulletCooldown > 0 {
		b.BulletCooldown--
		return
	}
	b.Bullets = append(b.Bullets, Ring(spec.Bullets, t.X, t.Y-b.Size/2)...)
	b.BulletCooldown = spec.Bullets.Cooldown
}

// Ring builds one volley of bullets centred on (x, y). Diagonals move
// Speed on each axis, matching the axis-aligned bullets component-wise.
func Ring(spec prefabs.BulletSpec, x, y float64) []component.Projectile {
	n := spec.Count
	if n <= 0 || n > len(ringDirections) {
		n = len(ringDirections)
	}
	out := make([]component.Projectile, 0, n)
	for _, d := range ringDirections[:n] {
		out = append(out, component.Projectile{
			X:      x,
			Y:      y,
			DX:     d[0] * spec.Speed,
			DY:     d[1] * spec.Speed,
			Radius: spec.Radius,
			Color:  spec.Color.RGBA,
			Active: true,
		})
	}
	return out
}

// damageBoss takes one point of health. On the killing blow the boss's
// reward is revealed standing on the arena floor below it.
func damageBoss(ctx *Context, e ecs.Entity, b *component.Boss, t *component.Transform) {
	if b.Health <= 0 {
		return
	}
	b.Health--
	ctx.Play(SoundBossHit)
	ctx.Logf("boss health: %d", b.Health)
	if b.Health > 0 || b.Defeated {
		return
	}

	b.Defeated = true
	b.Bullets = nil
	ctx.World.Events().Push(ecs.Event{Type: EventBossDefeated, Entity: e})

	reward := ecs.Entity(b.Reward)
	goal, ok := ecs.Get(ctx.World, reward, component.GoalComponent.Kind())
	if !ok {
		ctx.Logf("boss %s defeated without a reward entity", e)
		return
	}
	rt, ok := ecs.Get(ctx.World, reward, component.TransformComponent.Kind())
	if !ok {
		ctx.Logf("boss %s reward has no transform", e)
		return
	}
	rt.X = t.X
	rt.Y = b.Ground - goal.H
	goal.Hidden = false
	ctx.Logf("reward placed at (%.0f, %.0f)", rt.X, rt.Y)
}
