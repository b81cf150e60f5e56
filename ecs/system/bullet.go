package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pinkball/common"
	"github.com/milk9111/pinkball/ecs"
	"github.com/milk9111/pinkball/ecs/component"
)

// bulletHits is a circle-circle test between a bullet and the ball.
func bulletHits(b component.Projectile, p playerRef) bool {
	return common.CirclesOverlap(cp.Vector{X: b.X, Y: b.Y}, b.Radius, p.center(), p.B.Radius)
}

func bulletInBounds(b component.Projectile, width, height float64) bool {
	return b.X >= 0 && b.X <= width && b.Y >= 0 && b.Y <= height
}

// updateBullets advances every bullet, retires those that left the world or
// hit the ball, and drops retired bullets from the slice.
func updateBullets(ctx *Context, b *component.Boss) {
	if len(b.Bullets) == 0 {
		return
	}
	bounds := levelBounds(ctx)
	p, havePlayer := findPlayer(ctx.World)

	for i := range b.Bullets {
		bullet := &b.Bullets[i]
		if !bullet.Active {
			continue
		}
		bullet.X += bullet.DX
		bullet.Y += bullet.DY
		if !bulletInBounds(*bullet, bounds.Width, bounds.Height) {
			bullet.Active = false
			continue
		}
		if havePlayer && bulletHits(*bullet, p) {
			bullet.Active = false
			hurt(ctx, p, "bullet")
		}
	}
	b.Bullets = activeBullets(b.Bullets)
}

// CheckBulletCollisions is the second, stricter bullet pass run after the
// boss update. Any live bullet still touching the ball costs a life whether
// or not the ball is invulnerable, and is removed.
func CheckBulletCollisions(ctx *Context) {
	if ctx == nil || ctx.World == nil {
		return
	}
	p, ok := findPlayer(ctx.World)
	if !ok {
		return
	}
	ecs.ForEach(ctx.World, component.BossComponent.Kind(), func(e ecs.Entity, b *component.Boss) {
		if len(b.Bullets) == 0 {
			return
		}
		for i := range b.Bullets {
			bullet := &b.Bullets[i]
			if bullet.Active && bulletHits(*bullet, p) {
				bullet.Active = false
				ctx.LoseLife("bullet")
			}
		}
		b.Bullets = activeBullets(b.Bullets)
	})
}

func activeBullets(bullets []component.Projectile) []component.Projectile {
	kept := bullets[:0]
	for _, b := range bullets {
		if b.Active {
			kept = append(kept, b)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}
