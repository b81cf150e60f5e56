package system

import (
	"testing"

	"github.com/milk9111/pinkball/ecs"
	"github.com/milk9111/pinkball/ecs/component"
	"github.com/milk9111/pinkball/ecs/entity"
	"github.com/milk9111/pinkball/levels"
	"github.com/milk9111/pinkball/prefabs"
)

var testArena = levels.Rect{X: 0, Y: 400, W: 1000, H: 20}

func addBoss(t *testing.T, ctx *Context, reward ecs.Entity) (ecs.Entity, *component.Boss, *component.Transform) {
	t.Helper()
	e, err := entity.NewBoss(ctx.World, prefabs.DefaultBossSpec(), levels.Boss{X: 700, Y: 400, Arena: testArena}, reward)
	if err != nil {
		t.Fatalf("new boss: %v", err)
	}
	return e,
		mustGet(t, ctx.World, e, component.BossComponent.Kind()),
		mustGet(t, ctx.World, e, component.TransformComponent.Kind())
}

func TestUpdateBossPhase(t *testing.T) {
	tests := []struct {
		name      string
		health    int
		start     int
		wantPhase int
	}{
		{"full_health", 15, 1, 1},
		{"first_damage", 14, 1, 2},
		{"above_enrage", 5, 1, 2},
		{"at_or_below_enrage", 4, 1, 3},
		{"never_lowers", 15, 3, 3},
		{"phase_two_holds_at_full", 15, 2, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := &component.Boss{Health: tc.health, MaxHealth: 15, Phase: tc.start}
			UpdateBossPhase(b, 30)
			if b.Phase != tc.wantPhase {
				t.Fatalf("expected phase %d, got %d", tc.wantPhase, b.Phase)
			}
		})
	}

	if UpdateBossPhase(&component.Boss{Phase: 1}, 30) {
		t.Fatal("boss without max health must not change phase")
	}
}

func TestBossDefeatedAfterFifteenStomps(t *testing.T) {
	ctx, sounds := newTestContext(t)
	p := addBall(t, ctx, 700, 290)
	reward, err := entity.NewGoal(ctx.World, levels.Rect{X: -100, Y: -100, W: 50, H: 50}, component.GoalReward, true)
	if err != nil {
		t.Fatalf("new reward: %v", err)
	}
	bossEnt, boss, _ := addBoss(t, ctx, reward)

	var events []ecs.Event
	for i := 0; i < 16; i++ {
		p.T.Y = 290
		p.V.DY = 2
		NewContactSystem().Update(ctx)
		events = append(events, ctx.World.Events().Drain()...)
	}

	if boss.Health != 0 || !boss.Defeated {
		t.Fatalf("expected defeated boss, health=%d defeated=%v", boss.Health, boss.Defeated)
	}
	if got := countEvents(events, EventBossDefeated); got != 1 {
		t.Fatalf("expected one defeat event, got %d", got)
	}
	if got := sounds.count(SoundBossHit); got != 15 {
		t.Fatalf("expected 15 hit sounds, got %d", got)
	}
	if ctx.Lives.Value() != 7 {
		t.Fatalf("stomping cost lives: %d", ctx.Lives.Value())
	}

	goal := mustGet(t, ctx.World, reward, component.GoalComponent.Kind())
	rt := mustGet(t, ctx.World, reward, component.TransformComponent.Kind())
	if goal.Hidden {
		t.Fatal("reward still hidden")
	}
	if rt.X != 700 || rt.Y != 350 {
		t.Fatalf("expected reward at (700, 350), got (%v, %v)", rt.X, rt.Y)
	}

	bt := mustGet(t, ctx.World, bossEnt, component.TransformComponent.Kind())
	x := bt.X
	NewBossSystem().Update(ctx)
	if bt.X != x {
		t.Fatal("defeated boss kept moving")
	}
}

func TestBossSideContactHurts(t *testing.T) {
	ctx, _ := newTestContext(t)
	p := addBall(t, ctx, 640, 380)
	_, boss, _ := addBoss(t, ctx, 0)

	NewContactSystem().Update(ctx)

	if boss.Health != boss.MaxHealth {
		t.Fatal("side contact damaged the boss")
	}
	if ctx.Lives.Value() != 6 {
		t.Fatalf("expected one life lost, got %d", ctx.Lives.Value())
	}
	if !IsInvulnerable(ctx.World, p.Entity) {
		t.Fatal("expected invulnerability")
	}
}

func TestBossWandersInPhaseOne(t *testing.T) {
	ctx, _ := newTestContext(t)
	_, boss, bt := addBoss(t, ctx, 0)

	NewBossSystem().Update(ctx)

	if boss.Phase != 1 {
		t.Fatalf("expected phase 1, got %d", boss.Phase)
	}
	if boss.TargetX < boss.MinX || boss.TargetX > boss.ArenaMaxX {
		t.Fatalf("target %v outside [%v, %v]", boss.TargetX, boss.MinX, boss.ArenaMaxX)
	}
	if d := bt.X - 700; d > 3 || d < -3 {
		t.Fatalf("expected a step of at most 3, moved %v", d)
	}
	if bt.Y != 400 {
		t.Fatalf("boss left the ground: y=%v", bt.Y)
	}
	if len(boss.Bullets) != 0 {
		t.Fatal("phase 1 boss fired")
	}
}

func TestBossEnragedLeapsAndFires(t *testing.T) {
	ctx, _ := newTestContext(t)
	_, boss, bt := addBoss(t, ctx, 0)
	boss.Health = 4

	NewBossSystem().Update(ctx)

	if boss.Phase != 3 {
		t.Fatalf("expected phase 3, got %d", boss.Phase)
	}
	if boss.DY != prefabs.DefaultBossSpec().LeapSpeed {
		t.Fatalf("expected leap speed, got %v", boss.DY)
	}
	if len(boss.Bullets) != 8 {
		t.Fatalf("expected a ring of 8 bullets, got %d", len(boss.Bullets))
	}
	if boss.BulletCooldown != prefabs.DefaultBossSpec().Bullets.Cooldown {
		t.Fatalf("expected bullet cooldown reset, got %d", boss.BulletCooldown)
	}
	if bt.X < boss.MinX || bt.X > boss.ArenaMaxX {
		t.Fatalf("boss left the arena: x=%v", bt.X)
	}
}

func TestPausedBossHolds(t *testing.T) {
	ctx, _ := newTestContext(t)
	_, boss, bt := addBoss(t, ctx, 0)
	boss.Health = 4
	PauseAll(ctx.World)

	NewBossSystem().Update(ctx)

	if bt.X != 700 || len(boss.Bullets) != 0 || boss.Phase != 1 {
		t.Fatalf("paused boss acted: x=%v bullets=%d phase=%d", bt.X, len(boss.Bullets), boss.Phase)
	}
}

func TestRing(t *testing.T) {
	spec := prefabs.DefaultBossSpec().Bullets

	tests := []struct {
		name  string
		count int
		want  int
	}{
		{"default", 8, 8},
		{"axes_only", 4, 4},
		{"zero_means_full", 0, 8},
		{"capped", 12, 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec.Count = tc.count
			ring := Ring(spec, 10, 20)
			if len(ring) != tc.want {
				t.Fatalf("expected %d bullets, got %d", tc.want, len(ring))
			}
			seen := map[[2]float64]bool{}
			for _, b := range ring {
				if !b.Active || b.X != 10 || b.Y != 20 || b.Radius != spec.Radius {
					t.Fatalf("bad bullet %+v", b)
				}
				dir := [2]float64{b.DX, b.DY}
				if seen[dir] {
					t.Fatalf("duplicate direction %v", dir)
				}
				seen[dir] = true
			}
		})
	}

	diag := Ring(prefabs.DefaultBossSpec().Bullets, 0, 0)[4]
	if diag.DX != 5 || diag.DY != 5 {
		t.Fatalf("expected diagonal (5, 5), got (%v, %v)", diag.DX, diag.DY)
	}
}

func TestBulletsLeaveBounds(t *testing.T) {
	ctx, _ := newTestContext(t)
	b := &component.Boss{Bullets: []component.Projectile{
		{X: 2, Y: 100, DX: -5, Radius: 10, Active: true},
		{X: 100, Y: 100, DX: 5, Radius: 10, Active: true},
	}}

	updateBullets(ctx, b)
	if len(b.Bullets) != 1 || b.Bullets[0].X != 105 {
		t.Fatalf("expected one bullet at x=105, got %+v", b.Bullets)
	}

	if _, err := entity.NewBounds(ctx.World, 108, 600); err != nil {
		t.Fatal(err)
	}
	updateBullets(ctx, b)
	if b.Bullets != nil {
		t.Fatalf("expected all bullets retired, got %+v", b.Bullets)
	}
}

func TestBulletHitCostsOneLife(t *testing.T) {
	ctx, _ := newTestContext(t)
	addBall(t, ctx, 500, 300)
	_, boss, _ := addBoss(t, ctx, 0)
	boss.Bullets = []component.Projectile{{X: 495, Y: 300, DX: 5, Radius: 10, Active: true}}

	NewBossSystem().Update(ctx)
	CheckBulletCollisions(ctx)

	if ctx.Lives.Value() != 6 {
		t.Fatalf("expected exactly one life lost, lives=%d", ctx.Lives.Value())
	}
	if len(boss.Bullets) != 0 {
		t.Fatalf("hit bullet not removed: %+v", boss.Bullets)
	}
}

func TestCheckBulletCollisionsIgnoresInvulnerability(t *testing.T) {
	ctx, _ := newTestContext(t)
	p := addBall(t, ctx, 500, 300)
	_ = ecs.Add(ctx.World, p.Entity, component.InvulnerableComponent.Kind(), &component.Invulnerable{Frames: 60})
	_, boss, _ := addBoss(t, ctx, 0)
	boss.Bullets = []component.Projectile{
		{X: 500, Y: 300, Radius: 10, Active: true},
		{X: 100, Y: 100, Radius: 10, Active: true},
	}

	CheckBulletCollisions(ctx)
	CheckBulletCollisions(ctx)

	if ctx.Lives.Value() != 6 {
		t.Fatalf("expected one life lost, lives=%d", ctx.Lives.Value())
	}
	if len(boss.Bullets) != 1 {
		t.Fatalf("expected the distant bullet to survive, got %+v", boss.Bullets)
	}
}

func TestNewBossRejectsZeroHealth(t *testing.T) {
	ctx, _ := newTestContext(t)
	spec := prefabs.DefaultBossSpec()
	spec.Health = 0
	if _, err := entity.NewBoss(ctx.World, spec, levels.Boss{X: 1, Y: 1, Arena: testArena}, 0); err == nil {
		t.Fatal("expected error for a boss without health")
	}
}

func TestBulletHitsAreCircular(t *testing.T) {
	tests := []struct {
		name      string
		bx, by    float64
		wantLives int
		wantLeft  int
	}{
		// Boxes overlap at (122,322) but the centres are ~31.1 apart, more than 15+10.
		{"diagonal_near_miss", 122, 322, 7, 1},
		{"diagonal_overlap", 115, 315, 6, 0},
		{"straight_overlap", 124, 300, 6, 0},
		{"straight_touching", 125, 300, 7, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name+"/check", func(t *testing.T) {
			ctx, _ := newTestContext(t)
			addBall(t, ctx, 100, 300)
			_, boss, _ := addBoss(t, ctx, 0)
			boss.Bullets = []component.Projectile{{X: tc.bx, Y: tc.by, Radius: 10, Active: true}}

			CheckBulletCollisions(ctx)

			if ctx.Lives.Value() != tc.wantLives {
				t.Fatalf("expected %d lives, got %d", tc.wantLives, ctx.Lives.Value())
			}
			if len(boss.Bullets) != tc.wantLeft {
				t.Fatalf("expected %d bullets left, got %+v", tc.wantLeft, boss.Bullets)
			}
		})
		t.Run(tc.name+"/update", func(t *testing.T) {
			ctx, _ := newTestContext(t)
			addBall(t, ctx, 100, 300)
			b := &component.Boss{Bullets: []component.Projectile{{X: tc.bx, Y: tc.by, Radius: 10, Active: true}}}

			updateBullets(ctx, b)

			if ctx.Lives.Value() != tc.wantLives {
				t.Fatalf("expected %d lives, got %d", tc.wantLives, ctx.Lives.Value())
			}
			if len(b.Bullets) != tc.wantLeft {
				t.Fatalf("expected %d bullets left, got %+v", tc.wantLeft, b.Bullets)
			}
		})
	}
}
