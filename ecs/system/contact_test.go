package system

import (
	"testing"

	"github.com/milk9111/pinkball/ecs"
	"github.com/milk9111/pinkball/ecs/component"
	"github.com/milk9111/pinkball/ecs/entity"
	"github.com/milk9111/pinkball/levels"
	"github.com/milk9111/pinkball/prefabs"
)

func TestGeometryResolution(t *testing.T) {
	tests := []struct {
		name           string
		rect           levels.Rect
		x, y, dx, dy   float64
		wantX, wantY   float64
		wantDX, wantDY float64
	}{
		{
			name: "wall_from_left",
			rect: levels.Rect{X: 200, Y: 300, W: 20, H: 200, Kind: "wall"},
			x:    190, y: 400, dx: 5,
			wantX: 185, wantY: 400,
		},
		{
			name: "wall_from_right",
			rect: levels.Rect{X: 200, Y: 300, W: 20, H: 200, Kind: "wall"},
			x:    230, y: 400, dx: -5,
			wantX: 235, wantY: 400,
		},
		{
			name: "ceiling",
			rect: levels.Rect{X: 0, Y: 100, W: 400, H: 20, Kind: "platform"},
			x:    100, y: 130, dy: -5,
			wantX: 100, wantY: 135,
		},
		{
			name: "floor",
			rect: levels.Rect{X: 0, Y: 500, W: 400, H: 20, Kind: "platform"},
			x:    100, y: 487, dy: 2,
			wantX: 100, wantY: 485,
		},
		{
			name: "no_overlap",
			rect: levels.Rect{X: 0, Y: 500, W: 400, H: 20, Kind: "platform"},
			x:    100, y: 400, dx: 3, dy: 2,
			wantX: 100, wantY: 400, wantDX: 3, wantDY: 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx, _ := newTestContext(t)
			p := addBall(t, ctx, tc.x, tc.y)
			p.V.DX, p.V.DY = tc.dx, tc.dy
			addGeometry(t, ctx, tc.rect)

			NewContactSystem().Update(ctx)

			if p.T.X != tc.wantX || p.T.Y != tc.wantY {
				t.Fatalf("expected (%v, %v), got (%v, %v)", tc.wantX, tc.wantY, p.T.X, p.T.Y)
			}
			if p.V.DX != tc.wantDX || p.V.DY != tc.wantDY {
				t.Fatalf("expected velocity (%v, %v), got (%v, %v)", tc.wantDX, tc.wantDY, p.V.DX, p.V.DY)
			}
		})
	}
}

func TestSpikesIgnoreInvulnerability(t *testing.T) {
	ctx, _ := newTestContext(t)
	p := addBall(t, ctx, 100, 480)
	p.V.DY = 1
	_ = ecs.Add(ctx.World, p.Entity, component.InvulnerableComponent.Kind(), &component.Invulnerable{Frames: 60})
	addGeometry(t, ctx, levels.Rect{X: 80, Y: 490, W: 40, H: 20, Kind: "spike"})

	NewContactSystem().Update(ctx)

	if ctx.Lives.Value() != 6 {
		t.Fatalf("expected spike to cost a life, lives=%d", ctx.Lives.Value())
	}
	if p.T.Y != 475 {
		t.Fatalf("expected ball pushed onto the spike top, y=%v", p.T.Y)
	}
}

func addEnemy(t *testing.T, ctx *Context, variant string) (ecs.Entity, *component.Patrol) {
	t.Helper()
	e, err := entity.NewEnemy(ctx.World, prefabs.DefaultEnemySpec(), levels.Enemy{
		X: 300, Y: 400, JumpStrength: 6, JumpInterval: 80,
		Platform: levels.Rect{X: 200, Y: 400, W: 300, H: 20},
		Variant:  variant,
	})
	if err != nil {
		t.Fatalf("new enemy: %v", err)
	}
	return e, mustGet(t, ctx.World, e, component.PatrolComponent.Kind())
}

func TestStomp(t *testing.T) {
	tests := []struct {
		name      string
		variant   string
		wantLives int
	}{
		{"basic", "basic", 5},
		{"advanced_gives_life", "advanced", 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx, sounds := newTestContext(t)
			ctx.Lives.Lose()
			ctx.Lives.Lose()
			p := addBall(t, ctx, 300, 345)
			p.V.DY = 3
			_, enemy := addEnemy(t, ctx, tc.variant)

			NewContactSystem().Update(ctx)

			if enemy.Active {
				t.Fatal("stomped enemy still active")
			}
			if ctx.Score.Value() != 20 {
				t.Fatalf("expected 20 points, got %d", ctx.Score.Value())
			}
			if p.V.DY != p.B.JumpStrength {
				t.Fatalf("expected bounce %v, got %v", p.B.JumpStrength, p.V.DY)
			}
			if ctx.Lives.Value() != tc.wantLives {
				t.Fatalf("expected %d lives, got %d", tc.wantLives, ctx.Lives.Value())
			}
			if sounds.count(SoundStomp) != 1 {
				t.Fatal("expected stomp sound")
			}

			NewContactSystem().Update(ctx)
			if ctx.Score.Value() != 20 {
				t.Fatal("inactive enemy scored twice")
			}
		})
	}
}

func TestAdvancedEnemyGivesLifeOnce(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Lives.Lose()
	ctx.Lives.Lose()
	p := addBall(t, ctx, 300, 345)
	_, enemy := addEnemy(t, ctx, "advanced")

	for i := 0; i < 2; i++ {
		enemy.Active = true
		p.T.Y = 345
		p.V.DY = 3
		NewContactSystem().Update(ctx)
	}

	if ctx.Lives.Value() != 6 {
		t.Fatalf("expected one bonus life, lives=%d", ctx.Lives.Value())
	}
	if !enemy.HasGivenLife {
		t.Fatal("HasGivenLife not recorded")
	}
}

func TestEnemySideHitHurts(t *testing.T) {
	ctx, _ := newTestContext(t)
	p := addBall(t, ctx, 270, 390)
	_, enemy := addEnemy(t, ctx, "basic")

	NewContactSystem().Update(ctx)
	NewContactSystem().Update(ctx)

	if !enemy.Active {
		t.Fatal("side hit defeated the enemy")
	}
	if ctx.Lives.Value() != 6 {
		t.Fatalf("expected one life lost across the window, lives=%d", ctx.Lives.Value())
	}
	if !IsInvulnerable(ctx.World, p.Entity) {
		t.Fatal("expected invulnerability after the hit")
	}
}

func TestStarCollectedOnce(t *testing.T) {
	ctx, sounds := newTestContext(t)
	addBall(t, ctx, 100, 485)
	e, err := entity.NewStar(ctx.World, levels.Star{X: 110, Y: 480, Size: 20}, 10)
	if err != nil {
		t.Fatalf("new star: %v", err)
	}

	for i := 0; i < 3; i++ {
		NewContactSystem().Update(ctx)
	}

	if ctx.Score.Value() != 10 {
		t.Fatalf("expected 10 points, got %d", ctx.Score.Value())
	}
	if !mustGet(t, ctx.World, e, component.StarComponent.Kind()).Collected {
		t.Fatal("star not marked collected")
	}
	if sounds.count(SoundStar) != 1 {
		t.Fatalf("expected one star sound, got %d", sounds.count(SoundStar))
	}
}

func TestGoalRaisesEvent(t *testing.T) {
	tests := []struct {
		name   string
		hidden bool
		want   int
	}{
		{"visible_flag", false, 1},
		{"hidden_reward", true, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx, _ := newTestContext(t)
			addBall(t, ctx, 710, 450)
			if _, err := entity.NewGoal(ctx.World, levels.Rect{X: 700, Y: 420, W: 40, H: 80}, component.GoalFlag, tc.hidden); err != nil {
				t.Fatalf("new goal: %v", err)
			}

			NewContactSystem().Update(ctx)

			events := ctx.World.Events().Drain()
			if got := countEvents(events, EventGoalReached); got != tc.want {
				t.Fatalf("expected %d goal events, got %d", tc.want, got)
			}
			if tc.want > 0 && events[0].Data != component.GoalFlag {
				t.Fatalf("expected flag goal, got %v", events[0].Data)
			}
		})
	}
}

func TestContactSkipsPausedBall(t *testing.T) {
	ctx, _ := newTestContext(t)
	addBall(t, ctx, 100, 485)
	if _, err := entity.NewStar(ctx.World, levels.Star{X: 100, Y: 485, Size: 20}, 10); err != nil {
		t.Fatal(err)
	}
	PauseAll(ctx.World)
	NewContactSystem().Update(ctx)
	if ctx.Score.Value() != 0 {
		t.Fatal("paused contact pass scored")
	}
}
