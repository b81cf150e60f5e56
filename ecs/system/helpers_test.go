package system

import (
	"io"
	"log"
	"testing"

	"github.com/milk9111/pinkball/ecs"
	"github.com/milk9111/pinkball/ecs/component"
	"github.com/milk9111/pinkball/ecs/entity"
	"github.com/milk9111/pinkball/levels"
	"github.com/milk9111/pinkball/prefabs"
)

type fakeSounds struct {
	played []string
	music  int
}

func (f *fakeSounds) Play(name string) { f.played = append(f.played, name) }
func (f *fakeSounds) StartMusic()      { f.music++ }

func (f *fakeSounds) count(name string) int {
	n := 0
	for _, p := range f.played {
		if p == name {
			n++
		}
	}
	return n
}

func newTestContext(t *testing.T) (*Context, *fakeSounds) {
	t.Helper()
	w := ecs.NewWorld()
	ctx := NewContext(w, DefaultTuning(), 1)
	ctx.Log = log.New(io.Discard, "", 0)
	sounds := &fakeSounds{}
	ctx.Sounds = sounds
	return ctx, sounds
}

func addBall(t *testing.T, ctx *Context, x, y float64) playerRef {
	t.Helper()
	if _, err := entity.NewBall(ctx.World, prefabs.DefaultBallSpec(), x, y); err != nil {
		t.Fatalf("new ball: %v", err)
	}
	p, ok := findPlayer(ctx.World)
	if !ok {
		t.Fatal("ball not found")
	}
	return p
}

func addGeometry(t *testing.T, ctx *Context, r levels.Rect) ecs.Entity {
	t.Helper()
	e, err := entity.NewGeometry(ctx.World, r)
	if err != nil {
		t.Fatalf("new geometry: %v", err)
	}
	return e
}

func mustGet[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, kind)
	if !ok {
		t.Fatalf("entity %v missing %s", e, kind.Name())
	}
	return v
}

func countEvents(events []ecs.Event, typ ecs.EventType) int {
	n := 0
	for _, evt := range events {
		if evt.Type == typ {
			n++
		}
	}
	return n
}

// step runs the ball's motion and contact passes once.
func step(ctx *Context, in component.Input) {
	ctx.Input = in
	NewInputSystem().Update(ctx)
	NewPlayerMotionSystem().Update(ctx)
	NewContactSystem().Update(ctx)
}
