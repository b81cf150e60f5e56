package render

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pinkball/ecs"
	"github.com/milk9111/pinkball/ecs/component"
	"github.com/milk9111/pinkball/ecs/system"
	"golang.org/x/image/colornames"
)

var (
	hurtTint     = color.RGBA{R: 255, A: 128}
	flagPole     = colornames.Black
	rewardAccent = colornames.White
)

// DrawWorld draws every entity with a render layer, lowest layer first and
// creation order within a layer, shifted left by the camera.
func DrawWorld(c Canvas, w *ecs.World) {
	camX := system.CameraX(w)

	type item struct {
		e     ecs.Entity
		layer int
	}
	var items []item
	ecs.ForEach(w, component.RenderLayerComponent.Kind(), func(e ecs.Entity, l *component.RenderLayer) {
		items = append(items, item{e: e, layer: l.Index})
	})
	sort.SliceStable(items, func(i, j int) bool { return items[i].layer < items[j].layer })

	for _, it := range items {
		drawEntity(c, w, it.e, camX)
	}
}

func drawEntity(c Canvas, w *ecs.World, e ecs.Entity, camX float64) {
	if bg, ok := ecs.Get(w, e, component.BackgroundComponent.Kind()); ok {
		drawBackground(c, bg)
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	x := t.X - camX

	if g, ok := ecs.Get(w, e, component.GeometryComponent.Kind()); ok {
		if g.Kind == component.GeometrySpike {
			for _, tri := range SpikePoints(x, t.Y, g.W, g.H) {
				c.FillPolygon(tri, g.Color)
			}
			return
		}
		c.FillRect(x, t.Y, g.W, g.H, g.Color)
		return
	}
	if goal, ok := ecs.Get(w, e, component.GoalComponent.Kind()); ok {
		drawGoal(c, goal, x, t.Y)
		return
	}
	if star, ok := ecs.Get(w, e, component.StarComponent.Kind()); ok {
		if !star.Collected {
			c.FillPolygon(StarPoints(x, t.Y, star.Size), star.Color)
		}
		return
	}
	if p, ok := ecs.Get(w, e, component.PatrolComponent.Kind()); ok {
		if p.Active {
			c.FillRect(x-p.Size/2, t.Y-p.Size, p.Size, p.Size, p.Color)
		}
		return
	}
	if b, ok := ecs.Get(w, e, component.BossComponent.Kind()); ok {
		drawBoss(c, b, x, t.Y, camX)
		return
	}
	if ball, ok := ecs.Get(w, e, component.BallComponent.Kind()); ok {
		fill := color.Color(ball.Fill)
		if system.IsInvulnerable(w, e) {
			fill = hurtTint
		}
		c.FillCircle(x, t.Y, ball.Radius, fill)
		c.StrokeCircle(x, t.Y, ball.Radius, 3, ball.Border)
	}
}

// drawBackground paints the sky and two copies of a hill band, scrolled by
// the parallax offset so the seam wraps every screen width.
func drawBackground(c Canvas, bg *component.Background) {
	sw, sh := c.Size()
	c.FillRect(0, 0, sw, sh, bg.Sky)
	for _, base := range []float64{-bg.Offset, sw - bg.Offset} {
		for _, tri := range hillBand(base, sw, sh) {
			c.FillPolygon(tri, bg.Hills)
		}
	}
}

func hillBand(x0, width, height float64) [][]cp.Vector {
	const hills = 4
	hw := width / hills
	out := make([][]cp.Vector, 0, hills)
	for i := 0; i < hills; i++ {
		left := x0 + float64(i)*hw
		peak := height * (0.55 + 0.1*float64(i%2))
		out = append(out, []cp.Vector{
			{X: left, Y: height},
			{X: left + hw/2, Y: peak},
			{X: left + hw, Y: height},
		})
	}
	return out
}

func drawGoal(c Canvas, g *component.Goal, x, y float64) {
	if g.Hidden {
		return
	}
	switch g.Kind {
	case component.GoalReward:
		c.FillRect(x, y, g.W, g.H, g.Color)
		r := g.W / 4
		c.FillCircle(x+g.W/2, y+g.H/2, r, rewardAccent)
		c.FillCircle(x+g.W/2, y+g.H/2, r*0.7, g.Color)
	default:
		pole := g.W / 8
		c.FillRect(x, y, pole, g.H, flagPole)
		c.FillPolygon([]cp.Vector{
			{X: x + pole, Y: y},
			{X: x + g.W, Y: y + g.H/4},
			{X: x + pole, Y: y + g.H/2},
		}, g.Color)
	}
}

// drawBoss shows the body with a health bar coloured by remaining health,
// the phase label and any live bullets.
func drawBoss(c Canvas, b *component.Boss, x, y, camX float64) {
	if b.Health > 0 {
		left, top := x-b.Size/2, y-b.Size
		c.FillRect(left, top, b.Size, b.Size, b.Color)

		frac := 0.0
		if b.MaxHealth > 0 {
			frac = float64(b.Health) / float64(b.MaxHealth)
		}
		c.FillRect(left, top-10, b.Size*frac, 5, healthColor(frac))
		c.Text(fmt.Sprintf("Phase: %d", b.Phase), x-10, top-20, 12, AlignLeft, colornames.White)
	}
	for _, bullet := range b.Bullets {
		if bullet.Active {
			c.FillCircle(bullet.X-camX, bullet.Y, bullet.Radius, bullet.Color)
		}
	}
}

func healthColor(frac float64) color.RGBA {
	switch {
	case frac <= 0.3:
		return colornames.Red
	case frac <= 0.6:
		return colornames.Yellow
	}
	return colornames.Green
}
