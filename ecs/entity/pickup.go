package entity

import (
	"fmt"

	"github.com/milk9111/pinkball/common"
	"github.com/milk9111/pinkball/ecs"
	"github.com/milk9111/pinkball/ecs/component"
	"github.com/milk9111/pinkball/levels"
)

// NewStar places a collectible centred on (def.X, def.Y).
func NewStar(w *ecs.World, def levels.Star, points int) (ecs.Entity, error) {
	size := def.Size
	if size <= 0 {
		size = 20
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: def.X, Y: def.Y}); err != nil {
		return 0, fmt.Errorf("star: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.StarComponent.Kind(), &component.Star{
		Size:   size,
		Points: points,
		Color:  common.MustColor(orDefault(def.Color, "gold")),
	}); err != nil {
		return 0, fmt.Errorf("star: add star: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerPickup}); err != nil {
		return 0, fmt.Errorf("star: add render layer: %w", err)
	}
	if err := ecs.Add(w, e, component.ContactComponent.Kind(), &component.Contact{Kind: component.ContactCollect}); err != nil {
		return 0, fmt.Errorf("star: add contact: %w", err)
	}
	return e, nil
}

// NewGoal creates a flag, or a hidden reward when hidden is set.
func NewGoal(w *ecs.World, r levels.Rect, kind component.GoalKind, hidden bool) (ecs.Entity, error) {
	fallback := "green"
	if kind == component.GoalReward {
		fallback = "hotpink"
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: r.X, Y: r.Y}); err != nil {
		return 0, fmt.Errorf("goal: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.GoalComponent.Kind(), &component.Goal{
		W:      r.W,
		H:      r.H,
		Kind:   kind,
		Hidden: hidden,
		Color:  common.MustColor(orDefault(r.Color, fallback)),
	}); err != nil {
		return 0, fmt.Errorf("goal: add goal: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerGoal}); err != nil {
		return 0, fmt.Errorf("goal: add render layer: %w", err)
	}
	if err := ecs.Add(w, e, component.ContactComponent.Kind(), &component.Contact{Kind: component.ContactGoal}); err != nil {
		return 0, fmt.Errorf("goal: add contact: %w", err)
	}
	return e, nil
}
