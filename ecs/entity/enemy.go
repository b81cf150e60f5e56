package entity

import (
	"fmt"

	"github.com/milk9111/pinkball/ecs"
	"github.com/milk9111/pinkball/ecs/component"
	"github.com/milk9111/pinkball/levels"
	"github.com/milk9111/pinkball/prefabs"
)

func ParseHostileVariant(v string) (component.HostileVariant, error) {
	switch v {
	case "", "basic":
		return component.HostileBasic, nil
	case "advanced":
		return component.HostileAdvanced, nil
	}
	return 0, fmt.Errorf("unknown enemy variant %q", v)
}

// NewEnemy places a hopping enemy with its bottom-centre at (def.X, def.Y).
// It paces the full width of its platform and lands on the platform top.
func NewEnemy(w *ecs.World, spec prefabs.EnemySpec, def levels.Enemy) (ecs.Entity, error) {
	variant, err := ParseHostileVariant(def.Variant)
	if err != nil {
		return 0, fmt.Errorf("enemy: %w", err)
	}
	col := spec.Basic.RGBA
	if variant == component.HostileAdvanced {
		col = spec.Advanced.RGBA
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: def.X, Y: def.Y}); err != nil {
		return 0, fmt.Errorf("enemy: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.PatrolComponent.Kind(), &component.Patrol{
		Size:         spec.Size,
		Direction:    1,
		Speed:        spec.Speed,
		Gravity:      spec.Gravity,
		JumpStrength: def.JumpStrength,
		JumpInterval: def.JumpInterval,
		MinX:         def.Platform.X,
		MaxX:         def.Platform.X + def.Platform.W,
		Ground:       def.Platform.Y,
		Active:       true,
		Variant:      variant,
		Color:        col,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add patrol: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerHostile}); err != nil {
		return 0, fmt.Errorf("enemy: add render layer: %w", err)
	}
	if err := ecs.Add(w, e, component.ContactComponent.Kind(), &component.Contact{Kind: component.ContactStomp}); err != nil {
		return 0, fmt.Errorf("enemy: add contact: %w", err)
	}
	return e, nil
}
