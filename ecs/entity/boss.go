package entity

import (
	"fmt"

	"github.com/milk9111/pinkball/ecs"
	"github.com/milk9111/pinkball/ecs/component"
	"github.com/milk9111/pinkball/levels"
	"github.com/milk9111/pinkball/prefabs"
)

// NewBoss places the boss with its bottom-centre at (def.X, def.Y). reward
// is the hidden goal revealed when it is defeated.
func NewBoss(w *ecs.World, spec prefabs.BossSpec, def levels.Boss, reward ecs.Entity) (ecs.Entity, error) {
	if spec.Health <= 0 {
		return 0, fmt.Errorf("boss: health must be positive, got %d", spec.Health)
	}
	arena := def.Arena

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: def.X, Y: def.Y}); err != nil {
		return 0, fmt.Errorf("boss: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.BossComponent.Kind(), &component.Boss{
		Size:      spec.Size,
		Health:    spec.Health,
		MaxHealth: spec.Health,
		Phase:     1,
		Gravity:   spec.Gravity,
		ArenaMinX: arena.X,
		ArenaMaxX: arena.X + arena.W,
		Ground:    arena.Y,
		MinX:      spec.MinX,
		TargetX:   def.X,
		Direction: 1,
		Reward:    uint64(reward),
		Color:     spec.Color.RGBA,
	}); err != nil {
		return 0, fmt.Errorf("boss: add boss: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerBoss}); err != nil {
		return 0, fmt.Errorf("boss: add render layer: %w", err)
	}
	if err := ecs.Add(w, e, component.ContactComponent.Kind(), &component.Contact{Kind: component.ContactBoss}); err != nil {
		return 0, fmt.Errorf("boss: add contact: %w", err)
	}
	return e, nil
}
