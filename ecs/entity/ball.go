package entity

import (
	"fmt"

	"github.com/milk9111/pinkball/ecs"
	"github.com/milk9111/pinkball/ecs/component"
	"github.com/milk9111/pinkball/prefabs"
)

// NewBall creates the player at (x, y), which is also its spawn point.
// It starts with every action unlocked.
func NewBall(w *ecs.World, spec prefabs.BallSpec, x, y float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("ball: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("ball: add velocity: %w", err)
	}
	if err := ecs.Add(w, e, component.BallComponent.Kind(), &component.Ball{
		Radius:       spec.Radius,
		Gravity:      spec.Gravity,
		JumpStrength: spec.JumpStrength,
		MoveSpeed:    spec.MoveSpeed,
		MaxJumps:     spec.MaxJumps,
		SpawnX:       x,
		SpawnY:       y,
		Fill:         spec.Fill.RGBA,
		Border:       spec.Border.RGBA,
	}); err != nil {
		return 0, fmt.Errorf("ball: add ball: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerPlayer}); err != nil {
		return 0, fmt.Errorf("ball: add render layer: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("ball: add input: %w", err)
	}
	actions := component.AllActions()
	if err := ecs.Add(w, e, component.ActionsComponent.Kind(), &actions); err != nil {
		return 0, fmt.Errorf("ball: add actions: %w", err)
	}
	return e, nil
}
