package entity

import (
	"fmt"

	"github.com/milk9111/pinkball/ecs"
	"github.com/milk9111/pinkball/ecs/component"
	"github.com/milk9111/pinkball/prefabs"
)

func NewHints(w *ecs.World, spec prefabs.HintsSpec) (ecs.Entity, error) {
	steps := make([]component.Hint, 0, len(spec.Hints))
	for _, h := range spec.Hints {
		steps = append(steps, component.Hint{Text: h.Text, Action: h.Action, Done: h.Done})
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.HintsComponent.Kind(), &component.Hints{
		Steps:  steps,
		Active: len(steps) > 0,
	}); err != nil {
		return 0, fmt.Errorf("hints: add hints: %w", err)
	}
	return e, nil
}
