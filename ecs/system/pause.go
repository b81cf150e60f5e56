package system

import (
	"github.com/milk9111/pinkball/ecs"
	"github.com/milk9111/pinkball/ecs/component"
)

// PauseAll tags every live entity as paused.
func PauseAll(w *ecs.World) {
	for _, e := range ecs.Entities(w) {
		_ = ecs.Add(w, e, component.PausedComponent.Kind(), &component.Paused{})
	}
}

// ResumeAll clears the paused tag everywhere.
func ResumeAll(w *ecs.World) {
	for _, e := range ecs.Entities(w) {
		ecs.Remove(w, e, component.PausedComponent.Kind())
	}
}

func isPaused(w *ecs.World, e ecs.Entity) bool {
	return ecs.Has(w, e, component.PausedComponent.Kind())
}
