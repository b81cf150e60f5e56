package system

import (
	"github.com/milk9111/pinkball/common"
	"github.com/milk9111/pinkball/ecs"
	"github.com/milk9111/pinkball/ecs/component"
)

type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update centres each camera on its target horizontally, clamped so the
// view never shows past either end of the world.
func (cs *CameraSystem) Update(ctx *Context) {
	if ctx == nil || ctx.World == nil {
		return
	}
	w := ctx.World

	ecs.ForEach(w, component.CameraComponent.Kind(), func(e ecs.Entity, cam *component.Camera) {
		if isPaused(w, e) {
			return
		}
		target := ecs.Entity(cam.TargetEntID)
		if !ecs.IsAlive(w, target) {
			p, ok := findPlayer(w)
			if !ok {
				return
			}
			target = p.Entity
		}
		t, ok := ecs.Get(w, target, component.TransformComponent.Kind())
		if !ok {
			return
		}
		cam.X = common.Clamp(t.X-cam.ViewWidth/2, 0, cam.WorldWidth-cam.ViewWidth)
	})
}

// CameraX returns the first camera's offset, or zero.
func CameraX(w *ecs.World) float64 {
	e, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return 0
	}
	cam, ok := ecs.Get(w, e, component.CameraComponent.Kind())
	if !ok {
		return 0
	}
	return cam.X
}
