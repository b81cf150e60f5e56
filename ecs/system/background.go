package system

import (
	"math"

	"github.com/milk9111/pinkball/common"
	"github.com/milk9111/pinkball/ecs"
	"github.com/milk9111/pinkball/ecs/component"
)

// BackgroundSystem scrolls parallax backdrops at a fraction of the camera speed.
type BackgroundSystem struct{}

func NewBackgroundSystem() *BackgroundSystem { return &BackgroundSystem{} }

func (s *BackgroundSystem) Update(ctx *Context) {
	if ctx == nil || ctx.World == nil {
		return
	}
	w := ctx.World
	camX := CameraX(w)

	ecs.ForEach(w, component.BackgroundComponent.Kind(), func(e ecs.Entity, bg *component.Background) {
		if isPaused(w, e) {
			return
		}
		bg.Offset = math.Mod(camX*bg.Speed, common.BaseWidth)
	})
}
