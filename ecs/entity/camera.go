package entity

import (
	"fmt"

	"github.com/milk9111/pinkball/common"
	"github.com/milk9111/pinkball/ecs"
	"github.com/milk9111/pinkball/ecs/component"
)

// NewCamera follows target across a world of the given width.
func NewCamera(w *ecs.World, target ecs.Entity, worldWidth float64) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		ViewWidth:   common.BaseWidth,
		WorldWidth:  worldWidth,
		TargetEntID: uint64(target),
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}
	return camera, nil
}

// NewBounds records the playable extent for the bounds and bullet checks.
func NewBounds(w *ecs.World, width, height float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: width, Height: height}); err != nil {
		return 0, fmt.Errorf("bounds: add level bounds: %w", err)
	}
	return e, nil
}

func NewBackground(w *ecs.World, sky, hills string, speed float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.BackgroundComponent.Kind(), &component.Background{
		Sky:   common.MustColor(orDefault(sky, "skyblue")),
		Hills: common.MustColor(orDefault(hills, "seagreen")),
		Speed: speed,
	}); err != nil {
		return 0, fmt.Errorf("background: add background: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerBackground}); err != nil {
		return 0, fmt.Errorf("background: add render layer: %w", err)
	}
	return e, nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
