package entity

import (
	"fmt"
	"strings"

	"github.com/milk9111/pinkball/common"
	"github.com/milk9111/pinkball/ecs"
	"github.com/milk9111/pinkball/ecs/component"
	"github.com/milk9111/pinkball/levels"
)

var defaultGeometryColors = map[component.GeometryKind]string{
	component.GeometryPlatform: "#654321",
	component.GeometrySpike:    "red",
	component.GeometryWall:     "gray",
}

// ParseGeometryKind maps level kinds onto geometry kinds; empty means platform.
func ParseGeometryKind(kind string) (component.GeometryKind, error) {
	switch k := component.GeometryKind(strings.ToLower(kind)); k {
	case "":
		return component.GeometryPlatform, nil
	case component.GeometryPlatform, component.GeometrySpike, component.GeometryWall:
		return k, nil
	}
	return "", fmt.Errorf("unknown geometry kind %q", kind)
}

// NewGeometry creates a static rectangle with its top-left at (r.X, r.Y).
func NewGeometry(w *ecs.World, r levels.Rect) (ecs.Entity, error) {
	kind, err := ParseGeometryKind(r.Kind)
	if err != nil {
		return 0, fmt.Errorf("geometry: %w", err)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: r.X, Y: r.Y}); err != nil {
		return 0, fmt.Errorf("geometry: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.GeometryComponent.Kind(), &component.Geometry{
		W:     r.W,
		H:     r.H,
		Kind:  kind,
		Color: common.MustColor(orDefault(r.Color, defaultGeometryColors[kind])),
	}); err != nil {
		return 0, fmt.Errorf("geometry: add geometry: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerGeometry}); err != nil {
		return 0, fmt.Errorf("geometry: add render layer: %w", err)
	}
	if err := ecs.Add(w, e, component.ContactComponent.Kind(), &component.Contact{Kind: component.ContactGeometry}); err != nil {
		return 0, fmt.Errorf("geometry: add contact: %w", err)
	}
	return e, nil
}
