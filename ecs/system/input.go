package system

import (
	"github.com/milk9111/pinkball/ecs"
	"github.com/milk9111/pinkball/ecs/component"
)

// InputSystem copies the frame's input snapshot onto the ball. Consumers read
// the component and never write it back.
type InputSystem struct{}

func NewInputSystem() *InputSystem { return &InputSystem{} }

func (s *InputSystem) Update(ctx *Context) {
	if ctx == nil || ctx.World == nil {
		return
	}
	e, ok := ecs.First(ctx.World, component.BallComponent.Kind())
	if !ok {
		return
	}
	in := ctx.Input
	_ = ecs.Add(ctx.World, e, component.InputComponent.Kind(), &in)
}
