package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/milk9111/pinkball/ecs"
	"github.com/milk9111/pinkball/ecs/component"
)

// HintSystem drives the tutorial: it unlocks the current hint's action on
// the ball and advances when the hint's tengo condition holds.
type HintSystem struct {
	compiled map[string]*tengo.Compiled
	failed   map[string]bool
}

func NewHintSystem() *HintSystem {
	return &HintSystem{
		compiled: map[string]*tengo.Compiled{},
		failed:   map[string]bool{},
	}
}

func (s *HintSystem) Update(ctx *Context) {
	if ctx == nil || ctx.World == nil {
		return
	}
	w := ctx.World

	p, ok := findPlayer(w)
	if !ok {
		return
	}
	actions, ok := ecs.Get(w, p.Entity, component.ActionsComponent.Kind())
	if !ok {
		return
	}

	ecs.ForEach(w, component.HintsComponent.Kind(), func(e ecs.Entity, hints *component.Hints) {
		if isPaused(w, e) {
			return
		}
		hint, ok := hints.Current()
		if !ok {
			return
		}
		if !actions.Allow(hint.Action) {
			if key := "action:" + hint.Action; !s.failed[key] {
				s.failed[key] = true
				ctx.Logf("hint %d: unknown action %q", hints.Index, hint.Action)
			}
		}

		done, err := s.eval(hint.Done, p)
		if err != nil {
			if !s.failed[hint.Done] {
				s.failed[hint.Done] = true
				ctx.Logf("hint %d: %v", hints.Index, err)
			}
			return
		}
		if !done {
			return
		}
		hints.Index++
		if hints.Index >= len(hints.Steps) {
			hints.Active = false
		}
	})
}

func (s *HintSystem) eval(expr string, p playerRef) (bool, error) {
	compiled, err := s.compile(expr)
	if err != nil {
		return false, err
	}
	if err := compiled.Set("x", p.T.X); err != nil {
		return false, err
	}
	if err := compiled.Set("y", p.T.Y); err != nil {
		return false, err
	}
	if err := compiled.Set("jumps", p.B.JumpCount); err != nil {
		return false, err
	}
	if err := compiled.Run(); err != nil {
		return false, fmt.Errorf("run %q: %w", expr, err)
	}
	return compiled.Get("__done").Bool(), nil
}

func (s *HintSystem) compile(expr string) (*tengo.Compiled, error) {
	if c, ok := s.compiled[expr]; ok {
		return c, nil
	}
	script := tengo.NewScript([]byte("__done := (" + expr + ")"))
	_ = script.Add("x", 0.0)
	_ = script.Add("y", 0.0)
	_ = script.Add("jumps", 0)

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", expr, err)
	}
	s.compiled[expr] = compiled
	return compiled, nil
}
