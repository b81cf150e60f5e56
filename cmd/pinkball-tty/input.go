package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/pinkball/ecs/component"
)

// holdFrames is how long an arrow counts as held after its last key event.
// Terminals report repeats, not releases.
const holdFrames = 8

// keyboard folds tcell key events into per-frame input snapshots.
type keyboard struct {
	left, right int
	pending     component.Input
	quit        bool
}

func (k *keyboard) handle(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.quit = true
	case tcell.KeyLeft:
		k.left, k.right = holdFrames, 0
		k.pending.MenuLeft = true
	case tcell.KeyRight:
		k.right, k.left = holdFrames, 0
		k.pending.MenuRight = true
	case tcell.KeyUp:
		k.pending.Up = true
	case tcell.KeyDown:
		k.pending.Down = true
	case tcell.KeyEnter:
		k.pending.Confirm = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			k.pending.Jump = true
		case 'u', 'U', 'p', 'P':
			k.pending.Menu = true
		case 'c', 'C':
			k.pending.Resume = true
		case 'm', 'M':
			k.pending.Mute = true
		case 'q', 'Q':
			k.quit = true
		}
	}
}

// frame returns this frame's snapshot and starts the next one.
func (k *keyboard) frame() component.Input {
	in := k.pending
	in.Left = k.left > 0
	in.Right = k.right > 0
	if k.left > 0 {
		k.left--
	}
	if k.right > 0 {
		k.right--
	}
	k.pending = component.Input{}
	return in
}
