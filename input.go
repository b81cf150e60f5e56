package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/pinkball/ecs/component"
)

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// readInput snapshots the keyboard: arrows are held, everything else fires
// on the frame the key goes down.
func readInput() component.Input {
	return component.Input{
		Left:      ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:     ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump:      anyJustPressed(ebiten.KeySpace),
		Confirm:   anyJustPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter),
		Menu:      anyJustPressed(ebiten.KeyU, ebiten.KeyP),
		Resume:    anyJustPressed(ebiten.KeyC),
		Up:        anyJustPressed(ebiten.KeyArrowUp),
		Down:      anyJustPressed(ebiten.KeyArrowDown),
		MenuLeft:  anyJustPressed(ebiten.KeyArrowLeft),
		MenuRight: anyJustPressed(ebiten.KeyArrowRight),
		Mute:      anyJustPressed(ebiten.KeyM),
	}
}
