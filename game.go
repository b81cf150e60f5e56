package main

import (
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pinkball/common"
	"github.com/milk9111/pinkball/ecs/render"
	"github.com/milk9111/pinkball/prefabs"
	"github.com/milk9111/pinkball/session"
)

type Game struct {
	session *session.Session
	canvas  *ebitenCanvas
	pause   *pauseUI
	watcher *prefabs.Watcher

	progressWidth float64
}

func NewGame(s *session.Session, debug bool) *Game {
	g := &Game{
		session:       s,
		canvas:        newEbitenCanvas(),
		pause:         &pauseUI{},
		progressWidth: prefabs.LoadGameSpec().ProgressBarWidth,
	}
	if debug {
		w, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("debug: prefab hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g
}

func (g *Game) Update() error {
	g.reloadPrefabs()

	if err := g.session.Step(readInput()); err != nil {
		log.Printf("step: %v", err)
	}

	if m := g.session.Menu(); m.Visible() && m.Page() == session.PageMain {
		g.pause.sync(g, m)
		g.pause.ui.Update()
	}
	return nil
}

// reloadPrefabs applies on-disk prefab edits in debug mode.
func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	changed := g.watcher.Poll()
	if len(changed) == 0 {
		return
	}
	log.Printf("debug: prefabs changed: %s", strings.Join(changed, ", "))
	g.session.ApplySpecs(session.LoadSpecs())
	g.progressWidth = prefabs.LoadGameSpec().ProgressBarWidth
}

func (g *Game) Draw(screen *ebiten.Image) {
	c := g.canvas.target(screen)
	m := g.session.Menu()
	if !m.Visible() || m.Page() != session.PageMain || g.pause.ui == nil {
		render.Frame(c, g.session, g.progressWidth)
		return
	}

	render.DrawWorld(c, g.session.World())
	render.DrawHUD(c, g.session.HUD(), g.progressWidth)
	g.pause.ui.Draw(screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
