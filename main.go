package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/pinkball/common"
	"github.com/milk9111/pinkball/prefabs"
	"github.com/milk9111/pinkball/session"
	"github.com/milk9111/pinkball/sfx"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (prefab hot reload)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	level := flag.Int("level", 1, "level to start on (1-based)")
	seed := flag.Int64("seed", 1, "random seed for boss behaviour")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	opts, err := session.DefaultOptions()
	if err != nil {
		log.Fatal(err)
	}
	opts.Seed = *seed

	bank := sfx.NewBank(audio.NewContext(int(sfx.SampleRate)), prefabs.LoadSoundsSpec())
	defer bank.Close()
	opts.Sounds = bank

	s, err := session.New(opts)
	if err != nil {
		log.Fatal(err)
	}
	if *level > 1 {
		if err := s.Load(*level - 1); err != nil {
			log.Fatal(err)
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("PinkBall")

	game := NewGame(s, *debug)
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
