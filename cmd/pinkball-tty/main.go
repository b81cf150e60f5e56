// Command pinkball-tty plays PinkBall in a terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/pinkball/ecs/render"
	"github.com/milk9111/pinkball/prefabs"
	"github.com/milk9111/pinkball/session"
	"github.com/milk9111/pinkball/sfx"
)

const frameDuration = time.Second / 60

func main() {
	level := flag.Int("level", 1, "level to start on (1-based)")
	seed := flag.Int64("seed", 1, "random seed for boss behaviour")
	mute := flag.Bool("mute", false, "disable audio")
	logPath := flag.String("log", "pinkball-tty.log", "log file (the terminal is busy drawing)")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	if err := run(*level, *seed, *mute, logFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(level int, seed int64, mute bool, logFile *os.File) error {
	opts, err := session.DefaultOptions()
	if err != nil {
		return err
	}
	opts.Seed = seed
	opts.LogOutput = logFile
	opts.Sounds = sfx.Silent{}
	if !mute {
		if sp, err := sfx.NewSpeaker(prefabs.LoadSoundsSpec()); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer sp.Close()
			opts.Sounds = sp
		}
	}

	s, err := session.New(opts)
	if err != nil {
		return err
	}
	if level > 1 {
		if err := s.Load(level - 1); err != nil {
			return err
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tty: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tty: init screen: %w", err)
	}
	defer screen.Fini()

	return loop(screen, s)
}

func loop(screen tcell.Screen, s *session.Session) error {
	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	canvas := newCellCanvas(screen)
	kb := &keyboard{}
	progressWidth := prefabs.LoadGameSpec().ProgressBarWidth

	ticker := time.NewTicker(frameDuration)
	defer ticker.Stop()

	for {
	drain:
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return nil
				}
				switch ev := ev.(type) {
				case *tcell.EventKey:
					kb.handle(ev)
				case *tcell.EventResize:
					screen.Sync()
				}
			default:
				break drain
			}
		}
		if kb.quit {
			return nil
		}

		if err := s.Step(kb.frame()); err != nil {
			log.Printf("step: %v", err)
		}

		screen.Clear()
		render.Frame(canvas, s, progressWidth)
		screen.Show()

		<-ticker.C
	}
}
